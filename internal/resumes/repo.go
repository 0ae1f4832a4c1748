package resumes

import "context"

// ResumesRepo defines persistence operations for saved resumes. Updates are
// read-modify-write with last-write-wins, no concurrency token is used.
type ResumesRepo interface {
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, userID string, id int64) (Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	Update(ctx context.Context, userID string, id int64, patch RecordPatch) (Record, error)
	Delete(ctx context.Context, userID string, id int64) (bool, error)
}
