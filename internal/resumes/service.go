package resumes

import (
	"context"

	"resume-builder/internal/shared/metrics"
)

// Service contains business logic for saved resumes.
type Service struct {
	Repo ResumesRepo
}

// List returns all records for the user, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]Record, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, userID string, id int64) (Record, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

// Create stores a new record, defaulting any field the patch omits.
func (s *Service) Create(ctx context.Context, userID string, patch RecordPatch) (Record, error) {
	rec, err := s.Repo.Create(ctx, patch.Apply(NewRecord(userID)))
	if err != nil {
		return Record{}, err
	}
	metrics.IncResumeSave()
	return rec, nil
}

// Update applies a partial record to an existing row, last write wins.
func (s *Service) Update(ctx context.Context, userID string, id int64, patch RecordPatch) (Record, error) {
	rec, err := s.Repo.Update(ctx, userID, id, patch)
	if err != nil {
		return Record{}, err
	}
	metrics.IncResumeSave()
	return rec, nil
}

// Delete removes a record, reporting whether one existed.
func (s *Service) Delete(ctx context.Context, userID string, id int64) (bool, error) {
	return s.Repo.Delete(ctx, userID, id)
}
