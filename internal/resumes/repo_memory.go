package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of ResumesRepo, used in tests
// and when no database is configured.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Record)}
}

// Create assigns the next id and stores the record.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	rec.ID = r.nextID
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	r.data[rec.ID] = rec
	return rec, nil
}

// GetByID returns the record if it exists for the user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID string, id int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.data[id]
	if !ok || rec.UserID != userID {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// ListByUser returns the user's records, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Record{}
	for _, rec := range r.data {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Update applies the patch to the stored record, last write wins.
func (r *MemoryRepo) Update(ctx context.Context, userID string, id int64, patch RecordPatch) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.data[id]
	if !ok || rec.UserID != userID {
		return Record{}, ErrNotFound
	}
	rec = patch.Apply(rec)
	rec.UpdatedAt = time.Now().UTC()
	r.data[id] = rec
	return rec, nil
}

// Delete removes the record. It reports whether a record was removed, a
// second delete of the same id reports false.
func (r *MemoryRepo) Delete(ctx context.Context, userID string, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.data[id]
	if !ok || rec.UserID != userID {
		return false, nil
	}
	delete(r.data, id)
	return true, nil
}

var _ ResumesRepo = (*MemoryRepo)(nil)
