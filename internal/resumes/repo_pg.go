package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/resume/model"
)

// PGRepo implements ResumesRepo using Postgres. List fields are stored as
// JSONB columns and marshalled at the boundary.
type PGRepo struct {
	DB *sql.DB
}

const recordColumns = `id, user_id, first_name, last_name, email, phone, summary, website, linkedin,
education, experience, projects, skills,
template_style, color_scheme, is_ats_optimized, target_role, created_at, updated_at`

// Create inserts a new record and returns it with server-assigned fields.
func (r *PGRepo) Create(ctx context.Context, rec Record) (Record, error) {
	const query = `
INSERT INTO resumes (
    user_id, first_name, last_name, email, phone, summary, website, linkedin,
    education, experience, projects, skills,
    template_style, color_scheme, is_ats_optimized, target_role
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id, created_at, updated_at`

	education, experience, projects, skills, err := marshalLists(rec)
	if err != nil {
		return Record{}, err
	}

	err = r.DB.QueryRowContext(
		ctx,
		query,
		rec.UserID,
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.Phone,
		rec.Summary,
		rec.Website,
		rec.LinkedIn,
		education,
		experience,
		projects,
		skills,
		rec.TemplateStyle,
		rec.ColorScheme,
		rec.IsAtsOptimized,
		rec.TargetRole,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return Record{}, fmt.Errorf("insert resume: %w", err)
	}
	return rec, nil
}

// GetByID fetches a record by id for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID string, id int64) (Record, error) {
	query := `SELECT ` + recordColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2`

	rec, err := scanRecord(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

// ListByUser lists a user's records, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	query := `SELECT ` + recordColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update reads the current row, applies the patch and writes the result
// back. Concurrent updates to the same id resolve last-write-wins.
func (r *PGRepo) Update(ctx context.Context, userID string, id int64, patch RecordPatch) (Record, error) {
	current, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return Record{}, err
	}

	rec := patch.Apply(current)

	education, experience, projects, skills, err := marshalLists(rec)
	if err != nil {
		return Record{}, err
	}

	const query = `
UPDATE resumes SET
    first_name = $1, last_name = $2, email = $3, phone = $4, summary = $5,
    website = $6, linkedin = $7,
    education = $8, experience = $9, projects = $10, skills = $11,
    template_style = $12, color_scheme = $13, is_ats_optimized = $14,
    target_role = $15, updated_at = now()
WHERE user_id = $16 AND id = $17
RETURNING updated_at`

	err = r.DB.QueryRowContext(
		ctx,
		query,
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.Phone,
		rec.Summary,
		rec.Website,
		rec.LinkedIn,
		education,
		experience,
		projects,
		skills,
		rec.TemplateStyle,
		rec.ColorScheme,
		rec.IsAtsOptimized,
		rec.TargetRole,
		userID,
		id,
	).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("update resume: %w", err)
	}
	return rec, nil
}

// Delete removes the record. The second delete of an id reports false, not
// an error.
func (r *PGRepo) Delete(ctx context.Context, userID string, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var education, experience, projects, skills []byte

	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&rec.Phone,
		&rec.Summary,
		&rec.Website,
		&rec.LinkedIn,
		&education,
		&experience,
		&projects,
		&skills,
		&rec.TemplateStyle,
		&rec.ColorScheme,
		&rec.IsAtsOptimized,
		&rec.TargetRole,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return Record{}, err
	}

	if err := unmarshalList(education, &rec.Education); err != nil {
		return Record{}, fmt.Errorf("decode education: %w", err)
	}
	if err := unmarshalList(experience, &rec.Experience); err != nil {
		return Record{}, fmt.Errorf("decode experience: %w", err)
	}
	if err := unmarshalList(projects, &rec.Projects); err != nil {
		return Record{}, fmt.Errorf("decode projects: %w", err)
	}
	if err := unmarshalList(skills, &rec.Skills); err != nil {
		return Record{}, fmt.Errorf("decode skills: %w", err)
	}
	if rec.Education == nil {
		rec.Education = []model.EducationEntry{}
	}
	if rec.Experience == nil {
		rec.Experience = []model.ExperienceEntry{}
	}
	if rec.Projects == nil {
		rec.Projects = []model.ProjectEntry{}
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	return rec, nil
}

func marshalLists(rec Record) (education, experience, projects, skills []byte, err error) {
	if education, err = jsonbValue(rec.Education); err != nil {
		return nil, nil, nil, nil, err
	}
	if experience, err = jsonbValue(rec.Experience); err != nil {
		return nil, nil, nil, nil, err
	}
	if projects, err = jsonbValue(rec.Projects); err != nil {
		return nil, nil, nil, nil, err
	}
	if skills, err = jsonbValue(rec.Skills); err != nil {
		return nil, nil, nil, nil, err
	}
	return education, experience, projects, skills, nil
}

// jsonbValue marshals a list for a JSONB column, storing nil slices as [].
func jsonbValue(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return []byte("[]"), nil
	}
	return raw, nil
}

func unmarshalList(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

var _ ResumesRepo = (*PGRepo)(nil)
