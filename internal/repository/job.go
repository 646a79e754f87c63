package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresJobRepository struct {
	db *pgxpool.Pool
}

const jobColumns = `
job_posting_id, recruiter_id, title, description, requirements, location,
salary_range, experience_level, department, is_active, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j *model.JobPosting) error {
	j.JobPostingID = uuid.New()
	const q = `
INSERT INTO job_postings (
	job_posting_id, recruiter_id, title, description, requirements, location,
	salary_range, experience_level, department, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, now(), now())
RETURNING is_active, created_at, updated_at
`
	row := r.db.QueryRow(ctx, q,
		j.JobPostingID, j.RecruiterID, j.Title, j.Description, j.Requirements,
		j.Location, j.SalaryRange, j.ExperienceLevel, j.Department,
	)
	if err := row.Scan(&j.IsActive, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]model.JobPosting, error) {
	q := `SELECT ` + jobColumns + ` FROM job_postings WHERE recruiter_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("query job postings: %w", err)
	}
	defer rows.Close()

	out := make([]model.JobPosting, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id, recruiterID uuid.UUID) (model.JobPosting, error) {
	q := `SELECT ` + jobColumns + ` FROM job_postings WHERE job_posting_id = $1 AND recruiter_id = $2`
	j, err := scanJob(r.db.QueryRow(ctx, q, id, recruiterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.JobPosting{}, ErrNotFound
		}
		return model.JobPosting{}, err
	}
	return j, nil
}

// Update applies the non-nil patch fields and returns the updated row.
func (r *PostgresJobRepository) Update(ctx context.Context, id, recruiterID uuid.UUID, patch model.PatchJobReq) (model.JobPosting, error) {
	const q = `
UPDATE job_postings SET
	title            = COALESCE($3, title),
	description      = COALESCE($4, description),
	requirements     = COALESCE($5, requirements),
	location         = COALESCE($6, location),
	salary_range     = COALESCE($7, salary_range),
	experience_level = COALESCE($8, experience_level),
	department       = COALESCE($9, department),
	is_active        = COALESCE($10, is_active),
	updated_at       = now()
WHERE job_posting_id = $1 AND recruiter_id = $2
RETURNING ` + jobColumns
	row := r.db.QueryRow(ctx, q, id, recruiterID,
		patch.Title, patch.Description, patch.Requirements, patch.Location,
		patch.SalaryRange, patch.ExperienceLevel, patch.Department, patch.IsActive,
	)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.JobPosting{}, ErrNotFound
		}
		return model.JobPosting{}, err
	}
	return j, nil
}

// Delete removes a job posting; candidates, questions and interviews go with
// it via FK cascade.
func (r *PostgresJobRepository) Delete(ctx context.Context, id, recruiterID uuid.UUID) error {
	const q = `DELETE FROM job_postings WHERE job_posting_id = $1 AND recruiter_id = $2`
	tag, err := r.db.Exec(ctx, q, id, recruiterID)
	if err != nil {
		return fmt.Errorf("delete job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJob(row pgx.Row) (model.JobPosting, error) {
	var j model.JobPosting
	err := row.Scan(
		&j.JobPostingID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements,
		&j.Location, &j.SalaryRange, &j.ExperienceLevel, &j.Department,
		&j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.JobPosting{}, pgx.ErrNoRows
		}
		return model.JobPosting{}, fmt.Errorf("scan job posting: %w", err)
	}
	return j, nil
}
