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

type PostgresCandidateRepository struct {
	db *pgxpool.Pool
}

const candidateColumns = `
c.candidate_id, c.job_posting_id, c.name, c.email, c.phone_no, c.resume,
c.experience, c.skills, c.current_company, c.current_role, c.expected_salary,
c.notice_period, c.location, c.status, c.applied_at, c.updated_at`

func (r *PostgresCandidateRepository) Create(ctx context.Context, cand *model.Candidate) error {
	cand.CandidateID = uuid.New()
	if cand.Skills == nil {
		cand.Skills = []string{}
	}
	const q = `
INSERT INTO candidates (
	candidate_id, job_posting_id, name, email, phone_no, resume, experience,
	skills, current_company, current_role, expected_salary, notice_period,
	location, status, applied_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 'APPLIED', now(), now())
RETURNING status, applied_at, updated_at
`
	row := r.db.QueryRow(ctx, q,
		cand.CandidateID, cand.JobPostingID, cand.Name, cand.Email, cand.PhoneNo,
		cand.Resume, cand.Experience, cand.Skills, cand.CurrentCompany, cand.CurrentRole,
		cand.ExpectedSalary, cand.NoticePeriod, cand.Location,
	)
	if err := row.Scan(&cand.Status, &cand.AppliedAt, &cand.UpdatedAt); err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *PostgresCandidateRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Candidate, error) {
	q := `SELECT ` + candidateColumns + ` FROM candidates c WHERE c.job_posting_id = $1 ORDER BY c.applied_at DESC`
	rows, err := r.db.Query(ctx, q, jobID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cand)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// GetByID resolves a candidate through its job posting so a recruiter can
// only read their own candidates.
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id, recruiterID uuid.UUID) (model.Candidate, error) {
	q := `
SELECT ` + candidateColumns + `
FROM candidates c
JOIN job_postings j ON j.job_posting_id = c.job_posting_id
WHERE c.candidate_id = $1 AND j.recruiter_id = $2
`
	cand, err := scanCandidate(r.db.QueryRow(ctx, q, id, recruiterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Candidate{}, ErrNotFound
		}
		return model.Candidate{}, err
	}
	return cand, nil
}

func (r *PostgresCandidateRepository) UpdateStatus(ctx context.Context, id, recruiterID uuid.UUID, status model.CandidateStatus) (model.Candidate, error) {
	q := `
UPDATE candidates c SET status = $3, updated_at = now()
FROM job_postings j
WHERE c.candidate_id = $1
  AND j.job_posting_id = c.job_posting_id
  AND j.recruiter_id = $2
RETURNING ` + candidateColumns
	cand, err := scanCandidate(r.db.QueryRow(ctx, q, id, recruiterID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Candidate{}, ErrNotFound
		}
		return model.Candidate{}, err
	}
	return cand, nil
}

func scanCandidate(row pgx.Row) (model.Candidate, error) {
	var cand model.Candidate
	err := row.Scan(
		&cand.CandidateID, &cand.JobPostingID, &cand.Name, &cand.Email, &cand.PhoneNo,
		&cand.Resume, &cand.Experience, &cand.Skills, &cand.CurrentCompany, &cand.CurrentRole,
		&cand.ExpectedSalary, &cand.NoticePeriod, &cand.Location, &cand.Status,
		&cand.AppliedAt, &cand.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Candidate{}, pgx.ErrNoRows
		}
		return model.Candidate{}, fmt.Errorf("scan candidate: %w", err)
	}
	return cand, nil
}
