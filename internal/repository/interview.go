package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresInterviewRepository struct {
	db *pgxpool.Pool
}

const interviewColumns = `
i.interview_id, i.candidate_id, i.job_posting_id, i.conversation_id,
i.scheduled_at, i.started_at, i.completed_at, i.status, i.overall_score,
i.feedback, i.created_at, i.updated_at`

func (r *PostgresInterviewRepository) Create(ctx context.Context, iv *model.Interview) error {
	iv.InterviewID = uuid.New()
	const q = `
INSERT INTO interviews (
	interview_id, candidate_id, job_posting_id, scheduled_at, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, 'SCHEDULED', now(), now())
RETURNING status, created_at, updated_at
`
	row := r.db.QueryRow(ctx, q, iv.InterviewID, iv.CandidateID, iv.JobPostingID, iv.ScheduledAt)
	if err := row.Scan(&iv.Status, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
		return fmt.Errorf("insert interview: %w", err)
	}
	return nil
}

func (r *PostgresInterviewRepository) GetByID(ctx context.Context, id, recruiterID uuid.UUID) (model.Interview, error) {
	q := `
SELECT ` + interviewColumns + `
FROM interviews i
JOIN job_postings j ON j.job_posting_id = i.job_posting_id
WHERE i.interview_id = $1 AND j.recruiter_id = $2
`
	iv, err := scanInterview(r.db.QueryRow(ctx, q, id, recruiterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Interview{}, ErrNotFound
		}
		return model.Interview{}, err
	}
	return iv, nil
}

func (r *PostgresInterviewRepository) GetByConversationID(ctx context.Context, conversationID string) (model.Interview, error) {
	q := `SELECT ` + interviewColumns + ` FROM interviews i WHERE i.conversation_id = $1`
	iv, err := scanInterview(r.db.QueryRow(ctx, q, conversationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Interview{}, ErrNotFound
		}
		return model.Interview{}, err
	}
	return iv, nil
}

func (r *PostgresInterviewRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Interview, error) {
	q := `SELECT ` + interviewColumns + ` FROM interviews i WHERE i.job_posting_id = $1 ORDER BY i.created_at DESC`
	rows, err := r.db.Query(ctx, q, jobID)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// Start records a successful vendor trigger: the interview moves to
// IN_PROGRESS with the vendor's conversation id and call-start time, and the
// candidate moves to INTERVIEW_SCHEDULED. Both updates commit together or
// not at all.
func (r *PostgresInterviewRepository) Start(ctx context.Context, id uuid.UUID, conversationID string, startedAt time.Time) error {
	return execTx(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
UPDATE interviews
SET status = 'IN_PROGRESS', conversation_id = $2, started_at = $3, updated_at = now()
WHERE interview_id = $1 AND status = 'SCHEDULED'
RETURNING candidate_id
`
		var candidateID uuid.UUID
		if err := tx.QueryRow(ctx, q, id, conversationID, startedAt).Scan(&candidateID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("start interview: %w", err)
		}

		const q2 = `UPDATE candidates SET status = 'INTERVIEW_SCHEDULED', updated_at = now() WHERE candidate_id = $1`
		if _, err := tx.Exec(ctx, q2, candidateID); err != nil {
			return fmt.Errorf("update candidate status: %w", err)
		}
		return nil
	})
}

// Complete marks an in-progress interview finished once the vendor reports a
// terminal status. Interviews already terminal are left alone.
func (r *PostgresInterviewRepository) Complete(ctx context.Context, conversationID string, completedAt time.Time) error {
	return execTx(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
UPDATE interviews
SET status = 'COMPLETED', completed_at = $2, updated_at = now()
WHERE conversation_id = $1 AND status = 'IN_PROGRESS'
RETURNING candidate_id
`
		var candidateID uuid.UUID
		if err := tx.QueryRow(ctx, q, conversationID, completedAt).Scan(&candidateID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// already terminal, or unknown conversation
				return nil
			}
			return fmt.Errorf("complete interview: %w", err)
		}

		const q2 = `UPDATE candidates SET status = 'INTERVIEWED', updated_at = now() WHERE candidate_id = $1`
		if _, err := tx.Exec(ctx, q2, candidateID); err != nil {
			return fmt.Errorf("update candidate status: %w", err)
		}
		return nil
	})
}

// Cancel moves a non-terminal interview to CANCELLED.
func (r *PostgresInterviewRepository) Cancel(ctx context.Context, id, recruiterID uuid.UUID) (model.Interview, error) {
	q := `
UPDATE interviews i
SET status = 'CANCELLED', updated_at = now()
FROM job_postings j
WHERE i.interview_id = $1
  AND j.job_posting_id = i.job_posting_id
  AND j.recruiter_id = $2
  AND i.status IN ('SCHEDULED', 'IN_PROGRESS')
RETURNING ` + interviewColumns
	iv, err := scanInterview(r.db.QueryRow(ctx, q, id, recruiterID))
	if err == nil {
		return iv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Interview{}, err
	}

	// distinguish "gone" from "already terminal"
	if _, getErr := r.GetByID(ctx, id, recruiterID); getErr == nil {
		return model.Interview{}, ErrTerminalState
	}
	return model.Interview{}, ErrNotFound
}

func (r *PostgresInterviewRepository) SetScore(ctx context.Context, id uuid.UUID, overallScore float64, feedback string) error {
	const q = `
UPDATE interviews
SET overall_score = $2, feedback = $3, updated_at = now()
WHERE interview_id = $1
`
	tag, err := r.db.Exec(ctx, q, id, overallScore, feedback)
	if err != nil {
		return fmt.Errorf("set interview score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanInterview(row pgx.Row) (model.Interview, error) {
	var iv model.Interview
	err := row.Scan(
		&iv.InterviewID, &iv.CandidateID, &iv.JobPostingID, &iv.ConversationID,
		&iv.ScheduledAt, &iv.StartedAt, &iv.CompletedAt, &iv.Status,
		&iv.OverallScore, &iv.Feedback, &iv.CreatedAt, &iv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Interview{}, pgx.ErrNoRows
		}
		return model.Interview{}, fmt.Errorf("scan interview: %w", err)
	}
	return iv, nil
}
