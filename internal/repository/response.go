package repository

import (
	"context"
	"fmt"

	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresResponseRepository struct {
	db *pgxpool.Pool
}

// CreateBatch inserts a set of scored responses in one transaction.
func (r *PostgresResponseRepository) CreateBatch(ctx context.Context, responses []model.InterviewResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return execTx(ctx, r.db, func(tx pgx.Tx) error {
		const q = `
INSERT INTO interview_responses (
	response_id, interview_id, question_id, answer, score, feedback, duration, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
`
		for i := range responses {
			resp := &responses[i]
			resp.ResponseID = uuid.New()
			if _, err := tx.Exec(ctx, q,
				resp.ResponseID, resp.InterviewID, resp.QuestionID,
				resp.Answer, resp.Score, resp.Feedback, resp.Duration,
			); err != nil {
				return fmt.Errorf("insert interview response: %w", err)
			}
		}
		return nil
	})
}

// ListByInterview returns responses scoped through the interview's job
// posting to the owning recruiter.
func (r *PostgresResponseRepository) ListByInterview(ctx context.Context, interviewID, recruiterID uuid.UUID) ([]model.InterviewResponse, error) {
	const q = `
SELECT r.response_id, r.interview_id, r.question_id, r.answer, r.score,
       r.feedback, r.duration, r.created_at, r.updated_at
FROM interview_responses r
JOIN interviews i ON i.interview_id = r.interview_id
JOIN job_postings j ON j.job_posting_id = i.job_posting_id
WHERE r.interview_id = $1 AND j.recruiter_id = $2
ORDER BY r.created_at ASC
`
	rows, err := r.db.Query(ctx, q, interviewID, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("query interview responses: %w", err)
	}
	defer rows.Close()

	out := make([]model.InterviewResponse, 0)
	for rows.Next() {
		var resp model.InterviewResponse
		if err := rows.Scan(
			&resp.ResponseID, &resp.InterviewID, &resp.QuestionID, &resp.Answer,
			&resp.Score, &resp.Feedback, &resp.Duration, &resp.CreatedAt, &resp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan interview response: %w", err)
		}
		out = append(out, resp)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
