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

type PostgresQuestionRepository struct {
	db *pgxpool.Pool
}

const questionColumns = `
q.question_id, q.job_posting_id, q.question_text, q.category, q.difficulty,
q.expected_answer, q.keywords, q.max_duration, q.ord, q.is_active,
q.created_at, q.updated_at`

func (r *PostgresQuestionRepository) Create(ctx context.Context, qu *model.Question) error {
	qu.QuestionID = uuid.New()
	if qu.Keywords == nil {
		qu.Keywords = []string{}
	}
	const q = `
INSERT INTO questions (
	question_id, job_posting_id, question_text, category, difficulty,
	expected_answer, keywords, max_duration, ord, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, now(), now())
RETURNING is_active, created_at, updated_at
`
	row := r.db.QueryRow(ctx, q,
		qu.QuestionID, qu.JobPostingID, qu.QuestionText, qu.Category, qu.Difficulty,
		qu.ExpectedAnswer, qu.Keywords, qu.MaxDuration, qu.Order,
	)
	if err := row.Scan(&qu.IsActive, &qu.CreatedAt, &qu.UpdatedAt); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// ListByJob returns questions in explicit order first, then insertion order.
func (r *PostgresQuestionRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Question, error) {
	q := `SELECT ` + questionColumns + ` FROM questions q
WHERE q.job_posting_id = $1
ORDER BY q.ord ASC NULLS LAST, q.created_at ASC`
	rows, err := r.db.Query(ctx, q, jobID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	out := make([]model.Question, 0)
	for rows.Next() {
		qu, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, qu)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *PostgresQuestionRepository) Update(ctx context.Context, id, recruiterID uuid.UUID, req model.UpdateQuestionReq) (model.Question, error) {
	q := `
UPDATE questions q SET
	question_text   = COALESCE($3, q.question_text),
	category        = COALESCE($4, q.category),
	difficulty      = COALESCE($5, q.difficulty),
	expected_answer = COALESCE($6, q.expected_answer),
	keywords        = COALESCE($7, q.keywords),
	max_duration    = COALESCE($8, q.max_duration),
	ord             = COALESCE($9, q.ord),
	is_active       = COALESCE($10, q.is_active),
	updated_at      = now()
FROM job_postings j
WHERE q.question_id = $1
  AND j.job_posting_id = q.job_posting_id
  AND j.recruiter_id = $2
RETURNING ` + questionColumns
	row := r.db.QueryRow(ctx, q, id, recruiterID,
		req.QuestionText, req.Category, req.Difficulty, req.ExpectedAnswer,
		req.Keywords, req.MaxDuration, req.Order, req.IsActive,
	)
	qu, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Question{}, ErrNotFound
		}
		return model.Question{}, err
	}
	return qu, nil
}

func (r *PostgresQuestionRepository) Delete(ctx context.Context, id, recruiterID uuid.UUID) error {
	const q = `
DELETE FROM questions q
USING job_postings j
WHERE q.question_id = $1
  AND j.job_posting_id = q.job_posting_id
  AND j.recruiter_id = $2
`
	tag, err := r.db.Exec(ctx, q, id, recruiterID)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuestion(row pgx.Row) (model.Question, error) {
	var qu model.Question
	err := row.Scan(
		&qu.QuestionID, &qu.JobPostingID, &qu.QuestionText, &qu.Category, &qu.Difficulty,
		&qu.ExpectedAnswer, &qu.Keywords, &qu.MaxDuration, &qu.Order, &qu.IsActive,
		&qu.CreatedAt, &qu.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Question{}, pgx.ErrNoRows
		}
		return model.Question{}, fmt.Errorf("scan question: %w", err)
	}
	return qu, nil
}
