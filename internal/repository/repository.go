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

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrTerminalState  = errors.New("interview already in a terminal state")
)

// RecruiterRepository persists recruiter accounts.
type RecruiterRepository interface {
	Create(ctx context.Context, r *model.Recruiter) error
	GetByEmail(ctx context.Context, email string) (model.Recruiter, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Recruiter, error)
}

// JobRepository persists job postings, always scoped to the owning recruiter.
type JobRepository interface {
	Create(ctx context.Context, j *model.JobPosting) error
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]model.JobPosting, error)
	GetByID(ctx context.Context, id, recruiterID uuid.UUID) (model.JobPosting, error)
	Update(ctx context.Context, id, recruiterID uuid.UUID, patch model.PatchJobReq) (model.JobPosting, error)
	Delete(ctx context.Context, id, recruiterID uuid.UUID) error
}

// CandidateRepository persists candidates under a job posting.
type CandidateRepository interface {
	Create(ctx context.Context, cand *model.Candidate) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Candidate, error)
	GetByID(ctx context.Context, id, recruiterID uuid.UUID) (model.Candidate, error)
	UpdateStatus(ctx context.Context, id, recruiterID uuid.UUID, status model.CandidateStatus) (model.Candidate, error)
}

// QuestionRepository persists interview questions under a job posting.
type QuestionRepository interface {
	Create(ctx context.Context, q *model.Question) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Question, error)
	Update(ctx context.Context, id, recruiterID uuid.UUID, req model.UpdateQuestionReq) (model.Question, error)
	Delete(ctx context.Context, id, recruiterID uuid.UUID) error
}

// InterviewRepository persists interviews and their status transitions.
type InterviewRepository interface {
	Create(ctx context.Context, iv *model.Interview) error
	GetByID(ctx context.Context, id, recruiterID uuid.UUID) (model.Interview, error)
	GetByConversationID(ctx context.Context, conversationID string) (model.Interview, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.Interview, error)
	// Start transitions SCHEDULED -> IN_PROGRESS and moves the candidate to
	// INTERVIEW_SCHEDULED in the same transaction.
	Start(ctx context.Context, id uuid.UUID, conversationID string, startedAt time.Time) error
	// Complete transitions IN_PROGRESS -> COMPLETED; a no-op for interviews
	// already terminal.
	Complete(ctx context.Context, conversationID string, completedAt time.Time) error
	Cancel(ctx context.Context, id, recruiterID uuid.UUID) (model.Interview, error)
	SetScore(ctx context.Context, id uuid.UUID, overallScore float64, feedback string) error
}

// ResponseRepository persists per-question interview responses.
type ResponseRepository interface {
	CreateBatch(ctx context.Context, responses []model.InterviewResponse) error
	ListByInterview(ctx context.Context, interviewID, recruiterID uuid.UUID) ([]model.InterviewResponse, error)
}

// Repository bundles the postgres implementations over one pool.
type Repository struct {
	Recruiters RecruiterRepository
	Jobs       JobRepository
	Candidates CandidateRepository
	Questions  QuestionRepository
	Interviews InterviewRepository
	Responses  ResponseRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Recruiters: &PostgresRecruiterRepository{db: db},
		Jobs:       &PostgresJobRepository{db: db},
		Candidates: &PostgresCandidateRepository{db: db},
		Questions:  &PostgresQuestionRepository{db: db},
		Interviews: &PostgresInterviewRepository{db: db},
		Responses:  &PostgresResponseRepository{db: db},
	}
}

// execTx runs fn inside a transaction, rolling back on error.
func execTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %v, rollback err: %w", err, rbErr)
		}
		return err
	}
	return tx.Commit(ctx)
}
