package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRecruiterRepository is the concrete implementation for recruiters.
type PostgresRecruiterRepository struct {
	db *pgxpool.Pool
}

// Create inserts a new recruiter, filling in the generated id and timestamps.
func (r *PostgresRecruiterRepository) Create(ctx context.Context, rec *model.Recruiter) error {
	rec.RecruiterID = uuid.New()
	const q = `
INSERT INTO recruiters (recruiter_id, name, email, password_hash, company, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING created_at, updated_at
`
	row := r.db.QueryRow(ctx, q, rec.RecruiterID, rec.Name, rec.Email, rec.PasswordHash, rec.Company)
	if err := row.Scan(&rec.CreatedAt, &rec.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		// unique_violation on recruiters.email
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert recruiter: %w", err)
	}
	return nil
}

// GetByEmail returns a recruiter by email.
func (r *PostgresRecruiterRepository) GetByEmail(ctx context.Context, email string) (model.Recruiter, error) {
	const q = `
SELECT recruiter_id, name, email, password_hash, company, created_at, updated_at
FROM recruiters
WHERE email = $1
`
	return r.scanOne(r.db.QueryRow(ctx, q, email))
}

// GetByID returns a recruiter by id.
func (r *PostgresRecruiterRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Recruiter, error) {
	const q = `
SELECT recruiter_id, name, email, password_hash, company, created_at, updated_at
FROM recruiters
WHERE recruiter_id = $1
`
	return r.scanOne(r.db.QueryRow(ctx, q, id))
}

func (r *PostgresRecruiterRepository) scanOne(row pgx.Row) (model.Recruiter, error) {
	var rec model.Recruiter
	err := row.Scan(&rec.RecruiterID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.Company, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Recruiter{}, ErrNotFound
		}
		return model.Recruiter{}, fmt.Errorf("scan recruiter: %w", err)
	}
	return rec, nil
}
