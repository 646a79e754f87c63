package model

import (
	"time"

	"github.com/google/uuid"
)

type Recruiter struct {
	RecruiterID  uuid.UUID `json:"recruiter_id" db:"recruiter_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Company      *string   `json:"company,omitempty" db:"company"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type RegisterReq struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Company  *string `json:"company"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenRes is the response shape for both register and login.
type TokenRes struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
}

type MeRes struct {
	Recruiter   string    `json:"recruiter"`
	Email       string    `json:"email"`
	RecruiterID uuid.UUID `json:"recruiterId"`
}
