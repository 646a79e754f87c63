package model

import (
	"time"

	"github.com/google/uuid"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Question struct {
	QuestionID     uuid.UUID  `json:"id" db:"question_id"`
	JobPostingID   uuid.UUID  `json:"jobPostingId" db:"job_posting_id"`
	QuestionText   string     `json:"questionText" db:"question_text"`
	Category       *string    `json:"category,omitempty" db:"category"`
	Difficulty     Difficulty `json:"difficulty" db:"difficulty"`
	ExpectedAnswer *string    `json:"expectedAnswer,omitempty" db:"expected_answer"`
	Keywords       []string   `json:"keywords" db:"keywords"`
	MaxDuration    *int       `json:"maxDuration,omitempty" db:"max_duration"`
	Order          *int       `json:"order,omitempty" db:"ord"`
	IsActive       bool       `json:"isActive" db:"is_active"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

type CreateQuestionReq struct {
	QuestionText   string     `json:"questionText" binding:"required"`
	Category       string     `json:"category" binding:"required"`
	Difficulty     Difficulty `json:"difficulty" binding:"required"`
	ExpectedAnswer *string    `json:"expectedAnswer"`
	Keywords       []string   `json:"keywords"`
	MaxDuration    *int       `json:"maxDuration"`
	Order          *int       `json:"order"`
}

type UpdateQuestionReq struct {
	QuestionText   *string     `json:"questionText,omitempty"`
	Category       *string     `json:"category,omitempty"`
	Difficulty     *Difficulty `json:"difficulty,omitempty"`
	ExpectedAnswer *string     `json:"expectedAnswer,omitempty"`
	Keywords       []string    `json:"keywords,omitempty"`
	MaxDuration    *int        `json:"maxDuration,omitempty"`
	Order          *int        `json:"order,omitempty"`
	IsActive       *bool       `json:"isActive,omitempty"`
}
