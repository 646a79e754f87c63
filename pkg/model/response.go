package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewResponse is one scored answer to one question within one
// interview. Scores come from the external scoring boundary, never from
// this service.
type InterviewResponse struct {
	ResponseID  uuid.UUID `json:"id" db:"response_id"`
	InterviewID uuid.UUID `json:"interviewId" db:"interview_id"`
	QuestionID  uuid.UUID `json:"questionId" db:"question_id"`
	Answer      string    `json:"answer" db:"answer"`
	Score       *float64  `json:"score,omitempty" db:"score"`
	Feedback    *string   `json:"feedback,omitempty" db:"feedback"`
	Duration    int       `json:"duration" db:"duration"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
