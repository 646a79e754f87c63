package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewStatus string

const (
	InterviewStatusScheduled  InterviewStatus = "SCHEDULED"
	InterviewStatusInProgress InterviewStatus = "IN_PROGRESS"
	InterviewStatusCompleted  InterviewStatus = "COMPLETED"
	InterviewStatusCancelled  InterviewStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed.
func (s InterviewStatus) Terminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}

type Interview struct {
	InterviewID    uuid.UUID       `json:"id" db:"interview_id"`
	CandidateID    uuid.UUID       `json:"candidateId" db:"candidate_id"`
	JobPostingID   uuid.UUID       `json:"jobPostingId" db:"job_posting_id"`
	ConversationID *string         `json:"conversationId,omitempty" db:"conversation_id"`
	ScheduledAt    time.Time       `json:"scheduledAt" db:"scheduled_at"`
	StartedAt      *time.Time      `json:"startedAt,omitempty" db:"started_at"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty" db:"completed_at"`
	Status         InterviewStatus `json:"status" db:"status"`
	OverallScore   *float64        `json:"overallScore,omitempty" db:"overall_score"`
	Feedback       *string         `json:"feedback,omitempty" db:"feedback"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

type ConductInterviewReq struct {
	JobID          uuid.UUID `json:"jobId" binding:"required"`
	CandidateID    uuid.UUID `json:"candidateId" binding:"required"`
	CandidatePhone string    `json:"candidatePhone" binding:"required"`
	CandidateName  string    `json:"candidateName" binding:"required"`
	JobTitle       string    `json:"jobTitle" binding:"required"`
	Questions      []string  `json:"questions" binding:"required,min=1"`
	RecruiterName  *string   `json:"recruiterName"`
	CompanyName    *string   `json:"companyName"`
}

type ConductInterviewRes struct {
	InterviewID    uuid.UUID  `json:"interviewId"`
	ConversationID string     `json:"conversationId"`
	Status         string     `json:"status"`
	CandidateName  string     `json:"candidateName"`
	CandidatePhone string     `json:"candidatePhone"`
	StartTime      *time.Time `json:"startTime,omitempty"`
}

// InterviewStatusRes mirrors the vendor conversation snapshot the dashboard
// polls while a call is live.
type InterviewStatusRes struct {
	ConversationID  string     `json:"conversationId"`
	Status          string     `json:"status"`
	TelephonyStatus string     `json:"telephonyStatus,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	UserJoinTime    *time.Time `json:"userJoinTime,omitempty"`
	UserLeaveTime   *time.Time `json:"userLeaveTime,omitempty"`
	EndReason       string     `json:"endReason,omitempty"`
	Duration        *int       `json:"duration,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	RecordingStatus string     `json:"recordingStatus,omitempty"`
}
