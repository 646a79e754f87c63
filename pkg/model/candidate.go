package model

import (
	"time"

	"github.com/google/uuid"
)

type CandidateStatus string

const (
	CandidateStatusApplied            CandidateStatus = "APPLIED"
	CandidateStatusScreening          CandidateStatus = "SCREENING"
	CandidateStatusInterviewScheduled CandidateStatus = "INTERVIEW_SCHEDULED"
	CandidateStatusInterviewed        CandidateStatus = "INTERVIEWED"
	CandidateStatusSelected           CandidateStatus = "SELECTED"
	CandidateStatusRejected           CandidateStatus = "REJECTED"
	CandidateStatusHired              CandidateStatus = "HIRED"
)

// Valid reports whether s is one of the pipeline statuses.
func (s CandidateStatus) Valid() bool {
	switch s {
	case CandidateStatusApplied, CandidateStatusScreening, CandidateStatusInterviewScheduled,
		CandidateStatusInterviewed, CandidateStatusSelected, CandidateStatusRejected, CandidateStatusHired:
		return true
	}
	return false
}

type Candidate struct {
	CandidateID    uuid.UUID       `json:"id" db:"candidate_id"`
	JobPostingID   uuid.UUID       `json:"jobPostingId" db:"job_posting_id"`
	Name           string          `json:"name" db:"name"`
	Email          string          `json:"email" db:"email"`
	PhoneNo        string          `json:"phoneNo" db:"phone_no"`
	Resume         *string         `json:"resume,omitempty" db:"resume"`
	Experience     *string         `json:"experience,omitempty" db:"experience"`
	Skills         []string        `json:"skills" db:"skills"`
	CurrentCompany *string         `json:"currentCompany,omitempty" db:"current_company"`
	CurrentRole    *string         `json:"currentRole,omitempty" db:"current_role"`
	ExpectedSalary *string         `json:"expectedSalary,omitempty" db:"expected_salary"`
	NoticePeriod   *string         `json:"noticePeriod,omitempty" db:"notice_period"`
	Location       *string         `json:"location,omitempty" db:"location"`
	Status         CandidateStatus `json:"status" db:"status"`
	AppliedAt      time.Time       `json:"appliedAt" db:"applied_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

type CreateCandidateReq struct {
	Name           string   `json:"name" binding:"required,min=2"`
	Email          string   `json:"email" binding:"required,email"`
	PhoneNo        string   `json:"phoneNo" binding:"required,min=10"`
	Resume         *string  `json:"resume"`
	Experience     *string  `json:"experience"`
	Skills         []string `json:"skills"`
	CurrentCompany *string  `json:"currentCompany"`
	CurrentRole    *string  `json:"currentRole"`
	ExpectedSalary *string  `json:"expectedSalary"`
	NoticePeriod   *string  `json:"noticePeriod"`
	Location       *string  `json:"location"`
}

type UpdateCandidateStatusReq struct {
	Status CandidateStatus `json:"status" binding:"required"`
}
