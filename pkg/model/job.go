package model

import (
	"time"

	"github.com/google/uuid"
)

type JobPosting struct {
	JobPostingID    uuid.UUID `json:"id" db:"job_posting_id"`
	RecruiterID     uuid.UUID `json:"recruiterId" db:"recruiter_id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Requirements    *string   `json:"requirements,omitempty" db:"requirements"`
	Location        *string   `json:"location,omitempty" db:"location"`
	SalaryRange     *string   `json:"salaryRange,omitempty" db:"salary_range"`
	ExperienceLevel *string   `json:"experienceLevel,omitempty" db:"experience_level"`
	Department      *string   `json:"department,omitempty" db:"department"`
	IsActive        bool      `json:"isActive" db:"is_active"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateJobReq struct {
	Title           string  `json:"title" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Requirements    *string `json:"requirements"`
	Location        *string `json:"location"`
	SalaryRange     *string `json:"salaryRange"`
	ExperienceLevel *string `json:"experienceLevel"`
	Department      *string `json:"department"`
}

// PatchJobReq carries partial updates; nil fields are left untouched.
type PatchJobReq struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Requirements    *string `json:"requirements,omitempty"`
	Location        *string `json:"location,omitempty"`
	SalaryRange     *string `json:"salaryRange,omitempty"`
	ExperienceLevel *string `json:"experienceLevel,omitempty"`
	Department      *string `json:"department,omitempty"`
	IsActive        *bool   `json:"isActive,omitempty"`
}
