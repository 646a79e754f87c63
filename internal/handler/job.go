package handler

import (
	"errors"

	"github.com/genius-ayush/voiceHire/internal/repository"
	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/genius-ayush/voiceHire/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListJobs returns all job postings owned by the authenticated recruiter.
func (h *Handler) ListJobs(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobs, err := h.Jobs.ListByRecruiter(c.Request.Context(), claims.RecruiterID)
	if err != nil {
		h.Logger.Error("list_jobs: failed to fetch", zap.Error(err))
		response.InternalError(c, "failed to fetch job postings")
		return
	}

	response.OK(c, jobs)
}

// CreateJob creates a job posting under the authenticated recruiter.
func (h *Handler) CreateJob(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job := &model.JobPosting{
		RecruiterID:     claims.RecruiterID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		ExperienceLevel: req.ExperienceLevel,
		Department:      req.Department,
	}
	if err := h.Jobs.Create(c.Request.Context(), job); err != nil {
		h.Logger.Error("create_job: failed to create", zap.Error(err))
		response.InternalError(c, "failed to create job posting")
		return
	}

	h.Logger.Info("create_job: job posting created",
		zap.String("job_id", job.JobPostingID.String()),
		zap.String("recruiter_id", claims.RecruiterID.String()),
	)
	response.Created(c, job)
}

// GetJob returns one job posting; 404 covers both unknown and foreign jobs.
func (h *Handler) GetJob(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	job, err := h.Jobs.GetByID(c.Request.Context(), jobID, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job posting not found")
			return
		}
		h.Logger.Error("get_job: failed to fetch", zap.String("job_id", jobID.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch job posting")
		return
	}

	response.OK(c, job)
}

// PatchJob applies a partial update to a job posting.
func (h *Handler) PatchJob(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	var req model.PatchJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job, err := h.Jobs.Update(c.Request.Context(), jobID, claims.RecruiterID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job posting not found")
			return
		}
		h.Logger.Error("patch_job: failed to update", zap.String("job_id", jobID.String()), zap.Error(err))
		response.InternalError(c, "failed to update job posting")
		return
	}

	response.OK(c, job)
}

// DeleteJob removes a job posting and, by cascade, everything under it.
func (h *Handler) DeleteJob(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	if err := h.Jobs.Delete(c.Request.Context(), jobID, claims.RecruiterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job posting not found")
			return
		}
		h.Logger.Error("delete_job: failed to delete", zap.String("job_id", jobID.String()), zap.Error(err))
		response.InternalError(c, "failed to delete job posting")
		return
	}

	h.Logger.Info("delete_job: job posting deleted", zap.String("job_id", jobID.String()))
	response.NoContent(c)
}

// ListJobInterviews returns all interviews under one job posting.
func (h *Handler) ListJobInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Jobs.GetByID(ctx, jobID, claims.RecruiterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job posting not found")
			return
		}
		h.Logger.Error("list_job_interviews: failed to fetch job", zap.Error(err))
		response.InternalError(c, "failed to fetch interviews")
		return
	}

	interviews, err := h.Interviews.ListByJob(ctx, jobID)
	if err != nil {
		h.Logger.Error("list_job_interviews: failed to fetch", zap.String("job_id", jobID.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch interviews")
		return
	}

	response.OK(c, interviews)
}
