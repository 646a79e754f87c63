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

// resolveJob parses the :jobId path param and checks the job belongs to the
// authenticated recruiter. Writes the error response itself on failure.
func (h *Handler) resolveJob(c *gin.Context, param string) (model.JobPosting, bool) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return model.JobPosting{}, false
	}

	jobID, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "invalid job id")
		return model.JobPosting{}, false
	}

	job, err := h.Jobs.GetByID(c.Request.Context(), jobID, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job posting not found")
			return model.JobPosting{}, false
		}
		h.Logger.Error("resolve_job: failed to fetch", zap.Error(err))
		response.InternalError(c, "")
		return model.JobPosting{}, false
	}
	return job, true
}

// ListCandidates returns all candidates under a job posting.
func (h *Handler) ListCandidates(c *gin.Context) {
	job, ok := h.resolveJob(c, "jobId")
	if !ok {
		return
	}

	candidates, err := h.Candidates.ListByJob(c.Request.Context(), job.JobPostingID)
	if err != nil {
		h.Logger.Error("list_candidates: failed to fetch", zap.String("job_id", job.JobPostingID.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch candidates")
		return
	}

	response.OK(c, candidates)
}

// CreateCandidate registers a candidate under a job posting.
func (h *Handler) CreateCandidate(c *gin.Context) {
	job, ok := h.resolveJob(c, "jobId")
	if !ok {
		return
	}

	var req model.CreateCandidateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cand := &model.Candidate{
		JobPostingID:   job.JobPostingID,
		Name:           req.Name,
		Email:          req.Email,
		PhoneNo:        req.PhoneNo,
		Resume:         req.Resume,
		Experience:     req.Experience,
		Skills:         req.Skills,
		CurrentCompany: req.CurrentCompany,
		CurrentRole:    req.CurrentRole,
		ExpectedSalary: req.ExpectedSalary,
		NoticePeriod:   req.NoticePeriod,
		Location:       req.Location,
	}
	if err := h.Candidates.Create(c.Request.Context(), cand); err != nil {
		h.Logger.Error("create_candidate: failed to create", zap.String("job_id", job.JobPostingID.String()), zap.Error(err))
		response.InternalError(c, "failed to create candidate")
		return
	}

	h.Logger.Info("create_candidate: candidate created",
		zap.String("candidate_id", cand.CandidateID.String()),
		zap.String("job_id", job.JobPostingID.String()),
	)
	response.Created(c, cand)
}

// GetCandidate returns one candidate, scoped to the recruiter's jobs.
func (h *Handler) GetCandidate(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	candidateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid candidate id")
		return
	}

	cand, err := h.Candidates.GetByID(c.Request.Context(), candidateID, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "candidate not found")
			return
		}
		h.Logger.Error("get_candidate: failed to fetch", zap.String("candidate_id", candidateID.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch candidate")
		return
	}

	response.OK(c, cand)
}

// UpdateCandidateStatus moves a candidate through the pipeline.
func (h *Handler) UpdateCandidateStatus(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	candidateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid candidate id")
		return
	}

	var req model.UpdateCandidateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		response.BadRequest(c, "invalid candidate status")
		return
	}

	cand, err := h.Candidates.UpdateStatus(c.Request.Context(), candidateID, claims.RecruiterID, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "candidate not found")
			return
		}
		h.Logger.Error("update_candidate_status: failed to update", zap.String("candidate_id", candidateID.String()), zap.Error(err))
		response.InternalError(c, "failed to update candidate")
		return
	}

	h.Logger.Info("update_candidate_status: status changed",
		zap.String("candidate_id", candidateID.String()),
		zap.String("status", string(req.Status)),
	)
	response.OK(c, cand)
}
