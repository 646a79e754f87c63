package handler

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/genius-ayush/voiceHire/internal/oration"
	"github.com/genius-ayush/voiceHire/internal/repository"
	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/genius-ayush/voiceHire/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConductInterview triggers an AI-conducted phone interview through the
// vendor. Validation happens before any outbound call; the interview row is
// created up front as SCHEDULED and only moves to IN_PROGRESS once the
// vendor confirms the call, so a vendor failure leaves it SCHEDULED for a
// later retry.
func (h *Handler) ConductInterview(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.ConductInterviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "missing required fields: jobId, candidateId, candidatePhone, candidateName, jobTitle, questions")
		return
	}

	ctx := c.Request.Context()
	job, err := h.Jobs.GetByID(ctx, req.JobID, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "job posting not found")
			return
		}
		h.Logger.Error("conduct_interview: failed to fetch job", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	cand, err := h.Candidates.GetByID(ctx, req.CandidateID, claims.RecruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "candidate not found")
			return
		}
		h.Logger.Error("conduct_interview: failed to fetch candidate", zap.Error(err))
		response.InternalError(c, "")
		return
	}
	if cand.JobPostingID != job.JobPostingID {
		response.NotFound(c, "candidate not found for this job")
		return
	}

	interview := &model.Interview{
		CandidateID:  cand.CandidateID,
		JobPostingID: job.JobPostingID,
		ScheduledAt:  time.Now(),
	}
	if err := h.Interviews.Create(ctx, interview); err != nil {
		h.Logger.Error("conduct_interview: failed to create interview", zap.Error(err))
		response.InternalError(c, "failed to create interview")
		return
	}

	recruiterName := "HR Team"
	if req.RecruiterName != nil && *req.RecruiterName != "" {
		recruiterName = *req.RecruiterName
	}
	companyName := "our company"
	if req.CompanyName != nil && *req.CompanyName != "" {
		companyName = *req.CompanyName
	}
	questionsJSON, err := json.Marshal(req.Questions)
	if err != nil {
		response.BadRequest(c, "invalid questions")
		return
	}

	conv, err := h.Oration.CreateConversation(ctx, req.CandidatePhone, oration.DynamicVariables{
		CandidateName: req.CandidateName,
		JobTitle:      req.JobTitle,
		RecruiterName: recruiterName,
		CompanyName:   companyName,
		Questions:     string(questionsJSON),
	})
	if err != nil {
		// the SCHEDULED interview row stays behind for a retry
		h.Logger.Error("conduct_interview: vendor call failed",
			zap.String("interview_id", interview.InterviewID.String()),
			zap.Error(err),
		)
		if oration.IsTimeout(err) {
			response.ServiceUnavailable(c, "interview provider timed out")
			return
		}
		response.BadGateway(c, "failed to initiate interview")
		return
	}

	startedAt := time.Now()
	if conv.CallStartTime != nil {
		startedAt = *conv.CallStartTime
	}
	if err := h.Interviews.Start(ctx, interview.InterviewID, conv.ID, startedAt); err != nil {
		h.Logger.Error("conduct_interview: failed to record start",
			zap.String("interview_id", interview.InterviewID.String()),
			zap.String("conversation_id", conv.ID),
			zap.Error(err),
		)
		response.InternalError(c, "failed to record interview start")
		return
	}

	h.Logger.Info("conduct_interview: interview initiated",
		zap.String("interview_id", interview.InterviewID.String()),
		zap.String("conversation_id", conv.ID),
	)
	response.OK(c, model.ConductInterviewRes{
		InterviewID:    interview.InterviewID,
		ConversationID: conv.ID,
		Status:         conv.Status,
		CandidateName:  req.CandidateName,
		CandidatePhone: req.CandidatePhone,
		StartTime:      conv.CallStartTime,
	})
}

// GetInterviewStatus returns the vendor's view of a conversation, cached for
// a short TTL. A terminal vendor status also completes the interview row.
func (h *Handler) GetInterviewStatus(c *gin.Context) {
	conversationID := c.Param("id")
	if conversationID == "" {
		response.BadRequest(c, "conversation id is required")
		return
	}

	ctx := c.Request.Context()
	if h.Cache != nil {
		if snap, err := h.Cache.Get(ctx, conversationID); err != nil {
			h.Logger.Warn("interview_status: cache read failed", zap.Error(err))
		} else if snap != nil {
			response.OK(c, snap)
			return
		}
	}

	conv, err := h.Oration.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, oration.ErrConversationNotFound) {
			response.NotFound(c, "interview not found")
			return
		}
		h.Logger.Error("interview_status: vendor call failed",
			zap.String("conversation_id", conversationID),
			zap.Error(err),
		)
		if oration.IsTimeout(err) {
			response.ServiceUnavailable(c, "interview provider timed out")
			return
		}
		response.BadGateway(c, "failed to get interview status")
		return
	}

	snap := snapshotFromConversation(conv)

	if conv.Terminal() {
		completedAt := time.Now()
		if conv.CallEndTime != nil {
			completedAt = *conv.CallEndTime
		}
		if err := h.Interviews.Complete(ctx, conversationID, completedAt); err != nil {
			h.Logger.Error("interview_status: failed to complete interview",
				zap.String("conversation_id", conversationID),
				zap.Error(err),
			)
		}
	}

	if h.Cache != nil {
		if err := h.Cache.Set(ctx, conversationID, snap); err != nil {
			h.Logger.Warn("interview_status: cache write failed", zap.Error(err))
		}
	}

	response.OK(c, snap)
}

// CancelInterview moves a non-terminal interview to CANCELLED.
func (h *Handler) CancelInterview(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid interview id")
		return
	}

	interview, err := h.Interviews.Cancel(c.Request.Context(), interviewID, claims.RecruiterID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.NotFound(c, "interview not found")
		case errors.Is(err, repository.ErrTerminalState):
			response.Conflict(c, "interview already completed or cancelled")
		default:
			h.Logger.Error("cancel_interview: failed to cancel", zap.String("interview_id", interviewID.String()), zap.Error(err))
			response.InternalError(c, "failed to cancel interview")
		}
		return
	}

	h.Logger.Info("cancel_interview: interview cancelled", zap.String("interview_id", interviewID.String()))
	response.OK(c, interview)
}

// ListInterviewResponses returns the stored per-question responses for one
// interview.
func (h *Handler) ListInterviewResponses(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	interviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid interview id")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Interviews.GetByID(ctx, interviewID, claims.RecruiterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "interview not found")
			return
		}
		h.Logger.Error("list_responses: failed to fetch interview", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	responses, err := h.Responses.ListByInterview(ctx, interviewID, claims.RecruiterID)
	if err != nil {
		h.Logger.Error("list_responses: failed to fetch", zap.String("interview_id", interviewID.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch responses")
		return
	}

	response.OK(c, gin.H{"responses": responses})
}

func snapshotFromConversation(conv *oration.Conversation) *model.InterviewStatusRes {
	snap := &model.InterviewStatusRes{
		ConversationID:  conv.ID,
		Status:          conv.Status,
		TelephonyStatus: conv.TelephonyStatus,
		StartTime:       conv.CallStartTime,
		EndTime:         conv.CallEndTime,
		UserJoinTime:    conv.UserJoinTime,
		UserLeaveTime:   conv.UserLeaveTime,
		EndReason:       conv.EndReason,
		Summary:         conv.Summary,
		RecordingStatus: conv.RecordingStatus,
	}
	if conv.CallStartTime != nil && conv.CallEndTime != nil {
		seconds := int(conv.CallEndTime.Sub(*conv.CallStartTime).Round(time.Second).Seconds())
		snap.Duration = &seconds
	}
	return snap
}
