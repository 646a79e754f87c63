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

// ListQuestions returns all questions for a job posting, explicit order
// first.
func (h *Handler) ListQuestions(c *gin.Context) {
	job, ok := h.resolveJob(c, "jobId")
	if !ok {
		return
	}

	questions, err := h.Questions.ListByJob(c.Request.Context(), job.JobPostingID)
	if err != nil {
		h.Logger.Error("list_questions: failed to fetch", zap.String("job_id", job.JobPostingID.String()), zap.Error(err))
		response.InternalError(c, "failed to fetch questions")
		return
	}

	response.OK(c, gin.H{"questions": questions})
}

// CreateQuestion adds an interview question to a job posting.
func (h *Handler) CreateQuestion(c *gin.Context) {
	job, ok := h.resolveJob(c, "jobId")
	if !ok {
		return
	}

	var req model.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.Difficulty.Valid() {
		response.BadRequest(c, "difficulty must be EASY, MEDIUM or HARD")
		return
	}

	question := &model.Question{
		JobPostingID:   job.JobPostingID,
		QuestionText:   req.QuestionText,
		Category:       &req.Category,
		Difficulty:     req.Difficulty,
		ExpectedAnswer: req.ExpectedAnswer,
		Keywords:       req.Keywords,
		MaxDuration:    req.MaxDuration,
		Order:          req.Order,
	}
	if err := h.Questions.Create(c.Request.Context(), question); err != nil {
		h.Logger.Error("create_question: failed to create", zap.String("job_id", job.JobPostingID.String()), zap.Error(err))
		response.InternalError(c, "failed to create question")
		return
	}

	h.Logger.Info("create_question: question created",
		zap.String("question_id", question.QuestionID.String()),
		zap.String("job_id", job.JobPostingID.String()),
	)
	response.Created(c, gin.H{"question": question})
}

// UpdateQuestion applies a partial update to a question.
func (h *Handler) UpdateQuestion(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	var req model.UpdateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Difficulty != nil && !req.Difficulty.Valid() {
		response.BadRequest(c, "difficulty must be EASY, MEDIUM or HARD")
		return
	}

	question, err := h.Questions.Update(c.Request.Context(), questionID, claims.RecruiterID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "question not found")
			return
		}
		h.Logger.Error("update_question: failed to update", zap.String("question_id", questionID.String()), zap.Error(err))
		response.InternalError(c, "failed to update question")
		return
	}

	response.OK(c, gin.H{"question": question})
}

// DeleteQuestion removes a question.
func (h *Handler) DeleteQuestion(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid question id")
		return
	}

	if err := h.Questions.Delete(c.Request.Context(), questionID, claims.RecruiterID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "question not found")
			return
		}
		h.Logger.Error("delete_question: failed to delete", zap.String("question_id", questionID.String()), zap.Error(err))
		response.InternalError(c, "failed to delete question")
		return
	}

	response.NoContent(c)
}
