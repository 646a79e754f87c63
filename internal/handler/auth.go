package handler

import (
	"errors"

	"github.com/genius-ayush/voiceHire/internal/auth"
	"github.com/genius-ayush/voiceHire/internal/repository"
	"github.com/genius-ayush/voiceHire/pkg"
	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/genius-ayush/voiceHire/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Register creates a recruiter account and returns a signed token.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("register: failed to hash password", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	recruiter := &model.Recruiter{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Company:      req.Company,
	}
	if err := h.Recruiters.Create(ctx, recruiter); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			response.Conflict(c, "recruiter already exists")
			return
		}
		h.Logger.Error("register: failed to create recruiter", zap.String("email", req.Email), zap.Error(err))
		response.InternalError(c, "registration failed")
		return
	}

	token, err := auth.GenerateToken(h.JwtSecret, recruiter.RecruiterID, h.JwtTTL)
	if err != nil {
		h.Logger.Error("register: failed to sign token", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	h.Logger.Info("register: recruiter created", zap.String("recruiter_id", recruiter.RecruiterID.String()))
	response.Created(c, model.TokenRes{Token: token, ID: recruiter.RecruiterID})
}

// Login verifies credentials and returns a signed token.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	recruiter, err := h.Recruiters.GetByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			h.Logger.Error("login: lookup failed", zap.Error(err))
		}
		response.Unauthorized(c, "invalid email or password")
		return
	}

	if err := pkg.ComparePassword(recruiter.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "invalid email or password")
		return
	}

	token, err := auth.GenerateToken(h.JwtSecret, recruiter.RecruiterID, h.JwtTTL)
	if err != nil {
		h.Logger.Error("login: failed to sign token", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	response.OK(c, model.TokenRes{Token: token, ID: recruiter.RecruiterID})
}

// Me returns the authenticated recruiter's profile.
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.BadRequest(c, "invalid recruiter id")
		return
	}

	recruiter, err := h.Recruiters.GetByID(c.Request.Context(), claims.RecruiterID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Forbidden(c, "recruiter not found")
			return
		}
		h.Logger.Error("me: lookup failed", zap.Error(err))
		response.InternalError(c, "")
		return
	}

	response.OK(c, model.MeRes{
		Recruiter:   recruiter.Name,
		Email:       recruiter.Email,
		RecruiterID: recruiter.RecruiterID,
	})
}
