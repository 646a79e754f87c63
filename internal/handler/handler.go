package handler

import (
	"context"
	"time"

	"github.com/genius-ayush/voiceHire/internal/auth"
	"github.com/genius-ayush/voiceHire/internal/oration"
	"github.com/genius-ayush/voiceHire/internal/repository"
	"github.com/genius-ayush/voiceHire/internal/scoring"
	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationClient is the slice of the Oration client the handlers use.
type ConversationClient interface {
	CreateConversation(ctx context.Context, toPhoneNumber string, vars oration.DynamicVariables) (*oration.Conversation, error)
	GetConversation(ctx context.Context, conversationID string) (*oration.Conversation, error)
}

// StatusCache holds short-lived vendor status snapshots.
type StatusCache interface {
	Get(ctx context.Context, conversationID string) (*model.InterviewStatusRes, error)
	Set(ctx context.Context, conversationID string, snap *model.InterviewStatusRes) error
}

type Handler struct {
	Logger     *zap.Logger
	Recruiters repository.RecruiterRepository
	Jobs       repository.JobRepository
	Candidates repository.CandidateRepository
	Questions  repository.QuestionRepository
	Interviews repository.InterviewRepository
	Responses  repository.ResponseRepository
	Oration    ConversationClient
	Cache      StatusCache      // optional; nil disables snapshot caching
	Scoring    *scoring.Service // optional; scoring stays off until a Scorer exists
	JwtSecret  string
	JwtTTL     time.Duration
}

// GetClaimsFromContext retrieves the verified token claims set by the auth
// middleware, or nil when the route was reached unauthenticated.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	v, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}
