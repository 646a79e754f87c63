package scoring

import (
	"context"
	"errors"

	"github.com/genius-ayush/voiceHire/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrScorerNotConfigured = errors.New("no scorer configured")

// InterviewStore is the slice of the interview repository the service needs.
type InterviewStore interface {
	SetScore(ctx context.Context, id uuid.UUID, overallScore float64, feedback string) error
}

// ResponseStore persists scored per-question responses.
type ResponseStore interface {
	CreateBatch(ctx context.Context, responses []model.InterviewResponse) error
}

// Service feeds a transcript through the configured Scorer and persists the
// result. When no Scorer is configured (the default until the vendor exposes
// transcripts), scoring is simply unavailable; nothing is invented.
type Service struct {
	scorer     Scorer
	interviews InterviewStore
	responses  ResponseStore
	logger     *zap.Logger
}

func NewService(scorer Scorer, interviews InterviewStore, responses ResponseStore, logger *zap.Logger) *Service {
	return &Service{scorer: scorer, interviews: interviews, responses: responses, logger: logger}
}

func (s *Service) Enabled() bool {
	return s.scorer != nil
}

// ScoreAndRecord runs the scorer over a transcript and writes the overall
// score onto the interview plus one response row per answered question.
func (s *Service) ScoreAndRecord(ctx context.Context, interviewID uuid.UUID, transcript []TranscriptEntry) (*Result, error) {
	if s.scorer == nil {
		return nil, ErrScorerNotConfigured
	}

	result, err := s.scorer.Score(ctx, interviewID, transcript)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uuid.UUID]TranscriptEntry, len(transcript))
	for _, entry := range transcript {
		byQuestion[entry.QuestionID] = entry
	}

	responses := make([]model.InterviewResponse, 0, len(result.Breakdown))
	for _, b := range result.Breakdown {
		entry, ok := byQuestion[b.QuestionID]
		if !ok {
			// scorer answered a question that was never asked
			s.logger.Warn("scoring: breakdown for unknown question",
				zap.String("interview_id", interviewID.String()),
				zap.String("question_id", b.QuestionID.String()),
			)
			continue
		}
		score := b.Score
		feedback := b.Feedback
		responses = append(responses, model.InterviewResponse{
			InterviewID: interviewID,
			QuestionID:  b.QuestionID,
			Answer:      entry.Answer,
			Score:       &score,
			Feedback:    &feedback,
			Duration:    entry.Duration,
		})
	}

	if err := s.responses.CreateBatch(ctx, responses); err != nil {
		return nil, err
	}
	if err := s.interviews.SetScore(ctx, interviewID, result.OverallScore, result.Feedback); err != nil {
		return nil, err
	}
	return result, nil
}
