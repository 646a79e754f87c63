package scoring

import (
	"context"

	"github.com/google/uuid"
)

// TranscriptEntry is one answered question pulled from a completed call.
type TranscriptEntry struct {
	QuestionID uuid.UUID
	Question   string
	Answer     string
	Duration   int // seconds spent on the answer
}

// Breakdown is one scored answer as produced by the scoring capability.
type Breakdown struct {
	QuestionID uuid.UUID
	Score      float64
	Feedback   string
}

// Result is the full scoring output for one interview.
type Result struct {
	OverallScore float64
	Feedback     string
	Breakdown    []Breakdown
}

// Scorer evaluates an interview transcript. Scoring is an external
// capability (the vendor's AI, eventually); this service only defines the
// boundary and persists whatever a Scorer returns. It must never invent
// scores itself.
type Scorer interface {
	Score(ctx context.Context, interviewID uuid.UUID, transcript []TranscriptEntry) (*Result, error)
}
