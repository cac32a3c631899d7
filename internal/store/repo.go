package store

import (
	"context"
	"time"

	"github.com/openclass/quizcore/internal/quiz"
)

// QuizRepo is the question bank accessor. The quiz-taking flow only ever
// reads; writes come from the authoring surfaces (import, generation).
type QuizRepo interface {
	// Get loads a quiz with its questions and options in display order.
	Get(ctx context.Context, id string) (*quiz.Quiz, error)

	// Save persists a complete quiz definition atomically.
	Save(ctx context.Context, qz *quiz.Quiz) error

	// List returns summaries of all stored quizzes.
	List(ctx context.Context) ([]QuizSummary, error)

	// SetPublished toggles the published flag.
	SetPublished(ctx context.Context, id string, published bool) error
}

// QuizSummary is a listing row for stored quizzes.
type QuizSummary struct {
	ID            string
	Title         string
	Language      quiz.Language
	QuestionCount int
	Published     bool
	CreatedAt     time.Time
}

// AttemptRecord is one completed submission, as stored.
type AttemptRecord struct {
	Sequence     int64
	Timestamp    time.Time
	AttemptID    string
	QuizID       string
	OverallScore float64
	DurationSecs int
	TimeExpired  bool
	Questions    []AttemptQuestionRecord
}

// AttemptQuestionRecord is the per-question outcome within an attempt.
type AttemptQuestionRecord struct {
	QuestionID string
	Type       quiz.Type
	Raw        float64
	Weighted   float64
	Feedback   string
}

// AttemptRepo provides append-only access to submission records.
type AttemptRepo interface {
	// Append stores one completed submission. Called exactly once per
	// session; the record is immutable afterwards.
	Append(ctx context.Context, rec AttemptRecord) error

	// ListByQuiz returns attempts for a quiz, most recent first.
	ListByQuiz(ctx context.Context, quizID string, limit int) ([]AttemptRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides access to operational events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns recent LLM events, most recent first.
	ListLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}
