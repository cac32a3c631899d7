package quizgen

import "github.com/openclass/quizcore/internal/quiz"

// Spec describes the quiz an author wants generated.
type Spec struct {
	// Topic is the subject matter, e.g. "photosynthesis" or
	// "Go concurrency primitives".
	Topic string

	// Language is the language questions are written in.
	Language quiz.Language

	// Difficulty is a free-form hint: "introductory", "advanced", …
	Difficulty string

	// Question counts per type. At least one must be positive.
	NumMCQ         int
	NumTrueFalse   int
	NumShortAnswer int

	// TimeLimitMinutes for the generated quiz.
	TimeLimitMinutes int

	// Weights for the generated quiz.
	Weights quiz.Weights
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for quiz generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
