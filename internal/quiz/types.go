package quiz

// Type identifies how a question is answered and scored.
type Type string

const (
	// TypeMCQ is a multiple choice question with one correct option.
	TypeMCQ Type = "mcq"

	// TypeTrueFalse is a two-option question with one correct option.
	TypeTrueFalse Type = "true_false"

	// TypeShortAnswer is a free-text question graded by the evaluator.
	TypeShortAnswer Type = "short_answer"
)

// Objective reports whether questions of this type are scored locally
// by option comparison (as opposed to delegated free-text grading).
func (t Type) Objective() bool {
	return t == TypeMCQ || t == TypeTrueFalse
}

// Language selects the presentation language for feedback strings.
// It never affects scoring.
type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// Option is one selectable answer on an objective question.
type Option struct {
	// ID is the stable identifier the learner's selection refers to.
	ID string

	// Text is the option label shown to the learner.
	Text string

	// Correct marks the single correct option of the question.
	Correct bool
}

// Question is a single item within a quiz.
type Question struct {
	ID     string
	QuizID string
	Type   Type

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options is populated for MCQ and true/false questions only.
	// Short answer questions have none.
	Options []Option
}

// CorrectOptionID returns the id of the correct option, or false when the
// question has no options (short answer) or no option is marked correct.
func (q *Question) CorrectOptionID() (string, bool) {
	for _, opt := range q.Options {
		if opt.Correct {
			return opt.ID, true
		}
	}
	return "", false
}

// Option returns the option with the given id, or nil.
func (q *Question) Option(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// Weights holds the per-type scoring weights configured on a quiz.
// Each weight is a non-negative multiplier applied to the raw score of
// every question of that type.
type Weights struct {
	MCQ         float64
	TrueFalse   float64
	ShortAnswer float64
}

// ForType returns the weight applied to questions of type t.
func (w Weights) ForType(t Type) float64 {
	switch t {
	case TypeMCQ:
		return w.MCQ
	case TypeTrueFalse:
		return w.TrueFalse
	case TypeShortAnswer:
		return w.ShortAnswer
	}
	return 0
}

// Quiz is a gradable assessment: an ordered set of questions plus the
// scoring configuration. Authored once, read-only for the taking flow.
type Quiz struct {
	ID       string
	Title    string
	Language Language

	// TimeLimitMinutes is the countdown budget for one attempt.
	TimeLimitMinutes int

	Weights Weights

	// Criteria is the natural-language grading instruction passed to the
	// evaluator for short answer questions.
	Criteria string

	// Published gates whether learners may start an attempt.
	Published bool

	Questions []Question
}

// Question returns the question with the given id, or nil.
func (qz *Quiz) Question(id string) *Question {
	for i := range qz.Questions {
		if qz.Questions[i].ID == id {
			return &qz.Questions[i]
		}
	}
	return nil
}

// TotalWeight sums the per-type weight over every question in the quiz.
// This is the denominator of the overall score.
func (qz *Quiz) TotalWeight() float64 {
	total := 0.0
	for i := range qz.Questions {
		total += qz.Weights.ForType(qz.Questions[i].Type)
	}
	return total
}
