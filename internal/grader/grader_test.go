package grader

import (
	"context"
	"errors"
	"testing"

	"github.com/openclass/quizcore/internal/quiz"
)

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:               "quiz-1",
		Title:            "Photosynthesis basics",
		Language:         quiz.LangEnglish,
		TimeLimitMinutes: 10,
		Weights:          quiz.Weights{MCQ: 1, TrueFalse: 1, ShortAnswer: 2},
		Published:        true,
		Questions: []quiz.Question{
			{
				ID: "q1", QuizID: "quiz-1", Type: quiz.TypeMCQ,
				Prompt: "Which gas do plants absorb?",
				Options: []quiz.Option{
					{ID: "o1", Text: "Oxygen"},
					{ID: "o2", Text: "Carbon dioxide", Correct: true},
					{ID: "o3", Text: "Nitrogen"},
				},
			},
			{
				ID: "q2", QuizID: "quiz-1", Type: quiz.TypeTrueFalse,
				Prompt: "Photosynthesis happens in the mitochondria.",
				Options: []quiz.Option{
					{ID: "t", Text: "True"},
					{ID: "f", Text: "False", Correct: true},
				},
			},
			{
				ID: "q3", QuizID: "quiz-1", Type: quiz.TypeShortAnswer,
				Prompt: "Explain the role of chlorophyll.",
			},
		},
	}
}

func TestGrade_AllCorrect(t *testing.T) {
	mock := NewMockEvaluator()
	mock.Results["It absorbs light energy"] = EvalResult{Score: 1, Feedback: "Exactly right."}

	res := New(mock).Grade(context.Background(), testQuiz(), map[string]string{
		"q1": "o2",
		"q2": "f",
		"q3": "It absorbs light energy",
	})

	if res.Overall != 1 {
		t.Errorf("overall = %v, want 1", res.Overall)
	}
	for _, qr := range res.Questions {
		if qr.Raw != 1 {
			t.Errorf("question %s raw = %v, want 1", qr.QuestionID, qr.Raw)
		}
	}
	if got := res.ByQuestion("q1").Feedback; got != "Correct" {
		t.Errorf("q1 feedback = %q", got)
	}
}

func TestGrade_WeightedAggregate(t *testing.T) {
	// MCQ correct (1×1), TF wrong (0×1), short answer 0.8 (0.8×2).
	// Overall = (1 + 0 + 1.6) / 4 = 0.65.
	mock := NewMockEvaluator()
	mock.Results["partial"] = EvalResult{Score: 0.8, Feedback: "Good but incomplete."}

	res := New(mock).Grade(context.Background(), testQuiz(), map[string]string{
		"q1": "o2",
		"q2": "t",
		"q3": "partial",
	})

	if res.Overall != 0.65 {
		t.Errorf("overall = %v, want 0.65", res.Overall)
	}
	if got := res.ByQuestion("q3").Weighted; got != 1.6 {
		t.Errorf("q3 weighted = %v, want 1.6", got)
	}
}

func TestGrade_MixedEqualWeights(t *testing.T) {
	// MCQ correct (1×1) plus short answer at 0.8 (0.8×1): overall 0.9.
	qz := testQuiz()
	qz.Weights = quiz.Weights{MCQ: 1, TrueFalse: 0, ShortAnswer: 1}
	qz.Questions = []quiz.Question{qz.Questions[0], qz.Questions[2]}

	mock := NewMockEvaluator()
	mock.Results["good answer"] = EvalResult{Score: 0.8, Feedback: "Good"}

	res := New(mock).Grade(context.Background(), qz, map[string]string{
		"q1": "o2",
		"q3": "good answer",
	})

	if res.Overall != 0.9 {
		t.Errorf("overall = %v, want 0.9", res.Overall)
	}
}

func TestGrade_OverallRounding(t *testing.T) {
	// One MCQ answered wrong, one short answer at 1/3 credit with
	// weight 1 each: overall = (0 + 0.333…) / 2 = 0.1666… → 0.17.
	qz := testQuiz()
	qz.Weights = quiz.Weights{MCQ: 1, TrueFalse: 0, ShortAnswer: 1}
	qz.Questions = qz.Questions[:1]
	qz.Questions = append(qz.Questions, quiz.Question{
		ID: "q3", QuizID: "quiz-1", Type: quiz.TypeShortAnswer, Prompt: "Explain.",
	})

	mock := NewMockEvaluator()
	mock.Results["x"] = EvalResult{Score: 1.0 / 3.0, Feedback: "Thin."}

	res := New(mock).Grade(context.Background(), qz, map[string]string{
		"q1": "o1",
		"q3": "x",
	})

	if res.Overall != 0.17 {
		t.Errorf("overall = %v, want 0.17", res.Overall)
	}
}

func TestGrade_UnansweredObjective(t *testing.T) {
	res := New(NewMockEvaluator()).Grade(context.Background(), testQuiz(), map[string]string{})

	q1 := res.ByQuestion("q1")
	if q1.Raw != 0 || q1.Weighted != 0 {
		t.Errorf("unanswered q1 = %+v, want zero scores", q1)
	}
	if q1.Feedback != "Incorrect" {
		t.Errorf("q1 feedback = %q", q1.Feedback)
	}
}

func TestGrade_UnknownOptionID(t *testing.T) {
	res := New(NewMockEvaluator()).Grade(context.Background(), testQuiz(), map[string]string{
		"q1": "no-such-option",
	})

	if got := res.ByQuestion("q1").Raw; got != 0 {
		t.Errorf("unknown option raw = %v, want 0", got)
	}
}

func TestGrade_BlankShortAnswerSkipsEvaluator(t *testing.T) {
	mock := NewMockEvaluator()

	res := New(mock).Grade(context.Background(), testQuiz(), map[string]string{
		"q1": "o2",
		"q2": "f",
	})

	if mock.CallCount() != 0 {
		t.Fatalf("evaluator called %d times for blank answer, want 0", mock.CallCount())
	}
	q3 := res.ByQuestion("q3")
	if q3.Raw != 0 {
		t.Errorf("blank q3 raw = %v, want 0", q3.Raw)
	}
	if q3.Feedback != "No answer provided" {
		t.Errorf("blank q3 feedback = %q", q3.Feedback)
	}
}

func TestGrade_WhitespaceAnswerIsBlank(t *testing.T) {
	mock := NewMockEvaluator()

	New(mock).Grade(context.Background(), testQuiz(), map[string]string{
		"q3": "   \n\t ",
	})

	if mock.CallCount() != 0 {
		t.Errorf("evaluator called %d times for whitespace answer, want 0", mock.CallCount())
	}
}

func TestGrade_EvaluatorFailureIsIsolated(t *testing.T) {
	qz := testQuiz()
	qz.Questions = []quiz.Question{
		{ID: "s1", QuizID: "quiz-1", Type: quiz.TypeShortAnswer, Prompt: "One."},
		{ID: "s2", QuizID: "quiz-1", Type: quiz.TypeShortAnswer, Prompt: "Two."},
		{ID: "s3", QuizID: "quiz-1", Type: quiz.TypeShortAnswer, Prompt: "Three."},
	}

	mock := NewMockEvaluator()
	mock.Results["answer one"] = EvalResult{Score: 1, Feedback: "Great."}
	mock.Errors["answer two"] = errors.New("rate limited")
	mock.Results["answer three"] = EvalResult{Score: 0.5, Feedback: "Halfway."}

	res := New(mock).Grade(context.Background(), qz, map[string]string{
		"s1": "answer one",
		"s2": "answer two",
		"s3": "answer three",
	})

	if got := res.ByQuestion("s1").Raw; got != 1 {
		t.Errorf("s1 raw = %v, want 1", got)
	}
	s2 := res.ByQuestion("s2")
	if s2.Raw != 0 {
		t.Errorf("s2 raw = %v, want 0", s2.Raw)
	}
	if s2.Feedback != "Your answer could not be evaluated due to a technical problem" {
		t.Errorf("s2 feedback = %q", s2.Feedback)
	}
	if got := res.ByQuestion("s3").Raw; got != 0.5 {
		t.Errorf("s3 raw = %v, want 0.5", got)
	}
}

func TestGrade_EvaluatorScoreClamped(t *testing.T) {
	mock := NewMockEvaluator()
	mock.Results["hot"] = EvalResult{Score: 5, Feedback: "Over-enthusiastic."}

	res := New(mock).Grade(context.Background(), testQuiz(), map[string]string{
		"q3": "hot",
	})

	q3 := res.ByQuestion("q3")
	if q3.Raw != 1 {
		t.Errorf("raw = %v, want clamped 1", q3.Raw)
	}
	if q3.Weighted != 2 {
		t.Errorf("weighted = %v, want 2", q3.Weighted)
	}
}

func TestGrade_NilEvaluator(t *testing.T) {
	res := New(nil).Grade(context.Background(), testQuiz(), map[string]string{
		"q3": "an actual answer",
	})

	q3 := res.ByQuestion("q3")
	if q3.Raw != 0 {
		t.Errorf("raw = %v, want 0", q3.Raw)
	}
	if q3.Feedback != "Your answer could not be evaluated due to a technical problem" {
		t.Errorf("feedback = %q", q3.Feedback)
	}
}

func TestGrade_ZeroTotalWeight(t *testing.T) {
	qz := testQuiz()
	qz.Weights = quiz.Weights{}

	res := New(NewMockEvaluator()).Grade(context.Background(), qz, map[string]string{
		"q1": "o2",
		"q2": "f",
	})

	if res.Overall != 0 {
		t.Errorf("overall = %v, want 0 for zero-weight quiz", res.Overall)
	}
}

func TestGrade_ArabicFeedback(t *testing.T) {
	qz := testQuiz()
	qz.Language = quiz.LangArabic

	res := New(NewMockEvaluator()).Grade(context.Background(), qz, map[string]string{
		"q1": "o2",
		"q2": "t",
	})

	if got := res.ByQuestion("q1").Feedback; got != "إجابة صحيحة" {
		t.Errorf("q1 feedback = %q", got)
	}
	if got := res.ByQuestion("q2").Feedback; got != "إجابة خاطئة" {
		t.Errorf("q2 feedback = %q", got)
	}
	if got := res.ByQuestion("q3").Feedback; got != "لم يتم تقديم إجابة" {
		t.Errorf("q3 feedback = %q", got)
	}
}

func TestGrade_ResultOrderMatchesQuiz(t *testing.T) {
	res := New(NewMockEvaluator()).Grade(context.Background(), testQuiz(), nil)

	want := []string{"q1", "q2", "q3"}
	if len(res.Questions) != len(want) {
		t.Fatalf("got %d results, want %d", len(res.Questions), len(want))
	}
	for i, id := range want {
		if res.Questions[i].QuestionID != id {
			t.Errorf("results[%d] = %s, want %s", i, res.Questions[i].QuestionID, id)
		}
	}
}
