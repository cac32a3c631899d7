package report

import (
	"strings"
	"testing"

	"github.com/openclass/quizcore/internal/grader"
	"github.com/openclass/quizcore/internal/quiz"
)

func TestRender(t *testing.T) {
	qz := &quiz.Quiz{
		ID:    "qz",
		Title: "Fractions",
		Questions: []quiz.Question{
			{ID: "q1", Type: quiz.TypeMCQ, Prompt: "What is 1/2 + 1/4?"},
			{ID: "q2", Type: quiz.TypeShortAnswer, Prompt: "Explain equivalent fractions."},
			{ID: "q3", Type: quiz.TypeShortAnswer, Prompt: "Why do we need a common denominator?"},
		},
	}
	res := &grader.Result{
		QuizID:  "qz",
		Overall: 0.58,
		Questions: []grader.QuestionResult{
			{QuestionID: "q1", Type: quiz.TypeMCQ, Raw: 1, Weighted: 1, Feedback: "Correct"},
			{QuestionID: "q2", Type: quiz.TypeShortAnswer, Raw: 0.5, Weighted: 1, Feedback: "Half right."},
			{QuestionID: "q3", Type: quiz.TypeShortAnswer, Raw: 0, Weighted: 0, Feedback: "No answer provided"},
		},
	}

	out := Render(qz, res)

	for _, want := range []string{
		"Fractions",
		"Score: 58%",
		"What is 1/2 + 1/4?",
		"✓",
		"◐ 50%",
		"✗",
		"Half right.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		raw  float64
		want string
	}{
		{1, "✓"},
		{0.75, "◐ 75%"},
		{0, "✗"},
	}
	for _, tc := range tests {
		qr := &grader.QuestionResult{Raw: tc.raw}
		if got := scoreLabel(qr); got != tc.want {
			t.Errorf("scoreLabel(%v) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
