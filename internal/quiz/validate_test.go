package quiz

import (
	"strings"
	"testing"
)

func validQuiz() *Quiz {
	return &Quiz{
		ID:               "quiz-1",
		Title:            "Cell biology",
		Language:         LangEnglish,
		TimeLimitMinutes: 15,
		Weights:          Weights{MCQ: 1, TrueFalse: 1, ShortAnswer: 2},
		Questions: []Question{
			{
				ID: "q1", Type: TypeMCQ, Prompt: "Pick one.",
				Options: []Option{
					{ID: "a", Text: "A", Correct: true},
					{ID: "b", Text: "B"},
				},
			},
			{
				ID: "q2", Type: TypeTrueFalse, Prompt: "True or false?",
				Options: []Option{
					{ID: "t", Text: "True", Correct: true},
					{ID: "f", Text: "False"},
				},
			},
			{ID: "q3", Type: TypeShortAnswer, Prompt: "Explain."},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validQuiz().Validate(); err != nil {
		t.Fatalf("valid quiz rejected: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Quiz)
		wantMsg string
	}{
		{
			"empty id",
			func(qz *Quiz) { qz.ID = "" },
			"quiz id is empty",
		},
		{
			"blank title",
			func(qz *Quiz) { qz.Title = "   " },
			"title is empty",
		},
		{
			"zero time limit",
			func(qz *Quiz) { qz.TimeLimitMinutes = 0 },
			"time limit must be positive",
		},
		{
			"negative weight",
			func(qz *Quiz) { qz.Weights.ShortAnswer = -1 },
			"weights must be non-negative",
		},
		{
			"unknown language",
			func(qz *Quiz) { qz.Language = "fr" },
			"unknown language",
		},
		{
			"duplicate question id",
			func(qz *Quiz) { qz.Questions[1].ID = "q1" },
			"duplicate question id",
		},
		{
			"empty prompt",
			func(qz *Quiz) { qz.Questions[0].Prompt = "" },
			"empty prompt",
		},
		{
			"no correct option",
			func(qz *Quiz) { qz.Questions[0].Options[0].Correct = false },
			"exactly 1 correct option",
		},
		{
			"two correct options",
			func(qz *Quiz) { qz.Questions[0].Options[1].Correct = true },
			"exactly 1 correct option",
		},
		{
			"single option mcq",
			func(qz *Quiz) { qz.Questions[0].Options = qz.Questions[0].Options[:1] },
			"at least 2 options",
		},
		{
			"three option true/false",
			func(qz *Quiz) {
				qz.Questions[1].Options = append(qz.Questions[1].Options, Option{ID: "x", Text: "Maybe"})
			},
			"exactly 2 options",
		},
		{
			"duplicate option id",
			func(qz *Quiz) { qz.Questions[0].Options[1].ID = "a" },
			"duplicate option id",
		},
		{
			"options on short answer",
			func(qz *Quiz) {
				qz.Questions[2].Options = []Option{{ID: "a", Text: "A", Correct: true}}
			},
			"must not have options",
		},
		{
			"unknown type",
			func(qz *Quiz) { qz.Questions[2].Type = "essay" },
			"unknown type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			qz := validQuiz()
			tc.mutate(qz)
			err := qz.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tc.wantMsg)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	qz := validQuiz()
	qz.Title = ""
	qz.TimeLimitMinutes = -5

	err := qz.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "title is empty") || !strings.Contains(err.Error(), "time limit") {
		t.Errorf("combined error missing problems: %v", err)
	}
}

func TestTotalWeight(t *testing.T) {
	qz := validQuiz()
	// One MCQ (1) + one TF (1) + one short answer (2).
	if got := qz.TotalWeight(); got != 4 {
		t.Errorf("TotalWeight = %v, want 4", got)
	}

	qz.Weights = Weights{}
	if got := qz.TotalWeight(); got != 0 {
		t.Errorf("TotalWeight = %v, want 0", got)
	}
}

func TestCorrectOptionID(t *testing.T) {
	qz := validQuiz()

	id, ok := qz.Questions[0].CorrectOptionID()
	if !ok || id != "a" {
		t.Errorf("CorrectOptionID = %q, %v", id, ok)
	}

	if _, ok := qz.Questions[2].CorrectOptionID(); ok {
		t.Error("short answer question reported a correct option")
	}
}

func TestTypeObjective(t *testing.T) {
	if !TypeMCQ.Objective() || !TypeTrueFalse.Objective() {
		t.Error("mcq and true/false should be objective")
	}
	if TypeShortAnswer.Objective() {
		t.Error("short answer should not be objective")
	}
}
