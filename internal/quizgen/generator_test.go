package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/openclass/quizcore/internal/llm"
	"github.com/openclass/quizcore/internal/quiz"
)

const sampleDraft = `{
  "title": "Go Concurrency Basics",
  "criteria": "Award full credit for mentioning goroutines and channels.",
  "questions": [
    {
      "type": "mcq",
      "prompt": "Which keyword starts a goroutine?",
      "options": [
        {"text": "go", "correct": true},
        {"text": "run", "correct": false},
        {"text": "spawn", "correct": false},
        {"text": "async", "correct": false}
      ]
    },
    {
      "type": "true_false",
      "prompt": "A nil channel blocks forever.",
      "options": [
        {"text": "True", "correct": true},
        {"text": "False", "correct": false}
      ]
    },
    {
      "type": "short_answer",
      "prompt": "Explain what a select statement does.",
      "options": []
    }
  ]
}`

func testSpec() Spec {
	return Spec{
		Topic:            "Go concurrency",
		Language:         quiz.LangEnglish,
		Difficulty:       "introductory",
		NumMCQ:           1,
		NumTrueFalse:     1,
		NumShortAnswer:   1,
		TimeLimitMinutes: 10,
		Weights:          quiz.Weights{MCQ: 1, TrueFalse: 1, ShortAnswer: 2},
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleDraft)},
	)
	g := New(mock, DefaultConfig())

	qz, err := g.Generate(context.Background(), testSpec())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if qz.Title != "Go Concurrency Basics" {
		t.Errorf("title = %q", qz.Title)
	}
	if qz.ID == "" {
		t.Error("quiz id not assigned")
	}
	if qz.Published {
		t.Error("generated quiz must start unpublished")
	}
	if qz.TimeLimitMinutes != 10 {
		t.Errorf("time limit = %d", qz.TimeLimitMinutes)
	}
	if len(qz.Questions) != 3 {
		t.Fatalf("got %d questions", len(qz.Questions))
	}
	for _, q := range qz.Questions {
		if q.ID == "" {
			t.Error("question id not assigned")
		}
		if q.QuizID != qz.ID {
			t.Error("question not linked to quiz")
		}
	}

	// Request carries the structured-output schema.
	if len(mock.Calls) != 1 {
		t.Fatalf("got %d provider calls", len(mock.Calls))
	}
	if mock.Calls[0].Schema != DraftSchema {
		t.Error("generation request missing draft schema")
	}
	body := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Go concurrency", "introductory", "English"} {
		if !strings.Contains(body, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_RejectsWrongCounts(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleDraft)},
	)
	g := New(mock, DefaultConfig())

	spec := testSpec()
	spec.NumMCQ = 2 // draft only has one

	_, err := g.Generate(context.Background(), spec)
	if err == nil {
		t.Fatal("expected error for count mismatch")
	}
	if !strings.Contains(err.Error(), "requested 2") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_RejectsInvalidDraft(t *testing.T) {
	// Both options marked correct, which the data model forbids.
	bad := strings.Replace(sampleDraft, `{"text": "False", "correct": false}`, `{"text": "False", "correct": true}`, 1)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testSpec())
	if err == nil {
		t.Fatal("expected error for invalid draft")
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testSpec()); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateSpec(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
	}{
		{"empty topic", func(s *Spec) { s.Topic = "" }},
		{"no questions", func(s *Spec) { s.NumMCQ, s.NumTrueFalse, s.NumShortAnswer = 0, 0, 0 }},
		{"zero time limit", func(s *Spec) { s.TimeLimitMinutes = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := testSpec()
			tc.mutate(&spec)
			if err := validateSpec(spec); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
