package grader

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/openclass/quizcore/internal/llm"
	"github.com/openclass/quizcore/internal/quiz"
)

func evalRequest() EvalRequest {
	return EvalRequest{
		Prompt:   "Explain the role of chlorophyll.",
		Answer:   "It captures light energy for the plant.",
		Criteria: "Full credit for mentioning light absorption.",
		Language: quiz.LangEnglish,
	}
}

func TestLLMEvaluator_WellFormedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score": 0.9, "feedback": "Nearly perfect."}`)},
	)
	e := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	res, err := e.Evaluate(context.Background(), evalRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0.9 {
		t.Errorf("score = %v, want 0.9", res.Score)
	}
	if res.Feedback != "Nearly perfect." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestLLMEvaluator_ProseWrappedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("Sure! Here is the grade:\n{\"score\": 0.6, \"feedback\": \"Decent.\"}")},
	)
	e := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	res, err := e.Evaluate(context.Background(), evalRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0.6 {
		t.Errorf("score = %v, want 0.6", res.Score)
	}
}

func TestLLMEvaluator_GarbageResponseDefaultsToZero(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("I cannot grade this.")},
	)
	e := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	res, err := e.Evaluate(context.Background(), evalRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
	if res.Feedback != "Could not evaluate this answer" {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestLLMEvaluator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	e := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	_, err := e.Evaluate(context.Background(), evalRequest())
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLLMEvaluator_PromptContents(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score": 1, "feedback": "ok"}`)},
	)
	e := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	req := evalRequest()
	if _, err := e.Evaluate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("got %d calls, want 1", len(mock.Calls))
	}
	sent := mock.Calls[0]
	if sent.Schema != nil {
		t.Error("grading request should not carry a schema")
	}
	if len(sent.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(sent.Messages))
	}
	body := sent.Messages[0].Content
	for _, want := range []string{req.Prompt, req.Answer, req.Criteria, "English"} {
		if !strings.Contains(body, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestLLMEvaluator_ArabicFeedbackLanguage(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score": 1, "feedback": "ok"}`)},
	)
	e := NewLLMEvaluator(mock, DefaultEvaluatorConfig())

	req := evalRequest()
	req.Language = quiz.LangArabic
	if _, err := e.Evaluate(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Arabic") {
		t.Error("user message should request Arabic feedback")
	}
}
