package grader

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/openclass/quizcore/internal/llm"
	"github.com/openclass/quizcore/internal/quiz"
)

// Evaluator grades a free-text answer against the quiz's grading
// criteria. Implementations are remote, best-effort services: they may
// fail outright or return loosely structured output, and callers must
// degrade gracefully either way.
type Evaluator interface {
	Evaluate(ctx context.Context, req EvalRequest) (*EvalResult, error)
}

// EvalRequest carries one short answer to the evaluator.
type EvalRequest struct {
	// Prompt is the question text.
	Prompt string

	// Answer is the learner's free-text answer, already known non-blank.
	Answer string

	// Criteria is the quiz's natural-language grading instruction.
	Criteria string

	// Language is the language the feedback should be written in.
	Language quiz.Language
}

// EvalResult is the evaluator's verdict for one answer.
type EvalResult struct {
	// Score is in [0,1]. Callers clamp it regardless of what the
	// service returned.
	Score float64

	// Feedback is a short explanation for the learner.
	Feedback string
}

// EvaluatorConfig holds tuning for the LLM evaluator.
type EvaluatorConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEvaluatorConfig returns sensible defaults.
func DefaultEvaluatorConfig() EvaluatorConfig {
	return EvaluatorConfig{
		MaxTokens:   256,
		Temperature: 0.2,
	}
}

// LLMEvaluator grades short answers with an LLM provider. Responses are
// requested as JSON but parsed permissively, since the model is an
// untrusted text generator with no guaranteed schema compliance.
type LLMEvaluator struct {
	provider llm.Provider
	cfg      EvaluatorConfig
}

// NewLLMEvaluator creates an LLM-backed evaluator.
func NewLLMEvaluator(provider llm.Provider, cfg EvaluatorConfig) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, cfg: cfg}
}

// Evaluate sends one answer to the LLM and extracts a {score, feedback}
// verdict from whatever comes back. It errs only when the provider call
// itself fails; malformed content degrades through the extraction chain
// instead.
func (e *LLMEvaluator) Evaluate(ctx context.Context, req EvalRequest) (*EvalResult, error) {
	ctx = llm.WithPurpose(ctx, "answer-grading")

	userMsg, err := buildEvalMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build grading prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("grading request failed: %w", err)
	}

	result := extractVerdict(string(resp.Content), req.Language)
	return &result, nil
}

const evalSystemPrompt = `You are a strict but fair grader of short written answers. Grade the learner's answer against the question and the grading criteria.

Instructions:
- Return a JSON object with exactly two fields: "score" and "feedback".
- "score" is a number between 0.0 (completely wrong) and 1.0 (fully correct). Partial credit is encouraged.
- "feedback" is one or two sentences explaining the score to the learner.
- Judge substance, not spelling or grammar.
- Do not reveal the criteria verbatim in the feedback.`

var evalUserTemplate = template.Must(template.New("eval").Parse(`Question: {{.Prompt}}

Learner's answer: {{.Answer}}
{{if .Criteria}}
Grading criteria: {{.Criteria}}
{{end}}
Write the feedback in {{.LanguageName}}.`))

func buildEvalMessage(req EvalRequest) (string, error) {
	data := struct {
		EvalRequest
		LanguageName string
	}{req, languageName(req.Language)}

	var buf bytes.Buffer
	if err := evalUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func languageName(lang quiz.Language) string {
	if lang == quiz.LangArabic {
		return "Arabic"
	}
	return "English"
}
