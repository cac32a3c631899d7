package quizgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/google/uuid"

	"github.com/openclass/quizcore/internal/llm"
	"github.com/openclass/quizcore/internal/quiz"
)

// Generator produces complete draft quizzes with an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a quiz generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// draft is the raw LLM response shape, mirroring DraftSchema.
type draft struct {
	Title     string `json:"title"`
	Criteria  string `json:"criteria"`
	Questions []struct {
		Type    string `json:"type"`
		Prompt  string `json:"prompt"`
		Options []struct {
			Text    string `json:"text"`
			Correct bool   `json:"correct"`
		} `json:"options"`
	} `json:"questions"`
}

// Generate asks the LLM for a quiz draft matching the spec, assigns
// identifiers, and runs the full structural validation. Drafts that
// violate the data-model invariants or the requested counts are
// rejected — unlike grading, generation is an authoring-time operation
// and may fail loudly.
func (g *Generator) Generate(ctx context.Context, spec Spec) (*quiz.Quiz, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "quiz-generation")

	userMsg, err := buildGenMessage(spec)
	if err != nil {
		return nil, fmt.Errorf("build generation prompt: %w", err)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: genSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DraftSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var d draft
	if err := json.Unmarshal(resp.Content, &d); err != nil {
		return nil, fmt.Errorf("parse quiz draft: %w", err)
	}

	qz := draftToQuiz(d, spec)

	if err := checkCounts(qz, spec); err != nil {
		return nil, err
	}
	if err := qz.Validate(); err != nil {
		return nil, fmt.Errorf("generated quiz failed validation: %w", err)
	}
	return qz, nil
}

func validateSpec(spec Spec) error {
	if spec.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	total := spec.NumMCQ + spec.NumTrueFalse + spec.NumShortAnswer
	if total <= 0 {
		return fmt.Errorf("at least one question must be requested")
	}
	if spec.TimeLimitMinutes <= 0 {
		return fmt.Errorf("time limit must be positive")
	}
	return nil
}

func draftToQuiz(d draft, spec Spec) *quiz.Quiz {
	qz := &quiz.Quiz{
		ID:               uuid.NewString(),
		Title:            d.Title,
		Language:         spec.Language,
		TimeLimitMinutes: spec.TimeLimitMinutes,
		Weights:          spec.Weights,
		Criteria:         d.Criteria,
		// Generated quizzes are drafts; authors publish explicitly.
		Published: false,
	}
	if qz.Language == "" {
		qz.Language = quiz.LangEnglish
	}

	for _, dq := range d.Questions {
		q := quiz.Question{
			ID:     uuid.NewString(),
			QuizID: qz.ID,
			Type:   quiz.Type(dq.Type),
			Prompt: dq.Prompt,
		}
		for _, do := range dq.Options {
			q.Options = append(q.Options, quiz.Option{
				ID:      uuid.NewString(),
				Text:    do.Text,
				Correct: do.Correct,
			})
		}
		qz.Questions = append(qz.Questions, q)
	}
	return qz
}

// checkCounts verifies the draft honored the requested per-type counts.
func checkCounts(qz *quiz.Quiz, spec Spec) error {
	counts := map[quiz.Type]int{}
	for i := range qz.Questions {
		counts[qz.Questions[i].Type]++
	}

	want := map[quiz.Type]int{
		quiz.TypeMCQ:         spec.NumMCQ,
		quiz.TypeTrueFalse:   spec.NumTrueFalse,
		quiz.TypeShortAnswer: spec.NumShortAnswer,
	}
	for t, n := range want {
		if counts[t] != n {
			return fmt.Errorf("draft has %d %s questions, requested %d", counts[t], t, n)
		}
	}
	return nil
}

const genSystemPrompt = `You are an expert assessment author for an online learning platform. Write clear, unambiguous quiz questions on the requested topic.

Instructions:
- Produce exactly the requested number of questions of each type, in any order.
- Every mcq question has exactly 4 options with exactly one marked correct.
- Every true_false question has exactly 2 options ("True" and "False", translated to the quiz language) with exactly one marked correct.
- short_answer questions have an empty options array.
- Distractor options must be plausible but clearly wrong.
- Also write a one-paragraph grading instruction for the short answer questions.`

var genUserTemplate = template.Must(template.New("gen").Parse(`Topic: {{.Topic}}
Language: {{.LanguageName}}
Difficulty: {{if .Difficulty}}{{.Difficulty}}{{else}}mixed{{end}}

Questions requested:
- multiple choice: {{.NumMCQ}}
- true/false: {{.NumTrueFalse}}
- short answer: {{.NumShortAnswer}}`))

func buildGenMessage(spec Spec) (string, error) {
	name := "English"
	if spec.Language == quiz.LangArabic {
		name = "Arabic"
	}
	data := struct {
		Spec
		LanguageName string
	}{spec, name}

	var buf bytes.Buffer
	if err := genUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
