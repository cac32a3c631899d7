package grader

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/openclass/quizcore/internal/quiz"
)

// QuestionResult is the immutable outcome for one question.
type QuestionResult struct {
	QuestionID string
	Type       quiz.Type

	// Raw is the correctness score in [0,1] before weighting.
	Raw float64

	// Weighted is Raw multiplied by the quiz's weight for this type.
	Weighted float64

	// Feedback is the learner-facing explanation, localized.
	Feedback string
}

// Result is the complete outcome of one submission. Produced exactly
// once per attempt and never mutated afterwards.
type Result struct {
	QuizID string

	// Overall is the weighted aggregate in [0,1], rounded to 2 decimals.
	// Zero when the quiz carries no weight at all.
	Overall float64

	// Questions holds per-question results in quiz order.
	Questions []QuestionResult
}

// ByQuestion returns the result for the given question id, or nil.
func (r *Result) ByQuestion(id string) *QuestionResult {
	for i := range r.Questions {
		if r.Questions[i].QuestionID == id {
			return &r.Questions[i]
		}
	}
	return nil
}

// Grader scores a complete answer set against a quiz. Objective
// questions are scored locally; short answers fan out to the evaluator.
type Grader struct {
	evaluator Evaluator
}

// New creates a Grader. A nil evaluator is allowed: short answers then
// degrade to zero-credit failure results instead of calling out.
func New(evaluator Evaluator) *Grader {
	return &Grader{evaluator: evaluator}
}

// Grade scores every question and aggregates the weighted overall score.
// It is total: evaluator failures, malformed responses, and unknown
// option ids all degrade to zero-credit results with localized feedback,
// never to an error. Evaluator calls for distinct questions run
// concurrently; a slow or failing one cannot poison the others, and
// results are keyed by question id so out-of-order completion cannot
// misassign a score.
func (g *Grader) Grade(ctx context.Context, qz *quiz.Quiz, answers map[string]string) *Result {
	msgs := messagesFor(qz.Language)

	results := make([]QuestionResult, len(qz.Questions))

	var wg sync.WaitGroup
	for i := range qz.Questions {
		q := &qz.Questions[i]
		answer := strings.TrimSpace(answers[q.ID])

		if q.Type.Objective() {
			results[i] = g.scoreObjective(qz, q, answer, msgs)
			continue
		}

		// Blank short answers short-circuit: zero credit, no external call.
		if answer == "" {
			results[i] = QuestionResult{
				QuestionID: q.ID,
				Type:       q.Type,
				Raw:        0,
				Weighted:   0,
				Feedback:   msgs.noAnswer,
			}
			continue
		}

		wg.Add(1)
		go func(i int, q *quiz.Question, answer string) {
			defer wg.Done()
			results[i] = g.scoreShortAnswer(ctx, qz, q, answer, msgs)
		}(i, q, answer)
	}
	wg.Wait()

	return &Result{
		QuizID:    qz.ID,
		Overall:   overallScore(qz, results),
		Questions: results,
	}
}

// scoreObjective scores an MCQ or true/false question locally. An answer
// referencing a nonexistent option id is simply incorrect, not an error.
func (g *Grader) scoreObjective(qz *quiz.Quiz, q *quiz.Question, answer string, msgs messages) QuestionResult {
	correctID, _ := q.CorrectOptionID()
	raw := 0.0
	feedback := msgs.incorrect
	if answer != "" && answer == correctID {
		raw = 1.0
		feedback = msgs.correct
	}

	weight := qz.Weights.ForType(q.Type)
	return QuestionResult{
		QuestionID: q.ID,
		Type:       q.Type,
		Raw:        raw,
		Weighted:   raw * weight,
		Feedback:   feedback,
	}
}

// scoreShortAnswer delegates one non-blank short answer to the
// evaluator, converting any failure into a zero-credit result.
func (g *Grader) scoreShortAnswer(ctx context.Context, qz *quiz.Quiz, q *quiz.Question, answer string, msgs messages) QuestionResult {
	weight := qz.Weights.ForType(q.Type)

	if g.evaluator == nil {
		return QuestionResult{
			QuestionID: q.ID,
			Type:       q.Type,
			Feedback:   msgs.evalFailed,
		}
	}

	eval, err := g.evaluator.Evaluate(ctx, EvalRequest{
		Prompt:   q.Prompt,
		Answer:   answer,
		Criteria: qz.Criteria,
		Language: qz.Language,
	})
	if err != nil {
		return QuestionResult{
			QuestionID: q.ID,
			Type:       q.Type,
			Feedback:   msgs.evalFailed,
		}
	}

	raw := clamp01(eval.Score)
	feedback := strings.TrimSpace(eval.Feedback)
	if feedback == "" {
		feedback = msgs.couldNotEvaluate
	}
	return QuestionResult{
		QuestionID: q.ID,
		Type:       q.Type,
		Raw:        raw,
		Weighted:   raw * weight,
		Feedback:   feedback,
	}
}

// overallScore computes sum(weighted) / sum(weight over all questions),
// rounded to 2 decimal places. A quiz with zero total weight scores 0.
func overallScore(qz *quiz.Quiz, results []QuestionResult) float64 {
	totalWeight := qz.TotalWeight()
	if totalWeight == 0 {
		return 0
	}

	sum := 0.0
	for i := range results {
		sum += results[i].Weighted
	}
	return math.Round(sum/totalWeight*100) / 100
}
