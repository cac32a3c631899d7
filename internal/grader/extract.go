package grader

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/openclass/quizcore/internal/quiz"
)

// verdict is the wire shape the evaluator is asked to produce.
type verdict struct {
	Score    *float64 `json:"score"`
	Feedback string   `json:"feedback"`
}

// extractVerdict recovers a {score, feedback} result from an untrusted
// evaluator response. The chain is strict JSON parse, then a parse of
// the first embedded JSON object (models love prose and code fences),
// then a permissive scan for score/feedback mentions, and finally a
// zero-score default. The score is clamped to [0,1] on every path.
func extractVerdict(raw string, lang quiz.Language) EvalResult {
	msgs := messagesFor(lang)

	if v, ok := parseStrict(raw); ok {
		return verdictResult(v, msgs)
	}
	if v, ok := parseEmbeddedObject(raw); ok {
		return verdictResult(v, msgs)
	}
	if v, ok := scanLoose(raw); ok {
		return verdictResult(v, msgs)
	}

	return EvalResult{Score: 0, Feedback: msgs.couldNotEvaluate}
}

func verdictResult(v verdict, msgs messages) EvalResult {
	feedback := strings.TrimSpace(v.Feedback)
	if feedback == "" {
		feedback = msgs.couldNotEvaluate
	}
	return EvalResult{Score: clamp01(*v.Score), Feedback: feedback}
}

// parseStrict accepts a response that is exactly the requested JSON
// object, modulo surrounding whitespace.
func parseStrict(raw string) (verdict, bool) {
	var v verdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &v); err != nil {
		return verdict{}, false
	}
	if v.Score == nil {
		return verdict{}, false
	}
	return v, true
}

// parseEmbeddedObject finds the first balanced {...} block in the
// response and strict-parses that. Handles code fences and surrounding
// prose.
func parseEmbeddedObject(raw string) (verdict, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return verdict{}, false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return parseStrict(raw[start : i+1])
			}
		}
	}
	return verdict{}, false
}

var (
	scoreRe    = regexp.MustCompile(`(?i)["']?score["']?\s*[:=]\s*["']?(-?\d+(?:\.\d+)?)["']?\s*%?`)
	feedbackRe = regexp.MustCompile(`(?i)["']?feedback["']?\s*[:=]\s*(?:"([^"\n]+)|([^\n}]+))`)
)

// scanLoose pulls a numeric score and a feedback fragment out of
// free-form text mentioning them. Scores written as percentages or on a
// 0-10 scale are normalized.
func scanLoose(raw string) (verdict, bool) {
	m := scoreRe.FindStringSubmatch(raw)
	if m == nil {
		return verdict{}, false
	}
	score, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return verdict{}, false
	}
	// A score above 1 was almost certainly given out of 100 or out of 10.
	if score > 1 && score <= 10 {
		score /= 10
	} else if score > 10 {
		score /= 100
	}

	v := verdict{Score: &score}
	if fm := feedbackRe.FindStringSubmatch(raw); fm != nil {
		fb := fm[1]
		if fb == "" {
			fb = strings.Trim(strings.TrimSpace(fm[2]), "'")
		}
		v.Feedback = strings.TrimSpace(fb)
	}
	return v, true
}

// clamp01 bounds a score to [0,1] regardless of what the service returned.
func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
