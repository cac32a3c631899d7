package quiz

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the quiz definition.
// Returns a combined error describing all problems found, or nil if valid.
func (qz *Quiz) Validate() error {
	var errs []string

	if qz.ID == "" {
		errs = append(errs, "quiz id is empty")
	}
	if strings.TrimSpace(qz.Title) == "" {
		errs = append(errs, "quiz title is empty")
	}
	if qz.TimeLimitMinutes <= 0 {
		errs = append(errs, fmt.Sprintf("time limit must be positive, got %d", qz.TimeLimitMinutes))
	}
	if qz.Weights.MCQ < 0 || qz.Weights.TrueFalse < 0 || qz.Weights.ShortAnswer < 0 {
		errs = append(errs, "weights must be non-negative")
	}
	switch qz.Language {
	case LangEnglish, LangArabic:
	default:
		errs = append(errs, fmt.Sprintf("unknown language: %q", qz.Language))
	}

	idSet := make(map[string]bool, len(qz.Questions))
	for i := range qz.Questions {
		q := &qz.Questions[i]
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %d has no id", i))
		}
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question id: %q", q.ID))
		}
		idSet[q.ID] = true

		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %q has an empty prompt", q.ID))
		}

		errs = append(errs, validateQuestionOptions(q)...)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid quiz %q:\n  %s", qz.ID, strings.Join(errs, "\n  "))
	}
	return nil
}

// validateQuestionOptions enforces the per-type option invariants:
// objective questions carry at least two options with exactly one marked
// correct; short answer questions carry none.
func validateQuestionOptions(q *Question) []string {
	var errs []string

	switch q.Type {
	case TypeMCQ, TypeTrueFalse:
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("question %q needs at least 2 options, has %d", q.ID, len(q.Options)))
		}
		if q.Type == TypeTrueFalse && len(q.Options) != 2 {
			errs = append(errs, fmt.Sprintf("true/false question %q must have exactly 2 options, has %d", q.ID, len(q.Options)))
		}

		correct := 0
		optIDs := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt.ID == "" {
				errs = append(errs, fmt.Sprintf("question %q has an option with no id", q.ID))
			}
			if optIDs[opt.ID] {
				errs = append(errs, fmt.Sprintf("question %q has duplicate option id %q", q.ID, opt.ID))
			}
			optIDs[opt.ID] = true
			if opt.Correct {
				correct++
			}
		}
		if correct != 1 {
			errs = append(errs, fmt.Sprintf("question %q must have exactly 1 correct option, has %d", q.ID, correct))
		}

	case TypeShortAnswer:
		if len(q.Options) != 0 {
			errs = append(errs, fmt.Sprintf("short answer question %q must not have options, has %d", q.ID, len(q.Options)))
		}

	default:
		errs = append(errs, fmt.Sprintf("question %q has unknown type %q", q.ID, q.Type))
	}

	return errs
}
