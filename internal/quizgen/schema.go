package quizgen

import "github.com/openclass/quizcore/internal/llm"

// DraftSchema defines the JSON schema for a generated quiz draft.
var DraftSchema = &llm.Schema{
	Name:        "quiz-draft",
	Description: "A complete draft quiz: title, grading criteria, and a list of questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short quiz title (3-8 words)",
			},
			"criteria": map[string]any{
				"type":        "string",
				"description": "One-paragraph grading instruction for the short answer questions",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"mcq", "true_false", "short_answer"},
						},
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Exactly one option is correct. 4 options for mcq, 2 for true_false, empty for short_answer",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"text":    map[string]any{"type": "string"},
									"correct": map[string]any{"type": "boolean"},
								},
								"required":             []any{"text", "correct"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"type", "prompt", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "criteria", "questions"},
		"additionalProperties": false,
	},
}
