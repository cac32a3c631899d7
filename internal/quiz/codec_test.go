package quiz

import (
	"bytes"
	"strings"
	"testing"
)

const sampleQuizJSON = `{
  "title": "Water cycle",
  "language": "en",
  "time_limit_minutes": 10,
  "weight_mcq": 1,
  "weight_true_false": 1,
  "weight_short_answer": 2,
  "criteria": "Award full credit for mentioning evaporation and condensation.",
  "questions": [
    {
      "type": "mcq",
      "prompt": "What drives evaporation?",
      "options": [
        {"text": "The sun", "correct": true},
        {"text": "The moon"},
        {"text": "Wind turbines"}
      ]
    },
    {
      "type": "true_false",
      "prompt": "Clouds form by condensation.",
      "options": [
        {"text": "True", "correct": true},
        {"text": "False"}
      ]
    },
    {
      "type": "short_answer",
      "prompt": "Describe the water cycle in your own words."
    }
  ]
}`

func TestDecodeJSON(t *testing.T) {
	qz, err := DecodeJSON(strings.NewReader(sampleQuizJSON))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if qz.Title != "Water cycle" {
		t.Errorf("title = %q", qz.Title)
	}
	if qz.ID == "" {
		t.Error("missing id not assigned")
	}
	if len(qz.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(qz.Questions))
	}
	if qz.Questions[0].ID == "" || qz.Questions[0].Options[0].ID == "" {
		t.Error("missing question/option ids not assigned")
	}
	if qz.Questions[0].QuizID != qz.ID {
		t.Error("question not linked to quiz id")
	}
	if qz.Published {
		t.Error("published should default to false")
	}
	if qz.Weights.ShortAnswer != 2 {
		t.Errorf("short answer weight = %v", qz.Weights.ShortAnswer)
	}
}

func TestDecodeJSON_DefaultLanguage(t *testing.T) {
	in := strings.Replace(sampleQuizJSON, `"language": "en",`, "", 1)
	qz, err := DecodeJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if qz.Language != LangEnglish {
		t.Errorf("language = %q, want en default", qz.Language)
	}
}

func TestDecodeJSON_UnknownFieldRejected(t *testing.T) {
	in := strings.Replace(sampleQuizJSON, `"title"`, `"max_score": 100, "title"`, 1)
	if _, err := DecodeJSON(strings.NewReader(in)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeJSON_FileShapeRejected(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", "not json at all"},
		{"missing title", `{"time_limit_minutes": 10, "questions": [{"type": "short_answer", "prompt": "x"}]}`},
		{"no questions", `{"title": "t", "time_limit_minutes": 10, "questions": []}`},
		{"bad type", `{"title": "t", "time_limit_minutes": 10, "questions": [{"type": "essay", "prompt": "x"}]}`},
		{"zero time limit", `{"title": "t", "time_limit_minutes": 0, "questions": [{"type": "short_answer", "prompt": "x"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeJSON(strings.NewReader(tc.in)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDecodeJSON_DomainInvariantRejected(t *testing.T) {
	// Shape-valid but no correct option marked.
	in := `{
	  "title": "t",
	  "time_limit_minutes": 10,
	  "questions": [
	    {"type": "mcq", "prompt": "x", "options": [{"text": "A"}, {"text": "B"}]}
	  ]
	}`
	_, err := DecodeJSON(strings.NewReader(in))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "correct option") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	qz, err := DecodeJSON(strings.NewReader(sampleQuizJSON))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, qz); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	back, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON round trip: %v", err)
	}
	if back.ID != qz.ID {
		t.Errorf("id changed: %q vs %q", back.ID, qz.ID)
	}
	if len(back.Questions) != len(qz.Questions) {
		t.Errorf("question count changed: %d vs %d", len(back.Questions), len(qz.Questions))
	}
	if back.Questions[0].Options[0].ID != qz.Questions[0].Options[0].ID {
		t.Error("option ids changed across round trip")
	}
}
