package grader

import (
	"testing"

	"github.com/openclass/quizcore/internal/quiz"
)

func TestExtractVerdict_StrictJSON(t *testing.T) {
	res := extractVerdict(`{"score": 0.75, "feedback": "Mostly right."}`, quiz.LangEnglish)
	if res.Score != 0.75 {
		t.Errorf("score = %v, want 0.75", res.Score)
	}
	if res.Feedback != "Mostly right." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestExtractVerdict_CodeFence(t *testing.T) {
	raw := "Here is my assessment:\n```json\n{\"score\": 0.5, \"feedback\": \"Half credit.\"}\n```\nHope that helps!"
	res := extractVerdict(raw, quiz.LangEnglish)
	if res.Score != 0.5 {
		t.Errorf("score = %v, want 0.5", res.Score)
	}
	if res.Feedback != "Half credit." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestExtractVerdict_BracesInsideStrings(t *testing.T) {
	raw := `{"score": 1, "feedback": "Uses {curly} notation correctly."}`
	res := extractVerdict(raw, quiz.LangEnglish)
	if res.Score != 1 {
		t.Errorf("score = %v, want 1", res.Score)
	}
	if res.Feedback != "Uses {curly} notation correctly." {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestExtractVerdict_LooseScan(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"fraction", "I'd say the score: 0.8 here. Feedback: close enough.", 0.8},
		{"out of ten", "Score = 8, solid work", 0.8},
		{"percent", "score: 85% overall", 0.85},
		{"out of hundred", "Score: 40. Needs more detail.", 0.4},
		{"quoted value", `{"score": "0.8", "feedback": "Close."}`, 0.8},
		{"single-quoted value", "score: '0.6', not bad", 0.6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := extractVerdict(tc.raw, quiz.LangEnglish)
			if res.Score != tc.want {
				t.Errorf("extractVerdict(%q).Score = %v, want %v", tc.raw, res.Score, tc.want)
			}
		})
	}
}

func TestExtractVerdict_LooseScanFeedback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"apostrophe", "Score: 0.5. Feedback: doesn't mention evaporation", "doesn't mention evaporation"},
		{"double quoted", `{"score": 0.5, "feedback": "Half right", extra garbage`, "Half right"},
		{"single quoted", "score: 0.7, feedback: 'almost there'", "almost there"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := extractVerdict(tc.raw, quiz.LangEnglish)
			if res.Feedback != tc.want {
				t.Errorf("extractVerdict(%q).Feedback = %q, want %q", tc.raw, res.Feedback, tc.want)
			}
		})
	}
}

func TestExtractVerdict_Unparseable(t *testing.T) {
	res := extractVerdict("The answer shows good understanding overall.", quiz.LangEnglish)
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
	if res.Feedback != "Could not evaluate this answer" {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestExtractVerdict_UnparseableArabic(t *testing.T) {
	res := extractVerdict("no json here", quiz.LangArabic)
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
	if res.Feedback != "تعذر تقييم هذه الإجابة" {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestExtractVerdict_MissingScore(t *testing.T) {
	// A JSON object without a score field falls through to the default.
	res := extractVerdict(`{"feedback": "nice"}`, quiz.LangEnglish)
	if res.Score != 0 {
		t.Errorf("score = %v, want 0", res.Score)
	}
}

func TestExtractVerdict_ClampsOutOfRange(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{`{"score": 5, "feedback": "x"}`, 1},
		{`{"score": -3, "feedback": "x"}`, 0},
		{`{"score": 1.0001, "feedback": "x"}`, 1},
	}

	for _, tc := range tests {
		res := extractVerdict(tc.raw, quiz.LangEnglish)
		if res.Score != tc.want {
			t.Errorf("extractVerdict(%q).Score = %v, want %v", tc.raw, res.Score, tc.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{2.7, 1},
	}

	for _, tc := range tests {
		if got := clamp01(tc.in); got != tc.want {
			t.Errorf("clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
