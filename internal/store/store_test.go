package store

import (
	"context"
	"strings"
	"testing"

	"github.com/openclass/quizcore/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func storedQuiz(id string) *quiz.Quiz {
	return &quiz.Quiz{
		ID:               id,
		Title:            "States of matter",
		Language:         quiz.LangEnglish,
		TimeLimitMinutes: 20,
		Weights:          quiz.Weights{MCQ: 1, TrueFalse: 0.5, ShortAnswer: 2},
		Criteria:         "Full credit for naming all three common states.",
		Published:        true,
		Questions: []quiz.Question{
			{
				ID: id + "-q1", QuizID: id, Type: quiz.TypeMCQ,
				Prompt: "Which state has a fixed shape?",
				Options: []quiz.Option{
					{ID: id + "-q1-a", Text: "Solid", Correct: true},
					{ID: id + "-q1-b", Text: "Liquid"},
					{ID: id + "-q1-c", Text: "Gas"},
				},
			},
			{
				ID: id + "-q2", QuizID: id, Type: quiz.TypeTrueFalse,
				Prompt: "Gases have a fixed volume.",
				Options: []quiz.Option{
					{ID: id + "-q2-t", Text: "True"},
					{ID: id + "-q2-f", Text: "False", Correct: true},
				},
			},
			{
				ID: id + "-q3", QuizID: id, Type: quiz.TypeShortAnswer,
				Prompt: "Name the three common states of matter.",
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuizSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	in := storedQuiz("qz-roundtrip")
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Get(ctx, "qz-roundtrip")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if out.Title != in.Title || out.Criteria != in.Criteria {
		t.Errorf("quiz fields changed: %+v", out)
	}
	if out.Weights != in.Weights {
		t.Errorf("weights = %+v, want %+v", out.Weights, in.Weights)
	}
	if len(out.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(out.Questions))
	}
	// Question and option order must survive the round trip.
	for i := range in.Questions {
		if out.Questions[i].ID != in.Questions[i].ID {
			t.Errorf("question %d = %s, want %s", i, out.Questions[i].ID, in.Questions[i].ID)
		}
	}
	gotOpts := out.Questions[0].Options
	for i, want := range []string{"Solid", "Liquid", "Gas"} {
		if gotOpts[i].Text != want {
			t.Errorf("option %d = %q, want %q", i, gotOpts[i].Text, want)
		}
	}
	if id, _ := out.Questions[0].CorrectOptionID(); id != "qz-roundtrip-q1-a" {
		t.Errorf("correct option = %q", id)
	}
}

func TestQuizGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.QuizRepo().Get(context.Background(), "nope")
	if err == nil {
		t.Fatal("expected error for missing quiz")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestQuizSaveRejectsInvalid(t *testing.T) {
	s := openTestStore(t)

	bad := storedQuiz("qz-bad")
	bad.Questions[0].Options = nil

	if err := s.QuizRepo().Save(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestQuizList(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, storedQuiz("qz-a")); err != nil {
		t.Fatalf("save a: %v", err)
	}
	second := storedQuiz("qz-b")
	second.Published = false
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save b: %v", err)
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	for _, sum := range summaries {
		if sum.QuestionCount != 3 {
			t.Errorf("quiz %s question count = %d, want 3", sum.ID, sum.QuestionCount)
		}
	}
}

func TestQuizSetPublished(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	qz := storedQuiz("qz-pub")
	qz.Published = false
	if err := repo.Save(ctx, qz); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.SetPublished(ctx, "qz-pub", true); err != nil {
		t.Fatalf("publish: %v", err)
	}
	got, err := repo.Get(ctx, "qz-pub")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Published {
		t.Error("quiz not published")
	}

	if err := repo.SetPublished(ctx, "missing", true); err == nil {
		t.Error("expected error for missing quiz")
	}
}

func TestAttemptAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i, score := range []float64{0.4, 0.65, 0.9} {
		err := repo.Append(ctx, AttemptRecord{
			AttemptID:    "attempt-" + string(rune('a'+i)),
			QuizID:       "qz-1",
			OverallScore: score,
			DurationSecs: 100 + i,
			TimeExpired:  i == 0,
			Questions: []AttemptQuestionRecord{
				{QuestionID: "q1", Type: quiz.TypeMCQ, Raw: 1, Weighted: 1, Feedback: "Correct"},
			},
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, err := repo.ListByQuiz(ctx, "qz-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	// Most recent first.
	if recs[0].OverallScore != 0.9 {
		t.Errorf("first record score = %v, want 0.9", recs[0].OverallScore)
	}
	if recs[0].Sequence <= recs[1].Sequence {
		t.Errorf("sequence not descending: %d then %d", recs[0].Sequence, recs[1].Sequence)
	}
	if len(recs[0].Questions) != 1 || recs[0].Questions[0].Feedback != "Correct" {
		t.Errorf("question results not preserved: %+v", recs[0].Questions)
	}

	limited, err := repo.ListByQuiz(ctx, "qz-1", 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d records with limit 2", len(limited))
	}

	other, err := repo.ListByQuiz(ctx, "qz-other", 0)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d records for unrelated quiz", len(other))
	}
}

func TestLLMRequestAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "answer-grading",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "quiz-generation",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append failure: %v", err)
	}

	events, err := repo.ListLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Purpose != "quiz-generation" {
		t.Errorf("first event purpose = %q, want most recent", events[0].Purpose)
	}
	if events[1].InputTokens != 120 || !events[1].Success {
		t.Errorf("event data not preserved: %+v", events[1])
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.AttemptRepo().Append(ctx, AttemptRecord{
		AttemptID: "a1", QuizID: "qz", OverallScore: 1,
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "answer-grading", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	attempts, err := s.AttemptRepo().ListByQuiz(ctx, "qz", 0)
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	llms, err := s.EventRepo().ListLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("list llm events: %v", err)
	}

	if llms[0].Sequence <= attempts[0].Sequence {
		t.Errorf("llm event sequence %d not after attempt sequence %d",
			llms[0].Sequence, attempts[0].Sequence)
	}
}
