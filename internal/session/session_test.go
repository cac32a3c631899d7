package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/openclass/quizcore/internal/grader"
	"github.com/openclass/quizcore/internal/quiz"
)

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:               "quiz-1",
		Title:            "Go basics",
		Language:         quiz.LangEnglish,
		TimeLimitMinutes: 1,
		Weights:          quiz.Weights{MCQ: 1, TrueFalse: 1, ShortAnswer: 2},
		Published:        true,
		Questions: []quiz.Question{
			{
				ID: "q1", QuizID: "quiz-1", Type: quiz.TypeMCQ,
				Prompt: "What does the go keyword do?",
				Options: []quiz.Option{
					{ID: "a", Text: "Starts a goroutine", Correct: true},
					{ID: "b", Text: "Imports a package"},
					{ID: "c", Text: "Declares a variable"},
				},
			},
			{
				ID: "q2", QuizID: "quiz-1", Type: quiz.TypeTrueFalse,
				Prompt: "Channels are safe for concurrent use.",
				Options: []quiz.Option{
					{ID: "t", Text: "True", Correct: true},
					{ID: "f", Text: "False"},
				},
			},
			{
				ID: "q3", QuizID: "quiz-1", Type: quiz.TypeMCQ,
				Prompt: "Which builtin grows a slice?",
				Options: []quiz.Option{
					{ID: "a", Text: "append", Correct: true},
					{ID: "b", Text: "extend"},
				},
			},
			{
				ID: "q4", QuizID: "quiz-1", Type: quiz.TypeTrueFalse,
				Prompt: "Maps are ordered.",
				Options: []quiz.Option{
					{ID: "t", Text: "True"},
					{ID: "f", Text: "False", Correct: true},
				},
			},
			{
				ID: "q5", QuizID: "quiz-1", Type: quiz.TypeShortAnswer,
				Prompt: "Explain what defer does.",
			},
		},
	}
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Grader == nil {
		cfg.Grader = grader.New(grader.NewMockEvaluator())
	}
	s, err := New(testQuiz(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// blockingGrader parks in Grade until released, so tests can observe
// the Submitting state and race retakes against an in-flight result.
type blockingGrader struct {
	entered chan struct{}
	release chan struct{}
	inner   *grader.Grader
	once    sync.Once
}

func newBlockingGrader() *blockingGrader {
	return &blockingGrader{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		inner:   grader.New(grader.NewMockEvaluator()),
	}
}

func (b *blockingGrader) Grade(ctx context.Context, qz *quiz.Quiz, answers map[string]string) *grader.Result {
	b.once.Do(func() { close(b.entered) })
	<-b.release
	return b.inner.Grade(ctx, qz, answers)
}

func TestNew_RejectsInvalidQuiz(t *testing.T) {
	g := grader.New(grader.NewMockEvaluator())

	if _, err := New(nil, Config{Grader: g}); err == nil {
		t.Error("expected error for nil quiz")
	}

	unpublished := testQuiz()
	unpublished.Published = false
	if _, err := New(unpublished, Config{Grader: g}); err == nil {
		t.Error("expected error for unpublished quiz")
	}

	broken := testQuiz()
	broken.Questions[0].Options = nil
	if _, err := New(broken, Config{Grader: g}); err == nil {
		t.Error("expected error for structurally invalid quiz")
	}

	if _, err := New(testQuiz(), Config{}); err == nil {
		t.Error("expected error for missing grader")
	}
}

func TestStart(t *testing.T) {
	s := newTestSession(t, Config{})

	if s.State() != StateNotStarted {
		t.Fatalf("initial state = %v", s.State())
	}
	s.Start()

	if s.State() != StateInProgress {
		t.Errorf("state = %v, want in_progress", s.State())
	}
	if s.CurrentIndex() != 0 {
		t.Errorf("current = %d, want 0", s.CurrentIndex())
	}
	if s.TimeRemaining() != 60 {
		t.Errorf("time remaining = %d, want 60", s.TimeRemaining())
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("answered = %d, want 0", s.AnsweredCount())
	}
}

func TestNavigation_Clamped(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	s.GoToPrevious()
	if s.CurrentIndex() != 0 {
		t.Errorf("previous at first question moved to %d", s.CurrentIndex())
	}

	for range 10 {
		s.GoToNext()
	}
	if s.CurrentIndex() != 4 {
		t.Errorf("next past last question moved to %d, want 4", s.CurrentIndex())
	}

	s.GoToPrevious()
	if s.CurrentIndex() != 3 {
		t.Errorf("current = %d, want 3", s.CurrentIndex())
	}
}

func TestSelectAnswer_Overwrites(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	s.SelectAnswer("q1", "b")
	s.SelectAnswer("q1", "a")

	if got, _ := s.Answer("q1"); got != "a" {
		t.Errorf("answer = %q, want overwritten value", got)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("answered = %d, want 1", s.AnsweredCount())
	}
}

func TestSelectAnswer_IgnoredBeforeStart(t *testing.T) {
	s := newTestSession(t, Config{})

	s.SelectAnswer("q1", "a")
	if s.AnsweredCount() != 0 {
		t.Error("answer stored before start")
	}
}

func TestSubmit_GradesAnsweredAndUnanswered(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	s.SelectAnswer("q1", "a")
	s.SelectAnswer("q2", "t")
	s.Submit(context.Background())

	if s.State() != StateReviewing {
		t.Fatalf("state = %v, want reviewing", s.State())
	}
	res, ok := s.Result()
	if !ok {
		t.Fatal("no result after submit")
	}
	if len(res.Questions) != 5 {
		t.Fatalf("got %d question results, want 5", len(res.Questions))
	}
	if res.ByQuestion("q1").Raw != 1 {
		t.Errorf("q1 raw = %v, want 1", res.ByQuestion("q1").Raw)
	}
	if res.ByQuestion("q4").Raw != 0 {
		t.Errorf("unanswered q4 raw = %v, want 0", res.ByQuestion("q4").Raw)
	}
}

func TestSubmit_OnlyOnce(t *testing.T) {
	calls := 0
	s := newTestSession(t, Config{
		OnComplete: func(Summary) { calls++ },
	})
	s.Start()
	s.SelectAnswer("q1", "a")

	s.Submit(context.Background())
	s.Submit(context.Background())
	s.Submit(context.Background())

	if calls != 1 {
		t.Errorf("OnComplete called %d times, want 1", calls)
	}
}

func TestSubmit_IgnoredBeforeStart(t *testing.T) {
	s := newTestSession(t, Config{})

	s.Submit(context.Background())
	if s.State() != StateNotStarted {
		t.Errorf("state = %v, want not_started", s.State())
	}
}

func TestSubmit_MutationFrozenAfter(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()
	s.SelectAnswer("q1", "a")
	s.Submit(context.Background())

	s.SelectAnswer("q2", "t")
	s.GoToNext()

	if s.AnsweredCount() != 1 {
		t.Error("answer accepted while reviewing")
	}
	if s.CurrentIndex() != 0 {
		t.Error("navigation accepted while reviewing")
	}
}

func TestTick_CountsDown(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	s.Tick()
	s.Tick()
	s.Tick()

	if got := s.TimeRemaining(); got != 57 {
		t.Errorf("time remaining = %d, want 57", got)
	}
	if s.TimeExpired() {
		t.Error("expired with time left")
	}
}

func TestTick_GraceThenAutoSubmit(t *testing.T) {
	var (
		mu      sync.Mutex
		summary *Summary
	)
	s := newTestSession(t, Config{
		GraceSeconds: 2,
		OnComplete: func(sum Summary) {
			mu.Lock()
			defer mu.Unlock()
			summary = &sum
		},
	})
	s.Start()
	s.SelectAnswer("q1", "a")
	s.SelectAnswer("q2", "f")

	// Burn the whole budget.
	for range 60 {
		s.Tick()
	}
	if !s.TimeExpired() {
		t.Fatal("not expired at zero")
	}
	if s.State() != StateInProgress {
		t.Fatalf("state = %v, want in_progress during grace", s.State())
	}

	s.Tick()
	if s.State() != StateInProgress {
		t.Fatalf("submitted before grace elapsed")
	}
	s.Tick()

	if s.State() != StateReviewing {
		t.Fatalf("state = %v, want reviewing after grace", s.State())
	}

	res, ok := s.Result()
	if !ok {
		t.Fatal("no result after forced submit")
	}
	// 2 of 5 answered: one correct, one incorrect, rest zero.
	if res.ByQuestion("q1").Raw != 1 {
		t.Errorf("q1 raw = %v, want 1", res.ByQuestion("q1").Raw)
	}
	if res.ByQuestion("q2").Raw != 0 {
		t.Errorf("q2 raw = %v, want 0", res.ByQuestion("q2").Raw)
	}
	for _, id := range []string{"q3", "q4", "q5"} {
		if got := res.ByQuestion(id).Raw; got != 0 {
			t.Errorf("unanswered %s raw = %v, want 0", id, got)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if summary == nil {
		t.Fatal("OnComplete not called")
	}
	if !summary.TimeExpired {
		t.Error("summary should record time expiry")
	}
	if summary.DurationSecs != 60 {
		t.Errorf("duration = %d, want 60", summary.DurationSecs)
	}
}

func TestTick_FiresExactlyOnce(t *testing.T) {
	calls := 0
	s := newTestSession(t, Config{
		GraceSeconds: 1,
		OnComplete:   func(Summary) { calls++ },
	})
	s.Start()

	for range 70 {
		s.Tick()
	}

	if calls != 1 {
		t.Errorf("OnComplete called %d times, want 1", calls)
	}
	if s.State() != StateReviewing {
		t.Errorf("state = %v, want reviewing", s.State())
	}
}

func TestTick_IgnoredOutsideInProgress(t *testing.T) {
	s := newTestSession(t, Config{})

	s.Tick()
	if s.State() != StateNotStarted {
		t.Errorf("tick changed state to %v", s.State())
	}
}

func TestRetake_ResetsCompletely(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()
	s.SelectAnswer("q1", "a")
	s.GoToNext()
	s.Submit(context.Background())

	firstAttempt := s.AttemptID()
	s.Retake()

	if s.State() != StateNotStarted {
		t.Errorf("state = %v, want not_started", s.State())
	}
	if s.AttemptID() == firstAttempt {
		t.Error("attempt id not regenerated")
	}
	if s.AnsweredCount() != 0 {
		t.Error("answers survived retake")
	}
	if _, ok := s.Result(); ok {
		t.Error("result survived retake")
	}

	// The second attempt scores independently.
	s.Start()
	if s.TimeRemaining() != 60 {
		t.Errorf("time remaining = %d, want full budget", s.TimeRemaining())
	}
	s.SelectAnswer("q1", "b")
	s.Submit(context.Background())

	res, ok := s.Result()
	if !ok {
		t.Fatal("no result on second attempt")
	}
	if res.ByQuestion("q1").Raw != 0 {
		t.Errorf("second attempt q1 raw = %v, want 0", res.ByQuestion("q1").Raw)
	}
}

func TestRetake_OnlyFromReviewing(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()
	s.SelectAnswer("q1", "a")

	s.Retake()
	if s.State() != StateInProgress {
		t.Errorf("retake mid-attempt changed state to %v", s.State())
	}
	if s.AnsweredCount() != 1 {
		t.Error("retake mid-attempt cleared answers")
	}
}

func TestDiscard_DropsInFlightResult(t *testing.T) {
	bg := newBlockingGrader()
	completed := 0
	s := newTestSession(t, Config{
		Grader:     bg,
		OnComplete: func(Summary) { completed++ },
	})
	s.Start()
	s.SelectAnswer("q1", "a")

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Submit(context.Background())
	}()

	<-bg.entered
	if s.State() != StateSubmitting {
		t.Fatalf("state = %v, want submitting", s.State())
	}

	s.Discard()
	close(bg.release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("submit did not return")
	}

	if s.State() != StateNotStarted {
		t.Errorf("state = %v, want not_started", s.State())
	}
	if _, ok := s.Result(); ok {
		t.Error("stale result attached after discard")
	}
	if completed != 0 {
		t.Errorf("OnComplete called %d times for discarded attempt", completed)
	}
}

func TestCurrentQuestion(t *testing.T) {
	s := newTestSession(t, Config{})
	s.Start()

	if got := s.CurrentQuestion(); got == nil || got.ID != "q1" {
		t.Fatalf("current question = %+v, want q1", got)
	}
	s.GoToNext()
	if got := s.CurrentQuestion(); got == nil || got.ID != "q2" {
		t.Fatalf("current question = %+v, want q2", got)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateNotStarted, "not_started"},
		{StateInProgress, "in_progress"},
		{StateSubmitting, "submitting"},
		{StateReviewing, "reviewing"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.state, got, tc.want)
		}
	}
}
