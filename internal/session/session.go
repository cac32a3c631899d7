package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/openclass/quizcore/internal/grader"
	"github.com/openclass/quizcore/internal/quiz"
)

// DefaultGraceSeconds is how many ticks elapse between the countdown
// reaching zero and the forced submission. The delay exists so the UI
// can show a time-up notice; its exact length is not load-bearing.
const DefaultGraceSeconds = 2

// Grader scores a complete answer set. It is total: partial evaluator
// failures degrade inside the result rather than surfacing as errors,
// which is what guarantees the session always reaches Reviewing.
type Grader interface {
	Grade(ctx context.Context, qz *quiz.Quiz, answers map[string]string) *grader.Result
}

// Summary describes one completed submission, handed to the OnComplete
// hook (typically for persisting an attempt record).
type Summary struct {
	AttemptID    string
	Quiz         *quiz.Quiz
	Result       *grader.Result
	DurationSecs int
	TimeExpired  bool
}

// Config configures a Session.
type Config struct {
	// Grader scores the submission. Required.
	Grader Grader

	// OnComplete, when set, is called exactly once per submission after
	// the session reaches Reviewing. Stale submissions (superseded by a
	// retake or discard) never trigger it.
	OnComplete func(Summary)

	// GraceSeconds overrides DefaultGraceSeconds when positive.
	GraceSeconds int
}

// Session is one learner's attempt at a quiz. It lives in memory only;
// nothing is persisted until a submission completes. Methods are safe
// for concurrent use, though the intended driver is a single
// event-driven UI loop feeding it ticks and user actions.
type Session struct {
	mu  sync.Mutex
	cfg Config
	qz  *quiz.Quiz

	attemptID string
	state     State
	current   int
	answers   map[string]string

	timeLimit     int // seconds
	timeRemaining int
	timeExpired   bool
	graceLeft     int
	autoFired     bool

	// generation tags each submission dispatch; results delivered under
	// a stale generation are discarded. Retake and Discard bump it.
	generation uint64

	result *grader.Result
}

// New validates the quiz and creates a session in NotStarted. A quiz
// that is missing, unpublished, or structurally invalid never yields a
// session.
func New(qz *quiz.Quiz, cfg Config) (*Session, error) {
	if qz == nil {
		return nil, fmt.Errorf("no quiz provided")
	}
	if err := qz.Validate(); err != nil {
		return nil, err
	}
	if !qz.Published {
		return nil, fmt.Errorf("quiz %q is not published", qz.ID)
	}
	if cfg.Grader == nil {
		return nil, fmt.Errorf("no grader provided")
	}
	if cfg.GraceSeconds <= 0 {
		cfg.GraceSeconds = DefaultGraceSeconds
	}

	return &Session{
		cfg:       cfg,
		qz:        qz,
		attemptID: uuid.NewString(),
		state:     StateNotStarted,
		answers:   make(map[string]string),
		timeLimit: qz.TimeLimitMinutes * 60,
	}, nil
}

// Start begins the attempt: full time budget, first question, no
// answers. Calling it again while InProgress is a harmless no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateNotStarted {
		return
	}
	s.state = StateInProgress
	s.current = 0
	s.answers = make(map[string]string)
	s.timeRemaining = s.timeLimit
	s.timeExpired = false
	s.autoFired = false
}

// SelectAnswer stores or overwrites the learner's answer for a
// question. The value is an option id for objective questions and free
// text for short answers; no content validation happens here — the
// scoring pipeline treats unknown option ids as incorrect.
func (s *Session) SelectAnswer(questionID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	s.answers[questionID] = value
}

// GoToNext advances the current question index, clamped to the last
// question. No-op outside InProgress.
func (s *Session) GoToNext() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	if s.current < len(s.qz.Questions)-1 {
		s.current++
	}
}

// GoToPrevious moves the current question index back, clamped to zero.
func (s *Session) GoToPrevious() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInProgress {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the session flags TimeExpired immediately, then forces submission
// after the grace period — exactly once.
func (s *Session) Tick() {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}

	fire := false
	if s.timeRemaining > 0 {
		s.timeRemaining--
		if s.timeRemaining == 0 {
			s.timeExpired = true
			s.graceLeft = s.cfg.GraceSeconds
		}
	} else if s.timeExpired && !s.autoFired {
		s.graceLeft--
		if s.graceLeft <= 0 {
			s.autoFired = true
			fire = true
		}
	}
	s.mu.Unlock()

	if fire {
		s.Submit(context.Background())
	}
}

// Submit freezes the clock, grades the complete answer map (unanswered
// questions grade as zero), and transitions to Reviewing with the result
// attached. It blocks until every per-question evaluation settles. The
// state machine guarantees at most one submission per attempt: calls
// outside InProgress are no-ops, and the Submitting state blocks both
// resubmission and further mutation.
//
// The session always reaches Reviewing, even under total evaluator
// failure — the grader degrades failed items to zero-credit results.
func (s *Session) Submit(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}
	s.state = StateSubmitting
	gen := s.generation
	expired := s.timeExpired
	duration := s.timeLimit - s.timeRemaining

	snapshot := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		snapshot[k] = v
	}
	s.mu.Unlock()

	res := s.cfg.Grader.Grade(ctx, s.qz, snapshot)
	s.finish(gen, res, duration, expired)
}

// finish attaches the result and moves to Reviewing, unless the
// generation went stale in the meantime (retake or discard while the
// pipeline was in flight) — stale results are silently dropped so they
// can never corrupt the successor attempt.
func (s *Session) finish(gen uint64, res *grader.Result, duration int, expired bool) {
	s.mu.Lock()
	if gen != s.generation || s.state != StateSubmitting {
		s.mu.Unlock()
		return
	}
	s.result = res
	s.state = StateReviewing
	summary := Summary{
		AttemptID:    s.attemptID,
		Quiz:         s.qz,
		Result:       res,
		DurationSecs: duration,
		TimeExpired:  expired,
	}
	hook := s.cfg.OnComplete
	s.mu.Unlock()

	if hook != nil {
		hook(summary)
	}
}

// Retake discards the completed attempt and resets to NotStarted,
// indistinguishable from a freshly created session: new attempt id, full
// time budget, no answers, no result. Valid only from Reviewing.
func (s *Session) Retake() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return
	}
	s.reset()
}

// Discard abandons the attempt from any state (the navigation-away
// path). Any in-flight submission becomes stale and its result is
// dropped on arrival.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// reset must be called with the lock held.
func (s *Session) reset() {
	s.generation++
	s.attemptID = uuid.NewString()
	s.state = StateNotStarted
	s.current = 0
	s.answers = make(map[string]string)
	s.timeRemaining = 0
	s.timeExpired = false
	s.autoFired = false
	s.result = nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AttemptID returns the identifier of the current attempt.
func (s *Session) AttemptID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attemptID
}

// Quiz returns the quiz under attempt.
func (s *Session) Quiz() *quiz.Quiz {
	return s.qz
}

// CurrentIndex returns the 0-based index of the question on display.
func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the question on display, or nil when the quiz
// has no questions.
func (s *Session) CurrentQuestion() *quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current < 0 || s.current >= len(s.qz.Questions) {
		return nil
	}
	return &s.qz.Questions[s.current]
}

// Answer returns the stored answer for a question, with ok reporting
// whether one was given.
func (s *Session) Answer(questionID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.answers[questionID]
	return v, ok
}

// AnsweredCount returns how many questions have a stored answer.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// TimeRemaining returns the countdown in seconds.
func (s *Session) TimeRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeRemaining
}

// TimeExpired reports whether the countdown has run out.
func (s *Session) TimeExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeExpired
}

// Result returns the evaluation result once the session is Reviewing.
func (s *Session) Result() (*grader.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReviewing || s.result == nil {
		return nil, false
	}
	return s.result, true
}
