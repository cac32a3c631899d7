package grader

import (
	"context"
	"sync"
)

// MockEvaluator is a deterministic Evaluator for testing. It dispatches
// on the learner's answer text and records every request, so tests can
// assert that blank answers never reach the evaluator.
type MockEvaluator struct {
	mu sync.Mutex

	// Results maps answer text to a canned result.
	Results map[string]EvalResult

	// Errors maps answer text to a forced failure.
	Errors map[string]error

	// Default is returned for answers with no canned entry.
	Default EvalResult

	// Calls records every request in arrival order.
	Calls []EvalRequest
}

// NewMockEvaluator creates an empty mock with a zero Default.
func NewMockEvaluator() *MockEvaluator {
	return &MockEvaluator{
		Results: make(map[string]EvalResult),
		Errors:  make(map[string]error),
	}
}

func (m *MockEvaluator) Evaluate(_ context.Context, req EvalRequest) (*EvalResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if err, ok := m.Errors[req.Answer]; ok {
		return nil, err
	}
	if res, ok := m.Results[req.Answer]; ok {
		return &res, nil
	}
	res := m.Default
	return &res, nil
}

// CallCount returns the number of Evaluate calls made.
func (m *MockEvaluator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
