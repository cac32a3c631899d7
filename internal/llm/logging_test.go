package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/quizcore/internal/store"
)

// memEventRepo collects LLM request events in memory.
type memEventRepo struct {
	events []store.LLMRequestEventData
	fail   bool
}

func (m *memEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.events = append(m.events, data)
	return nil
}

func (m *memEventRepo) ListLLMRequests(context.Context, int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"score":1}`),
			Usage:   Usage{InputTokens: 100, OutputTokens: 30, TotalTokens: 130},
		},
	)
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "answer-grading")
	resp, err := p.Generate(ctx, Request{})
	require.NoError(t, err)
	require.NotNil(t, resp)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.True(t, e.Success)
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "answer-grading", e.Purpose)
	assert.Equal(t, 100, e.InputTokens)
	assert.Equal(t, 30, e.OutputTokens)
	assert.Empty(t, e.ErrorMessage)
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)
	p := WithLogging(mock, "mock", repo)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.False(t, e.Success)
	assert.Equal(t, "unknown", e.Purpose)
	assert.NotEmpty(t, e.ErrorMessage)
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &memEventRepo{fail: true}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"score":1}`)},
	)
	p := WithLogging(mock, "mock", repo)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, `{"score":1}`, string(resp.Content))
}

func TestLogging_EachRetryAttemptLogged(t *testing.T) {
	repo := &memEventRepo{}
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"score":1}`)},
	)
	p := WithRetry(WithLogging(mock, "mock", repo), RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1,
		MaxWait:     1,
		Multiplier:  1,
	})

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)

	require.Len(t, repo.events, 2)
	assert.False(t, repo.events[0].Success)
	assert.True(t, repo.events[1].Success)
}
