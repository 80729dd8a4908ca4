package idempotency

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"
)

func TestGuard_ReplaysStoredResponse(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyRepository(), 0, nil)

	calls := 0
	handler := func(context.Context) Response {
		calls++
		return Response{Status: 201, Body: []byte(`{"id":"order-1"}`)}
	}

	first, err := guard.Do(ctx, "k1", "session-a", []byte(`{"name":"Ana"}`), handler)
	require.NoError(t, err)
	assert.False(t, first.Replayed)

	second, err := guard.Do(ctx, "k1", "session-a", []byte(`{"name":"Ana"}`), handler)
	require.NoError(t, err)
	assert.True(t, second.Replayed)
	assert.Equal(t, 201, second.Status)
	assert.JSONEq(t, `{"id":"order-1"}`, string(second.Body))
	assert.Equal(t, 1, calls)
}

func TestGuard_ServerErrorIsRetriedWithSameKey(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyRepository(), 0, nil)

	statuses := []int{503, 201}
	calls := 0
	handler := func(context.Context) Response {
		status := statuses[calls]
		calls++
		return Response{Status: status, Body: []byte(`{}`)}
	}

	first, err := guard.Do(ctx, "k1", "session-a", []byte(`{"name":"Ana"}`), handler)
	require.NoError(t, err)
	assert.Equal(t, 503, first.Status)

	second, err := guard.Do(ctx, "k1", "session-a", []byte(`{"name":"Ana"}`), handler)
	require.NoError(t, err)
	assert.False(t, second.Replayed)
	assert.Equal(t, 201, second.Status)

	third, err := guard.Do(ctx, "k1", "session-a", []byte(`{"name":"Ana"}`), handler)
	require.NoError(t, err)
	assert.True(t, third.Replayed)
	assert.Equal(t, 201, third.Status)
	assert.Equal(t, 2, calls)
}

func TestGuard_ClientErrorIsReplayed(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyRepository(), 0, nil)

	calls := 0
	handler := func(context.Context) Response {
		calls++
		return Response{Status: 409, Body: []byte(`{"error":"store_closed"}`)}
	}

	for range 2 {
		_, err := guard.Do(ctx, "k1", "s", nil, handler)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestGuard_KeyReuseWithDifferentBody(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyRepository(), 0, nil)
	ok := func(context.Context) Response { return Response{Status: 201} }

	_, err := guard.Do(ctx, "k1", "s", []byte("a"), ok)
	require.NoError(t, err)

	_, err = guard.Do(ctx, "k1", "s", []byte("b"), ok)
	assert.True(t, errors.Is(err, domain.ErrIdempotencyHashMismatch))
}

func TestGuard_ScopesSeparateKeys(t *testing.T) {
	ctx := context.Background()
	guard := NewGuard(memory.NewIdempotencyRepository(), 0, nil)

	calls := 0
	handler := func(context.Context) Response { calls++; return Response{Status: 201} }

	_, err := guard.Do(ctx, "k1", "session-a", nil, handler)
	require.NoError(t, err)
	_, err = guard.Do(ctx, "k1", "session-b", nil, handler)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGuard_InProgress(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIdempotencyRepository()
	guard := NewGuard(repo, 0, nil)

	_, err := guard.Do(ctx, "k1", "s", nil, func(ctx context.Context) Response {
		_, nestedErr := guard.Do(ctx, "k1", "s", nil, func(context.Context) Response { return Response{} })
		assert.ErrorIs(t, nestedErr, ErrInProgress)
		return Response{Status: 201}
	})
	require.NoError(t, err)
}

func TestGuard_NoKeyAlwaysRunsHandler(t *testing.T) {
	guard := NewGuard(memory.NewIdempotencyRepository(), 0, nil)
	calls := 0
	for i := 0; i < 2; i++ {
		_, err := guard.Do(context.Background(), "  ", "s", nil, func(context.Context) Response { calls++; return Response{} })
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)

	var nilGuard *Guard
	_, err := nilGuard.Do(context.Background(), "k", "s", nil, func(context.Context) Response { calls++; return Response{} })
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRequestHashDependsOnScope(t *testing.T) {
	assert.NotEqual(t, RequestHash("a", []byte("x")), RequestHash("b", []byte("x")))
	assert.Equal(t, RequestHash("a", []byte("x")), RequestHash("a", []byte("x")))
}
