package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"
)

func TestWorker_ProcessOnce(t *testing.T) {
	t.Parallel()

	brokerDown := errors.New("broker down")
	tests := []struct {
		name        string
		results     []error
		wantCalls   int
		wantPending int
		wantDLQ     int
	}{
		{name: "first attempt", results: []error{nil}, wantCalls: 1},
		{name: "succeeds on third attempt", results: []error{brokerDown, brokerDown, nil}, wantCalls: 3},
		{name: "exhausted goes to dlq", results: []error{brokerDown, brokerDown, brokerDown}, wantCalls: 3, wantDLQ: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			repo := memory.NewOutboxRepository()
			event, err := repo.Enqueue(ctx, domain.OutboxMessage{
				AggregateType: domain.AggregateOrder,
				AggregateID:   "order-7",
				EventType:     domain.EventOrderSubmitted,
				Payload:       []byte(`{"order_id":"order-7"}`),
			})
			require.NoError(t, err)

			publisher := &scriptedPublisher{results: tt.results}
			dlq := &scriptedPublisher{}
			worker := NewWorker(repo, publisher, WithDLQPublisher(dlq), WithRetryBaseDelay(0), WithMaxAttempts(3))

			worker.ProcessOnce(ctx)

			assert.Equal(t, tt.wantCalls, publisher.calls())
			assert.Len(t, repo.AllPending(), tt.wantPending)
			require.Equal(t, tt.wantDLQ, dlq.calls())
			if tt.wantDLQ == 0 {
				return
			}

			dead, err := DecodeDeadLetter(dlq.lastMessage().Payload)
			require.NoError(t, err)
			assert.Equal(t, event.ID, dead.OutboxID)
			assert.Equal(t, 3, dead.Attempts)
			assert.Contains(t, dead.PublishError, "broker down")
			assert.JSONEq(t, `{"order_id":"order-7"}`, string(dead.Payload))
		})
	}
}

func TestWorker_ProcessOnce_PreservesOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memory.NewOutboxRepository()
	for _, id := range []string{"order-1", "order-2", "order-3"} {
		_, err := repo.Enqueue(ctx, domain.OutboxMessage{AggregateType: domain.AggregateOrder, AggregateID: id, EventType: domain.EventOrderSubmitted})
		require.NoError(t, err)
	}
	publisher := &scriptedPublisher{}

	NewWorker(repo, publisher, WithBatchSize(2)).ProcessOnce(ctx)
	assert.Equal(t, []string{"order-1", "order-2"}, publisher.aggregates())
	require.Len(t, repo.AllPending(), 1)

	NewWorker(repo, publisher).ProcessOnce(ctx)
	assert.Equal(t, []string{"order-1", "order-2", "order-3"}, publisher.aggregates())
	assert.Empty(t, repo.AllPending())
}

func TestWorker_ProcessOnce_StopsRetryOnCancel(t *testing.T) {
	t.Parallel()

	repo := memory.NewOutboxRepository()
	_, err := repo.Enqueue(context.Background(), domain.OutboxMessage{AggregateType: domain.AggregateStore, EventType: "store.closed", Payload: []byte(`{}`)})
	require.NoError(t, err)

	publisher := &scriptedPublisher{fallback: errors.New("broker down")}
	dlq := &scriptedPublisher{}
	worker := NewWorker(repo, publisher, WithDLQPublisher(dlq), WithRetryBaseDelay(time.Hour), WithMaxAttempts(5))

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)
	worker.ProcessOnce(ctx)

	assert.Equal(t, 1, publisher.calls())
	assert.Zero(t, dlq.calls())
	assert.Len(t, repo.AllPending(), 1, "cancelled event must stay pending")
}

func TestWorker_BackoffIsCapped(t *testing.T) {
	t.Parallel()

	worker := NewWorker(memory.NewOutboxRepository(), &scriptedPublisher{}, WithRetryBaseDelay(100*time.Millisecond))
	for attempt, want := range map[int]time.Duration{
		1:  100 * time.Millisecond,
		2:  200 * time.Millisecond,
		3:  400 * time.Millisecond,
		10: maxRetryDelay,
		70: maxRetryDelay,
	} {
		assert.Equal(t, want, worker.backoff(attempt), "attempt %d", attempt)
	}

	disabled := NewWorker(memory.NewOutboxRepository(), &scriptedPublisher{}, WithRetryBaseDelay(0))
	assert.Zero(t, disabled.backoff(3))
}

func TestWorker_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops on cancel", func(t *testing.T) {
		worker := NewWorker(memory.NewOutboxRepository(), &scriptedPublisher{}, WithPollInterval(5*time.Millisecond))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			defer close(done)
			worker.Run(ctx)
		}()

		time.Sleep(15 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("worker did not stop on context cancel")
		}
	})

	t.Run("disabled without publisher", func(t *testing.T) {
		worker := NewWorker(memory.NewOutboxRepository(), nil)
		worker.Run(context.Background())
	})
}

// scriptedPublisher отдаёт results по очереди, затем fallback.
type scriptedPublisher struct {
	mu        sync.Mutex
	results   []error
	fallback  error
	published []domain.OutboxMessage
}

func (p *scriptedPublisher) Publish(msg domain.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.published = append(p.published, msg)
	if len(p.results) == 0 {
		return p.fallback
	}
	err := p.results[0]
	p.results = p.results[1:]
	return err
}

func (p *scriptedPublisher) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func (p *scriptedPublisher) lastMessage() domain.OutboxMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.published) == 0 {
		return domain.OutboxMessage{}
	}
	return p.published[len(p.published)-1]
}

// aggregates возвращает AggregateID всех вызовов Publish по порядку.
func (p *scriptedPublisher) aggregates() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.published))
	for _, msg := range p.published {
		ids = append(ids, msg.AggregateID)
	}
	return ids
}
