package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
	"github.com/vladislavdragonenkov/cardapio/internal/metrics"
	"github.com/vladislavdragonenkov/cardapio/internal/storage/memory"
)

func TestEmitter_EnqueuesMarshaledPayload(t *testing.T) {
	repo := memory.NewOutboxRepository()
	emitter := NewEmitter(repo, metrics.NewShopMetricsWith(prometheus.NewRegistry()), nil)

	emitter.Emit(context.Background(), domain.AggregateStore, "store", domain.EventStoreClosed, domain.StoreEventPayload{Open: false})

	pending := repo.AllPending()
	require.Len(t, pending, 1)
	assert.Equal(t, domain.EventStoreClosed, pending[0].EventType)
	assert.Equal(t, domain.AggregateStore, pending[0].AggregateType)

	var payload domain.StoreEventPayload
	require.NoError(t, json.Unmarshal(pending[0].Payload, &payload))
	assert.False(t, payload.Open)
}

func TestEmitter_NilRepoIsNoop(t *testing.T) {
	var emitter *Emitter
	emitter.Emit(context.Background(), domain.AggregateOrder, "o", domain.EventOrderRemoved, nil)

	NewEmitter(nil, nil, nil).Emit(context.Background(), domain.AggregateOrder, "o", domain.EventOrderRemoved, nil)
}

func TestEmitter_LogsEnqueueFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := &failingOutboxRepo{OutboxRepository: memory.NewOutboxRepository()}
	emitter := NewEmitter(repo, nil, log.NewEntry(logger))

	emitter.Emit(context.Background(), domain.AggregateOrder, "order-1", domain.EventOrderSubmitted, map[string]string{"a": "b"})

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "order-1", hook.LastEntry().Data["aggregate_id"])
}

func TestLogPublisher_Publish(t *testing.T) {
	logger, hook := test.NewNullLogger()
	publisher := NewLogPublisher(log.NewEntry(logger))

	err := publisher.Publish(domain.OutboxMessage{ID: "m1", EventType: domain.EventOrderSubmitted, Payload: []byte(`{}`)})
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, domain.EventOrderSubmitted, hook.LastEntry().Data["event_type"])
}

type failingOutboxRepo struct {
	*memory.OutboxRepository
}

func (f *failingOutboxRepo) Enqueue(context.Context, domain.OutboxMessage) (domain.OutboxMessage, error) {
	return domain.OutboxMessage{}, errors.New("db down")
}
