package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

const defaultOutboxBatch = 100

const (
	insertOutboxSQL = `
INSERT INTO outbox_messages (id, aggregate_type, aggregate_id, event_type, payload, status, attempt_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)`

	selectPendingOutboxSQL = `
SELECT id, aggregate_type, aggregate_id, event_type, payload, attempt_count, created_at
FROM outbox_messages
WHERE status = $1
ORDER BY created_at, id
LIMIT $2`

	outboxBacklogSQL = `
SELECT COUNT(*), MIN(created_at)
FROM outbox_messages
WHERE status = $1`

	// Переход разрешён только из pending: повторная пометка не считается новой попыткой.
	markOutboxSQL = `
UPDATE outbox_messages
SET status = $2, attempt_count = attempt_count + 1, updated_at = $3
WHERE id = $1 AND status = $4`
)

// OutboxRepository хранит события заказов и магазина в outbox_messages.
type OutboxRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewOutboxRepository создаёт репозиторий поверх Store.
func NewOutboxRepository(store *Store) *OutboxRepository {
	return &OutboxRepository{
		db:  store.DB(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Enqueue сохраняет событие в статусе pending и возвращает его с id и created_at.
func (r *OutboxRepository) Enqueue(ctx context.Context, msg domain.OutboxMessage) (domain.OutboxMessage, error) {
	now := r.now()
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = now
	}
	msg.Attempts = 0

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, insertOutboxSQL,
		msg.ID, msg.AggregateType, msg.AggregateID, msg.EventType, msg.Payload,
		string(domain.OutboxPending), msg.CreatedAt, now,
	); err != nil {
		return domain.OutboxMessage{}, storageErr("enqueue outbox message", err)
	}
	return msg, nil
}

// PullPending читает до limit pending-событий в порядке появления.
func (r *OutboxRepository) PullPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	if limit <= 0 {
		limit = defaultOutboxBatch
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectPendingOutboxSQL, string(domain.OutboxPending), limit)
	if err != nil {
		return nil, fmt.Errorf("pull pending outbox messages: %w", err)
	}
	defer rows.Close()

	var pending []domain.OutboxMessage
	for rows.Next() {
		var msg domain.OutboxMessage
		if err := rows.Scan(&msg.ID, &msg.AggregateType, &msg.AggregateID, &msg.EventType,
			&msg.Payload, &msg.Attempts, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outbox message: %w", err)
		}
		msg.CreatedAt = msg.CreatedAt.UTC()
		pending = append(pending, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbox messages: %w", err)
	}
	return pending, nil
}

// Stats возвращает размер backlog и время самого старого pending-события.
func (r *OutboxRepository) Stats(ctx context.Context) (domain.OutboxStats, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		stats  domain.OutboxStats
		oldest sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, outboxBacklogSQL, string(domain.OutboxPending)).
		Scan(&stats.PendingCount, &oldest); err != nil {
		return domain.OutboxStats{}, fmt.Errorf("query outbox backlog: %w", err)
	}
	if oldest.Valid {
		stats.OldestPendingAt = oldest.Time.UTC()
	}
	return stats, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id string) error {
	return r.transition(ctx, id, domain.OutboxSent)
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.transition(ctx, id, domain.OutboxFailed)
}

func (r *OutboxRepository) transition(ctx context.Context, id string, to domain.OutboxStatus) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, markOutboxSQL, id, string(to), r.now(), string(domain.OutboxPending))
	if err != nil {
		return fmt.Errorf("mark outbox message %s as %s: %w", id, to, err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("outbox rows affected: %w", err)
	}
	if updated == 0 {
		return fmt.Errorf("outbox message %s is not pending: %w", id, domain.ErrOutboxPublish)
	}
	return nil
}

var _ domain.OutboxRepository = (*OutboxRepository)(nil)
