package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

const (
	// Новый ключ вставляется; просроченный перезаписывается; живой не трогается.
	claimIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, request_hash, status, ttl_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
ON CONFLICT (key) DO UPDATE
SET request_hash = EXCLUDED.request_hash,
    response_body = NULL,
    http_status = NULL,
    status = EXCLUDED.status,
    ttl_at = EXCLUDED.ttl_at,
    created_at = EXCLUDED.created_at,
    updated_at = EXCLUDED.updated_at
WHERE idempotency_keys.ttl_at <= EXCLUDED.created_at
   OR idempotency_keys.status = $6`

	selectIdempotencyKeySQL = `
SELECT key, request_hash, response_body, http_status, status, ttl_at, created_at, updated_at
FROM idempotency_keys
WHERE key = $1`

	finishIdempotencyKeySQL = `
UPDATE idempotency_keys
SET response_body = $2, http_status = $3, status = $4, updated_at = $5
WHERE key = $1`

	// limit<=0 отключает LIMIT через NULL.
	deleteExpiredIdempotencyKeysSQL = `
DELETE FROM idempotency_keys
WHERE key IN (
    SELECT key FROM idempotency_keys
    WHERE ttl_at <= $1
    ORDER BY ttl_at
    LIMIT $2
)`
)

// IdempotencyRepository хранит ключи повторной отправки заказа в таблице idempotency_keys.
type IdempotencyRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewIdempotencyRepository создаёт репозиторий поверх Store.
func NewIdempotencyRepository(store *Store) *IdempotencyRepository {
	return &IdempotencyRepository{
		db:  store.DB(),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// CreateProcessing занимает ключ. Если ключ занят, жив и не failed, возвращается
// существующая запись вместе с ErrIdempotencyKeyAlreadyExists или
// ErrIdempotencyHashMismatch.
func (r *IdempotencyRepository) CreateProcessing(ctx context.Context, key, requestHash string, ttlAt time.Time) (domain.IdempotencyRecord, error) {
	record, err := domain.NewIdempotencyRecord(key, requestHash, ttlAt, r.now())
	if err != nil {
		return domain.IdempotencyRecord{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, claimIdempotencyKeySQL,
		record.Key, record.RequestHash, string(record.Status), record.TTLAt, record.CreatedAt,
		string(domain.IdempotencyStatusFailed))
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("claim idempotency key: %w", err)
	}
	claimed, err := res.RowsAffected()
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("idempotency rows affected: %w", err)
	}
	if claimed == 1 {
		return record, nil
	}

	existing, err := r.Get(ctx, record.Key)
	if err != nil {
		// Ключ удалили между INSERT и SELECT; для вызывающего это всё равно конфликт.
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyAlreadyExists
	}
	return existing, existing.Conflict(record.RequestHash)
}

func (r *IdempotencyRepository) Get(ctx context.Context, key string) (domain.IdempotencyRecord, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyRequired
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		record     domain.IdempotencyRecord
		status     string
		httpStatus sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, selectIdempotencyKeySQL, key).Scan(
		&record.Key, &record.RequestHash, &record.ResponseBody, &httpStatus,
		&status, &record.TTLAt, &record.CreatedAt, &record.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.IdempotencyRecord{}, domain.ErrIdempotencyKeyNotFound
	case err != nil:
		return domain.IdempotencyRecord{}, fmt.Errorf("get idempotency key %s: %w", key, err)
	}

	record.Status = domain.IdempotencyStatus(status)
	if !record.Status.Valid() {
		return domain.IdempotencyRecord{}, fmt.Errorf("idempotency key %s has unknown status %q", key, status)
	}
	record.HTTPStatus = int(httpStatus.Int64)
	return record, nil
}

func (r *IdempotencyRepository) MarkDone(ctx context.Context, key string, responseBody []byte, httpStatus int) error {
	return r.finish(ctx, key, domain.IdempotencyStatusDone, responseBody, httpStatus)
}

func (r *IdempotencyRepository) MarkFailed(ctx context.Context, key string, responseBody []byte, httpStatus int) error {
	return r.finish(ctx, key, domain.IdempotencyStatusFailed, responseBody, httpStatus)
}

// DeleteExpired удаляет ключи с ttl не позже before, начиная с самых старых.
func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error) {
	if before.IsZero() {
		before = r.now()
	}
	var batch sql.NullInt64
	if limit > 0 {
		batch = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, deleteExpiredIdempotencyKeysSQL, before, batch)
	if err != nil {
		return 0, fmt.Errorf("delete expired idempotency keys: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("idempotency rows affected: %w", err)
	}
	return int(deleted), nil
}

func (r *IdempotencyRepository) finish(ctx context.Context, key string, status domain.IdempotencyStatus, responseBody []byte, httpStatus int) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return domain.ErrIdempotencyKeyRequired
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, finishIdempotencyKeySQL, key, responseBody, httpStatus, string(status), r.now())
	if err != nil {
		return fmt.Errorf("finish idempotency key %s: %w", key, err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency rows affected: %w", err)
	}
	if updated == 0 {
		return domain.ErrIdempotencyKeyNotFound
	}
	return nil
}

var _ domain.IdempotencyRepository = (*IdempotencyRepository)(nil)
