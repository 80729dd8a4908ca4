// Package idempotency защищает оформление заказа от повторной отправки
// с тем же Idempotency-Key: повтор получает сохранённый ответ.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// DefaultTTL: время жизни ключа по умолчанию.
const DefaultTTL = domain.DefaultIdempotencyTTL

// ErrInProgress: запрос с этим ключом ещё обрабатывается.
var ErrInProgress = errors.New("request with the same idempotency key is already processing")

// Response: сохраняемый результат обработки.
type Response struct {
	Status int
	Body   []byte
	// Replayed выставляется, если ответ взят из кэша.
	Replayed bool
}

// Handler выполняет защищаемое действие.
type Handler func(ctx context.Context) Response

// Guard хранит ключи в IdempotencyRepository.
type Guard struct {
	repo   domain.IdempotencyRepository
	ttl    time.Duration
	logger *log.Entry
	now    func() time.Time
}

// NewGuard создаёт Guard. nil repo отключает защиту: handler выполняется всегда.
func NewGuard(repo domain.IdempotencyRepository, ttl time.Duration, logger *log.Entry) *Guard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.WithField("component", "idempotency-guard")
	}
	return &Guard{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Do выполняет handler не более одного раза на ключ, пока ответ не 5xx.
// scope отделяет ключи разных операций/сессий, request: тело запроса для
// проверки повторного использования ключа.
func (g *Guard) Do(ctx context.Context, key, scope string, request []byte, handler Handler) (Response, error) {
	key = strings.TrimSpace(key)
	if g == nil || g.repo == nil || key == "" {
		return handler(ctx), nil
	}

	fullKey := scope + ":" + key
	record, err := g.repo.CreateProcessing(ctx, fullKey, RequestHash(scope, request), g.now().Add(g.ttl))
	if err != nil {
		return g.replay(err, record)
	}

	resp := handler(ctx)

	// 5xx не кэшируется как окончательный ответ: failed ключ освобождается
	// для повтора с тем же Idempotency-Key.
	mark := g.repo.MarkDone
	if resp.Status >= 500 {
		mark = g.repo.MarkFailed
	}
	if err := mark(ctx, fullKey, resp.Body, resp.Status); err != nil {
		g.logger.WithError(err).WithField("idempotency_key", fullKey).Warn("failed to store idempotent response")
	}

	return resp, nil
}

func (g *Guard) replay(createErr error, record domain.IdempotencyRecord) (Response, error) {
	switch {
	case errors.Is(createErr, domain.ErrIdempotencyHashMismatch):
		return Response{}, domain.ErrIdempotencyHashMismatch
	case errors.Is(createErr, domain.ErrIdempotencyKeyAlreadyExists):
		switch record.Status {
		case domain.IdempotencyStatusDone:
			return Response{Status: record.HTTPStatus, Body: record.ResponseBody, Replayed: true}, nil
		case domain.IdempotencyStatusProcessing:
			return Response{}, ErrInProgress
		default:
			return Response{}, fmt.Errorf("unknown idempotency record status %q", record.Status)
		}
	default:
		g.logger.WithError(createErr).Warn("failed to create idempotency record")
		return Response{}, fmt.Errorf("init idempotency record: %w", createErr)
	}
}

// RequestHash: sha256 от scope и тела запроса.
func RequestHash(scope string, request []byte) string {
	h := sha256.New()
	h.Write([]byte(scope))
	h.Write([]byte{0})
	h.Write(request)
	return hex.EncodeToString(h.Sum(nil))
}
