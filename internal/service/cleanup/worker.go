// Package cleanup содержит фоновый воркер, удаляющий просроченные записи:
// брошенные корзины сессий и ключи идемпотентности.
package cleanup

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
)

const (
	defaultInterval  = 10 * time.Minute
	defaultBatchSize = 500
)

var (
	cleanupRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardapio_cleanup_runs_total",
		Help: "Total number of cleanup runs grouped by target and result.",
	}, []string{"target", "result"})
	cleanupDeletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardapio_cleanup_deleted_total",
		Help: "Total number of deleted expired records grouped by target.",
	}, []string{"target"})
	cleanupLastDeleted = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cardapio_cleanup_last_deleted",
		Help: "Number of deleted records during the last cleanup run.",
	}, []string{"target"})
)

// Sweeper удаляет записи, просроченные к моменту before, не более limit за вызов.
// Ему удовлетворяют domain.CartRepository и domain.IdempotencyRepository.
type Sweeper interface {
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}

// Options задает параметры воркера очистки.
type Options struct {
	Logger    *log.Entry
	Interval  time.Duration
	BatchSize int
	// MaxAge сдвигает границу удаления назад: удаляются записи старше now-MaxAge.
	MaxAge time.Duration
}

// Option настраивает Worker.
type Option func(*Options)

// WithLogger задает logger для воркера.
func WithLogger(logger *log.Entry) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithInterval задает интервал между cleanup-циклами.
func WithInterval(interval time.Duration) Option {
	return func(opts *Options) {
		opts.Interval = interval
	}
}

// WithBatchSize задает размер batch для одного удаления.
func WithBatchSize(batchSize int) Option {
	return func(opts *Options) {
		opts.BatchSize = batchSize
	}
}

// WithMaxAge задает возраст, после которого запись считается просроченной.
func WithMaxAge(maxAge time.Duration) Option {
	return func(opts *Options) {
		opts.MaxAge = maxAge
	}
}

// Worker периодически вызывает Sweeper.
type Worker struct {
	target    string
	sweeper   Sweeper
	logger    *log.Entry
	interval  time.Duration
	batchSize int
	maxAge    time.Duration
	now       func() time.Time
}

// NewWorker создает воркер очистки; target используется в логах и метриках ("carts", "idempotency").
func NewWorker(target string, sweeper Sweeper, options ...Option) *Worker {
	opts := Options{
		Interval:  defaultInterval,
		BatchSize: defaultBatchSize,
	}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "cleanup-worker")
	}

	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.MaxAge < 0 {
		opts.MaxAge = 0
	}

	return &Worker{
		target:    target,
		sweeper:   sweeper,
		logger:    logger.WithField("target", target),
		interval:  opts.Interval,
		batchSize: opts.BatchSize,
		maxAge:    opts.MaxAge,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Run запускает периодическую очистку до отмены ctx.
func (w *Worker) Run(ctx context.Context) {
	if w.sweeper == nil {
		w.logger.Warn("cleanup worker is disabled: sweeper is nil")
		return
	}

	w.cleanup(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *Worker) cleanup(ctx context.Context) {
	deleted, err := w.DeleteExpired(ctx, w.now().Add(-w.maxAge))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		cleanupRunsTotal.WithLabelValues(w.target, "error").Inc()
		w.logger.WithError(err).Warn("cleanup run failed")
		return
	}

	cleanupRunsTotal.WithLabelValues(w.target, "ok").Inc()
	cleanupLastDeleted.WithLabelValues(w.target).Set(float64(deleted))
	if deleted > 0 {
		w.logger.WithField("deleted", deleted).Info("cleanup completed")
	}
}

// DeleteExpired удаляет все записи, просроченные к before, порциями batchSize.
func (w *Worker) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	if before.IsZero() {
		before = w.now()
	}

	totalDeleted := 0
	for {
		if err := ctx.Err(); err != nil {
			return totalDeleted, err
		}

		deleted, err := w.sweeper.DeleteExpired(ctx, before, w.batchSize)
		if err != nil {
			return totalDeleted, err
		}

		totalDeleted += deleted
		if deleted > 0 {
			cleanupDeletedTotal.WithLabelValues(w.target).Add(float64(deleted))
		}

		if deleted < w.batchSize {
			break
		}
	}

	return totalDeleted, nil
}
