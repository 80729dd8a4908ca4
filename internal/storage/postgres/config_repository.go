package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

type configRepository struct {
	db *sql.DB
}

// NewConfigRepository создаёт PostgreSQL-реализацию ConfigRepository (строка id=1).
func NewConfigRepository(store *Store) domain.ConfigRepository {
	return &configRepository{db: store.DB()}
}

func (r *configRepository) Get(ctx context.Context) (domain.StoreConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var (
		cfg   domain.StoreConfig
		theme string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT open, contact_number, theme, logo_ref, updated_at
		FROM store_config WHERE id = 1
	`).Scan(&cfg.Open, &cfg.ContactNumber, &theme, &cfg.LogoRef, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultStoreConfig(), nil
		}
		return domain.StoreConfig{}, storageErr("select store config", err)
	}
	cfg.Theme = domain.Theme(theme)
	return cfg, nil
}

func (r *configRepository) Save(ctx context.Context, cfg domain.StoreConfig) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if cfg.UpdatedAt.IsZero() {
		cfg.UpdatedAt = time.Now().UTC()
	}
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO store_config (id, open, contact_number, theme, logo_ref, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET open = EXCLUDED.open,
		    contact_number = EXCLUDED.contact_number,
		    theme = EXCLUDED.theme,
		    logo_ref = EXCLUDED.logo_ref,
		    updated_at = EXCLUDED.updated_at
	`, cfg.Open, cfg.ContactNumber, string(cfg.Theme), cfg.LogoRef, cfg.UpdatedAt); err != nil {
		return storageErr("save store config", err)
	}
	return nil
}

// Patch блокирует строку id=1 на время транзакции: параллельные патчи
// выполняются по очереди и видят результат друг друга.
func (r *configRepository) Patch(ctx context.Context, patch domain.StoreConfigPatch) (before, after domain.StoreConfig, err error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if patch.UpdatedAt.IsZero() {
		patch.UpdatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return before, after, storageErr("begin store config patch", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `INSERT INTO store_config (id) VALUES (1) ON CONFLICT (id) DO NOTHING`); err != nil {
		return before, after, storageErr("seed store config", err)
	}

	var theme string
	if err = tx.QueryRowContext(ctx, `
		SELECT open, contact_number, theme, logo_ref, updated_at
		FROM store_config WHERE id = 1
		FOR UPDATE
	`).Scan(&before.Open, &before.ContactNumber, &theme, &before.LogoRef, &before.UpdatedAt); err != nil {
		return before, after, storageErr("lock store config", err)
	}
	before.Theme = domain.Theme(theme)

	after = patch.Apply(before)
	if _, err = tx.ExecContext(ctx, `
		UPDATE store_config
		SET open = $1, contact_number = $2, theme = $3, logo_ref = $4, updated_at = $5
		WHERE id = 1
	`, after.Open, after.ContactNumber, string(after.Theme), after.LogoRef, after.UpdatedAt); err != nil {
		return before, after, storageErr("patch store config", err)
	}
	if err = tx.Commit(); err != nil {
		return before, after, storageErr("commit store config patch", err)
	}
	return before, after, nil
}

var _ domain.ConfigRepository = (*configRepository)(nil)
