package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

func openConfigRepositoryForIntegrationTest(t *testing.T) domain.ConfigRepository {
	t.Helper()

	store := openPostgresStoreForIntegrationTest(t)
	repo := NewConfigRepository(store)
	require.NoError(t, repo.Save(context.Background(), domain.DefaultStoreConfig()))
	return repo
}

func TestConfigRepository_PostgresOverwrite(t *testing.T) {
	repo := openConfigRepositoryForIntegrationTest(t)
	ctx := context.Background()

	cfg := domain.StoreConfig{Open: false, ContactNumber: "5511988887777", Theme: domain.ThemeDark, LogoRef: "abc_logo.png"}
	require.NoError(t, repo.Save(ctx, cfg))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.False(t, got.Open)
	require.Equal(t, domain.ThemeDark, got.Theme)
	require.Equal(t, "abc_logo.png", got.LogoRef)

	cfg.Open = true
	cfg.UpdatedAt = time.Time{}
	require.NoError(t, repo.Save(ctx, cfg))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.True(t, got.Open)
}

func TestConfigRepository_PostgresPatchKeepsOtherFields(t *testing.T) {
	repo := openConfigRepositoryForIntegrationTest(t)
	ctx := context.Background()
	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	contact := "5511988887777"
	before, after, err := repo.Patch(ctx, domain.StoreConfigPatch{ContactNumber: &contact, UpdatedAt: at})
	require.NoError(t, err)
	require.Empty(t, before.ContactNumber)
	require.Equal(t, contact, after.ContactNumber)
	require.True(t, after.Open)

	closed := false
	before, after, err = repo.Patch(ctx, domain.StoreConfigPatch{Open: &closed, UpdatedAt: at.Add(time.Minute)})
	require.NoError(t, err)
	require.True(t, before.Open)
	require.False(t, after.Open)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, contact, got.ContactNumber)
	require.False(t, got.Open)
	require.Equal(t, domain.ThemeLight, got.Theme)
	require.True(t, got.UpdatedAt.Equal(at.Add(time.Minute)))
}

func TestConfigRepository_PostgresConcurrentPatchesOfDifferentFields(t *testing.T) {
	repo := openConfigRepositoryForIntegrationTest(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			theme := domain.ThemeDark
			_, _, err := repo.Patch(ctx, domain.StoreConfigPatch{Theme: &theme})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			logo := fmt.Sprintf("logo-%d.png", i)
			_, _, err := repo.Patch(ctx, domain.StoreConfigPatch{LogoRef: &logo})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.ThemeDark, got.Theme)
	require.NotEmpty(t, got.LogoRef)
	require.True(t, got.Open)
}
