package media

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(afero.NewMemMapFs(), "/media")
	require.NoError(t, err)
	store.newID = func() string { return "abc123" }
	return store
}

func TestSaveAndOpen(t *testing.T) {
	store := newStore(t)

	name, err := store.Save("../../logo da loja.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "abc123_logo_da_loja.png", name)

	f, contentType, err := store.Open(name)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)
}

func TestSaveRejectsBadInput(t *testing.T) {
	store := newStore(t)

	_, err := store.Save("script.sh", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = store.Save("  ", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = store.Save("big.jpg", bytes.NewReader(make([]byte, MaxUploadSize+1)))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, _, err = store.Open("abc123_big.jpg")
	assert.ErrorIs(t, err, ErrNotFound, "oversized upload is removed")
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := newStore(t)

	_, _, err := store.Open("../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidName)
	_, _, err = store.Open("missing.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := newStore(t)

	name, err := store.Save("a.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(name))
	require.NoError(t, store.Delete(name))

	_, _, err = store.Open(name)
	assert.ErrorIs(t, err, ErrNotFound)
}
