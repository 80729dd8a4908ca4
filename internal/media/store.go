// Package media хранит загруженные изображения товаров и логотип магазина.
package media

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// MaxUploadSize ограничивает размер одного файла.
const MaxUploadSize = 5 << 20

var (
	// ErrInvalidName: имя файла пустое или содержит путь.
	ErrInvalidName = errors.New("invalid media file name")
	// ErrUnsupportedType: расширение не относится к изображениям.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrTooLarge: файл больше MaxUploadSize.
	ErrTooLarge = errors.New("media file too large")
	// ErrNotFound: файл не найден.
	ErrNotFound = errors.New("media file not found")
)

var allowedExt = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// Store сохраняет файлы в каталоге dir файловой системы fs.
type Store struct {
	fs    afero.Fs
	dir   string
	newID func() string
}

// NewStore создаёт хранилище и каталог dir, если его нет.
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if dir == "" {
		dir = "media"
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &Store{
		fs:    fs,
		dir:   dir,
		newID: func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
	}, nil
}

// Save сохраняет содержимое r под именем "<uuid>_<original>" и возвращает это имя.
func (s *Store) Save(original string, r io.Reader) (string, error) {
	base := sanitize(original)
	if base == "" {
		return "", ErrInvalidName
	}
	if _, ok := allowedExt[strings.ToLower(filepath.Ext(base))]; !ok {
		return "", ErrUnsupportedType
	}

	name := s.newID() + "_" + base
	f, err := s.fs.OpenFile(path.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, MaxUploadSize+1))
	closeErr := f.Close()
	if err == nil && n > MaxUploadSize {
		err = ErrTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(path.Join(s.dir, name))
		return "", err
	}
	return name, nil
}

// Open открывает ранее сохранённый файл. Возвращает также MIME-тип по расширению.
func (s *Store) Open(name string) (afero.File, string, error) {
	if name == "" || name != sanitize(name) {
		return nil, "", ErrInvalidName
	}
	f, err := s.fs.Open(path.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, contentType, nil
}

// Delete удаляет файл; отсутствие файла не ошибка.
func (s *Store) Delete(name string) error {
	if name == "" || name != sanitize(name) {
		return ErrInvalidName
	}
	err := s.fs.Remove(path.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// sanitize оставляет только базовое имя без разделителей путей и пробелов по краям.
func sanitize(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return strings.ReplaceAll(name, " ", "_")
}
