package domain

import (
	"strings"
	"time"
	"unicode"
)

// Theme: тема оформления витрины.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme принимает "light"/"dark" без учёта регистра.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", ErrInvalidTheme
	}
}

// StoreConfig: единственная запись с настройками магазина.
type StoreConfig struct {
	Open          bool
	ContactNumber string
	Theme         Theme
	LogoRef       string
	UpdatedAt     time.Time
}

// StoreConfigPatch меняет только заданные поля. Nil означает "не трогать".
type StoreConfigPatch struct {
	Open          *bool
	ContactNumber *string
	Theme         *Theme
	LogoRef       *string
	UpdatedAt     time.Time
}

// Apply возвращает cfg с применёнными полями патча.
func (p StoreConfigPatch) Apply(cfg StoreConfig) StoreConfig {
	if p.Open != nil {
		cfg.Open = *p.Open
	}
	if p.ContactNumber != nil {
		cfg.ContactNumber = *p.ContactNumber
	}
	if p.Theme != nil {
		cfg.Theme = *p.Theme
	}
	if p.LogoRef != nil {
		cfg.LogoRef = *p.LogoRef
	}
	if !p.UpdatedAt.IsZero() {
		cfg.UpdatedAt = p.UpdatedAt
	}
	return cfg
}

// DefaultStoreConfig: настройки первого запуска: магазин открыт, светлая тема.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{Open: true, Theme: ThemeLight}
}

// NormalizeContact оставляет в номере только цифры.
func NormalizeContact(raw string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return "", ErrContactRequired
	}
	return digits, nil
}
