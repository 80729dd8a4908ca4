package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"

	envPrefix = "CARDAPIO"
)

// Config описывает настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	// KafkaBrokers пустой: события outbox только логируются.
	KafkaBrokers       []string
	KafkaTopic         string
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	// OutboxMaxPending: порог backlog, после которого /healthz показывает degraded.
	OutboxMaxPending int

	CartTTL          time.Duration
	CleanupInterval  time.Duration
	CleanupBatchSize int
	IdempotencyTTL   time.Duration

	AdminUsername        string
	AdminPassword        string
	AdminPasswordHash    string
	JWTSecret            string
	JWTTTL               time.Duration
	RequireAdminLogin    bool
	AdminRefreshInterval time.Duration

	MenuFile string
	MediaDir string
	Timezone string

	SubmitRatePerSecond float64
	SubmitBurst         int
	SecureCookie        bool

	StoreName string
	// Signature дописывается последней строкой сообщения о заказе.
	Signature string
}

// DefaultConfig возвращает настройки для локального запуска.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		GRPCAddr:    ":50051",
		MetricsAddr: ":9090",

		StorageDriver:       StorageDriverMemory,
		PostgresAutoMigrate: true,

		OutboxPollInterval: time.Second,
		OutboxBatchSize:    100,
		OutboxMaxAttempts:  3,
		OutboxRetryDelay:   100 * time.Millisecond,
		OutboxMaxPending:   1000,

		CartTTL:          24 * time.Hour,
		CleanupInterval:  10 * time.Minute,
		CleanupBatchSize: 500,
		IdempotencyTTL:   24 * time.Hour,

		AdminUsername:        "admin",
		AdminPassword:        "admin123",
		JWTSecret:            "change-me-in-production",
		JWTTTL:               12 * time.Hour,
		RequireAdminLogin:    true,
		AdminRefreshInterval: 30 * time.Second,

		MediaDir: "uploads",
		Timezone: "America/Sao_Paulo",

		SubmitRatePerSecond: 5,
		SubmitBurst:         10,

		StoreName: "Cardápio",
	}
}

// LoadConfig накладывает на DefaultConfig переменные окружения CARDAPIO_*
// и, если задан configFile, значения из файла (yaml, json, toml, env).
func LoadConfig(configFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	cfg := Config{
		HTTPAddr:    v.GetString("http_addr"),
		GRPCAddr:    v.GetString("grpc_addr"),
		MetricsAddr: v.GetString("metrics_addr"),

		StorageDriver:       strings.ToLower(strings.TrimSpace(v.GetString("storage_driver"))),
		PostgresDSN:         strings.TrimSpace(v.GetString("postgres_dsn")),
		PostgresAutoMigrate: v.GetBool("postgres_auto_migrate"),

		KafkaBrokers:       splitList(v.GetString("kafka_brokers")),
		KafkaTopic:         strings.TrimSpace(v.GetString("kafka_topic")),
		OutboxPollInterval: v.GetDuration("outbox_poll_interval"),
		OutboxBatchSize:    v.GetInt("outbox_batch_size"),
		OutboxMaxAttempts:  v.GetInt("outbox_max_attempts"),
		OutboxRetryDelay:   v.GetDuration("outbox_retry_delay"),
		OutboxMaxPending:   v.GetInt("outbox_max_pending"),

		CartTTL:          v.GetDuration("cart_ttl"),
		CleanupInterval:  v.GetDuration("cleanup_interval"),
		CleanupBatchSize: v.GetInt("cleanup_batch_size"),
		IdempotencyTTL:   v.GetDuration("idempotency_ttl"),

		AdminUsername:        strings.TrimSpace(v.GetString("admin_username")),
		AdminPassword:        v.GetString("admin_password"),
		AdminPasswordHash:    strings.TrimSpace(v.GetString("admin_password_hash")),
		JWTSecret:            v.GetString("jwt_secret"),
		JWTTTL:               v.GetDuration("jwt_ttl"),
		RequireAdminLogin:    v.GetBool("require_admin_login"),
		AdminRefreshInterval: v.GetDuration("admin_refresh_interval"),

		MenuFile: strings.TrimSpace(v.GetString("menu_file")),
		MediaDir: strings.TrimSpace(v.GetString("media_dir")),
		Timezone: strings.TrimSpace(v.GetString("timezone")),

		SubmitRatePerSecond: v.GetFloat64("submit_rate_per_second"),
		SubmitBurst:         v.GetInt("submit_burst"),
		SecureCookie:        v.GetBool("secure_cookie"),

		StoreName: v.GetString("store_name"),
		Signature: v.GetString("signature"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("http_addr", d.HTTPAddr)
	v.SetDefault("grpc_addr", d.GRPCAddr)
	v.SetDefault("metrics_addr", d.MetricsAddr)
	v.SetDefault("storage_driver", d.StorageDriver)
	v.SetDefault("postgres_dsn", d.PostgresDSN)
	v.SetDefault("postgres_auto_migrate", d.PostgresAutoMigrate)
	v.SetDefault("kafka_brokers", strings.Join(d.KafkaBrokers, ","))
	v.SetDefault("kafka_topic", d.KafkaTopic)
	v.SetDefault("outbox_poll_interval", d.OutboxPollInterval)
	v.SetDefault("outbox_batch_size", d.OutboxBatchSize)
	v.SetDefault("outbox_max_attempts", d.OutboxMaxAttempts)
	v.SetDefault("outbox_retry_delay", d.OutboxRetryDelay)
	v.SetDefault("outbox_max_pending", d.OutboxMaxPending)
	v.SetDefault("cart_ttl", d.CartTTL)
	v.SetDefault("cleanup_interval", d.CleanupInterval)
	v.SetDefault("cleanup_batch_size", d.CleanupBatchSize)
	v.SetDefault("idempotency_ttl", d.IdempotencyTTL)
	v.SetDefault("admin_username", d.AdminUsername)
	v.SetDefault("admin_password", d.AdminPassword)
	v.SetDefault("admin_password_hash", d.AdminPasswordHash)
	v.SetDefault("jwt_secret", d.JWTSecret)
	v.SetDefault("jwt_ttl", d.JWTTTL)
	v.SetDefault("require_admin_login", d.RequireAdminLogin)
	v.SetDefault("admin_refresh_interval", d.AdminRefreshInterval)
	v.SetDefault("menu_file", d.MenuFile)
	v.SetDefault("media_dir", d.MediaDir)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("submit_rate_per_second", d.SubmitRatePerSecond)
	v.SetDefault("submit_burst", d.SubmitBurst)
	v.SetDefault("secure_cookie", d.SecureCookie)
	v.SetDefault("store_name", d.StoreName)
	v.SetDefault("signature", d.Signature)
}

// Validate проверяет согласованность настроек.
func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, errors.New("postgres dsn is required for postgres storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver %q", c.StorageDriver))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("http addr is required"))
	}
	if c.RequireAdminLogin && c.JWTSecret == "" {
		errs = append(errs, errors.New("jwt secret is required when admin login is enabled"))
	}
	if c.AdminUsername == "" {
		errs = append(errs, errors.New("admin username is required"))
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("admin password or password hash is required"))
	}
	if c.SubmitRatePerSecond < 0 || c.SubmitBurst < 0 {
		errs = append(errs, errors.New("submit rate limit must be non-negative"))
	}
	return errors.Join(errs...)
}

// Location возвращает часовой пояс отчётов; неизвестная зона заменяется на UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
