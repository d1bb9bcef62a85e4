package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

var (
	dbConfig    *DBConfig
	dbConfigErr error
	dbOnce      sync.Once
)

// LoadDBConfig reads DB_* variables. Pool sizes default larger in production.
func LoadDBConfig() (*DBConfig, error) {
	dbOnce.Do(func() {
		dbConfig, dbConfigErr = parseDBConfig(os.Getenv, LoadAppConfig().IsProduction())
	})
	return dbConfig, dbConfigErr
}

func parseDBConfig(getenv func(string) string, production bool) (*DBConfig, error) {
	or := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &DBConfig{
		Host:            or("DB_HOST", "localhost"),
		Port:            or("DB_PORT", "5432"),
		User:            getenv("DB_USER"),
		Password:        getenv("DB_PASSWORD"),
		Name:            getenv("DB_NAME"),
		SSLMode:         or("DB_SSLMODE", "disable"),
		TimeZone:        or("DB_TIMEZONE", "Asia/Seoul"),
		MaxIdleConns:    5,
		MaxOpenConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
	}
	if production {
		cfg.MaxIdleConns, cfg.MaxOpenConns, cfg.ConnMaxLifetime = 20, 200, time.Hour
	}
	if cfg.User == "" || cfg.Name == "" {
		return nil, fmt.Errorf("DB_USER and DB_NAME are required")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("DB_PORT %q: %w", cfg.Port, err)
	}

	for _, p := range []struct {
		key string
		dst *int
	}{
		{"DB_MAX_IDLE_CONNS", &cfg.MaxIdleConns},
		{"DB_MAX_OPEN_CONNS", &cfg.MaxOpenConns},
	} {
		raw := strings.TrimSpace(getenv(p.key))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", p.key, raw)
		}
		*p.dst = n
	}
	if raw := strings.TrimSpace(getenv("DB_CONN_MAX_LIFETIME")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME %q: %w", raw, err)
		}
		cfg.ConnMaxLifetime = d
	}
	return cfg, nil
}

// DSN renders the keyword/value connection string understood by pgx.
func (c *DBConfig) DSN() string {
	pairs := []struct{ k, v string }{
		{"host", c.Host},
		{"user", c.User},
		{"password", c.Password},
		{"dbname", c.Name},
		{"port", c.Port},
		{"sslmode", c.SSLMode},
		{"TimeZone", c.TimeZone},
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.k+"="+quoteDSNValue(p.v))
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
