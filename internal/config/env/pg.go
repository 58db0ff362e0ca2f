package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"lucky888_backend/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgDSNEnvName            = "PG_DSN"
	pgMaxConnsEnvName       = "PG_MAX_CONNS"
	pgConnectTimeoutEnvName = "PG_CONNECT_TIMEOUT"

	defaultPGConnectTimeout = 5 * time.Second
)

type pgConfig struct {
	dsn            string
	maxConns       int32
	connectTimeout time.Duration
}

// NewPGConfig PG_DSN обязателен и разбирается сразу, чтобы опечатка в строке
// подключения всплыла при старте, а не при первом запросе
func NewPGConfig() (config.PGConfig, error) {
	cfg := &pgConfig{
		dsn:            os.Getenv(pgDSNEnvName),
		connectTimeout: defaultPGConnectTimeout,
	}
	if len(cfg.dsn) == 0 {
		return nil, errors.New("pg dsn not found")
	}
	if _, err := pgxpool.ParseConfig(cfg.dsn); err != nil {
		return nil, fmt.Errorf("invalid pg dsn: %w", err)
	}

	if raw := os.Getenv(pgMaxConnsEnvName); len(raw) > 0 {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", pgMaxConnsEnvName, raw)
		}
		cfg.maxConns = int32(n)
	}

	if raw := os.Getenv(pgConnectTimeoutEnvName); len(raw) > 0 {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid %s: %q", pgConnectTimeoutEnvName, raw)
		}
		cfg.connectTimeout = d
	}

	return cfg, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

// PoolConfig настройки пула: DSN плюс переопределения из окружения.
// MaxConns 0 - значение pgxpool по умолчанию
func (cfg *pgConfig) PoolConfig() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.dsn)
	if err != nil {
		return nil, err
	}
	if cfg.maxConns > 0 {
		poolCfg.MaxConns = cfg.maxConns
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.connectTimeout
	return poolCfg, nil
}
