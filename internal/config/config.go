package config

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	PoolConfig() (*pgxpool.Config, error)
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LoggerConfig interface {
	AppEnv() string
	Level() string
}

// Хранилище столов
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type StorageConfig interface {
	Kind() string
}

type GameConfig interface {
	InitialBalance() int64
	Chips() []int64
	AllowAllIn() bool
	SpinDuration() time.Duration
	HistoryLimit() int
	DefaultTarget() string
	StatsWindow() int
	TableIdleTTL() time.Duration
}
