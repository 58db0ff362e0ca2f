package env

import (
	"os"

	"lucky888_backend/internal/config"
)

const (
	appEnvEnvName   = "APP_ENV"
	logLevelEnvName = "LOG_LEVEL"
)

type loggerConfig struct {
	appEnv string
	level  string
}

func NewLoggerConfig() config.LoggerConfig {
	return &loggerConfig{
		appEnv: os.Getenv(appEnvEnvName),
		level:  os.Getenv(logLevelEnvName),
	}
}

func (cfg *loggerConfig) AppEnv() string {
	return cfg.appEnv
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}
