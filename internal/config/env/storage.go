package env

import (
	"fmt"
	"os"
	"strings"

	"lucky888_backend/internal/config"
)

const storageEnvName = "STORAGE"

type storageConfig struct {
	kind string
}

func NewStorageConfig() (config.StorageConfig, error) {
	kind := strings.ToLower(os.Getenv(storageEnvName))
	switch kind {
	case "":
		kind = config.StorageMemory
	case config.StorageMemory, config.StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage %q", kind)
	}

	return &storageConfig{kind: kind}, nil
}

func (cfg *storageConfig) Kind() string {
	return cfg.kind
}
