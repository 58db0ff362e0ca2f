package env

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"lucky888_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigEnvName = "GAME_CONFIG"
	defaultGameConfig = "config.yaml"
)

type gameYAML struct {
	Game struct {
		InitialBalance *int64         `yaml:"initial_balance"`
		Chips          []int64        `yaml:"chips"`
		AllowAllIn     *bool          `yaml:"allow_all_in"`
		SpinDuration   *time.Duration `yaml:"spin_duration"`
		HistoryLimit   *int           `yaml:"history_limit"`
		DefaultTarget  *string        `yaml:"default_target"`
		StatsWindow    *int           `yaml:"stats_window"`
		TableIdleTTL   *time.Duration `yaml:"table_idle_ttl"`
	} `yaml:"game"`
}

type gameConfig struct {
	initialBalance int64
	chips          []int64
	allowAllIn     bool
	spinDuration   time.Duration
	historyLimit   int
	defaultTarget  string
	statsWindow    int
	tableIdleTTL   time.Duration
}

func defaultGameSettings() *gameConfig {
	return &gameConfig{
		initialBalance: 10000,
		chips:          []int64{1, 10, 100, 1000},
		allowAllIn:     true,
		spinDuration:   2 * time.Second,
		historyLimit:   20,
		defaultTarget:  "888",
		statsWindow:    500,
		tableIdleTTL:   30 * time.Minute,
	}
}

// NewGameConfig читает YAML из GAME_CONFIG (по умолчанию config.yaml).
// Если файла нет, используются значения по умолчанию
func NewGameConfig() (config.GameConfig, error) {
	path := os.Getenv(gameConfigEnvName)
	if len(path) == 0 {
		path = defaultGameConfig
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultGameSettings(), nil
		}
		return nil, fmt.Errorf("read game config: %w", err)
	}

	return NewGameConfigFromYAML(data)
}

// NewGameConfigFromYAML незаданные поля берутся по умолчанию
func NewGameConfigFromYAML(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := defaultGameSettings()
	g := raw.Game
	if g.InitialBalance != nil {
		cfg.initialBalance = *g.InitialBalance
	}
	if g.Chips != nil {
		cfg.chips = g.Chips
	}
	if g.AllowAllIn != nil {
		cfg.allowAllIn = *g.AllowAllIn
	}
	if g.SpinDuration != nil {
		cfg.spinDuration = *g.SpinDuration
	}
	if g.HistoryLimit != nil {
		cfg.historyLimit = *g.HistoryLimit
	}
	if g.DefaultTarget != nil {
		cfg.defaultTarget = *g.DefaultTarget
	}
	if g.StatsWindow != nil {
		cfg.statsWindow = *g.StatsWindow
	}
	if g.TableIdleTTL != nil {
		cfg.tableIdleTTL = *g.TableIdleTTL
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *gameConfig) validate() error {
	if cfg.initialBalance < 0 {
		return errors.New("initial_balance must not be negative")
	}
	if len(cfg.chips) == 0 {
		return errors.New("chips must not be empty")
	}
	for _, c := range cfg.chips {
		if c <= 0 {
			return fmt.Errorf("chip %d must be positive", c)
		}
	}
	if cfg.spinDuration < 0 {
		return errors.New("spin_duration must not be negative")
	}
	if cfg.historyLimit <= 0 {
		return errors.New("history_limit must be positive")
	}
	if cfg.statsWindow <= 0 {
		return errors.New("stats_window must be positive")
	}
	if cfg.tableIdleTTL <= 0 {
		return errors.New("table_idle_ttl must be positive")
	}
	if len(cfg.defaultTarget) > 3 {
		return errors.New("default_target must have at most 3 digits")
	}
	for _, r := range cfg.defaultTarget {
		if r < '0' || r > '9' {
			return errors.New("default_target must contain only digits")
		}
	}
	return nil
}

func (cfg *gameConfig) InitialBalance() int64 {
	return cfg.initialBalance
}

func (cfg *gameConfig) Chips() []int64 {
	return slices.Clone(cfg.chips)
}

func (cfg *gameConfig) AllowAllIn() bool {
	return cfg.allowAllIn
}

func (cfg *gameConfig) SpinDuration() time.Duration {
	return cfg.spinDuration
}

func (cfg *gameConfig) HistoryLimit() int {
	return cfg.historyLimit
}

func (cfg *gameConfig) DefaultTarget() string {
	return cfg.defaultTarget
}

func (cfg *gameConfig) StatsWindow() int {
	return cfg.statsWindow
}

// TableIdleTTL через сколько простоя стол выгружается из памяти
func (cfg *gameConfig) TableIdleTTL() time.Duration {
	return cfg.tableIdleTTL
}
