package lucky

import (
	"sync"
	"time"

	"lucky888_backend/internal/config"
	"lucky888_backend/internal/game"
	"lucky888_backend/internal/repository"
	"lucky888_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Metrics interface {
	RoundResolved(staked int64, payout decimal.Decimal)
	Rejected(reason string)
}

type serv struct {
	cfg       config.GameConfig
	tableRepo repository.TableRepository
	statsRepo repository.StatsRepository
	txManager trm.Manager
	metrics   Metrics
	log       *zap.Logger

	newGenerator func() game.Generator
	now          func() time.Time

	mtx       sync.Mutex
	tables    map[string]*cachedTable
	lastSweep time.Time
}

// cachedTable стол в памяти и время последнего обращения к нему
type cachedTable struct {
	table    *game.Table
	lastUsed time.Time
}

type Option func(*serv)

// WithClock часы для вытеснения простаивающих столов
func WithClock(now func() time.Time) Option {
	return func(s *serv) {
		s.now = now
	}
}

// WithGenerator источник исходов для новых столов
func WithGenerator(f func() game.Generator) Option {
	return func(s *serv) {
		s.newGenerator = f
	}
}

// NewGameService Создать сервис стола "888"
func NewGameService(
	cfg config.GameConfig,
	tableRepo repository.TableRepository,
	statsRepo repository.StatsRepository,
	txManager trm.Manager,
	metrics Metrics,
	log *zap.Logger,
	opts ...Option,
) service.GameService {
	s := &serv{
		cfg:       cfg,
		tableRepo: tableRepo,
		statsRepo: statsRepo,
		txManager: txManager,
		metrics:   metrics,
		log:       log,
		newGenerator: func() game.Generator {
			return game.NewRandGenerator()
		},
		now:    time.Now,
		tables: make(map[string]*cachedTable),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
