package stats_repo

import (
	"sync"

	"lucky888_backend/internal/model"
	"lucky888_backend/internal/repository"

	"github.com/shopspring/decimal"
)

// defaultWindowSize Размер окна для RTP по умолчанию
const defaultWindowSize = 500

// roundResult Результат раунда для окна
type roundResult struct {
	staked decimal.Decimal
	payout decimal.Decimal
}

// Реализация репозитория для сводной статистики по раундам
type statsRepo struct {
	mtx sync.RWMutex

	totalRounds int64
	totalStaked decimal.Decimal
	totalPayout decimal.Decimal

	window     []roundResult
	windowSize int
}

// NewStatsRepository Конструктор. windowSize <= 0 - окно по умолчанию
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &statsRepo{
		window:     make([]roundResult, 0, windowSize),
		windowSize: windowSize,
	}
}

// Stats Получение текущей статистики, копия
func (r *statsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var windowStaked, windowPayout decimal.Decimal
	for _, rr := range r.window {
		windowStaked = windowStaked.Add(rr.staked)
		windowPayout = windowPayout.Add(rr.payout)
	}

	return model.Stats{
		TotalRounds: r.totalRounds,
		TotalStaked: r.totalStaked,
		TotalPayout: r.totalPayout,
		CurrentRTP:  rtp(r.totalStaked, r.totalPayout),
		WindowRTP:   rtp(windowStaked, windowPayout),
		WindowSize:  len(r.window),
	}
}

// UpdateState Обновление статистики после раунда
func (r *statsRepo) UpdateState(staked, payout decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalRounds++
	r.totalStaked = r.totalStaked.Add(staked)
	r.totalPayout = r.totalPayout.Add(payout)

	// Поддерживаем размер окна
	if len(r.window) == r.windowSize {
		r.window = append(r.window[:0], r.window[1:]...)
	}
	r.window = append(r.window, roundResult{staked: staked, payout: payout})
}

// rtp выплаты в процентах от ставок
func rtp(staked, payout decimal.Decimal) float64 {
	if !staked.IsPositive() {
		return 0
	}
	return payout.Div(staked).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
