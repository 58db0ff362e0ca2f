package lucky

import (
	"context"
	"errors"
	"testing"
	"time"

	"lucky888_backend/internal/config/env"
	"lucky888_backend/internal/game"
	"lucky888_backend/internal/middleware"
	"lucky888_backend/internal/model"
	"lucky888_backend/internal/repository"
	"lucky888_backend/internal/repository/memory_repo"
	"lucky888_backend/internal/repository/stats_repo"
	"lucky888_backend/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMetrics struct {
	rounds     int
	rejections map[string]int
}

func (m *fakeMetrics) RoundResolved(int64, decimal.Decimal) { m.rounds++ }
func (m *fakeMetrics) Rejected(reason string)              { m.rejections[reason]++ }

type fixture struct {
	serv    service.GameService
	repo    repository.TableRepository
	stats   repository.StatsRepository
	metrics *fakeMetrics
}

func newFixture(t *testing.T, yaml string, repo repository.TableRepository, outcomes ...model.Outcome) *fixture {
	t.Helper()
	cfg, err := env.NewGameConfigFromYAML([]byte(yaml))
	require.NoError(t, err)

	f := &fixture{
		repo:    repo,
		stats:   stats_repo.NewStatsRepository(cfg.StatsWindow()),
		metrics: &fakeMetrics{rejections: map[string]int{}},
	}
	f.serv = NewGameService(cfg, repo, f.stats, memory_repo.NewTxManager(), f.metrics, zap.NewNop(),
		WithGenerator(func() game.Generator { return game.NewSequenceGenerator(outcomes...) }))
	return f
}

func newSession(t *testing.T, repo repository.TableRepository, id string, balance int64) context.Context {
	t.Helper()
	require.NoError(t, repo.CreateTable(context.Background(), model.TableState{
		SessionID:    id,
		Balance:      decimal.NewFromInt(balance),
		TargetNumber: "888",
	}))
	return middleware.WithSessionID(context.Background(), id)
}

func TestGameService_Round(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	f := newFixture(t, "game: {}", repo, model.Outcome{6, 5, 1})
	ctx := newSession(t, repo, "s1", 1000)

	view, err := f.serv.PlaceWager(ctx, model.Wager{Category: model.Big, Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, "900", view.Balance.String())
	assert.Equal(t, model.PhaseBetting, view.Phase)

	res, err := f.serv.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "195", res.TotalWinnings.String())
	assert.Equal(t, "1095", res.Balance.String())

	// состояние и история сохранены
	state, err := repo.GetTable(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "1095", state.Balance.String())
	assert.Empty(t, state.Stakes)
	assert.Equal(t, int64(1), state.LastRoundID)

	stored, err := repo.ListHistory(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, model.Outcome{6, 5, 1}, stored[0].Outcome)

	history, err := f.serv.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)

	stats := f.serv.Stats()
	assert.Equal(t, int64(1), stats.TotalRounds)
	assert.InDelta(t, 195, stats.CurrentRTP, 1e-9)
	assert.Equal(t, 1, f.metrics.rounds)
}

func TestGameService_Rejections(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	f := newFixture(t, "game: {allow_all_in: false}", repo, model.Outcome{1, 2, 3})
	ctx := newSession(t, repo, "s1", 50)

	_, err := f.serv.Spin(ctx)
	require.ErrorIs(t, err, game.ErrNoWagerPlaced)

	_, err = f.serv.PlaceWager(ctx, model.Wager{Category: model.Big, Amount: 51})
	require.ErrorIs(t, err, game.ErrInsufficientBalance)

	_, err = f.serv.PlaceWager(ctx, model.Wager{Category: "TRIPLE", Amount: 1})
	require.ErrorIs(t, err, game.ErrInvalidWager)

	_, err = f.serv.PlaceWager(ctx, model.Wager{Category: model.Big, AllIn: true})
	require.ErrorIs(t, err, game.ErrInvalidWager)

	assert.Equal(t, map[string]int{"no_wager": 1, "insufficient_balance": 1, "invalid_wager": 2}, f.metrics.rejections)

	view, err := f.serv.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50", view.Balance.String())
	assert.Zero(t, f.metrics.rounds)
}

func TestGameService_Sessions(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	f := newFixture(t, "game: {}", repo, model.Outcome{1, 2, 3})

	_, err := f.serv.State(context.Background())
	require.ErrorIs(t, err, service.ErrNoSession)

	_, err = f.serv.State(middleware.WithSessionID(context.Background(), "ghost"))
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	a := newSession(t, repo, "a", 100)
	b := newSession(t, repo, "b", 100)

	_, err = f.serv.PlaceWager(a, model.Wager{Category: model.Odd, Amount: 40})
	require.NoError(t, err)

	viewB, err := f.serv.State(b)
	require.NoError(t, err)
	assert.Equal(t, "100", viewB.Balance.String())
	assert.Empty(t, viewB.Stakes)
}

func TestGameService_TargetAndClear(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	f := newFixture(t, "game: {}", repo, model.Outcome{1, 2, 3})
	ctx := newSession(t, repo, "s1", 100)

	view, err := f.serv.SetTargetNumber(ctx, "1a2b3c4")
	require.NoError(t, err)
	assert.Equal(t, "123", view.TargetNumber)

	_, err = f.serv.PlaceWager(ctx, model.Wager{Category: model.Custom, Amount: 10})
	require.NoError(t, err)

	_, err = f.serv.SetTargetNumber(ctx, "456")
	require.ErrorIs(t, err, game.ErrInvalidCustomNumber)
	assert.Equal(t, 1, f.metrics.rejections["invalid_custom_number"])

	refunded, view, err := f.serv.ClearWagers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), refunded)
	assert.Equal(t, "100", view.Balance.String())
	assert.False(t, view.TargetLocked)

	state, err := repo.GetTable(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "123", state.TargetNumber)
	assert.Equal(t, "100", state.Balance.String())
}

func TestGameService_HistoryLimit(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	f := newFixture(t, "game: {history_limit: 2}", repo, model.Outcome{1, 2, 3})
	ctx := newSession(t, repo, "s1", 100)

	for range 3 {
		_, err := f.serv.PlaceWager(ctx, model.Wager{Category: model.Straight, Amount: 1})
		require.NoError(t, err)
		_, err = f.serv.Spin(ctx)
		require.NoError(t, err)
	}

	history, err := f.serv.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(3), history[0].ID)

	history, err = f.serv.History(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

// flakyRepo ломает запись истории
type flakyRepo struct {
	repository.TableRepository
	fail bool
}

func (r *flakyRepo) AppendHistory(ctx context.Context, sessionID string, item model.HistoryItem) error {
	if r.fail {
		return errors.New("disk full")
	}
	return r.TableRepository.AppendHistory(ctx, sessionID, item)
}

func TestGameService_CommitFailure(t *testing.T) {
	repo := &flakyRepo{TableRepository: memory_repo.NewTableRepository()}
	f := newFixture(t, "game: {}", repo, model.Outcome{4, 4, 4})
	ctx := newSession(t, repo, "s1", 100)

	_, err := f.serv.PlaceWager(ctx, model.Wager{Category: model.Leopard, Amount: 10})
	require.NoError(t, err)

	repo.fail = true
	_, err = f.serv.Spin(ctx)
	require.Error(t, err)

	view, err := f.serv.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "90", view.Balance.String())
	assert.Equal(t, int64(10), view.Stakes[model.Leopard])
	assert.Zero(t, f.stats.Stats().TotalRounds)
	assert.Empty(t, f.metrics.rejections)

	state, err := repo.GetTable(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "90", state.Balance.String())
	assert.Zero(t, state.LastRoundID)
}

func TestGameService_RestoresFromStorage(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	ctx := newSession(t, repo, "s1", 100)

	first := newFixture(t, "game: {}", repo, model.Outcome{0, 0, 1})
	_, err := first.serv.PlaceWager(ctx, model.Wager{Category: model.Odd, Amount: 10})
	require.NoError(t, err)
	_, err = first.serv.Spin(ctx)
	require.NoError(t, err)

	// новый процесс с тем же хранилищем
	second := newFixture(t, "game: {}", repo, model.Outcome{0, 0, 2})
	view, err := second.serv.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, "109.5", view.Balance.String())

	_, err = second.serv.PlaceWager(ctx, model.Wager{Category: model.Even, Amount: 10})
	require.NoError(t, err)
	res, err := second.serv.Spin(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.HistoryEntry.ID)

	history, err := second.serv.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestGameService_Settings(t *testing.T) {
	f := newFixture(t, `game: {chips: [5, 25], spin_duration: 1500ms, default_target: "7"}`, memory_repo.NewTableRepository())

	s := f.serv.Settings()
	assert.Equal(t, []int64{5, 25}, s.Chips)
	assert.Equal(t, 1500*time.Millisecond, s.SpinDuration)
	assert.Equal(t, "7", s.DefaultTarget)
	assert.Len(t, f.serv.Odds(), 12)
}

func TestGameService_EvictsIdleTables(t *testing.T) {
	repo := memory_repo.NewTableRepository()
	cfg, err := env.NewGameConfigFromYAML([]byte("game: {table_idle_ttl: 1m}"))
	require.NoError(t, err)

	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewGameService(cfg, repo, stats_repo.NewStatsRepository(cfg.StatsWindow()), memory_repo.NewTxManager(),
		&fakeMetrics{rejections: map[string]int{}}, zap.NewNop(),
		WithClock(func() time.Time { return now }),
	).(*serv)

	ctx1 := newSession(t, repo, "s1", 1000)
	ctx2 := newSession(t, repo, "s2", 1000)

	_, err = s.PlaceWager(ctx1, model.Wager{Category: model.Big, Amount: 10})
	require.NoError(t, err)
	require.Contains(t, s.tables, "s1")

	now = now.Add(2 * time.Minute)
	_, err = s.State(ctx2)
	require.NoError(t, err)
	assert.NotContains(t, s.tables, "s1")
	assert.Contains(t, s.tables, "s2")

	view, err := s.State(ctx1)
	require.NoError(t, err)
	assert.Equal(t, "990", view.Balance.String())
	assert.Equal(t, int64(10), view.Stakes[model.Big])
	assert.Len(t, s.tables, 2)
}

// slowRepo держит загрузку одной сессии, пока тест не отпустит
type slowRepo struct {
	repository.TableRepository
	slowID  string
	entered chan struct{}
	release chan struct{}
}

func (r *slowRepo) GetTable(ctx context.Context, sessionID string) (*model.TableState, error) {
	if sessionID == r.slowID {
		close(r.entered)
		<-r.release
	}
	return r.TableRepository.GetTable(ctx, sessionID)
}

func TestGameService_SlowLoadDoesNotBlockOtherSessions(t *testing.T) {
	repo := &slowRepo{
		TableRepository: memory_repo.NewTableRepository(),
		slowID:          "slow",
		entered:         make(chan struct{}),
		release:         make(chan struct{}),
	}
	f := newFixture(t, "game: {}", repo)
	slowCtx := newSession(t, repo, "slow", 100)
	fastCtx := newSession(t, repo, "fast", 200)

	slowDone := make(chan error, 1)
	go func() {
		_, err := f.serv.State(slowCtx)
		slowDone <- err
	}()
	<-repo.entered

	fastDone := make(chan error, 1)
	go func() {
		_, err := f.serv.State(fastCtx)
		fastDone <- err
	}()

	select {
	case err := <-fastDone:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("fast session waited for slow load")
	}

	close(repo.release)
	require.NoError(t, <-slowDone)
}
