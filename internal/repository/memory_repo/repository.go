package memory_repo

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"lucky888_backend/internal/model"
	"lucky888_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// repo хранит столы в памяти процесса. Используется при STORAGE=memory и в тестах
type repo struct {
	mtx     sync.RWMutex
	tables  map[string]model.TableState
	history map[string][]model.HistoryItem // от старых к новым
}

func NewTableRepository() repository.TableRepository {
	return &repo{
		tables:  make(map[string]model.TableState),
		history: make(map[string][]model.HistoryItem),
	}
}

func (r *repo) CreateTable(_ context.Context, state model.TableState) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.tables[state.SessionID]; ok {
		return fmt.Errorf("table %s already exists", state.SessionID)
	}
	r.tables[state.SessionID] = copyState(state)
	return nil
}

func (r *repo) GetTable(_ context.Context, sessionID string) (*model.TableState, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state, ok := r.tables[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	res := copyState(state)
	return &res, nil
}

func (r *repo) SaveTable(_ context.Context, state model.TableState) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.tables[state.SessionID]; !ok {
		return repository.ErrNotFound
	}
	r.tables[state.SessionID] = copyState(state)
	return nil
}

func (r *repo) AppendHistory(_ context.Context, sessionID string, item model.HistoryItem) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.tables[sessionID]; !ok {
		return repository.ErrNotFound
	}
	item.MatchedAttributes = slices.Clone(item.MatchedAttributes)
	r.history[sessionID] = append(r.history[sessionID], item)
	return nil
}

func (r *repo) ListHistory(_ context.Context, sessionID string, limit int) ([]model.HistoryItem, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	items := r.history[sessionID]
	n := len(items)
	if limit > 0 && limit < n {
		n = limit
	}

	res := make([]model.HistoryItem, 0, n)
	for i := len(items) - 1; i >= 0 && len(res) < n; i-- {
		item := items[i]
		item.MatchedAttributes = slices.Clone(item.MatchedAttributes)
		res = append(res, item)
	}
	return res, nil
}

func copyState(s model.TableState) model.TableState {
	s.Stakes = maps.Clone(s.Stakes)
	if s.Stakes == nil {
		s.Stakes = make(map[model.BetCategory]int64)
	}
	return s
}

// txManager выполняет функцию без транзакции: все операции repo и так атомарны по отдельности
type txManager struct{}

func NewTxManager() trm.Manager {
	return txManager{}
}

func (txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (txManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
