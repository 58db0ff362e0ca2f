package lucky

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lucky888_backend/internal/game"
	"lucky888_backend/internal/middleware"
	"lucky888_backend/internal/model"
	"lucky888_backend/internal/repository"
	"lucky888_backend/internal/service"

	"go.uber.org/zap"
)

// table стол сессии из контекста. При первом обращении поднимается из хранилища.
// Загрузка идет без общей блокировки, чтобы медленная сессия не тормозила остальные
func (s *serv) table(ctx context.Context) (*game.Table, error) {
	sessionID, ok := middleware.SessionIDFromContext(ctx)
	if !ok {
		return nil, service.ErrNoSession
	}

	if t, ok := s.cached(sessionID); ok {
		return t, nil
	}

	loaded, err := s.loadTable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	now := s.now()
	// пока грузили, стол мог поднять параллельный запрос
	if e, ok := s.tables[sessionID]; ok {
		e.lastUsed = now
		return e.table, nil
	}
	s.sweep(now)
	s.tables[sessionID] = &cachedTable{table: loaded, lastUsed: now}
	return loaded, nil
}

func (s *serv) cached(sessionID string) (*game.Table, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	e, ok := s.tables[sessionID]
	if !ok {
		return nil, false
	}
	e.lastUsed = s.now()
	return e.table, true
}

func (s *serv) loadTable(ctx context.Context, sessionID string) (*game.Table, error) {
	state, err := s.tableRepo.GetTable(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, service.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load table: %w", err)
	}

	history, err := s.tableRepo.ListHistory(ctx, sessionID, s.cfg.HistoryLimit())
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	return game.RestoreTable(*state, history, s.newGenerator(), game.WithCommitter(s.committer(sessionID))), nil
}

// sweep выгружает столы, к которым не обращались дольше TableIdleTTL.
// Состояние уже в хранилище, при следующем запросе стол поднимется заново.
// Вызывается под s.mtx не чаще раза в TableIdleTTL
func (s *serv) sweep(now time.Time) {
	ttl := s.cfg.TableIdleTTL()
	if now.Sub(s.lastSweep) < ttl {
		return
	}
	s.lastSweep = now

	for id, e := range s.tables {
		if now.Sub(e.lastUsed) > ttl && !e.table.Resolving() {
			delete(s.tables, id)
		}
	}
}

// committer пишет состояние стола и запись истории в одной транзакции
func (s *serv) committer(sessionID string) game.Committer {
	return game.CommitFunc(func(ctx context.Context, state model.TableState, round *model.HistoryItem) error {
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			if round != nil {
				if err := s.tableRepo.AppendHistory(txCtx, sessionID, *round); err != nil {
					return fmt.Errorf("append history: %w", err)
				}
			}
			if err := s.tableRepo.SaveTable(txCtx, state); err != nil {
				return fmt.Errorf("save table: %w", err)
			}
			return nil
		})
		if err != nil {
			s.log.Error("commit table state", zap.String("session_id", sessionID), zap.Error(err))
		}
		return err
	})
}

// rejectReason причина отказа для метрик. Пустая строка - ошибка не игровая
func rejectReason(err error) string {
	switch {
	case errors.Is(err, game.ErrRoundInProgress):
		return "round_in_progress"
	case errors.Is(err, game.ErrNoWagerPlaced):
		return "no_wager"
	case errors.Is(err, game.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, game.ErrInvalidCustomNumber):
		return "invalid_custom_number"
	case errors.Is(err, game.ErrInvalidWager):
		return "invalid_wager"
	}
	return ""
}

// reject считает и логирует отказ. Возвращает err без изменений
func (s *serv) reject(ctx context.Context, op string, err error) error {
	sessionID, _ := middleware.SessionIDFromContext(ctx)
	if reason := rejectReason(err); reason != "" {
		s.metrics.Rejected(reason)
		s.log.Debug("operation rejected",
			zap.String("op", op),
			zap.String("session_id", sessionID),
			zap.String("reason", reason),
			zap.Error(err),
		)
	}
	return err
}
