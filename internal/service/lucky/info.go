package lucky

import (
	"context"

	"lucky888_backend/internal/game"
	"lucky888_backend/internal/model"
)

func (s *serv) State(ctx context.Context) (*model.TableView, error) {
	t, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	view := t.View()
	return &view, nil
}

// History последние раунды, от новых к старым. limit ограничен history_limit
func (s *serv) History(ctx context.Context, limit int) ([]model.HistoryItem, error) {
	t, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > s.cfg.HistoryLimit() {
		limit = s.cfg.HistoryLimit()
	}
	return t.History(limit), nil
}

func (s *serv) Odds() []model.OddsEntry {
	return game.OddsTable()
}

func (s *serv) Settings() model.GameSettings {
	return model.GameSettings{
		Chips:         s.cfg.Chips(),
		AllowAllIn:    s.cfg.AllowAllIn(),
		SpinDuration:  s.cfg.SpinDuration(),
		HistoryLimit:  s.cfg.HistoryLimit(),
		DefaultTarget: game.SanitizeTarget(s.cfg.DefaultTarget()),
	}
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.Stats()
}
