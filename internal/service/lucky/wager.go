package lucky

import (
	"context"

	"lucky888_backend/internal/game"
	"lucky888_backend/internal/model"
)

// PlaceWager ставка на категорию. Сумма сразу списывается с баланса
func (s *serv) PlaceWager(ctx context.Context, w model.Wager) (*model.TableView, error) {
	if w.AllIn && !s.cfg.AllowAllIn() {
		return nil, s.reject(ctx, "place_wager", game.ErrInvalidWager)
	}

	t, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	if err := t.PlaceWager(ctx, w); err != nil {
		return nil, s.reject(ctx, "place_wager", err)
	}

	view := t.View()
	return &view, nil
}

// ClearWagers снимает все ставки текущего раунда с возвратом на баланс
func (s *serv) ClearWagers(ctx context.Context) (int64, *model.TableView, error) {
	t, err := s.table(ctx)
	if err != nil {
		return 0, nil, err
	}

	refunded, err := t.ClearAll(ctx)
	if err != nil {
		return 0, nil, s.reject(ctx, "clear_wagers", err)
	}

	view := t.View()
	return refunded, &view, nil
}

// SetTargetNumber загаданное число для CUSTOM
func (s *serv) SetTargetNumber(ctx context.Context, raw string) (*model.TableView, error) {
	t, err := s.table(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := t.SetTargetNumber(ctx, raw); err != nil {
		return nil, s.reject(ctx, "set_target", err)
	}

	view := t.View()
	return &view, nil
}
