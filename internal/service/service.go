package service

import (
	"context"
	"errors"

	"lucky888_backend/internal/model"
)

var (
	ErrNoSession       = errors.New("session id not found in context")
	ErrSessionNotFound = errors.New("session not found")
)

// GameService - операции стола текущей сессии. ID сессии берется из контекста
type GameService interface {
	PlaceWager(ctx context.Context, w model.Wager) (*model.TableView, error)
	ClearWagers(ctx context.Context) (refunded int64, view *model.TableView, err error)
	SetTargetNumber(ctx context.Context, raw string) (*model.TableView, error)
	Spin(ctx context.Context) (*model.RoundResult, error)

	State(ctx context.Context) (*model.TableView, error)
	History(ctx context.Context, limit int) ([]model.HistoryItem, error)

	Odds() []model.OddsEntry
	Settings() model.GameSettings
	Stats() model.Stats
}

type SessionService interface {
	Create(ctx context.Context) (*model.SessionData, error)
}
