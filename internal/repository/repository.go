package repository

import (
	"context"
	"errors"

	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("not found")

// TableRepository хранит состояние столов и историю раундов.
// Методы должны работать внутри транзакции из контекста (trm), если она есть
type TableRepository interface {
	CreateTable(ctx context.Context, state model.TableState) error
	GetTable(ctx context.Context, sessionID string) (*model.TableState, error)
	SaveTable(ctx context.Context, state model.TableState) error

	AppendHistory(ctx context.Context, sessionID string, item model.HistoryItem) error
	// ListHistory последние limit записей, от новых к старым
	ListHistory(ctx context.Context, sessionID string, limit int) ([]model.HistoryItem, error)
}

type StatsRepository interface {
	Stats() model.Stats
	UpdateState(staked, payout decimal.Decimal)
}
