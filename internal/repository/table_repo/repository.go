package table_repo

import (
	"context"
	"errors"

	"lucky888_backend/internal/model"
	"lucky888_backend/internal/repository"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewTableRepository(dbc *pgxpool.Pool) repository.TableRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// conn транзакция из контекста, если она открыта, иначе пул
func (r *repo) conn(ctx context.Context) trmpgx.Tr {
	return r.getter.DefaultTrOrDB(ctx, r.dbc)
}

// CreateTable - создает запись стола новой сессии
func (r *repo) CreateTable(ctx context.Context, state model.TableState) error {
	query, err := insertTableQuery(state)
	if err != nil {
		return err
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// GetTable - состояние стола по ID сессии
func (r *repo) GetTable(ctx context.Context, sessionID string) (*model.TableState, error) {
	sqlStr, args, err := selectTableQuery(sessionID).ToSql()
	if err != nil {
		return nil, err
	}

	var (
		state   model.TableState
		balance string
		stakes  string
	)
	err = r.conn(ctx).QueryRow(ctx, sqlStr, args...).
		Scan(&state.SessionID, &balance, &stakes, &state.TargetNumber, &state.LastRoundID, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if err := decodeState(&state, balance, stakes); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveTable - перезаписывает состояние стола
func (r *repo) SaveTable(ctx context.Context, state model.TableState) error {
	query, err := updateTableQuery(state)
	if err != nil {
		return err
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AppendHistory - добавляет запись о раунде
func (r *repo) AppendHistory(ctx context.Context, sessionID string, item model.HistoryItem) error {
	sqlStr, args, err := insertHistoryQuery(sessionID, item).ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn(ctx).Exec(ctx, sqlStr, args...)
	return err
}

// ListHistory - последние limit раундов сессии, от новых к старым. limit <= 0 - все
func (r *repo) ListHistory(ctx context.Context, sessionID string, limit int) ([]model.HistoryItem, error) {
	sqlStr, args, err := listHistoryQuery(sessionID, limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []model.HistoryItem
	for rows.Next() {
		var (
			item     model.HistoryItem
			outcome  string
			pattern  string
			winnings string
		)
		err = rows.Scan(&item.ID, &outcome, &pattern, &item.TotalStaked,
			&winnings, &item.IsCustomWin, &item.MatchedAttributes, &item.Timestamp)
		if err != nil {
			return nil, err
		}

		if err := decodeHistory(&item, outcome, pattern, winnings); err != nil {
			return nil, err
		}
		res = append(res, item)
	}

	return res, rows.Err()
}
