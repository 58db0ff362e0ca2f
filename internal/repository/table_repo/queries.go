package table_repo

import (
	"encoding/json"
	"fmt"

	"lucky888_backend/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

const (
	tableSessions  = "game_sessions"
	colSessionID   = "session_id"
	colBalance     = "balance"
	colStakes      = "stakes"
	colTarget      = "target_number"
	colLastRoundID = "last_round_id"
	colUpdatedAt   = "updated_at"

	tableHistory     = "round_history"
	colRoundID       = "round_id"
	colOutcome       = "outcome"
	colPattern       = "pattern"
	colTotalStaked   = "total_staked"
	colTotalWinnings = "total_winnings"
	colIsCustomWin   = "is_custom_win"
	colAttributes    = "matched_attributes"
	colCreatedAt     = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// numeric и jsonb передаются строками, чтобы не терять точность decimal
func numeric(d decimal.Decimal) sq.Sqlizer {
	return sq.Expr("?::numeric", d.String())
}

func jsonb(raw string) sq.Sqlizer {
	return sq.Expr("?::jsonb", raw)
}

func encodeStakes(stakes map[model.BetCategory]int64) (string, error) {
	if stakes == nil {
		stakes = map[model.BetCategory]int64{}
	}
	b, err := json.Marshal(stakes)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func insertTableQuery(state model.TableState) (sq.InsertBuilder, error) {
	stakes, err := encodeStakes(state.Stakes)
	if err != nil {
		return sq.InsertBuilder{}, err
	}

	return psql.Insert(tableSessions).
		Columns(colSessionID, colBalance, colStakes, colTarget, colLastRoundID, colUpdatedAt).
		Values(
			state.SessionID,
			numeric(state.Balance),
			jsonb(stakes),
			state.TargetNumber,
			state.LastRoundID,
			state.UpdatedAt,
		), nil
}

func selectTableQuery(sessionID string) sq.SelectBuilder {
	return psql.Select(colSessionID, colBalance+"::text", colStakes+"::text", colTarget, colLastRoundID, colUpdatedAt).
		From(tableSessions).
		Where(sq.Eq{colSessionID: sessionID})
}

func updateTableQuery(state model.TableState) (sq.UpdateBuilder, error) {
	stakes, err := encodeStakes(state.Stakes)
	if err != nil {
		return sq.UpdateBuilder{}, err
	}

	return psql.Update(tableSessions).
		Set(colBalance, numeric(state.Balance)).
		Set(colStakes, jsonb(stakes)).
		Set(colTarget, state.TargetNumber).
		Set(colLastRoundID, state.LastRoundID).
		Set(colUpdatedAt, state.UpdatedAt).
		Where(sq.Eq{colSessionID: state.SessionID}), nil
}

func insertHistoryQuery(sessionID string, item model.HistoryItem) sq.InsertBuilder {
	attrs := item.MatchedAttributes
	if attrs == nil {
		attrs = []string{}
	}

	return psql.Insert(tableHistory).
		Columns(colSessionID, colRoundID, colOutcome, colPattern, colTotalStaked,
			colTotalWinnings, colIsCustomWin, colAttributes, colCreatedAt).
		Values(
			sessionID,
			item.ID,
			item.Outcome.String(),
			string(item.Pattern),
			item.TotalStaked,
			numeric(item.TotalWinnings),
			item.IsCustomWin,
			attrs,
			item.Timestamp,
		)
}

func listHistoryQuery(sessionID string, limit int) sq.SelectBuilder {
	query := psql.Select(colRoundID, colOutcome, colPattern, colTotalStaked,
		colTotalWinnings+"::text", colIsCustomWin, colAttributes, colCreatedAt).
		From(tableHistory).
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colRoundID + " DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}
	return query
}

// decodeState дополняет state значениями, прочитанными как text
func decodeState(state *model.TableState, balance, stakes string) error {
	var err error
	state.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("parse balance: %w", err)
	}

	state.Stakes = make(map[model.BetCategory]int64)
	if err := json.Unmarshal([]byte(stakes), &state.Stakes); err != nil {
		return fmt.Errorf("parse stakes: %w", err)
	}
	if state.Stakes == nil {
		state.Stakes = make(map[model.BetCategory]int64)
	}
	return nil
}

func decodeHistory(item *model.HistoryItem, outcome, pattern, winnings string) error {
	var err error
	item.Outcome, err = parseOutcome(outcome)
	if err != nil {
		return err
	}
	item.Pattern = model.PatternCategory(pattern)
	item.TotalWinnings, err = decimal.NewFromString(winnings)
	if err != nil {
		return fmt.Errorf("parse winnings: %w", err)
	}
	return nil
}

func parseOutcome(s string) (model.Outcome, error) {
	var o model.Outcome
	if len(s) != len(o) {
		return o, fmt.Errorf("invalid outcome %q", s)
	}
	for i := range o {
		d := s[i]
		if d < '0' || d > '9' {
			return o, fmt.Errorf("invalid outcome %q", s)
		}
		o[i] = int(d - '0')
	}
	return o, nil
}
