package table_repo

import (
	"testing"
	"time"

	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func testState() model.TableState {
	return model.TableState{
		SessionID:    "s1",
		Balance:      decimal.RequireFromString("13.65"),
		Stakes:       map[model.BetCategory]int64{model.Odd: 5},
		TargetNumber: "042",
		LastRoundID:  7,
		UpdatedAt:    testTime,
	}
}

func TestInsertTableQuery(t *testing.T) {
	query, err := insertTableQuery(testState())
	require.NoError(t, err)

	sqlStr, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO game_sessions (session_id,balance,stakes,target_number,last_round_id,updated_at) "+
			"VALUES ($1,$2::numeric,$3::jsonb,$4,$5,$6)", sqlStr)
	assert.Equal(t, []interface{}{"s1", "13.65", `{"ODD":5}`, "042", int64(7), testTime}, args)
}

func TestInsertTableQuery_NilStakes(t *testing.T) {
	state := testState()
	state.Stakes = nil

	query, err := insertTableQuery(state)
	require.NoError(t, err)

	_, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "{}", args[2])
}

func TestSelectTableQuery(t *testing.T) {
	sqlStr, args, err := selectTableQuery("s1").ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT session_id, balance::text, stakes::text, target_number, last_round_id, updated_at "+
			"FROM game_sessions WHERE session_id = $1", sqlStr)
	assert.Equal(t, []interface{}{"s1"}, args)
}

func TestUpdateTableQuery(t *testing.T) {
	query, err := updateTableQuery(testState())
	require.NoError(t, err)

	sqlStr, args, err := query.ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE game_sessions SET balance = $1::numeric, stakes = $2::jsonb, target_number = $3, "+
			"last_round_id = $4, updated_at = $5 WHERE session_id = $6", sqlStr)
	assert.Equal(t, []interface{}{"13.65", `{"ODD":5}`, "042", int64(7), testTime, "s1"}, args)
}

func TestInsertHistoryQuery(t *testing.T) {
	item := model.HistoryItem{
		ID:            3,
		Outcome:       model.Outcome{0, 0, 7},
		Pattern:       model.PatternPair,
		Timestamp:     testTime,
		TotalStaked:   20,
		TotalWinnings: decimal.RequireFromString("36.5"),
		IsCustomWin:   false,
	}

	sqlStr, args, err := insertHistoryQuery("s1", item).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO round_history (session_id,round_id,outcome,pattern,total_staked,"+
			"total_winnings,is_custom_win,matched_attributes,created_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6::numeric,$7,$8,$9)", sqlStr)
	assert.Equal(t, []interface{}{
		"s1", int64(3), "007", "PAIR", int64(20), "36.5", false, []string{}, testTime,
	}, args)
}

func TestListHistoryQuery(t *testing.T) {
	sqlStr, args, err := listHistoryQuery("s1", 5).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT round_id, outcome, pattern, total_staked, total_winnings::text, is_custom_win, "+
			"matched_attributes, created_at FROM round_history WHERE session_id = $1 "+
			"ORDER BY round_id DESC LIMIT 5", sqlStr)
	assert.Equal(t, []interface{}{"s1"}, args)

	sqlStr, _, err = listHistoryQuery("s1", 0).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sqlStr, "LIMIT")
}

func TestDecodeState(t *testing.T) {
	var state model.TableState
	require.NoError(t, decodeState(&state, "13.65", `{"ODD":5,"BIG_EVEN":2}`))
	assert.Equal(t, "13.65", state.Balance.String())
	assert.Equal(t, map[model.BetCategory]int64{model.Odd: 5, model.BigEven: 2}, state.Stakes)

	require.NoError(t, decodeState(&state, "0", "null"))
	assert.NotNil(t, state.Stakes)
	assert.Empty(t, state.Stakes)

	assert.Error(t, decodeState(&state, "abc", "{}"))
	assert.Error(t, decodeState(&state, "1", "[1]"))
}

func TestDecodeHistory(t *testing.T) {
	var item model.HistoryItem
	require.NoError(t, decodeHistory(&item, "555", "LEOPARD", "6006.25"))
	assert.Equal(t, model.Outcome{5, 5, 5}, item.Outcome)
	assert.Equal(t, model.PatternLeopard, item.Pattern)
	assert.Equal(t, "6006.25", item.TotalWinnings.String())

	assert.Error(t, decodeHistory(&item, "55", "LEOPARD", "1"))
	assert.Error(t, decodeHistory(&item, "555", "LEOPARD", "x"))
}

func TestParseOutcome(t *testing.T) {
	o, err := parseOutcome("007")
	require.NoError(t, err)
	assert.Equal(t, model.Outcome{0, 0, 7}, o)

	for _, bad := range []string{"", "12", "1234", "1a2"} {
		_, err := parseOutcome(bad)
		assert.Error(t, err, bad)
	}
}
