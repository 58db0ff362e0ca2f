package converter

import (
	"slices"
	"time"

	"lucky888_backend/internal/api/dto/game"
	"lucky888_backend/internal/api/dto/session"
	"lucky888_backend/internal/model"
)

func ToWager(req game.WagerRequest) model.Wager {
	return model.Wager{
		Category: model.BetCategory(req.Category),
		Amount:   req.Amount,
		AllIn:    req.AllIn,
	}
}

func ToStateResponse(v model.TableView) game.StateResponse {
	stakes := make(map[string]int64, len(v.Stakes))
	for c, amount := range v.Stakes {
		stakes[string(c)] = amount
	}
	return game.StateResponse{
		Balance:      v.Balance,
		Stakes:       stakes,
		TotalStaked:  v.TotalStaked,
		TargetNumber: v.TargetNumber,
		TargetLocked: v.TargetLocked,
		Phase:        string(v.Phase),
	}
}

func ToHistoryItem(h model.HistoryItem) game.HistoryItem {
	attrs := slices.Clone(h.MatchedAttributes)
	if attrs == nil {
		attrs = []string{}
	}
	return game.HistoryItem{
		ID:                h.ID,
		Outcome:           h.Outcome,
		Number:            h.Outcome.String(),
		Pattern:           string(h.Pattern),
		Timestamp:         h.Timestamp,
		TotalStaked:       h.TotalStaked,
		TotalWinnings:     h.TotalWinnings,
		IsCustomWin:       h.IsCustomWin,
		MatchedAttributes: attrs,
	}
}

func ToHistoryResponse(items []model.HistoryItem) game.HistoryResponse {
	res := make([]game.HistoryItem, len(items))
	for i, h := range items {
		res[i] = ToHistoryItem(h)
	}
	return game.HistoryResponse{Items: res}
}

func ToSpinResponse(r model.RoundResult, spinDuration time.Duration) game.SpinResponse {
	matches := make([]game.MatchDetail, len(r.Matches))
	for i, m := range r.Matches {
		matches[i] = game.MatchDetail{
			Category:   string(m.Category),
			Label:      m.Label,
			Stake:      m.Stake,
			Multiplier: m.Multiplier,
			Payout:     m.Payout,
		}
	}
	attrs := slices.Clone(r.MatchedAttributes)
	if attrs == nil {
		attrs = []string{}
	}

	return game.SpinResponse{
		Outcome:           r.Outcome,
		Number:            r.Outcome.String(),
		Pattern:           string(r.Pattern),
		IsBig:             r.IsBig,
		IsOdd:             r.IsOdd,
		TotalWinnings:     r.TotalWinnings,
		Matches:           matches,
		MatchedAttributes: attrs,
		IsCustomWin:       r.IsCustomWin,
		HistoryEntry:      ToHistoryItem(r.HistoryEntry),
		Balance:           r.Balance,
		SpinDurationMs:    spinDuration.Milliseconds(),
	}
}

func ToOddsResponse(entries []model.OddsEntry) game.OddsResponse {
	res := make([]game.OddsEntry, len(entries))
	for i, e := range entries {
		res[i] = game.OddsEntry{
			Category:   string(e.Category),
			Label:      e.Label,
			Multiplier: e.Multiplier,
		}
	}
	return game.OddsResponse{Odds: res}
}

func ToConfigResponse(s model.GameSettings) game.ConfigResponse {
	return game.ConfigResponse{
		Chips:          s.Chips,
		AllowAllIn:     s.AllowAllIn,
		SpinDurationMs: s.SpinDuration.Milliseconds(),
		HistoryLimit:   s.HistoryLimit,
		DefaultTarget:  s.DefaultTarget,
	}
}

func ToStatsResponse(s model.Stats) game.StatsResponse {
	return game.StatsResponse{
		TotalRounds: s.TotalRounds,
		TotalStaked: s.TotalStaked,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
	}
}

func ToCreateSessionResponse(d model.SessionData) session.CreateResponse {
	return session.CreateResponse{
		SessionID:   d.SessionID,
		AccessToken: d.AccessToken,
		ExpiresAt:   d.ExpiresAt,
		State:       ToStateResponse(d.View),
	}
}
