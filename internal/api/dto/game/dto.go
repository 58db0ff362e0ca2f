package game

import (
	"time"

	"github.com/shopspring/decimal"
)

// Денежные суммы (баланс, выплаты) передаются строкой: "1095", "13.65"

type WagerRequest struct {
	Category string `json:"category"`         // Категория ставки (BIG, LEOPARD, ...)
	Amount   int64  `json:"amount,omitempty"` // Размер ставки (>0), если не all_in
	AllIn    bool   `json:"all_in,omitempty"` // Поставить весь баланс
}

type TargetRequest struct {
	Target string `json:"target"` // Загаданное число, лишние символы отбрасываются
}

type StateResponse struct {
	Balance      decimal.Decimal  `json:"balance"`
	Stakes       map[string]int64 `json:"stakes"`
	TotalStaked  int64            `json:"total_staked"`
	TargetNumber string           `json:"target_number"`
	TargetLocked bool             `json:"target_locked"` // Есть ставка на CUSTOM, число менять нельзя
	Phase        string           `json:"phase"`
}

type ClearResponse struct {
	Refunded int64         `json:"refunded"`
	State    StateResponse `json:"state"`
}

type MatchDetail struct {
	Category   string          `json:"category"`
	Label      string          `json:"label"`
	Stake      int64           `json:"stake"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Payout     decimal.Decimal `json:"payout"`
}

type HistoryItem struct {
	ID                int64           `json:"id"`
	Outcome           [3]int          `json:"outcome"`
	Number            string          `json:"number"` // Исход строкой, с ведущими нулями
	Pattern           string          `json:"pattern"`
	Timestamp         time.Time       `json:"timestamp"`
	TotalStaked       int64           `json:"total_staked"`
	TotalWinnings     decimal.Decimal `json:"total_winnings"`
	IsCustomWin       bool            `json:"is_custom_win"`
	MatchedAttributes []string        `json:"matched_attributes"`
}

type SpinResponse struct {
	Outcome           [3]int          `json:"outcome"`
	Number            string          `json:"number"`
	Pattern           string          `json:"pattern"`
	IsBig             bool            `json:"is_big"`
	IsOdd             bool            `json:"is_odd"`
	TotalWinnings     decimal.Decimal `json:"total_winnings"`
	Matches           []MatchDetail   `json:"matches"`
	MatchedAttributes []string        `json:"matched_attributes"`
	IsCustomWin       bool            `json:"is_custom_win"`
	HistoryEntry      HistoryItem     `json:"history_entry"`
	Balance           decimal.Decimal `json:"balance"`
	SpinDurationMs    int64           `json:"spin_duration_ms"` // Подсказка клиенту для анимации
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

type OddsEntry struct {
	Category   string          `json:"category"`
	Label      string          `json:"label"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

type OddsResponse struct {
	Odds []OddsEntry `json:"odds"`
}

type ConfigResponse struct {
	Chips          []int64 `json:"chips"`
	AllowAllIn     bool    `json:"allow_all_in"`
	SpinDurationMs int64   `json:"spin_duration_ms"`
	HistoryLimit   int     `json:"history_limit"`
	DefaultTarget  string  `json:"default_target"`
}

type StatsResponse struct {
	TotalRounds int64           `json:"total_rounds"`
	TotalStaked decimal.Decimal `json:"total_staked"`
	TotalPayout decimal.Decimal `json:"total_payout"`
	CurrentRTP  float64         `json:"current_rtp"`
	WindowRTP   float64         `json:"window_rtp"`
	WindowSize  int             `json:"window_size"`
}
