package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// BetCategory - категория ставки
type BetCategory string

const (
	Leopard   BetCategory = "LEOPARD"
	Straight  BetCategory = "STRAIGHT"
	Pair      BetCategory = "PAIR"
	Custom    BetCategory = "CUSTOM"
	Big       BetCategory = "BIG"
	Small     BetCategory = "SMALL"
	Odd       BetCategory = "ODD"
	Even      BetCategory = "EVEN"
	BigOdd    BetCategory = "BIG_ODD"
	BigEven   BetCategory = "BIG_EVEN"
	SmallOdd  BetCategory = "SMALL_ODD"
	SmallEven BetCategory = "SMALL_EVEN"
)

// PatternCategory - комбинация, которую дают три цифры (не более одной за раунд)
type PatternCategory string

const (
	PatternLeopard  PatternCategory = "LEOPARD"
	PatternStraight PatternCategory = "STRAIGHT"
	PatternPair     PatternCategory = "PAIR"
	PatternNone     PatternCategory = "NONE"
)

// Outcome - выпавшие цифры в порядке выпадения
type Outcome [3]int

// Value число из трех цифр (0-999)
func (o Outcome) Value() int {
	return o[0]*100 + o[1]*10 + o[2]
}

// String цифры подряд, с ведущими нулями ("007")
func (o Outcome) String() string {
	return strconv.Itoa(o[0]) + strconv.Itoa(o[1]) + strconv.Itoa(o[2])
}

// Phase - фаза раунда
type Phase string

const (
	PhaseIdle      Phase = "IDLE"
	PhaseBetting   Phase = "BETTING"
	PhaseResolving Phase = "RESOLVING"
)

// MatchDetail - сыгравшая ставка
type MatchDetail struct {
	Category   BetCategory
	Label      string
	Stake      int64
	Multiplier decimal.Decimal
	Payout     decimal.Decimal
}

// Resolution - результат расчета выплат по раунду
type Resolution struct {
	Outcome           Outcome
	Pattern           PatternCategory
	IsBig             bool
	IsOdd             bool
	TotalWinnings     decimal.Decimal
	Matches           []MatchDetail
	MatchedAttributes []string // Все выполненные свойства (BIG/SMALL/ODD/EVEN/комбинация), даже без ставки
	IsCustomWin       bool
}

// HistoryItem - запись истории, после создания не меняется
type HistoryItem struct {
	ID                int64
	Outcome           Outcome
	Pattern           PatternCategory
	Timestamp         time.Time
	TotalStaked       int64
	TotalWinnings     decimal.Decimal
	IsCustomWin       bool
	MatchedAttributes []string
}

// RoundResult - то, что получает клиент после спина
type RoundResult struct {
	Resolution
	HistoryEntry HistoryItem
	Balance      decimal.Decimal
}

// Wager - запрос на ставку
type Wager struct {
	Category BetCategory
	Amount   int64
	AllIn    bool
}

// TableState - сохраняемое состояние стола одной сессии
type TableState struct {
	SessionID    string
	Balance      decimal.Decimal
	Stakes       map[BetCategory]int64
	TargetNumber string
	LastRoundID  int64
	UpdatedAt    time.Time
}

// TableView - снимок стола для отображения
type TableView struct {
	Balance      decimal.Decimal
	Stakes       map[BetCategory]int64
	TotalStaked  int64
	TargetNumber string
	TargetLocked bool
	Phase        Phase
}

// OddsEntry - строка таблицы коэффициентов
type OddsEntry struct {
	Category   BetCategory
	Label      string
	Multiplier decimal.Decimal
}

// GameSettings - настройки для клиента
type GameSettings struct {
	Chips         []int64
	AllowAllIn    bool
	SpinDuration  time.Duration
	HistoryLimit  int
	DefaultTarget string
}
