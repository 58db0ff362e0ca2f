package game

import (
	"fmt"

	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Ledger - ставки текущего раунда по категориям и загаданное число для CUSTOM
type Ledger struct {
	stakes map[model.BetCategory]int64
	target string
}

func NewLedger(target string) *Ledger {
	return &Ledger{
		stakes: make(map[model.BetCategory]int64),
		target: SanitizeTarget(target),
	}
}

// Place добавляет ставку и списывает ее с баланса.
// Все проверки выполняются до изменений: при ошибке ни ставки, ни баланс не меняются
func (l *Ledger) Place(acc *Account, c model.BetCategory, amount int64) error {
	if !IsKnownCategory(c) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidWager, c)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidWager)
	}
	if c == model.Custom && !IsValidTarget(l.target) {
		return fmt.Errorf("%w: %w", ErrInvalidWager, ErrInvalidCustomNumber)
	}
	if !acc.CanCover(amount) {
		return fmt.Errorf("%w: %w", ErrInvalidWager, ErrInsufficientBalance)
	}

	if err := acc.Debit(amount); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWager, err)
	}
	l.stakes[c] += amount
	return nil
}

// ClearAll возвращает все ставки на баланс. На пустых ставках ничего не делает
func (l *Ledger) ClearAll(acc *Account) int64 {
	total := l.Total()
	if total > 0 {
		acc.Credit(decimal.NewFromInt(total))
	}
	l.reset()
	return total
}

// SetTarget сохраняет очищенное число. Пока есть ставка на CUSTOM, число зафиксировано
func (l *Ledger) SetTarget(raw string) error {
	target := SanitizeTarget(raw)
	if l.TargetLocked() && target != l.target {
		return fmt.Errorf("%w: %w", ErrInvalidCustomNumber, ErrTargetLocked)
	}
	l.target = target
	return nil
}

func (l *Ledger) Target() string {
	return l.target
}

// TargetLocked есть ли активная ставка на CUSTOM
func (l *Ledger) TargetLocked() bool {
	return l.stakes[model.Custom] > 0
}

func (l *Ledger) Stake(c model.BetCategory) int64 {
	return l.stakes[c]
}

// Total сумма всех ставок
func (l *Ledger) Total() int64 {
	var total int64
	for _, v := range l.stakes {
		total += v
	}
	return total
}

func (l *Ledger) IsEmpty() bool {
	return l.Total() == 0
}

// Snapshot копия ненулевых ставок
func (l *Ledger) Snapshot() map[model.BetCategory]int64 {
	res := make(map[model.BetCategory]int64, len(l.stakes))
	for c, v := range l.stakes {
		if v > 0 {
			res[c] = v
		}
	}
	return res
}

// reset очищает ставки, загаданное число остается
func (l *Ledger) reset() {
	l.stakes = make(map[model.BetCategory]int64)
}

func (l *Ledger) clone() *Ledger {
	return &Ledger{stakes: l.Snapshot(), target: l.target}
}
