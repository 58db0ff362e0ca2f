package game

import "github.com/shopspring/decimal"

// Account - баланс игрока. Никогда не уходит в минус
type Account struct {
	balance decimal.Decimal
}

func NewAccount(initial decimal.Decimal) *Account {
	if initial.IsNegative() {
		initial = decimal.Zero
	}
	return &Account{balance: initial}
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// CanCover хватает ли баланса на ставку
func (a *Account) CanCover(amount int64) bool {
	return decimal.NewFromInt(amount).LessThanOrEqual(a.balance)
}

// Debit списание. Проверка до изменения баланса
func (a *Account) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidWager
	}
	if !a.CanCover(amount) {
		return ErrInsufficientBalance
	}
	a.balance = a.balance.Sub(decimal.NewFromInt(amount))
	return nil
}

// Credit зачисление. Неположительные суммы игнорируются
func (a *Account) Credit(amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	a.balance = a.balance.Add(amount)
}

// AllInAmount целая часть баланса, ставка "ва-банк"
func (a *Account) AllInAmount() int64 {
	return a.balance.Floor().IntPart()
}

func (a *Account) clone() *Account {
	return &Account{balance: a.balance}
}
