package game

import "errors"

var (
	// ErrInvalidWager - ставка отклонена; конкретная причина оборачивается вместе с ней
	ErrInvalidWager        = errors.New("invalid wager")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidCustomNumber = errors.New("custom number must be exactly 3 digits")
	ErrTargetLocked        = errors.New("custom number is locked by an active custom wager")
	ErrNoWagerPlaced       = errors.New("no wager placed")
	ErrRoundInProgress     = errors.New("round in progress")
)
