package game

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"lucky888_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Committer сохраняет новое состояние стола. round != nil только для завершенного раунда.
// Если Commit вернул ошибку, стол остается в прежнем состоянии
type Committer interface {
	Commit(ctx context.Context, state model.TableState, round *model.HistoryItem) error
}

// CommitFunc адаптер функции к Committer
type CommitFunc func(ctx context.Context, state model.TableState, round *model.HistoryItem) error

func (f CommitFunc) Commit(ctx context.Context, state model.TableState, round *model.HistoryItem) error {
	return f(ctx, state, round)
}

type nopCommitter struct{}

func (nopCommitter) Commit(context.Context, model.TableState, *model.HistoryItem) error {
	return nil
}

// Table - игровое состояние одной сессии: баланс, ставки, история.
// IDLE -> BETTING -> RESOLVING -> IDLE. Пока идет розыгрыш, любые изменения отклоняются
type Table struct {
	mtx       sync.Mutex
	resolving atomic.Bool
	// номер розыгрыша, растет при каждом входе в RESOLVING
	spins atomic.Uint64

	id        string
	gen       Generator
	committer Committer
	now       func() time.Time

	account     *Account
	ledger      *Ledger
	history     *History
	lastRoundID int64
}

type Option func(*Table)

func WithCommitter(c Committer) Option {
	return func(t *Table) {
		if c != nil {
			t.committer = c
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(t *Table) {
		t.now = now
	}
}

// NewTable новый стол с пустыми ставками и историей
func NewTable(id string, initialBalance decimal.Decimal, target string, gen Generator, opts ...Option) *Table {
	t := &Table{
		id:        id,
		gen:       gen,
		committer: nopCommitter{},
		now:       time.Now,
		account:   NewAccount(initialBalance),
		ledger:    NewLedger(target),
		history:   NewHistory(nil),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RestoreTable восстанавливает стол из сохраненного состояния.
// history - в порядке от новых к старым
func RestoreTable(state model.TableState, history []model.HistoryItem, gen Generator, opts ...Option) *Table {
	t := NewTable(state.SessionID, state.Balance, state.TargetNumber, gen, opts...)
	for c, v := range state.Stakes {
		if v > 0 && IsKnownCategory(c) {
			t.ledger.stakes[c] = v
		}
	}
	t.history = NewHistory(history)
	t.lastRoundID = state.LastRoundID
	return t
}

func (t *Table) ID() string {
	return t.id
}

// PlaceWager ставка на категорию с немедленным списанием с баланса
func (t *Table) PlaceWager(ctx context.Context, w model.Wager) error {
	spin, ok := t.idle()
	if !ok {
		return ErrRoundInProgress
	}
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.spunSince(spin) {
		return ErrRoundInProgress
	}

	acc, led := t.account.clone(), t.ledger.clone()
	amount := w.Amount
	if w.AllIn {
		amount = acc.AllInAmount()
	}
	if err := led.Place(acc, w.Category, amount); err != nil {
		return err
	}

	return t.apply(ctx, acc, led, nil)
}

// ClearAll снимает все ставки и возвращает их на баланс. Возвращает возвращенную сумму
func (t *Table) ClearAll(ctx context.Context) (int64, error) {
	spin, ok := t.idle()
	if !ok {
		return 0, ErrRoundInProgress
	}
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.spunSince(spin) {
		return 0, ErrRoundInProgress
	}

	if t.ledger.IsEmpty() {
		return 0, nil
	}

	acc, led := t.account.clone(), t.ledger.clone()
	refunded := led.ClearAll(acc)

	return refunded, t.apply(ctx, acc, led, nil)
}

// SetTargetNumber сохраняет загаданное число (только цифры, не больше трех)
func (t *Table) SetTargetNumber(ctx context.Context, raw string) (string, error) {
	spin, ok := t.idle()
	if !ok {
		return "", ErrRoundInProgress
	}
	t.mtx.Lock()
	defer t.mtx.Unlock()
	if t.spunSince(spin) {
		return "", ErrRoundInProgress
	}

	led := t.ledger.clone()
	if err := led.SetTarget(raw); err != nil {
		return "", err
	}
	if led.Target() == t.ledger.Target() {
		return led.Target(), nil
	}

	return led.Target(), t.apply(ctx, t.account, led, nil)
}

// Spin разыгрывает раунд: исход, классификация, выплата, история, сброс ставок.
// Раунд либо применяется целиком, либо не начинается
func (t *Table) Spin(ctx context.Context) (*model.RoundResult, error) {
	if !t.resolving.CompareAndSwap(false, true) {
		return nil, ErrRoundInProgress
	}
	defer t.resolving.Store(false)
	t.spins.Add(1)

	t.mtx.Lock()
	defer t.mtx.Unlock()

	staked := t.ledger.Total()
	if staked == 0 {
		return nil, ErrNoWagerPlaced
	}
	if t.ledger.TargetLocked() && !IsValidTarget(t.ledger.Target()) {
		return nil, ErrInvalidCustomNumber
	}

	outcome := t.gen.Draw()
	res := Resolve(t.ledger, outcome, t.ledger.Target())

	acc, led := t.account.clone(), t.ledger.clone()
	acc.Credit(res.TotalWinnings)
	led.reset()

	item := model.HistoryItem{
		ID:                t.lastRoundID + 1,
		Outcome:           outcome,
		Pattern:           res.Pattern,
		Timestamp:         t.now(),
		TotalStaked:       staked,
		TotalWinnings:     res.TotalWinnings,
		IsCustomWin:       res.IsCustomWin,
		MatchedAttributes: res.MatchedAttributes,
	}

	// начатый раунд доводится до конца даже после отмены запроса
	if err := t.apply(context.WithoutCancel(ctx), acc, led, &item); err != nil {
		return nil, err
	}

	return &model.RoundResult{
		Resolution:   res,
		HistoryEntry: copyItem(item),
		Balance:      acc.Balance(),
	}, nil
}

// idle номер последнего розыгрыша и false, если розыгрыш идет прямо сейчас
func (t *Table) idle() (uint64, bool) {
	spin := t.spins.Load()
	return spin, !t.resolving.Load()
}

// spunSince true, если пока ждали блокировку, начался розыгрыш.
// Изменение, пришедшее во время RESOLVING, не переносится в следующий раунд
func (t *Table) spunSince(spin uint64) bool {
	return t.resolving.Load() || t.spins.Load() != spin
}

// apply фиксирует новое состояние через committer и только потом подменяет текущее
func (t *Table) apply(ctx context.Context, acc *Account, led *Ledger, round *model.HistoryItem) error {
	lastRoundID := t.lastRoundID
	if round != nil {
		lastRoundID = round.ID
	}

	state := model.TableState{
		SessionID:    t.id,
		Balance:      acc.Balance(),
		Stakes:       led.Snapshot(),
		TargetNumber: led.Target(),
		LastRoundID:  lastRoundID,
		UpdatedAt:    t.now(),
	}
	if err := t.committer.Commit(ctx, state, round); err != nil {
		return err
	}

	t.account, t.ledger, t.lastRoundID = acc, led, lastRoundID
	if round != nil {
		t.history.Append(*round)
	}
	return nil
}

// View снимок стола
func (t *Table) View() model.TableView {
	t.mtx.Lock()
	defer t.mtx.Unlock()

	phase := model.PhaseIdle
	if !t.ledger.IsEmpty() {
		phase = model.PhaseBetting
	}
	if t.resolving.Load() {
		phase = model.PhaseResolving
	}

	return model.TableView{
		Balance:      t.account.Balance(),
		Stakes:       t.ledger.Snapshot(),
		TotalStaked:  t.ledger.Total(),
		TargetNumber: t.ledger.Target(),
		TargetLocked: t.ledger.TargetLocked(),
		Phase:        phase,
	}
}

// Resolving true, пока идет розыгрыш. Не берет блокировку стола
func (t *Table) Resolving() bool {
	return t.resolving.Load()
}

// Phase текущая фаза без блокировки на время розыгрыша
func (t *Table) Phase() model.Phase {
	if t.Resolving() {
		return model.PhaseResolving
	}
	return t.View().Phase
}

func (t *Table) Balance() decimal.Decimal {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.account.Balance()
}

// History последние limit раундов, от новых к старым
func (t *Table) History(limit int) []model.HistoryItem {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return t.history.Recent(limit)
}
