package statement

import (
	"fmt"
	"log/slog"

	"github.com/etnz/statement/date"
)

// Block is the part of a statement describing one event: the account as it
// is after the event, and what the event did.
type Block struct {
	Date           date.Date
	Holdings       []Holding
	DividendIncome Money
	Transactions   []string
}

// Engine folds events, in order, over a single Account.
type Engine struct {
	account  *Account
	currency string
	count    int // events applied so far
}

// NewEngine creates an Engine with an empty account in currency.
func NewEngine(currency string) *Engine {
	return &Engine{account: NewAccount(currency), currency: currency}
}

// Account returns the account the engine is folding over.
func (e *Engine) Account() *Account { return e.account }

// Apply applies one event to the account and describes it.
//
// ok is false when the event has no effect on the account and must not
// appear in the statement: a corporate action for a security never bought.
// A failed event is wrapped in an *EventError, the account is then in an
// undefined state and the engine must not be used anymore.
func (e *Engine) Apply(ev Event) (block Block, ok bool, err error) {
	index := e.count
	e.count++

	if err := ev.Validate(); err != nil {
		return Block{}, false, &EventError{Index: index, Event: ev, Err: err}
	}

	var txs []string
	switch v := ev.(type) {
	case Trade:
		txs, err = e.trade(v)
	case CorporateAction:
		if !e.account.Ledger.Has(v.Ticker) {
			slog.Debug("skip corporate action", "ticker", v.Ticker, "date", v.Date)
			return Block{}, false, nil
		}
		txs, err = e.corporate(v)
	default:
		err = fmt.Errorf("%w: unsupported event type %T", ErrMalformedInput, ev)
	}
	if err != nil {
		return Block{}, false, &EventError{Index: index, Event: ev, Err: err}
	}

	return Block{
		Date:           ev.Day(),
		Holdings:       e.account.Holdings(),
		DividendIncome: e.account.DividendIncome,
		Transactions:   txs,
	}, true, nil
}

func (e *Engine) trade(t Trade) ([]string, error) {
	if err := e.checkCurrency(t.Price); err != nil {
		return nil, err
	}
	ledger := e.account.Ledger
	switch t.Command {
	case CmdBuy:
		if err := ledger.Buy(t.Ticker, t.Shares, t.Price); err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("You bought %s shares of %s at a price of %s per share", t.Shares, t.Ticker, t.Price.exact())}, nil
	case CmdSell:
		profit, err := ledger.Sell(t.Ticker, t.Shares, t.Price)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("You sold %s shares of %s at a price of %s per share for a profit of %s", t.Shares, t.Ticker, t.Price.exact(), profit)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown trade command %q", ErrMalformedInput, t.Command)
	}
}

// corporate applies the split first, so that the dividend is paid on the
// split shares.
func (e *Engine) corporate(c CorporateAction) ([]string, error) {
	var txs []string
	ledger := e.account.Ledger
	if c.Split != nil {
		ledger.Split(c.Ticker, *c.Split)
		txs = append(txs, fmt.Sprintf("%s split %s to 1, and you have %s shares", c.Ticker, c.Split, ledger.TotalShares(c.Ticker)))
	}
	if c.Dividend != nil {
		if err := e.checkCurrency(*c.Dividend); err != nil {
			return nil, err
		}
		e.account.RecordDividend(c.Ticker, *c.Dividend)
		txs = append(txs, fmt.Sprintf("%s paid out %s dividend per share, and you have %s shares", c.Ticker, c.Dividend.exact(), ledger.TotalShares(c.Ticker)))
	}
	return txs, nil
}

func (e *Engine) checkCurrency(m Money) error {
	if m.Currency() != e.currency {
		return fmt.Errorf("%w: amount %s is in %q, statement is in %q", ErrMalformedInput, m, m.Currency(), e.currency)
	}
	return nil
}

// Generate computes the statement blocks of a trader's account out of its
// trades and the corporate actions, both in chronological order.
//
// Processing stops at the first failing event, there is no partial statement.
func Generate(currency string, trades []Trade, actions []CorporateAction) ([]Block, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	for i, t := range trades {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("trade #%d: %w", i, err)
		}
	}
	for i, a := range actions {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("corporate action #%d: %w", i, err)
		}
	}
	if i := unsorted(trades); i >= 0 {
		return nil, fmt.Errorf("%w: trade #%d on %s happens before the previous one", ErrMalformedInput, i, trades[i].When())
	}
	if i := unsorted(actions); i >= 0 {
		return nil, fmt.Errorf("%w: corporate action #%d on %s happens before the previous one", ErrMalformedInput, i, actions[i].Day())
	}

	engine := NewEngine(currency)
	var blocks []Block
	for _, ev := range Merge(trades, actions) {
		block, ok, err := engine.Apply(ev)
		if err != nil {
			return nil, err
		}
		if ok {
			blocks = append(blocks, block)
		}
	}
	slog.Debug("statement generated", "events", engine.count, "blocks", len(blocks))
	return blocks, nil
}
