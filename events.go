package statement

import (
	"errors"
	"fmt"
	"time"

	"github.com/etnz/statement/date"
)

// CommandType is a typed string for identifying events.
type CommandType string

// Command types used for identifying events.
const (
	CmdBuy       CommandType = "buy"
	CmdSell      CommandType = "sell"
	CmdCorporate CommandType = "corporate"
)

// Event is either a Trade or a CorporateAction.
type Event interface {
	What() CommandType // What returns the command type of the event.
	When() time.Time   // When returns the instant the event takes effect.
	Day() date.Date    // Day returns the day of the event.
	Security() string  // Security returns the ticker the event is about.
	Validate() error
}

// Trade is a buy or sell order executed by the trader.
type Trade struct {
	Command CommandType
	Time    time.Time
	Ticker  string
	Price   Money    // Price is the unit price.
	Shares  Quantity // Shares is the number of shares traded.
}

// NewBuy creates a new buy Trade.
func NewBuy(on time.Time, ticker string, shares Quantity, price Money) Trade {
	return Trade{Command: CmdBuy, Time: on, Ticker: ticker, Price: price, Shares: shares}
}

// NewSell creates a new sell Trade.
func NewSell(on time.Time, ticker string, shares Quantity, price Money) Trade {
	return Trade{Command: CmdSell, Time: on, Ticker: ticker, Price: price, Shares: shares}
}

func (t Trade) What() CommandType { return t.Command }
func (t Trade) When() time.Time   { return t.Time }
func (t Trade) Day() date.Date    { return date.Of(t.Time) }
func (t Trade) Security() string  { return t.Ticker }

// Validate checks that the trade is a buy or a sell of a positive whole
// number of shares at a non negative price.
func (t Trade) Validate() error {
	var errs error
	if t.Command != CmdBuy && t.Command != CmdSell {
		errs = errors.Join(errs, fmt.Errorf("unknown trade command %q", t.Command))
	}
	if t.Ticker == "" {
		errs = errors.Join(errs, errors.New("security ticker is missing"))
	}
	if !t.Shares.IsPositive() || !t.Shares.IsInteger() {
		errs = errors.Join(errs, fmt.Errorf("shares must be a positive whole number, got %s", t.Shares))
	}
	if t.Price.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("price must not be negative, got %s", t.Price))
	}
	if errs != nil {
		return fmt.Errorf("%w: invalid %s of %q on %s: %w", ErrMalformedInput, t.Command, t.Ticker, t.Day(), errs)
	}
	return nil
}

// CorporateAction is a split and/or a dividend payout decided by a company,
// it affects every holder of the security.
type CorporateAction struct {
	Date     date.Date
	Ticker   string
	Dividend *Money    // Dividend per share, nil if none.
	Split    *Quantity // Split factor, 'Split' to 1, nil if none.
}

// NewCorporateAction creates a CorporateAction, dividend and split are optional.
func NewCorporateAction(day date.Date, ticker string, dividend *Money, split *Quantity) CorporateAction {
	return CorporateAction{Date: day, Ticker: ticker, Dividend: dividend, Split: split}
}

// NewDividend creates a CorporateAction paying a dividend per share.
func NewDividend(day date.Date, ticker string, rate Money) CorporateAction {
	return NewCorporateAction(day, ticker, &rate, nil)
}

// NewSplit creates a CorporateAction splitting each share into factor shares.
func NewSplit(day date.Date, ticker string, factor Quantity) CorporateAction {
	return NewCorporateAction(day, ticker, nil, &factor)
}

func (c CorporateAction) What() CommandType { return CmdCorporate }
func (c CorporateAction) When() time.Time   { return c.Date.Time() }
func (c CorporateAction) Day() date.Date    { return c.Date }
func (c CorporateAction) Security() string  { return c.Ticker }

// Validate checks that the action carries a non negative dividend and/or a
// positive whole split factor.
func (c CorporateAction) Validate() error {
	var errs error
	if c.Ticker == "" {
		errs = errors.Join(errs, errors.New("security ticker is missing"))
	}
	if c.Dividend == nil && c.Split == nil {
		errs = errors.Join(errs, errors.New("neither a dividend nor a split"))
	}
	if c.Dividend != nil && c.Dividend.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("dividend must not be negative, got %s", c.Dividend))
	}
	if c.Split != nil && (!c.Split.IsPositive() || !c.Split.IsInteger()) {
		errs = errors.Join(errs, fmt.Errorf("split factor must be a positive whole number, got %s", c.Split))
	}
	if errs != nil {
		return fmt.Errorf("%w: invalid corporate action of %q on %s: %w", ErrMalformedInput, c.Ticker, c.Date, errs)
	}
	return nil
}
