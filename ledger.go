package statement

import (
	"fmt"
	"iter"
	"log/slog"
)

// LotLedger tracks, per ticker, the lots of shares bought.
//
// Lots of a ticker are kept sorted by ascending unit price, tickers are
// iterated in the order they were first bought.
type LotLedger struct {
	tickers []string        // first-seen order
	lots    map[string]lots // index lots by ticker
}

// NewLotLedger creates an empty ledger.
func NewLotLedger() *LotLedger {
	return &LotLedger{
		lots: make(map[string]lots),
	}
}

// Has reports whether ticker was ever bought in this ledger.
func (l *LotLedger) Has(ticker string) bool {
	_, ok := l.lots[ticker]
	return ok
}

// Buy records a new lot of shares bought at a unit price.
//
// It fails with ErrMalformedInput, leaving the ledger untouched, unless
// shares is positive and price is not negative.
func (l *LotLedger) Buy(ticker string, shares Quantity, price Money) error {
	if !shares.IsPositive() {
		return fmt.Errorf("%w: cannot buy %s shares of %s", ErrMalformedInput, shares, ticker)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: cannot buy %s at %s", ErrMalformedInput, ticker, price)
	}
	if !l.Has(ticker) {
		l.tickers = append(l.tickers, ticker)
	}
	lot := NewLot(ticker, shares, price)
	l.lots[ticker] = l.lots[ticker].insert(&lot)
	slog.Debug("buy", "ticker", ticker, "shares", shares, "price", price)
	return nil
}

// Sell sells shares at a price, draining the cheapest lots first, and
// returns the realized profit, which is negative for a loss.
//
// It fails with ErrInsufficientShares, leaving the ledger untouched, if
// fewer shares are held, and with ErrMalformedInput if shares is not
// positive.
func (l *LotLedger) Sell(ticker string, shares Quantity, price Money) (Money, error) {
	if !shares.IsPositive() {
		return Money{}, fmt.Errorf("%w: cannot sell %s shares of %s", ErrMalformedInput, shares, ticker)
	}
	held := l.TotalShares(ticker)
	if shares.GreaterThan(held) {
		return Money{}, fmt.Errorf("%w: cannot sell %s shares of %s, holding %s", ErrInsufficientShares, shares, ticker, held)
	}
	profit := l.lots[ticker].sell(shares, price)
	slog.Debug("sell", "ticker", ticker, "shares", shares, "price", price, "profit", profit)
	return profit, nil
}

// Split applies a 'factor' to 1 split to every lot of ticker. It does
// nothing for an unknown ticker.
func (l *LotLedger) Split(ticker string, factor Quantity) {
	for _, lot := range l.lots[ticker] {
		lot.split(factor)
	}
	slog.Debug("split", "ticker", ticker, "factor", factor)
}

// TotalShares returns the number of shares held for ticker, 0 if unknown.
func (l *LotLedger) TotalShares(ticker string) Quantity {
	return l.lots[ticker].total()
}

// WeightedAveragePrice returns the share weighted mean unit price of ticker
// and the number of shares it was computed on.
//
// Lots with a zero unit price are left out of both, hence shares can be
// lower than TotalShares. The price is zero when no share is left to average.
func (l *LotLedger) WeightedAveragePrice(ticker string) (price Money, shares Quantity) {
	var value Money
	for _, lot := range l.lots[ticker] {
		if lot.price.IsZero() {
			value = value.Add(lot.price) // zero, but carries the currency
			continue
		}
		shares = shares.Add(lot.Shares)
		value = value.Add(lot.Value())
	}
	if shares.IsZero() {
		return value, shares
	}
	return value.Div(shares), shares
}

// Tickers iterates over tickers in the order they were first bought.
func (l *LotLedger) Tickers() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, ticker := range l.tickers {
			if !yield(ticker) {
				return
			}
		}
	}
}

// Lots iterates over copies of ticker's lots, cheapest first.
func (l *LotLedger) Lots(ticker string) iter.Seq[Lot] {
	return func(yield func(Lot) bool) {
		for _, lot := range l.lots[ticker] {
			if !yield(*lot) {
				return
			}
		}
	}
}
