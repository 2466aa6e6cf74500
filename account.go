package statement

import "log/slog"

// Account is the single trader's book: the lots held and the dividend income
// received since the start of the statement.
type Account struct {
	Ledger         *LotLedger
	DividendIncome Money
}

// NewAccount creates an empty account keeping money in currency.
func NewAccount(currency string) *Account {
	return &Account{
		Ledger:         NewLotLedger(),
		DividendIncome: M(0, currency),
	}
}

// RecordDividend credits rate per share currently held of ticker.
func (a *Account) RecordDividend(ticker string, rate Money) {
	shares := a.Ledger.TotalShares(ticker)
	a.DividendIncome = a.DividendIncome.Add(rate.Mul(shares))
	slog.Debug("dividend", "ticker", ticker, "rate", rate, "shares", shares, "income", a.DividendIncome)
}

// Holding is the position in one security.
type Holding struct {
	Ticker string
	Shares Quantity // Shares averaged in Price.
	Price  Money    // Weighted average unit price.
}

// Holdings returns the position of every ticker with shares held, in the
// order tickers were first bought.
func (a *Account) Holdings() []Holding {
	var holdings []Holding
	for ticker := range a.Ledger.Tickers() {
		if !a.Ledger.TotalShares(ticker).IsPositive() {
			continue
		}
		price, shares := a.Ledger.WeightedAveragePrice(ticker)
		holdings = append(holdings, Holding{Ticker: ticker, Shares: shares, Price: price})
	}
	return holdings
}
