package statement

import (
	"slices"
)

// Lot represents a single purchase of a security.
//
// A Lot is never removed from its ledger, when fully sold it stays with zero
// shares.
type Lot struct {
	Ticker string
	Shares Quantity // Shares still held from this purchase.
	price  Money    // Unit price paid at purchase.
	factor Quantity // Cumulative split factor since purchase.
}

// NewLot creates a Lot of shares bought at a unit price.
func NewLot(ticker string, shares Quantity, price Money) Lot {
	return Lot{Ticker: ticker, Shares: shares, price: price, factor: Q(1)}
}

// Price returns the split adjusted unit price of the lot.
func (l Lot) Price() Money { return l.price.Div(l.factor) }

// Value returns the lot's basis: unit price times shares.
//
// A split leaves it unchanged.
func (l Lot) Value() Money { return l.price.Mul(l.Shares).Div(l.factor) }

// split scales shares up and the unit price down by factor.
func (l *Lot) split(factor Quantity) {
	l.Shares = l.Shares.Mul(factor)
	l.factor = l.factor.Mul(factor)
}

// cheaper reports whether l's unit price is strictly lower than o's.
//
// Prices are compared without division: a/f < b/g <=> a*g < b*f.
func (l Lot) cheaper(o Lot) bool {
	return l.price.Mul(o.factor).LessThan(o.price.Mul(l.factor))
}

// compare orders lots by ascending unit price.
func (l Lot) compare(o Lot) int {
	switch {
	case l.cheaper(o):
		return -1
	case o.cheaper(l):
		return 1
	default:
		return 0
	}
}

type lots []*Lot

// total returns the sum of shares in all lots.
func (l lots) total() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Shares)
	}
	return total
}

// insert appends a lot and restores the price ordering. Lots with equal
// prices keep their purchase order.
func (l lots) insert(lot *Lot) lots {
	l = append(l, lot)
	slices.SortStableFunc(l, func(a, b *Lot) int { return a.compare(*b) })
	return l
}

// sell drains quantityToSell shares, cheapest lots first, and returns the
// profit realized at the given price.
//
// The caller must have checked that enough shares are held.
func (l lots) sell(quantityToSell Quantity, price Money) Money {
	profit := M(0, price.Currency())
	for _, currentLot := range l {
		if quantityToSell.IsZero() {
			break
		}
		sold := currentLot.Shares.Min(quantityToSell)
		if sold.IsZero() {
			continue
		}
		// sold * (price - unit price) computed as proceeds minus basis.
		basis := currentLot.price.Mul(sold).Div(currentLot.factor)
		profit = profit.Add(price.Mul(sold).Sub(basis))
		currentLot.Shares = currentLot.Shares.Sub(sold)
		quantityToSell = quantityToSell.Sub(sold)
	}
	return profit
}
