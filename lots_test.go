package statement

import "testing"

func TestLotSplitPreservesValue(t *testing.T) {
	lot := NewLot("AAPL", Q(500), M(12.3, "USD"))
	before := lot.Value()

	lot.split(Q(3))

	if got, want := lot.Shares, Q(1500); !got.Equal(want) {
		t.Errorf("Shares = %s, want %s", got, want)
	}
	if got, want := lot.Price(), M(4.1, "USD"); !got.Equal(want) {
		t.Errorf("Price() = %s, want %s", got, want)
	}
	if got := lot.Value(); !got.Equal(before) {
		t.Errorf("Value() = %s after split, want %s", got, before)
	}
}

func TestLotSplitNonTerminatingPrice(t *testing.T) {
	lot := NewLot("XYZ", Q(10), M(10, "USD"))
	lot.split(Q(3))
	lot.split(Q(7))

	// 10/21 has no finite decimal form, the product is still exact.
	if got, want := lot.Value(), M(100, "USD"); !got.Equal(want) {
		t.Errorf("Value() = %s, want %s", got, want)
	}
	if got, want := lot.Shares, Q(210); !got.Equal(want) {
		t.Errorf("Shares = %s, want %s", got, want)
	}
}

func TestLotsInsertOrder(t *testing.T) {
	var l lots
	for _, b := range [][2]float64{{1, 21}, {2, 20}, {3, 18.3}, {4, 20}} {
		lot := NewLot("MSFT", Q(b[0]), M(b[1], "USD"))
		l = l.insert(&lot)
	}

	// lots at $20 keep their purchase order.
	want := []int{3, 2, 4, 1}
	for i, lot := range l {
		if got := lot.Shares; !got.Equal(Q(want[i])) {
			t.Errorf("lot #%d Shares = %s, want %d", i, got, want[i])
		}
	}
}

func TestLotsInsertComparesSplitPrices(t *testing.T) {
	var l lots
	old := NewLot("AAPL", Q(100), M(12.3, "USD"))
	l = l.insert(&old)
	old.split(Q(3)) // now 4.10

	fresh := NewLot("AAPL", Q(100), M(5, "USD"))
	l = l.insert(&fresh)

	if l[0] != &old {
		t.Errorf("lots[0] = %s, want the split lot at $4.10", l[0].Price())
	}
}

func TestLotsSell(t *testing.T) {
	tests := []struct {
		name       string
		buys       [][2]float64 // shares, price
		sell       int
		price      float64
		wantProfit float64
		wantShares []int // per lot, cheapest first
	}{
		{
			name:       "single lot",
			buys:       [][2]float64{{500, 12.3}},
			sell:       100,
			price:      15.3,
			wantProfit: 300,
			wantShares: []int{400},
		},
		{
			name:       "cheapest lot first",
			buys:       [][2]float64{{300, 20}, {100, 10}},
			sell:       100,
			price:      15,
			wantProfit: 500,
			wantShares: []int{0, 300},
		},
		{
			name:       "across lots",
			buys:       [][2]float64{{100, 20}, {500, 21}},
			sell:       600,
			price:      18.2,
			wantProfit: -1580,
			wantShares: []int{0, 0},
		},
		{
			name:       "partial second lot",
			buys:       [][2]float64{{100, 20}, {500, 21}},
			sell:       150,
			price:      22,
			wantProfit: 250,
			wantShares: []int{0, 450},
		},
		{
			name:       "nothing",
			buys:       [][2]float64{{10, 1}},
			sell:       0,
			price:      2,
			wantProfit: 0,
			wantShares: []int{10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var l lots
			for _, b := range tc.buys {
				lot := NewLot("T", Q(b[0]), M(b[1], "USD"))
				l = l.insert(&lot)
			}
			before := l.total()

			profit := l.sell(Q(tc.sell), M(tc.price, "USD"))

			if want := M(tc.wantProfit, "USD"); !profit.Equal(want) {
				t.Errorf("sell() profit = %s, want %s", profit, want)
			}
			if got, want := l.total(), before.Sub(Q(tc.sell)); !got.Equal(want) {
				t.Errorf("total() = %s after sell, want %s", got, want)
			}
			if len(l) != len(tc.wantShares) {
				t.Fatalf("got %d lots, want %d", len(l), len(tc.wantShares))
			}
			for i, want := range tc.wantShares {
				if got := l[i].Shares; !got.Equal(Q(want)) {
					t.Errorf("lot #%d Shares = %s, want %d", i, got, want)
				}
			}
		})
	}
}
