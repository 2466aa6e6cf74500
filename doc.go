// Package statement computes the chronological trading statement of a single
// investor out of two independent event streams: the trades the investor
// executed (buy and sell orders) and the corporate actions of the securities
// (stock splits and dividend payouts).
//
// The core is a lot-based cost-basis ledger:
//   - LotLedger: one Lot per purchase, kept sorted by unit price. A sale
//     drains the cheapest lots first and realizes a profit, negative for a
//     loss. A split scales the shares and the unit price of every lot.
//   - Account: the ledger plus the cumulative dividend income.
//   - Merge: the stable merge of both streams. A corporate action takes
//     effect at the start of its day, before any trade of that day.
//   - Engine and Generate: the fold of the merged events over one Account,
//     producing one Block per event.
//
// Inputs are decoded from JSON documents or JSONL streams (DecodeDocument,
// DecodeTrades, DecodeCorporateActions). Blocks are rendered by the renderer
// package, and the stmt command line tool wires everything together.
package statement
