// Package ledger keeps the set of identified trades keyed by deposit txid.
package ledger

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// Ledger is an insertion ordered map of deposit txid to trade. It is owned by
// a single goroutine and is not safe for concurrent use.
type Ledger struct {
	trades map[string]*model.Trade
	order  []string
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{trades: make(map[string]*model.Trade)}
}

// FromTrades builds a ledger from persisted trades, keeping the first record of a duplicated deposit.
func FromTrades(trades []model.Trade) *Ledger {
	l := New()
	l.Merge(trades)
	return l
}

// AddDeposit records a newly identified deposit. It returns false when the
// deposit is already known, leaving the existing record untouched.
func (l *Ledger) AddDeposit(trade model.Trade) bool {
	if trade.Deposit == "" {
		return false
	}
	if _, ok := l.trades[trade.Deposit]; ok {
		return false
	}
	t := trade
	l.trades[t.Deposit] = &t
	l.order = append(l.order, t.Deposit)
	return true
}

// HasDeposit reports whether txid is a known deposit.
func (l *Ledger) HasDeposit(txid string) bool {
	_, ok := l.trades[txid]
	return ok
}

// SetPayout links a payout to its deposit. The first observed payout wins;
// the return value reports whether the ledger changed.
func (l *Ledger) SetPayout(deposit, payout string) bool {
	t, ok := l.trades[deposit]
	if !ok || t.Payout != "" {
		return false
	}
	t.Payout = payout
	return true
}

// Get returns the trade of a deposit.
func (l *Ledger) Get(deposit string) (*model.Trade, bool) {
	t, ok := l.trades[deposit]
	return t, ok
}

// Len returns the number of trades.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Trades returns the trades in insertion order. The pointers alias ledger state.
func (l *Ledger) Trades() []*model.Trade {
	out := make([]*model.Trade, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.trades[id])
	}
	return out
}

// Snapshot returns a copy of the compact records in insertion order.
func (l *Ledger) Snapshot() []model.Trade {
	out := make([]model.Trade, 0, len(l.order))
	for _, id := range l.order {
		t := *l.trades[id]
		t.Details = nil
		out = append(out, t)
	}
	return out
}

// Merge adds trades that are not yet known and fills in payouts missing from
// known ones. It returns the number of new deposits.
func (l *Ledger) Merge(trades []model.Trade) int {
	added := 0
	for _, t := range trades {
		if l.AddDeposit(t) {
			added++
			continue
		}
		if t.Payout != "" {
			l.SetPayout(t.Deposit, t.Payout)
		}
	}
	return added
}

// AttachDetails stores the verbose bodies of a known trade.
func (l *Ledger) AttachDetails(details model.TradeDetails) error {
	deposit := details.DepositID()
	t, ok := l.trades[deposit]
	if !ok {
		return fmt.Errorf("details for unknown deposit %q", deposit)
	}
	d := details
	t.Details = &d
	return nil
}
