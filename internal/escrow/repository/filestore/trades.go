package filestore

import (
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// LoadTrades reads the compact trade file. A missing file yields no trades.
func (r *Repository) LoadTrades() (trades []model.Trade, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("load_trades", err, started)
	}()

	f, err := openIfExists(r.paths.Trades)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()

	err = decodeArray(f, func(t model.Trade) error {
		trades = append(trades, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.paths.Trades, err)
	}
	return trades, nil
}

// SaveTrades replaces the compact trade file.
func (r *Repository) SaveTrades(trades []model.Trade) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_trades", err, started)
	}()

	return writeAtomic(r.paths.Trades, func(w io.Writer) error {
		return encodeArray(w, trades)
	})
}
