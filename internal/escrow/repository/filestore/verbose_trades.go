package filestore

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// LoadVerboseTrades reads cached transaction bodies. found is false when the
// cache file does not exist yet.
func (r *Repository) LoadVerboseTrades() (details []model.TradeDetails, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("load_verbose_trades", err, started)
	}()

	if r.paths.VerboseTrades == "" {
		return nil, false, errors.New("verbose trade file path is required")
	}
	f, err := openIfExists(r.paths.VerboseTrades)
	if err != nil || f == nil {
		return nil, false, err
	}
	defer f.Close()

	err = decodeArray(f, func(d model.TradeDetails) error {
		details = append(details, d)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", r.paths.VerboseTrades, err)
	}
	return details, true, nil
}

// SaveVerboseTrades replaces the cached transaction bodies.
func (r *Repository) SaveVerboseTrades(details []model.TradeDetails) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_verbose_trades", err, started)
	}()

	if r.paths.VerboseTrades == "" {
		return errors.New("verbose trade file path is required")
	}
	return writeAtomic(r.paths.VerboseTrades, func(w io.Writer) error {
		return encodeArray(w, details)
	})
}
