package filestore

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/btcsuite/btcd/btcjson"
)

// LoadSegwitCache reads the previous transactions of witness inputs. found is
// false when the cache file does not exist yet.
func (r *Repository) LoadSegwitCache() (txs []*btcjson.TxRawResult, found bool, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("load_segwit_cache", err, started)
	}()

	if r.paths.SegwitCache == "" {
		return nil, false, errors.New("segwit cache path is required")
	}
	f, err := openIfExists(r.paths.SegwitCache)
	if err != nil || f == nil {
		return nil, false, err
	}
	defer f.Close()

	err = decodeArray(f, func(tx *btcjson.TxRawResult) error {
		if tx != nil {
			txs = append(txs, tx)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", r.paths.SegwitCache, err)
	}
	return txs, true, nil
}

// SaveSegwitCache replaces the segwit cache file.
func (r *Repository) SaveSegwitCache(txs []*btcjson.TxRawResult) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_segwit_cache", err, started)
	}()

	if r.paths.SegwitCache == "" {
		return errors.New("segwit cache path is required")
	}
	return writeAtomic(r.paths.SegwitCache, func(w io.Writer) error {
		return encodeArray(w, txs)
	})
}
