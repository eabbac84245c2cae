// Package chain resolves transaction inputs against previously fetched transactions.
package chain

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
)

// ErrUnresolvedInput is returned when the transaction an input spends is not cached.
var ErrUnresolvedInput = errors.New("unresolved input")

// AddressDecoder extracts the destination address of an output.
type AddressDecoder interface {
	OutputAddress(vout btcjson.Vout) (string, error)
}

// InputResolver maps witness inputs to the address of the output they spend.
// Witness inputs carry no public key in scriptSig, so the address is read from
// the previous transaction instead.
type InputResolver struct {
	decoder AddressDecoder
	txs     map[string]*btcjson.TxRawResult
}

// NewInputResolver builds a resolver seeded with previously fetched transactions.
func NewInputResolver(decoder AddressDecoder, txs []*btcjson.TxRawResult) *InputResolver {
	r := &InputResolver{
		decoder: decoder,
		txs:     make(map[string]*btcjson.TxRawResult, len(txs)),
	}
	for _, tx := range txs {
		r.Add(tx)
	}
	return r
}

// Add caches a transaction by txid.
func (r *InputResolver) Add(tx *btcjson.TxRawResult) {
	if tx == nil || tx.Txid == "" {
		return
	}
	r.txs[tx.Txid] = tx
}

// Has reports whether txid is cached.
func (r *InputResolver) Has(txid string) bool {
	_, ok := r.txs[txid]
	return ok
}

// Len returns the number of cached transactions.
func (r *InputResolver) Len() int {
	return len(r.txs)
}

// Resolve returns the address of the output spent by vin.
func (r *InputResolver) Resolve(vin btcjson.Vin) (string, error) {
	prev, ok := r.txs[vin.Txid]
	if !ok {
		return "", fmt.Errorf("%w: %s:%d not cached", ErrUnresolvedInput, vin.Txid, vin.Vout)
	}
	if int(vin.Vout) >= len(prev.Vout) {
		return "", fmt.Errorf("%w: %s has %d outputs, input spends %d", ErrUnresolvedInput, vin.Txid, len(prev.Vout), vin.Vout)
	}
	addr, err := r.decoder.OutputAddress(prev.Vout[vin.Vout])
	if err != nil {
		return "", fmt.Errorf("resolve %s:%d: %w", vin.Txid, vin.Vout, err)
	}
	return addr, nil
}

// WitnessPrevTxIDs lists, without duplicates and in first-seen order, the
// transactions spent by witness inputs of txs.
func WitnessPrevTxIDs(txs ...*btcjson.TxRawResult) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, tx := range txs {
		if tx == nil {
			continue
		}
		for _, vin := range tx.Vin {
			if !vin.HasWitness() || vin.IsCoinBase() {
				continue
			}
			if _, dup := seen[vin.Txid]; dup {
				continue
			}
			seen[vin.Txid] = struct{}{}
			out = append(out, vin.Txid)
		}
	}
	return out
}
