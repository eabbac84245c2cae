// Package rpcclient wraps btcd batch clients with per-round-trip metrics.
package rpcclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrMissingResponse is returned when a batch reply has no entry for a queued request.
var ErrMissingResponse = errors.New("batch reply has no response for request")

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient sends each call group as one JSON-RPC batch. The wrapped
// client must come from rpcclient.NewBatch and must not be shared between
// goroutines.
type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()

	future := r.client.GetBlockCountAsync()
	if err = r.send(future); err != nil {
		return 0, fmt.Errorf("getblockcount: %w", err)
	}
	return future.Receive()
}

// GetBlockHashes resolves heights to block hashes. An entry is nil when the
// node answered with a null hash.
func (r *ObservedClient) GetBlockHashes(heights []int64) (hashes []*chainhash.Hash, err error) {
	if len(heights) == 0 {
		return nil, nil
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash_batch", err, started)
	}()

	futures := make([]rpcclient.FutureGetBlockHashResult, len(heights))
	pending := make([]chan *rpcclient.Response, len(heights))
	for i, h := range heights {
		futures[i] = r.client.GetBlockHashAsync(h)
		pending[i] = futures[i]
	}
	if err = r.send(pending...); err != nil {
		return nil, fmt.Errorf("getblockhash batch: %w", err)
	}

	hashes = make([]*chainhash.Hash, len(heights))
	for i, future := range futures {
		hash, receiveErr := future.Receive()
		if receiveErr != nil {
			err = fmt.Errorf("getblockhash %d: %w", heights[i], receiveErr)
			return nil, err
		}
		if !hash.IsEqual(&chainhash.Hash{}) {
			hashes[i] = hash
		}
	}
	return hashes, nil
}

// GetBlocksVerboseTx fetches blocks with decoded transactions (verbosity 2).
// An entry is nil when the node answered with a null block or does not know
// the hash.
func (r *ObservedClient) GetBlocksVerboseTx(hashes []*chainhash.Hash) (blocks []*btcjson.GetBlockVerboseTxResult, err error) {
	if len(hashes) == 0 {
		return nil, nil
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose_tx_batch", err, started)
	}()

	futures := make([]rpcclient.FutureGetBlockVerboseTxResult, len(hashes))
	pending := make([]chan *rpcclient.Response, len(hashes))
	for i, hash := range hashes {
		futures[i] = r.client.GetBlockVerboseTxAsync(hash)
		pending[i] = futures[i].Response
	}
	if err = r.send(pending...); err != nil {
		return nil, fmt.Errorf("getblock batch: %w", err)
	}

	blocks = make([]*btcjson.GetBlockVerboseTxResult, len(hashes))
	for i, future := range futures {
		// Receive on the future would retry invalid-parameter errors with a
		// legacy request that is never sent in batch mode.
		raw, receiveErr := rpcclient.ReceiveFuture(future.Response)
		if isNotFound(receiveErr) {
			continue
		}
		if receiveErr != nil {
			err = fmt.Errorf("getblock %s: %w", hashes[i], receiveErr)
			return nil, err
		}
		if isNull(raw) {
			continue
		}
		var block btcjson.GetBlockVerboseTxResult
		if err = json.Unmarshal(raw, &block); err != nil {
			err = fmt.Errorf("decode block %s: %w", hashes[i], err)
			return nil, err
		}
		blocks[i] = &block
	}
	return blocks, nil
}

// GetRawTransactionsVerbose fetches decoded transactions. An entry is nil when
// the node has no information about the transaction.
func (r *ObservedClient) GetRawTransactionsVerbose(txids []*chainhash.Hash) (txs []*btcjson.TxRawResult, err error) {
	if len(txids) == 0 {
		return nil, nil
	}
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_batch", err, started)
	}()

	futures := make([]rpcclient.FutureGetRawTransactionVerboseResult, len(txids))
	pending := make([]chan *rpcclient.Response, len(txids))
	for i, txid := range txids {
		futures[i] = r.client.GetRawTransactionVerboseAsync(txid)
		pending[i] = futures[i]
	}
	if err = r.send(pending...); err != nil {
		return nil, fmt.Errorf("getrawtransaction batch: %w", err)
	}

	txs = make([]*btcjson.TxRawResult, len(txids))
	for i, future := range futures {
		tx, receiveErr := future.Receive()
		if isNotFound(receiveErr) {
			continue
		}
		if receiveErr != nil {
			err = fmt.Errorf("getrawtransaction %s: %w", txids[i], receiveErr)
			return nil, err
		}
		txs[i] = tx
	}
	return txs, nil
}

func (r *ObservedClient) Shutdown() {
	r.client.Shutdown()
}

// send posts the queued batch. Send fills every answered future before it
// returns, so an empty future afterwards has no response and would block.
func (r *ObservedClient) send(pending ...chan *rpcclient.Response) error {
	if err := r.client.Send(); err != nil {
		return err
	}
	for i, future := range pending {
		if len(future) == 0 {
			return fmt.Errorf("%w: request %d of %d", ErrMissingResponse, i+1, len(pending))
		}
	}
	return nil
}

// isNotFound matches both missing transactions and missing blocks; bitcoind
// reports them with the same code.
func isNotFound(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCNoTxInfo
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || string(raw) == "null"
}
