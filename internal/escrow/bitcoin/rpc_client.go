package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

// RPCClient exposes the node calls used by the analyser. Calls are spread
// over a fixed pool of batch clients and paced by a shared limiter.
type RPCClient struct {
	newClient func() (BatchClient, error)
	clients   chan BatchClient
	limiter   ratelimit.Limiter
}

// NewRPCClient builds a client pool of the given size. Pool slots are filled
// lazily with newClient, and a client whose batch failed is shut down and
// replaced on next use.
func NewRPCClient(newClient func() (BatchClient, error), connections int, limiter ratelimit.Limiter) *RPCClient {
	if connections <= 0 {
		connections = 1
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	clients := make(chan BatchClient, connections)
	for i := 0; i < connections; i++ {
		clients <- nil
	}
	return &RPCClient{
		newClient: newClient,
		clients:   clients,
		limiter:   limiter,
	}
}

// GetBlockCount returns the height of the most-work chain tip.
func (r *RPCClient) GetBlockCount(ctx context.Context) (count int64, err error) {
	err = r.do(ctx, func(client BatchClient) error {
		count, err = client.GetBlockCount()
		return err
	})
	return count, err
}

// GetBlockHashes resolves heights to block hashes in one batch. A height the
// node does not know yields an empty string.
func (r *RPCClient) GetBlockHashes(ctx context.Context, heights []int64) ([]string, error) {
	if len(heights) == 0 {
		return nil, nil
	}
	var hashes []*chainhash.Hash
	err := r.do(ctx, func(client BatchClient) (err error) {
		hashes, err = client.GetBlockHashes(heights)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]string, len(heights))
	for i, hash := range hashes {
		if hash != nil {
			out[i] = hash.String()
		}
	}
	return out, nil
}

// GetBlocksVerboseTx fetches blocks with decoded transactions in one batch.
// Entries for unknown hashes are nil.
func (r *RPCClient) GetBlocksVerboseTx(ctx context.Context, hashes []string) (blocks []*btcjson.GetBlockVerboseTxResult, err error) {
	if len(hashes) == 0 {
		return nil, nil
	}
	parsed, err := parseHashes(hashes)
	if err != nil {
		return nil, fmt.Errorf("block hash: %w", err)
	}
	err = r.do(ctx, func(client BatchClient) (err error) {
		blocks, err = client.GetBlocksVerboseTx(parsed)
		return err
	})
	return blocks, err
}

// GetRawTransactionsVerbose fetches decoded transactions in one batch.
// Entries for transactions the node cannot find are nil.
func (r *RPCClient) GetRawTransactionsVerbose(ctx context.Context, txids []string) (txs []*btcjson.TxRawResult, err error) {
	if len(txids) == 0 {
		return nil, nil
	}
	parsed, err := parseHashes(txids)
	if err != nil {
		return nil, fmt.Errorf("txid: %w", err)
	}
	err = r.do(ctx, func(client BatchClient) (err error) {
		txs, err = client.GetRawTransactionsVerbose(parsed)
		return err
	})
	return txs, err
}

// Close shuts down every pooled client. It waits for calls in flight.
func (r *RPCClient) Close() {
	for i := 0; i < cap(r.clients); i++ {
		if client := <-r.clients; client != nil {
			client.Shutdown()
		}
	}
}

// do runs call on a pooled client. The node calls themselves are not
// cancellable, so ctx only bounds the wait for a free client.
func (r *RPCClient) do(ctx context.Context, call func(BatchClient) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var client BatchClient
	select {
	case <-ctx.Done():
		return ctx.Err()
	case client = <-r.clients:
	}

	if client == nil {
		created, err := r.newClient()
		if err != nil {
			r.clients <- nil
			return fmt.Errorf("create rpc client: %w", err)
		}
		client = created
	}

	r.limiter.Take()
	if err := call(client); err != nil {
		// A failed batch can leave requests queued on the client.
		client.Shutdown()
		r.clients <- nil
		return err
	}
	r.clients <- client
	return nil
}

func parseHashes(values []string) ([]*chainhash.Hash, error) {
	hashes := make([]*chainhash.Hash, len(values))
	for i, value := range values {
		hash, err := chainhash.NewHashFromStr(value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", value, err)
		}
		hashes[i] = hash
	}
	return hashes, nil
}
