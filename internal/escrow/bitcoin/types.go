package bitcoin

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BatchClient sends groups of node calls as single JSON-RPC batches.
	BatchClient interface {
		GetBlockCount() (int64, error)
		GetBlockHashes(heights []int64) ([]*chainhash.Hash, error)
		GetBlocksVerboseTx(hashes []*chainhash.Hash) ([]*btcjson.GetBlockVerboseTxResult, error)
		GetRawTransactionsVerbose(txids []*chainhash.Hash) ([]*btcjson.TxRawResult, error)
		Shutdown()
	}
	// BlockRPC is the subset of node calls a BlockSource needs.
	BlockRPC interface {
		GetBlockCount(ctx context.Context) (int64, error)
		GetBlockHashes(ctx context.Context, heights []int64) ([]string, error)
		GetBlocksVerboseTx(ctx context.Context, hashes []string) ([]*btcjson.GetBlockVerboseTxResult, error)
	}
)
