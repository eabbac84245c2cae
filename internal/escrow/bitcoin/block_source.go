// Package bitcoin implements the node facing side of the escrow analyser:
// RPC access, block retrieval and address decoding.
package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-escrow/pkg/safe"
)

// BlockSource retrieves verbose blocks by height in batches.
type BlockSource struct {
	rpc BlockRPC
}

// NewBlockSource creates a BlockSource backed by the given RPC client.
func NewBlockSource(rpc BlockRPC) *BlockSource {
	return &BlockSource{rpc: rpc}
}

// LatestHeight returns the latest block height available from the node.
func (s *BlockSource) LatestHeight(ctx context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount(ctx)
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlocks returns the blocks at the given heights, in the same order.
// A height the node cannot serve yields a nil entry.
func (s *BlockSource) FetchBlocks(ctx context.Context, heights []uint64) ([]*btcjson.GetBlockVerboseTxResult, error) {
	if len(heights) == 0 {
		return nil, nil
	}
	requested, err := safe.Int64s(heights)
	if err != nil {
		return nil, fmt.Errorf("block height: %w", err)
	}

	hashes, err := s.rpc.GetBlockHashes(ctx, requested)
	if err != nil {
		return nil, fmt.Errorf("get block hashes %d..%d: %w", heights[0], heights[len(heights)-1], err)
	}

	known := make([]string, 0, len(hashes))
	positions := make([]int, 0, len(hashes))
	for i, hash := range hashes {
		if hash == "" {
			continue
		}
		if _, err := chainhash.NewHashFromStr(hash); err != nil {
			return nil, fmt.Errorf("block hash at height %d: %w", heights[i], err)
		}
		known = append(known, hash)
		positions = append(positions, i)
	}

	blocks := make([]*btcjson.GetBlockVerboseTxResult, len(heights))
	if len(known) == 0 {
		return blocks, nil
	}
	fetched, err := s.rpc.GetBlocksVerboseTx(ctx, known)
	if err != nil {
		return nil, fmt.Errorf("get blocks %d..%d: %w", heights[0], heights[len(heights)-1], err)
	}
	if len(fetched) != len(known) {
		return nil, fmt.Errorf("get blocks: requested %d, received %d", len(known), len(fetched))
	}
	for i, block := range fetched {
		blocks[positions[i]] = block
	}
	return blocks, nil
}
