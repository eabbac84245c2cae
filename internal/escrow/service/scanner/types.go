package scanner

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlocks(ctx context.Context, heights []uint64) ([]*btcjson.GetBlockVerboseTxResult, error)
	}
	TradeStore interface {
		SaveTrades(trades []model.Trade) error
	}
	CheckpointStore interface {
		LoadCheckpoint() (uint64, error)
		SaveCheckpoint(height uint64) error
	}
	Metrics interface {
		ObserveBatch(err error, blocks int, started time.Time)
		ObserveMatch(kind string)
		SetCheckpoint(height uint64)
	}
)
