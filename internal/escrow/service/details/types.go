package details

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TxFetcher interface {
		GetRawTransactionsVerbose(ctx context.Context, txids []string) ([]*btcjson.TxRawResult, error)
	}
	DetailsStore interface {
		LoadVerboseTrades() ([]model.TradeDetails, bool, error)
		SaveVerboseTrades(details []model.TradeDetails) error
	}
	SegwitStore interface {
		LoadSegwitCache() ([]*btcjson.TxRawResult, bool, error)
		SaveSegwitCache(txs []*btcjson.TxRawResult) error
	}
)
