package validation

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatisticsReader interface {
		TradeStatistics2Count(ctx context.Context) (uint64, error)
		TradeStatistics2LatestDates(ctx context.Context) (model.StatisticsDates, error)
		TradeStatistics2DepositTxIDs(ctx context.Context) ([]string, error)
		TradeStatistics3Count(ctx context.Context) (uint64, error)
		TradeStatistics3CleanedCount(ctx context.Context) (uint64, error)
		TradeStatistics3CountBefore(ctx context.Context, dateMs int64) (uint64, error)
	}
	TxFetcher interface {
		GetRawTransactionsVerbose(ctx context.Context, txids []string) ([]*btcjson.TxRawResult, error)
	}
)
