package clustering

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/ledger"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/service/details"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ArbitratedLoader interface {
		LoadArbitrated() (map[string]struct{}, error)
	}
	DetailsProvider interface {
		Fetch(ctx context.Context, l *ledger.Ledger) (details.Summary, error)
		PrefetchSegwit(ctx context.Context, l *ledger.Ledger) ([]*btcjson.TxRawResult, error)
	}
	IndexStore interface {
		SaveClusterIndex(index model.AddressIndex) error
	}
	ClusterExporter interface {
		InsertAddressClusters(ctx context.Context, rows []model.ClusterRow) error
	}
	Metrics interface {
		ObserveTrade(outcome string)
	}
)
