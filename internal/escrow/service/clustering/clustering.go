// Package clustering runs the clustering phase end to end: trade details,
// witness input bodies, the clustering pass and its outputs.
package clustering

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/chain"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/cluster"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/ledger"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

type Config struct {
	Network model.Network
	Cutover int64
}

// Result describes a clustering run.
type Result struct {
	RunID    string
	Stats    cluster.Stats
	Summary  cluster.Summary
	Exported int
}

type Service struct {
	arbitrated ArbitratedLoader
	details    DetailsProvider
	index      IndexStore
	exporter   ClusterExporter
	metrics    Metrics
	cfg        Config
	logger     *zap.Logger
	newRunID   func() string
}

// NewService wires the clustering phase. exporter may be nil, in which case
// clusters are only written to the index file.
func NewService(
	arbitrated ArbitratedLoader,
	details DetailsProvider,
	index IndexStore,
	exporter ClusterExporter,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if arbitrated == nil || details == nil || index == nil {
		return nil, errors.New("arbitrated loader, details provider and index store are required")
	}
	if cfg.Network == "" {
		cfg.Network = model.Mainnet
	}
	if cfg.Cutover == 0 {
		cfg.Cutover = cluster.DefaultCutover
	}
	return &Service{
		arbitrated: arbitrated,
		details:    details,
		index:      index,
		exporter:   exporter,
		metrics:    metrics,
		cfg:        cfg,
		logger:     logger.With(zap.String("network", string(cfg.Network))).Named("clustering"),
		newRunID:   uuid.NewString,
	}, nil
}

func (s *Service) Run(ctx context.Context, l *ledger.Ledger) (Result, error) {
	result := Result{RunID: s.newRunID()}

	arbitrated, err := s.arbitrated.LoadArbitrated()
	if err != nil {
		return result, fmt.Errorf("load arbitrated trades: %w", err)
	}
	if _, err := s.details.Fetch(ctx, l); err != nil {
		return result, fmt.Errorf("trade details: %w", err)
	}
	segwit, err := s.details.PrefetchSegwit(ctx, l)
	if err != nil {
		return result, fmt.Errorf("segwit inputs: %w", err)
	}

	decoder, err := bitcoin.NewScriptDecoder(s.cfg.Network)
	if err != nil {
		return result, err
	}
	deriver, err := bitcoin.NewAddressDeriver(s.cfg.Network)
	if err != nil {
		return result, err
	}

	engine := cluster.NewEngine()
	clusterer := cluster.NewClusterer(
		engine,
		chain.NewInputResolver(decoder, segwit),
		deriver,
		decoder,
		s.metrics,
		cluster.Options{Cutover: s.cfg.Cutover, Arbitrated: arbitrated},
		s.logger,
	)

	result.Stats = clusterer.Run(l.Trades())
	result.Summary = engine.Summary()
	s.logger.Info("clustering finished",
		zap.String("run_id", result.RunID),
		zap.String("addresses", humanize.Comma(int64(result.Summary.Addresses))),
		zap.String("clusters", humanize.Comma(int64(result.Summary.Clusters))),
		zap.String("cluster_entries", humanize.Comma(int64(result.Summary.Entries))),
		zap.Int("clustered", result.Stats.Clustered),
		zap.Int("no_payout", result.Stats.NoPayout),
		zap.Int("arbitrated", result.Stats.Arbitrated),
		zap.Int("incomplete", result.Stats.Incomplete),
		zap.Int("after_cutover", result.Stats.AfterCutover),
		zap.Int("payout_shape", result.Stats.PayoutShape),
		zap.Int("ordering", result.Stats.Ordering),
		zap.Int("unresolved", result.Stats.Unresolved),
		zap.Int("malformed", result.Stats.Malformed),
	)

	index := engine.Index()
	if err := s.index.SaveClusterIndex(index); err != nil {
		return result, fmt.Errorf("save cluster index: %w", err)
	}

	if s.exporter != nil {
		rows := clusterRows(result.RunID, index)
		if err := s.exporter.InsertAddressClusters(ctx, rows); err != nil {
			return result, fmt.Errorf("export clusters: %w", err)
		}
		result.Exported = len(rows)
		s.logger.Info("clusters exported", zap.String("rows", humanize.Comma(int64(result.Exported))))
	}
	return result, nil
}

// clusterRows flattens index ordered by address.
func clusterRows(runID string, index model.AddressIndex) []model.ClusterRow {
	addrs := make([]string, 0, len(index))
	for addr := range index {
		addrs = append(addrs, addr)
	}
	slices.Sort(addrs)

	rows := make([]model.ClusterRow, 0, len(addrs))
	for _, addr := range addrs {
		rows = append(rows, model.ClusterRow{RunID: runID, Address: addr, ClusterID: uint64(index[addr])})
	}
	return rows
}
