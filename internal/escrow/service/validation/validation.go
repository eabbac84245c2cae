// Package validation cross-checks the trade ledger against the published
// trade statistics datasets.
package validation

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/ledger"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"github.com/goodnatureofminers/blockinsight7000-escrow/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	// DefaultDateLimit is the cutover block time in milliseconds, the unit
	// of the statistics datasets.
	DefaultDateLimit int64 = 1612981296655

	defaultLookupBatch = 80
	defaultConnections = 1
)

type Config struct {
	// DateLimit bounds the date limited counts, in milliseconds.
	DateLimit int64
	// LookupBatch is the number of missed deposits looked up per round trip.
	LookupBatch int
	// Connections bounds the lookups in flight.
	Connections int
}

// Statistics2Report compares the ledger with trade_statistics2, which
// records deposit txids.
type Statistics2Report struct {
	Total   uint64
	Latest  model.StatisticsDates
	Cleaned int
	Matches int
	Missed  int
	// MissedOnChain counts missed deposits the node knows; the rest do not exist.
	MissedOnChain int
	// ReverseMatches and Overshoot split ledger trades older than the latest
	// statistics trade by presence in the dataset.
	ReverseMatches int
	Overshoot      int
}

// Statistics3Report compares ledger counts with trade_statistics3, which
// carries no deposit txids.
type Statistics3Report struct {
	Total         uint64
	Cleaned       uint64
	CleanedBefore uint64
	LedgerBefore  int
}

type Report struct {
	Statistics2 Statistics2Report
	Statistics3 Statistics3Report
}

type Service struct {
	stats   StatisticsReader
	fetcher TxFetcher
	cfg     Config
	logger  *zap.Logger
}

func NewService(stats StatisticsReader, fetcher TxFetcher, cfg Config, logger *zap.Logger) (*Service, error) {
	if stats == nil {
		return nil, errors.New("statistics reader is required")
	}
	if fetcher == nil {
		return nil, errors.New("transaction fetcher is required")
	}
	if cfg.DateLimit == 0 {
		cfg.DateLimit = DefaultDateLimit
	}
	if cfg.LookupBatch <= 0 {
		cfg.LookupBatch = defaultLookupBatch
	}
	if cfg.Connections <= 0 {
		cfg.Connections = defaultConnections
	}
	return &Service{stats: stats, fetcher: fetcher, cfg: cfg, logger: logger.Named("validation")}, nil
}

// Validate runs both comparisons. Ledger trades need attached details for
// the date based counts; trades without a deposit body are left out of them.
func (s *Service) Validate(ctx context.Context, l *ledger.Ledger) (Report, error) {
	ts2, err := s.validateStatistics2(ctx, l)
	if err != nil {
		return Report{}, fmt.Errorf("trade_statistics2: %w", err)
	}
	ts3, err := s.validateStatistics3(ctx, l)
	if err != nil {
		return Report{}, fmt.Errorf("trade_statistics3: %w", err)
	}
	return Report{Statistics2: ts2, Statistics3: ts3}, nil
}

func (s *Service) validateStatistics2(ctx context.Context, l *ledger.Ledger) (Statistics2Report, error) {
	var report Statistics2Report
	var err error

	if report.Total, err = s.stats.TradeStatistics2Count(ctx); err != nil {
		return report, err
	}
	if report.Latest, err = s.stats.TradeStatistics2LatestDates(ctx); err != nil {
		return report, err
	}
	deposits, err := s.stats.TradeStatistics2DepositTxIDs(ctx)
	if err != nil {
		return report, err
	}
	report.Cleaned = len(deposits)

	published := make(map[string]struct{}, len(deposits))
	missed := make([]string, 0)
	for _, txid := range deposits {
		published[txid] = struct{}{}
		if !l.HasDeposit(txid) {
			missed = append(missed, txid)
		}
	}
	report.Missed = len(missed)
	report.Matches = report.Cleaned - report.Missed

	if report.MissedOnChain, err = s.countOnChain(ctx, missed); err != nil {
		return report, err
	}

	latestTrade := report.Latest.LatestTradeDate / 1000
	for _, t := range l.Trades() {
		if t.Details == nil || t.Details.Deposit == nil || t.Details.Deposit.Blocktime >= latestTrade {
			continue
		}
		if _, ok := published[t.Deposit]; ok {
			report.ReverseMatches++
		} else {
			report.Overshoot++
		}
	}

	s.logger.Info("trade_statistics2 compared",
		zap.Uint64("total", report.Total),
		zap.Int("cleaned", report.Cleaned),
		zap.Time("latest_trade", report.Latest.LatestTrade()),
		zap.Int("matches", report.Matches),
		zap.Int("missed", report.Missed),
		zap.Int("missed_on_chain", report.MissedOnChain),
		zap.Int("reverse_matches", report.ReverseMatches),
		zap.Int("overshoot", report.Overshoot),
	)
	return report, nil
}

func (s *Service) countOnChain(ctx context.Context, txids []string) (int, error) {
	var batches [][]string
	for from := 0; from < len(txids); from += s.cfg.LookupBatch {
		batches = append(batches, txids[from:min(from+s.cfg.LookupBatch, len(txids))])
	}

	counts, err := workerpool.Map(ctx, s.cfg.Connections, batches, func(ctx context.Context, batch []string) (int, error) {
		txs, err := s.fetcher.GetRawTransactionsVerbose(ctx, batch)
		if err != nil {
			return 0, err
		}
		found := 0
		for _, tx := range txs {
			if tx != nil {
				found++
			}
		}
		return found, nil
	})
	if err != nil {
		return 0, fmt.Errorf("look up missed deposits: %w", err)
	}

	found := 0
	for _, n := range counts {
		found += n
	}
	return found, nil
}

func (s *Service) validateStatistics3(ctx context.Context, l *ledger.Ledger) (Statistics3Report, error) {
	var report Statistics3Report
	var err error

	if report.Total, err = s.stats.TradeStatistics3Count(ctx); err != nil {
		return report, err
	}
	if report.Cleaned, err = s.stats.TradeStatistics3CleanedCount(ctx); err != nil {
		return report, err
	}
	if report.CleanedBefore, err = s.stats.TradeStatistics3CountBefore(ctx, s.cfg.DateLimit); err != nil {
		return report, err
	}

	limit := s.cfg.DateLimit / 1000
	for _, t := range l.Trades() {
		if t.Details != nil && t.Details.Deposit != nil && t.Details.Deposit.Blocktime < limit {
			report.LedgerBefore++
		}
	}

	s.logger.Info("trade_statistics3 compared",
		zap.Uint64("total", report.Total),
		zap.Uint64("cleaned", report.Cleaned),
		zap.Uint64("cleaned_before_limit", report.CleanedBefore),
		zap.Int("ledger_before_limit", report.LedgerBefore),
	)
	return report, nil
}
