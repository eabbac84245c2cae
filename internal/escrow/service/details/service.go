// Package details fetches the verbose transaction bodies of ledger trades and
// the previous transactions of their witness inputs.
package details

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/chain"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/ledger"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"github.com/goodnatureofminers/blockinsight7000-escrow/pkg/workerpool"
	"go.uber.org/zap"
)

const (
	defaultTradeBatch  = 20
	defaultSegwitBatch = 80
	defaultConnections = 4
)

type Config struct {
	// TradeBatch is the number of trades fetched per round trip (up to four transactions each).
	TradeBatch int
	// SegwitBatch is the number of previous transactions fetched per round trip.
	SegwitBatch int
	// Connections bounds the round trips in flight.
	Connections int
	// Cutover is the deposit block time, in seconds, used for the before-cutover count.
	Cutover int64
}

type Service struct {
	fetcher TxFetcher
	details DetailsStore
	segwit  SegwitStore
	cfg     Config
	logger  *zap.Logger
}

func NewService(fetcher TxFetcher, details DetailsStore, segwit SegwitStore, cfg Config, logger *zap.Logger) (*Service, error) {
	if fetcher == nil {
		return nil, errors.New("transaction fetcher is required")
	}
	if cfg.TradeBatch <= 0 {
		cfg.TradeBatch = defaultTradeBatch
	}
	if cfg.SegwitBatch <= 0 {
		cfg.SegwitBatch = defaultSegwitBatch
	}
	if cfg.Connections <= 0 {
		cfg.Connections = defaultConnections
	}
	return &Service{
		fetcher: fetcher,
		details: details,
		segwit:  segwit,
		cfg:     cfg,
		logger:  logger.Named("details"),
	}, nil
}

// Summary describes the detail pass.
type Summary struct {
	Loaded         bool
	Trades         int
	Attached       int
	MissingPayouts int
	BeforeCutover  int
}

// Fetch attaches verbose bodies to every ledger trade. A previously saved
// verbose trade file is reused; otherwise the bodies are fetched from the
// node and saved.
func (s *Service) Fetch(ctx context.Context, l *ledger.Ledger) (Summary, error) {
	details, found, err := s.details.LoadVerboseTrades()
	if err != nil {
		return Summary{}, fmt.Errorf("load verbose trades: %w", err)
	}
	summary := Summary{Loaded: found, Trades: l.Len()}

	if found {
		s.logger.Info("verbose trades loaded", zap.Int("count", len(details)))
	} else {
		details, err = s.fetchDetails(ctx, l.Trades())
		if err != nil {
			return summary, err
		}
		if err := s.details.SaveVerboseTrades(details); err != nil {
			return summary, fmt.Errorf("save verbose trades: %w", err)
		}
	}

	for _, d := range details {
		if err := l.AttachDetails(d); err != nil {
			s.logger.Warn("verbose trade skipped", zap.Error(err))
			continue
		}
		summary.Attached++
	}

	for _, t := range l.Trades() {
		if t.Details == nil || t.Details.Deposit == nil {
			continue
		}
		if t.HasPayout() && t.Details.Payout == nil {
			summary.MissingPayouts++
		}
		if t.Details.Deposit.Blocktime < s.cfg.Cutover {
			summary.BeforeCutover++
		}
	}

	s.logger.Info("trade details ready",
		zap.Int("trades", summary.Trades),
		zap.Int("attached", summary.Attached),
		zap.Int("missing_payouts", summary.MissingPayouts),
		zap.Int("before_cutover", summary.BeforeCutover),
	)
	return summary, nil
}

func (s *Service) fetchDetails(ctx context.Context, trades []*model.Trade) ([]model.TradeDetails, error) {
	batches := chunk(trades, s.cfg.TradeBatch)
	s.logger.Info("fetching trade details",
		zap.Int("trades", len(trades)),
		zap.Int("batches", len(batches)),
	)

	results, err := workerpool.Map(ctx, s.cfg.Connections, batches, s.fetchTradeBatch)
	if err != nil {
		return nil, fmt.Errorf("fetch trade details: %w", err)
	}

	details := make([]model.TradeDetails, 0, len(trades))
	for _, batch := range results {
		details = append(details, batch...)
	}
	return details, nil
}

func (s *Service) fetchTradeBatch(ctx context.Context, trades []*model.Trade) ([]model.TradeDetails, error) {
	txids := make([]string, 0, len(trades)*4)
	for _, t := range trades {
		txids = append(txids, t.InputOne, t.InputTwo, t.Deposit)
		if t.HasPayout() {
			txids = append(txids, t.Payout)
		}
	}

	txs, err := s.fetcher.GetRawTransactionsVerbose(ctx, txids)
	if err != nil {
		return nil, err
	}
	if len(txs) != len(txids) {
		return nil, fmt.Errorf("fetched %d transactions for %d txids", len(txs), len(txids))
	}

	details := make([]model.TradeDetails, 0, len(trades))
	pos := 0
	for _, t := range trades {
		d := model.TradeDetails{InputOne: txs[pos], InputTwo: txs[pos+1], Deposit: txs[pos+2]}
		pos += 3
		if t.HasPayout() {
			d.Payout = txs[pos]
			pos++
			if d.Payout == nil {
				s.logger.Warn("payout not found", zap.String("deposit", t.Deposit), zap.String("payout", t.Payout))
			}
		}
		if d.Deposit == nil {
			s.logger.Warn("deposit not found", zap.String("deposit", t.Deposit))
			continue
		}
		details = append(details, d)
	}
	return details, nil
}

// PrefetchSegwit returns the previous transactions spent by witness inputs of
// every trade's funding transactions. A saved segwit cache is reused;
// otherwise they are fetched from the node and saved. Fetch must have run first.
func (s *Service) PrefetchSegwit(ctx context.Context, l *ledger.Ledger) ([]*btcjson.TxRawResult, error) {
	cached, found, err := s.segwit.LoadSegwitCache()
	if err != nil {
		return nil, fmt.Errorf("load segwit cache: %w", err)
	}
	if found {
		s.logger.Info("segwit cache loaded", zap.Int("count", len(cached)))
		return cached, nil
	}

	funding := make([]*btcjson.TxRawResult, 0, 2*l.Len())
	for _, t := range l.Trades() {
		if t.Details == nil {
			continue
		}
		funding = append(funding, t.Details.InputOne, t.Details.InputTwo)
	}
	txids := chain.WitnessPrevTxIDs(funding...)
	s.logger.Info("fetching segwit inputs", zap.Int("count", len(txids)))

	results, err := workerpool.Map(ctx, s.cfg.Connections, chunk(txids, s.cfg.SegwitBatch), s.fetcher.GetRawTransactionsVerbose)
	if err != nil {
		return nil, fmt.Errorf("fetch segwit inputs: %w", err)
	}

	txs := make([]*btcjson.TxRawResult, 0, len(txids))
	missing := 0
	for _, batch := range results {
		for _, tx := range batch {
			if tx == nil {
				missing++
				continue
			}
			txs = append(txs, tx)
		}
	}
	if missing > 0 {
		s.logger.Warn("segwit inputs not found", zap.Int("count", missing))
	}

	if err := s.segwit.SaveSegwitCache(txs); err != nil {
		return nil, fmt.Errorf("save segwit cache: %w", err)
	}
	return txs, nil
}

func chunk[T any](items []T, size int) [][]T {
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for from := 0; from < len(items); from += size {
		chunks = append(chunks, items[from:min(from+size, len(items))])
	}
	return chunks
}
