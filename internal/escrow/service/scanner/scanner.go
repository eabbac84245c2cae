// Package scanner walks the chain in checkpointed batches and records escrow
// deposits and payouts in the trade ledger.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/classifier"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/ledger"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"go.uber.org/zap"
)

// Config controls the scanned range and pacing.
type Config struct {
	// StartHeight is the lowest height scanned, typically the block of the first escrow trade.
	StartHeight uint64
	// BatchSize is the number of heights fetched per round trip.
	BatchSize int
	// BatchPause is slept between batches to spare the node.
	BatchPause time.Duration
}

// Summary describes a finished scan.
type Summary struct {
	From        uint64
	Next        uint64
	Tip         uint64
	Blocks      int
	Missing     int
	Deposits    int
	Payouts     int
	Interrupted bool
}

type Service struct {
	source      BlockSource
	trades      TradeStore
	checkpoints CheckpointStore
	ledger      *ledger.Ledger
	metrics     Metrics
	logger      *zap.Logger
	sleep       func(context.Context, time.Duration) error
	cfg         Config
	state       state
}

func NewService(
	source BlockSource,
	trades TradeStore,
	checkpoints CheckpointStore,
	l *ledger.Ledger,
	metrics Metrics,
	cfg Config,
	network model.Network,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if l == nil {
		return nil, errors.New("trade ledger is required")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	return &Service{
		source:      source,
		trades:      trades,
		checkpoints: checkpoints,
		ledger:      l,
		metrics:     metrics,
		logger:      logger.With(zap.String("network", string(network))).Named("scanner"),
		sleep:       clock.Pause,
		cfg:         cfg,
	}, nil
}

// Run scans from max(checkpoint, start height) to the tip observed at start.
// Cancelling ctx stops the scan at the next batch boundary; the batch in
// flight is completed and persisted, and Run returns a nil error.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	checkpoint, err := s.checkpoints.LoadCheckpoint()
	if err != nil {
		return Summary{}, fmt.Errorf("load checkpoint: %w", err)
	}
	next := max(checkpoint, s.cfg.StartHeight)

	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("latest height: %w", err)
	}

	summary := Summary{From: next, Next: next, Tip: tip}
	s.logger.Info("scan started",
		zap.Uint64("from", next),
		zap.Uint64("tip", tip),
		zap.Int("known_trades", s.ledger.Len()),
	)

	batch := uint64(s.cfg.BatchSize)
	for next <= tip {
		if ctx.Err() != nil {
			summary.Interrupted = true
			s.logger.Info("interrupt received, stopping at batch boundary", zap.Uint64("next", next))
			break
		}

		end := min(next+batch-1, tip)
		heights := make([]uint64, 0, end-next+1)
		for h := next; h <= end; h++ {
			heights = append(heights, h)
		}

		stats, err := s.processBatch(context.WithoutCancel(ctx), heights)
		if err != nil {
			s.transition(stateIdle)
			return summary, err
		}
		next = end + 1
		summary.Next = next
		summary.Blocks += stats.blocks
		summary.Missing += stats.missing
		summary.Deposits += stats.deposits
		summary.Payouts += stats.payouts

		if s.cfg.BatchPause > 0 && next <= tip {
			if err := s.sleep(ctx, s.cfg.BatchPause); err != nil {
				summary.Interrupted = true
				break
			}
		}
	}

	s.transition(stateDone)
	s.logger.Info("scan finished",
		zap.Uint64("next", summary.Next),
		zap.Int("blocks", summary.Blocks),
		zap.Int("deposits", summary.Deposits),
		zap.Int("payouts", summary.Payouts),
		zap.Bool("interrupted", summary.Interrupted),
	)
	return summary, nil
}

type batchStats struct {
	blocks   int
	missing  int
	deposits int
	payouts  int
}

func (s *Service) processBatch(ctx context.Context, heights []uint64) (stats batchStats, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBatch(err, len(heights), started)
	}()

	s.transition(stateFetching)
	blocks, err := s.source.FetchBlocks(ctx, heights)
	if err != nil {
		return stats, fmt.Errorf("fetch blocks %d..%d: %w", heights[0], heights[len(heights)-1], err)
	}

	s.transition(stateClassifying)
	for i, block := range blocks {
		if block == nil {
			stats.missing++
			s.logger.Warn("block not found", zap.Uint64("height", heights[i]))
			continue
		}
		deposits, payouts := s.classifyBlock(block)
		stats.blocks++
		stats.deposits += deposits
		stats.payouts += payouts
	}

	s.transition(statePersisting)
	if stats.deposits > 0 || stats.payouts > 0 {
		if err = s.trades.SaveTrades(s.ledger.Snapshot()); err != nil {
			return stats, fmt.Errorf("save trades: %w", err)
		}
	}
	nextHeight := heights[len(heights)-1] + 1
	if err = s.checkpoints.SaveCheckpoint(nextHeight); err != nil {
		return stats, fmt.Errorf("save checkpoint: %w", err)
	}
	s.metrics.SetCheckpoint(nextHeight)

	s.transition(stateIdle)
	s.logger.Info("batch processed",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
		zap.Int("deposits", stats.deposits),
		zap.Int("payouts", stats.payouts),
		zap.Int("trades", s.ledger.Len()),
	)
	return stats, nil
}

// classifyBlock records deposits and payouts of a block in transaction order,
// so a payout spending a deposit from the same block is recognised.
func (s *Service) classifyBlock(block *btcjson.GetBlockVerboseTxResult) (deposits, payouts int) {
	for i := range block.Tx {
		// the first transaction is the coinbase
		if i == 0 {
			continue
		}
		tx := &block.Tx[i]
		if classifier.ClassifyDeposit(tx) {
			if s.ledger.AddDeposit(classifier.NewTrade(tx, block.Hash)) {
				deposits++
				s.metrics.ObserveMatch(matchDeposit)
				fields := []zap.Field{zap.String("txid", tx.Txid), zap.Int64("height", block.Height)}
				if amount, err := classifier.EscrowAmount(tx); err == nil {
					fields = append(fields, zap.Stringer("escrow", amount))
				}
				s.logger.Info("deposit identified", fields...)
			}
			continue
		}
		if classifier.ClassifyPayout(tx, s.ledger) {
			if s.ledger.SetPayout(tx.Vin[0].Txid, tx.Txid) {
				payouts++
				s.metrics.ObserveMatch(matchPayout)
				s.logger.Info("payout identified",
					zap.String("txid", tx.Txid),
					zap.String("deposit", tx.Vin[0].Txid),
					zap.Int64("height", block.Height),
				)
			}
		}
	}
	return deposits, payouts
}

func (s *Service) transition(to state) {
	if s.state == to {
		return
	}
	s.logger.Debug("state transition", zap.Stringer("from", s.state), zap.Stringer("to", to))
	s.state = to
}
