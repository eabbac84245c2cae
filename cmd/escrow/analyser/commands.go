package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/ledger"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/repository/filestore"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/service/arbitration"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/service/clustering"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/service/details"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/service/scanner"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/service/validation"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/metrics"
	observedrpc "github.com/goodnatureofminers/blockinsight7000-escrow/internal/pkg/btcd/rpcclient"
)

type boundCommand interface {
	bind(ctx context.Context, logger *zap.Logger)
}

type base struct {
	ctx    context.Context
	logger *zap.Logger
}

func (b *base) bind(ctx context.Context, logger *zap.Logger) {
	b.ctx = ctx
	b.logger = logger
}

type ingestCommand struct {
	base
	StartHeight uint64        `long:"start-height" env:"ESCROW_START_HEIGHT" description:"height of the first escrow trade; scanning never starts below it" default:"0"`
	BatchSize   int           `long:"batch-size" env:"ESCROW_BATCH_SIZE" description:"blocks fetched per round trip" default:"5"`
	BatchPause  time.Duration `long:"batch-pause" env:"ESCROW_BATCH_PAUSE" description:"pause between batches" default:"0s"`
}

type detailsCommand struct {
	base
	TradeBatch  int `long:"trade-batch" env:"ESCROW_TRADE_BATCH" description:"trades fetched per round trip" default:"20"`
	SegwitBatch int `long:"segwit-batch" env:"ESCROW_SEGWIT_BATCH" description:"witness input transactions fetched per round trip" default:"80"`
}

type clusterCommand struct {
	detailsCommand
	ClickHouseDSN string `long:"clickhouse-dsn" env:"ESCROW_CLICKHOUSE_DSN" description:"export clusters to ClickHouse when set"`
}

type arbitrationCommand struct {
	base
}

type validateCommand struct {
	detailsCommand
	ClickHouseDSN string `long:"clickhouse-dsn" env:"ESCROW_CLICKHOUSE_DSN" description:"ClickHouse DSN holding the trade statistics datasets"`
	DateLimit     int64  `long:"date-limit" env:"ESCROW_DATE_LIMIT" description:"trade date bound, in milliseconds, for the limited counts" default:"1612981296655"`
}

func addCommands(parser *flags.Parser) {
	must := func(_ *flags.Command, err error) {
		if err != nil {
			panic(err)
		}
	}
	must(parser.AddCommand("ingest", "scan the chain for escrow trades",
		"Scans blocks from the checkpoint to the tip and records escrow deposits and payouts.", &ingestCommand{}))
	must(parser.AddCommand("details", "fetch verbose trade transactions",
		"Fetches deposit, payout and funding transactions of every recorded trade.", &detailsCommand{}))
	must(parser.AddCommand("cluster", "cluster trade party addresses",
		"Groups addresses of trade parties into clusters and writes the address index.", &clusterCommand{}))
	must(parser.AddCommand("arbitration-export", "export btcdeb commands for legacy payouts",
		"Writes a btcdeb command for every trade paid out through the legacy arbitration protocol.", &arbitrationCommand{}))
	must(parser.AddCommand("validate", "cross-check the ledger with trade statistics",
		"Compares recorded trades with the trade statistics datasets stored in ClickHouse.", &validateCommand{}))
}

func newFileStore() (*filestore.Repository, error) {
	return filestore.NewRepository(filestore.Paths{
		Trades:         opts.Files.Trades,
		VerboseTrades:  opts.Files.VerboseTrades,
		Checkpoint:     opts.Files.Checkpoint,
		SegwitCache:    opts.Files.SegwitCache,
		Arbitrated:     opts.Files.Arbitrated,
		ClusterIndex:   opts.Files.ClusterIndex,
		BtcdebCommands: opts.Files.BtcdebCommands,
	}, metrics.NewRepository("file"))
}

func newRPCClient() (*bitcoin.RPCClient, error) {
	cfg, err := rpcConnConfig(opts.RPCURL, opts.RPCUser, opts.RPCPassword)
	if err != nil {
		return nil, err
	}
	limiter := ratelimit.NewUnlimited()
	if opts.RPCRate > 0 {
		limiter = ratelimit.New(opts.RPCRate)
	}
	rpcMetrics := metrics.NewRPCClient(opts.Network)

	return bitcoin.NewRPCClient(func() (bitcoin.BatchClient, error) {
		connCfg := *cfg
		client, err := rpcclient.NewBatch(&connCfg)
		if err != nil {
			return nil, fmt.Errorf("create batch client: %w", err)
		}
		return observedrpc.NewObservedClient(client, rpcMetrics), nil
	}, opts.Connections, limiter), nil
}

func rpcConnConfig(rawURL, user, password string) (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil
}

func loadLedger(store *filestore.Repository, logger *zap.Logger) (*ledger.Ledger, error) {
	trades, err := store.LoadTrades()
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	logger.Info("trade ledger loaded", zap.String("trades", humanize.Comma(int64(len(trades)))))
	return ledger.FromTrades(trades), nil
}

func (c *ingestCommand) Execute([]string) error {
	store, err := newFileStore()
	if err != nil {
		return err
	}
	l, err := loadLedger(store, c.logger)
	if err != nil {
		return err
	}
	rpc, err := newRPCClient()
	if err != nil {
		return err
	}
	defer rpc.Close()

	svc, err := scanner.NewService(
		bitcoin.NewBlockSource(rpc),
		store,
		store,
		l,
		metrics.NewScanner(opts.Network),
		scanner.Config{StartHeight: c.StartHeight, BatchSize: c.BatchSize, BatchPause: c.BatchPause},
		opts.Network,
		c.logger,
	)
	if err != nil {
		return fmt.Errorf("create scanner: %w", err)
	}

	summary, err := svc.Run(c.ctx)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	c.logger.Info("scan finished",
		zap.Uint64("from", summary.From),
		zap.Uint64("next", summary.Next),
		zap.Uint64("tip", summary.Tip),
		zap.String("blocks", humanize.Comma(int64(summary.Blocks))),
		zap.Int("missing", summary.Missing),
		zap.Int("deposits", summary.Deposits),
		zap.Int("payouts", summary.Payouts),
		zap.String("trades", humanize.Comma(int64(l.Len()))),
		zap.Bool("interrupted", summary.Interrupted),
	)
	return nil
}

func (c *detailsCommand) newService(rpc *bitcoin.RPCClient, store *filestore.Repository) (*details.Service, error) {
	svc, err := details.NewService(rpc, store, store, details.Config{
		TradeBatch:  c.TradeBatch,
		SegwitBatch: c.SegwitBatch,
		Connections: opts.Connections,
		Cutover:     opts.Cutover,
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("create details service: %w", err)
	}
	return svc, nil
}

func (c *detailsCommand) Execute([]string) error {
	store, err := newFileStore()
	if err != nil {
		return err
	}
	l, err := loadLedger(store, c.logger)
	if err != nil {
		return err
	}
	rpc, err := newRPCClient()
	if err != nil {
		return err
	}
	defer rpc.Close()
	svc, err := c.newService(rpc, store)
	if err != nil {
		return err
	}

	summary, err := svc.Fetch(c.ctx, l)
	if err != nil {
		return fmt.Errorf("fetch trade details: %w", err)
	}
	logDetails(c.logger, summary)

	segwit, err := svc.PrefetchSegwit(c.ctx, l)
	if err != nil {
		return fmt.Errorf("prefetch witness inputs: %w", err)
	}
	c.logger.Info("witness input transactions ready", zap.String("transactions", humanize.Comma(int64(len(segwit)))))
	return nil
}

func (c *clusterCommand) Execute([]string) error {
	store, err := newFileStore()
	if err != nil {
		return err
	}
	l, err := loadLedger(store, c.logger)
	if err != nil {
		return err
	}
	rpc, err := newRPCClient()
	if err != nil {
		return err
	}
	defer rpc.Close()
	detailsSvc, err := c.newService(rpc, store)
	if err != nil {
		return err
	}

	var exporter clustering.ClusterExporter
	if c.ClickHouseDSN != "" {
		repo, err := clickhouse.NewRepository(c.ClickHouseDSN, metrics.NewRepository("clickhouse"))
		if err != nil {
			return fmt.Errorf("create clickhouse repository: %w", err)
		}
		defer func() {
			if cerr := repo.Close(); cerr != nil {
				c.logger.Warn("failed to close clickhouse repository", zap.Error(cerr))
			}
		}()
		exporter = repo
	}

	svc, err := clustering.NewService(
		store,
		detailsSvc,
		store,
		exporter,
		metrics.NewClustering(opts.Network),
		clustering.Config{Network: opts.Network, Cutover: opts.Cutover},
		c.logger,
	)
	if err != nil {
		return fmt.Errorf("create clustering service: %w", err)
	}

	result, err := svc.Run(c.ctx, l)
	if err != nil {
		return fmt.Errorf("cluster: %w", err)
	}
	c.logger.Info("clustering finished",
		zap.String("run_id", result.RunID),
		zap.Int("clustered", result.Stats.Clustered),
		zap.Int("skipped", result.Stats.Skipped()),
		zap.String("addresses", humanize.Comma(int64(result.Summary.Addresses))),
		zap.String("clusters", humanize.Comma(int64(result.Summary.Clusters))),
		zap.Int("exported", result.Exported),
	)
	return nil
}

func (c *arbitrationCommand) Execute([]string) error {
	store, err := newFileStore()
	if err != nil {
		return err
	}
	summary, err := arbitration.NewService(store, store, c.logger).Export()
	if err != nil {
		if errors.Is(err, arbitration.ErrNoVerboseTrades) {
			return fmt.Errorf("%w: run the details command first", err)
		}
		return fmt.Errorf("export arbitration commands: %w", err)
	}
	c.logger.Info("arbitration commands exported",
		zap.Int("trades", summary.Trades),
		zap.Int("with_payout", summary.WithPayout),
		zap.Int("legacy_protocol", summary.OldProtocol),
		zap.String("file", opts.Files.BtcdebCommands),
	)
	return nil
}

func (c *validateCommand) Execute([]string) error {
	store, err := newFileStore()
	if err != nil {
		return err
	}
	l, err := loadLedger(store, c.logger)
	if err != nil {
		return err
	}
	rpc, err := newRPCClient()
	if err != nil {
		return err
	}
	defer rpc.Close()
	detailsSvc, err := c.newService(rpc, store)
	if err != nil {
		return err
	}
	summary, err := detailsSvc.Fetch(c.ctx, l)
	if err != nil {
		return fmt.Errorf("fetch trade details: %w", err)
	}
	logDetails(c.logger, summary)

	repo, err := clickhouse.NewRepository(c.ClickHouseDSN, metrics.NewRepository("clickhouse"))
	if err != nil {
		return fmt.Errorf("create clickhouse repository: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			c.logger.Warn("failed to close clickhouse repository", zap.Error(cerr))
		}
	}()

	svc, err := validation.NewService(repo, rpc, validation.Config{DateLimit: c.DateLimit, LookupBatch: c.SegwitBatch, Connections: opts.Connections}, c.logger)
	if err != nil {
		return fmt.Errorf("create validation service: %w", err)
	}
	report, err := svc.Validate(c.ctx, l)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	s2, s3 := report.Statistics2, report.Statistics3
	c.logger.Info("trade_statistics2 compared",
		zap.String("total", humanize.Comma(int64(s2.Total))),
		zap.Int("cleaned", s2.Cleaned),
		zap.Int("matches", s2.Matches),
		zap.Int("missed", s2.Missed),
		zap.Int("missed_on_chain", s2.MissedOnChain),
		zap.Int("reverse_matches", s2.ReverseMatches),
		zap.Int("overshoot", s2.Overshoot),
		zap.String("match_rate", percent(s2.Matches, s2.Cleaned)),
	)
	c.logger.Info("trade_statistics3 compared",
		zap.String("total", humanize.Comma(int64(s3.Total))),
		zap.String("cleaned", humanize.Comma(int64(s3.Cleaned))),
		zap.Uint64("cleaned_before", s3.CleanedBefore),
		zap.Int("ledger_before", s3.LedgerBefore),
	)
	return nil
}

func logDetails(logger *zap.Logger, summary details.Summary) {
	logger.Info("trade details ready",
		zap.Bool("from_file", summary.Loaded),
		zap.String("trades", humanize.Comma(int64(summary.Trades))),
		zap.Int("attached", summary.Attached),
		zap.Int("missing_payouts", summary.MissingPayouts),
		zap.Int("before_cutover", summary.BeforeCutover),
	)
}

func percent(part, total int) string {
	if total == 0 {
		return "n/a"
	}
	return humanize.FormatFloat("#.##", 100*float64(part)/float64(total)) + "%"
}
