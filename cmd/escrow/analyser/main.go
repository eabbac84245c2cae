// Command analyser finds escrow trades on the Bitcoin chain and clusters the
// addresses of their parties.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

type options struct {
	Network     model.Network `long:"network" env:"ESCROW_NETWORK" description:"bitcoin network" default:"mainnet" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet"`
	RPCURL      string        `long:"rpc-url" env:"ESCROW_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"ESCROW_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword string        `long:"rpc-password" env:"ESCROW_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRate     int           `long:"rpc-rate" env:"ESCROW_RPC_RATE" description:"maximum RPC round trips per second, 0 for unlimited" default:"0"`
	Connections int           `long:"connection-limit" env:"ESCROW_CONNECTION_LIMIT" description:"RPC round trips in flight" default:"4"`
	MetricsAddr string        `long:"metrics-addr" env:"ESCROW_METRICS_ADDR" description:"address for metrics server, empty to disable" default:":2112"`
	Cutover     int64         `long:"cutover" env:"ESCROW_CUTOVER" description:"unix time of the protocol upgrade; later deposits are not clustered" default:"1612981296"`
	Debug       bool          `long:"debug" env:"ESCROW_DEBUG" description:"enable debug logging"`

	Files struct {
		Trades         string `long:"trade-file" env:"ESCROW_TRADE_FILE" description:"trade ledger file" default:"trades.json"`
		VerboseTrades  string `long:"verbose-trade-file" env:"ESCROW_VERBOSE_TRADE_FILE" description:"verbose trade file" default:"trades_verbose.json"`
		Checkpoint     string `long:"checkpoint-file" env:"ESCROW_CHECKPOINT_FILE" description:"scan checkpoint file" default:"blockheight.txt"`
		SegwitCache    string `long:"segwit-file" env:"ESCROW_SEGWIT_FILE" description:"segwit input cache file" default:"segwit_inputs.json"`
		Arbitrated     string `long:"arbitrated-file" env:"ESCROW_ARBITRATED_FILE" description:"arbitrated deposit txid list" default:"arbitrated.txt"`
		ClusterIndex   string `long:"index-file" env:"ESCROW_INDEX_FILE" description:"address to cluster index output" default:"clusters.json"`
		BtcdebCommands string `long:"btcdeb-file" env:"ESCROW_BTCDEB_FILE" description:"btcdeb command output" default:"btcdeb_commands.txt"`
	} `group:"Files"`
}

var opts options

func main() {
	os.Exit(run())
}

// run executes the selected command and returns the process exit code. It
// returns instead of exiting so deferred cleanup always runs.
func run() int {
	envFile := os.Getenv("ESCROW_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// a missing env file is fine; flags and the environment still apply
	_ = godotenv.Load(envFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser := flags.NewParser(&opts, flags.Default)
	addCommands(parser)

	var logger *zap.Logger
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		var err error
		logger, err = newLogger(opts.Debug)
		if err != nil {
			return err
		}
		cmd, ok := command.(boundCommand)
		if !ok {
			return errors.New("unknown command")
		}
		if opts.MetricsAddr != "" {
			startMetricsServer(ctx, opts.MetricsAddr, logger)
		}
		cmd.bind(ctx, logger)
		return command.Execute(args)
	}

	_, err := parser.Parse()
	code := exitCode(err)
	if code == 1 && logger != nil {
		logger.Error("analyser failed", zap.Error(err))
	}
	return code
}

// exitCode maps a parse or command error to the process exit code: 0 for
// success and help, 2 for usage errors, 1 for everything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ferr *flags.Error
	if errors.As(err, &ferr) {
		if ferr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}
	return 1
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
