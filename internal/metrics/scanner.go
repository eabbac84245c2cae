package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerBatches = newOperationVec("escrow_scanner", "block batch", prometheus.DefBuckets, "network")

	scannerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "escrow_scanner",
		Name:      "blocks_total",
		Help:      "Count of scanned blocks.",
	}, []string{"network"})

	scannerMatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "escrow_scanner",
		Name:      "matches_total",
		Help:      "Count of identified escrow transactions by kind.",
	}, []string{"network", "kind"})

	scannerCheckpoint = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "escrow_scanner",
		Name:      "checkpoint_height",
		Help:      "Next block height the scanner will process.",
	}, []string{"network"})
)

// Scanner tracks metrics for the block scanning pipeline.
type Scanner struct {
	network string
}

func NewScanner(network model.Network) *Scanner {
	return &Scanner{network: orUnknown(string(network))}
}

// ObserveBatch records processing of a batch of blocks.
func (m Scanner) ObserveBatch(err error, blocks int, started time.Time) {
	scannerBatches.observe(err, started, m.network)
	if err == nil {
		scannerBlocksTotal.WithLabelValues(m.network).Add(float64(blocks))
	}
}

// ObserveMatch counts an identified deposit or payout.
func (m Scanner) ObserveMatch(kind string) {
	scannerMatchesTotal.WithLabelValues(m.network, kind).Inc()
}

// SetCheckpoint publishes the persisted checkpoint.
func (m Scanner) SetCheckpoint(height uint64) {
	scannerCheckpoint.WithLabelValues(m.network).Set(float64(height))
}
