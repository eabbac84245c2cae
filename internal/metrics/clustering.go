package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var clusteringTradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "escrow_clustering",
	Name:      "trades_total",
	Help:      "Count of trades seen by the clustering pass by outcome.",
}, []string{"network", "outcome"})

// Clustering tracks per-trade outcomes of a clustering pass.
type Clustering struct {
	network string
}

func NewClustering(network model.Network) *Clustering {
	return &Clustering{network: orUnknown(string(network))}
}

func (m Clustering) ObserveTrade(outcome string) {
	clusteringTradesTotal.WithLabelValues(m.network, outcome).Inc()
}
