package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"github.com/prometheus/client_golang/prometheus"
)

var rpcOperations = newOperationVec("rpc_client", "node RPC", prometheus.DefBuckets, "operation", "network")

// RPCClient records node RPC round trips.
type RPCClient struct {
	network string
}

func NewRPCClient(network model.Network) *RPCClient {
	return &RPCClient{network: orUnknown(string(network))}
}

func (m RPCClient) Observe(operation string, err error, started time.Time) {
	rpcOperations.observe(err, started, operation, m.network)
}
