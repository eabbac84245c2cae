package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

var networkParams = map[model.Network]*chaincfg.Params{
	model.Mainnet: &chaincfg.MainNetParams,
	model.Testnet: &chaincfg.TestNet3Params,
	model.Regtest: &chaincfg.RegressionNetParams,
	model.Signet:  &chaincfg.SigNetParams,
}

// node and explorer spellings of the same networks
var networkAliases = map[string]model.Network{
	"main":     model.Mainnet,
	"bitcoin":  model.Mainnet,
	"test":     model.Testnet,
	"testnet3": model.Testnet,
}

// ChainParams returns the consensus parameters of a network.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	name := model.Network(strings.ToLower(strings.TrimSpace(string(network))))
	if alias, ok := networkAliases[string(name)]; ok {
		name = alias
	}
	params, ok := networkParams[name]
	if !ok {
		return nil, fmt.Errorf("unsupported network %q", network)
	}
	return params, nil
}
