package bitcoin

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// ErrNoOutputAddress is returned when an output script pays to no standard address.
var ErrNoOutputAddress = errors.New("output has no address")

// ScriptDecoder resolves the address an output pays to. Node supplied
// addresses win; the locking script is decoded only when they are absent.
type ScriptDecoder struct {
	params *chaincfg.Params
}

func NewScriptDecoder(network model.Network) (*ScriptDecoder, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &ScriptDecoder{params: params}, nil
}

// OutputAddress returns the first destination address of vout.
func (d *ScriptDecoder) OutputAddress(vout btcjson.Vout) (string, error) {
	spk := vout.ScriptPubKey
	switch {
	case spk.Address != "":
		return spk.Address, nil
	case len(spk.Addresses) > 0:
		return spk.Addresses[0], nil
	case spk.Hex == "":
		return "", fmt.Errorf("%w: output %d carries no script", ErrNoOutputAddress, vout.N)
	}

	addr, err := d.scriptAddress(spk.Hex)
	if err != nil {
		return "", fmt.Errorf("output %d (%s): %w", vout.N, spk.Type, err)
	}
	return addr, nil
}

func (d *ScriptDecoder) scriptAddress(scriptHex string) (string, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return "", fmt.Errorf("decode script: %w", err)
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, d.params)
	if err != nil {
		return "", fmt.Errorf("extract addresses: %w", err)
	}
	if len(addrs) == 0 {
		return "", ErrNoOutputAddress
	}
	return addrs[0].EncodeAddress(), nil
}
