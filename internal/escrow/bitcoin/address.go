package bitcoin

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

const (
	// compressedPubKeyHexLen is the hex length of a 33-byte compressed public key.
	compressedPubKeyHexLen = 66
	checksumLen            = 4
)

// ErrMalformedPublicKey is returned for input that is not a hex encoded compressed public key.
var ErrMalformedPublicKey = errors.New("malformed public key")

// AddressDeriver turns compressed public keys into pay-to-pubkey-hash addresses.
type AddressDeriver struct {
	version byte
}

// NewAddressDeriver returns a deriver using the address version of the given network.
func NewAddressDeriver(network model.Network) (*AddressDeriver, error) {
	params, err := ChainParams(network)
	if err != nil {
		return nil, err
	}
	return &AddressDeriver{version: params.PubKeyHashAddrID}, nil
}

var mainnetDeriver = AddressDeriver{version: chaincfg.MainNetParams.PubKeyHashAddrID}

// DeriveAddress derives the mainnet P2PKH address of a hex encoded compressed public key.
func DeriveAddress(publicKeyHex string) (string, error) {
	return mainnetDeriver.DeriveAddress(publicKeyHex)
}

// AddressFromScriptSig derives the mainnet address of the key pushed last in a legacy scriptSig.
func AddressFromScriptSig(scriptSigHex string) (string, error) {
	return mainnetDeriver.AddressFromScriptSig(scriptSigHex)
}

// DeriveAddress computes Base58(version || HASH160(pk) || checksum).
func (d AddressDeriver) DeriveAddress(publicKeyHex string) (string, error) {
	if len(publicKeyHex) != compressedPubKeyHexLen {
		return "", fmt.Errorf("%w: expected %d hex chars, got %d", ErrMalformedPublicKey, compressedPubKeyHexLen, len(publicKeyHex))
	}
	pubKey, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedPublicKey, err)
	}

	payload := make([]byte, 0, 1+20+checksumLen)
	payload = append(payload, d.version)
	payload = append(payload, btcutil.Hash160(pubKey)...)
	checksum := chainhash.DoubleHashB(payload)
	payload = append(payload, checksum[:checksumLen]...)

	return base58.Encode(payload), nil
}

// AddressFromScriptSig takes the trailing compressed public key of a
// <signature> <pubkey> scriptSig and derives its address.
func (d AddressDeriver) AddressFromScriptSig(scriptSigHex string) (string, error) {
	if len(scriptSigHex) < compressedPubKeyHexLen {
		return "", fmt.Errorf("%w: scriptSig too short (%d hex chars)", ErrMalformedPublicKey, len(scriptSigHex))
	}
	return d.DeriveAddress(scriptSigHex[len(scriptSigHex)-compressedPubKeyHexLen:])
}
