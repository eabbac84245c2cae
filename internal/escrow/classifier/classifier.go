// Package classifier recognises escrow deposit and payout transactions by
// their fixed structural fingerprints.
package classifier

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

const (
	// fundingOutputIndex is the output of each funding transaction a deposit spends.
	fundingOutputIndex = 1
	// escrowOutputIndex is the deposit output a payout spends.
	escrowOutputIndex = 0

	scriptTypeScriptHash        = "scripthash"
	scriptTypeWitnessScriptHash = "witness_v0_scripthash"
	scriptTypeNullData          = "nulldata"

	// OP_HASH160 <20 byte hash> OP_EQUAL
	scriptHashAsmLen    = 60
	scriptHashAsmPrefix = "OP_HASH160 "
	scriptHashAsmSuffix = " OP_EQUAL"

	// 0 <32 byte hash>
	witnessScriptHashAsmLen    = 66
	witnessScriptHashAsmPrefix = "0 "

	// OP_RETURN <32 byte contract hash>
	nullDataAsmLen    = 74
	nullDataAsmPrefix = "OP_RETURN "
)

// DepositLookup answers whether a txid is a known deposit.
type DepositLookup interface {
	HasDeposit(txid string) bool
}

// ClassifyDeposit reports whether tx has the shape of an escrow deposit:
// two funding inputs spending output 1, a multisig escrow output at index 0
// and a contract-hash OP_RETURN at index 1.
func ClassifyDeposit(tx *btcjson.TxRawResult) bool {
	if tx == nil || len(tx.Vin) < 2 || len(tx.Vout) < 2 {
		return false
	}
	if tx.Vin[0].IsCoinBase() || tx.Vin[0].Vout != fundingOutputIndex || tx.Vin[1].Vout != fundingOutputIndex {
		return false
	}
	if !isContractHashOutput(tx.Vout[1].ScriptPubKey) {
		return false
	}
	return isEscrowOutput(tx.Vout[0].ScriptPubKey)
}

// ClassifyPayout reports whether tx spends output 0 of a known deposit as its only input.
func ClassifyPayout(tx *btcjson.TxRawResult, deposits DepositLookup) bool {
	if tx == nil || len(tx.Vin) != 1 {
		return false
	}
	vin := tx.Vin[0]
	if vin.IsCoinBase() || vin.Vout != escrowOutputIndex {
		return false
	}
	return deposits.HasDeposit(vin.Txid)
}

// NewTrade builds the ledger record of a deposit found in the given block.
func NewTrade(deposit *btcjson.TxRawResult, blockHash string) model.Trade {
	return model.Trade{
		InputOne: deposit.Vin[0].Txid,
		InputTwo: deposit.Vin[1].Txid,
		Deposit:  deposit.Txid,
		Block:    blockHash,
	}
}

// EscrowAmount returns the value locked in the escrow output of a deposit.
func EscrowAmount(deposit *btcjson.TxRawResult) (btcutil.Amount, error) {
	if deposit == nil || len(deposit.Vout) <= escrowOutputIndex {
		return 0, errors.New("deposit has no escrow output")
	}
	return btcutil.NewAmount(deposit.Vout[escrowOutputIndex].Value)
}

func isContractHashOutput(spk btcjson.ScriptPubKeyResult) bool {
	return spk.Type == scriptTypeNullData &&
		len(spk.Asm) == nullDataAsmLen &&
		strings.HasPrefix(spk.Asm, nullDataAsmPrefix)
}

func isEscrowOutput(spk btcjson.ScriptPubKeyResult) bool {
	switch spk.Type {
	case scriptTypeScriptHash:
		return len(spk.Asm) == scriptHashAsmLen &&
			strings.HasPrefix(spk.Asm, scriptHashAsmPrefix) &&
			strings.HasSuffix(spk.Asm, scriptHashAsmSuffix)
	case scriptTypeWitnessScriptHash:
		return len(spk.Asm) == witnessScriptHashAsmLen &&
			strings.HasPrefix(spk.Asm, witnessScriptHashAsmPrefix)
	default:
		return false
	}
}
