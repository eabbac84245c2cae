// Package model holds the domain types shared across the escrow analyser.
package model

import "github.com/btcsuite/btcd/btcjson"

// Trade links a deposit transaction to the two funding transactions it spends
// and, once observed, to the payout that releases the escrow.
type Trade struct {
	InputOne string `json:"inputOne"`
	InputTwo string `json:"inputTwo"`
	Deposit  string `json:"deposit"`
	Payout   string `json:"payout"`
	Block    string `json:"block"`

	Details *TradeDetails `json:"-"`
}

// HasPayout reports whether a payout has been linked to the trade.
func (t Trade) HasPayout() bool {
	return t.Payout != ""
}

// TradeDetails carries the full verbose bodies of the four transactions of a trade.
type TradeDetails struct {
	InputOne *btcjson.TxRawResult `json:"inputOne"`
	InputTwo *btcjson.TxRawResult `json:"inputTwo"`
	Deposit  *btcjson.TxRawResult `json:"deposit"`
	Payout   *btcjson.TxRawResult `json:"payout"`
}

// Complete reports whether every body needed for clustering is present.
func (d *TradeDetails) Complete() bool {
	return d != nil && d.InputOne != nil && d.InputTwo != nil && d.Deposit != nil && d.Payout != nil
}

// DepositID returns the deposit txid, or an empty string when the deposit body is missing.
func (d *TradeDetails) DepositID() string {
	if d == nil || d.Deposit == nil {
		return ""
	}
	return d.Deposit.Txid
}
