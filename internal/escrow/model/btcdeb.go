package model

import "fmt"

// BtcdebCommand replays the payout of an escrow against its deposit in btcdeb.
type BtcdebCommand struct {
	Deposit    string
	PayoutHex  string
	DepositHex string
}

func (c BtcdebCommand) String() string {
	return fmt.Sprintf("btcdeb --tx=%s --txin=%s", c.PayoutHex, c.DepositHex)
}
