package model

// Network names the bitcoin network the analyser talks to.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

func (n Network) String() string {
	return string(n)
}
