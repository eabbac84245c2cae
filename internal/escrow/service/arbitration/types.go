package arbitration

import "github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	DetailsLoader interface {
		LoadVerboseTrades() ([]model.TradeDetails, bool, error)
	}
	CommandSink interface {
		SaveBtcdebCommands(commands []model.BtcdebCommand) error
	}
)
