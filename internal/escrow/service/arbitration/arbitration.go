// Package arbitration exports btcdeb commands for payouts that went through
// the legacy three-key arbitration protocol.
package arbitration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"go.uber.org/zap"
)

const (
	// redeemScriptMarker starts a multisig redeem script in a P2SH scriptSig
	// asm: the last signature's sighash flag, then OP_2 and a key push.
	redeemScriptMarker = "[ALL] 5221"
	// legacyRedeemScriptLen is the asm length, from the marker on, of a
	// 2-of-3 redeem script. A 2-of-2 script is 148.
	legacyRedeemScriptLen = 216
)

var ErrNoVerboseTrades = errors.New("verbose trade file not found")

type Summary struct {
	Trades      int
	WithPayout  int
	OldProtocol int
}

type Service struct {
	details DetailsLoader
	sink    CommandSink
	logger  *zap.Logger
}

func NewService(details DetailsLoader, sink CommandSink, logger *zap.Logger) *Service {
	return &Service{details: details, sink: sink, logger: logger.Named("arbitration")}
}

// Export writes a btcdeb command for every saved verbose trade whose payout
// uses the legacy arbitration protocol. The verbose trade file must exist.
func (s *Service) Export() (Summary, error) {
	details, found, err := s.details.LoadVerboseTrades()
	if err != nil {
		return Summary{}, fmt.Errorf("load verbose trades: %w", err)
	}
	if !found {
		return Summary{}, ErrNoVerboseTrades
	}

	summary := Summary{Trades: len(details)}
	commands := make([]model.BtcdebCommand, 0)
	for _, d := range details {
		if d.Payout == nil || d.Deposit == nil {
			continue
		}
		summary.WithPayout++
		if !IsOldProtocol(d.Payout) {
			continue
		}
		summary.OldProtocol++
		commands = append(commands, model.BtcdebCommand{
			Deposit:    d.Deposit.Txid,
			PayoutHex:  d.Payout.Hex,
			DepositHex: d.Deposit.Hex,
		})
	}

	if err := s.sink.SaveBtcdebCommands(commands); err != nil {
		return summary, fmt.Errorf("save btcdeb commands: %w", err)
	}
	s.logger.Info("btcdeb commands exported",
		zap.Int("trades", summary.Trades),
		zap.Int("with_payout", summary.WithPayout),
		zap.Int("old_protocol", summary.OldProtocol),
	)
	return summary, nil
}

// IsOldProtocol reports whether the payout's only input spends the escrow
// through a 2-of-3 redeem script. Witness spends carry no scriptSig asm and
// are always new protocol.
func IsOldProtocol(payout *btcjson.TxRawResult) bool {
	if payout == nil || len(payout.Vin) == 0 || payout.Vin[0].ScriptSig == nil {
		return false
	}
	asm := payout.Vin[0].ScriptSig.Asm
	if asm == "" {
		return false
	}
	start := strings.Index(asm, redeemScriptMarker)
	if start < 0 {
		return false
	}
	return len(asm)-start >= legacyRedeemScriptLen
}
