package cluster

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/chain"
	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
	"go.uber.org/zap"
)

// DefaultCutover is the unix time of the escrow protocol upgrade after which
// funding inputs no longer identify the trading parties.
const DefaultCutover int64 = 1612981296

const (
	// buyerPayoutIndex and sellerPayoutIndex are the payout outputs of each party.
	buyerPayoutIndex  = 0
	sellerPayoutIndex = 1
	payoutOutputCount = 2

	// fundingSpentIndex is the funding output that went into the deposit.
	fundingSpentIndex = 1
	// fundingChangeIndex is the change output of a funding transaction with
	// exactly fundingChangeOutputs outputs.
	fundingChangeIndex   = 2
	fundingChangeOutputs = 3
)

// Outcome labels the fate of a single trade in a clustering pass.
type Outcome string

const (
	OutcomeClustered    Outcome = "clustered"
	OutcomeNoPayout     Outcome = "no_payout"
	OutcomeArbitrated   Outcome = "arbitrated"
	OutcomeIncomplete   Outcome = "incomplete"
	OutcomeAfterCutover Outcome = "after_cutover"
	OutcomePayoutShape  Outcome = "payout_shape"
	OutcomeOrdering     Outcome = "ordering"
	OutcomeUnresolved   Outcome = "unresolved"
	OutcomeMalformed    Outcome = "malformed"
)

var errMalformedFunding = errors.New("malformed funding transaction")

type (
	// InputResolver maps a witness input to the address it spends from.
	InputResolver interface {
		Resolve(vin btcjson.Vin) (string, error)
	}
	// ScriptSigDeriver derives the address of a legacy input from its scriptSig.
	ScriptSigDeriver interface {
		AddressFromScriptSig(scriptSigHex string) (string, error)
	}
	// Metrics records per-trade outcomes.
	Metrics interface {
		ObserveTrade(outcome string)
	}
)

// Options tune eligibility of trades.
type Options struct {
	// Cutover excludes trades whose deposit was mined after this unix time.
	Cutover int64
	// Arbitrated holds deposit txids of trades settled by an arbitrator.
	Arbitrated map[string]struct{}
}

// Stats counts trades per outcome.
type Stats struct {
	Clustered    int
	NoPayout     int
	Arbitrated   int
	Incomplete   int
	AfterCutover int
	PayoutShape  int
	Ordering     int
	Unresolved   int
	Malformed    int
}

// Skipped returns the number of trades that did not contribute to clusters.
func (s Stats) Skipped() int {
	return s.NoPayout + s.Arbitrated + s.Incomplete + s.AfterCutover + s.PayoutShape + s.Ordering + s.Unresolved + s.Malformed
}

func (s *Stats) add(o Outcome) {
	switch o {
	case OutcomeClustered:
		s.Clustered++
	case OutcomeNoPayout:
		s.NoPayout++
	case OutcomeArbitrated:
		s.Arbitrated++
	case OutcomeIncomplete:
		s.Incomplete++
	case OutcomeAfterCutover:
		s.AfterCutover++
	case OutcomePayoutShape:
		s.PayoutShape++
	case OutcomeOrdering:
		s.Ordering++
	case OutcomeUnresolved:
		s.Unresolved++
	case OutcomeMalformed:
		s.Malformed++
	}
}

// Clusterer feeds trades into an Engine. For each eligible trade the buyer
// payout address is grouped with the addresses funding the first deposit input
// and the seller payout address with those funding the second.
type Clusterer struct {
	engine     *Engine
	inputs     InputResolver
	deriver    ScriptSigDeriver
	decoder    chain.AddressDecoder
	metrics    Metrics
	logger     *zap.Logger
	cutover    int64
	arbitrated map[string]struct{}
}

// NewClusterer wires a Clusterer around engine.
func NewClusterer(
	engine *Engine,
	inputs InputResolver,
	deriver ScriptSigDeriver,
	decoder chain.AddressDecoder,
	metrics Metrics,
	opts Options,
	logger *zap.Logger,
) *Clusterer {
	arbitrated := opts.Arbitrated
	if arbitrated == nil {
		arbitrated = map[string]struct{}{}
	}
	return &Clusterer{
		engine:     engine,
		inputs:     inputs,
		deriver:    deriver,
		decoder:    decoder,
		metrics:    metrics,
		logger:     logger.Named("clusterer"),
		cutover:    opts.Cutover,
		arbitrated: arbitrated,
	}
}

// Run clusters trades in order and returns per-outcome counts.
func (c *Clusterer) Run(trades []*model.Trade) Stats {
	var stats Stats
	for _, t := range trades {
		outcome, err := c.clusterTrade(t)
		if err != nil {
			level := c.logger.Debug
			if outcome == OutcomeOrdering {
				level = c.logger.Warn
			}
			level("trade skipped",
				zap.String("deposit", t.Deposit),
				zap.String("outcome", string(outcome)),
				zap.Error(err),
			)
		}
		stats.add(outcome)
		if c.metrics != nil {
			c.metrics.ObserveTrade(string(outcome))
		}
	}
	return stats
}

func (c *Clusterer) clusterTrade(t *model.Trade) (Outcome, error) {
	if !t.HasPayout() {
		return OutcomeNoPayout, nil
	}
	if _, ok := c.arbitrated[t.Deposit]; ok {
		return OutcomeArbitrated, nil
	}
	d := t.Details
	if !d.Complete() {
		return OutcomeIncomplete, errors.New("transaction details missing")
	}
	if d.Deposit.Blocktime > c.cutover {
		return OutcomeAfterCutover, nil
	}
	if len(d.Payout.Vout) != payoutOutputCount {
		return OutcomePayoutShape, fmt.Errorf("payout has %d outputs", len(d.Payout.Vout))
	}
	if len(d.Deposit.Vin) == 0 || d.Deposit.Vin[0].Txid != d.InputOne.Txid {
		return OutcomeOrdering, errors.New("first deposit input does not spend input one")
	}

	buyer, err := c.decoder.OutputAddress(d.Payout.Vout[buyerPayoutIndex])
	if err != nil {
		return OutcomeMalformed, fmt.Errorf("buyer payout address: %w", err)
	}
	seller, err := c.decoder.OutputAddress(d.Payout.Vout[sellerPayoutIndex])
	if err != nil {
		return OutcomeMalformed, fmt.Errorf("seller payout address: %w", err)
	}

	buyerGroup, err := c.fundingAddresses(d.InputOne)
	if err != nil {
		return failureOutcome(err), fmt.Errorf("input one %s: %w", d.InputOne.Txid, err)
	}
	sellerGroup, err := c.fundingAddresses(d.InputTwo)
	if err != nil {
		return failureOutcome(err), fmt.Errorf("input two %s: %w", d.InputTwo.Txid, err)
	}

	c.engine.MergeOrCreate(append([]string{buyer}, buyerGroup...))
	c.engine.MergeOrCreate(append([]string{seller}, sellerGroup...))
	return OutcomeClustered, nil
}

// fundingAddresses returns the addresses known to belong to the party that
// built a funding transaction: its spent and change outputs and every input.
func (c *Clusterer) fundingAddresses(tx *btcjson.TxRawResult) ([]string, error) {
	if len(tx.Vout) <= fundingSpentIndex {
		return nil, fmt.Errorf("%w: %d outputs", errMalformedFunding, len(tx.Vout))
	}

	addrs := make([]string, 0, len(tx.Vin)+2)
	spent, err := c.decoder.OutputAddress(tx.Vout[fundingSpentIndex])
	if err != nil {
		return nil, err
	}
	addrs = append(addrs, spent)

	if len(tx.Vout) == fundingChangeOutputs {
		change, err := c.decoder.OutputAddress(tx.Vout[fundingChangeIndex])
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, change)
	}

	for i, vin := range tx.Vin {
		var addr string
		switch {
		case vin.IsCoinBase():
			return nil, fmt.Errorf("%w: coinbase input", errMalformedFunding)
		case vin.HasWitness():
			addr, err = c.inputs.Resolve(vin)
		case vin.ScriptSig != nil:
			addr, err = c.deriver.AddressFromScriptSig(vin.ScriptSig.Hex)
		default:
			err = fmt.Errorf("%w: input %d has neither witness nor scriptSig", errMalformedFunding, i)
		}
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func failureOutcome(err error) Outcome {
	if errors.Is(err, chain.ErrUnresolvedInput) {
		return OutcomeUnresolved
	}
	return OutcomeMalformed
}

// ClusterByOrdinal clusters mainnet trades into a fresh Engine using witness
// inputs resolved from segwitTxs.
func ClusterByOrdinal(trades []*model.Trade, segwitTxs []*btcjson.TxRawResult, arbitrated map[string]struct{}, cutover int64) (*Engine, Stats, error) {
	decoder, err := bitcoin.NewScriptDecoder(model.Mainnet)
	if err != nil {
		return nil, Stats{}, err
	}
	deriver, err := bitcoin.NewAddressDeriver(model.Mainnet)
	if err != nil {
		return nil, Stats{}, err
	}
	engine := NewEngine()
	clusterer := NewClusterer(
		engine,
		chain.NewInputResolver(decoder, segwitTxs),
		deriver,
		decoder,
		nil,
		Options{Cutover: cutover, Arbitrated: arbitrated},
		zap.NewNop(),
	)
	return engine, clusterer.Run(trades), nil
}
