package scanner

const (
	defaultBatchSize = 5

	matchDeposit = "deposit"
	matchPayout  = "payout"
)
