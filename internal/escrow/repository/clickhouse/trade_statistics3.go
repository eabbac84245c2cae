package clickhouse

import "context"

const (
	tradeStatistics3CountQuery = `
SELECT count() AS total_trades
FROM trade_statistics3`

	tradeStatistics3CleanedCountQuery = `
SELECT uniqExact(hash) AS total_trades
FROM trade_statistics3`

	tradeStatistics3CountBeforeQuery = `
SELECT uniqExact(hash) AS total_trades
FROM trade_statistics3
WHERE trade_date < ?`
)

func (r *Repository) TradeStatistics3Count(ctx context.Context) (uint64, error) {
	return r.queryCount(ctx, "trade_statistics3_count", tradeStatistics3CountQuery)
}

// TradeStatistics3CleanedCount counts distinct trade hashes.
func (r *Repository) TradeStatistics3CleanedCount(ctx context.Context) (uint64, error) {
	return r.queryCount(ctx, "trade_statistics3_cleaned_count", tradeStatistics3CleanedCountQuery)
}

// TradeStatistics3CountBefore counts distinct trade hashes dated strictly
// before dateMs (milliseconds since the epoch).
func (r *Repository) TradeStatistics3CountBefore(ctx context.Context, dateMs int64) (uint64, error) {
	return r.queryCount(ctx, "trade_statistics3_count_before", tradeStatistics3CountBeforeQuery, dateMs)
}
