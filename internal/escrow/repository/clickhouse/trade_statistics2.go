package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

const (
	tradeStatistics2CountQuery = `
SELECT count() AS total_trades
FROM trade_statistics2`

	tradeStatistics2LatestDatesQuery = `
SELECT max(trade_date) AS last_trade_date, max(offer_date) AS last_offer_date
FROM trade_statistics2`

	tradeStatistics2DepositTxIDsQuery = `
SELECT DISTINCT deposit_tx_id
FROM trade_statistics2
WHERE deposit_tx_id != ''
ORDER BY deposit_tx_id`
)

// TradeStatistics2Count returns the number of rows in trade_statistics2.
func (r *Repository) TradeStatistics2Count(ctx context.Context) (uint64, error) {
	return r.queryCount(ctx, "trade_statistics2_count", tradeStatistics2CountQuery)
}

// TradeStatistics2LatestDates returns the newest trade and offer dates.
func (r *Repository) TradeStatistics2LatestDates(ctx context.Context) (dates model.StatisticsDates, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("trade_statistics2_latest_dates", err, start)
	}()

	rows, err := r.conn.Query(ctx, tradeStatistics2LatestDatesQuery)
	if err != nil {
		return dates, fmt.Errorf("query latest dates: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return dates, fmt.Errorf("latest dates not found")
	}
	if err = rows.Scan(&dates.LatestTradeDate, &dates.LatestOfferDate); err != nil {
		return dates, fmt.Errorf("scan latest dates: %w", err)
	}
	if err = rows.Err(); err != nil {
		return dates, fmt.Errorf("iterate latest dates: %w", err)
	}
	return dates, nil
}

// TradeStatistics2DepositTxIDs returns the distinct non-empty deposit txids,
// the cleaned view of the dataset.
func (r *Repository) TradeStatistics2DepositTxIDs(ctx context.Context) (txids []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("trade_statistics2_deposit_txids", err, start)
	}()

	rows, err := r.conn.Query(ctx, tradeStatistics2DepositTxIDsQuery)
	if err != nil {
		return nil, fmt.Errorf("query deposit txids: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var txid string
		if err = rows.Scan(&txid); err != nil {
			return nil, fmt.Errorf("scan deposit txid: %w", err)
		}
		txids = append(txids, txid)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit txids: %w", err)
	}
	return txids, nil
}
