package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

const (
	insertAddressClustersQuery = `
INSERT INTO escrow_address_clusters (
	run_id,
	address,
	cluster_id
) VALUES`

	insertChunkSize = 50_000
)

// InsertAddressClusters stores cluster rows, sending one batch per chunk.
func (r *Repository) InsertAddressClusters(ctx context.Context, rows []model.ClusterRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_address_clusters", err, start)
	}()

	for from := 0; from < len(rows); from += insertChunkSize {
		to := min(from+insertChunkSize, len(rows))
		if err = r.insertClusterChunk(ctx, rows[from:to]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) insertClusterChunk(ctx context.Context, rows []model.ClusterRow) error {
	batch, err := r.conn.PrepareBatch(ctx, insertAddressClustersQuery)
	if err != nil {
		return fmt.Errorf("prepare address clusters batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(row.RunID, row.Address, row.ClusterID); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append address cluster: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert address clusters: %w", err)
	}
	return nil
}
