package filestore

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// SaveClusterIndex writes the address to cluster mapping as a JSON object.
func (r *Repository) SaveClusterIndex(index model.AddressIndex) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_cluster_index", err, started)
	}()

	if r.paths.ClusterIndex == "" {
		return errors.New("cluster index path is required")
	}
	return writeAtomic(r.paths.ClusterIndex, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(index)
	})
}
