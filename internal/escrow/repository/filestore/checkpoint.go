package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrCheckpointRegression is returned when a checkpoint would move backwards.
var ErrCheckpointRegression = errors.New("checkpoint regression")

// LoadCheckpoint returns the next height to scan. A missing file means 0.
func (r *Repository) LoadCheckpoint() (height uint64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("load_checkpoint", err, started)
	}()

	raw, err := os.ReadFile(r.paths.Checkpoint)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read checkpoint: %w", err)
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return 0, nil
	}
	height, err = strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse checkpoint %q: %w", text, err)
	}
	if height > r.checkpoint {
		r.checkpoint = height
	}
	return height, nil
}

// SaveCheckpoint records height as the next height to scan.
func (r *Repository) SaveCheckpoint(height uint64) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("save_checkpoint", err, started)
	}()

	if height < r.checkpoint {
		return fmt.Errorf("%w: %d < %d", ErrCheckpointRegression, height, r.checkpoint)
	}
	err = writeAtomic(r.paths.Checkpoint, func(w io.Writer) error {
		_, werr := io.WriteString(w, strconv.FormatUint(height, 10))
		return werr
	})
	if err != nil {
		return err
	}
	r.checkpoint = height
	return nil
}
