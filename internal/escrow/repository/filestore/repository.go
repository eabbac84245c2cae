// Package filestore persists analyser state as flat files next to the binary.
package filestore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Paths locates every file the analyser reads or writes.
type Paths struct {
	Trades         string
	VerboseTrades  string
	Checkpoint     string
	SegwitCache    string
	Arbitrated     string
	ClusterIndex   string
	BtcdebCommands string
}

type Repository struct {
	paths      Paths
	metrics    Metrics
	checkpoint uint64
}

func NewRepository(paths Paths, metrics Metrics) (*Repository, error) {
	if paths.Trades == "" {
		return nil, errors.New("trade file path is required")
	}
	if paths.Checkpoint == "" {
		return nil, errors.New("checkpoint file path is required")
	}
	return &Repository{paths: paths, metrics: metrics}, nil
}

// writeAtomic writes through a temporary file in the target directory and
// renames it over path, so readers never observe a partial file.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return err
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// openIfExists returns a nil file without error when path does not exist.
func openIfExists(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// encodeArray writes items as a JSON array with one element per line.
func encodeArray[T any](w io.Writer, items []T) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode element %d: %w", i, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, ",\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(raw); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n]\n")
	return err
}

// decodeArray streams the elements of a JSON array to fn.
func decodeArray[T any](r io.Reader, fn func(T) error) error {
	dec := json.NewDecoder(bufio.NewReader(r))
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read array start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected JSON array, got %v", tok)
	}
	for i := 0; dec.More(); i++ {
		var item T
		if err := dec.Decode(&item); err != nil {
			return fmt.Errorf("decode element %d: %w", i, err)
		}
		if err := fn(item); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read array end: %w", err)
	}
	return nil
}
