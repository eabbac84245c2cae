package filestore

import (
	"bufio"
	"fmt"
	"strings"
	"time"
)

// LoadArbitrated reads the newline delimited deposit txids of arbitrated
// trades. Blank lines are ignored and a missing file yields an empty set.
func (r *Repository) LoadArbitrated() (set map[string]struct{}, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("load_arbitrated", err, started)
	}()

	set = make(map[string]struct{})
	if r.paths.Arbitrated == "" {
		return set, nil
	}
	f, err := openIfExists(r.paths.Arbitrated)
	if err != nil || f == nil {
		return set, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		set[line] = struct{}{}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.paths.Arbitrated, err)
	}
	return set, nil
}
