// Package cluster groups addresses that co-occur in escrow trades into
// ownership clusters.
package cluster

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-escrow/internal/escrow/model"
)

// Engine holds an append-only arena of clusters and an index from address to
// its current cluster. Merging copies the union into a new arena slot and
// repoints every member; superseded slots stay in the arena unreferenced.
type Engine struct {
	clusters [][]string
	index    map[string]int
}

// Summary describes the state of an Engine.
type Summary struct {
	Addresses int
	Clusters  int
	Entries   int
}

// NewEngine returns an empty Engine.
func NewEngine() *Engine {
	return &Engine{index: make(map[string]int)}
}

// MergeOrCreate unions group with every cluster already holding one of its
// addresses and returns the index of the resulting cluster. An empty group
// returns -1 and leaves the engine unchanged.
func (e *Engine) MergeOrCreate(group []string) int {
	if len(group) == 0 {
		return -1
	}

	union := dedupAppend(nil, group)
	seen := make(map[int]struct{})
	for _, addr := range group {
		id, ok := e.index[addr]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		union = dedupAppend(union, e.clusters[id])
	}
	sort.Strings(union)

	id := len(e.clusters)
	e.clusters = append(e.clusters, union)
	for _, addr := range union {
		e.index[addr] = id
	}
	return id
}

// ClusterOf returns the current cluster index of addr.
func (e *Engine) ClusterOf(addr string) (int, bool) {
	id, ok := e.index[addr]
	return id, ok
}

// Members returns a copy of the addresses of cluster id.
func (e *Engine) Members(id int) []string {
	if id < 0 || id >= len(e.clusters) {
		return nil
	}
	return append([]string(nil), e.clusters[id]...)
}

// Index returns a copy of the address index.
func (e *Engine) Index() model.AddressIndex {
	out := make(model.AddressIndex, len(e.index))
	for addr, id := range e.index {
		out[addr] = id
	}
	return out
}

// Clusters returns the clusters still referenced by the index, ordered by id.
func (e *Engine) Clusters() []model.AddressCluster {
	live := e.liveIDs()
	out := make([]model.AddressCluster, 0, len(live))
	for _, id := range live {
		out = append(out, model.AddressCluster{ID: id, Addresses: e.Members(id)})
	}
	return out
}

// Summary reports address count, live cluster count and arena length.
func (e *Engine) Summary() Summary {
	return Summary{
		Addresses: len(e.index),
		Clusters:  len(e.liveIDs()),
		Entries:   len(e.clusters),
	}
}

func (e *Engine) liveIDs() []int {
	set := make(map[int]struct{})
	for _, id := range e.index {
		set[id] = struct{}{}
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func dedupAppend(base, inc []string) []string {
	if len(inc) == 0 {
		return base
	}
	m := make(map[string]struct{}, len(base)+len(inc))
	out := make([]string, 0, len(base)+len(inc))
	for _, x := range base {
		m[x] = struct{}{}
		out = append(out, x)
	}
	for _, y := range inc {
		if _, ok := m[y]; ok {
			continue
		}
		m[y] = struct{}{}
		out = append(out, y)
	}
	return out
}
