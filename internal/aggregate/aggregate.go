// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate accumulates classification keys to the papers that
// carry them and orders the result for reporting.
package aggregate

import (
	"sort"

	"github.com/pdiddy/slr-engine/pkg/types"
)

// Index maps keys to the papers referencing them. The zero value is not
// usable; call NewIndex.
type Index[K comparable] struct {
	entries map[K][]types.PaperID
}

// NewIndex returns an empty index.
func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{entries: make(map[K][]types.PaperID)}
}

// Add records ids under key. Duplicates are tolerated until Finalize.
func (x *Index[K]) Add(key K, ids ...types.PaperID) {
	x.entries[key] = append(x.entries[key], ids...)
}

// Len returns the number of keys with at least one paper.
func (x *Index[K]) Len() int {
	n := 0
	for _, ids := range x.entries {
		if len(ids) > 0 {
			n++
		}
	}
	return n
}

// Finalize returns each key's papers deduplicated and sorted by numeric
// suffix. Keys without papers are omitted.
func (x *Index[K]) Finalize() map[K][]types.PaperID {
	out := make(map[K][]types.PaperID, len(x.entries))
	for k, ids := range x.entries {
		if len(ids) == 0 {
			continue
		}
		out[k] = SortIDs(Dedup(ids))
	}
	return out
}

// Dedup returns ids without repeats, keeping first occurrences.
func Dedup(ids []types.PaperID) []types.PaperID {
	seen := make(map[types.PaperID]bool, len(ids))
	out := make([]types.PaperID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// SortIDs sorts ids in place by numeric suffix ascending and returns them.
// Identifiers without a numeric suffix sort last, lexically.
func SortIDs(ids []types.PaperID) []types.PaperID {
	sort.SliceStable(ids, func(i, j int) bool {
		a, okA := ids[i].Seq()
		b, okB := ids[j].Seq()
		switch {
		case okA && okB:
			if a != b {
				return a < b
			}
			return ids[i] < ids[j]
		case okA != okB:
			return okA
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}

// Pair is a cross-tabulation key built from two enumerations.
type Pair struct {
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
}

// OrderPairs sorts pairs by First alphabetically, then by the position of
// Second in secondOrder. Second labels missing from secondOrder come after
// the declared ones, alphabetically.
func OrderPairs(pairs []Pair, secondOrder []string) []Pair {
	rank := rankOf(secondOrder)
	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.First != b.First {
			return a.First < b.First
		}
		ra, rb := rank(a.Second), rank(b.Second)
		if ra != rb {
			return ra < rb
		}
		return a.Second < b.Second
	})
	return pairs
}

// OrderLabels sorts labels by their position in order; undeclared labels
// follow alphabetically.
func OrderLabels(labels []string, order []string) []string {
	rank := rankOf(order)
	sort.SliceStable(labels, func(i, j int) bool {
		ri, rj := rank(labels[i]), rank(labels[j])
		if ri != rj {
			return ri < rj
		}
		return labels[i] < labels[j]
	})
	return labels
}

func rankOf(order []string) func(string) int {
	pos := make(map[string]int, len(order))
	for i, l := range order {
		if _, dup := pos[l]; !dup {
			pos[l] = i
		}
	}
	unseen := len(order)
	return func(l string) int {
		if i, ok := pos[l]; ok {
			return i
		}
		return unseen
	}
}

// Keys returns the keys of a finalized map.
func Keys[K comparable](m map[K][]types.PaperID) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
