// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/slr-engine/pkg/types"
)

func ids(ss ...string) []types.PaperID {
	out := make([]types.PaperID, len(ss))
	for i, s := range ss {
		out[i] = types.PaperID(s)
	}
	return out
}

func TestSortIDsNumeric(t *testing.T) {
	got := SortIDs(ids("paper_10", "paper_2", "paper_1"))
	assert.Equal(t, ids("paper_1", "paper_2", "paper_10"), got)
}

func TestSortIDsUnparseableLast(t *testing.T) {
	got := SortIDs(ids("paper_x", "paper_3", "other", "paper_1"))
	assert.Equal(t, ids("paper_1", "paper_3", "other", "paper_x"), got)
}

func TestDedup(t *testing.T) {
	assert.Equal(t, ids("paper_2", "paper_1"), Dedup(ids("paper_2", "paper_1", "paper_2", "paper_1")))
}

func TestIndexFinalize(t *testing.T) {
	x := NewIndex[string]()
	x.Add("coverage", "paper_10", "paper_2")
	x.Add("coverage", "paper_2", "paper_1")
	x.Add("history", "paper_9")
	x.Add("empty")

	assert.Equal(t, 2, x.Len())

	want := map[string][]types.PaperID{
		"coverage": ids("paper_1", "paper_2", "paper_10"),
		"history":  ids("paper_9"),
	}
	if diff := cmp.Diff(want, x.Finalize()); diff != "" {
		t.Errorf("Finalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexPairKeys(t *testing.T) {
	x := NewIndex[Pair]()
	x.Add(Pair{"coverage", "greedy"}, "paper_1")
	x.Add(Pair{"coverage", "greedy"}, "paper_1")
	x.Add(Pair{"coverage", "meta"}, "paper_1")

	got := x.Finalize()
	assert.Len(t, got, 2)
	assert.Equal(t, ids("paper_1"), got[Pair{"coverage", "greedy"}])
}

func TestOrderPairs(t *testing.T) {
	order := []string{"heuristic", "meta", "graph", "dynamic", "ml", "greedy"}
	pairs := []Pair{
		{"history", "ml"},
		{"coverage", "greedy"},
		{"coverage", "zeta"},
		{"coverage", "alpha"},
		{"coverage", "meta"},
		{"cost", "graph"},
	}
	want := []Pair{
		{"cost", "graph"},
		{"coverage", "meta"},
		{"coverage", "greedy"},
		{"coverage", "alpha"},
		{"coverage", "zeta"},
		{"history", "ml"},
	}
	if diff := cmp.Diff(want, OrderPairs(pairs, order)); diff != "" {
		t.Errorf("OrderPairs() mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderLabels(t *testing.T) {
	order := []string{"SIR", "Defects4J", "Other"}
	got := OrderLabels([]string{"Other", "Custom", "SIR", "Another"}, order)
	assert.Equal(t, []string{"SIR", "Other", "Another", "Custom"}, got)
}

func TestKeys(t *testing.T) {
	m := map[string][]types.PaperID{"a": ids("paper_1")}
	assert.Equal(t, []string{"a"}, Keys(m))
}
