// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/slr-engine/internal/cell"
)

// Algorithm family labels in declared order.
const (
	AlgoHeuristic = "heuristic"
	AlgoMeta      = "meta"
	AlgoGraph     = "graph"
	AlgoDynamic   = "dynamic"
	AlgoML        = "ml"
	AlgoGreedy    = "greedy"
)

// AlgorithmFamilies is the declared order of algorithm labels.
var AlgorithmFamilies = []string{AlgoHeuristic, AlgoMeta, AlgoGraph, AlgoDynamic, AlgoML, AlgoGreedy}

// Algorithm labels algorithm-family cells. It is a substring matcher with
// two exceptions: "heuristic" is suppressed on tokens containing "meta",
// and "ml" also fires on "machine learning". The bare "ml" substring test
// over-matches words such as "html"; that is accepted.
type Algorithm struct{}

// Match returns the algorithm families named in cellValue.
func (Algorithm) Match(cellValue string) LabelSet {
	found := NewLabelSet()
	for _, tok := range cell.Tokens(cellValue) {
		hasMeta := strings.Contains(tok, "meta")
		if hasMeta {
			found.Add(AlgoMeta)
		}
		if strings.Contains(tok, "heuristic") && !hasMeta {
			found.Add(AlgoHeuristic)
		}
		if strings.Contains(tok, "graph") {
			found.Add(AlgoGraph)
		}
		if strings.Contains(tok, "dynamic") {
			found.Add(AlgoDynamic)
		}
		if strings.Contains(tok, "ml") || strings.Contains(tok, "machine learning") {
			found.Add(AlgoML)
		}
		if strings.Contains(tok, "greedy") {
			found.Add(AlgoGreedy)
		}
	}
	return found
}
