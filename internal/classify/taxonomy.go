// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/slr-engine/internal/cell"
)

// Taxonomy keys are lowercase substrings; each key is also its label.
var (
	// PrioritizationTaxonomy lists the test-case prioritization classes.
	PrioritizationTaxonomy = []string{
		"coverage", "requirement", "probability", "distribution",
		"human", "clustering", "history", "model", "cost", "other",
	}

	// SelectionTaxonomy lists the regression test selection classes.
	SelectionTaxonomy = []string{
		"integer", "data-", "symbolic", "dynamic", "graph",
		"textual", "sdg", "path", "modification", "firewall",
		"cluster", "design",
	}
)

// Substring fires a key's label when the key is contained in a token.
// Several keys may fire on one token.
type Substring struct {
	Keys []string
}

// NewSubstring returns a substring matcher over keys.
func NewSubstring(keys []string) Substring {
	return Substring{Keys: keys}
}

// Match returns the keys contained in any token of cellValue.
func (m Substring) Match(cellValue string) LabelSet {
	found := NewLabelSet()
	for _, tok := range cell.Tokens(cellValue) {
		for _, key := range m.Keys {
			if strings.Contains(tok, key) {
				found.Add(key)
			}
		}
	}
	return found
}
