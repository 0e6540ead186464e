// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps free-text classification cells onto canonical
// label sets: taxonomy classes, algorithm families, evaluation-metric
// buckets, and the objective-count tag.
package classify

import "sort"

// LabelSet is an unordered set of canonical labels.
type LabelSet map[string]struct{}

// NewLabelSet returns a set holding labels.
func NewLabelSet(labels ...string) LabelSet {
	s := make(LabelSet, len(labels))
	for _, l := range labels {
		s.Add(l)
	}
	return s
}

// Add inserts label into the set.
func (s LabelSet) Add(label string) {
	s[label] = struct{}{}
}

// Has reports whether label is in the set.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of labels.
func (s LabelSet) Len() int {
	return len(s)
}

// Sorted returns the labels alphabetically.
func (s LabelSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Ordered returns the labels in the declared order, followed by any label
// missing from order in alphabetical order.
func (s LabelSet) Ordered(order []string) []string {
	out := make([]string, 0, len(s))
	declared := make(map[string]bool, len(order))
	for _, l := range order {
		declared[l] = true
		if s.Has(l) {
			out = append(out, l)
		}
	}
	var extra []string
	for l := range s {
		if !declared[l] {
			extra = append(extra, l)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Matcher maps a raw cell to the set of labels whose rule fires on any token.
type Matcher interface {
	Match(cell string) LabelSet
}
