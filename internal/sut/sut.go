// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sut classifies the systems under test named by a paper into
// origin categories (benchmark suites, Apache projects, industrial systems,
// other public repositories).
package sut

import (
	"strings"

	"github.com/pdiddy/slr-engine/internal/cell"
	"github.com/pdiddy/slr-engine/internal/classify"
)

// Origin categories.
const (
	CategorySIR         = "SIR"
	CategoryDefects4J   = "Defects4J"
	CategoryApache      = "Apache Projects"
	CategoryIndustrial  = "Industrial / Proprietary"
	CategoryOtherPublic = "Other Public Repositories"
)

// CategoryOrder is the print order of the categories.
var CategoryOrder = []string{
	CategorySIR,
	CategoryDefects4J,
	CategoryApache,
	CategoryIndustrial,
	CategoryOtherPublic,
}

// Tokenize splits a SUT cell into names. A piece such as "SIR: grep"
// yields both "SIR" and "grep". Tokens are deduplicated case-insensitively,
// keeping the first spelling.
func Tokenize(raw string) []string {
	if cell.IsEmpty(raw) {
		return nil
	}
	s := strings.NewReplacer("\n", " ", "\r", " ").Replace(raw)

	var tokens []string
	for _, p := range cell.SplitMulti(s) {
		lhs, rhs, found := strings.Cut(p, ":")
		if !found {
			tokens = append(tokens, p)
			continue
		}
		if lhs = strings.TrimSpace(lhs); lhs != "" {
			tokens = append(tokens, lhs)
		}
		tokens = append(tokens, cell.SplitMulti(strings.TrimSpace(rhs))...)
	}

	seen := make(map[string]bool, len(tokens))
	uniq := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, t)
	}
	return uniq
}

// Categorize returns every origin category the tokens belong to. The five
// tests are independent. A non-empty token list that fires no test falls
// back to Other Public Repositories.
func Categorize(tokens []string) classify.LabelSet {
	lc := make([]string, len(tokens))
	for i, t := range tokens {
		lc[i] = strings.ToLower(strings.TrimSpace(t))
	}

	cats := classify.NewLabelSet()
	if anyContains(lc, sirMarkers) || anyNamed(lc, sirPrograms) {
		cats.Add(CategorySIR)
	}
	if anyContains(lc, defects4jMarkers) || anyNamed(lc, defects4jProjects) {
		cats.Add(CategoryDefects4J)
	}
	if anyContains(lc, apacheMarkers) || anyNamed(lc, apacheProjects) {
		cats.Add(CategoryApache)
	}
	if anyContains(lc, industrialMarkers) {
		cats.Add(CategoryIndustrial)
	}
	if anyNamed(lc, otherPublicNames) || anyContains(lc, otherPublicMarkers) {
		cats.Add(CategoryOtherPublic)
	}

	if cats.Len() == 0 && len(lc) > 0 {
		cats.Add(CategoryOtherPublic)
	}
	return cats
}

// Classify tokenizes raw and categorizes it.
func Classify(raw string) classify.LabelSet {
	return Categorize(Tokenize(raw))
}

// anyContains reports whether some token contains some marker.
func anyContains(tokens, markers []string) bool {
	for _, tok := range tokens {
		for _, m := range markers {
			if strings.Contains(tok, m) {
				return true
			}
		}
	}
	return false
}

// anyNamed reports whether some token equals or contains some curated name.
func anyNamed(tokens, names []string) bool {
	for _, tok := range tokens {
		for _, n := range names {
			if tok == n || strings.Contains(tok, n) {
				return true
			}
		}
	}
	return false
}
