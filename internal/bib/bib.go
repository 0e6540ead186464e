// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bib converts survey rows into bibliographic entries and writes
// them as BibTeX or CSL-YAML.
package bib

import (
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/slr-engine/internal/authors"
	"github.com/pdiddy/slr-engine/internal/cell"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// Fields are the columns a bibliographic entry is built from. A row with
// any of them unreadable yields no entry.
var Fields = []types.Field{
	types.FieldAuthors,
	types.FieldBooktitle,
	types.FieldTitle,
	types.FieldYear,
	types.FieldJournal,
}

// FromPaper builds the entry for p. The second return value is false when
// one of Fields lies outside the table.
func FromPaper(p types.Paper) (types.BibEntry, bool) {
	if !p.Has(Fields...) {
		return types.BibEntry{}, false
	}
	booktitle := clean(p.Values[types.FieldBooktitle])

	e := types.BibEntry{
		ID:     p.ID,
		Kind:   types.EntryArticle,
		Author: authors.Normalize(p.Values[types.FieldAuthors]),
		Title:  clean(p.Values[types.FieldTitle]),
		Year:   Year(p.Values[types.FieldYear]),
		Venue:  clean(p.Values[types.FieldJournal]),
	}
	if booktitle != "" {
		e.Kind = types.EntryInproceedings
		e.Venue = booktitle
	}
	return e, true
}

// Entries builds the entries of every readable paper, in row order.
func Entries(papers []types.Paper) []types.BibEntry {
	var out []types.BibEntry
	for _, p := range papers {
		if e, ok := FromPaper(p); ok {
			out = append(out, e)
		}
	}
	return out
}

// Year renders a year cell as an integer when it parses as a number and as
// the trimmed text otherwise. Fractions are truncated.
func Year(raw string) string {
	s := clean(raw)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

func clean(raw string) string {
	if cell.IsEmpty(raw) {
		return ""
	}
	return strings.TrimSpace(raw)
}
