// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bib

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/slr-engine/pkg/types"
)

// FormatBibTeX renders one entry. Empty fields are left out; the venue is
// written as booktitle for inproceedings and as journal otherwise.
func FormatBibTeX(e types.BibEntry) string {
	var fields []string
	if e.Author != "" {
		fields = append(fields, fmt.Sprintf("  author = {%s}", e.Author))
	}
	if e.Title != "" {
		fields = append(fields, fmt.Sprintf("  title  = {%s}", e.Title))
	}
	if e.Year != "" {
		fields = append(fields, fmt.Sprintf("  year   = {%s}", e.Year))
	}
	if e.Venue != "" {
		if e.Kind == types.EntryInproceedings {
			fields = append(fields, fmt.Sprintf("  booktitle = {%s}", e.Venue))
		} else {
			fields = append(fields, fmt.Sprintf("  journal   = {%s}", e.Venue))
		}
	}
	return fmt.Sprintf("@%s{%s,\n%s\n}\n", e.Kind, e.ID, strings.Join(fields, ",\n"))
}

// WriteBibTeX writes entries separated by a blank line.
func WriteBibTeX(w io.Writer, entries []types.BibEntry) error {
	rendered := make([]string, len(entries))
	for i, e := range entries {
		rendered[i] = FormatBibTeX(e)
	}
	if _, err := io.WriteString(w, strings.Join(rendered, "\n")); err != nil {
		return fmt.Errorf("writing bibtex: %w", err)
	}
	return nil
}
