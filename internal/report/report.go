// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders survey reports as plain text, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slr-engine/internal/survey"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// MultiObjectiveTag decorates papers with more than one objective.
const MultiObjectiveTag = " [multi-obj]"

// ParseFormat converts a flag value into an OutputFormat.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case types.FormatText, types.FormatJSON, types.FormatYAML:
		return f, nil
	case "":
		return types.FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q: use text, json, or yaml", s)
	}
}

// FormatJSON writes v as indented JSON.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatYAML writes v as YAML.
func FormatYAML(v any, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(v)
}

// Write renders v in format, using text for the plain-text rendering.
func Write(w io.Writer, format types.OutputFormat, v any, text func(io.Writer)) error {
	switch format {
	case types.FormatJSON:
		return FormatJSON(v, w)
	case types.FormatYAML:
		return FormatYAML(v, w)
	case types.FormatText, "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// FormatTaxonomyAlgorithm writes one numbered block per pair:
//
//	1.
//	(coverage, greedy) [2] = paper_1 [multi-obj], paper_4
func FormatTaxonomyAlgorithm(r survey.TaxonomyAlgorithmReport, w io.Writer) {
	for i, e := range r.Entries {
		decorated := make([]string, len(e.Papers))
		for j, p := range e.Papers {
			decorated[j] = string(p.ID)
			if p.MultiObjective {
				decorated[j] += MultiObjectiveTag
			}
		}
		fmt.Fprintf(w, "%d.\n", i+1)
		fmt.Fprintf(w, "(%s, %s) [%d] = %s\n", e.First, e.Second, len(e.Papers), strings.Join(decorated, ", "))
	}
}

// FormatMetrics writes, per method, the metric listing followed by the
// taxonomy × metric listing.
func FormatMetrics(r survey.MetricsReport, w io.Writer) {
	for _, m := range r.Methods {
		method := strings.ToUpper(string(m.Method))

		fmt.Fprintf(w, "\n=== %s — METRICS ===\n", method)
		for _, e := range m.Metrics {
			fmt.Fprintf(w, "%s [%d]: %s\n", e.Label, len(e.Papers), joinIDs(e.Papers))
		}

		fmt.Fprintf(w, "\n=== %s — TAXONOMY × METRIC ===\n", method)
		for _, e := range m.TaxonomyMetrics {
			fmt.Fprintf(w, "(%s, %s) [%d]: %s\n", e.First, e.Second, len(e.Papers), joinRefs(e.Papers))
		}
	}
}

// FormatSUT writes, per method, the method name, one line per non-empty
// category, and a blank line.
func FormatSUT(r survey.SUTReport, w io.Writer) {
	for _, m := range r.Methods {
		fmt.Fprintln(w, m.Method)
		for _, e := range m.Categories {
			fmt.Fprintf(w, "%s [%d] : %s\n", e.Label, len(e.Papers), joinIDs(e.Papers))
		}
		fmt.Fprintln(w)
	}
}

func joinIDs(ids []types.PaperID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return strings.Join(s, ", ")
}

func joinRefs(refs []survey.PaperRef) string {
	s := make([]string, len(refs))
	for i, r := range refs {
		s[i] = string(r.ID)
	}
	return strings.Join(s, ", ")
}
