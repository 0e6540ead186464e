// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slr-engine/internal/survey"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func row(idx int, title, paperType, method, taxonomy, algorithm, metrics, sut string) survey.Classification {
	return survey.Classify(types.Paper{
		ID:  types.NewPaperID(idx),
		Row: idx,
		Values: map[types.Field]string{
			types.FieldAuthors:    "Smith, J; Doe, A",
			types.FieldBooktitle:  "ICSE",
			types.FieldTitle:      title,
			types.FieldYear:       "2020",
			types.FieldJournal:    "",
			types.FieldPaperType:  paperType,
			types.FieldMethod:     method,
			types.FieldTaxonomy:   taxonomy,
			types.FieldAlgorithm:  algorithm,
			types.FieldObjectives: "multi",
			types.FieldSUT:        sut,
			types.FieldMetrics:    metrics,
		},
	})
}

func ingestFixture(t *testing.T, store *Store) {
	t.Helper()
	classifications := []survey.Classification{
		row(0, "Coverage-based prioritization", "PS", "prioritization", "coverage", "greedy", "APFD", "SIR: grep"),
		row(1, "History and selection", "PS", "prioritization, selection", "history; graph", "genetic metaheuristic", "precision", "Defects4J"),
		row(2, "Not a PS paper", "SM", "prioritization", "coverage", "greedy", "APFD", "SIR"),
		row(9, "Late graph selection", "PS", "selection", "graph", "dynamic", "time", "Apache Camel"),
	}
	summary, err := store.Ingest(context.Background(), classifications)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Papers != 4 {
		t.Errorf("Papers = %d, want 4", summary.Papers)
	}
	if summary.Labels == 0 {
		t.Error("expected labels to be ingested")
	}
}

func ids(results []QueryResult) []types.PaperID {
	out := make([]types.PaperID, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a, b []types.PaperID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// --- tests ---

func TestNewStoreCreatesSchema(t *testing.T) {
	store := testStore(t)

	for _, table := range []string{"papers", "labels"} {
		var name string
		err := store.db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s not found: %v", table, err)
		}
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := testStore(t)
	ingestFixture(t, a)

	b := testStore(t)
	n, err := b.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("fresh store holds %d papers, want 0", n)
	}
}

func TestIngestStoresPaperFields(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{Title: "coverage-based"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.ID != "paper_1" {
		t.Errorf("ID = %q, want paper_1", r.ID)
	}
	if r.Authors != "Smith, J and Doe, A" {
		t.Errorf("Authors = %q", r.Authors)
	}
	if r.Kind != types.EntryInproceedings || r.Venue != "ICSE" {
		t.Errorf("Kind/Venue = %q/%q, want inproceedings/ICSE", r.Kind, r.Venue)
	}
	if r.Objective != types.ObjectiveMulti {
		t.Errorf("Objective = %q, want multi", r.Objective)
	}

	want := []Label{
		{types.MethodPrioritization, types.DimAlgorithm, "greedy"},
		{types.MethodPrioritization, types.DimMetric, "APFD/NAPFD"},
		{types.MethodPrioritization, types.DimSUT, "SIR"},
		{types.MethodPrioritization, types.DimTaxonomy, "coverage"},
	}
	if len(r.Labels) != len(want) {
		t.Fatalf("labels = %+v, want %+v", r.Labels, want)
	}
	for i := range want {
		if r.Labels[i] != want[i] {
			t.Errorf("label[%d] = %+v, want %+v", i, r.Labels[i], want[i])
		}
	}
}

func TestIngestIneligiblePaperHasNoLabels(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{Title: "not a ps"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if len(results[0].Labels) != 0 {
		t.Errorf("ineligible paper has labels %+v", results[0].Labels)
	}
}

func TestRetrieveByLabel(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	tests := []struct {
		name string
		opts QueryOptions
		want []types.PaperID
	}{
		{"taxonomy", QueryOptions{Method: types.MethodPrioritization, Dimension: types.DimTaxonomy, Label: "coverage"}, []types.PaperID{"paper_1"}},
		{"label case-insensitive", QueryOptions{Label: "sir"}, []types.PaperID{"paper_1"}},
		{"algorithm meta", QueryOptions{Dimension: types.DimAlgorithm, Label: "meta"}, []types.PaperID{"paper_2"}},
		{"graph by method", QueryOptions{Method: types.MethodSelection, Label: "graph"}, []types.PaperID{"paper_2", "paper_10"}},
		{"method only", QueryOptions{Method: types.MethodSelection}, []types.PaperID{"paper_2", "paper_10"}},
		{"no match", QueryOptions{Label: "firewall"}, nil},
		{"conditions share one row", QueryOptions{Method: types.MethodPrioritization, Label: "Time-Based"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := store.Retrieve(context.Background(), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := ids(results); !equalIDs(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetrieveOrdersBySeq(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []types.PaperID{"paper_1", "paper_2", "paper_3", "paper_10"}
	if got := ids(results); !equalIDs(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestRetrieveRespectsMaxResults(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	results, err := store.Retrieve(context.Background(), QueryOptions{MaxResults: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	if !(QueryOptions{MaxResults: 5}).IsEmpty() {
		t.Error("MaxResults alone should be empty")
	}
	if (QueryOptions{Title: "x"}).IsEmpty() {
		t.Error("Title filter should not be empty")
	}
}

func TestExportYAML(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	var buf bytes.Buffer
	if err := store.ExportYAML(context.Background(), QueryOptions{Method: types.MethodSelection}, &buf); err != nil {
		t.Fatal(err)
	}

	var entries []QueryResult
	if err := yaml.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].ID != "paper_10" || entries[1].Title != "Late graph selection" {
		t.Errorf("entry = %+v", entries[1])
	}
}

func TestExportJSON(t *testing.T) {
	store := testStore(t)
	ingestFixture(t, store)

	var buf bytes.Buffer
	if err := store.ExportJSON(context.Background(), QueryOptions{Label: "firewall"}, &buf); err != nil {
		t.Fatal(err)
	}
	var entries []QueryResult
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want empty list", entries)
	}
}

func TestIngestCancelled(t *testing.T) {
	store := testStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Ingest(ctx, []survey.Classification{
		row(0, "t", "PS", "prioritization", "coverage", "greedy", "", ""),
	})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
