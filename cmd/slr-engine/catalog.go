// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slr-engine/internal/catalog"
	"github.com/pdiddy/slr-engine/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query or export the classified papers",
	Long: `Catalog loads the spreadsheet, classifies every paper, and indexes the
results in an in-memory SQLite database for the lifetime of the command.
Use subcommands to query papers by label or to export them.`,
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "List papers matching label and title filters",
	Long: `Query lists the papers carrying a label, optionally restricted to a
method and dimension, or whose title contains a substring. Method,
dimension, and label must all hold for the same classification.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	opts, err := queryOptsFromFlags(cmd)
	if err != nil {
		return err
	}
	if opts.IsEmpty() {
		return fmt.Errorf("filter required: provide --method, --dimension, --label, or --title")
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(cmd.OutOrStdout(), results, jsonOutput)
}

func formatQueryOutput(w io.Writer, results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		if results == nil {
			results = []catalog.QueryResult{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "%-10s  %-50s  %-8s  %s\n", "Paper", "Title", "Year", "Labels")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, r := range results {
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		fmt.Fprintf(w, "%-10s  %-50s  %-8s  %s\n", r.ID, title, r.Year, formatLabels(r.Labels))
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
	return nil
}

func formatLabels(labels []catalog.Label) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s/%s=%s", l.Method, l.Dimension, l.Label)
	}
	return strings.Join(parts, "; ")
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the classified papers to YAML or JSON",
	Long: `Export writes every classified paper (or a filtered subset) with its
labels to stdout or to the file given with -o. Supports the same filter
flags as query.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")

	opts, err := queryOptsFromFlags(cmd)
	if err != nil {
		return err
	}

	var export func(*catalog.Store, io.Writer) error
	switch format {
	case "yaml", "":
		export = func(s *catalog.Store, w io.Writer) error { return s.ExportYAML(context.Background(), opts, w) }
	case "json":
		export = func(s *catalog.Store, w io.Writer) error { return s.ExportJSON(context.Background(), opts, w) }
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	if output == "" || output == "-" {
		return export(store, cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := export(store, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", output)
	return nil
}

// --- shared helpers ---

// openCatalog loads the spreadsheet and ingests every classification.
func openCatalog() (*catalog.Store, error) {
	s, err := openSurvey(types.FieldPaperType, types.FieldMethod, types.FieldTaxonomy,
		types.FieldAlgorithm, types.FieldObjectives, types.FieldSUT, types.FieldMetrics)
	if err != nil {
		return nil, err
	}

	store, err := catalog.NewStore(logger)
	if err != nil {
		return nil, err
	}
	if _, err := store.Ingest(context.Background(), s.Classifications); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func queryOptsFromFlags(cmd *cobra.Command) (catalog.QueryOptions, error) {
	methodFlag, _ := cmd.Flags().GetString("method")
	dimFlag, _ := cmd.Flags().GetString("dimension")
	label, _ := cmd.Flags().GetString("label")
	title, _ := cmd.Flags().GetString("title")
	limit, _ := cmd.Flags().GetInt("limit")

	opts := catalog.QueryOptions{
		Label:      strings.TrimSpace(label),
		Title:      strings.TrimSpace(title),
		MaxResults: limit,
	}
	if methodFlag != "" {
		m, err := types.ParseMethod(methodFlag)
		if err != nil {
			return opts, err
		}
		opts.Method = m
	}
	if dimFlag != "" {
		d, err := types.ParseDimension(dimFlag)
		if err != nil {
			return opts, err
		}
		opts.Dimension = d
	}
	return opts, nil
}

func init() {
	for _, c := range []*cobra.Command{catalogQueryCmd, catalogExportCmd} {
		c.Flags().String("method", "", "filter by method: prioritization or selection")
		c.Flags().String("dimension", "", "filter by dimension: taxonomy, algorithm, metric, sut")
		c.Flags().String("label", "", "filter by canonical label (case-insensitive)")
		c.Flags().String("title", "", "filter by title substring (case-insensitive)")
	}

	// Query flags.
	catalogQueryCmd.Flags().Int("limit", 0, "maximum results (0 = default of 20)")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().StringP("output", "o", "-", "output file, or - for stdout")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogQueryCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
