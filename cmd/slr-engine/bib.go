// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slr-engine/internal/bib"
	"github.com/pdiddy/slr-engine/pkg/types"
)

var bibCmd = &cobra.Command{
	Use:   "bib",
	Short: "Generate a bibliography from every row of the spreadsheet",
	Long: `Bib writes one entry per spreadsheet row, keyed paper_<n> by row position.
A row with a proceedings name becomes @inproceedings, any other row @article.
Author lists are normalized to the "A and B" form.

Use --format csl for CSL-YAML instead of BibTeX, and -o - for stdout.`,
	RunE: runBib,
}

func runBib(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatName, _ := cmd.Flags().GetString("format")

	format, err := parseBibFormat(formatName)
	if err != nil {
		return err
	}

	s, err := openSurvey(bib.Fields...)
	if err != nil {
		return err
	}
	entries := bib.Entries(s.Papers)

	if output == "-" {
		return writeBib(cmd.OutOrStdout(), format, entries)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := writeBib(f, format, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", output, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Written %d entries to %s\n", len(entries), output)
	fmt.Fprintf(w, "Source: %s\n", s.Source)
	return nil
}

func parseBibFormat(s string) (types.BibFormat, error) {
	switch f := types.BibFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case types.BibTeX, "":
		return types.BibTeX, nil
	case types.BibCSL:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use bibtex or csl", s)
	}
}

func writeBib(w io.Writer, format types.BibFormat, entries []types.BibEntry) error {
	if format == types.BibCSL {
		return bib.WriteCSL(w, entries)
	}
	return bib.WriteBibTeX(w, entries)
}

func init() {
	bibCmd.Flags().StringP("output", "o", "slr.bib", "output file, or - for stdout")
	bibCmd.Flags().String("format", "bibtex", "output format: bibtex or csl")

	rootCmd.AddCommand(bibCmd)
}
