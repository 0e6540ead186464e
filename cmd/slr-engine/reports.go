// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/slr-engine/internal/report"
	"github.com/pdiddy/slr-engine/internal/survey"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// --- taxonomy ---

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Cross-tabulate taxonomy classes against algorithm families",
	Long: `Taxonomy lists, for every (taxonomy, algorithm) pair, the PS papers of the
chosen method carrying both labels. Papers with more than one objective are
tagged [multi-obj].`,
	RunE: runTaxonomy,
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	methodFlag, _ := cmd.Flags().GetString("method")
	method, err := types.ParseMethod(methodFlag)
	if err != nil {
		return err
	}
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}

	s, err := openSurvey(types.FieldPaperType, types.FieldMethod,
		types.FieldTaxonomy, types.FieldAlgorithm, types.FieldObjectives)
	if err != nil {
		return err
	}
	return writeTaxonomy(cmd.OutOrStdout(), s, method, format)
}

func writeTaxonomy(w io.Writer, s *survey.Survey, method types.Method, format types.OutputFormat) error {
	r, err := s.TaxonomyAlgorithm(method)
	if err != nil {
		return err
	}
	return report.Write(w, format, r, func(w io.Writer) { report.FormatTaxonomyAlgorithm(r, w) })
}

// --- metrics ---

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List papers per evaluation metric, for each method",
	Long: `Metrics buckets the evaluation metrics of PS papers into canonical groups
(APFD, coverage, precision/recall, ...) separately for prioritization and
selection, then cross-tabulates taxonomy classes against those groups.`,
	RunE: runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	s, err := openSurvey(types.FieldPaperType, types.FieldMethod,
		types.FieldTaxonomy, types.FieldMetrics)
	if err != nil {
		return err
	}
	return writeMetrics(cmd.OutOrStdout(), s, format)
}

func writeMetrics(w io.Writer, s *survey.Survey, format types.OutputFormat) error {
	r := s.Metrics()
	return report.Write(w, format, r, func(w io.Writer) { report.FormatMetrics(r, w) })
}

// --- sut ---

var sutCmd = &cobra.Command{
	Use:   "sut",
	Short: "List papers per system-under-test origin, for each method",
	Long: `SUT classifies the systems under test of each PS paper by origin (SIR,
Defects4J, Apache projects, industrial, other public repositories) and lists
the papers per origin for prioritization and selection.`,
	RunE: runSUT,
}

func runSUT(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	s, err := openSurvey(types.FieldPaperType, types.FieldMethod, types.FieldSUT)
	if err != nil {
		return err
	}
	return writeSUT(cmd.OutOrStdout(), s, format)
}

func writeSUT(w io.Writer, s *survey.Survey, format types.OutputFormat) error {
	r := s.SUT()
	return report.Write(w, format, r, func(w io.Writer) { report.FormatSUT(r, w) })
}

// --- dump ---

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the classification columns of every row",
	Long: `Dump prints title, method, taxonomy, algorithm, objectives, SUT, and
metrics of every row, separated by " %% ".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSurvey(survey.DumpFields...)
		if err != nil {
			return err
		}
		return s.Dump(cmd.OutOrStdout())
	},
}

// --- shared helpers ---

func formatFlag(cmd *cobra.Command) (types.OutputFormat, error) {
	f, _ := cmd.Flags().GetString("format")
	return report.ParseFormat(f)
}

func init() {
	taxonomyCmd.Flags().String("method", string(types.MethodPrioritization), "method: prioritization or selection")

	for _, c := range []*cobra.Command{taxonomyCmd, metricsCmd, sutCmd} {
		c.Flags().String("format", string(types.FormatText), "output format: text, json, or yaml")
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(dumpCmd)
}
