// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"go.uber.org/zap"

	"github.com/pdiddy/slr-engine/internal/aggregate"
	"github.com/pdiddy/slr-engine/internal/classify"
	"github.com/pdiddy/slr-engine/internal/sut"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// PaperRef is a paper listed under a report key.
type PaperRef struct {
	ID             types.PaperID `json:"id" yaml:"id"`
	MultiObjective bool          `json:"multi_objective,omitempty" yaml:"multi_objective,omitempty"`
}

// LabelEntry lists the papers carrying one label.
type LabelEntry struct {
	Label  string          `json:"label" yaml:"label"`
	Papers []types.PaperID `json:"papers" yaml:"papers"`
}

// PairEntry lists the papers carrying both labels of a pair.
type PairEntry struct {
	aggregate.Pair `yaml:",inline"`
	Papers         []PaperRef `json:"papers" yaml:"papers"`
}

// TaxonomyAlgorithmReport cross-tabulates taxonomy classes against
// algorithm families for one method.
type TaxonomyAlgorithmReport struct {
	Method  types.Method `json:"method" yaml:"method"`
	Entries []PairEntry  `json:"entries" yaml:"entries"`
}

// MethodMetrics is the metrics report of one method.
type MethodMetrics struct {
	Method          types.Method `json:"method" yaml:"method"`
	Metrics         []LabelEntry `json:"metrics" yaml:"metrics"`
	TaxonomyMetrics []PairEntry  `json:"taxonomy_metrics" yaml:"taxonomy_metrics"`
}

// MetricsReport holds the metrics reports of every method.
type MetricsReport struct {
	Methods []MethodMetrics `json:"methods" yaml:"methods"`
}

// MethodSUT is the SUT-origin report of one method.
type MethodSUT struct {
	Method     types.Method `json:"method" yaml:"method"`
	Categories []LabelEntry `json:"categories" yaml:"categories"`
}

// SUTReport holds the SUT-origin reports of every method.
type SUTReport struct {
	Methods []MethodSUT `json:"methods" yaml:"methods"`
}

// TaxonomyAlgorithm pairs every taxonomy class with every algorithm family
// of each eligible paper. Papers lacking either label set are left out.
// Papers tagged multi-objective are flagged.
func (s *Survey) TaxonomyAlgorithm(method types.Method) (TaxonomyAlgorithmReport, error) {
	profile, err := classify.ProfileFor(method)
	if err != nil {
		return TaxonomyAlgorithmReport{}, err
	}

	idx := aggregate.NewIndex[aggregate.Pair]()
	objectives := make(map[types.PaperID]types.ObjectiveCount)

	for _, c := range s.Classifications {
		if !c.Eligible(method) {
			continue
		}
		if !c.Paper.Has(types.FieldTaxonomy, types.FieldAlgorithm, types.FieldObjectives) {
			s.skip(c.Paper, "taxonomy-algorithm")
			continue
		}
		objectives[c.Paper.ID] = c.Objective
		taxos, algos := c.Taxonomy[method], c.Algorithms
		if taxos.Len() == 0 || algos.Len() == 0 {
			continue
		}
		for _, t := range taxos.Sorted() {
			for _, a := range algos.Sorted() {
				idx.Add(aggregate.Pair{First: t, Second: a}, c.Paper.ID)
			}
		}
	}

	final := idx.Finalize()
	report := TaxonomyAlgorithmReport{Method: profile.Method}
	for _, pair := range aggregate.OrderPairs(aggregate.Keys(final), classify.AlgorithmFamilies) {
		entry := PairEntry{Pair: pair}
		for _, id := range final[pair] {
			entry.Papers = append(entry.Papers, PaperRef{
				ID:             id,
				MultiObjective: objectives[id] == types.ObjectiveMulti,
			})
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

// Metrics lists, per method, the papers of each metric bucket and of each
// taxonomy × metric pair. A paper with metrics but no taxonomy match still
// counts in the per-metric listing.
func (s *Survey) Metrics() MetricsReport {
	var report MetricsReport
	for _, profile := range classify.Profiles() {
		perMetric := aggregate.NewIndex[string]()
		perPair := aggregate.NewIndex[aggregate.Pair]()

		for _, c := range s.Classifications {
			if !c.Eligible(profile.Method) {
				continue
			}
			if !c.Paper.Has(types.FieldTaxonomy, types.FieldMetrics) {
				s.skip(c.Paper, "metrics")
				continue
			}
			metrics := c.Metrics[profile.Method]
			if metrics.Len() == 0 {
				continue
			}
			for _, m := range metrics.Sorted() {
				perMetric.Add(m, c.Paper.ID)
			}
			for _, t := range c.Taxonomy[profile.Method].Sorted() {
				for _, m := range metrics.Sorted() {
					perPair.Add(aggregate.Pair{First: t, Second: m}, c.Paper.ID)
				}
			}
		}

		mm := MethodMetrics{Method: profile.Method}
		metricPapers := perMetric.Finalize()
		for _, label := range aggregate.OrderLabels(aggregate.Keys(metricPapers), profile.MetricOrder) {
			mm.Metrics = append(mm.Metrics, LabelEntry{Label: label, Papers: metricPapers[label]})
		}
		pairPapers := perPair.Finalize()
		for _, pair := range aggregate.OrderPairs(aggregate.Keys(pairPapers), profile.MetricOrder) {
			mm.TaxonomyMetrics = append(mm.TaxonomyMetrics, PairEntry{Pair: pair, Papers: refs(pairPapers[pair])})
		}
		report.Methods = append(report.Methods, mm)
	}
	return report
}

// SUT lists, per method, the papers whose systems under test fall in each
// origin category. Papers with an empty SUT cell are left out.
func (s *Survey) SUT() SUTReport {
	indexes := make(map[types.Method]*aggregate.Index[string], len(types.Methods))
	for _, m := range types.Methods {
		indexes[m] = aggregate.NewIndex[string]()
	}

	for _, c := range s.Classifications {
		if len(c.Methods) == 0 {
			continue
		}
		if !c.Paper.Has(types.FieldSUT) {
			s.skip(c.Paper, "sut")
			continue
		}
		if c.SUT.Len() == 0 {
			continue
		}
		for _, m := range c.Methods {
			for _, cat := range c.SUT.Sorted() {
				indexes[m].Add(cat, c.Paper.ID)
			}
		}
	}

	var report SUTReport
	for _, m := range types.Methods {
		ms := MethodSUT{Method: m}
		final := indexes[m].Finalize()
		for _, cat := range sut.CategoryOrder {
			if ids, ok := final[cat]; ok {
				ms.Categories = append(ms.Categories, LabelEntry{Label: cat, Papers: ids})
			}
		}
		report.Methods = append(report.Methods, ms)
	}
	return report
}

func (s *Survey) skip(p types.Paper, report string) {
	s.logger.Debug("skipping row with unreadable columns",
		zap.String("paper", string(p.ID)),
		zap.String("report", report))
}

func refs(ids []types.PaperID) []PaperRef {
	out := make([]PaperRef, len(ids))
	for i, id := range ids {
		out[i] = PaperRef{ID: id}
	}
	return out
}
