// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"

	"github.com/pdiddy/slr-engine/internal/cell"
)

// MetricOther is the catch-all bucket for tokens that only match a hint.
const MetricOther = "Other"

// MetricRule binds a canonical metric bucket to its patterns.
type MetricRule struct {
	Label    string
	Patterns []*regexp.Regexp
}

// Metric buckets evaluation-metric cells. Every rule is tried on every
// token; within one rule the first matching pattern adds the label, and
// the scan moves to the next rule. A token that fired no rule contributes
// MetricOther if one of the hints matches, and nothing otherwise.
type Metric struct {
	Rules []MetricRule
	Hints []*regexp.Regexp
	// Order is the declared bucket order, MetricOther last.
	Order []string
}

// Match returns the metric buckets of cellValue.
func (m Metric) Match(cellValue string) LabelSet {
	found := NewLabelSet()
	if cell.IsEmpty(cellValue) {
		return found
	}
	for _, tok := range cell.Tokens(cellValue) {
		matched := false
		for _, rule := range m.Rules {
			for _, re := range rule.Patterns {
				if re.MatchString(tok) {
					found.Add(rule.Label)
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}
		for _, re := range m.Hints {
			if re.MatchString(tok) {
				found.Add(MetricOther)
				break
			}
		}
	}
	return found
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// Prioritization metric buckets.
const (
	MetricAPFD           = "APFD/NAPFD"
	MetricCodeCoverage   = "Code-Coverage"
	MetricFaultsDetected = "Number of Faults Detected / FDR"
	MetricTimeCost       = "Time-Based / Cost-Aware"
	MetricPrecision      = "Precision/Recall/F-Measure"
	MetricExecutionTime  = "Execution Time"
)

// Selection metric buckets. MetricPrecision is shared.
const (
	MetricTestCount = "Number of Test Cases / Ratio"
	MetricTimeBased = "Time-Based"
	MetricSafety    = "Safety / Fault-Detection Capability"
)

// PrioritizationMetrics buckets metrics reported by prioritization papers.
var PrioritizationMetrics = Metric{
	Rules: []MetricRule{
		{MetricAPFD, compileAll(
			`\bapfd\b`, `\bnapfd\b`, `normalized-?apfd\b`, `\bapfdc\b`,
			`\bapva\b`, `\bafdp\b`, `\bafpd\b`,
			`average percentage (of )?faults detected`,
		)},
		{MetricCodeCoverage, compileAll(
			`\bapbc\b`, `\bapsc\b`, `\bapfc\b`,
		)},
		{MetricFaultsDetected, compileAll(
			`faults? detected\b`, `\bfdr\b`, `fault detection rate`,
			`high-?severity faults detected early`,
		)},
		{MetricTimeCost, compileAll(
			`time to first failure|\bttff\b`, `mean fault detection time|\bmtfd\b`,
			`time to risk detection`, `execution cost`,
			`cost-?aware apfdc`, `average percentage of fault detected per cost`,
		)},
		{MetricPrecision, compileAll(
			`\bprecision\b`, `\brecall\b`, `f-?measure\b`, `\bf1-?score\b`,
		)},
		{MetricExecutionTime, compileAll(
			`prioritization execution time`, `time for prioritization`,
			`execution time( per algorithm)?\b`,
		)},
	},
	Hints: compileAll(
		`kendall tau`, `redundancy rate`, `\bhypervolume\b`, `\bnrpa\b`,
		`\bndcg\b`, `mutation score`, `effectiveness on flaky tests`,
		`\bcode coverage\b`, `first-?fault position`, `target test path finding rate`,
		`hamming distance`, `# ?of test cases executed`, `percentage of suite runned`,
	),
	Order: []string{
		MetricAPFD, MetricCodeCoverage, MetricFaultsDetected, MetricTimeCost,
		MetricPrecision, MetricExecutionTime, MetricOther,
	},
}

// SelectionMetrics buckets metrics reported by selection papers.
var SelectionMetrics = Metric{
	Rules: []MetricRule{
		{MetricTestCount, compileAll(
			`numero test selezionati`, `% ?di test selezionati`, `# ?tests? selected`,
			`selected test ratio`, `test suite reduction`,
		)},
		{MetricTimeBased, compileAll(
			`user\+system execution time`, `test suite execution time`, `\btime\b`,
			`\bae time\b`, `\baec time\b`, `execution time`,
		)},
		{MetricPrecision, compileAll(
			`\bprecision\b`, `\brecall\b`, `f-?measure\b`, `\bprecision ?%\b`,
		)},
		{MetricSafety, compileAll(
			`\bsafety\b`, `safety %`, `fault-?detection capability`,
			`fault detection ability`, `number of detected faults`,
			`detection effectiveness`,
		)},
	},
	Hints: compileAll(
		`\bhypervolume\b`, `qualitative/?effectiveness`, `time saving percentage`,
		`size of (the )?pareto frontier`, `number of non-?dominated solutions`,
		`memory consumption`,
	),
	Order: []string{
		MetricTestCount, MetricTimeBased, MetricPrecision, MetricSafety, MetricOther,
	},
}
