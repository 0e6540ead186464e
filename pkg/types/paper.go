// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// PaperID identifies a surveyed paper by its data-row position: "paper_<n>"
// where n is the zero-based data-row index plus one.
type PaperID string

const paperIDPrefix = "paper_"

// NewPaperID returns the identifier for the data row at zero-based index idx0.
func NewPaperID(idx0 int) PaperID {
	return PaperID(fmt.Sprintf("%s%d", paperIDPrefix, idx0+1))
}

// Seq returns the numeric suffix of the identifier. The second return value
// is false when the suffix is missing or not an integer.
func (id PaperID) Seq() (int, bool) {
	_, suffix, ok := strings.Cut(string(id), "_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Field names one of the spreadsheet columns the engine reads.
type Field string

const (
	FieldAuthors    Field = "authors"
	FieldBooktitle  Field = "booktitle"
	FieldTitle      Field = "title"
	FieldYear       Field = "year"
	FieldJournal    Field = "journal"
	FieldPaperType  Field = "paper_type"
	FieldMethod     Field = "method"
	FieldTaxonomy   Field = "taxonomy"
	FieldAlgorithm  Field = "algorithm"
	FieldObjectives Field = "objectives"
	FieldSUT        Field = "sut"
	FieldMetrics    Field = "metrics"
)

// Paper holds the raw cell text of one survey row. A field is absent from
// Values when its column lies outside the loaded table.
type Paper struct {
	// ID is the positional identifier (paper_<n>).
	ID PaperID `json:"id" yaml:"id"`

	// Row is the zero-based data-row index the paper was read from.
	Row int `json:"row" yaml:"row"`

	// Values maps each readable field to its raw cell text.
	Values map[Field]string `json:"values" yaml:"values"`
}

// Value returns the raw text of f and whether the column was readable.
func (p Paper) Value(f Field) (string, bool) {
	v, ok := p.Values[f]
	return v, ok
}

// Has reports whether every listed field was readable.
func (p Paper) Has(fields ...Field) bool {
	for _, f := range fields {
		if _, ok := p.Values[f]; !ok {
			return false
		}
	}
	return true
}

// Method is a regression-testing method keyword found in the method column.
type Method string

const (
	MethodPrioritization Method = "prioritization"
	MethodSelection      Method = "selection"
)

// Methods lists every method in report order.
var Methods = []Method{MethodPrioritization, MethodSelection}

// ParseMethod converts a flag value into a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodPrioritization, MethodSelection:
		return m, nil
	default:
		return "", fmt.Errorf("unknown method %q: use prioritization or selection", s)
	}
}

// Dimension identifies a classification axis.
type Dimension string

const (
	DimTaxonomy  Dimension = "taxonomy"
	DimAlgorithm Dimension = "algorithm"
	DimMetric    Dimension = "metric"
	DimSUT       Dimension = "sut"
)

// Dimensions lists every classification axis.
var Dimensions = []Dimension{DimTaxonomy, DimAlgorithm, DimMetric, DimSUT}

// ParseDimension converts a flag value into a Dimension.
func ParseDimension(s string) (Dimension, error) {
	switch d := Dimension(strings.ToLower(strings.TrimSpace(s))); d {
	case DimTaxonomy, DimAlgorithm, DimMetric, DimSUT:
		return d, nil
	default:
		return "", fmt.Errorf("unknown dimension %q: use taxonomy, algorithm, metric, or sut", s)
	}
}

// ObjectiveCount is the per-paper objective tag. The zero value means the
// objectives cell was empty.
type ObjectiveCount string

const (
	ObjectiveAbsent ObjectiveCount = ""
	ObjectiveOne    ObjectiveCount = "one"
	ObjectiveMulti  ObjectiveCount = "multi"
)
