// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package survey turns the rows of a systematic-literature-review table
// into classified papers and builds the cross-tabulation reports.
package survey

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/slr-engine/internal/classify"
	"github.com/pdiddy/slr-engine/internal/sheet"
	"github.com/pdiddy/slr-engine/internal/sut"
	"github.com/pdiddy/slr-engine/pkg/types"
)

// PaperTypePS is the paper-type code of prioritization/selection papers.
const PaperTypePS = "PS"

// Survey holds the papers of one table and their classifications.
type Survey struct {
	Source          string
	Papers          []types.Paper
	Classifications []Classification

	logger *zap.Logger
}

// Open locates and loads the configured table and classifies every row.
// required lists the fields the caller reads; it sets the width below
// which the table is reloaded without a header row.
func Open(cfg types.Config, logger *zap.Logger, required ...types.Field) (*Survey, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	path, err := sheet.Resolve(cfg.Input.Path, cfg.Input.Dir)
	if err != nil {
		return nil, err
	}
	tbl, err := sheet.Load(path, sheet.Options{
		Sheet:    cfg.Input.Sheet,
		MinWidth: cfg.Columns.MinWidth(required...),
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("loading survey: %w", err)
	}
	return New(tbl, cfg.Columns, logger), nil
}

// New classifies the rows of an already loaded table.
func New(tbl *sheet.Table, cols types.Columns, logger *zap.Logger) *Survey {
	if logger == nil {
		logger = zap.NewNop()
	}
	papers := ReadPapers(tbl, cols)
	s := &Survey{
		Source:          tbl.Source,
		Papers:          papers,
		Classifications: make([]Classification, len(papers)),
		logger:          logger,
	}
	for i, p := range papers {
		s.Classifications[i] = Classify(p)
	}
	logger.Debug("classified survey", zap.String("source", tbl.Source), zap.Int("papers", len(papers)))
	return s
}

// ReadPapers builds one Paper per data row. A field whose column lies
// outside the table is left out of Paper.Values.
func ReadPapers(tbl *sheet.Table, cols types.Columns) []types.Paper {
	positions := cols.Positions()
	papers := make([]types.Paper, tbl.Len())
	for i := range papers {
		row := tbl.Row(i)
		p := types.Paper{
			ID:     types.NewPaperID(i),
			Row:    i,
			Values: make(map[types.Field]string, len(positions)),
		}
		for f, col := range positions {
			v, err := row.Cell(col)
			if errors.Is(err, sheet.ErrColumnOutOfRange) {
				continue
			}
			p.Values[f] = v
		}
		papers[i] = p
	}
	return papers
}

// Eligible reports whether p is a PS paper whose method text names method.
// The paper-type match is exact and case-sensitive after trimming.
func Eligible(p types.Paper, method types.Method) bool {
	paperType, ok1 := p.Value(types.FieldPaperType)
	methodText, ok2 := p.Value(types.FieldMethod)
	if !ok1 || !ok2 {
		return false
	}
	if strings.TrimSpace(paperType) != PaperTypePS {
		return false
	}
	return strings.Contains(strings.ToLower(methodText), string(method))
}

// Classification is the label sets derived from one paper. A set is nil
// when its source column was unreadable; per-method sets exist only for
// the methods the paper is eligible for.
type Classification struct {
	Paper      types.Paper
	Methods    []types.Method
	Taxonomy   map[types.Method]classify.LabelSet
	Metrics    map[types.Method]classify.LabelSet
	Algorithms classify.LabelSet
	SUT        classify.LabelSet
	Objective  types.ObjectiveCount
}

// Eligible reports whether the classification covers method.
func (c Classification) Eligible(method types.Method) bool {
	for _, m := range c.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// Classify derives every label set of p.
func Classify(p types.Paper) Classification {
	c := Classification{
		Paper:    p,
		Taxonomy: make(map[types.Method]classify.LabelSet),
		Metrics:  make(map[types.Method]classify.LabelSet),
	}

	for _, profile := range classify.Profiles() {
		if !Eligible(p, profile.Method) {
			continue
		}
		c.Methods = append(c.Methods, profile.Method)
		if v, ok := p.Value(types.FieldTaxonomy); ok {
			c.Taxonomy[profile.Method] = profile.Taxonomy.Match(v)
		}
		if v, ok := p.Value(types.FieldMetrics); ok {
			c.Metrics[profile.Method] = profile.Metrics.Match(v)
		}
	}

	if v, ok := p.Value(types.FieldAlgorithm); ok {
		c.Algorithms = classify.Algorithm{}.Match(v)
	}
	if v, ok := p.Value(types.FieldObjectives); ok {
		c.Objective = classify.ParseObjectives(v)
	}
	if v, ok := p.Value(types.FieldSUT); ok {
		c.SUT = sut.Classify(v)
	}
	return c
}
