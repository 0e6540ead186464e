// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperIDSeq(t *testing.T) {
	tests := []struct {
		id     PaperID
		want   int
		wantOK bool
	}{
		{NewPaperID(0), 1, true},
		{NewPaperID(9), 10, true},
		{"paper_x", 0, false},
		{"paper", 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.id.Seq()
		assert.Equal(t, tt.wantOK, ok, tt.id)
		assert.Equal(t, tt.want, got, tt.id)
	}
	assert.Equal(t, PaperID("paper_10"), NewPaperID(9))
}

func TestPaperHas(t *testing.T) {
	p := Paper{Values: map[Field]string{FieldTitle: "", FieldYear: "2020"}}

	assert.True(t, p.Has(FieldTitle, FieldYear))
	assert.False(t, p.Has(FieldTitle, FieldSUT))

	v, ok := p.Value(FieldTitle)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod(" Selection ")
	require.NoError(t, err)
	assert.Equal(t, MethodSelection, m)

	_, err = ParseMethod("reduction")
	assert.Error(t, err)
}

func TestParseDimension(t *testing.T) {
	for _, d := range Dimensions {
		got, err := ParseDimension(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDimension("venue")
	assert.Error(t, err)
}

func TestColumnsMinWidth(t *testing.T) {
	cols := DefaultColumns()

	assert.Equal(t, 15, cols.MinWidth(FieldAuthors, FieldBooktitle, FieldTitle, FieldYear, FieldJournal))
	assert.Equal(t, 29, cols.MinWidth(FieldPaperType, FieldMethod, FieldTaxonomy, FieldAlgorithm, FieldObjectives))
	assert.Equal(t, 33, cols.MinWidth(FieldMetrics))
	assert.Equal(t, 0, cols.MinWidth())
	assert.Len(t, cols.Positions(), 12)
}
