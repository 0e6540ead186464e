// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"colon splits prefix and items", "SIR: grep, flex", []string{"SIR", "grep", "flex"}},
		{"case-insensitive dedup keeps first", "grep; GREP; flex", []string{"grep", "flex"}},
		{"colon with separators", "Defects4J: Lang / Math", []string{"Defects4J", "Lang", "Math"}},
		{"empty prefix", ":grep", []string{"grep"}},
		{"newlines become spaces", "Apache\nAnt", []string{"Apache Ant"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"sir marker and programs in one token", []string{"SIR: grep, flex"}, []string{CategorySIR}},
		{"defects4j", []string{"Defects4J", "Lang", "Math"}, []string{CategoryDefects4J}},
		{"multiple membership", []string{"Apache Ant"}, []string{CategorySIR, CategoryApache}},
		{"industrial", []string{"Siemens industrial system"}, []string{CategoryIndustrial}},
		{"named public repository", []string{"jEdit"}, []string{CategoryOtherPublic}},
		{"public dataset marker", []string{"a public dataset"}, []string{CategoryOtherPublic}},
		{"fallback", []string{"MyCustomApp"}, []string{CategoryOtherPublic}},
		{"no tokens", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.tokens).Ordered(CategoryOrder))
		})
	}
}

func TestClassify(t *testing.T) {
	got := Classify("SIR: grep, flex; Defects4J: Chart")
	assert.Equal(t, []string{CategorySIR, CategoryDefects4J}, got.Ordered(CategoryOrder))
	assert.Equal(t, 0, Classify("").Len())
}
