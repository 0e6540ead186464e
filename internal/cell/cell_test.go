// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	blank := "  "
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, true},
		{"NaN float64", math.NaN(), true},
		{"NaN float32", float32(math.NaN()), true},
		{"empty string", "", true},
		{"whitespace", " \t\n", true},
		{"blank pointer", &blank, true},
		{"text", "PS", false},
		{"padded text", "  x  ", false},
		{"zero float", 0.0, false},
		{"integer", 2019, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.in))
		})
	}
}

func TestSplitMulti(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed separators", " a; b ,c ", []string{"a", "b", "c"}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"no separators", "coverage based", []string{"coverage based"}},
		{"every separator", "a|b/c+d·e&f", []string{"a", "b", "c", "d", "e", "f"}},
		{"full-width ampersand", "graph＆greedy", []string{"graph", "greedy"}},
		{"separator runs", "a;;, ,b", []string{"a", "b"}},
		{"only separators", ";,|", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMulti(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"greedy", "meta"}, Tokens("Greedy, META"))
	assert.Equal(t, []string{"coverage"}, Tokens("Coverage"))
	// Only separators: fall back to the whole lower-cased text.
	assert.Equal(t, []string{"/"}, Tokens("/"))
	assert.Equal(t, []string{""}, Tokens(""))
}
