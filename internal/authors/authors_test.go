// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"already joined collapses whitespace", "  Smith, J and   Doe,\tA ", "Smith, J and Doe, A"},
		{"semicolons", "Smith, J; Doe, A", "Smith, J and Doe, A"},
		{"semicolons with empties", "Smith, J;; Doe, A;", "Smith, J and Doe, A"},
		{"last first pairs", "Smith, John, Doe, Anna", "Smith, John and Doe, Anna"},
		{"six tokens", "Smith, John, Doe, Anna, Roe, Bob", "Smith, John and Doe, Anna and Roe, Bob"},
		{"pair with empty half skipped", "Smith, John, , Anna, Roe, Bob", "Smith, John and Roe, Bob"},
		{
			"heuristic split on odd token count",
			"Smith J., Doe A., Roe B., Poe C., Lee D.",
			"Smith J. and Doe A. and Roe B. and Poe C. and Lee D.",
		},
		{
			"lowercase particle keeps the unit together",
			"Smith J., van Doe A., Roe B., Poe C., Lee D.",
			"Smith J., van Doe A. and Roe B. and Poe C. and Lee D.",
		},
		{"all pairs empty falls through to raw", ", , , ", ", , ,"},
		{"single name", "Smith, John", "Smith, John"},
		{"two commas unchanged", "A, B, C", "A, B, C"},
		{"plain", "  John Smith ", "John Smith"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotentOnJoinedLists(t *testing.T) {
	inputs := []string{
		"Smith, J; Doe, A",
		"Smith, John, Doe, Anna",
		"Smith J., Doe A., Roe B., Poe C., Lee D.",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestSplitUnitsNonASCII(t *testing.T) {
	// Rune offsets from regexp2 must line up with multi-byte names.
	got := splitUnits("Müller J., Doe Ø., Roe B., Lee D., Poe C.")
	assert.Equal(t, []string{"Müller J.", " Doe Ø.", " Roe B.", " Lee D.", " Poe C."}, got)
}
