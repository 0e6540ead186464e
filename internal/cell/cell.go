// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cell decides emptiness of spreadsheet cells and splits
// multi-valued cells into atomic tokens.
package cell

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// separatorRe matches runs of the multi-value separators ; , | / + · &.
var separatorRe = regexp.MustCompile(`[;,|/+\x{00B7}&]+`)

// fullWidthAmp is normalized to ASCII before splitting.
const fullWidthAmp = "＆"

// IsEmpty reports whether v is missing, a NaN float, or text that trims to empty.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	case string:
		return strings.TrimSpace(x) == ""
	case *string:
		return x == nil || strings.TrimSpace(*x) == ""
	default:
		return strings.TrimSpace(fmt.Sprint(x)) == ""
	}
}

// SplitMulti splits raw on the separator set, trims each piece, and drops
// empty pieces. An empty cell yields an empty slice.
func SplitMulti(raw string) []string {
	if IsEmpty(raw) {
		return []string{}
	}
	s := strings.ReplaceAll(raw, fullWidthAmp, "&")
	parts := separatorRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Tokens returns the lower-cased tokens of raw for matching. When splitting
// yields nothing the whole lower-cased cell is the single token, so an
// empty cell produces one empty token that no rule fires on.
func Tokens(raw string) []string {
	lower := raw
	if IsEmpty(raw) {
		lower = ""
	}
	lower = strings.ToLower(lower)
	parts := SplitMulti(lower)
	if len(parts) == 0 {
		return []string{lower}
	}
	return parts
}
