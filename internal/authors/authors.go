// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors rewrites free-text author cells into a single
// BibTeX-friendly list joined by " and ".
package authors

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/pdiddy/slr-engine/internal/cell"
)

// Separator joins authors in the canonical form.
const Separator = " and "

var whitespaceRe = regexp.MustCompile(`\s+`)

// unitCommaRe matches a comma that does not sit inside a "Surname, initial"
// unit: the next ASCII letter after it is not lowercase. RE2 has no
// lookahead, hence regexp2.
var unitCommaRe = regexp2.MustCompile(`,(?![^A-Z]*[a-z])`, regexp2.None)

// Normalize infers the author-list format of raw and re-emits it with the
// canonical separator. It never fails: unrecognized input comes back trimmed.
//
// Formats, tried in order: already " and "-joined (whitespace collapsed),
// semicolon-delimited, an even number (at least four) of comma tokens read
// as Last, First pairs, and a comma list with at least three commas split
// between name units.
func Normalize(raw string) string {
	if cell.IsEmpty(raw) {
		return ""
	}
	s := strings.TrimSpace(raw)

	if strings.Contains(s, Separator) {
		return whitespaceRe.ReplaceAllString(s, " ")
	}

	if strings.Contains(s, ";") {
		return strings.Join(trimNonEmpty(strings.Split(s, ";")), Separator)
	}

	tokens := strings.Split(s, ",")
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	if len(tokens) >= 4 && len(tokens)%2 == 0 {
		var pairs []string
		for i := 0; i < len(tokens); i += 2 {
			last, first := tokens[i], tokens[i+1]
			if last != "" && first != "" {
				pairs = append(pairs, last+", "+first)
			}
		}
		if len(pairs) > 0 {
			return strings.Join(pairs, Separator)
		}
	}

	if strings.Count(s, ",") >= 3 {
		var parts []string
		for _, p := range splitUnits(s) {
			p = strings.Trim(strings.TrimSpace(p), ",")
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 1 {
			return strings.Join(parts, Separator)
		}
	}

	return s
}

// splitUnits splits s at every comma matched by unitCommaRe.
func splitUnits(s string) []string {
	runes := []rune(s)
	var parts []string
	start := 0
	m, err := unitCommaRe.FindStringMatch(s)
	for err == nil && m != nil {
		parts = append(parts, string(runes[start:m.Index]))
		start = m.Index + m.Length
		m, err = unitCommaRe.FindNextMatch(m)
	}
	if err != nil {
		return []string{s}
	}
	return append(parts, string(runes[start:]))
}

func trimNonEmpty(pieces []string) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
