// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/slr-engine/internal/cell"
	"github.com/pdiddy/slr-engine/pkg/types"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// ParseObjectives tags an objective-count cell as one or multi. An empty
// cell is ObjectiveAbsent. "multu" is a known misspelling in the data.
func ParseObjectives(cellValue string) types.ObjectiveCount {
	if cell.IsEmpty(cellValue) {
		return types.ObjectiveAbsent
	}
	s := strings.ToLower(strings.TrimSpace(cellValue))

	switch {
	case strings.Contains(s, "one"), strings.Contains(s, "single"), s == "1":
		return types.ObjectiveOne
	case strings.Contains(s, "multu"), strings.Contains(s, "multi"):
		return types.ObjectiveMulti
	case strings.Contains(s, "two"), strings.Contains(s, "three"):
		return types.ObjectiveMulti
	}

	for _, run := range digitRunRe.FindAllString(s, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		if n >= 2 {
			return types.ObjectiveMulti
		}
		if n == 1 {
			return types.ObjectiveOne
		}
	}

	if strings.Contains(s, "objectives") || strings.Contains(s, ">") {
		return types.ObjectiveMulti
	}
	return types.ObjectiveOne
}
