// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/slr-engine/pkg/types"
)

// DumpSeparator joins the cells of one dumped row.
const DumpSeparator = " %% "

// DumpFields are the columns printed by Dump, in print order.
var DumpFields = []types.Field{
	types.FieldTitle,
	types.FieldMethod,
	types.FieldTaxonomy,
	types.FieldAlgorithm,
	types.FieldObjectives,
	types.FieldSUT,
	types.FieldMetrics,
}

// Dump writes the classification columns of every paper, one line per row.
// Unreadable cells print as empty.
func (s *Survey) Dump(w io.Writer) error {
	cells := make([]string, len(DumpFields))
	for _, p := range s.Papers {
		for i, f := range DumpFields {
			v, _ := p.Value(f)
			cells[i] = v
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, DumpSeparator)); err != nil {
			return fmt.Errorf("writing row %s: %w", p.ID, err)
		}
	}
	return nil
}
