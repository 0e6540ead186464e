// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"

	"github.com/pdiddy/slr-engine/pkg/types"
)

// Profile bundles the per-method classification behavior: which taxonomy
// keys apply and how metrics are bucketed.
type Profile struct {
	Method       types.Method
	TaxonomyKeys []string
	Taxonomy     Matcher
	Metrics      Matcher
	MetricOrder  []string
}

var (
	prioritization = Profile{
		Method:       types.MethodPrioritization,
		TaxonomyKeys: PrioritizationTaxonomy,
		Taxonomy:     NewSubstring(PrioritizationTaxonomy),
		Metrics:      PrioritizationMetrics,
		MetricOrder:  PrioritizationMetrics.Order,
	}
	selection = Profile{
		Method:       types.MethodSelection,
		TaxonomyKeys: SelectionTaxonomy,
		Taxonomy:     NewSubstring(SelectionTaxonomy),
		Metrics:      SelectionMetrics,
		MetricOrder:  SelectionMetrics.Order,
	}
)

// Profiles returns the prioritization and selection profiles in report order.
func Profiles() []Profile {
	return []Profile{prioritization, selection}
}

// ProfileFor returns the profile of method.
func ProfileFor(method types.Method) (Profile, error) {
	switch method {
	case types.MethodPrioritization:
		return prioritization, nil
	case types.MethodSelection:
		return selection, nil
	default:
		return Profile{}, fmt.Errorf("no classification profile for method %q", method)
	}
}
