package wizard

import (
	"slices"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// AllVariantsChosen reports whether every selected solution has a variant.
// It holds trivially when no solution is selected
func AllVariantsChosen(st *api.WizardState) bool {
	return len(MissingVariants(st)) == 0
}

// MissingVariants returns the selected solutions that still lack a variant,
// sorted by ID
func MissingVariants(st *api.WizardState) []api.SolutionID {
	var res []api.SolutionID
	for _, id := range st.Solutions.Sorted() {
		if v, ok := st.Variants[id]; !ok || v == "" {
			res = append(res, id)
		}
	}
	return res
}

// SelectedSolutions returns the selected solutions known to the content, in
// display order
func SelectedSolutions(st *api.WizardState, c *api.Content) []*api.Solution {
	var res []*api.Solution
	for _, s := range SortSolutions(c.Solutions) {
		if st.Solutions.Contains(s.ID) {
			res = append(res, s)
		}
	}
	return res
}

// VariantsFor returns the variants of a solution in display order. A variant
// belongs to a solution when it points at the solution or the solution lists
// it
func VariantsFor(s *api.Solution, c *api.Content) []*api.Variant {
	res := c.VariantsOf(s.ID)
	for _, id := range s.Variants {
		v, ok := c.Variant(id)
		if ok && !slices.Contains(res, v) {
			res = append(res, v)
		}
	}
	return SortVariants(res)
}

// SelectedVariants filters the global variant list down to the variants of
// the selected solutions. The result is grouped per solution, with solutions
// in display order
func SelectedVariants(st *api.WizardState, c *api.Content) []*api.Variant {
	var res []*api.Variant
	for _, s := range SelectedSolutions(st, c) {
		res = append(res, VariantsFor(s, c)...)
	}
	return res
}

// ChosenVariant returns the content variant chosen for a selected solution
func ChosenVariant(
	st *api.WizardState, c *api.Content, id api.SolutionID,
) (*api.Variant, bool) {
	vid, ok := st.VariantFor(id)
	if !ok {
		return nil, false
	}
	return c.Variant(vid)
}

// Compare builds the variant comparison table from SelectedVariants: one
// row per selected solution listing its variants and the one currently
// chosen
func Compare(st *api.WizardState, c *api.Content) []*api.ComparisonRow {
	variants := SelectedVariants(st, c)
	res := []*api.ComparisonRow{}
	for _, s := range SelectedSolutions(st, c) {
		chosen, _ := st.VariantFor(s.ID)
		row := &api.ComparisonRow{
			Solution: s,
			Variants: []*api.Variant{},
			Chosen:   chosen,
		}
		for _, v := range variants {
			if belongsTo(s, v) && !slices.Contains(row.Variants, v) {
				row.Variants = append(row.Variants, v)
			}
		}
		res = append(res, row)
	}
	return res
}

func belongsTo(s *api.Solution, v *api.Variant) bool {
	return v.Solution == s.ID || slices.Contains(s.Variants, v.ID)
}
