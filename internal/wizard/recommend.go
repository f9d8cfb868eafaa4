package wizard

import (
	"slices"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/util"
)

// Recommend ranks solutions by how many of the selected reasons they
// address, most first. Ties keep the solution display order, and solutions
// that address none of the selected reasons are left out
func Recommend(st *api.WizardState, c *api.Content) []*api.Recommendation {
	res := []*api.Recommendation{}
	for _, s := range SortSolutions(c.Solutions) {
		matches := util.Set[api.ReasonID]{}
		for _, r := range s.Reasons {
			if st.Reasons.Contains(r) {
				matches.Add(r)
			}
		}
		if matches.IsEmpty() {
			continue
		}
		res = append(res, &api.Recommendation{
			Solution: s,
			Matches:  matches.Sorted(),
			Score:    matches.Len(),
		})
	}
	slices.SortStableFunc(res, func(l, r *api.Recommendation) int {
		return r.Score - l.Score
	})
	return res
}
