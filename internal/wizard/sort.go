package wizard

import (
	"cmp"
	"slices"
	"strings"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

type sortKey struct {
	order *int
	title string
	id    string
}

// SortCategories returns the categories in display order
func SortCategories(items []*api.Category) []*api.Category {
	return sortBy(items, func(c *api.Category) sortKey {
		return sortKey{c.Order, c.Name, string(c.ID)}
	})
}

// SortReasons returns the reasons in display order
func SortReasons(items []*api.Reason) []*api.Reason {
	return sortBy(items, func(r *api.Reason) sortKey {
		return sortKey{r.Order, r.Title, string(r.ID)}
	})
}

// SortSolutions returns the solutions in display order
func SortSolutions(items []*api.Solution) []*api.Solution {
	return sortBy(items, func(s *api.Solution) sortKey {
		return sortKey{s.Order, s.Title, string(s.ID)}
	})
}

// SortVariants returns the variants in display order
func SortVariants(items []*api.Variant) []*api.Variant {
	return sortBy(items, func(v *api.Variant) sortKey {
		return sortKey{v.Order, v.Title, string(v.ID)}
	})
}

// SortGovernanceModels returns the governance models in display order
func SortGovernanceModels(
	items []*api.GovernanceModel,
) []*api.GovernanceModel {
	return sortBy(items, func(g *api.GovernanceModel) sortKey {
		return sortKey{g.Order, g.Title, string(g.ID)}
	})
}

// sortBy copies items, drops nil entries, and orders the rest by explicit
// order (missing orders last), then case-insensitive title, then ID
func sortBy[T any](items []*T, key func(*T) sortKey) []*T {
	res := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			res = append(res, item)
		}
	}
	slices.SortStableFunc(res, func(l, r *T) int {
		return compareKeys(key(l), key(r))
	})
	return res
}

func compareKeys(l, r sortKey) int {
	switch {
	case l.order != nil && r.order == nil:
		return -1
	case l.order == nil && r.order != nil:
		return 1
	case l.order != nil && r.order != nil:
		if c := cmp.Compare(*l.order, *r.order); c != 0 {
			return c
		}
	}
	lt, rt := strings.ToLower(l.title), strings.ToLower(r.title)
	if c := cmp.Compare(lt, rt); c != 0 {
		return c
	}
	return cmp.Compare(l.id, r.id)
}
