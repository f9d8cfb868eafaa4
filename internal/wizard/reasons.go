package wizard

import "github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"

// Uncategorised is the category assigned to reasons whose category is
// missing from the content
var Uncategorised = &api.Category{
	ID:   "uncategorised",
	Name: "Overig",
}

// GroupReasons groups the reasons by category. Groups follow the category
// display order and each group's reasons follow the reason display order.
// Categories without reasons are left out, and reasons that reference an
// unknown category are collected in a trailing Uncategorised group
func GroupReasons(c *api.Content) []*api.ReasonGroup {
	byCat := map[api.CategoryID][]*api.Reason{}
	var orphans []*api.Reason
	for _, r := range SortReasons(c.Reasons) {
		if _, ok := c.Category(r.Category); !ok {
			orphans = append(orphans, r)
			continue
		}
		byCat[r.Category] = append(byCat[r.Category], r)
	}

	res := []*api.ReasonGroup{}
	for _, cat := range SortCategories(c.Categories) {
		reasons, ok := byCat[cat.ID]
		if !ok {
			continue
		}
		delete(byCat, cat.ID)
		res = append(res, &api.ReasonGroup{
			Category: cat,
			Reasons:  reasons,
		})
	}

	if len(orphans) > 0 {
		res = append(res, &api.ReasonGroup{
			Category: Uncategorised,
			Reasons:  orphans,
		})
	}
	return res
}

// SelectedReasons returns the selected reasons known to the content, in
// display order
func SelectedReasons(st *api.WizardState, c *api.Content) []*api.Reason {
	var res []*api.Reason
	for _, r := range SortReasons(c.Reasons) {
		if st.Reasons.Contains(r.ID) {
			res = append(res, r)
		}
	}
	return res
}
