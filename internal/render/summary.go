package render

import (
	"strconv"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/wizard"
	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// Summary renders the result of a wizard session as a PDF: the park data,
// the selected reasons, every chosen solution with its variant, the
// governance model, and the variant comparison. The content fetch time is
// used as the creation date
func Summary(st *api.WizardState, c *api.Content) ([]byte, error) {
	l := labelsFor(c.Locale)
	d := newDocument(l.summary, c.FetchedAt, l)
	d.title(l.summary, l.creator)

	d.heading(1, l.park)
	d.keyValues([][2]string{
		{l.companies, strconv.Itoa(st.Park.CompanyCount)},
		{l.employees, strconv.Itoa(st.Park.EmployeeCount)},
		{l.traffic, l.trafficList(&st.Park)},
		{l.pickup, l.pickupName(st.Park.PickupPreference)},
	})

	if reasons := wizard.SelectedReasons(st, c); len(reasons) > 0 {
		d.heading(1, l.reasons)
		list := &List{}
		for _, r := range reasons {
			list.Items = append(list.Items, ListItem{
				Runs: []Run{{Text: r.Title}},
			})
		}
		d.list(list)
	}

	if sols := wizard.SelectedSolutions(st, c); len(sols) > 0 {
		d.heading(1, l.solutions)
		for _, s := range sols {
			d.chosenSolution(st, c, s, l)
		}
	}

	if gm, ok := c.GovernanceModel(st.GovernanceModel); ok {
		d.heading(1, l.governance)
		d.heading(2, gm.Title)
		if gm.Summary != "" {
			d.text(gm.Summary)
		}
		d.blocks(ParseMarkdown(gm.Description), 2)
		d.section(3, l.pros, gm.Pros)
		d.section(3, l.cons, gm.Cons)
	}

	if rows := wizard.Compare(st, c); len(rows) > 0 {
		d.heading(1, l.comparison)
		d.table(comparisonTable(rows, l))
	}
	return d.output()
}

func (d *document) chosenSolution(
	st *api.WizardState, c *api.Content, s *api.Solution, l *labels,
) {
	d.heading(2, s.Title)
	if s.Summary != "" {
		d.text(s.Summary)
	}
	v, ok := wizard.ChosenVariant(st, c, s.ID)
	if !ok {
		d.note(l.noVariant)
		return
	}
	d.keyValues([][2]string{{l.chosenVariant, v.Title}})
	if v.Summary != "" {
		d.text(v.Summary)
	}
	d.section(3, l.costs, v.Costs)
}

func comparisonTable(
	rows []*api.ComparisonRow, l *labels,
) ([]string, [][]string) {
	header := []string{l.solution, l.variant, l.chosen}
	var body [][]string
	for _, r := range rows {
		for _, v := range r.Variants {
			chosen := ""
			if v.ID == r.Chosen {
				chosen = l.yes
			}
			body = append(body, []string{r.Solution.Title, v.Title, chosen})
		}
	}
	return header, body
}
