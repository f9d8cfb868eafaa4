package render

import (
	"time"

	"github.com/advier-web/parkmanager-tool-new-sub001/pkg/api"
)

// Options control document metadata. Created is stamped into the PDF so
// identical input yields identical bytes
type Options struct {
	Created time.Time
	Locale  string
}

// Factsheet renders a solution and its variants as a PDF
func Factsheet(
	sol *api.Solution, variants []*api.Variant, opts Options,
) ([]byte, error) {
	l := labelsFor(opts.Locale)
	d := newDocument(sol.Title, opts.Created, l)

	d.title(sol.Title, l.factsheet)
	if sol.Summary != "" {
		d.note(sol.Summary)
	}
	d.section(2, l.description, sol.Description)
	d.section(2, l.benefits, sol.Benefits)
	d.section(2, l.challenges, sol.Challenges)

	if len(variants) > 0 {
		d.heading(1, l.variants)
		for _, v := range variants {
			d.variant(v, l)
		}
	}
	return d.output()
}

func (d *document) variant(v *api.Variant, l *labels) {
	d.heading(2, v.Title)
	if v.Summary != "" {
		d.text(v.Summary)
	}
	d.section(3, l.description, v.Description)
	d.section(3, l.costs, v.Costs)
	d.section(3, l.organisation, v.Organisation)
	d.section(3, l.pros, v.Pros)
	d.section(3, l.cons, v.Cons)
}
