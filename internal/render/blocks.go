package render

type (
	// Block is one vertical element of a rendered markdown field
	Block interface {
		block()
	}

	// Run is a span of inline text sharing one style
	Run struct {
		Text   string
		URL    string
		Bold   bool
		Italic bool
	}

	Heading struct {
		Runs  []Run
		Level int
	}

	Paragraph struct {
		Runs []Run
	}

	// List holds the items of a list, with nested lists flattened into it
	// at a greater depth
	List struct {
		Items   []ListItem
		Start   int
		Ordered bool
	}

	ListItem struct {
		Runs  []Run
		Depth int
	}

	Table struct {
		Header []string
		Rows   [][]string
	}

	Rule struct{}
)

func (*Heading) block()   {}
func (*Paragraph) block() {}
func (*List) block()      {}
func (*Table) block()     {}
func (*Rule) block()      {}

// PlainText joins the text of the runs
func PlainText(runs []Run) string {
	n := 0
	for _, r := range runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

func (r Run) sameStyle(o Run) bool {
	return r.URL == o.URL && r.Bold == o.Bold && r.Italic == o.Italic
}

// appendRun adds a run, merging it into the previous one when the styles
// match
func appendRun(runs []Run, r Run) []Run {
	if r.Text == "" {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].sameStyle(r) {
		runs[n-1].Text += r.Text
		return runs
	}
	return append(runs, r)
}
