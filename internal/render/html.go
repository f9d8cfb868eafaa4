package render

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML converts a raw HTML fragment into blocks. Tables become table
// blocks and the text around them becomes paragraphs. Rows without an
// enclosing table are read as a table of their own
func ParseHTML(src string) []Block {
	if hasOrphanRows(src) {
		src = "<table>" + src + "</table>"
	}
	nodes, err := html.ParseFragment(strings.NewReader(src), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return []Block{&Paragraph{Runs: []Run{{Text: src}}}}
	}

	h := &htmlBlocks{}
	for _, n := range nodes {
		h.walk(n)
	}
	h.flush()
	return h.res
}

type htmlBlocks struct {
	res  []Block
	text strings.Builder
}

func (h *htmlBlocks) walk(n *html.Node) {
	switch {
	case n.Type == html.TextNode:
		h.text.WriteString(flatten(n.Data))
		return
	case n.Type == html.ElementNode && n.DataAtom == atom.Table:
		h.flush()
		h.res = append(h.res, htmlTable(n))
		return
	case n.Type == html.ElementNode && n.DataAtom == atom.Br:
		h.text.WriteByte('\n')
		return
	case n.Type == html.ElementNode && isCellElement(n.DataAtom):
		h.text.WriteByte(' ')
		defer h.text.WriteByte(' ')
	case n.Type == html.ElementNode && isBlockElement(n.DataAtom):
		h.flush()
		defer h.flush()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		h.walk(c)
	}
}

func (h *htmlBlocks) flush() {
	s := collapseSpace(h.text.String())
	h.text.Reset()
	if s != "" {
		h.res = append(h.res, &Paragraph{Runs: []Run{{Text: s}}})
	}
}

func htmlTable(t *html.Node) *Table {
	res := &Table{}
	for _, tr := range findAll(t, atom.Tr) {
		var cells []string
		header := true
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Th:
				cells = append(cells, collapseSpace(nodeText(c)))
			case atom.Td:
				header = false
				cells = append(cells, collapseSpace(nodeText(c)))
			}
		}
		if len(cells) == 0 {
			continue
		}
		if header && res.Header == nil && len(res.Rows) == 0 {
			res.Header = cells
			continue
		}
		res.Rows = append(res.Rows, cells)
	}
	return res
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var res []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			res = append(res, c)
			continue
		}
		res = append(res, findAll(c, a)...)
	}
	return res
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(flatten(n.Data))
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteByte('\n')
		case n.Type == html.ElementNode && isBlockElement(n.DataAtom):
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// flatten turns source line breaks into spaces, leaving <br> as the only
// source of explicit breaks
func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

// collapseSpace folds runs of whitespace to single spaces while keeping
// explicit line breaks
func collapseSpace(s string) string {
	lines := strings.Split(s, "\n")
	res := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			res = append(res, l)
		}
	}
	return strings.Join(res, "\n")
}

func hasOrphanRows(src string) bool {
	lower := strings.ToLower(src)
	if strings.Contains(lower, "<table") {
		return false
	}
	return strings.Contains(lower, "<tr") || strings.Contains(lower, "<td")
}

func isCellElement(a atom.Atom) bool {
	return a == atom.Td || a == atom.Th || a == atom.Tr
}

func isBlockElement(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Ul, atom.Ol, atom.Li, atom.H1, atom.H2,
		atom.H3, atom.H4, atom.H5, atom.H6, atom.Section, atom.Blockquote:
		return true
	default:
		return false
	}
}
