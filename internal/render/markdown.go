package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

type mdParser struct {
	src []byte
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// ParseMarkdown converts CMS markdown into blocks. Raw HTML blocks are
// parsed for tables; any other HTML contributes only its text
func ParseMarkdown(src string) []Block {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	p := &mdParser{src: []byte(joinHTMLTables(src))}
	doc := markdown.Parser().Parse(text.NewReader(p.src))
	return p.blocks(doc)
}

func (p *mdParser) blocks(parent ast.Node) []Block {
	var res []Block
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		res = append(res, p.block(n)...)
	}
	return res
}

func (p *mdParser) block(n ast.Node) []Block {
	switch n := n.(type) {
	case *ast.Heading:
		return []Block{&Heading{Level: n.Level, Runs: p.inlines(n)}}
	case *ast.Paragraph, *ast.TextBlock:
		if runs := p.inlines(n); len(runs) > 0 {
			return []Block{&Paragraph{Runs: runs}}
		}
		return nil
	case *ast.List:
		l := &List{Ordered: n.IsOrdered(), Start: n.Start}
		p.listItems(l, n, 0)
		return []Block{l}
	case *ast.ThematicBreak:
		return []Block{&Rule{}}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return []Block{&Paragraph{Runs: []Run{{Text: p.lines(n)}}}}
	case *ast.HTMLBlock:
		return ParseHTML(p.htmlBlock(n))
	case *east.Table:
		return []Block{p.table(n)}
	default:
		return p.blocks(n)
	}
}

func (p *mdParser) listItems(l *List, list *ast.List, depth int) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var runs []Run
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if sub, ok := c.(*ast.List); ok {
				if len(runs) > 0 {
					l.Items = append(l.Items, ListItem{Runs: runs, Depth: depth})
					runs = nil
				}
				p.listItems(l, sub, depth+1)
				continue
			}
			if len(runs) > 0 {
				runs = appendRun(runs, Run{Text: " "})
			}
			for _, r := range p.inlines(c) {
				runs = appendRun(runs, r)
			}
		}
		if len(runs) > 0 {
			l.Items = append(l.Items, ListItem{Runs: runs, Depth: depth})
		}
	}
}

func (p *mdParser) table(t *east.Table) *Table {
	res := &Table{}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for c := row.FirstChild(); c != nil; c = c.NextSibling() {
			if _, ok := c.(*east.TableCell); ok {
				cells = append(cells, PlainText(p.inlines(c)))
			}
		}
		if _, ok := row.(*east.TableHeader); ok {
			res.Header = cells
			continue
		}
		res.Rows = append(res.Rows, cells)
	}
	return res
}

func (p *mdParser) inlines(n ast.Node) []Run {
	var res []Run
	p.collect(n, Run{}, &res)
	return trimRuns(res)
}

func (p *mdParser) collect(parent ast.Node, style Run, res *[]Run) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			*res = appendRun(*res, p.styled(style, string(n.Segment.Value(p.src))))
			if n.HardLineBreak() {
				*res = appendRun(*res, p.styled(style, "\n"))
			} else if n.SoftLineBreak() {
				*res = appendRun(*res, p.styled(style, " "))
			}
		case *ast.String:
			*res = appendRun(*res, p.styled(style, string(n.Value)))
		case *ast.Emphasis:
			s := style
			if n.Level >= 2 {
				s.Bold = true
			} else {
				s.Italic = true
			}
			p.collect(n, s, res)
		case *ast.Link:
			s := style
			s.URL = string(n.Destination)
			before := len(*res)
			p.collect(n, s, res)
			if label := PlainText((*res)[before:]); label != s.URL {
				*res = appendRun(*res, p.styled(style, " ("+s.URL+")"))
			}
		case *ast.AutoLink:
			u := string(n.URL(p.src))
			*res = appendRun(*res, Run{Text: u, URL: u})
		case *ast.RawHTML:
			if isLineBreakTag(p.rawHTML(n)) {
				*res = appendRun(*res, p.styled(style, "\n"))
			}
		default:
			p.collect(n, style, res)
		}
	}
}

func (p *mdParser) styled(style Run, s string) Run {
	style.Text = s
	return style
}

func (p *mdParser) lines(n ast.Node) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(p.src))
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (p *mdParser) htmlBlock(n *ast.HTMLBlock) string {
	res := p.lines(n)
	if n.HasClosure() {
		res += "\n" + string(n.ClosureLine.Value(p.src))
	}
	return res
}

func (p *mdParser) rawHTML(n *ast.RawHTML) string {
	var buf bytes.Buffer
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		buf.Write(seg.Value(p.src))
	}
	return buf.String()
}

// joinHTMLTables drops blank lines between an opening <table> and its
// closing tag, so the table reaches the parser as a single HTML block
func joinHTMLTables(src string) string {
	lines := strings.Split(src, "\n")
	res := make([]string, 0, len(lines))
	depth := 0
	fenced := false
	for _, l := range lines {
		trimmed := strings.TrimSpace(l)
		if depth == 0 && isFence(trimmed) {
			fenced = !fenced
		}
		if fenced {
			res = append(res, l)
			continue
		}
		if depth > 0 && trimmed == "" {
			continue
		}
		lower := strings.ToLower(l)
		depth += strings.Count(lower, "<table") - strings.Count(lower, "</table")
		depth = max(depth, 0)
		res = append(res, l)
	}
	return strings.Join(res, "\n")
}

func isFence(line string) bool {
	return strings.HasPrefix(line, "```") || strings.HasPrefix(line, "~~~")
}

func isLineBreakTag(tag string) bool {
	t := strings.ToLower(strings.ReplaceAll(tag, " ", ""))
	return t == "<br>" || t == "<br/>"
}

// trimRuns drops leading and trailing whitespace from a run sequence
func trimRuns(runs []Run) []Run {
	for len(runs) > 0 {
		runs[0].Text = strings.TrimLeft(runs[0].Text, " \n")
		if runs[0].Text != "" {
			break
		}
		runs = runs[1:]
	}
	for len(runs) > 0 {
		last := len(runs) - 1
		runs[last].Text = strings.TrimRight(runs[last].Text, " \n")
		if runs[last].Text != "" {
			break
		}
		runs = runs[:last]
	}
	return runs
}
