package render

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
)

type document struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	labels *labels
	width  float64
	left   float64
}

const (
	fontFamily  = "Helvetica"
	bodySize    = 10.0
	lineHeight  = 5.0
	indentWidth = 6.0
	cellPadding = 1.5
	pageMargin  = 18.0
)

var headingSizes = map[int]float64{1: 18, 2: 14, 3: 12}

func newDocument(title string, created time.Time, l *labels) *document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(created.UTC())
	pdf.SetCreator(l.creator, true)
	pdf.SetTitle(title, true)
	pdf.AliasNbPages("")

	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	d := &document{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		labels: l,
		width:  w - left - right,
		left:   left,
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, d.tr(l.creator), "", 0, "L", false, 0, "")
		page := fmt.Sprintf("%d / {nb}", pdf.PageNo())
		pdf.CellFormat(0, 5, page, "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()
	return d
}

func (d *document) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *document) title(text, subtitle string) {
	d.pdf.SetFont(fontFamily, "B", 22)
	d.pdf.MultiCell(d.width, 10, d.tr(text), "", "L", false)
	if subtitle != "" {
		d.pdf.SetFont(fontFamily, "", 12)
		d.pdf.SetTextColor(90, 90, 90)
		d.pdf.MultiCell(d.width, 6, d.tr(subtitle), "", "L", false)
		d.pdf.SetTextColor(0, 0, 0)
	}
	d.pdf.Ln(4)
}

func (d *document) heading(level int, text string) {
	size, ok := headingSizes[level]
	if !ok {
		size = 11
	}
	d.pdf.Ln(2)
	d.pdf.SetFont(fontFamily, "B", size)
	d.pdf.MultiCell(d.width, size*0.5, d.tr(text), "", "L", false)
	d.pdf.Ln(1)
}

// section draws a heading followed by a markdown field. Empty fields draw
// nothing
func (d *document) section(level int, title, md string) {
	blocks := ParseMarkdown(md)
	if len(blocks) == 0 {
		return
	}
	d.heading(level, title)
	d.blocks(blocks, level)
}

func (d *document) blocks(blocks []Block, level int) {
	for _, b := range blocks {
		switch b := b.(type) {
		case *Heading:
			d.heading(level+b.Level, PlainText(b.Runs))
		case *Paragraph:
			d.runs(b.Runs)
			d.pdf.Ln(lineHeight + 1)
		case *List:
			d.list(b)
		case *Table:
			d.table(b.Header, b.Rows)
		case *Rule:
			d.rule()
		}
	}
}

func (d *document) text(s string) {
	d.runs([]Run{{Text: s}})
	d.pdf.Ln(lineHeight + 1)
}

func (d *document) note(s string) {
	d.runs([]Run{{Text: s, Italic: true}})
	d.pdf.Ln(lineHeight + 1)
}

func (d *document) runs(runs []Run) {
	for _, r := range runs {
		style := ""
		if r.Bold {
			style += "B"
		}
		if r.Italic {
			style += "I"
		}
		d.pdf.SetFont(fontFamily, style, bodySize)
		if r.URL != "" {
			d.pdf.SetTextColor(0, 70, 160)
			d.pdf.WriteLinkString(lineHeight, d.tr(r.Text), r.URL)
			d.pdf.SetTextColor(0, 0, 0)
			continue
		}
		d.pdf.Write(lineHeight, d.tr(r.Text))
	}
}

func (d *document) list(l *List) {
	n := l.Start
	if n == 0 {
		n = 1
	}
	for _, item := range l.Items {
		indent := d.left + float64(item.Depth+1)*indentWidth
		marker := "•"
		if l.Ordered && item.Depth == 0 {
			marker = strconv.Itoa(n) + "."
			n++
		}
		d.pdf.SetFont(fontFamily, "", bodySize)
		d.pdf.SetX(indent - indentWidth)
		d.pdf.CellFormat(indentWidth, lineHeight, d.tr(marker), "", 0, "L",
			false, 0, "")

		d.pdf.SetLeftMargin(indent)
		d.runs(item.Runs)
		d.pdf.SetLeftMargin(d.left)
		d.pdf.Ln(lineHeight)
	}
	d.pdf.Ln(1)
}

func (d *document) keyValues(rows [][2]string) {
	keyWidth := d.width * 0.4
	for _, kv := range rows {
		d.pdf.SetFont(fontFamily, "B", bodySize)
		d.pdf.CellFormat(keyWidth, lineHeight+1, d.tr(kv[0]), "", 0, "L",
			false, 0, "")
		d.pdf.SetFont(fontFamily, "", bodySize)
		d.pdf.MultiCell(d.width-keyWidth, lineHeight+1, d.tr(kv[1]), "", "L",
			false)
	}
	d.pdf.Ln(2)
}

func (d *document) rule() {
	y := d.pdf.GetY() + 1
	d.pdf.SetDrawColor(180, 180, 180)
	d.pdf.Line(d.left, y, d.left+d.width, y)
	d.pdf.SetDrawColor(0, 0, 0)
	d.pdf.Ln(3)
}

// table draws a grid with equal column widths, wrapping cell text and
// breaking pages between rows
func (d *document) table(header []string, rows [][]string) {
	cols := len(header)
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	if cols == 0 {
		return
	}
	colWidth := d.width / float64(cols)

	d.pdf.Ln(1)
	if len(header) > 0 {
		d.pdf.SetFont(fontFamily, "B", bodySize)
		d.pdf.SetFillColor(230, 236, 242)
		d.tableRow(header, cols, colWidth, true)
	}
	d.pdf.SetFont(fontFamily, "", bodySize)
	for _, r := range rows {
		d.tableRow(r, cols, colWidth, false)
	}
	d.pdf.Ln(3)
}

func (d *document) tableRow(cells []string, cols int, w float64, fill bool) {
	lines := make([][][]byte, cols)
	height := 1
	for i := range cols {
		txt := ""
		if i < len(cells) {
			txt = d.tr(cells[i])
		}
		lines[i] = d.pdf.SplitLines([]byte(txt), w-2*cellPadding)
		height = max(height, len(lines[i]))
	}
	h := float64(height)*lineHeight + 2*cellPadding

	_, pageH := d.pdf.GetPageSize()
	_, _, _, bottom := d.pdf.GetMargins()
	if d.pdf.GetY()+h > pageH-bottom {
		d.pdf.AddPage()
	}

	y := d.pdf.GetY()
	style := "D"
	if fill {
		style = "FD"
	}
	for i := range cols {
		x := d.left + float64(i)*w
		d.pdf.Rect(x, y, w, h, style)
		d.pdf.SetXY(x+cellPadding, y+cellPadding)
		txt := string(bytes.Join(lines[i], []byte("\n")))
		d.pdf.MultiCell(w-2*cellPadding, lineHeight, txt, "", "L", false)
	}
	d.pdf.SetXY(d.left, y+h)
}
