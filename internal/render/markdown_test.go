package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advier-web/parkmanager-tool-new-sub001/internal/render"
)

func TestParseMarkdownEmpty(t *testing.T) {
	assert.Nil(t, render.ParseMarkdown(""))
	assert.Nil(t, render.ParseMarkdown("  \n\n "))
}

func TestParseMarkdownInline(t *testing.T) {
	blocks := render.ParseMarkdown(
		"## Werking\n\nDe bus rijdt **elk kwartier** en _soms_ vaker.",
	)
	require.Len(t, blocks, 2)

	h, ok := blocks[0].(*render.Heading)
	require.True(t, ok)
	assert.Equal(t, 2, h.Level)
	assert.Equal(t, "Werking", render.PlainText(h.Runs))

	p, ok := blocks[1].(*render.Paragraph)
	require.True(t, ok)
	assert.Equal(t, []render.Run{
		{Text: "De bus rijdt "},
		{Text: "elk kwartier", Bold: true},
		{Text: " en "},
		{Text: "soms", Italic: true},
		{Text: " vaker."},
	}, p.Runs)
}

func TestParseMarkdownSoftBreaks(t *testing.T) {
	blocks := render.ParseMarkdown("regel een\nregel twee")
	require.Len(t, blocks, 1)
	p := blocks[0].(*render.Paragraph)
	assert.Equal(t, "regel een regel twee", render.PlainText(p.Runs))
}

func TestParseMarkdownLinks(t *testing.T) {
	blocks := render.ParseMarkdown(
		"Zie [de website](https://example.nl) of <https://cms.example>.",
	)
	require.Len(t, blocks, 1)
	p := blocks[0].(*render.Paragraph)

	assert.Equal(t,
		"Zie de website (https://example.nl) of https://cms.example.",
		render.PlainText(p.Runs),
	)
	assert.Contains(t, p.Runs, render.Run{
		Text: "de website", URL: "https://example.nl",
	})
	assert.Contains(t, p.Runs, render.Run{
		Text: "https://cms.example", URL: "https://cms.example",
	})
}

func TestParseMarkdownLists(t *testing.T) {
	blocks := render.ParseMarkdown(
		"- Minder auto's\n- Betere bereikbaarheid\n  - ook 's avonds\n",
	)
	require.Len(t, blocks, 1)
	l, ok := blocks[0].(*render.List)
	require.True(t, ok)
	assert.False(t, l.Ordered)
	require.Len(t, l.Items, 3)
	assert.Equal(t, "Minder auto's", render.PlainText(l.Items[0].Runs))
	assert.Equal(t, 0, l.Items[1].Depth)
	assert.Equal(t, "ook 's avonds", render.PlainText(l.Items[2].Runs))
	assert.Equal(t, 1, l.Items[2].Depth)
}

func TestParseMarkdownOrderedList(t *testing.T) {
	blocks := render.ParseMarkdown("3. Kosten\n4. Bezetting\n")
	require.Len(t, blocks, 1)
	l := blocks[0].(*render.List)
	assert.True(t, l.Ordered)
	assert.Equal(t, 3, l.Start)
	assert.Len(t, l.Items, 2)
}

func TestParseMarkdownTable(t *testing.T) {
	blocks := render.ParseMarkdown(
		"| Post | Bedrag |\n|------|--------|\n| Bus | 80.000 |\n" +
			"| **Chauffeur** | 45.000 |\n",
	)
	require.Len(t, blocks, 1)
	tbl, ok := blocks[0].(*render.Table)
	require.True(t, ok)
	assert.Equal(t, []string{"Post", "Bedrag"}, tbl.Header)
	assert.Equal(t, [][]string{
		{"Bus", "80.000"},
		{"Chauffeur", "45.000"},
	}, tbl.Rows)
}

func TestParseMarkdownRule(t *testing.T) {
	blocks := render.ParseMarkdown("boven\n\n---\n\nonder")
	require.Len(t, blocks, 3)
	assert.IsType(t, &render.Rule{}, blocks[1])
}

func TestParseMarkdownHTMLTable(t *testing.T) {
	blocks := render.ParseMarkdown(
		"Inleiding\n\n<table>\n  <tr><th>Kenmerk</th><th>Waarde</th></tr>\n" +
			"  <tr><td>Bestuur</td><td>Onafhankelijk\n  bestuur</td></tr>\n" +
			"</table>\n\nAfsluiting",
	)
	require.Len(t, blocks, 3)

	tbl, ok := blocks[1].(*render.Table)
	require.True(t, ok)
	assert.Equal(t, []string{"Kenmerk", "Waarde"}, tbl.Header)
	assert.Equal(t, [][]string{{"Bestuur", "Onafhankelijk bestuur"}}, tbl.Rows)

	last := blocks[2].(*render.Paragraph)
	assert.Equal(t, "Afsluiting", render.PlainText(last.Runs))
}

func TestParseMarkdownHTMLTableBlankLines(t *testing.T) {
	blocks := render.ParseMarkdown(
		"<table>\n<tr><th>A</th><th>B</th></tr>\n\n" +
			"<tr><td>1</td><td>2</td></tr>\n</table>\n\nNa de tabel",
	)
	require.Len(t, blocks, 2)

	tbl, ok := blocks[0].(*render.Table)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, tbl.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Rows)

	p := blocks[1].(*render.Paragraph)
	assert.Equal(t, "Na de tabel", render.PlainText(p.Runs))
}

func TestParseMarkdownFenceKeepsBlankLines(t *testing.T) {
	blocks := render.ParseMarkdown("```\n<table>\n\nx\n```\n\nna")
	require.Len(t, blocks, 2)
	p := blocks[0].(*render.Paragraph)
	assert.Equal(t, "<table>\n\nx", render.PlainText(p.Runs))
}

func TestParseMarkdownLineBreakTag(t *testing.T) {
	blocks := render.ParseMarkdown("eerste<br/>tweede")
	require.Len(t, blocks, 1)
	p := blocks[0].(*render.Paragraph)
	assert.Equal(t, "eerste\ntweede", render.PlainText(p.Runs))
}
