package render

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// Markdown renders tables as one Markdown document under title.
func Markdown(title string, tables []table, a *Amounts) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if title != "" {
		doc.H1(title)
	}
	for _, t := range tables {
		doc.H2(t.title)
		if len(t.rows) == 0 {
			doc.PlainText("No data for the selected periods.")
			continue
		}
		doc.Table(markdownTable(t, a))
	}

	return doc.String()
}

func markdownTable(t table, a *Amounts) md.TableSet {
	set := md.TableSet{
		Header: t.header,
		Rows:   make([][]string, 0, len(t.rows)),
	}
	for i := range t.header {
		align := md.AlignRight
		if i == 0 || (len(t.rows) > 0 && t.rows[0][i].kind == textCell) {
			align = md.AlignLeft
		}
		set.Alignment = append(set.Alignment, align)
	}
	for _, r := range t.rows {
		row := make([]string, len(r))
		for i, c := range r {
			row[i] = display(c, a)
		}
		set.Rows = append(set.Rows, row)
	}
	return set
}

func display(c cell, a *Amounts) string {
	switch c.kind {
	case moneyCell:
		return a.Money(c.value)
	case percentCell:
		return a.Percent(c.value)
	case daysCell:
		return a.Days(c.value)
	case ratioCell:
		return a.Ratio(c.value)
	default:
		if c.text == "" {
			return "-"
		}
		return c.text
	}
}
