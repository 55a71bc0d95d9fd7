package reporter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Job report</title>
</head>
<body>
%s
</body>
</html>
`

func newTable(rows [][]string) table.Writer {
	t := table.NewWriter()
	header := make(table.Row, 0, len(Columns))
	for _, c := range Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for _, r := range rows {
		row := make(table.Row, 0, len(r))
		for _, v := range r {
			row = append(row, v)
		}
		t.AppendRow(row)
	}
	return t
}

// renderTable returns a single escaped <table> element.
func renderTable(rows [][]string) string {
	t := newTable(rows)
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault
	t.Style().HTML.CSSClass = "jobs"
	t.Style().HTML.EscapeText = true
	return t.RenderHTML()
}

func writeHTML(w io.Writer, rows [][]string) error {
	_, err := fmt.Fprintf(w, htmlPage, renderTable(rows))
	return err
}
