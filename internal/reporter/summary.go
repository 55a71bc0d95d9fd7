package reporter

import (
	"strings"

	"go-job-alert/internal/scraper"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary renders the report rows as a console table.
func Summary(jobs []scraper.Job) string {
	if len(jobs) == 0 {
		return "No matching jobs.\n"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "Company", "Source", "Location"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 50},
		{Number: 3, WidthMax: 30},
	})
	for i, r := range toRows(jobs) {
		t.AppendRow(table.Row{i + 1, r[0], r[1], r[4], r[5]})
	}
	t.AppendFooter(table.Row{"", "Total", len(jobs)})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String()
}
