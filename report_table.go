package main

import (
	"fmt"
	"strconv"
	"strings"
)

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// GenerateMedianTable renders the median summary rows as a bordered text
// table for the run log.
func GenerateMedianTable(summaries []MedianSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Variable", "SampleType", "Median"})

	for _, s := range summaries {
		t.AppendRows([]table.Row{
			{s.Variable, s.SampleType, strconv.FormatFloat(s.Median, 'f', 3, 64)},
		})
	}

	t.SetStyle(table.StyleDefault)
	// medians are pre-formatted strings, align them like numbers
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Median", Align: text.AlignRight},
	})

	return t.Render()
}

// GenerateMedianTableMarkdown renders the same summary as a markdown table.
func GenerateMedianTableMarkdown(summaries []MedianSummary) string {
	buf := &strings.Builder{}
	buf.WriteString("| Variable | SampleType | Median |\n")
	buf.WriteString("| --- | --- | --- |\n")

	for _, s := range summaries {
		buf.WriteString(fmt.Sprintf("| %s | %s | %.3f |\n", s.Variable, s.SampleType, s.Median))
	}

	return buf.String()
}
