package main

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderInteractiveReport builds the interactive companion page: one scatter
// chart per variable in transform order, points grouped by sample type with
// the configured colors, and a median mark line per group. The page is
// returned as HTML bytes ready to be saved next to the SVG document.
func RenderInteractiveReport(rows []LongRow, medians []MedianSummary, cfg ReportConfig) ([]byte, error) {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)

	for _, t := range cfg.Transforms {
		typeOrder := []string{}
		values := map[string][]float64{}
		for _, row := range rows {
			if row.Variable != t.Name {
				continue
			}
			if _, ok := values[row.SampleType]; !ok {
				typeOrder = append(typeOrder, row.SampleType)
			}
			values[row.SampleType] = append(values[row.SampleType], row.Value)
		}
		if len(typeOrder) == 0 {
			continue
		}

		scatter := charts.NewScatter()
		scatter.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title:    t.Name,
				Subtitle: fmt.Sprintf("log concentration by %s", cfg.LegendTitle),
			}),
			charts.WithYAxisOpts(opts.YAxis{Name: cfg.YAxisName}),
		)
		scatter.SetXAxis(typeOrder)

		for _, sampleType := range typeOrder {
			data := make([]opts.ScatterData, 0, len(values[sampleType]))
			for _, v := range values[sampleType] {
				data = append(data, opts.ScatterData{
					Value:      []interface{}{sampleType, v},
					SymbolSize: 8,
				})
			}

			seriesOpts := []charts.SeriesOpts{
				charts.WithItemStyleOpts(opts.ItemStyle{Color: "#" + cfg.Colors[sampleType]}),
			}
			for _, m := range medians {
				if m.Variable == t.Name && m.SampleType == sampleType {
					seriesOpts = append(seriesOpts, charts.WithMarkLineNameYAxisItemOpts(
						opts.MarkLineNameYAxisItem{Name: sampleType + " median", YAxis: m.Median},
					))
				}
			}
			scatter.AddSeries(sampleType, data, seriesOpts...)
		}

		page.AddCharts(scatter)
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := page.Render(buffer); err != nil {
		return nil, fmt.Errorf("error rendering interactive page: %v", err)
	}
	return buffer.Bytes(), nil
}
