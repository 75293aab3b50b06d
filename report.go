package main

import (
	"fmt"
	"log"

	"github.com/pivolan/water_report/plot"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RunReport executes the four report stages over the in-memory table
// (filter+transform, reshape, aggregate, render) and persists the SVG
// document, the interactive HTML page and the markdown median summary. The
// table is passed through the stages as a value, nothing is shared through
// globals.
func RunReport(samples []Sample, cfg ReportConfig) error {
	filtered, dropped := FilterTransform(samples, cfg)
	if dropped > 0 {
		log.Printf("dropped %d rows with missing or non-positive constituent values", dropped)
	}
	if len(filtered) == 0 {
		return fmt.Errorf("no rows left after filtering")
	}

	long := ReshapeLong(filtered, cfg)
	if err := ValidateSampleTypes(long, cfg.Colors); err != nil {
		return err
	}

	medians := AggregateMedians(long, cfg)
	fmt.Println(GenerateMedianTable(medians))

	grid := BuildFacetGrid(long, medians, cfg)
	svg, err := grid.RenderSVG()
	if err != nil {
		return err
	}
	if err := saveDocument(cfg.OutputPath, svg); err != nil {
		return err
	}

	html, err := RenderInteractiveReport(long, medians, cfg)
	if err != nil {
		return err
	}
	if err := saveDocument(cfg.HtmlPath, html); err != nil {
		return err
	}

	return saveDocument(cfg.MarkdownPath, []byte(GenerateMedianTableMarkdown(medians)))
}

// BuildFacetGrid arranges the long rows and their medians into renderable
// panels, one per variable present in the data, in transform order. Sample
// types keep their first-seen order inside each panel.
func BuildFacetGrid(rows []LongRow, medians []MedianSummary, cfg ReportConfig) plot.FacetGrid {
	grid := plot.FacetGrid{
		LegendTitle: cfg.LegendTitle,
		YAxisName:   cfg.YAxisName,
		WidthInch:   cfg.PageWidthInch,
		HeightInch:  cfg.PageHeightInch,
		Seed:        42,
	}

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

		panel := plot.Panel{Variable: t.Name}
		for _, sampleType := range typeOrder {
			panel.Series = append(panel.Series, plot.SeriesPoints{
				Name:   sampleType,
				Values: values[sampleType],
				Color:  drawing.ColorFromHex(cfg.Colors[sampleType]),
			})
		}
		for _, m := range medians {
			if m.Variable != t.Name {
				continue
			}
			panel.Medians = append(panel.Medians, plot.MedianLine{
				Name:  m.SampleType,
				Value: m.Median,
				Color: drawing.ColorFromHex(cfg.Colors[m.SampleType]),
			})
		}
		if minY, ok := cfg.MinY[t.Name]; ok {
			anchor := minY
			panel.MinY = &anchor
		}
		grid.Panels = append(grid.Panels, panel)
	}

	return grid
}
