package main

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Sample is one row of the cleaned monitoring table: where and under which
// flow condition the water sample was taken, plus one measured concentration
// per constituent column. A constituent missing from Values is a missing
// measurement.
type Sample struct {
	Station    string
	SampleType string
	Values     map[string]float64
}

// LongRow is the long-form shape of a sample: one row per (sample x variable).
type LongRow struct {
	Station    string
	SampleType string
	Variable   string
	Value      float64
}

// MedianSummary holds the median of Value over one (variable, sample type) group.
type MedianSummary struct {
	Variable   string
	SampleType string
	Median     float64
}

// ConstituentTransform maps a source concentration column to its
// log-transformed display column.
type ConstituentTransform struct {
	Name   string // derived column and facet name, e.g. "logTP"
	Source string // column in the cleaned table, e.g. "TP"
}

// ReportConfig carries every knob of the report in one explicit value that is
// passed through the pipeline stages, instead of package globals. Transform
// order is the facet display order.
type ReportConfig struct {
	Stations          []string
	ExcludeSampleType string
	Transforms        []ConstituentTransform
	Colors            map[string]string  // sample type -> hex color, no '#'
	MinY              map[string]float64 // per-variable lower y-axis anchor
	OutputPath        string
	HtmlPath          string
	MarkdownPath      string
	PageWidthInch     float64
	PageHeightInch    float64
	LegendTitle       string
	YAxisName         string
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Stations:          []string{"SW1", "SW3", "SW5"},
		ExcludeSampleType: "Mixed",
		Transforms: []ConstituentTransform{
			{Name: "logTP", Source: "TP"},
			{Name: "logNO3", Source: "NO3"},
			{Name: "logCl", Source: "Cl"},
		},
		Colors: map[string]string{
			"Baseflow": "4c72b0",
			"Rain":     "dd8452",
			"Melt":     "55a868",
		},
		MinY: map[string]float64{
			"logTP": math.Log(0.01),
			"logCl": math.Log(1),
		},
		OutputPath:     "water_report.svg",
		HtmlPath:       "water_report.html",
		MarkdownPath:   "water_report.md",
		PageWidthInch:  10,
		PageHeightInch: 8,
		LegendTitle:    "Sample type",
		YAxisName:      "Concentration",
	}
}

// VariableNames returns the derived column names in display order.
func (c ReportConfig) VariableNames() []string {
	names := make([]string, len(c.Transforms))
	for i, t := range c.Transforms {
		names[i] = t.Name
	}
	return names
}

// ValidateSampleTypes checks that every sample type present in the data has a
// configured color. An unmapped type is a configuration error and is raised
// here, before any rendering happens.
func ValidateSampleTypes(rows []LongRow, colors map[string]string) error {
	seen := map[string]bool{}
	unmapped := []string{}
	for _, row := range rows {
		if seen[row.SampleType] {
			continue
		}
		seen[row.SampleType] = true
		if _, ok := colors[row.SampleType]; !ok {
			unmapped = append(unmapped, row.SampleType)
		}
	}
	if len(unmapped) > 0 {
		sort.Strings(unmapped)
		return fmt.Errorf("sample types without a configured color: %s", strings.Join(unmapped, ", "))
	}
	return nil
}
