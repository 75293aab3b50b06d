package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportSamples() []Sample {
	return []Sample{
		{Station: "SW1", SampleType: "Rain", Values: map[string]float64{"TP": 0.1, "NO3": 1.0, "Cl": 10}},
		{Station: "SW1", SampleType: "Rain", Values: map[string]float64{"TP": 0.2, "NO3": 2.0, "Cl": 20}},
		{Station: "SW3", SampleType: "Melt", Values: map[string]float64{"TP": 0.05, "NO3": 0.5, "Cl": 5}},
		{Station: "SW3", SampleType: "Baseflow", Values: map[string]float64{"TP": 0.08, "NO3": 0.8, "Cl": 40}},
		{Station: "SW9", SampleType: "Rain", Values: map[string]float64{"TP": 0.1, "NO3": 1.0, "Cl": 10}},
		{Station: "SW1", SampleType: "Mixed", Values: map[string]float64{"TP": 0.1, "NO3": 1.0, "Cl": 10}},
		{Station: "SW1", SampleType: "Rain", Values: map[string]float64{"TP": 0, "NO3": 1.0, "Cl": 10}},
	}
}

func TestRunReport(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultReportConfig()
	cfg.OutputPath = filepath.Join(dir, "report.svg")
	cfg.HtmlPath = filepath.Join(dir, "report.html")
	cfg.MarkdownPath = filepath.Join(dir, "report.md")

	err := RunReport(reportSamples(), cfg)
	assert.NoError(t, err)

	svg, err := os.ReadFile(cfg.OutputPath)
	assert.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "logTP")

	html, err := os.ReadFile(cfg.HtmlPath)
	assert.NoError(t, err)
	assert.Contains(t, string(html), "echarts")

	md, err := os.ReadFile(cfg.MarkdownPath)
	assert.NoError(t, err)
	assert.Contains(t, string(md), "| logTP |")
	assert.Contains(t, string(md), "| Variable | SampleType | Median |")
}

func TestRunReportFromCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "samples.csv")
	content := "Station,Sample Type,TP,NO3,Cl\n" +
		"SW1,Rain,0.10,1.0,10\n" +
		"SW1,Melt,0.05,0.5,5\n" +
		"SW3,Baseflow,0.08,0.8,40\n"
	err := os.WriteFile(csvPath, []byte(content), 0655)
	assert.NoError(t, err)

	// the loader sanitizes headers, the defaults must still find the columns
	samples, err := LoadSamples(csvPath, "station", "sample_type")
	assert.NoError(t, err)
	assert.Len(t, samples, 3)

	cfg := DefaultReportConfig()
	cfg.OutputPath = filepath.Join(dir, "report.svg")
	cfg.HtmlPath = filepath.Join(dir, "report.html")
	cfg.MarkdownPath = filepath.Join(dir, "report.md")

	err = RunReport(samples, cfg)
	assert.NoError(t, err)

	svg, err := os.ReadFile(cfg.OutputPath)
	assert.NoError(t, err)
	assert.Contains(t, string(svg), "logCl")
}

func TestRunReportUnmappedSampleType(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultReportConfig()
	cfg.OutputPath = filepath.Join(dir, "report.svg")
	cfg.HtmlPath = filepath.Join(dir, "report.html")

	samples := append(reportSamples(), Sample{
		Station: "SW1", SampleType: "Sleet",
		Values: map[string]float64{"TP": 0.1, "NO3": 1.0, "Cl": 10},
	})

	err := RunReport(samples, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Sleet")

	// configuration errors stop the run before anything is written
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunReportUnwritableOutput(t *testing.T) {
	cfg := DefaultReportConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "report.svg")
	cfg.HtmlPath = filepath.Join(t.TempDir(), "report.html")
	cfg.MarkdownPath = filepath.Join(t.TempDir(), "report.md")

	err := RunReport(reportSamples(), cfg)
	assert.Error(t, err)
}

func TestRunReportNothingLeft(t *testing.T) {
	cfg := DefaultReportConfig()
	cfg.Stations = []string{"NOPE"}
	err := RunReport(reportSamples(), cfg)
	assert.Error(t, err)
}

func TestBuildFacetGridOrderAndAnchors(t *testing.T) {
	cfg := DefaultReportConfig()
	filtered, _ := FilterTransform(reportSamples(), cfg)
	long := ReshapeLong(filtered, cfg)
	medians := AggregateMedians(long, cfg)

	grid := BuildFacetGrid(long, medians, cfg)
	assert.Len(t, grid.Panels, 3)
	assert.Equal(t, "logTP", grid.Panels[0].Variable)
	assert.Equal(t, "logNO3", grid.Panels[1].Variable)
	assert.Equal(t, "logCl", grid.Panels[2].Variable)

	// logTP and logCl carry configured lower-bound anchors, logNO3 does not
	assert.NotNil(t, grid.Panels[0].MinY)
	assert.Nil(t, grid.Panels[1].MinY)
	assert.NotNil(t, grid.Panels[2].MinY)

	// a median line per observed (variable, sample type) pair
	assert.Len(t, grid.Panels[0].Medians, 3)
}

func TestRenderInteractiveReport(t *testing.T) {
	cfg := DefaultReportConfig()
	filtered, _ := FilterTransform(reportSamples(), cfg)
	long := ReshapeLong(filtered, cfg)
	medians := AggregateMedians(long, cfg)

	html, err := RenderInteractiveReport(long, medians, cfg)
	assert.NoError(t, err)
	assert.Contains(t, string(html), "echarts")
	assert.Contains(t, string(html), "logTP")
	assert.Contains(t, string(html), "#dd8452")
}
