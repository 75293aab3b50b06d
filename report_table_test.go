package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateMedianTable(t *testing.T) {
	summaries := []MedianSummary{
		{Variable: "logTP", SampleType: "Rain", Median: 0.5},
		{Variable: "logNO3", SampleType: "Melt", Median: -2.303},
	}

	result := GenerateMedianTable(summaries)
	assert.Equal(t, `+----------+------------+--------+
| VARIABLE | SAMPLETYPE | MEDIAN |
+----------+------------+--------+
| logTP    | Rain       |  0.500 |
| logNO3   | Melt       | -2.303 |
+----------+------------+--------+`, result)
}

func TestGenerateMedianTableMarkdown(t *testing.T) {
	summaries := []MedianSummary{
		{Variable: "logTP", SampleType: "Rain", Median: 0.5},
		{Variable: "logNO3", SampleType: "Melt", Median: -2.303},
	}

	result := GenerateMedianTableMarkdown(summaries)
	assert.Equal(t, `| Variable | SampleType | Median |
| --- | --- | --- |
| logTP | Rain | 0.500 |
| logNO3 | Melt | -2.303 |
`, result)
}
