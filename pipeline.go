package main

import (
	"math"

	"github.com/pivolan/go_utils"
)

// FilterTransform selects the configured stations, drops the excluded sample
// type and derives one natural-log column per configured transform. A row
// missing any source value, or carrying a non-positive concentration (log
// undefined), is dropped entirely; the second return value counts those
// losses so the caller can report them. Kept rows carry only the derived
// columns.
// sourceValue resolves a transform source column in the row. CSV loading
// sanitizes headers to lowercase identifiers, so a source configured as "TP"
// arrives keyed "tp"; the name is tried as written first, then sanitized.
func (s Sample) sourceValue(source string) (float64, bool) {
	if v, ok := s.Values[source]; ok {
		return v, true
	}
	v, ok := s.Values[cleanHeaderName(source, 0)]
	return v, ok
}

func FilterTransform(samples []Sample, cfg ReportConfig) ([]Sample, int) {
	kept := []Sample{}
	dropped := 0
	for _, s := range samples {
		if !go_utils.InArray(s.Station, cfg.Stations) {
			continue
		}
		if s.SampleType == cfg.ExcludeSampleType {
			continue
		}

		out := Sample{
			Station:    s.Station,
			SampleType: s.SampleType,
			Values:     map[string]float64{},
		}
		complete := true
		for _, t := range cfg.Transforms {
			v, ok := s.sourceValue(t.Source)
			if !ok || math.IsNaN(v) || v <= 0 {
				complete = false
				break
			}
			out.Values[t.Name] = math.Log(v)
		}
		if !complete {
			dropped++
			continue
		}
		kept = append(kept, out)
	}
	return kept, dropped
}

// ReshapeLong pivots the derived columns into long form: one row per
// (sample x transform), keeping station and sample type. Variable order
// inside each sample follows the transform list, which fixes the facet
// display order downstream.
func ReshapeLong(samples []Sample, cfg ReportConfig) []LongRow {
	rows := make([]LongRow, 0, len(samples)*len(cfg.Transforms))
	for _, s := range samples {
		for _, t := range cfg.Transforms {
			rows = append(rows, LongRow{
				Station:    s.Station,
				SampleType: s.SampleType,
				Variable:   t.Name,
				Value:      s.Values[t.Name],
			})
		}
	}
	return rows
}

// AggregateMedians groups long rows by (variable, sample type) and computes
// the median value of each group. Only observed combinations appear in the
// output. Order is deterministic: variables in transform order, sample types
// in order of first appearance in the data.
func AggregateMedians(rows []LongRow, cfg ReportConfig) []MedianSummary {
	type groupKey struct {
		variable   string
		sampleType string
	}
	groups := map[groupKey][]float64{}
	typeOrder := []string{}
	for _, row := range rows {
		if !go_utils.InArray(row.SampleType, typeOrder) {
			typeOrder = append(typeOrder, row.SampleType)
		}
		key := groupKey{row.Variable, row.SampleType}
		groups[key] = append(groups[key], row.Value)
	}

	summaries := []MedianSummary{}
	for _, variable := range cfg.VariableNames() {
		for _, sampleType := range typeOrder {
			values, ok := groups[groupKey{variable, sampleType}]
			if !ok {
				continue
			}
			summaries = append(summaries, MedianSummary{
				Variable:   variable,
				SampleType: sampleType,
				Median:     calculateMedian(values),
			})
		}
	}
	return summaries
}
