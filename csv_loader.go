package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const SEPARATOR = ','

// LoadSamples reads the cleaned monitoring table from a CSV file produced by
// the upstream cleaning step. Archived exports (zip/gz/lz4) are unpacked
// first. stationColumn and typeColumn name the two categorical columns after
// header sanitizing; every other column is treated as a numeric constituent.
// A value that does not parse as a number becomes a missing measurement for
// that row, it is not an error here.
func LoadSamples(filePath, stationColumn, typeColumn string) ([]Sample, error) {
	unpackedFilePath, err := unpackArchive(filePath)
	if err != nil {
		return nil, fmt.Errorf("error unpacking %s: %v", filePath, err)
	}
	if unpackedFilePath != "" {
		filePath = unpackedFilePath
	}

	f, err := os.OpenFile(filePath, os.O_RDONLY, 0655)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = SEPARATOR
	r.LazyQuotes = true

	firstRow, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %v", filePath, err)
	}
	analysis := AnalyzeHeaders(firstRow)
	if analysis == nil {
		return nil, fmt.Errorf("empty first row in %s", filePath)
	}
	headers := analysis.Headers

	stationIdx := SearchStrings(headers, stationColumn)
	typeIdx := SearchStrings(headers, typeColumn)
	if stationIdx < 0 || typeIdx < 0 {
		return nil, fmt.Errorf("columns %s and %s not found in %v", stationColumn, typeColumn, headers)
	}

	samples := []Sample{}
	appendRow := func(values []string) {
		if len(values) != len(headers) {
			return
		}
		s := Sample{
			Station:    strings.TrimSpace(values[stationIdx]),
			SampleType: strings.TrimSpace(values[typeIdx]),
			Values:     map[string]float64{},
		}
		for i, raw := range values {
			if i == stationIdx || i == typeIdx {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				continue // missing measurement
			}
			s.Values[headers[i]] = v
		}
		samples = append(samples, s)
	}

	if analysis.FirstRowIsData {
		appendRow(analysis.FirstDataRow)
	}
	for {
		values, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", filePath, err)
		}
		appendRow(values)
	}

	fmt.Println("loaded samples:", len(samples), "from", filePath)
	return samples, nil
}

// SearchStrings returns the index of x in a, or -1.
func SearchStrings(a []string, x string) int {
	for i, s := range a {
		if s == x {
			return i
		}
	}
	return -1
}
