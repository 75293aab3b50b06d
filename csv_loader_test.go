package main

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/assert"
)

const testCSV = `Station,Sample Type,TP,NO3,Cl
SW1,Rain,0.1,1.0,10
SW1,Melt,,2.0,20
SW3,Baseflow,0.05,0.5,not_a_number
`

func TestLoadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	assert.NoError(t, os.WriteFile(path, []byte(testCSV), 0655))

	samples, err := LoadSamples(path, "station", "sample_type")
	assert.NoError(t, err)
	assert.Len(t, samples, 3)

	assert.Equal(t, "SW1", samples[0].Station)
	assert.Equal(t, "Rain", samples[0].SampleType)
	assert.Equal(t, 0.1, samples[0].Values["tp"])
	assert.Equal(t, 1.0, samples[0].Values["no3"])
	assert.Equal(t, 10.0, samples[0].Values["cl"])

	// blank and unparsable cells become missing measurements
	_, ok := samples[1].Values["tp"]
	assert.False(t, ok)
	_, ok = samples[2].Values["cl"]
	assert.False(t, ok)
}

func TestLoadSamplesMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	assert.NoError(t, os.WriteFile(path, []byte("A,B\n1,2\n"), 0655))

	_, err := LoadSamples(path, "station", "sample_type")
	assert.Error(t, err)
}

func TestLoadSamplesGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv.gz")
	f, err := os.Create(path)
	assert.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(testCSV))
	assert.NoError(t, err)
	assert.NoError(t, gw.Close())
	assert.NoError(t, f.Close())

	samples, err := LoadSamples(path, "station", "sample_type")
	assert.NoError(t, err)
	assert.Len(t, samples, 3)
}

func TestLoadSamplesLZ4(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv.lz4")
	f, err := os.Create(path)
	assert.NoError(t, err)
	lw := lz4.NewWriter(f)
	_, err = lw.Write([]byte(testCSV))
	assert.NoError(t, err)
	assert.NoError(t, lw.Close())
	assert.NoError(t, f.Close())

	samples, err := LoadSamples(path, "station", "sample_type")
	assert.NoError(t, err)
	assert.Len(t, samples, 3)
}

func TestSearchStrings(t *testing.T) {
	assert.Equal(t, 1, SearchStrings([]string{"a", "b"}, "b"))
	assert.Equal(t, -1, SearchStrings([]string{"a", "b"}, "c"))
}
