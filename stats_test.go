package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMedianOdd(t *testing.T) {
	assert.Equal(t, 3.0, calculateMedian([]float64{5, 1, 3}))
}

func TestCalculateMedianEven(t *testing.T) {
	// even-sized groups average the two central order statistics
	assert.Equal(t, 2.5, calculateMedian([]float64{4, 1, 2, 3}))
}

func TestCalculateMedianIgnoresNaN(t *testing.T) {
	assert.Equal(t, 2.0, calculateMedian([]float64{math.NaN(), 1, 2, 3}))
}

func TestCalculateMedianEmpty(t *testing.T) {
	assert.True(t, math.IsNaN(calculateMedian(nil)))
	assert.True(t, math.IsNaN(calculateMedian([]float64{math.NaN()})))
}
