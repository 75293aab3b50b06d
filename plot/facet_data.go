package plot

import (
	"math"
	"math/rand"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	dpi = 96.0 // page size units are inches

	// jitterWindow is the horizontal half-width points are scattered over
	// around the panel's category center, to keep tied values readable.
	jitterWindow = 0.35

	legendHeight = 60
)

// SeriesPoints holds the plotted values of one sample group inside a panel.
type SeriesPoints struct {
	Name   string
	Values []float64
	Color  drawing.Color
}

// MedianLine is a dashed horizontal reference line for one group.
type MedianLine struct {
	Name  string
	Value float64
	Color drawing.Color
}

// Panel is one facet: all points of one variable plus its median lines.
// MinY, when set, forces the panel's lower y bound to extend at least that
// far; the anchor itself is never plotted.
type Panel struct {
	Variable string
	Series   []SeriesPoints
	Medians  []MedianLine
	MinY     *float64
}

// FacetGrid is a complete faceted chart: ordered panels sharing one legend
// on a fixed-size page. Each panel scales its y-axis to its own data.
type FacetGrid struct {
	Panels      []Panel
	LegendTitle string
	YAxisName   string
	WidthInch   float64
	HeightInch  float64
	Seed        int64 // jitter seed, fixed so reruns produce the same document
}

func (g FacetGrid) pageSize() (width, height int) {
	return int(g.WidthInch * dpi), int(g.HeightInch * dpi)
}

// legendEntries collects the distinct group names across panels, keeping
// first-seen order.
func (g FacetGrid) legendEntries() []SeriesPoints {
	entries := []SeriesPoints{}
	seen := map[string]bool{}
	for _, p := range g.Panels {
		for _, s := range p.Series {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			entries = append(entries, SeriesPoints{Name: s.Name, Color: s.Color})
		}
	}
	return entries
}

// valueRange computes the panel's free y-axis range: fitted to the panel's
// own points and median lines, extended down to the MinY anchor when one is
// configured, with a small padding so dots are not clipped.
func (p Panel) valueRange() (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, s := range p.Series {
		for _, v := range s.Values {
			if math.IsNaN(v) {
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	for _, m := range p.Medians {
		if m.Value < min {
			min = m.Value
		}
		if m.Value > max {
			max = m.Value
		}
	}
	if math.IsInf(min, 1) {
		return 0, 1
	}
	if p.MinY != nil && *p.MinY < min {
		min = *p.MinY
	}

	pad := (max - min) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	return min - pad, max + pad
}

// jitterValues spreads n points uniformly inside the jitter window around
// the category center at x=0.
func jitterValues(rnd *rand.Rand, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = (rnd.Float64()*2 - 1) * jitterWindow
	}
	return xs
}
