package plot

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderSVG renders the whole faceted chart into a single fixed-size SVG
// page: one panel per variable in grid order, jittered points colored by
// group, dashed median reference lines, and a titled legend strip at the
// bottom.
func (g FacetGrid) RenderSVG() ([]byte, error) {
	if len(g.Panels) == 0 {
		return nil, fmt.Errorf("no panels to render")
	}

	pageW, pageH := g.pageSize()
	panelW := pageW / len(g.Panels)
	panelH := pageH - legendHeight
	rnd := rand.New(rand.NewSource(g.Seed))

	fragments := make([][]byte, 0, len(g.Panels))
	for _, p := range g.Panels {
		fragment, err := renderPanel(p, panelW, panelH, g.YAxisName, rnd)
		if err != nil {
			return nil, fmt.Errorf("error rendering panel %s: %v", p.Variable, err)
		}
		fragments = append(fragments, fragment)
	}

	return composePage(g, fragments, panelW, panelH), nil
}

// renderPanel draws one facet as a standalone chart. The panel has no title
// strip: the variable name appears only as the single category tick label on
// the x-axis.
func renderPanel(p Panel, width, height int, yAxisName string, rnd *rand.Rand) ([]byte, error) {
	series := []chart.Series{}
	for _, s := range p.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: jitterValues(rnd, len(s.Values)),
			YValues: s.Values,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    5,
				DotColor:    s.Color,
			},
		})
	}
	for _, m := range p.Medians {
		series = append(series, chart.ContinuousSeries{
			Name:    m.Name + " median",
			XValues: []float64{-1, 1},
			YValues: []float64{m.Value, m.Value},
			Style: chart.Style{
				StrokeColor:     m.Color,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		})
	}

	yMin, yMax := p.valueRange()
	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: drawing.ColorWhite,
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  10,
				Bottom: 10,
			},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -1, Max: 1},
			Ticks: []chart.Tick{
				{Value: -1, Label: ""},
				{Value: 0, Label: p.Variable},
				{Value: 1, Label: ""},
			},
			Style: chart.Style{
				StrokeColor: chart.ColorBlack,
				FontSize:    12,
			},
		},
		YAxis: chart.YAxis{
			Name:           yAxisName,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			ValueFormatter: powerOfTenFormatter,
			Style: chart.Style{
				StrokeColor: chart.ColorBlack,
				FontSize:    10,
			},
		},
		Series: series,
	}

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.SVG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}

	return buffer.Bytes(), nil
}

// powerOfTenFormatter labels a tick of the log-scale axis with the value it
// represents in original units, 10^x style, even though the plotted values
// are already log-transformed.
func powerOfTenFormatter(v interface{}) string {
	if vf, isFloat := v.(float64); isFloat {
		return fmt.Sprintf("%.3g", math.Pow(10, vf))
	}
	return ""
}
