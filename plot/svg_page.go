package plot

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// composePage stitches the rendered panel fragments into one SVG document
// with the configured physical page size and a legend strip along the
// bottom. Panels sit side by side in grid order.
func composePage(g FacetGrid, fragments [][]byte, panelW, panelH int) []byte {
	pageW, pageH := g.pageSize()

	buf := bytes.NewBuffer([]byte{})
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%gin" height="%gin" viewBox="0 0 %d %d">`+"\n",
		g.WidthInch, g.HeightInch, pageW, pageH)
	fmt.Fprintf(buf, `<rect width="%d" height="%d" fill="white"/>`+"\n", pageW, pageH)

	for i, fragment := range fragments {
		buf.Write(embedFragment(fragment, i*panelW, 0))
		buf.WriteString("\n")
	}

	renderLegend(buf, g, panelH)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// embedFragment positions a standalone SVG inside the page by injecting x/y
// attributes into its root element. Nested svg elements carry their own
// width/height, so the panel keeps its layout.
func embedFragment(svg []byte, x, y int) []byte {
	if idx := bytes.Index(svg, []byte("?>")); bytes.HasPrefix(svg, []byte("<?xml")) && idx >= 0 {
		svg = svg[idx+2:]
	}
	svg = bytes.TrimLeft(svg, "\r\n ")
	return bytes.Replace(svg, []byte("<svg "), []byte(fmt.Sprintf(`<svg x="%d" y="%d" `, x, y)), 1)
}

// renderLegend draws the titled color legend strip under the panels.
func renderLegend(buf *bytes.Buffer, g FacetGrid, yOffset int) {
	y := yOffset + legendHeight/2 + 5
	x := 30

	fmt.Fprintf(buf, `<text x="%d" y="%d" font-family="sans-serif" font-size="14" font-weight="bold">%s:</text>`+"\n",
		x, y, g.LegendTitle)
	x += 8*len(g.LegendTitle) + 30

	for _, entry := range g.legendEntries() {
		fmt.Fprintf(buf, `<circle cx="%d" cy="%d" r="5" fill="%s"/>`+"\n", x, y-5, svgColor(entry.Color))
		x += 12
		fmt.Fprintf(buf, `<text x="%d" y="%d" font-family="sans-serif" font-size="13">%s</text>`+"\n",
			x, y, entry.Name)
		x += 8*len(entry.Name) + 25
	}
}

func svgColor(c drawing.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
