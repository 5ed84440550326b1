// Package plot renders head movement over time for display. It is pure
// presentation: it consumes an initial position and a visit sequence and
// carries no scheduling logic.
package plot

import (
	"fmt"
	"strings"
)

// SVG renders head position as a function of step index: a line with a
// marker per visit, grid ticks every maxCylinder/10, the pending request
// cylinders marked on the left edge, and a label on the start point.
func SVG(initial int, sequence []int, maxCylinder int, requests []int) string {
	const (
		width   = 700
		height  = 420
		marginX = 50
		marginY = 30
	)

	positions := append([]int{initial}, sequence...)
	steps := len(positions)

	plotW := float64(width - 2*marginX)
	plotH := float64(height - 2*marginY)

	x := func(step int) float64 {
		if steps <= 1 {
			return float64(marginX)
		}
		return float64(marginX) + plotW*float64(step)/float64(steps-1)
	}
	y := func(cylinder int) float64 {
		// Cylinder 0 at the bottom.
		return float64(marginY) + plotH*(1-float64(cylinder)/float64(maxCylinder))
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" class="plot">`, width, height)
	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`, width, height)

	// Horizontal grid with cylinder labels.
	tick := maxCylinder / 10
	if tick < 1 {
		tick = 1
	}
	for c := 0; c <= maxCylinder; c += tick {
		fmt.Fprintf(&b, `<line x1="%d" y1="%.1f" x2="%d" y2="%.1f" stroke="#e5e7eb"/>`,
			marginX, y(c), width-marginX, y(c))
		fmt.Fprintf(&b, `<text x="%d" y="%.1f" font-size="10" fill="#6b7280" text-anchor="end">%d</text>`,
			marginX-6, y(c)+3, c)
	}

	// Pending requests marked on the left edge.
	for _, r := range requests {
		fmt.Fprintf(&b, `<circle cx="%d" cy="%.1f" r="4" fill="#3b82f6" fill-opacity="0.5"/>`,
			marginX, y(r))
	}

	// Head movement polyline.
	var points []string
	for i, pos := range positions {
		points = append(points, fmt.Sprintf("%.1f,%.1f", x(i), y(pos)))
	}
	fmt.Fprintf(&b, `<polyline points="%s" fill="none" stroke="#dc2626" stroke-width="2"/>`,
		strings.Join(points, " "))

	// Markers with cylinder annotations.
	for i, pos := range positions {
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="4" fill="#dc2626"/>`, x(i), y(pos))
		label := fmt.Sprintf("%d", pos)
		if i == 0 {
			label = fmt.Sprintf("Start: %d", pos)
		}
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" font-size="10" fill="#111827" text-anchor="middle">%s</text>`,
			x(i), y(pos)-8, label)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// Text renders the walk as one terminal row per step, the head position
// scaled into width columns.
//
//	step  0 |          *                    |   50
//	step  1 |               *               |   82
func Text(initial int, sequence []int, maxCylinder, width int) string {
	if width < 10 {
		width = 10
	}

	positions := append([]int{initial}, sequence...)
	var b strings.Builder
	for i, pos := range positions {
		col := pos * (width - 1) / maxCylinder
		fmt.Fprintf(&b, "step %2d |%s*%s| %4d\n",
			i, strings.Repeat(" ", col), strings.Repeat(" ", width-1-col), pos)
	}
	return b.String()
}
