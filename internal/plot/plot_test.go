package plot

import (
	"strings"
	"testing"
)

func TestSVG_ContainsWalk(t *testing.T) {
	out := SVG(50, []int{82, 170, 43}, 200, []int{82, 170, 43})

	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(out, "</svg>") {
		t.Fatalf("output is not an svg element: %.60s...", out)
	}
	if !strings.Contains(out, "<polyline") {
		t.Error("expected a polyline for the head movement")
	}
	if !strings.Contains(out, "Start: 50") {
		t.Error("expected the start point to be labelled")
	}
	// One marker per visited position plus the start.
	if got := strings.Count(out, `fill="#dc2626"`); got != 4 {
		t.Errorf("marker count = %d, want 4", got)
	}
	for _, label := range []string{">82<", ">170<", ">43<"} {
		if !strings.Contains(out, label) {
			t.Errorf("expected annotation %s in output", label)
		}
	}
}

func TestSVG_EmptySequence(t *testing.T) {
	out := SVG(50, nil, 200, nil)
	if !strings.Contains(out, "Start: 50") {
		t.Error("expected the lone start point to be labelled")
	}
}

func TestText_RowPerStep(t *testing.T) {
	out := Text(50, []int{0, 200}, 200, 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d rows, want 3 (start + 2 steps)", len(lines))
	}
	if !strings.HasSuffix(lines[0], "50") {
		t.Errorf("row 0 = %q, want position 50 at line end", lines[0])
	}
	// Cylinder 0 maps to the first column, max to the last.
	if !strings.Contains(lines[1], "|*") {
		t.Errorf("row 1 = %q, want marker in first column", lines[1])
	}
	if !strings.Contains(lines[2], "*|") {
		t.Errorf("row 2 = %q, want marker in last column", lines[2])
	}
}
