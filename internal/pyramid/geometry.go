package pyramid

import (
	"fmt"
	"io"
)

// Totals are the summed measurements of every step treated as a standalone box.
// Faces where two steps touch are counted once per step.
type Totals struct {
	Perimeter float64
	Area      float64
	Volume    float64
}

// Measure sums perimeter, surface area, and volume over steps. Order does not matter.
func Measure(steps []Step) Totals {
	var t Totals
	for _, s := range steps {
		side := float64(s.Side)
		height := float64(s.Height)

		// top + bottom squares, then four lateral rectangles
		faces := 4*side + 4*side
		lateral := 4 * (2 * (side + height))
		t.Perimeter += faces + lateral

		t.Area += 2*side*side + 4*side*height
		t.Volume += side * side * height
	}
	return t
}

// Format writes the human-readable report.
func (t Totals) Format(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"\nGeometry of the figure:\n"+
			"Total perimeter (sum of perimeters of all faces): %.6g cm\n"+
			"Total surface area (sum of areas of all faces): %.6g cm2\n"+
			"Total volume: %.6g cm3\n",
		t.Perimeter, t.Area, t.Volume)
	return err
}
