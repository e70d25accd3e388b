package pyramid

// Step is one box layer of the pyramid. Footprint is Side x Side, centered on the Y axis.
// Inverted tags steps that belong to a mirrored pass; it controls color and nothing else.
type Step struct {
	Side     float32
	BottomY  float32
	Height   float32
	Inverted bool
}

// Center returns the box center in world space.
func (s Step) Center() [3]float32 {
	return [3]float32{0, s.BottomY + s.Height/2, 0}
}

// Size returns the box extents (width, height, length).
func (s Step) Size() [3]float32 {
	return [3]float32{s.Side, s.Height, s.Side}
}

// Top returns the elevation of the step's upper face.
func (s Step) Top() float32 {
	return s.BottomY + s.Height
}
