package triad

import (
	"math/rand"
	"time"

	"github.com/chewxy/math32"
)

// Component and magnitude draws are integers in [MagnitudeMin, MagnitudeMax].
const (
	MagnitudeMin   = 5
	MagnitudeMax   = 10
	magnitudeRange = MagnitudeMax - MagnitudeMin + 1
)

// baseSideFactor relates the pyramid's base side to its step height.
const baseSideFactor = 10

// Vec3 is a plain float32 3-vector. Kept free of raylib so the generator runs without a GL context.
type Vec3 struct {
	X, Y, Z float32
}

// Cross returns v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Dot returns v . o.
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Normalize divides by the length. A zero vector is divided by 1 and stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		l = 1
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Triad is a random vector A, its XY-plane perpendicular B, and C = A x B after rescaling.
type Triad struct {
	A, B, C   Vec3
	Magnitude float32
}

// Generate draws a triad for an n-step pyramid. A and B end up Magnitude long, C Magnitude/n.
// n < 1 is treated as 1.
func Generate(n int, rng *rand.Rand) Triad {
	if n < 1 {
		n = 1
	}
	a := Vec3{X: draw(rng), Y: draw(rng), Z: draw(rng)}
	b := Vec3{X: a.Y, Y: -a.X, Z: 0}
	c := a.Cross(b)

	magnitude := draw(rng)
	return Triad{
		A:         a.Normalize().Scale(magnitude),
		B:         b.Normalize().Scale(magnitude),
		C:         c.Normalize().Scale(magnitude / float32(n)),
		Magnitude: magnitude,
	}
}

// StepHeight is the length of C.
func (t Triad) StepHeight() float32 {
	return t.C.Length()
}

// BaseSide is the width of the pyramid's bottom step.
func (t Triad) BaseSide() float32 {
	return t.StepHeight() * baseSideFactor
}

// NewRand returns a generator seeded with seed, or with the current time when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func draw(rng *rand.Rand) float32 {
	return float32(rng.Intn(magnitudeRange) + MagnitudeMin)
}
