package sway

import (
	"fmt"
	"math"
)

// OrbitPosition maps an angle on a horizontal circle of the given radius to
// its X and Z coordinates.
func OrbitPosition(angle, radius float64) (x, z float64) {
	sin, cos := math.Sincos(angle)
	return radius * cos, radius * sin
}

// Bob returns a vertical offset oscillating at twice the phase frequency.
func Bob(amplitude, phase float64) float64 {
	return amplitude * math.Sin(2*phase)
}

// Orbit moves a point around the Y axis with an optional vertical bob.
// Angle and BobPhase are independent unbounded accumulators advanced by Rate
// and BobRate every frame.
type Orbit struct {
	Angle  float64 `json:"angle"`
	Rate   float64 `json:"rate"`
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`

	BobPhase     float64 `json:"bobPhase"`
	BobRate      float64 `json:"bobRate"`
	BobAmplitude float64 `json:"bobAmplitude"`
}

// validate rejects non-finite fields and a negative radius or bob amplitude.
func (o Orbit) validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"angle", o.Angle},
		{"rate", o.Rate},
		{"radius", o.Radius},
		{"height", o.Height},
		{"bob phase", o.BobPhase},
		{"bob rate", o.BobRate},
		{"bob amplitude", o.BobAmplitude},
	} {
		if !finite(f.v) {
			return fmt.Errorf("%w: orbit %s is %v", ErrInvalidBounds, f.name, f.v)
		}
	}
	if o.Radius < 0 || o.BobAmplitude < 0 {
		return fmt.Errorf("%w: orbit radius %g, bob amplitude %g",
			ErrInvalidBounds, o.Radius, o.BobAmplitude)
	}
	return nil
}

// Advance moves both accumulators one frame.
func (o *Orbit) Advance() {
	o.Angle = AdvanceUnbounded(o.Angle, o.Rate)
	o.BobPhase = AdvanceUnbounded(o.BobPhase, o.BobRate)
}

// Position derives the current world position from the accumulators.
func (o Orbit) Position() Vec3 {
	x, z := OrbitPosition(o.Angle, o.Radius)
	return Vec3{X: x, Y: o.Height + Bob(o.BobAmplitude, o.BobPhase), Z: z}
}
