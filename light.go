package sway

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Material controls how a mesh's faces are colored.
type Material struct {
	Color Color
	// Toon quantizes diffuse lighting into ToonBands flat steps.
	Toon bool
	// Unlit ignores all lights and draws Color as-is.
	Unlit bool
}

// toonBands is the number of diffuse steps used by toon materials.
const toonBands = 3

// DirectionalLight lights every face from one direction, like sunlight. The
// light travels from Position toward the origin.
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  Vec3
	// Anchor, when set, replaces Position with the anchor's world position
	// each frame, so a light can ride an orbit track.
	Anchor *Node
}

// direction returns the unit vector pointing from the scene toward the light.
func (l *DirectionalLight) direction() Vec3 {
	p := l.Position
	if l.Anchor != nil && !l.Anchor.disposed {
		p = l.Anchor.WorldPosition()
	}
	if r3.Norm(p) == 0 {
		return Vec3{Y: 1}
	}
	return r3.Unit(p)
}

// AmbientLight adds a constant term to every face.
type AmbientLight struct {
	Color     Color
	Intensity float64
}

// shadeFace computes the color of a face with unit normal n.
func shadeFace(mat Material, n Vec3, ambient AmbientLight, dirs []lightDir) Color {
	if mat.Unlit {
		return mat.Color
	}
	r := ambient.Color.R * ambient.Intensity
	g := ambient.Color.G * ambient.Intensity
	b := ambient.Color.B * ambient.Intensity
	for _, d := range dirs {
		k := math.Max(0, r3.Dot(n, d.dir))
		if mat.Toon {
			k = math.Ceil(k*toonBands) / toonBands
		}
		k *= d.intensity
		r += d.color.R * k
		g += d.color.G * k
		b += d.color.B * k
	}
	return Color{
		R: clamp01(mat.Color.R * r),
		G: clamp01(mat.Color.G * g),
		B: clamp01(mat.Color.B * b),
		A: mat.Color.A,
	}
}

// lightDir is a directional light resolved for one frame.
type lightDir struct {
	dir       Vec3
	color     Color
	intensity float64
}
