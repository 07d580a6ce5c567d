package sway

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorHex builds an opaque Color from a 0xRRGGBB value.
func ColorHex(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec3 is the 3D vector used for positions, scales and directions throughout
// the API. It is gonum's r3.Vec, so the r3 helpers (Add, Sub, Scale, Norm,
// Cross, Unit) apply directly.
type Vec3 = r3.Vec

// Vec2 is a 2D vector used for shape outlines and screen coordinates.
type Vec2 struct {
	X, Y float64
}

// Euler holds a rotation in radians about each local axis, applied in X, Y, Z
// order.
type Euler struct {
	X, Y, Z float64
}

// Axis selects one component of a Euler rotation.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lowercase axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "invalid"
	}
}

// Range is a general-purpose min/max range.
// Used by jittered spin tracks and scene layouts.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// WhitePixel is a 1x1 white image used as the source texture for flat-shaded
// triangles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeMesh                      // renders a Geometry with a Material
)
