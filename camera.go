package sway

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CameraConfig holds the initial parameters of a perspective camera.
// Zero fields fall back to the defaults noted on each field.
type CameraConfig struct {
	FovY     float64 // vertical field of view in degrees (default 60)
	Near     float64 // near clip distance (default 0.1)
	Far      float64 // far clip distance (default 50)
	Position Vec3
	LookAt   Vec3
}

// Camera is a perspective camera looking from Position toward Target.
type Camera struct {
	FovY     float64
	Near     float64
	Far      float64
	Position Vec3
	Target   Vec3
	Up       Vec3

	// Anchor, when set, replaces Position with the anchor's world position
	// each frame, so the camera can ride an orbit track.
	Anchor *Node

	width, height float64

	// view basis, recomputed by computeView
	eye            Vec3
	right, up, fwd Vec3
	focal          float64
}

// NewCamera creates a camera from cfg. The viewport size is set by Resize,
// which Run calls from the host's layout callback.
func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{
		FovY:     cfg.FovY,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Position: cfg.Position,
		Target:   cfg.LookAt,
		Up:       Vec3{Y: 1},
		width:    1,
		height:   1,
	}
	if c.FovY <= 0 {
		c.FovY = 60
	}
	if c.Near <= 0 {
		c.Near = 0.1
	}
	if c.Far <= c.Near {
		c.Far = 50
	}
	return c
}

// Resize updates the viewport size and therefore the aspect ratio. Sizes
// below one pixel are ignored.
func (c *Camera) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}
	c.width = float64(width)
	c.height = float64(height)
}

// Aspect returns the viewport width divided by its height.
func (c *Camera) Aspect() float64 {
	return c.width / c.height
}

// LookAt points the camera at target.
func (c *Camera) LookAt(target Vec3) {
	c.Target = target
}

// Eye returns the effective camera position for this frame.
func (c *Camera) Eye() Vec3 {
	if c.Anchor != nil && !c.Anchor.disposed {
		return c.Anchor.WorldPosition()
	}
	return c.Position
}

// computeView rebuilds the view basis from the current position and target.
func (c *Camera) computeView() {
	c.eye = c.Eye()
	fwd := r3.Sub(c.Target, c.eye)
	if r3.Norm(fwd) == 0 {
		fwd = Vec3{Z: -1}
	}
	c.fwd = r3.Unit(fwd)
	right := r3.Cross(c.fwd, c.Up)
	if r3.Norm(right) < 1e-12 {
		// Looking straight along Up: pick any perpendicular.
		right = r3.Cross(c.fwd, Vec3{Z: 1})
	}
	c.right = r3.Unit(right)
	c.up = r3.Cross(c.right, c.fwd)
	c.focal = (c.height / 2) / math.Tan(c.FovY*math.Pi/360)
}

// toView converts a world point to camera space: X right, Y up, Z forward
// distance.
func (c *Camera) toView(p Vec3) Vec3 {
	d := r3.Sub(p, c.eye)
	return Vec3{X: r3.Dot(d, c.right), Y: r3.Dot(d, c.up), Z: r3.Dot(d, c.fwd)}
}

// Project maps a world point to screen pixels. depth is the forward distance
// from the camera; ok is false when the point lies outside the near/far
// range.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	c.computeView()
	return c.project(p)
}

// project is Project without recomputing the view basis.
func (c *Camera) project(p Vec3) (sx, sy, depth float64, ok bool) {
	v := c.toView(p)
	if v.Z < c.Near || v.Z > c.Far {
		return 0, 0, v.Z, false
	}
	sx = c.width/2 + v.X*c.focal/v.Z
	sy = c.height/2 - v.Y*c.focal/v.Z
	return sx, sy, v.Z, true
}
