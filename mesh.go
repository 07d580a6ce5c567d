package sway

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry is an indexed triangle list in local space. Triangles wind
// counter-clockwise when seen from outside, so the face normal
// (b-a)×(c-a) points away from the solid.
type Geometry struct {
	Positions []Vec3
	Indices   []uint16
}

// NumTriangles returns the number of triangles.
func (g *Geometry) NumTriangles() int {
	return len(g.Indices) / 3
}

// Translate offsets every vertex by d. Builders center their output on the
// origin; Translate moves the pivot without an extra container node.
func (g *Geometry) Translate(d Vec3) *Geometry {
	for i := range g.Positions {
		g.Positions[i] = r3.Add(g.Positions[i], d)
	}
	return g
}

// addQuad appends a quad centered on c spanning ±u and ±v. The face normal is
// u×v.
func (g *Geometry) addQuad(c, u, v Vec3) {
	base := uint16(len(g.Positions))
	g.Positions = append(g.Positions,
		r3.Sub(r3.Sub(c, u), v),
		r3.Sub(r3.Add(c, u), v),
		r3.Add(r3.Add(c, u), v),
		r3.Add(r3.Sub(c, u), v),
	)
	g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
}

// NewBoxGeometry builds an axis-aligned box centered on the origin.
func NewBoxGeometry(width, height, depth float64) *Geometry {
	hx, hy, hz := width/2, height/2, depth/2
	x := Vec3{X: hx}
	y := Vec3{Y: hy}
	z := Vec3{Z: hz}
	g := &Geometry{
		Positions: make([]Vec3, 0, 24),
		Indices:   make([]uint16, 0, 36),
	}
	g.addQuad(x, y, z)               // +X
	g.addQuad(r3.Scale(-1, x), z, y) // -X
	g.addQuad(y, z, x)               // +Y
	g.addQuad(r3.Scale(-1, y), x, z) // -Y
	g.addQuad(z, x, y)               // +Z
	g.addQuad(r3.Scale(-1, z), y, x) // -Z
	return g
}

// newLatheGeometry revolves a profile of (radius, y) points, ordered bottom to
// top, around the Y axis.
func newLatheGeometry(profile []Vec2, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	ring := segments + 1
	g := &Geometry{
		Positions: make([]Vec3, 0, len(profile)*ring),
		Indices:   make([]uint16, 0, (len(profile)-1)*segments*6),
	}
	for _, p := range profile {
		for i := 0; i < ring; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			sin, cos := math.Sincos(theta)
			g.Positions = append(g.Positions, Vec3{X: p.X * cos, Y: p.Y, Z: p.X * sin})
		}
	}
	for j := 0; j < len(profile)-1; j++ {
		lo := uint16(j * ring)
		hi := uint16((j + 1) * ring)
		for i := uint16(0); i < uint16(segments); i++ {
			a, b, c, d := lo+i, hi+i, hi+i+1, lo+i+1
			g.Indices = append(g.Indices, a, b, c, a, c, d)
		}
	}
	return g
}

// NewCylinderGeometry builds a capped cylinder (or truncated cone) along the Y
// axis, centered on the origin.
func NewCylinderGeometry(radiusTop, radiusBottom, height float64, radialSegments int) *Geometry {
	h := height / 2
	profile := []Vec2{{0, -h}, {radiusBottom, -h}, {radiusTop, h}, {0, h}}
	return newLatheGeometry(profile, radialSegments)
}

// NewCapsuleGeometry builds a cylinder of the given length with hemispherical
// caps along the Y axis. Total height is length + 2*radius.
func NewCapsuleGeometry(radius, length float64, capSegments, radialSegments int) *Geometry {
	if capSegments < 1 {
		capSegments = 1
	}
	h := length / 2
	profile := make([]Vec2, 0, 2*capSegments+2)
	for i := 0; i <= capSegments; i++ {
		a := -math.Pi/2 + (math.Pi/2)*float64(i)/float64(capSegments)
		sin, cos := math.Sincos(a)
		profile = append(profile, Vec2{radius * cos, -h + radius*sin})
	}
	for i := 0; i <= capSegments; i++ {
		a := (math.Pi / 2) * float64(i) / float64(capSegments)
		sin, cos := math.Sincos(a)
		profile = append(profile, Vec2{radius * cos, h + radius*sin})
	}
	return newLatheGeometry(profile, radialSegments)
}

// NewExtrudeGeometry extrudes a closed outline along +Z from z=0 to z=depth.
// The outline may be concave; it must not self-intersect.
func NewExtrudeGeometry(outline []Vec2, depth float64) *Geometry {
	pts := make([]Vec2, len(outline))
	copy(pts, outline)
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return &Geometry{}
	}
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	n := uint16(len(pts))
	g := &Geometry{}
	for _, p := range pts {
		g.Positions = append(g.Positions, Vec3{X: p.X, Y: p.Y, Z: 0})
	}
	for _, p := range pts {
		g.Positions = append(g.Positions, Vec3{X: p.X, Y: p.Y, Z: depth})
	}

	tris := triangulate(pts)
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		g.Indices = append(g.Indices, n+a, n+b, n+c) // front, +Z
		g.Indices = append(g.Indices, c, b, a)       // back, -Z
	}
	for i := uint16(0); i < n; i++ {
		j := (i + 1) % n
		g.Indices = append(g.Indices, i, j, n+j, i, n+j, n+i)
	}
	return g
}

// signedArea returns twice the signed area of a polygon; positive when the
// points wind counter-clockwise.
func signedArea(pts []Vec2) float64 {
	var a float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

func cross2(o, a, b Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func pointInTriangle(p, a, b, c Vec2) bool {
	return cross2(a, b, p) >= 0 && cross2(b, c, p) >= 0 && cross2(c, a, p) >= 0
}

// triangulate ear-clips a counter-clockwise simple polygon and returns
// triangle indices into pts.
func triangulate(pts []Vec2) []uint16 {
	idx := make([]uint16, len(pts))
	for i := range idx {
		idx[i] = uint16(i)
	}
	out := make([]uint16, 0, (len(pts)-2)*3)
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			ip := idx[(i+len(idx)-1)%len(idx)]
			ic := idx[i]
			in := idx[(i+1)%len(idx)]
			a, b, c := pts[ip], pts[ic], pts[in]
			if cross2(a, b, c) <= 0 {
				continue // reflex or degenerate
			}
			ear := true
			for _, k := range idx {
				if k == ip || k == ic || k == in {
					continue
				}
				if pointInTriangle(pts[k], a, b, c) {
					ear = false
					break
				}
			}
			if !ear {
				continue
			}
			out = append(out, ip, ic, in)
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Numerically degenerate remainder: fan it.
			for i := 1; i+1 < len(idx); i++ {
				out = append(out, idx[0], idx[i], idx[i+1])
			}
			return out
		}
	}
	return append(out, idx[0], idx[1], idx[2])
}

// Path builds a 2D outline from line and cubic Bézier segments.
type Path struct {
	points []Vec2
	// CurveSegments is the number of line segments each Bézier curve is
	// flattened into. Zero means 12.
	CurveSegments int
}

// MoveTo starts the outline at (x, y), discarding any previous points.
func (p *Path) MoveTo(x, y float64) *Path {
	p.points = append(p.points[:0], Vec2{x, y})
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.points = append(p.points, Vec2{x, y})
	return p
}

// BezierCurveTo adds a cubic Bézier from the current point through control
// points (c1x, c1y) and (c2x, c2y) to (x, y).
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	if len(p.points) == 0 {
		p.points = append(p.points, Vec2{})
	}
	p0 := p.points[len(p.points)-1]
	segs := p.CurveSegments
	if segs <= 0 {
		segs = 12
	}
	for i := 1; i <= segs; i++ {
		t := float64(i) / float64(segs)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		p.points = append(p.points, Vec2{
			X: a*p0.X + b*c1x + c*c2x + d*x,
			Y: a*p0.Y + b*c1y + c*c2y + d*y,
		})
	}
	return p
}

// Points returns the flattened outline. The returned slice MUST NOT be mutated.
func (p *Path) Points() []Vec2 {
	return p.points
}
