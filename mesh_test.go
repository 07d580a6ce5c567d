package sway

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// assertOutwardFaces checks that every non-degenerate triangle of a convex
// solid centered on center faces away from it.
func assertOutwardFaces(t *testing.T, name string, g *Geometry, center Vec3) {
	t.Helper()
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := g.Positions[g.Indices[i]]
		b := g.Positions[g.Indices[i+1]]
		c := g.Positions[g.Indices[i+2]]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if r3.Norm(n) < 1e-12 {
			continue
		}
		centroid := r3.Scale(1.0/3, r3.Add(r3.Add(a, b), c))
		if r3.Dot(n, r3.Sub(centroid, center)) <= 0 {
			t.Errorf("%s: triangle %d faces inward", name, i/3)
			return
		}
	}
}

func assertIndicesInRange(t *testing.T, name string, g *Geometry) {
	t.Helper()
	for i, idx := range g.Indices {
		if int(idx) >= len(g.Positions) {
			t.Fatalf("%s: index %d = %d out of range (%d positions)", name, i, idx, len(g.Positions))
		}
	}
}

func TestBoxGeometry(t *testing.T) {
	g := NewBoxGeometry(2, 4, 6)
	if len(g.Positions) != 24 {
		t.Errorf("Positions = %d, want 24", len(g.Positions))
	}
	if g.NumTriangles() != 12 {
		t.Errorf("NumTriangles = %d, want 12", g.NumTriangles())
	}
	for _, p := range g.Positions {
		if math.Abs(p.X) != 1 || math.Abs(p.Y) != 2 || math.Abs(p.Z) != 3 {
			t.Fatalf("vertex %v is not a box corner", p)
		}
	}
	assertIndicesInRange(t, "box", g)
	assertOutwardFaces(t, "box", g, Vec3{})
}

func TestCylinderGeometry(t *testing.T) {
	g := NewCylinderGeometry(2, 4, 20, 32)
	assertIndicesInRange(t, "cylinder", g)
	assertOutwardFaces(t, "cylinder", g, Vec3{})

	var minY, maxY float64
	for _, p := range g.Positions {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
		if r := math.Hypot(p.X, p.Z); r > 4+epsilon {
			t.Fatalf("vertex %v beyond bottom radius", p)
		}
	}
	assertNear(t, "minY", minY, -10)
	assertNear(t, "maxY", maxY, 10)
}

func TestCylinderGeometryMinimumSegments(t *testing.T) {
	g := NewCylinderGeometry(1, 1, 1, 1)
	// Clamped to three segments: 3 profile spans x 3 segments x 2 triangles.
	if g.NumTriangles() != 18 {
		t.Errorf("NumTriangles = %d, want 18", g.NumTriangles())
	}
}

func TestCapsuleGeometry(t *testing.T) {
	g := NewCapsuleGeometry(2, 4, 8, 16)
	assertIndicesInRange(t, "capsule", g)
	assertOutwardFaces(t, "capsule", g, Vec3{})

	var maxY float64
	for _, p := range g.Positions {
		maxY = math.Max(maxY, p.Y)
	}
	// Total height is length + 2*radius.
	assertNear(t, "maxY", maxY, 4)
}

func TestExtrudeGeometrySquare(t *testing.T) {
	square := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	g := NewExtrudeGeometry(square, 0.5)
	// Two cap triangles each side plus two per edge.
	if g.NumTriangles() != 2*2+4*2 {
		t.Errorf("NumTriangles = %d, want 12", g.NumTriangles())
	}
	assertIndicesInRange(t, "square", g)
	assertOutwardFaces(t, "square", g, Vec3{X: 0.5, Y: 0.5, Z: 0.25})
}

func TestExtrudeGeometryClockwiseInput(t *testing.T) {
	cw := []Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	g := NewExtrudeGeometry(cw, 1)
	assertOutwardFaces(t, "clockwise", g, Vec3{X: 0.5, Y: 0.5, Z: 0.5})
}

func TestExtrudeGeometryClosedOutline(t *testing.T) {
	closed := []Vec2{{0, 0}, {1, 0}, {0, 1}, {0, 0}}
	g := NewExtrudeGeometry(closed, 1)
	if len(g.Positions) != 6 {
		t.Errorf("Positions = %d, want 6 (repeated end point dropped)", len(g.Positions))
	}
}

func TestExtrudeGeometryDegenerate(t *testing.T) {
	g := NewExtrudeGeometry([]Vec2{{0, 0}, {1, 1}}, 1)
	if g.NumTriangles() != 0 {
		t.Errorf("NumTriangles = %d, want 0", g.NumTriangles())
	}
}

func TestTriangulateConcave(t *testing.T) {
	// L shape, counter-clockwise, area 3.
	l := []Vec2{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}}
	tris := triangulate(l)
	if len(tris) != (len(l)-2)*3 {
		t.Fatalf("indices = %d, want %d", len(tris), (len(l)-2)*3)
	}
	var area float64
	for i := 0; i < len(tris); i += 3 {
		a := cross2(l[tris[i]], l[tris[i+1]], l[tris[i+2]])
		if a <= 0 {
			t.Errorf("triangle %d is not counter-clockwise", i/3)
		}
		area += a / 2
	}
	assertNear(t, "area", area, 3)
}

func TestSignedArea(t *testing.T) {
	ccw := []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	assertNear(t, "ccw", signedArea(ccw), 2)
	cw := []Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	assertNear(t, "cw", signedArea(cw), -2)
}

func TestGeometryTranslate(t *testing.T) {
	g := NewBoxGeometry(1, 1, 1).Translate(Vec3{Y: 0.5})
	for _, p := range g.Positions {
		if p.Y < -epsilon || p.Y > 1+epsilon {
			t.Fatalf("vertex %v outside [0, 1] after translate", p)
		}
	}
}

// --- Path ---

func TestPathBezierEndpoints(t *testing.T) {
	var p Path
	p.MoveTo(1, 2).BezierCurveTo(3, 4, 5, 6, 7, 8)
	pts := p.Points()
	if len(pts) != 1+12 {
		t.Fatalf("points = %d, want 13", len(pts))
	}
	if pts[0] != (Vec2{1, 2}) {
		t.Errorf("start = %v, want (1, 2)", pts[0])
	}
	last := pts[len(pts)-1]
	assertNear(t, "end X", last.X, 7)
	assertNear(t, "end Y", last.Y, 8)
}

func TestPathCurveSegments(t *testing.T) {
	p := Path{CurveSegments: 4}
	p.MoveTo(0, 0).BezierCurveTo(0, 1, 1, 1, 1, 0).LineTo(0, -1)
	if n := len(p.Points()); n != 1+4+1 {
		t.Errorf("points = %d, want 6", n)
	}
}

func TestPathMoveToResets(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).LineTo(1, 1)
	p.MoveTo(5, 5)
	if pts := p.Points(); len(pts) != 1 || pts[0] != (Vec2{5, 5}) {
		t.Errorf("points = %v, want [(5, 5)]", pts)
	}
}

func TestBladeOutlineExtrudes(t *testing.T) {
	outline := bladeOutline()
	g := NewExtrudeGeometry(outline, 0.1)
	n := len(outline) - 1 // closed outline, end point dropped
	want := 2*(n-2) + 2*n
	if g.NumTriangles() != want {
		t.Errorf("NumTriangles = %d, want %d", g.NumTriangles(), want)
	}
	assertIndicesInRange(t, "blade", g)
}
