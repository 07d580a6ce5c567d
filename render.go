package sway

import (
	"cmp"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// maxBatchVertices keeps each DrawTriangles call within uint16 indices.
const maxBatchVertices = 65535 / 3 * 3

// faceCommand is one shaded, projected triangle waiting to be sorted and
// submitted.
type faceCommand struct {
	x, y  [3]float32
	color color32
	depth float64
}

// color32 is a compact premultiplied RGBA color, for render commands only.
type color32 struct {
	R, G, B, A float32
}

func premultiplied(c Color) color32 {
	a := float32(c.A)
	return color32{float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a}
}

// resolveLights snapshots the scene's directional lights for this frame.
func (s *Scene) resolveLights() {
	s.lightBuf = s.lightBuf[:0]
	for _, l := range s.lights {
		s.lightBuf = append(s.lightBuf, lightDir{dir: l.direction(), color: l.Color, intensity: l.Intensity})
	}
}

// traverse walks the node tree depth-first, updating world matrices and
// emitting a face command for every visible, front-facing triangle.
func (s *Scene) traverse(n *Node, parent mat4, parentRecomputed bool, stats *debugStats) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldMatrix = multiplyMat4(parent, computeLocalMatrix(n))
		n.transformDirty = false
	}

	if n.Type == NodeTypeMesh && n.Geometry != nil {
		s.emitMesh(n, stats)
	}

	for _, child := range n.children {
		s.traverse(child, n.worldMatrix, recompute, stats)
	}
}

// emitMesh transforms, culls, shades and projects every triangle of n.
func (s *Scene) emitMesh(n *Node, stats *debugStats) {
	g := n.Geometry
	cam := s.camera
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := n.worldMatrix.transformPoint(g.Positions[g.Indices[i]])
		b := n.worldMatrix.transformPoint(g.Positions[g.Indices[i+1]])
		c := n.worldMatrix.transformPoint(g.Positions[g.Indices[i+2]])

		normal := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if r3.Norm(normal) == 0 {
			continue
		}
		normal = r3.Unit(normal)
		if r3.Dot(normal, r3.Sub(cam.eye, a)) <= 0 {
			stats.culledFaces++
			continue
		}

		ax, ay, ad, okA := cam.project(a)
		bx, by, bd, okB := cam.project(b)
		cx, cy, cd, okC := cam.project(c)
		if !okA || !okB || !okC {
			stats.clippedFaces++
			continue
		}

		shaded := shadeFace(n.Material, normal, s.Ambient, s.lightBuf)
		s.faces = append(s.faces, faceCommand{
			x:     [3]float32{float32(ax), float32(bx), float32(cx)},
			y:     [3]float32{float32(ay), float32(by), float32(cy)},
			color: premultiplied(shaded),
			depth: (ad + bd + cd) / 3,
		})
	}
}

// sortFaces orders faces far to near (painter's algorithm). The sort is
// stable so faces at equal depth keep tree order.
func (s *Scene) sortFaces() {
	slices.SortStableFunc(s.faces, func(a, b faceCommand) int {
		return cmp.Compare(b.depth, a.depth)
	})
}

// submitFaces draws the sorted faces in as few DrawTriangles calls as the
// uint16 index range allows. Returns the number of draw calls.
func (s *Scene) submitFaces(target *ebiten.Image) int {
	calls := 0
	s.vertBuf = s.vertBuf[:0]
	s.indBuf = s.indBuf[:0]
	opts := &ebiten.DrawTrianglesOptions{AntiAlias: s.AntiAlias}

	flush := func() {
		if len(s.indBuf) == 0 {
			return
		}
		target.DrawTriangles(s.vertBuf, s.indBuf, WhitePixel, opts)
		calls++
		s.vertBuf = s.vertBuf[:0]
		s.indBuf = s.indBuf[:0]
	}

	for i := range s.faces {
		f := &s.faces[i]
		if len(s.vertBuf)+3 > maxBatchVertices {
			flush()
		}
		base := uint16(len(s.vertBuf))
		for k := 0; k < 3; k++ {
			s.vertBuf = append(s.vertBuf, ebiten.Vertex{
				DstX:   f.x[k],
				DstY:   f.y[k],
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: f.color.R,
				ColorG: f.color.G,
				ColorB: f.color.B,
				ColorA: f.color.A,
			})
		}
		s.indBuf = append(s.indBuf, base, base+1, base+2)
	}
	flush()
	return calls
}

// render runs one full draw: transforms, face emission, sort and submit.
func (s *Scene) render(target *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.camera.computeView()
	s.resolveLights()
	s.faces = s.faces[:0]
	s.traverse(s.root, identityMatrix, false, &stats)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.sortFaces()

	if s.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.drawCalls = s.submitFaces(target)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.faceCount = len(s.faces)
		stats.stepTime = s.lastStepTime
		stats.frame = s.presentedFrame
		stats.trackCount = s.presentedTracks
		s.debugLog(stats)
	}
}
