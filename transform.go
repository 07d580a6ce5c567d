package sway

import "math"

// mat4 is a row-major 4x4 affine matrix: m[row*4+col]. Points are column
// vectors, so p' = M·p and translation lives in m[3], m[7], m[11].
type mat4 [16]float64

// identityMatrix is the identity transform.
var identityMatrix = mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// computeLocalMatrix computes the local matrix from the node's transform
// properties.
//
// Composition order:
//
//	Scale -> Rotate X -> Rotate Y -> Rotate Z (as Rx·Ry·Rz) -> Translate
func computeLocalMatrix(n *Node) mat4 {
	sx, cx := math.Sincos(n.Rotation.X)
	sy, cy := math.Sincos(n.Rotation.Y)
	sz, cz := math.Sincos(n.Rotation.Z)

	cxcz, cxsz := cx*cz, cx*sz
	sxcz, sxsz := sx*cz, sx*sz

	k := n.Scale
	return mat4{
		cy * cz * k.X, -cy * sz * k.Y, sy * k.Z, n.Position.X,
		(cxsz + sxcz*sy) * k.X, (cxcz - sxsz*sy) * k.Y, -sx * cy * k.Z, n.Position.Y,
		(sxsz - cxcz*sy) * k.X, (sxcz + cxsz*sy) * k.Y, cx * cy * k.Z, n.Position.Z,
		0, 0, 0, 1,
	}
}

// multiplyMat4 returns p·c (apply c first, then p).
func multiplyMat4(p, c mat4) mat4 {
	var out mat4
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			out[r*4+col] = p[r*4]*c[col] + p[r*4+1]*c[4+col] + p[r*4+2]*c[8+col] + p[r*4+3]*c[12+col]
		}
	}
	return out
}

// transformPoint applies m to a point (w = 1).
func (m *mat4) transformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

// translation returns the translation column of m.
func (m *mat4) translation() Vec3 {
	return Vec3{X: m[3], Y: m[7], Z: m[11]}
}

// updateWorldTransform recomputes a node's world matrix.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parent mat4, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldMatrix = multiplyMat4(parent, computeLocalMatrix(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldMatrix, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(p Vec3) {
	n.Position = p
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r Euler) {
	n.Rotation = r
	n.transformDirty = true
}

// SetScale sets the node's scale and marks it dirty.
func (n *Node) SetScale(s Vec3) {
	n.Scale = s
	n.transformDirty = true
}

// setRotationAxis sets one rotation component and marks the node dirty.
func (n *Node) setRotationAxis(axis Axis, angle float64) {
	switch axis {
	case AxisX:
		n.Rotation.X = angle
	case AxisY:
		n.Rotation.Y = angle
	case AxisZ:
		n.Rotation.Z = angle
	default:
		panic("sway: invalid rotation axis")
	}
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// UpdateWorldTransform refreshes the world matrices of this node and its
// subtree from the current parent chain. Scene.Update does this every frame;
// call it directly when reading world positions outside the loop.
func (n *Node) UpdateWorldTransform() {
	parent := identityMatrix
	if n.Parent != nil {
		parent = n.Parent.worldMatrix
	}
	updateWorldTransform(n, parent, true)
}

// LocalToWorld converts a local-space point to world space using the world
// matrix computed on the last update.
func (n *Node) LocalToWorld(p Vec3) Vec3 {
	return n.worldMatrix.transformPoint(p)
}

// WorldPosition returns the node's origin in world space as of the last update.
func (n *Node) WorldPosition() Vec3 {
	return n.worldMatrix.translation()
}
