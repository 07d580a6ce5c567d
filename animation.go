package sway

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors and call Update(dt) each frame. The group
// auto-applies values and marks the target node dirty. If the target node is
// disposed, the group stops immediately.
//
// There is no global animation manager; callers run Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	// apply, when set, runs after every write; used by tweens whose value
	// is handed to something other than a plain field.
	apply func()
	value float64
	Done  bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.apply != nil {
		g.apply()
	}
	if g.target != nil {
		g.target.MarkDirty()
	}
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition creates a TweenGroup that animates node.Position to the given
// target over the specified duration using the easing function.
func TweenPosition(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Position.X, to.X, duration, fn)
	g.add(&node.Position.Y, to.Y, duration, fn)
	g.add(&node.Position.Z, to.Z, duration, fn)
	return g
}

// TweenScale creates a TweenGroup that animates node.Scale to the given target
// over the specified duration using the easing function.
func TweenScale(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Scale.X, to.X, duration, fn)
	g.add(&node.Scale.Y, to.Y, duration, fn)
	g.add(&node.Scale.Z, to.Z, duration, fn)
	return g
}

// TweenColor creates a TweenGroup that animates all four components of the
// node's material color to the target color over the specified duration.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: node}
	g.add(&node.Material.Color.R, to.R, duration, fn)
	g.add(&node.Material.Color.G, to.G, duration, fn)
	g.add(&node.Material.Color.B, to.B, duration, fn)
	g.add(&node.Material.Color.A, to.A, duration, fn)
	return g
}

// TweenCameraPosition creates a TweenGroup that moves the camera to the given
// position. Has no effect while the camera is anchored to a node.
func TweenCameraPosition(cam *Camera, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&cam.Position.X, to.X, duration, fn)
	g.add(&cam.Position.Y, to.Y, duration, fn)
	g.add(&cam.Position.Z, to.Z, duration, fn)
	return g
}

// TweenTrackRate creates a TweenGroup that ramps the rate of the named spin or
// orbit track from its current value to the target, e.g. a fan spinning up.
// Panics if the driver has no track with that name or the track is not a
// spin or orbit track.
func TweenTrackRate(d *Driver, name string, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	t, ok := d.Track(name)
	if !ok {
		panic("sway: TweenTrackRate: no track named " + name)
	}
	if t.Kind != TrackSpin && t.Kind != TrackOrbit {
		panic(fmt.Sprintf("sway: TweenTrackRate: %s track %q has no rate", t.Kind, name))
	}
	g := &TweenGroup{}
	g.value = t.Rate
	if t.Kind == TrackOrbit {
		g.value = t.Orbit.Rate
	}
	g.add(&g.value, to, duration, fn)
	g.apply = func() { d.SetRate(name, g.value) }
	return g
}
