package sway

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.Position = Vec3{X: 10, Y: 20, Z: 30}

	g := TweenPosition(node, Vec3{X: 100, Y: 200, Z: -5}, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Position.X-100) > 0.5 || math.Abs(node.Position.Y-200) > 0.5 || math.Abs(node.Position.Z+5) > 0.5 {
		t.Errorf("Position = %v, want ~(100, 200, -5)", node.Position)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")

	g := TweenScale(node, Vec3{X: 2, Y: 3, Z: 4}, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Scale.X-2) > 0.01 || math.Abs(node.Scale.Y-3) > 0.01 || math.Abs(node.Scale.Z-4) > 0.01 {
		t.Errorf("Scale = %v, want ~(2, 3, 4)", node.Scale)
	}
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewMesh("color", NewBoxGeometry(1, 1, 1), Material{Color: Color{R: 0, G: 0, B: 0, A: 1}})

	target := Color{R: 1, G: 0.5, B: 0.25, A: 0.5}
	g := TweenColor(node, target, 1.0, ease.Linear)

	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done")
	}
	c := node.Material.Color
	if math.Abs(c.R-1) > 0.01 || math.Abs(c.G-0.5) > 0.01 || math.Abs(c.B-0.25) > 0.01 || math.Abs(c.A-0.5) > 0.01 {
		t.Errorf("Color = %+v, want ~%+v", c, target)
	}
}

func TestTweenCameraPosition(t *testing.T) {
	cam := NewCamera(CameraConfig{Position: Vec3{Z: 10}})
	g := TweenCameraPosition(cam, Vec3{X: 4, Y: 2, Z: 6}, 1.0, ease.Linear)

	g.Update(0.5)
	if math.Abs(cam.Position.Z-8) > 0.01 {
		t.Errorf("midpoint Z = %v, want ~8", cam.Position.Z)
	}
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	if math.Abs(cam.Position.X-4) > 0.01 || math.Abs(cam.Position.Z-6) > 0.01 {
		t.Errorf("Position = %v, want ~(4, 2, 6)", cam.Position)
	}
}

func TestTweenTrackRateSpinsUp(t *testing.T) {
	d, err := NewDriver(NewSource(1), SpinTrack("blades", nil, AxisZ, 0))
	if err != nil {
		t.Fatal(err)
	}
	g := TweenTrackRate(d, "blades", 0.04, 1.0, ease.Linear)

	g.Update(0.5)
	tr, _ := d.Track("blades")
	if math.Abs(tr.Rate-0.02) > 1e-4 {
		t.Errorf("midpoint rate = %v, want ~0.02", tr.Rate)
	}

	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}
	d.Step()
	tr, _ = d.Track("blades")
	if math.Abs(tr.Angle-0.04) > 1e-4 {
		t.Errorf("angle after one step at full rate = %v, want ~0.04", tr.Angle)
	}
}

func TestTweenTrackRateOrbit(t *testing.T) {
	d, err := NewDriver(NewSource(1), OrbitTrack("rig", nil, Orbit{Rate: 0.01}))
	if err != nil {
		t.Fatal(err)
	}
	g := TweenTrackRate(d, "rig", 0, 1.0, ease.Linear)
	g.Update(1.0)
	rig, _ := d.Track("rig")
	if math.Abs(rig.Orbit.Rate) > 1e-6 {
		t.Errorf("orbit rate = %v, want 0", rig.Orbit.Rate)
	}
}

func TestTweenTrackRateMissingPanics(t *testing.T) {
	d, err := NewDriver(NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for missing track")
		}
	}()
	TweenTrackRate(d, "nope", 1, 1, ease.Linear)
}

func TestTweenTrackRateRejectsRatelessTracks(t *testing.T) {
	n := NewContainer("n")
	d, err := NewDriver(NewSource(1),
		JitterTrack("j", n, AxisX, Range{Min: 0, Max: 0.05}),
		OscillateTrack("o", n, AxisY, 0.002, 1),
	)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"j", "o"} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic building a rate tween for %q", name)
				}
			}()
			TweenTrackRate(d, name, 1, 1, ease.Linear)
		})
	}
}

func TestTweenGroupDoneFlagTransition(t *testing.T) {
	node := NewContainer("done")
	g := TweenPosition(node, Vec3{X: 50, Y: 50}, 0.5, ease.Linear)

	if g.Done {
		t.Fatal("should not be Done at start")
	}

	// Partway through, not done.
	g.Update(0.25)
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	// Complete.
	g.Update(0.25)
	if !g.Done {
		t.Fatal("should be Done after full duration")
	}

	// Update after done is a no-op.
	g.Update(0.1)
	if !g.Done {
		t.Fatal("should remain Done")
	}
}

func TestTweenGroupMarksDirty(t *testing.T) {
	node := NewContainer("dirty")
	node.transformDirty = false

	g := TweenPosition(node, Vec3{X: 100}, 1.0, ease.Linear)
	g.Update(0.1)

	if !node.transformDirty {
		t.Fatal("expected node to be marked dirty after TweenGroup update")
	}
}

func TestTweenGroupDisposedNode(t *testing.T) {
	node := NewContainer("disposed")
	node.Position = Vec3{X: 10, Y: 20}

	g := TweenPosition(node, Vec3{X: 100, Y: 200}, 1.0, ease.Linear)
	node.Dispose()
	g.Update(0.1)

	if !g.Done {
		t.Fatal("expected Done after disposed node detected")
	}
	if node.Position.X != 10 || node.Position.Y != 20 {
		t.Errorf("Position changed to %v on disposed node", node.Position)
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	nodeL := NewContainer("linear")
	nodeC := NewContainer("cubic")

	gL := TweenPosition(nodeL, Vec3{X: 100}, 1.0, ease.Linear)
	gC := TweenPosition(nodeC, Vec3{X: 100}, 1.0, ease.OutCubic)

	gL.Update(0.5)
	gC.Update(0.5)

	// OutCubic should be ahead of linear at midpoint.
	if nodeC.Position.X-nodeL.Position.X < 1.0 {
		t.Errorf("OutCubic should lead linear at midpoint: linear=%f cubic=%f", nodeL.Position.X, nodeC.Position.X)
	}
}

func TestTweenGroupUpdateZeroAlloc(t *testing.T) {
	node := NewContainer("alloc")
	g := TweenPosition(node, Vec3{X: 100, Y: 100}, 1.0, ease.Linear)

	// Warm up.
	g.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("TweenGroup.Update allocated %f times per run, want 0", result)
	}
}
