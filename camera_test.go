package sway

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(CameraConfig{})
	if cam.FovY != 60 || cam.Near != 0.1 || cam.Far != 50 {
		t.Errorf("defaults = fov %v near %v far %v, want 60 0.1 50", cam.FovY, cam.Near, cam.Far)
	}
	if cam.Up != (Vec3{Y: 1}) {
		t.Errorf("Up = %v, want +Y", cam.Up)
	}
}

func TestCameraFarNotBeyondNear(t *testing.T) {
	cam := NewCamera(CameraConfig{Near: 10, Far: 5})
	if cam.Far != 50 {
		t.Errorf("Far = %v, want default 50 when not beyond Near", cam.Far)
	}
}

func TestCameraResize(t *testing.T) {
	cam := NewCamera(CameraConfig{})
	cam.Resize(800, 400)
	assertNear(t, "Aspect", cam.Aspect(), 2)

	cam.Resize(0, 300)
	assertNear(t, "Aspect after zero width", cam.Aspect(), 2)
	cam.Resize(640, -1)
	assertNear(t, "Aspect after negative height", cam.Aspect(), 2)
}

func TestCameraProjectTargetAtCenter(t *testing.T) {
	cam := NewCamera(FanCamera)
	cam.Resize(800, 600)
	sx, sy, depth, ok := cam.Project(FanCamera.LookAt)
	if !ok {
		t.Fatal("target should be visible")
	}
	if !approxEqual(sx, 400, 1e-6) || !approxEqual(sy, 300, 1e-6) {
		t.Errorf("Project(target) = (%v, %v), want (400, 300)", sx, sy)
	}
	want := math.Sqrt(15*15 + 12*12 + 30*30)
	if !approxEqual(depth, want, 1e-9) {
		t.Errorf("depth = %v, want %v", depth, want)
	}
}

func TestCameraProjectAxes(t *testing.T) {
	cam := NewCamera(CameraConfig{Position: Vec3{Z: 10}})
	cam.Resize(100, 100)

	// Looking down -Z: +X is screen right, +Y is screen up.
	sx, _, _, ok := cam.Project(Vec3{X: 1})
	if !ok || sx <= 50 {
		t.Errorf("+X projected to sx=%v, want right of center", sx)
	}
	_, sy, _, ok := cam.Project(Vec3{Y: 1})
	if !ok || sy >= 50 {
		t.Errorf("+Y projected to sy=%v, want above center", sy)
	}
}

func TestCameraProjectFocalLength(t *testing.T) {
	// With a 90° vertical FOV the half-height equals the distance.
	cam := NewCamera(CameraConfig{FovY: 90, Position: Vec3{Z: 5}})
	cam.Resize(200, 200)
	_, sy, _, ok := cam.Project(Vec3{Y: 5})
	if !ok {
		t.Fatal("point should be visible")
	}
	if !approxEqual(sy, 0, 1e-9) {
		t.Errorf("sy = %v, want 0 (top edge)", sy)
	}
}

func TestCameraProjectClipping(t *testing.T) {
	cam := NewCamera(CameraConfig{Position: Vec3{Z: 10}, Far: 20})
	cam.Resize(100, 100)
	tests := []struct {
		name string
		p    Vec3
		ok   bool
	}{
		{"in front", Vec3{}, true},
		{"behind", Vec3{Z: 20}, false},
		{"inside near plane", Vec3{Z: 9.95}, false},
		{"beyond far", Vec3{Z: -15}, false},
	}
	for _, tt := range tests {
		if _, _, _, ok := cam.Project(tt.p); ok != tt.ok {
			t.Errorf("%s: ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestCameraAnchor(t *testing.T) {
	rig := NewContainer("rig")
	rig.SetPosition(Vec3{X: 3, Y: 4})
	rig.UpdateWorldTransform()

	cam := NewCamera(CameraConfig{Position: Vec3{Z: 10}})
	cam.Anchor = rig
	assertVec(t, "Eye", cam.Eye(), Vec3{X: 3, Y: 4})

	rig.Dispose()
	assertVec(t, "Eye after dispose", cam.Eye(), Vec3{Z: 10})
}

func TestCameraLookAlongUp(t *testing.T) {
	cam := NewCamera(CameraConfig{Position: Vec3{Y: 10}})
	cam.Resize(100, 100)
	sx, sy, _, ok := cam.Project(Vec3{})
	if !ok {
		t.Fatal("origin should be visible looking straight down")
	}
	if !approxEqual(sx, 50, 1e-9) || !approxEqual(sy, 50, 1e-9) {
		t.Errorf("Project(origin) = (%v, %v), want center", sx, sy)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(CameraConfig{Position: Vec3{Z: 10}})
	cam.Resize(100, 100)
	cam.LookAt(Vec3{X: 5})
	sx, sy, _, ok := cam.Project(Vec3{X: 5})
	if !ok || !approxEqual(sx, 50, 1e-9) || !approxEqual(sy, 50, 1e-9) {
		t.Errorf("Project(new target) = (%v, %v, %v), want center", sx, sy, ok)
	}
}
