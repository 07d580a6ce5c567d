package sway

import (
	"fmt"
	"math"
)

// FanConfig configures the desk-fan assembly.
type FanConfig struct {
	// BladeSpin is the blade rotation per frame, in radians.
	BladeSpin float64
	// SwingStep and SwingLimit configure the head's side-to-side sweep.
	SwingStep  float64
	SwingLimit float64
}

// DefaultFanConfig returns the fan motion used by examples/fan: blades at
// 0.04 rad/frame, head sweeping ±45° at 0.002 rad/frame.
func DefaultFanConfig() FanConfig {
	return FanConfig{
		BladeSpin:  0.04,
		SwingStep:  0.002,
		SwingLimit: math.Pi / 4,
	}
}

// FanCamera is the camera framing used by the fan demo.
var FanCamera = CameraConfig{
	FovY:     60,
	Near:     0.1,
	Far:      50,
	Position: Vec3{X: 15, Y: 6, Z: 30},
	LookAt:   Vec3{Y: 18},
}

// Track names used by the fan driver.
const (
	FanBladesTrack = "blades"
	FanSwingTrack  = "swing"
)

// Fan is a built desk fan: a static stand and a swinging head carrying a
// spinning blade group.
type Fan struct {
	Root   *Node
	Swing  *Node // neck, hub and blades; oscillates about Y
	Blades *Node // four blades; spins about Z
	Driver *Driver
}

var (
	fanRed  = Material{Color: ColorHex(0x800108), Toon: true}
	fanGold = Material{Color: ColorHex(0xc4990a), Toon: true}
	fanBlue = Material{Color: ColorHex(0x1137bf), Toon: true}
)

// bladeOutline returns the flattened outline of one fan blade, a teardrop
// hanging below its hub-side corner at (-0.5, -0.5).
func bladeOutline() []Vec2 {
	const x, y = -0.5, -0.5
	var p Path
	p.MoveTo(x, y).
		BezierCurveTo(x+1, y-1, x+3, y-9, x, y-11).
		BezierCurveTo(x-1, y-12, x-4, y-12, x-6, y-11).
		BezierCurveTo(x-8, y-10, x-8, y-10, x-7, y-8).
		BezierCurveTo(x-6, y-6, x-3, y-2, x-2, y-1).
		BezierCurveTo(x-1, y, x-1, y, x, y)
	return p.Points()
}

// NewFan builds the fan nodes and its two tracks.
func NewFan(cfg FanConfig) (*Fan, error) {
	root := NewContainer("fan")

	pillar := NewMesh("pillar", NewCylinderGeometry(2, 4, 20, 32), fanRed)
	pillar.Position.Y = 10
	root.AddChild(pillar)

	base := NewMesh("base", NewCylinderGeometry(4, 10, 2, 64), fanGold)
	base.Position.Y = 1
	root.AddChild(base)

	swing := NewContainer("swing")
	root.AddChild(swing)

	neck := NewMesh("neck", NewCylinderGeometry(3, 3, 4, 32), fanRed)
	neck.SetPosition(Vec3{Y: 20, Z: 5})
	neck.Rotation.X = math.Pi / 2
	swing.AddChild(neck)

	motor := NewMesh("motor", NewCylinderGeometry(5, 3.5, 10, 32), fanGold)
	motor.Position.Y = 20
	motor.Rotation.X = math.Pi / 2
	swing.AddChild(motor)

	hub := NewMesh("hub", NewCapsuleGeometry(2, 2, 4, 32), fanRed)
	hub.SetPosition(Vec3{Y: 20, Z: 7.5})
	hub.Rotation.X = math.Pi / 2
	swing.AddChild(hub)

	blades := NewContainer("blades")
	blades.SetPosition(Vec3{Y: 20, Z: 8})
	swing.AddChild(blades)

	bladeGeo := NewExtrudeGeometry(bladeOutline(), 0.1)
	tilt := math.Pi / 24
	for i, rot := range []Euler{
		{X: tilt, Z: math.Pi / 2},
		{X: -tilt, Z: -math.Pi / 2},
		{Y: tilt, Z: math.Pi},
		{Y: -tilt},
	} {
		blade := NewMesh(fmt.Sprintf("blade%d", i+1), bladeGeo, fanBlue)
		blade.Rotation = rot
		blades.AddChild(blade)
	}

	d, err := NewDriver(nil,
		SpinTrack(FanBladesTrack, blades, AxisZ, cfg.BladeSpin),
		OscillateTrack(FanSwingTrack, swing, AxisY, cfg.SwingStep, cfg.SwingLimit),
	)
	if err != nil {
		return nil, fmt.Errorf("build fan: %w", err)
	}
	return &Fan{Root: root, Swing: swing, Blades: blades, Driver: d}, nil
}

// Attach adds the fan to scene with the demo's camera and lighting.
func (f *Fan) Attach(scene *Scene) {
	scene.Root().AddChild(f.Root)
	scene.SetDriver(f.Driver)
	scene.SetCamera(NewCamera(FanCamera))
	scene.Ambient = AmbientLight{Color: ColorWhite, Intensity: 0.4}
	scene.AddLight(&DirectionalLight{Color: ColorWhite, Intensity: 1, Position: Vec3{X: 10, Y: 3, Z: 5}})
}
