package sway

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultFaceCap = 4096

// Scene is the top-level object that owns the node tree, camera, lights, the
// motion driver and render buffers.
type Scene struct {
	root   *Node
	camera *Camera
	lights []*DirectionalLight
	driver *Driver
	debug  bool

	// Ambient is added to every lit face.
	Ambient AmbientLight
	// ClearColor fills the screen before the scene is drawn. A zero alpha
	// leaves the screen untouched.
	ClearColor Color
	// AntiAlias enables anti-aliased triangle edges.
	AntiAlias bool

	updateFunc func() error

	// Key bindings and synthetic presses
	keyHandlers   []keyHandler
	nextHandlerID uint32
	injectQueue   []ebiten.Key

	// Presented state, recorded by Present.
	presentedFrame  uint64
	presentedTracks int
	lastStepTime    time.Duration

	// Render state
	faces    []faceCommand
	vertBuf  []ebiten.Vertex
	indBuf   []uint16
	lightBuf []lightDir

	// Screenshots and scripted runs
	ScreenshotDir   string
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewScene creates a new scene with a pre-created root container and a
// default camera at (0, 2, 5) looking at the origin.
func NewScene() *Scene {
	return &Scene{
		root: NewContainer("root"),
		camera: NewCamera(CameraConfig{
			Position: Vec3{Y: 2, Z: 5},
		}),
		Ambient:       AmbientLight{Color: ColorWhite, Intensity: 0.3},
		ScreenshotDir: "screenshots",
		faces:         make([]faceCommand, 0, defaultFaceCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// SetCamera replaces the scene camera, keeping the current viewport size.
func (s *Scene) SetCamera(cam *Camera) {
	if cam == nil {
		panic("sway: cannot set nil camera")
	}
	cam.width, cam.height = s.camera.width, s.camera.height
	s.camera = cam
}

// AddLight adds a directional light to the scene.
func (s *Scene) AddLight(l *DirectionalLight) {
	if l == nil {
		panic("sway: cannot add nil light")
	}
	s.lights = append(s.lights, l)
}

// Lights returns the scene's directional lights. The returned slice MUST NOT be mutated.
func (s *Scene) Lights() []*DirectionalLight {
	return s.lights
}

// SetDriver attaches the motion driver stepped by Update. The scene registers
// itself as a presenter of d.
func (s *Scene) SetDriver(d *Driver) {
	s.driver = d
	if d != nil {
		d.AddPresenter(s)
	}
}

// Driver returns the attached motion driver, or nil.
func (s *Scene) Driver() *Driver {
	return s.driver
}

// SetUpdateFunc sets a callback run at the start of every Update, before the
// driver steps. A non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Present records the state handed over by the driver for the next Draw.
func (s *Scene) Present(st State) {
	s.presentedFrame = st.Frame
	s.presentedTracks = len(st.Tracks)
}

// PresentedFrame returns the frame number of the last presented state.
func (s *Scene) PresentedFrame() uint64 {
	return s.presentedFrame
}

// Update runs one frame: the scripted test runner, key handlers, the user
// update func, one driver step, then a world-transform refresh so anchored
// cameras and lights see this frame's positions.
func (s *Scene) Update() error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.driver != nil {
		var t0 time.Time
		if s.debug {
			t0 = time.Now()
		}
		s.driver.Step()
		if s.debug {
			s.lastStepTime = time.Since(t0)
		}
	}
	updateWorldTransform(s.root, identityMatrix, false)
	return nil
}

// Draw clears the screen, renders the scene from the camera and captures any
// queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.render(screen)
	s.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and per-frame
// timing stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
