package sway

import (
	"fmt"
	"math/rand/v2"
)

// Presenter receives the scene state after every driven frame. Present is
// fire-and-forget and must not block. The Tracks slice is reused by the
// Driver on the next step; call State.Clone to keep it.
type Presenter interface {
	Present(State)
}

// PresenterFunc adapts a plain function to Presenter.
type PresenterFunc func(State)

// Present calls f(s).
func (f PresenterFunc) Present(s State) { f(s) }

// Driver advances a set of tracks once per frame and hands the result to the
// rendering side. It is single-threaded: Step must be called from the host's
// frame callback only.
type Driver struct {
	state      State
	back       []Track // double buffer swapped with state.Tracks each step
	src        rand.Source
	presenters []Presenter
	paused     bool
}

// NewSource returns a seeded PCG source for deterministic scenes.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// NewDriver creates a driver over the given tracks. Tracks are validated up
// front; a bad configuration is returned as an error before any frame runs.
// A nil src is replaced by a randomly seeded source.
func NewDriver(src rand.Source, tracks ...Track) (*Driver, error) {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	d := &Driver{src: src}
	for _, t := range tracks {
		if err := d.AddTrack(t); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddTrack validates t and appends it to the driver.
func (d *Driver) AddTrack(t Track) error {
	if err := t.validate(); err != nil {
		return fmt.Errorf("add track %d: %w", len(d.state.Tracks), err)
	}
	d.state.Tracks = append(d.state.Tracks, t)
	d.back = append(d.back, Track{})
	return nil
}

// AddPresenter registers p to be called after every step.
func (d *Driver) AddPresenter(p Presenter) {
	if p == nil {
		panic("sway: cannot add nil presenter")
	}
	d.presenters = append(d.presenters, p)
}

// Step runs one frame: advance every track exactly once, write derived
// rotations and positions into the target nodes, then present the state.
// It does nothing while the driver is paused.
func (d *Driver) Step() {
	if d.paused {
		return
	}
	stepInto(d.back, d.state.Tracks, d.src)
	d.state.Tracks, d.back = d.back, d.state.Tracks
	d.state.Frame++

	for i := range d.state.Tracks {
		d.state.Tracks[i].apply()
	}
	for _, p := range d.presenters {
		p.Present(d.state)
	}
}

// State returns the current state. The Tracks slice is owned by the driver.
func (d *Driver) State() State {
	return d.state
}

// Frame returns the number of steps run so far.
func (d *Driver) Frame() uint64 {
	return d.state.Frame
}

// NumTracks returns the number of tracks.
func (d *Driver) NumTracks() int {
	return len(d.state.Tracks)
}

// Track returns a copy of the first track with the given name.
func (d *Driver) Track(name string) (Track, bool) {
	if i := d.indexOf(name); i >= 0 {
		return d.state.Tracks[i], true
	}
	return Track{}, false
}

// SetRate changes the per-frame increment of the named spin track or the
// angular rate of the named orbit track. It reports whether a track was found.
func (d *Driver) SetRate(name string, rate float64) bool {
	i := d.indexOf(name)
	if i < 0 {
		return false
	}
	t := &d.state.Tracks[i]
	switch t.Kind {
	case TrackSpin:
		t.Rate = rate
	case TrackOrbit:
		t.Orbit.Rate = rate
	default:
		panic(fmt.Sprintf("sway: SetRate on %s track %q", t.Kind, name))
	}
	return true
}

func (d *Driver) indexOf(name string) int {
	for i := range d.state.Tracks {
		if d.state.Tracks[i].Name == name {
			return i
		}
	}
	return -1
}

// Pause stops Step from advancing until Resume is called.
func (d *Driver) Pause() { d.paused = true }

// Resume re-enables Step.
func (d *Driver) Resume() { d.paused = false }

// Paused reports whether the driver is paused.
func (d *Driver) Paused() bool { return d.paused }
