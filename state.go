package sway

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// TrackKind selects the update rule of a Track.
type TrackKind uint8

const (
	TrackSpin      TrackKind = iota // fixed increment per frame
	TrackJitter                     // fresh random increment drawn every frame
	TrackOscillate                  // bounded triangle wave
	TrackOrbit                      // circular path with vertical bob, drives position
)

// String returns the lowercase kind name.
func (k TrackKind) String() string {
	switch k {
	case TrackSpin:
		return "spin"
	case TrackJitter:
		return "jitter"
	case TrackOscillate:
		return "oscillate"
	case TrackOrbit:
		return "orbit"
	default:
		return fmt.Sprintf("TrackKind(%d)", uint8(k))
	}
}

// Track is one motion accumulator plus the node handle its value is written
// to. A single flat struct is used for every kind so stepping a few thousand
// tracks never goes through an interface.
type Track struct {
	Name string
	Kind TrackKind

	// Target receives the derived value after each step. Rotation tracks write
	// Target.Rotation on Axis; orbit tracks write Target.Position. A nil
	// Target leaves the track as a pure accumulator.
	Target *Node
	Axis   Axis

	// Angle is the accumulator shared by spin, jitter and oscillate tracks.
	Angle float64

	// Rate is the per-frame increment of a spin track.
	Rate float64

	// Jitter is the range a jitter track draws its increment from each frame.
	Jitter Range

	// Direction, Step and Limit configure an oscillate track.
	Direction Direction
	Step      float64
	Limit     float64

	// Orbit holds the accumulators of an orbit track.
	Orbit Orbit
}

// SpinTrack rotates target about axis by rate radians per frame, starting
// from the target's current rotation.
func SpinTrack(name string, target *Node, axis Axis, rate float64) Track {
	return Track{Name: name, Kind: TrackSpin, Target: target, Axis: axis, Angle: rotationOf(target, axis), Rate: rate}
}

// JitterTrack rotates target about axis by an increment drawn from jitter
// every frame.
func JitterTrack(name string, target *Node, axis Axis, jitter Range) Track {
	return Track{Name: name, Kind: TrackJitter, Target: target, Axis: axis, Angle: rotationOf(target, axis), Jitter: jitter}
}

// OscillateTrack swings target about axis between -limit and +limit, starting
// at angle 0 heading Forward.
func OscillateTrack(name string, target *Node, axis Axis, step, limit float64) Track {
	return Track{Name: name, Kind: TrackOscillate, Target: target, Axis: axis, Direction: Forward, Step: step, Limit: limit}
}

// OrbitTrack moves target along orbit.
func OrbitTrack(name string, target *Node, orbit Orbit) Track {
	return Track{Name: name, Kind: TrackOrbit, Target: target, Orbit: orbit}
}

func rotationOf(n *Node, axis Axis) float64 {
	if n == nil {
		return 0
	}
	switch axis {
	case AxisX:
		return n.Rotation.X
	case AxisY:
		return n.Rotation.Y
	default:
		return n.Rotation.Z
	}
}

// validate checks the configuration of a track before it joins a Driver.
func (t *Track) validate() error {
	if t.Axis > AxisZ {
		return fmt.Errorf("track %q: invalid axis %d", t.Name, t.Axis)
	}
	switch t.Kind {
	case TrackSpin:
		if math.IsNaN(t.Rate) || math.IsInf(t.Rate, 0) {
			return fmt.Errorf("%w: track %q rate %v", ErrInvalidBounds, t.Name, t.Rate)
		}
	case TrackJitter:
		if err := t.Jitter.validate(); err != nil {
			return fmt.Errorf("track %q jitter: %w", t.Name, err)
		}
	case TrackOscillate:
		o := Oscillator{Angle: t.Angle, Direction: t.Direction, Step: t.Step, Limit: t.Limit}
		if err := o.validate(); err != nil {
			return fmt.Errorf("track %q: %w", t.Name, err)
		}
	case TrackOrbit:
		if err := t.Orbit.validate(); err != nil {
			return fmt.Errorf("track %q: %w", t.Name, err)
		}
	default:
		return fmt.Errorf("track %q: unknown kind %d", t.Name, t.Kind)
	}
	return nil
}

// advance moves the track's accumulators exactly one frame.
func (t *Track) advance(src rand.Source) {
	switch t.Kind {
	case TrackSpin:
		t.Angle = AdvanceUnbounded(t.Angle, t.Rate)
	case TrackJitter:
		t.Angle = AdvanceUnbounded(t.Angle, jitterIncrement(t.Jitter, src))
	case TrackOscillate:
		t.Angle, t.Direction = AdvanceBounded(t.Angle, t.Direction, t.Step, t.Limit)
	case TrackOrbit:
		t.Orbit.Advance()
	default:
		panic(fmt.Sprintf("sway: track %q has unknown kind %d", t.Name, t.Kind))
	}
}

// apply writes the track's derived value into its target node.
func (t *Track) apply() {
	n := t.Target
	if n == nil {
		return
	}
	if n.disposed {
		panic(fmt.Sprintf("sway: track %q targets disposed node %q", t.Name, n.Name))
	}
	if t.Kind == TrackOrbit {
		n.SetPosition(t.Orbit.Position())
		return
	}
	n.setRotationAxis(t.Axis, t.Angle)
}

// State is the complete motion state of a scene at one frame.
type State struct {
	// Frame counts completed steps. Every track has been advanced exactly
	// Frame times.
	Frame  uint64
	Tracks []Track
}

// Clone returns a deep copy of s with its own Tracks slice.
func (s State) Clone() State {
	out := State{Frame: s.Frame, Tracks: make([]Track, len(s.Tracks))}
	copy(out.Tracks, s.Tracks)
	return out
}

// Step returns the state one frame after prev. Every track is advanced
// exactly once; prev is not modified. Jitter tracks draw from src in track
// order, so a fixed seed yields the same sequence of states.
func Step(prev State, src rand.Source) State {
	next := State{Frame: prev.Frame + 1, Tracks: make([]Track, len(prev.Tracks))}
	stepInto(next.Tracks, prev.Tracks, src)
	return next
}

// stepInto writes prev advanced by one frame into dst. len(dst) must equal
// len(prev).
func stepInto(dst, prev []Track, src rand.Source) {
	copy(dst, prev)
	for i := range dst {
		dst[i].advance(src)
	}
}
