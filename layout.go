package sway

import (
	"encoding/json"
	"fmt"
)

// Layout configures a box field: a central box, a population of small boxes
// sampled around it and an orbiting rig that carries the light or camera.
type Layout struct {
	// Seed drives both placement and per-frame jitter.
	Seed uint64 `json:"seed"`
	// Population names the sampled boxes; it scopes their placement IDs.
	Population string  `json:"population"`
	Count      int     `json:"count"`
	Shell      Shell   `json:"shell"`
	BoxSize    float64 `json:"boxSize"`
	CenterSize float64 `json:"centerSize"`
	// CenterSpin is the per-frame rotation of the central box about X and Y.
	CenterSpin float64 `json:"centerSpin"`
	// MemberSpin is the range each member's per-frame rotation is drawn from.
	MemberSpin Range `json:"memberSpin"`
	Rig        Orbit `json:"rig"`
}

// DefaultLayout returns the layout used by examples/boxes: 700 boxes
// in a 2..2.3 shell around a central box, clear of a 2x2 footprint.
func DefaultLayout() Layout {
	return Layout{
		Seed:       1,
		Population: "boxes",
		Count:      700,
		Shell: Shell{
			InnerRadius:    2,
			OuterRadius:    2.3,
			ExclusionHalfX: 1,
			ExclusionHalfZ: 1,
			VerticalJitter: 0.2,
		},
		BoxSize:    0.05,
		CenterSize: 1,
		CenterSpin: 0.01,
		MemberSpin: Range{Min: 0, Max: 0.05},
		Rig: Orbit{
			Rate:         0.005,
			Radius:       5,
			Height:       2,
			BobRate:      0.01,
			BobAmplitude: 0.5,
		},
	}
}

// Validate checks the layout before any node is built.
func (l Layout) Validate() error {
	if err := l.Shell.Validate(); err != nil {
		return err
	}
	if l.Count < 0 {
		return fmt.Errorf("%w: count %d is negative", ErrInvalidBounds, l.Count)
	}
	if !(l.BoxSize > 0) || !(l.CenterSize > 0) {
		return fmt.Errorf("%w: box size %g and center size %g must be positive",
			ErrInvalidBounds, l.BoxSize, l.CenterSize)
	}
	if err := l.MemberSpin.validate(); err != nil {
		return fmt.Errorf("member spin: %w", err)
	}
	if err := l.Rig.validate(); err != nil {
		return fmt.Errorf("rig: %w", err)
	}
	if !finite(l.CenterSpin) {
		return fmt.Errorf("%w: center spin %v", ErrInvalidBounds, l.CenterSpin)
	}
	if l.Population == "" {
		return fmt.Errorf("layout: population name is empty")
	}
	return nil
}

// LoadLayout parses a JSON layout. Fields missing from the document keep
// their DefaultLayout values. The result is validated.
func LoadLayout(jsonData []byte) (Layout, error) {
	l := DefaultLayout()
	if err := json.Unmarshal(jsonData, &l); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("parse layout: %w", err)
	}
	return l, nil
}
