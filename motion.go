package sway

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Direction is the sign applied to an oscillator's step.
type Direction int8

const (
	Reverse Direction = -1
	Forward Direction = 1
)

// AdvanceUnbounded returns angle advanced by inc. Consumers read the angle
// through trigonometric functions, so it is never wrapped.
func AdvanceUnbounded(angle, inc float64) float64 {
	return angle + inc
}

// AdvanceBounded advances a triangle-wave accumulator by one step.
//
// The direction is forced to Reverse once angle reaches limit and to Forward
// once it reaches -limit; this check happens before the step is applied, so
// the angle can pass a limit by at most one step before turning around.
func AdvanceBounded(angle float64, dir Direction, step, limit float64) (float64, Direction) {
	if angle >= limit {
		dir = Reverse
	} else if angle <= -limit {
		dir = Forward
	}
	return angle + step*float64(dir), dir
}

// Oscillator is a bounded accumulator swinging between -Limit and +Limit.
type Oscillator struct {
	Angle     float64
	Direction Direction
	Step      float64
	Limit     float64
}

// NewOscillator returns an oscillator at angle 0 heading Forward.
// It fails with ErrInvalidBounds unless step and limit are positive.
func NewOscillator(step, limit float64) (Oscillator, error) {
	o := Oscillator{Direction: Forward, Step: step, Limit: limit}
	if err := o.validate(); err != nil {
		return Oscillator{}, err
	}
	return o, nil
}

func (o Oscillator) validate() error {
	if !(o.Limit > 0) || math.IsInf(o.Limit, 0) {
		return fmt.Errorf("%w: oscillator limit %g must be positive", ErrInvalidBounds, o.Limit)
	}
	if !(o.Step > 0) || math.IsInf(o.Step, 0) {
		return fmt.Errorf("%w: oscillator step %g must be positive", ErrInvalidBounds, o.Step)
	}
	if o.Direction != Forward && o.Direction != Reverse {
		return fmt.Errorf("%w: oscillator direction %d", ErrInvalidBounds, o.Direction)
	}
	return nil
}

// Advance moves the oscillator one step.
func (o *Oscillator) Advance() {
	o.Angle, o.Direction = AdvanceBounded(o.Angle, o.Direction, o.Step, o.Limit)
}

// validate rejects non-finite bounds and an inverted range.
func (r Range) validate() error {
	if !finite(r.Min) || !finite(r.Max) {
		return fmt.Errorf("%w: range [%v, %v] is not finite", ErrInvalidBounds, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: range min %g exceeds max %g", ErrInvalidBounds, r.Min, r.Max)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// jitterIncrement draws a fresh per-frame increment from r.
func jitterIncrement(r Range, src rand.Source) float64 {
	return distuv.Uniform{Min: r.Min, Max: r.Max, Src: src}.Rand()
}
