package sway

import "errors"

// ErrInvalidBounds reports a layout or oscillator configured with impossible
// bounds (inner radius above outer radius, non-positive limit, negative
// extents). It is returned at construction time, before any frame runs.
var ErrInvalidBounds = errors.New("sway: invalid bounds")

// ErrSamplingExhausted reports that rejection sampling ran out of attempts
// without finding a candidate outside the exclusion zone.
var ErrSamplingExhausted = errors.New("sway: sampling exhausted")
