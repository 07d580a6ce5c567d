package sway

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultMaxAttempts is the rejection-sampling budget used when
// Shell.MaxAttempts is zero.
const DefaultMaxAttempts = 10000

// Shell describes where a population of objects may be placed: a spherical
// band of radii around the origin, minus an axis-aligned exclusion rectangle
// in the XZ plane that keeps the population clear of a central object.
type Shell struct {
	// InnerRadius and OuterRadius bound the sampled radius. The radius is
	// drawn uniformly from [InnerRadius, OuterRadius).
	InnerRadius float64 `json:"innerRadius"`
	OuterRadius float64 `json:"outerRadius"`

	// ExclusionHalfX and ExclusionHalfZ are the half extents of the exclusion
	// rectangle centered on the origin. Candidates strictly inside it are
	// rejected; candidates on its edge are accepted.
	ExclusionHalfX float64 `json:"exclusionHalfX"`
	ExclusionHalfZ float64 `json:"exclusionHalfZ"`

	// VerticalJitter is the full height of the band the Y coordinate is drawn
	// from, centered on zero.
	VerticalJitter float64 `json:"verticalJitter"`

	// MaxAttempts caps the number of candidates drawn per placement.
	// Zero means DefaultMaxAttempts.
	MaxAttempts int `json:"maxAttempts,omitempty"`
}

// Validate reports ErrInvalidBounds for impossible or non-finite bounds.
func (s Shell) Validate() error {
	for _, f := range [...]struct {
		name string
		v    float64
	}{
		{"inner radius", s.InnerRadius},
		{"outer radius", s.OuterRadius},
		{"exclusion half x", s.ExclusionHalfX},
		{"exclusion half z", s.ExclusionHalfZ},
		{"vertical jitter", s.VerticalJitter},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidBounds, f.name, f.v)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s %g is negative", ErrInvalidBounds, f.name, f.v)
		}
	}
	if s.InnerRadius > s.OuterRadius {
		return fmt.Errorf("%w: inner radius %g exceeds outer radius %g",
			ErrInvalidBounds, s.InnerRadius, s.OuterRadius)
	}
	if s.MaxAttempts < 0 {
		return fmt.Errorf("%w: max attempts %d is negative", ErrInvalidBounds, s.MaxAttempts)
	}
	return nil
}

// Excludes reports whether (x, z) lies strictly inside the exclusion rectangle.
func (s Shell) Excludes(x, z float64) bool {
	return -s.ExclusionHalfX < x && x < s.ExclusionHalfX &&
		-s.ExclusionHalfZ < z && z < s.ExclusionHalfZ
}

func (s Shell) attempts() int {
	if s.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return s.MaxAttempts
}

// SamplePosition draws one position inside the shell and outside its
// exclusion zone using rejection sampling.
//
// The polar angle is drawn as acos(1-2u) so candidates are spread evenly over
// the sphere instead of bunching at the poles. X and Z come from the spherical
// coordinates; Y is independent jitter. The result is a pure function of the
// shell and the random source.
func SamplePosition(s Shell, src rand.Source) (Vec3, error) {
	if err := s.Validate(); err != nil {
		return Vec3{}, err
	}
	p, _, err := s.sample(newShellDraws(s, src))
	return p, err
}

// shellDraws holds the four uniform distributions a candidate is built from.
// All share one source so the draw sequence is reproducible.
type shellDraws struct {
	theta    distuv.Uniform
	unit     distuv.Uniform
	radius   distuv.Uniform
	vertical distuv.Uniform
}

func newShellDraws(s Shell, src rand.Source) shellDraws {
	return shellDraws{
		theta:    distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src},
		unit:     distuv.Uniform{Min: 0, Max: 1, Src: src},
		radius:   distuv.Uniform{Min: s.InnerRadius, Max: s.OuterRadius, Src: src},
		vertical: distuv.Uniform{Min: -s.VerticalJitter / 2, Max: s.VerticalJitter / 2, Src: src},
	}
}

// sample runs the rejection loop and also returns the radius the accepted
// candidate was built from.
func (s Shell) sample(d shellDraws) (Vec3, float64, error) {
	limit := s.attempts()
	for i := 0; i < limit; i++ {
		theta := d.theta.Rand()
		phi := math.Acos(1 - 2*d.unit.Rand())
		r := d.radius.Rand()
		y := d.vertical.Rand()

		sinPhi, cosPhi := math.Sincos(phi)
		x := r * sinPhi * math.Cos(theta)
		z := r * cosPhi
		if s.Excludes(x, z) {
			continue
		}
		return Vec3{X: x, Y: y, Z: z}, r, nil
	}
	return Vec3{}, 0, fmt.Errorf("%w: no candidate outside %gx%g exclusion after %d attempts (radius %g..%g)",
		ErrSamplingExhausted, 2*s.ExclusionHalfX, 2*s.ExclusionHalfZ, limit, s.InnerRadius, s.OuterRadius)
}

// Placement is one member of a procedurally placed population. Its position is
// fixed at scene-build time; per-frame rotation lives in a Track.
type Placement struct {
	ID       uuid.UUID
	Index    int
	Position Vec3
}

// placementNamespace scopes placement IDs so they never collide with UUIDv5
// values minted by other tools from the same names.
var placementNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/phanxgames/sway/placement"))

// PlacementID returns the stable ID of the index-th placement of the named
// population. IDs are name-based, so two builds of the same scene agree.
func PlacementID(population string, index int) uuid.UUID {
	return uuid.NewSHA1(placementNamespace, []byte(population+"/"+strconv.Itoa(index)))
}

// Populate samples count placements for the named population. It fails with
// ErrInvalidBounds before drawing anything if the shell is misconfigured, and
// with ErrSamplingExhausted if any single placement runs out of attempts.
func Populate(population string, count int, s Shell, src rand.Source) ([]Placement, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: population %q count %d is negative", ErrInvalidBounds, population, count)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("populate %q: %w", population, err)
	}
	d := newShellDraws(s, src)
	out := make([]Placement, count)
	for i := range out {
		p, _, err := s.sample(d)
		if err != nil {
			return nil, fmt.Errorf("populate %q: placement %d: %w", population, i, err)
		}
		out[i] = Placement{ID: PlacementID(population, i), Index: i, Position: p}
	}
	return out, nil
}
