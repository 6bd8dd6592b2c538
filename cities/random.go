package cities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/citytour/geom"
)

// defaultSeed is used when callers pass seed 0, keeping defaults reproducible.
const defaultSeed int64 = 1

// maxCoord is the largest magnitude at which every integer is exact in float64.
const maxCoord = 1 << 53

// defaultBound is the drawable area of the default 800×400 viewport,
// leaving a bottom strip for overlay text.
var defaultBound = orb.Bound{Min: orb.Point{30, 30}, Max: orb.Point{770, 320}}

// Option customizes Random.
type Option func(*randomConfig)

type randomConfig struct {
	seed  int64
	rng   *rand.Rand
	bound orb.Bound
	name  string
}

// WithSeed makes Random deterministic for the given seed. Seed 0 selects
// a fixed default seed, never a time-based one.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.seed = seed
	}
}

// WithRand provides an explicit RNG. It takes precedence over WithSeed.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cities: WithRand(nil)")
	}

	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithBound sets the box cities are drawn from. Panics on an empty or
// inverted bound.
func WithBound(b orb.Bound) Option {
	if b.IsEmpty() || b.Min == b.Max {
		panic("cities: WithBound(empty)")
	}

	return func(c *randomConfig) {
		c.bound = b
	}
}

// WithName overrides the generated set name.
func WithName(name string) Option {
	return func(c *randomConfig) {
		c.name = name
	}
}

// Random generates n cities with integer coordinates uniformly inside the
// configured bound (default: the 800×400 viewport's drawable area).
// Locations are distinct so every city is visible.
//
// Complexity: O(n) expected time, O(n) space.
func Random(n int, opts ...Option) (Set, error) {
	if n <= 0 {
		return Set{}, fmt.Errorf("random set of %d cities: %w", n, ErrEmptySet)
	}
	cfg := randomConfig{bound: defaultBound}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := cfg.bound
	if math.Abs(b.Left()) > maxCoord || math.Abs(b.Right()) > maxCoord ||
		math.Abs(b.Bottom()) > maxCoord || math.Abs(b.Top()) > maxCoord {
		return Set{}, fmt.Errorf("bound %v: %w", b, ErrBoundTooLarge)
	}

	var (
		minX = int(math.Ceil(cfg.bound.Left()))
		minY = int(math.Ceil(cfg.bound.Bottom()))
		w    = int(math.Floor(cfg.bound.Right())) - minX + 1
		h    = int(math.Floor(cfg.bound.Top())) - minY + 1
	)
	// w*h only needs computing when both sides are short of n.
	if w <= 0 || h <= 0 || (w < n && h < n && w*h < n) {
		return Set{}, fmt.Errorf("bound %v holds fewer than %d integer points: %w", cfg.bound, n, ErrBoundTooSmall)
	}

	r := cfg.rng
	if r == nil {
		seed := cfg.seed
		if seed == 0 {
			seed = defaultSeed
		}
		r = rand.New(rand.NewSource(seed))
		if cfg.name == "" {
			cfg.name = fmt.Sprintf("random-%d-%d", n, seed)
		}
	}
	if cfg.name == "" {
		// caller-supplied RNG: the seed is unknown
		cfg.name = fmt.Sprintf("random-%d", n)
	}

	s := Set{Name: cfg.name, Cities: make([]City, 0, n)}
	seen := make(map[geom.Point]struct{}, n)
	for len(s.Cities) < n {
		p := geom.Pt(minX+r.Intn(w), minY+r.Intn(h))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		s.Cities = append(s.Cities, City{Name: cityName(len(s.Cities)), Location: p})
	}

	return s, nil
}
