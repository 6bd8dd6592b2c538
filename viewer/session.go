package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/citytour/cities"
	"github.com/katalvlaran/citytour/config"
	"github.com/katalvlaran/citytour/geom"
)

var (
	// ErrClosed is returned by operations on a closed Session.
	ErrClosed = errors.New("viewer: session closed")

	// ErrTooFewCities is returned by Open for sets with fewer than two cities.
	ErrTooFewCities = errors.New("viewer: need at least two cities")

	// ErrBadViewer is returned by Open for a non-positive window, a radius
	// that is not positive and finite, or a rate outside [1, config.MaxFPS].
	ErrBadViewer = errors.New("viewer: invalid viewer settings")
)

// quitHint replaces the windowed "Press Q" text.
const quitHint = "TSP viewer - Ctrl+C to quit"

// Overlay is the text content of one frame.
type Overlay struct {
	Frame int
	// FirstLeg is the distance between the first two cities.
	FirstLeg float64
	// Total is the open path length in set order.
	Total float64
	Hint  string
}

// String renders the overlay as a single line.
func (o Overlay) String() string {
	return fmt.Sprintf("frame %d | Distance: %.3f | Total distance: %.3f | %s", o.Frame, o.FirstLeg, o.Total, o.Hint)
}

// Option customizes Open.
type Option func(*Session)

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("viewer: WithLogger(nil)")
	}

	return func(s *Session) {
		s.log = l
	}
}

// Session is one explicitly scoped viewer run.
type Session struct {
	cfg  config.Viewer
	set  cities.Set
	path geom.Path
	log  *slog.Logger

	mu     sync.Mutex
	frame  int
	closed bool
}

// Open validates cfg and set and acquires a session. Cities whose node
// disc falls outside the window are reported as a warning, not an error:
// geographic sets are not in pixel space.
func Open(cfg config.Viewer, set cities.Set, opts ...Option) (*Session, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || !config.PositiveFinite(cfg.NodeRadius) ||
		cfg.FPS <= 0 || cfg.FPS > config.MaxFPS {
		return nil, fmt.Errorf("window %dx%d radius %g fps %d: %w",
			cfg.Width, cfg.Height, cfg.NodeRadius, cfg.FPS, ErrBadViewer)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if set.Len() < 2 {
		return nil, fmt.Errorf("set %q has %d: %w", set.Name, set.Len(), ErrTooFewCities)
	}

	s := &Session{
		cfg:  cfg,
		set:  set,
		path: set.Path(),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if outside := s.outsideWindow(); outside > 0 {
		s.log.Warn("cities outside window", "set", set.Name, "count", outside,
			"width", cfg.Width, "height", cfg.Height)
	}
	s.log.Info("session opened", "set", set.Name, "cities", set.Len(), "fps", cfg.FPS)

	return s, nil
}

// outsideWindow counts cities whose node disc does not fit the window.
func (s *Session) outsideWindow() int {
	r := s.cfg.NodeRadius
	win := orb.Bound{
		Min: orb.Point{r, r},
		Max: orb.Point{float64(s.cfg.Width) - r, float64(s.cfg.Height) - r},
	}

	n := 0
	for _, p := range s.path {
		if !win.Contains(p.Orb()) {
			n++
		}
	}

	return n
}

// Set returns the city set the session shows.
func (s *Session) Set() cities.Set { return s.set }

// Frame computes the next frame's overlay.
func (s *Session) Frame() (Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Overlay{}, ErrClosed
	}
	s.frame++

	return Overlay{
		Frame:    s.frame,
		FirstLeg: geom.Distance(s.path[0], s.path[1]),
		Total:    geom.PathLength(s.path),
		Hint:     quitHint,
	}, nil
}

// Run writes one overlay line per tick to w and returns the number of
// frames written. It stops at the configured frame limit or when ctx is
// done; cancellation is not an error.
func (s *Session) Run(ctx context.Context, w io.Writer) (int, error) {
	ticker := time.NewTicker(s.cfg.FrameInterval())
	defer ticker.Stop()

	written := 0
	for {
		if ctx.Err() != nil {
			s.log.Info("viewer stopped", "frames", written)
			return written, nil
		}
		ov, err := s.Frame()
		if err != nil {
			return written, err
		}
		if _, err = fmt.Fprintln(w, ov); err != nil {
			return written, fmt.Errorf("viewer: write frame %d: %w", ov.Frame, err)
		}
		written++
		s.log.Debug("frame", "n", ov.Frame, "distance", ov.FirstLeg, "total", ov.Total)

		if s.cfg.Frames > 0 && written >= s.cfg.Frames {
			return written, nil
		}

		select {
		case <-ctx.Done():
			s.log.Info("viewer stopped", "frames", written)
			return written, nil
		case <-ticker.C:
		}
	}
}

// Close releases the session. Calling it more than once is safe.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.log.Info("session closed", "set", s.set.Name, "frames", s.frame)

	return nil
}
