package tiling

import (
	"errors"
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/isometry"
)

// Sentinel errors for tiling generation.
var (
	// ErrEmptySeed indicates a seed polygon with no vertices.
	ErrEmptySeed = errors.New("tiling: seed polygon must have at least one vertex")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tiling: invalid option supplied")
)

// Default window extents, in lattice units.
const (
	DefaultWindowX = 16.0
	DefaultWindowY = 16.0
)

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds generation parameters.
type Options struct {
	// WindowX, WindowY are the extents of the clip window centered on
	// the origin: a polygon is kept while a vertex lies inside
	// [−WindowX/2, WindowX/2] × [−WindowY/2, WindowY/2].
	WindowX, WindowY float64

	// MaxDepth, if > 0, bounds the BFS by depth instead of the window.
	// The seed is at depth 0.
	MaxDepth int

	// MaxTiles, if > 0, stops generation after that many placements.
	MaxTiles int

	// OnPlace is called for every placed polygon with its BFS depth.
	OnPlace func(p isometry.Polygon, depth int)

	// internal error recorded during option parsing.
	err error
}

// DefaultOptions returns the defaults: a 16×16 window, no depth bound,
// no tile cap, no hook.
func DefaultOptions() Options {
	return Options{
		WindowX: DefaultWindowX,
		WindowY: DefaultWindowY,
		OnPlace: func(isometry.Polygon, int) {},
	}
}

// WithWindow sets the clip window extents. Both must be positive.
func WithWindow(wx, wy float64) Option {
	return func(o *Options) {
		if wx <= 0 || wy <= 0 {
			o.err = fmt.Errorf("%w: window %gx%g must be positive", ErrOptionViolation, wx, wy)
			return
		}
		o.WindowX, o.WindowY = wx, wy
	}
}

// WithMaxDepth bounds the BFS by depth instead of the window.
//
//	k > 0: keep polygons up to depth k
//	k == 0: explicit window mode
//	k < 0: invalid option → ErrOptionViolation
func WithMaxDepth(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxDepth = k
	}
}

// WithMaxTiles caps the number of placed polygons.
func WithMaxTiles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTiles cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTiles = n
	}
}

// WithOnPlace registers a callback observing every placement.
func WithOnPlace(fn func(p isometry.Polygon, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPlace = fn
		}
	}
}
