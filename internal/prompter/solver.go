package prompter

import (
	"strings"

	"github.com/vovakirdan/tui-prompter/internal/core"
	"github.com/vovakirdan/tui-prompter/internal/measure"
)

// SolverConfig bounds the size search. The two ceilings in the product
// (300 in the inline editor, 500 on the presentation surface) are both
// expressed through MaxSize rather than hardcoded per call site.
type SolverConfig struct {
	MinSize   float64
	MaxSize   float64
	Tolerance float64
	Padding   float64 // inset per side of the viewport
	Fallback  float64 // returned for empty or whitespace-only text
	Weight    measure.Weight
}

// PresentationSolverConfig returns the bounds used on the full
// presentation surface.
func PresentationSolverConfig() SolverConfig {
	return SolverConfig{
		MinSize:   20,
		MaxSize:   500,
		Tolerance: 1.0,
		Padding:   20,
		Fallback:  50,
		Weight:    measure.WeightBold,
	}
}

// EditorSolverConfig returns the bounds used in the inline editor
// preview, which caps type at a smaller ceiling.
func EditorSolverConfig() SolverConfig {
	cfg := PresentationSolverConfig()
	cfg.MaxSize = 300
	return cfg
}

// Solver finds the largest font size at which text fits a viewport.
// It is pure: identical inputs always yield identical results, and it
// never mutates shared state.
type Solver struct {
	oracle measure.Oracle
	cfg    SolverConfig
}

// NewSolver creates a solver backed by the given measurement oracle.
func NewSolver(oracle measure.Oracle, cfg SolverConfig) *Solver {
	return &Solver{oracle: oracle, cfg: cfg}
}

// Solve binary-searches [MinSize, MaxSize] for the largest fitting size.
// Empty or whitespace-only text short-circuits to the fallback size
// without consulting the oracle. A degenerate viewport makes the fit
// predicate false at every probe; the tolerance-bounded loop still
// terminates and returns MinSize.
func (s *Solver) Solve(text string, viewport core.Size, scrolling bool) float64 {
	if strings.TrimSpace(text) == "" {
		return s.cfg.Fallback
	}

	avail := viewport.Inset(s.cfg.Padding)

	low := s.cfg.MinSize
	high := s.cfg.MaxSize
	best := s.cfg.MinSize

	for high-low > s.cfg.Tolerance {
		mid := (low + high) / 2
		if s.fits(text, mid, avail, scrolling) {
			best = mid
			low = mid
		} else {
			high = mid
		}
	}

	return best
}

// Fits reports whether text at the given size stays within the viewport
// under the solver's padding and layout policy. Exposed so callers can
// verify a chosen size without re-running the search.
func (s *Solver) Fits(text string, size float64, viewport core.Size, scrolling bool) bool {
	return s.fits(text, size, viewport.Inset(s.cfg.Padding), scrolling)
}

// fits is the fit predicate. In scrolling mode the text is one unbroken
// line and only its height matters: the belt lets it run arbitrarily
// wide. In static mode a single line fitting both axes wins; otherwise
// the text is wrapped to the available width and its wrapped height is
// checked.
func (s *Solver) fits(text string, size float64, avail core.Size, scrolling bool) bool {
	if !avail.Positive() {
		return false
	}

	unbounded := core.Size{W: measure.Unbounded, H: measure.Unbounded}

	if scrolling {
		m := s.oracle.Measure(text, size, s.cfg.Weight, unbounded, false)
		return m.H <= avail.H
	}

	line := s.oracle.Measure(text, size, s.cfg.Weight, unbounded, false)
	if line.W <= avail.W && line.H <= avail.H {
		return true
	}

	wrapped := s.oracle.Measure(text, size, s.cfg.Weight, core.Size{W: avail.W, H: measure.Unbounded}, true)
	return wrapped.H <= avail.H
}
