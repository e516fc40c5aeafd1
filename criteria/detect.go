package criteria

import (
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
	"github.com/bpetrov2020/info-f420-tilings/factor"
)

// detectors lists the criterion searches in the canonical order. The
// half-turn criterion, being the most permissive, runs last so that the
// richer symmetry families win ties (see doc.go).
var detectors = []struct {
	kind factor.Kind
	run  func(*search) *factor.Factorization
}{
	{factor.Translation, (*search).translation},
	{factor.QuarterTurn, (*search).quarterturn},
	{factor.TypeOneReflection, (*search).reflection1},
	{factor.TypeTwoReflection, (*search).reflection2},
	{factor.TypeOneHalfTurnReflection, (*search).htreflection1},
	{factor.TypeTwoHalfTurnReflection, (*search).htreflection2},
	{factor.HalfTurn, (*search).halfturn},
}

// Detect validates w and tries the seven criteria in the canonical
// order, returning the first matching factorization. A well-formed word
// matching no criterion yields (nil, nil): the polyomino admits no
// isohedral tiling, which is an answer, not an error.
// Complexity: polynomial in |w|; scratch state is O(|w|²) and released
// on return.
func Detect(w boundary.Word, opts ...Option) (*factor.Factorization, error) {
	s, err := prepare(w, opts)
	if err != nil {
		return nil, err
	}
	for _, d := range detectors {
		if fz := d.run(s); fz != nil {
			return fz, nil
		}
	}
	return nil, nil
}

// DetectAll runs every criterion and returns all matches in canonical
// order. Intended for diagnostics and tests; Detect is the production
// entry point.
func DetectAll(w boundary.Word, opts ...Option) ([]*factor.Factorization, error) {
	s, err := prepare(w, opts)
	if err != nil {
		return nil, err
	}
	var out []*factor.Factorization
	for _, d := range detectors {
		if fz := d.run(s); fz != nil {
			out = append(out, fz)
		}
	}
	return out, nil
}

func prepare(w boundary.Word, opts []Option) (*search, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxLen > 0 && len(w) > o.MaxLen {
		return nil, fmt.Errorf("%w: %d letters, cap %d", ErrBoundaryTooLong, len(w), o.MaxLen)
	}
	if err := boundary.Validate(w); err != nil {
		return nil, err
	}
	return newSearch(w), nil
}
