package factor

import (
	"errors"
	"fmt"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

// Sentinel errors for factorization validation.
var (
	// ErrChain indicates consecutive factors that do not chain.
	ErrChain = errors.New("factor: factors do not chain around the boundary")
	// ErrCoverage indicates factors that do not cover the word exactly once.
	ErrCoverage = errors.New("factor: factors do not cover the boundary word")
)

// Kind names the boundary criterion that produced a factorization.
type Kind int

// The seven boundary criteria.
const (
	Translation Kind = iota
	HalfTurn
	QuarterTurn
	TypeOneReflection
	TypeTwoReflection
	TypeOneHalfTurnReflection
	TypeTwoHalfTurnReflection
)

// String returns the criterion name.
func (k Kind) String() string {
	switch k {
	case Translation:
		return "Translation"
	case HalfTurn:
		return "HalfTurn"
	case QuarterTurn:
		return "QuarterTurn"
	case TypeOneReflection:
		return "TypeOneReflection"
	case TypeTwoReflection:
		return "TypeTwoReflection"
	case TypeOneHalfTurnReflection:
		return "TypeOneHalfTurnReflection"
	case TypeTwoHalfTurnReflection:
		return "TypeTwoHalfTurnReflection"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Factor is a contiguous, possibly wrapping piece of a cyclic word.
// Start and Finish are 1-based inclusive positions; Content holds the
// letters walked from Start to Finish. A zero-length factor has empty
// Content and Finish cyclically one before Start.
type Factor struct {
	Start, Finish int
	Content       boundary.Word
}

// New cuts the factor of the given length beginning at start (1-based,
// cyclic) out of w. length 0 yields an empty factor anchored at start.
func New(w boundary.Word, start, length int) Factor {
	n := len(w)
	start = boundary.Pos(start, n)
	if length == 0 {
		return Factor{Start: start, Finish: boundary.Pos(start-1, n)}
	}
	finish := boundary.Pos(start+length-1, n)
	return Factor{Start: start, Finish: finish, Content: w.Extract(start, finish)}
}

// Len returns the number of letters in the factor.
func (f Factor) Len() int {
	return len(f.Content)
}

// Empty reports whether the factor holds no letters.
func (f Factor) Empty() bool {
	return len(f.Content) == 0
}

// String renders the factor as content[start..finish].
func (f Factor) String() string {
	return fmt.Sprintf("%s[%d..%d]", string(f.Content), f.Start, f.Finish)
}

// Factorization is an ordered partition of a cyclic boundary word,
// tagged with the criterion that produced it. The first factor may
// start anywhere on the cycle.
type Factorization struct {
	Kind    Kind
	Factors []Factor
}

// Validate checks the structural invariants of the factorization
// against its word: non-empty, contents covering the cycle exactly
// once, each factor's content matching w at its positions, and every
// factor starting right after its predecessor's finish.
// Complexity: O(|w|).
func (fz *Factorization) Validate(w boundary.Word) error {
	n := len(w)
	if len(fz.Factors) == 0 {
		return fmt.Errorf("%w: no factors", ErrCoverage)
	}
	total := 0
	for _, f := range fz.Factors {
		total += f.Len()
	}
	if total != n {
		return fmt.Errorf("%w: factor lengths sum to %d, want %d", ErrCoverage, total, n)
	}
	prev := fz.Factors[len(fz.Factors)-1]
	for i, f := range fz.Factors {
		if !f.Empty() && f.Content != w.Extract(f.Start, f.Finish) {
			return fmt.Errorf("%w: factor %d content mismatch at [%d..%d]", ErrCoverage, i, f.Start, f.Finish)
		}
		if f.Start != boundary.Pos(prev.Finish+1, n) {
			return fmt.Errorf("%w: factor %d starts at %d, want %d", ErrChain, i, f.Start, boundary.Pos(prev.Finish+1, n))
		}
		prev = f
	}
	return nil
}
