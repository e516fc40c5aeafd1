// Package boundary defines core types and sentinel errors for
// boundary words of polyominoes.
package boundary

import (
	"errors"
)

// Sentinel errors for boundary-word validation.
var (
	// ErrEmptyWord indicates an empty input string.
	ErrEmptyWord = errors.New("boundary: word must not be empty")
	// ErrIllegalLetter indicates a byte outside the alphabet {r,u,l,d}.
	ErrIllegalLetter = errors.New("boundary: letter outside alphabet {r,u,l,d}")
	// ErrOddLength indicates a word of odd length; closed lattice paths have even length.
	ErrOddLength = errors.New("boundary: boundary word length must be even")
	// ErrTooShort indicates a word shorter than the unit square's boundary.
	ErrTooShort = errors.New("boundary: boundary word must have at least 4 letters")
	// ErrOpenPath indicates the traced path does not close on its origin.
	ErrOpenPath = errors.New("boundary: path does not close")
	// ErrSelfIntersection indicates the traced path revisits a lattice point.
	ErrSelfIntersection = errors.New("boundary: path intersects itself")
)

// Angle is a reflection-axis angle, measured in degrees from the
// positive x-axis. Only the four values below preserve the lattice
// alphabet under reflection.
type Angle int

// The four lattice-compatible reflection axes.
const (
	AngleFallingDiagonal Angle = -45 // the line y = −x
	AngleHorizontal      Angle = 0   // the x-axis
	AngleRisingDiagonal  Angle = 45  // the line y = x
	AngleVertical        Angle = 90  // the y-axis
)

// ReflectionAngles lists the reflection axes in the fixed search order
// used by ReflectionAngle and the criterion detectors.
var ReflectionAngles = [4]Angle{AngleFallingDiagonal, AngleHorizontal, AngleRisingDiagonal, AngleVertical}

// Pos maps an arbitrary 1-based cyclic index onto [1, n].
// All factor and detector arithmetic funnels through this helper.
// Complexity: O(1).
func Pos(i, n int) int {
	return ((i-1)%n+n)%n + 1
}
