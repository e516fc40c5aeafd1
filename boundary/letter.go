package boundary

import "fmt"

// Letter is a single unit move of a lattice path: one of R, U, L, D.
type Letter byte

// The alphabet. The y-axis points downward, so U decreases y.
const (
	R Letter = 'r' // (+1, 0)
	U Letter = 'u' // (0, −1)
	L Letter = 'l' // (−1, 0)
	D Letter = 'd' // (0, +1)
)

// alphabet fixes the rotation order: advancing one index is a 90°
// counter-clockwise turn in the mathematical sense.
var alphabet = [4]Letter{R, U, L, D}

// index returns the position of l in the alphabet, or −1.
func index(l Letter) int {
	switch l {
	case R:
		return 0
	case U:
		return 1
	case L:
		return 2
	case D:
		return 3
	}
	return -1
}

// IsLetter reports whether b is one of the four alphabet bytes.
func IsLetter(b byte) bool {
	return index(Letter(b)) >= 0
}

// Vec returns the unit lattice vector of l.
func (l Letter) Vec() Point {
	switch l {
	case R:
		return Point{1, 0}
	case U:
		return Point{0, -1}
	case L:
		return Point{-1, 0}
	default:
		return Point{0, 1}
	}
}

// Rotate turns l by deg degrees counter-clockwise in the mathematical
// sense. deg must be a multiple of 90 (negative values allowed);
// anything else is a programmer error and panics.
// Rotate(Rotate(l, θ), −θ) == l for every letter and angle.
func Rotate(l Letter, deg int) Letter {
	if deg%90 != 0 {
		panic(fmt.Sprintf("boundary: Rotate by %d°, want a multiple of 90°", deg))
	}
	i := index(l)
	if i < 0 {
		panic(fmt.Sprintf("boundary: Rotate of non-letter %q", byte(l)))
	}
	steps := ((deg/90)%4 + 4) % 4
	return alphabet[(i+steps)%4]
}

// Complement rotates l by 180°: r↔l, u↔d.
func Complement(l Letter) Letter {
	return Rotate(l, 180)
}

// reflectionTurn gives, per axis angle, the rotation applied to
// odd-indexed letters (r, l) and to even-indexed letters (u, d).
var reflectionTurn = map[Angle][2]int{
	AngleFallingDiagonal: {-90, 90},
	AngleHorizontal:      {0, 180},
	AngleRisingDiagonal:  {90, -90},
	AngleVertical:        {180, 0},
}

// Reflect mirrors l across a line through the origin at the given axis
// angle. Reflect is an involution: Reflect(Reflect(l, a), a) == l.
func Reflect(l Letter, a Angle) Letter {
	turn, ok := reflectionTurn[a]
	if !ok {
		panic(fmt.Sprintf("boundary: Reflect across %d°, want one of −45°, 0°, 45°, 90°", int(a)))
	}
	if l == R || l == L {
		return Rotate(l, turn[0])
	}
	return Rotate(l, turn[1])
}
