// Package grid builds validated polyominoes out of painted unit cells
// and derives their clockwise boundary words.
package grid

import (
	"sort"

	"github.com/bpetrov2020/info-f420-tilings/boundary"
)

// Polyomino is a non-empty, rook-connected, hole-free set of unit
// cells. It is immutable once built; the boundary word is traced at
// construction time.
type Polyomino struct {
	cells map[Cell]struct{}
	word  boundary.Word
}

// New validates cells and builds the polyomino. Duplicate cells are
// collapsed. Returns ErrNoCells, ErrDisconnected or ErrHoles when the
// set is not a polyomino, ErrTrace if the boundary walk cannot close.
// Complexity: O(#cells).
func New(cells []Cell) (*Polyomino, error) {
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	set := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	if !connected(set) {
		return nil, ErrDisconnected
	}
	if hasHoles(set) {
		return nil, ErrHoles
	}
	w, err := trace(set)
	if err != nil {
		return nil, err
	}
	return &Polyomino{cells: set, word: w}, nil
}

// FromGrid builds a polyomino from a rectangular mask, treating every
// nonzero value at values[y][x] as the cell (x, y).
// Returns ErrEmptyGrid or ErrNonRectangular for malformed masks; the
// cell-set rules of New apply afterwards.
func FromGrid(values [][]int) (*Polyomino, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(values[0])
	var cells []Cell
	for y, row := range values {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v != 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	if len(cells) == 0 {
		return nil, ErrNoCells
	}
	return New(cells)
}

// Size returns the number of cells.
func (p *Polyomino) Size() int {
	return len(p.cells)
}

// Has reports whether the cell belongs to the polyomino.
func (p *Polyomino) Has(c Cell) bool {
	_, ok := p.cells[c]
	return ok
}

// Cells returns the cells sorted by (Y, X).
func (p *Polyomino) Cells() []Cell {
	out := make([]Cell, 0, len(p.cells))
	for c := range p.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// BoundaryWord returns the clockwise boundary trace of the polyomino.
// The word starts at the top-left corner of the topmost, leftmost cell
// and always satisfies boundary.Parse.
func (p *Polyomino) BoundaryWord() boundary.Word {
	return p.word
}

// connected reports whether the cells form one rook-connected piece.
func connected(set map[Cell]struct{}) bool {
	var start Cell
	for c := range set {
		start = c
		break
	}
	visited := map[Cell]struct{}{start: {}}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			n := Cell{c.X + d.X, c.Y + d.Y}
			if _, in := set[n]; !in {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) == len(set)
}

// hasHoles flood-fills the complement inside a one-cell margin around
// the bounding box; any empty cell the flood cannot reach is enclosed.
func hasHoles(set map[Cell]struct{}) bool {
	minX, minY, maxX, maxY := bounds(set)
	minX, minY, maxX, maxY = minX-1, minY-1, maxX+1, maxY+1

	total := (maxX - minX + 1) * (maxY - minY + 1)
	empty := total - len(set)

	start := Cell{minX, minY}
	visited := map[Cell]struct{}{start: {}}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			n := Cell{c.X + d.X, c.Y + d.Y}
			if n.X < minX || n.X > maxX || n.Y < minY || n.Y > maxY {
				continue
			}
			if _, filled := set[n]; filled {
				continue
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) != empty
}

func bounds(set map[Cell]struct{}) (minX, minY, maxX, maxY int) {
	first := true
	for c := range set {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return
}

// trace walks the boundary clockwise, keeping the region on the right.
// At each vertex it prefers turning right, then straight, then left,
// then back; a directed edge is on the boundary when the cell to its
// right is filled and the cell to its left is not.
func trace(set map[Cell]struct{}) (boundary.Word, error) {
	start := topLeft(set)
	letters := make([]byte, 0, 4*len(set))

	x, y := start.X, start.Y
	heading := boundary.R
	for {
		turned := false
		for _, deg := range []int{-90, 0, 90, 180} {
			dir := boundary.Rotate(heading, deg)
			right, left := sides(x, y, dir)
			_, rIn := set[right]
			_, lIn := set[left]
			if rIn && !lIn {
				heading = dir
				turned = true
				break
			}
		}
		if !turned || len(letters) > 4*len(set)+4 {
			return "", ErrTrace
		}
		letters = append(letters, byte(heading))
		v := heading.Vec()
		x, y = x+v.X, y+v.Y
		if x == start.X && y == start.Y {
			return boundary.Word(letters), nil
		}
	}
}

// topLeft picks the topmost, leftmost cell; its top-left corner anchors
// the trace.
func topLeft(set map[Cell]struct{}) Cell {
	var best Cell
	first := true
	for c := range set {
		if first || c.Y < best.Y || (c.Y == best.Y && c.X < best.X) {
			best = c
			first = false
		}
	}
	return best
}

// sides returns the cells to the right and left of the directed edge
// leaving vertex (x, y) towards dir.
func sides(x, y int, dir boundary.Letter) (right, left Cell) {
	switch dir {
	case boundary.R:
		return Cell{x, y}, Cell{x, y - 1}
	case boundary.D:
		return Cell{x - 1, y}, Cell{x, y}
	case boundary.L:
		return Cell{x - 1, y - 1}, Cell{x - 1, y}
	default: // U
		return Cell{x, y - 1}, Cell{x - 1, y - 1}
	}
}
