package tiling

import (
	"strconv"
	"strings"

	"github.com/jbeda/geom"

	"github.com/bpetrov2020/info-f420-tilings/isometry"
)

// queueItem pairs a polygon with its BFS depth.
type queueItem struct {
	poly  isometry.Polygon
	depth int
}

// Generate runs the breadth-first expansion of seed under ts and
// returns the placed polygons in discovery order. A polygon already
// placed is skipped; a transform image is enqueued only while it stays
// in bounds. The result is finite and deterministic.
func Generate(seed isometry.Polygon, ts []isometry.Transform, opts ...Option) ([]isometry.Polygon, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	window := geom.Rect{
		Min: geom.Coord{X: -o.WindowX / 2, Y: -o.WindowY / 2},
		Max: geom.Coord{X: o.WindowX / 2, Y: o.WindowY / 2},
	}
	inBounds := func(p isometry.Polygon, depth int) bool {
		if o.MaxDepth > 0 {
			return depth <= o.MaxDepth
		}
		for _, v := range p {
			if window.ContainsCoord(geom.Coord{X: float64(v.X), Y: float64(v.Y)}) {
				return true
			}
		}
		return false
	}

	queue := []queueItem{{poly: seed.Clone()}}
	placed := make(map[string]struct{})
	var out []isometry.Polygon
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		k := polyKey(item.poly)
		if _, seen := placed[k]; seen {
			continue
		}
		placed[k] = struct{}{}
		out = append(out, item.poly)
		o.OnPlace(item.poly, item.depth)
		if o.MaxTiles > 0 && len(out) >= o.MaxTiles {
			break
		}
		for _, t := range ts {
			next := t.Apply(item.poly)
			if !inBounds(next, item.depth+1) {
				continue
			}
			if _, seen := placed[polyKey(next)]; seen {
				continue
			}
			queue = append(queue, queueItem{poly: next, depth: item.depth + 1})
		}
	}
	return out, nil
}

// polyKey encodes a polygon's vertex sequence for the dedup map.
func polyKey(p isometry.Polygon) string {
	var b strings.Builder
	b.Grow(len(p) * 8)
	for _, v := range p {
		b.WriteString(strconv.Itoa(v.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(v.Y))
		b.WriteByte(';')
	}
	return b.String()
}
