package boundary

// Point is an integer lattice point. The y-axis points downward, so
// "up" on screen decreases Y.
type Point struct {
	X, Y int
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p − q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Neg returns −p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Points traces w from the origin and returns every lattice point it
// visits: |w|+1 points, the first always (0,0). For a closed boundary
// word the last point equals the first.
// Complexity: O(|w|).
func (w Word) Points() []Point {
	pts := make([]Point, len(w)+1)
	for i := 0; i < len(w); i++ {
		pts[i+1] = pts[i].Add(Letter(w[i]).Vec())
	}
	return pts
}

// PathVector returns the end-minus-start vector of w's path.
// A word is closed exactly when its path vector is the zero point.
func (w Word) PathVector() Point {
	var v Point
	for i := 0; i < len(w); i++ {
		v = v.Add(Letter(w[i]).Vec())
	}
	return v
}
