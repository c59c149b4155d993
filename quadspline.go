package planar

import "iter"

// QuadBSpline is a quadratic B-spline, as used by TrueType glyph outlines. It
// is encoded as [P₁, C₁, C₂, ..., Cₖ, Pₙ]: only the first and last on-curve
// points are explicit, and the implied on-curve point between two
// consecutive controls is their midpoint.
type QuadBSpline []Point

// Quads returns an iterator over the implied quadratic Béziers, which join
// with G1 continuity.
func (q QuadBSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		for i := 0; i+2 < len(q); i++ {
			p0, p1, p2 := q[i], q[i+1], q[i+2]
			if i != 0 {
				p0 = p0.Midpoint(p1)
			}
			if i+2 < len(q)-1 {
				p2 = p1.Midpoint(p2)
			}
			if !yield(QuadBez{p0, p1, p2}) {
				return
			}
		}
	}
}

// Path returns the spline as an open path of quadratic Béziers. Splines with
// fewer than three points produce an empty path.
func (q QuadBSpline) Path() Path {
	var p Path
	for quad := range q.Quads() {
		if len(p) == 0 {
			p.MoveTo(quad.P0)
		}
		p.QuadTo(quad.P1, quad.P2)
	}
	return p
}
