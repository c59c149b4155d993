// Package planar provides the planar geometry that vector rendering is built
// on: Bézier curves and paths, their bounds, their intersections with each
// other and with ellipses, and fractional winding numbers for anti-aliased
// fill rules. Polynomial arithmetic and real root finding live in the
// subpackage [honnef.co/go/planar/poly].
//
// # Curves
//
// [Line], [QuadBez] and [CubicBez] are the fixed-order curves, all
// parametrized over t ∈ [0, 1]. They share a common set of methods: Eval,
// Split, Subsegment, Extrema, BoundingBox, TransformedBoundingBox, Nearest,
// SignedArea and Winding. The functions [BezierEval], [BezierSplit],
// [BezierDerivative], [BezierPolynomials] and [ClosestBezier] implement the
// same operations for control polygons of any order.
//
// [Segment] is a tagged union of the three curves and [Path] a sequence of
// drawing instructions that produces segments. [Arc] approximates elliptical
// arcs with cubic Béziers, see [UnitArc].
//
// # Intersections
//
// Intersections between curves are found by eliminating one curve's
// parameter with a Bézout resultant, leaving a polynomial in the other
// curve's parameter whose real roots are the intersections. The low-level
// functions such as [QuadBeziersIntersect] return these roots unfiltered;
// methods such as [CubicBez.IntersectCubic] return [Intersection] values
// restricted to both curves. [Ellipse] intersects curves by mapping them into
// the space in which it is the unit circle.
//
// # Winding numbers
//
// The winding contribution of a curve around a point is the angle it sweeps
// divided by 2π, and is computed by exact integration, not ray casting. The
// contributions of the segments of a closed outline sum to its integer
// winding number. For open curves the fractional value is meaningful on its
// own.
//
// # Coordinate system
//
// Angles are measured counter-clockwise from the positive x axis in a y-up
// coordinate system, which is clockwise in a y-down one. Positive signed
// areas and winding numbers correspond to counter-clockwise outlines.
//
// # Tolerances
//
// Near-zero tests use the absolute tolerance [Epsilon] throughout. It does
// not scale with the magnitude of coordinates, so very large or very small
// geometry should be normalized first.
package planar
