// Package poly implements real polynomials and the root finders used by the
// planar geometry package.
//
// Polynomials are stored as coefficient slices, lowest degree first. All
// operations return new values; a [Polynomial] never shares its backing array
// with the caller.
//
// # Root finding
//
// Real roots are found with a mix of methods:
//
//   - closed forms for degrees one to four ([Degree2Roots], [Degree3Roots],
//     [Degree4Roots]), with the cubic and quartic also available in factored
//     form ([Degree3Decompose], [Degree4Decompose])
//   - Bairstow's method for degree five and up ([Polynomial.QuadraticFactors])
//   - sign-change bracketing between critical points, refined by a
//     secant/bisection hybrid ([Polynomial.BracketRoots])
//
// Complex roots are never reported.
//
// # Tolerances
//
// Unless noted otherwise, "near zero" means an absolute magnitude below
// [Epsilon]. The test does not scale with the magnitude of the inputs, so
// coefficients far from unit scale should be normalized by the caller.
package poly
