package planar

import (
	"fmt"
	"math"
)

// Vec3 is a vector in three dimensions. In this package it mostly carries
// homogeneous plane coordinates.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return fmt.Sprintf("⟨%g, %g, %g⟩", v.X, v.Y, v.Z)
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Mul(f float64) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a vector of magnitude 1 in the direction of v.
func (v Vec3) Normalize() Vec3 {
	return v.Mul(1 / v.Hypot())
}

// Point projects a homogeneous vector back onto the plane by dividing by Z.
// It reports false for points at infinity.
func (v Vec3) Point() (Point, bool) {
	if v.Z == 0 {
		return Point{}, false
	}
	return Point{X: v.X / v.Z, Y: v.Y / v.Z}, true
}
