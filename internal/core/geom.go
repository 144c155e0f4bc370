// Package core provides fundamental types and utilities for the arena.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec3 is a world-space vector. X and Z span the board, Y is height.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience constructor for Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// IsZero reports whether every component is zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// AABB represents an axis-aligned bounding box used for collision detection.
type AABB struct {
	Min Vec3
	Max Vec3
}

// BoxAround builds the box centered at c with the given half extents.
func BoxAround(c, half Vec3) AABB {
	return AABB{
		Min: Vec3{X: c.X - half.X, Y: c.Y - half.Y, Z: c.Z - half.Z},
		Max: Vec3{X: c.X + half.X, Y: c.Y + half.Y, Z: c.Z + half.Z},
	}
}

// Intersects returns true if both boxes overlap on all three axes.
// Bounds are inclusive: boxes that touch on a face count as overlapping.
func (b AABB) Intersects(o AABB) bool {
	if b.Min.X > o.Max.X || b.Max.X < o.Min.X {
		return false
	}
	if b.Min.Y > o.Max.Y || b.Max.Y < o.Min.Y {
		return false
	}
	if b.Min.Z > o.Max.Z || b.Max.Z < o.Min.Z {
		return false
	}
	return true
}

// Valid reports whether Min <= Max component-wise.
func (b AABB) Valid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
