// Package geom holds the axis-aligned box and projection math shared by mesh decoding and the viewer.
package geom

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// EmptyBox returns a box that contains nothing; expanding it by a point yields that point.
func EmptyBox() rl.BoundingBox {
	inf := math32.Inf(1)
	return rl.NewBoundingBox(rl.NewVector3(inf, inf, inf), rl.NewVector3(-inf, -inf, -inf))
}

// IsEmpty reports whether b contains no point (any Min above its Max, or non-finite bounds).
func IsEmpty(b rl.BoundingBox) bool {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		return true
	}
	return !finite(b.Min.X) || !finite(b.Max.X) || !finite(b.Min.Y) || !finite(b.Max.Y) ||
		!finite(b.Min.Z) || !finite(b.Max.Z)
}

// ExpandPoint grows b to contain p.
func ExpandPoint(b rl.BoundingBox, p rl.Vector3) rl.BoundingBox {
	b.Min.X = math32.Min(b.Min.X, p.X)
	b.Min.Y = math32.Min(b.Min.Y, p.Y)
	b.Min.Z = math32.Min(b.Min.Z, p.Z)
	b.Max.X = math32.Max(b.Max.X, p.X)
	b.Max.Y = math32.Max(b.Max.Y, p.Y)
	b.Max.Z = math32.Max(b.Max.Z, p.Z)
	return b
}

// Union returns the smallest box containing a and b. Empty boxes are ignored.
func Union(a, b rl.BoundingBox) rl.BoundingBox {
	if IsEmpty(b) {
		return a
	}
	if IsEmpty(a) {
		return b
	}
	a = ExpandPoint(a, b.Min)
	return ExpandPoint(a, b.Max)
}

// Translate moves b by offset.
func Translate(b rl.BoundingBox, offset rl.Vector3) rl.BoundingBox {
	return rl.NewBoundingBox(rl.Vector3Add(b.Min, offset), rl.Vector3Add(b.Max, offset))
}

// Center returns the midpoint of b.
func Center(b rl.BoundingBox) rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
}

// Size returns the extent of b along each axis.
func Size(b rl.BoundingBox) rl.Vector3 {
	return rl.Vector3Subtract(b.Max, b.Min)
}

// MaxDim returns the largest extent of b.
func MaxDim(b rl.BoundingBox) float32 {
	s := Size(b)
	return math32.Max(s.X, math32.Max(s.Y, s.Z))
}

// Component returns v's coordinate on axis (0=X, 1=Y, 2=Z).
func Component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return v.X
}

// AxisVector returns the unit vector of axis (0=X, 1=Y, 2=Z).
func AxisVector(axis int) rl.Vector3 {
	switch axis {
	case 1:
		return rl.NewVector3(0, 1, 0)
	case 2:
		return rl.NewVector3(0, 0, 1)
	}
	return rl.NewVector3(1, 0, 0)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
