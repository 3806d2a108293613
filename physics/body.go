// Package physics is a small platformer integrator: constant gravity, swept
// collision against solid layers and ride-along platforms. World coordinates
// are y-up, so an object's Y is its bottom edge.
package physics

import (
	"github.com/automoto/sigmaplatformer/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Body is the state the engine integrates for one moving object.
type Body struct {
	Object *resolv.Object

	// Velocity in pixels per frame, y-up.
	ChangeX float64
	ChangeY float64

	// Ground is the solid the body landed on during the last Advance, or nil.
	Ground *resolv.Object

	OnLadder bool
}

// NewBody wraps obj. The object should already be in a resolv space when the
// engine is given hashed colliders.
func NewBody(obj *resolv.Object) *Body {
	return &Body{Object: obj}
}

// Rect returns the current bounding box.
func (b *Body) Rect() gamemath.Rect {
	return RectOf(b.Object)
}

// Center returns the midpoint of the body.
func (b *Body) Center() (float64, float64) {
	return b.Rect().Center()
}

// PlaceCenter moves the body so its midpoint is (x, y).
func (b *Body) PlaceCenter(x, y float64) {
	b.Object.X = x - b.Object.W/2
	b.Object.Y = y - b.Object.H/2
	b.Object.Update()
}

// Stop zeroes the velocity and forgets the ground contact.
func (b *Body) Stop() {
	b.ChangeX = 0
	b.ChangeY = 0
	b.Ground = nil
	b.OnLadder = false
}

// RectOf converts a resolv object's bounds to a gamemath.Rect.
func RectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
