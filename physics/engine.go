package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	defaultMaxStep   = 8
	defaultJumpCheck = 5
)

// Engine advances one body against static walls and optional moving
// platforms and ladders.
type Engine struct {
	body    *Body
	gravity float64

	walls     Collider
	platforms Collider
	ladders   Collider

	maxStep   float64
	jumpCheck float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithPlatforms adds ride-along solids.
func WithPlatforms(c Collider) Option {
	return func(e *Engine) { e.platforms = c }
}

// WithLadders lets the body climb while it overlaps c.
func WithLadders(c Collider) Option {
	return func(e *Engine) { e.ladders = c }
}

// WithMaxStep sets the largest distance moved before re-checking collisions.
func WithMaxStep(step float64) Option {
	return func(e *Engine) {
		if step > 0 {
			e.maxStep = step
		}
	}
}

// WithJumpCheck sets how far below the body a solid still counts as ground.
func WithJumpCheck(distance float64) Option {
	return func(e *Engine) {
		if distance > 0 {
			e.jumpCheck = distance
		}
	}
}

// NewEngine builds an engine for body. walls is required.
func NewEngine(body *Body, gravity float64, walls Collider, opts ...Option) *Engine {
	if body == nil || walls == nil {
		panic("physics: engine needs a body and a walls collider")
	}
	e := &Engine{
		body:      body,
		gravity:   gravity,
		walls:     walls,
		maxStep:   defaultMaxStep,
		jumpCheck: defaultJumpCheck,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Body returns the integrated body.
func (e *Engine) Body() *Body { return e.body }

// HasPlatforms reports whether ride-along platforms are configured.
func (e *Engine) HasPlatforms() bool { return e.platforms != nil }

// Advance integrates one frame: gravity, then the vertical sweep, then the
// horizontal sweep.
func (e *Engine) Advance() {
	b := e.body

	b.OnLadder = e.IsOnLadder()
	if !b.OnLadder {
		b.ChangeY -= e.gravity
	}

	b.Ground = nil
	if hit, ok := e.sweepY(b.ChangeY, e.solids); ok {
		if b.ChangeY < 0 {
			b.Ground = hit
		}
		b.ChangeY = 0
	}
	// ChangeX is kept on a hit so the body keeps pushing while the key is held.
	e.sweepX(b.ChangeX, e.solids)
	b.Object.Update()
}

// Carry moves the body by (dx, dy) with whatever it stands on. Walls still
// block it; velocity and ground are left alone.
func (e *Engine) Carry(dx, dy float64) {
	e.sweepX(dx, e.walls.Overlapping)
	e.sweepY(dy, e.walls.Overlapping)
	e.body.Object.Update()
}

// CanJump reports whether a solid lies within the jump check distance below the body.
func (e *Engine) CanJump() bool {
	return len(e.solids(e.body.Object, 0, -e.jumpCheck)) > 0
}

// IsOnLadder reports whether the body overlaps a ladder.
func (e *Engine) IsOnLadder() bool {
	if e.ladders == nil {
		return false
	}
	return len(e.ladders.Overlapping(e.body.Object, 0, 0)) > 0
}

func (e *Engine) solids(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	hits := e.walls.Overlapping(obj, dx, dy)
	if e.platforms != nil {
		hits = append(hits, e.platforms.Overlapping(obj, dx, dy)...)
	}
	return hits
}

// overlapFunc lists the solids obj would overlap after moving by (dx, dy).
type overlapFunc func(obj *resolv.Object, dx, dy float64) []*resolv.Object

// substeps splits d into moves no longer than maxStep.
func (e *Engine) substeps(d float64) int {
	n := int(math.Ceil(math.Abs(d) / e.maxStep))
	if n < 1 {
		n = 1
	}
	return n
}

// offset is the distance covered after step i of n, exact on the last step.
func offset(d float64, i, n int) float64 {
	if i == n {
		return d
	}
	return d * float64(i) / float64(n)
}

// edgeEpsilon absorbs rounding when comparing an edge with the sweep start.
const edgeEpsilon = 1e-9

// sweepY moves the body vertically by dy and stops it flush against the
// first solid in the way. Only solids entirely on the far side of the body's
// starting edge block it, so a body that already overlaps a solid is never
// snapped on top of it. It returns the solid that stopped the body.
func (e *Engine) sweepY(dy float64, overlapping overlapFunc) (*resolv.Object, bool) {
	if dy == 0 {
		return nil, false
	}
	obj := e.body.Object
	startY := obj.Y
	startTop := obj.Y + obj.H
	n := e.substeps(dy)
	for i := 1; i <= n; i++ {
		target := startY + offset(dy, i, n)
		var stop *resolv.Object
		for _, h := range overlapping(obj, 0, target-obj.Y) {
			if dy < 0 {
				// Landing: rest on the highest solid below the feet.
				if h.Y+h.H <= startY+edgeEpsilon && (stop == nil || h.Y+h.H > stop.Y+stop.H) {
					stop = h
				}
			} else if h.Y >= startTop-edgeEpsilon && (stop == nil || h.Y < stop.Y) {
				stop = h
			}
		}
		if stop == nil {
			obj.Y = target
			continue
		}
		if dy < 0 {
			obj.Y = stop.Y + stop.H
		} else {
			obj.Y = stop.Y - obj.H
		}
		return stop, true
	}
	return nil, false
}

// sweepX is sweepY for the horizontal axis.
func (e *Engine) sweepX(dx float64, overlapping overlapFunc) (*resolv.Object, bool) {
	if dx == 0 {
		return nil, false
	}
	obj := e.body.Object
	startX := obj.X
	startRight := obj.X + obj.W
	n := e.substeps(dx)
	for i := 1; i <= n; i++ {
		target := startX + offset(dx, i, n)
		var stop *resolv.Object
		for _, h := range overlapping(obj, target-obj.X, 0) {
			if dx > 0 {
				if h.X >= startRight-edgeEpsilon && (stop == nil || h.X < stop.X) {
					stop = h
				}
			} else if h.X+h.W <= startX+edgeEpsilon && (stop == nil || h.X+h.W > stop.X+stop.W) {
				stop = h
			}
		}
		if stop == nil {
			obj.X = target
			continue
		}
		if dx > 0 {
			obj.X = stop.X - obj.W
		} else {
			obj.X = stop.X + stop.W
		}
		return stop, true
	}
	return nil, false
}
