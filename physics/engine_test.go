package physics

import (
	"testing"

	"github.com/solarlune/resolv"
)

const (
	tagWall   = "wall"
	tagLadder = "ladder"
)

type rig struct {
	space  *resolv.Space
	ground *resolv.Object
	body   *Body
}

func newRig(t *testing.T, x, y float64) *rig {
	t.Helper()
	space := resolv.NewSpace(640, 480, 16, 16)
	ground := resolv.NewObject(0, 0, 640, 32, tagWall)
	player := resolv.NewObject(x, y, 20, 40, "player")
	space.Add(ground, player)
	return &rig{space: space, ground: ground, body: NewBody(player)}
}

func (r *rig) settle(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 200; i++ {
		e.Advance()
		if r.body.Ground != nil {
			return
		}
	}
	t.Fatal("body never landed")
}

func TestAdvanceLandsOnGround(t *testing.T) {
	r := newRig(t, 100, 100)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall))

	if e.CanJump() {
		t.Fatal("CanJump while airborne")
	}
	r.settle(t, e)

	if r.body.Object.Y != 32 {
		t.Errorf("Y = %v, want 32 (top of ground)", r.body.Object.Y)
	}
	if r.body.ChangeY != 0 {
		t.Errorf("ChangeY = %v after landing, want 0", r.body.ChangeY)
	}
	if r.body.Ground != r.ground {
		t.Error("Ground should be the floor object")
	}
	if !e.CanJump() {
		t.Error("CanJump should be true while resting on the ground")
	}

	// Resting stays put frame after frame.
	for i := 0; i < 10; i++ {
		e.Advance()
	}
	if r.body.Object.Y != 32 || !e.CanJump() {
		t.Errorf("resting body drifted to Y=%v", r.body.Object.Y)
	}
}

func TestJumpLeavesGround(t *testing.T) {
	r := newRig(t, 100, 32)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall))
	if !e.CanJump() {
		t.Fatal("body placed on the ground should be able to jump")
	}

	r.body.ChangeY = 20
	e.Advance()

	if r.body.Object.Y != 32+19 {
		t.Errorf("Y = %v, want 51", r.body.Object.Y)
	}
	if r.body.ChangeY != 19 {
		t.Errorf("ChangeY = %v, want 19", r.body.ChangeY)
	}
	if e.CanJump() {
		t.Error("CanJump should be false right after a jump")
	}
}

func TestFastFallDoesNotTunnel(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	thin := resolv.NewObject(0, 0, 640, 2, tagWall)
	player := resolv.NewObject(100, 40, 20, 40, "player")
	space.Add(thin, player)
	body := NewBody(player)
	body.ChangeY = -50

	e := NewEngine(body, 1, NewHashedLayer(tagWall), WithMaxStep(8))
	e.Advance()

	if player.Y != 2 {
		t.Errorf("Y = %v, want 2 (top of the thin floor)", player.Y)
	}
	if body.Ground != thin {
		t.Error("expected to land on the thin floor")
	}
}

func TestWallStopsHorizontalMove(t *testing.T) {
	r := newRig(t, 100, 32)
	wall := resolv.NewObject(200, 32, 32, 100, tagWall)
	r.space.Add(wall)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall))

	r.body.ChangeX = 5
	for i := 0; i < 30; i++ {
		e.Advance()
	}

	if r.body.Object.X != 180 {
		t.Errorf("X = %v, want 180 (flush with the wall)", r.body.Object.X)
	}
	if r.body.ChangeX != 5 {
		t.Errorf("ChangeX = %v, want 5 kept while blocked", r.body.ChangeX)
	}
	if r.body.Object.Y != 32 {
		t.Errorf("Y = %v, wall contact should not lift the body", r.body.Object.Y)
	}
}

func TestTouchingEdgesDoNotBlock(t *testing.T) {
	r := newRig(t, 180, 32)
	wall := resolv.NewObject(200, 32, 32, 100, tagWall)
	r.space.Add(wall)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall))

	r.body.ChangeX = -5
	e.Advance()
	if r.body.Object.X != 175 {
		t.Errorf("X = %v, want 175", r.body.Object.X)
	}
}

func TestLandsOnPlatform(t *testing.T) {
	r := newRig(t, 320, 100)
	platform := resolv.NewObject(300, 50, 100, 10, "platform")
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall), WithPlatforms(ObjectList{platform}))

	if !e.HasPlatforms() {
		t.Fatal("HasPlatforms = false")
	}
	r.settle(t, e)

	if r.body.Ground != platform {
		t.Fatal("expected to stand on the platform")
	}
	if r.body.Object.Y != 60 {
		t.Errorf("Y = %v, want 60", r.body.Object.Y)
	}
}

func TestLadderSuspendsGravity(t *testing.T) {
	r := newRig(t, 100, 100)
	ladder := resolv.NewObject(90, 32, 40, 200, tagLadder)
	r.space.Add(ladder)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall), WithLadders(NewHashedLayer(tagLadder)))

	e.Advance()
	if !r.body.OnLadder || !e.IsOnLadder() {
		t.Fatal("expected the body to be on the ladder")
	}
	if r.body.Object.Y != 100 {
		t.Errorf("Y = %v, body should hang on the ladder", r.body.Object.Y)
	}

	r.body.ChangeY = 5
	e.Advance()
	if r.body.Object.Y != 105 {
		t.Errorf("Y = %v, want 105 after climbing", r.body.Object.Y)
	}
}

func TestObjectListOverlapping(t *testing.T) {
	a := resolv.NewObject(0, 0, 10, 10)
	b := resolv.NewObject(20, 0, 10, 10)
	mover := resolv.NewObject(11, 0, 5, 5)
	list := ObjectList{a, b}

	if hits := list.Overlapping(mover, 0, 0); len(hits) != 0 {
		t.Errorf("got %d hits at rest, want 0", len(hits))
	}
	if hits := list.Overlapping(mover, 5, 0); len(hits) != 1 || hits[0] != b {
		t.Errorf("moving right should hit b, got %v", hits)
	}
	if hits := (Colliders{list, nil}).Overlapping(mover, -2, 0); len(hits) != 1 || hits[0] != a {
		t.Errorf("moving left should hit a, got %v", hits)
	}
}

func TestCarryStopsAtWalls(t *testing.T) {
	r := newRig(t, 100, 32)
	wall := resolv.NewObject(130, 32, 32, 100, tagWall)
	r.space.Add(wall)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall))
	r.body.ChangeX = 3

	e.Carry(25, 0)
	if r.body.Object.X != 110 {
		t.Errorf("X = %v, want 110 (flush with the wall)", r.body.Object.X)
	}
	if r.body.Object.Y != 32 {
		t.Errorf("Y = %v, carry into a wall must not lift the body", r.body.Object.Y)
	}
	if r.body.ChangeX != 3 {
		t.Errorf("ChangeX = %v, carry must not touch velocity", r.body.ChangeX)
	}

	e.Carry(0, -10)
	if r.body.Object.Y != 32 {
		t.Errorf("Y = %v, want 32 resting on the ground", r.body.Object.Y)
	}
}

func TestEmbeddedBodyIsNotLiftedOntoSolid(t *testing.T) {
	r := newRig(t, 100, 60)
	column := resolv.NewObject(90, 32, 40, 100, tagWall)
	r.space.Add(column)
	e := NewEngine(r.body, 1, NewHashedLayer(tagWall))

	e.Advance()
	if r.body.Object.Y >= 60 {
		t.Errorf("Y = %v, body inside a wall must not be snapped on top of it", r.body.Object.Y)
	}
	r.settle(t, e)
	if r.body.Ground != r.ground || r.body.Object.Y != 32 {
		t.Errorf("settled at Y = %v on %v, want the ground at 32", r.body.Object.Y, r.body.Ground)
	}
}

func TestNewEngineRequiresWalls(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic without walls")
		}
	}()
	NewEngine(NewBody(resolv.NewObject(0, 0, 1, 1)), 1, nil)
}

func TestPlaceCenterAndStop(t *testing.T) {
	r := newRig(t, 0, 0)
	r.body.ChangeX, r.body.ChangeY = 3, 4
	r.body.PlaceCenter(64, 300)
	r.body.Stop()

	if x, y := r.body.Center(); x != 64 || y != 300 {
		t.Errorf("center = (%v, %v), want (64, 300)", x, y)
	}
	if r.body.ChangeX != 0 || r.body.ChangeY != 0 || r.body.Ground != nil {
		t.Error("Stop should clear velocity and ground")
	}
}
