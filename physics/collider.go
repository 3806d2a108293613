package physics

import (
	"github.com/solarlune/resolv"
)

// Collider answers which solids an object would overlap if moved by (dx, dy).
type Collider interface {
	Overlapping(obj *resolv.Object, dx, dy float64) []*resolv.Object
}

// HashedLayer finds solids through the resolv spatial hash. Only objects
// carrying one of Tags are considered; obj must be in the same space.
type HashedLayer struct {
	Tags []string
}

// NewHashedLayer returns a collider over the objects tagged with any of tags.
func NewHashedLayer(tags ...string) HashedLayer {
	return HashedLayer{Tags: tags}
}

func (h HashedLayer) Overlapping(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	check := obj.Check(dx, dy, h.Tags...)
	if check == nil {
		return nil
	}
	// The hash only narrows the search to nearby cells.
	moved := RectOf(obj).Translate(dx, dy)
	var hits []*resolv.Object
	for _, other := range check.ObjectsByTags(h.Tags...) {
		if other != obj && moved.Overlaps(RectOf(other)) {
			hits = append(hits, other)
		}
	}
	return hits
}

// ObjectList scans every member. It serves layers kept out of the spatial
// hash because their members move each frame.
type ObjectList []*resolv.Object

func (l ObjectList) Overlapping(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	moved := RectOf(obj).Translate(dx, dy)
	var hits []*resolv.Object
	for _, other := range l {
		if other != obj && moved.Overlaps(RectOf(other)) {
			hits = append(hits, other)
		}
	}
	return hits
}

// Colliders merges several colliders into one.
type Colliders []Collider

func (cs Colliders) Overlapping(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	var hits []*resolv.Object
	for _, c := range cs {
		if c == nil {
			continue
		}
		hits = append(hits, c.Overlapping(obj, dx, dy)...)
	}
	return hits
}
