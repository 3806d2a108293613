package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MovingPlatformData scripts a platform's motion. An axis with a sequence
// follows it; an axis without one drifts at its constant velocity.
type MovingPlatformData struct {
	SequenceX *gween.Sequence
	SequenceY *gween.Sequence

	ChangeX float64
	ChangeY float64

	// Movement applied during the last update, used to carry riders.
	DeltaX float64
	DeltaY float64
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
