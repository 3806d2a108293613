package factory

import (
	"math"

	"github.com/automoto/sigmaplatformer/components"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// AttachMotion scripts a moving platform entity. Boundaries are scaled by
// scale; velocities are pixels per frame.
//
// An axis bounded on both sides loops start, far bound, near bound, start
// using a *gween.Sequence. Any other axis drifts at constant velocity.
func AttachMotion(platform *donburi.Entry, motion leveldata.Motion, scale float64) {
	obj := components.Object.Get(platform)
	data := components.MovingPlatformData{
		ChangeX: motion.ChangeX,
		ChangeY: motion.ChangeY,
	}

	if motion.ChangeX != 0 && motion.HasLeft && motion.HasRight {
		data.SequenceX = patrol(obj.X, motion.BoundaryLeft*scale, motion.BoundaryRight*scale-obj.W, motion.ChangeX)
		if data.SequenceX == nil {
			data.ChangeX = 0
		}
	}
	if motion.ChangeY != 0 && motion.HasBottom && motion.HasTop {
		data.SequenceY = patrol(obj.Y, motion.BoundaryBottom*scale, motion.BoundaryTop*scale-obj.H, motion.ChangeY)
		if data.SequenceY == nil {
			data.ChangeY = 0
		}
	}

	components.MovingPlatform.SetValue(platform, data)
}

// patrol builds a looping sequence for one axis. low and high bound the
// object's minimum corner. Returns nil when there is nowhere to go.
func patrol(start, low, high, change float64) *gween.Sequence {
	far, near := high, low
	if change < 0 {
		far, near = low, high
	}
	speed := math.Abs(change)

	tw := gween.NewSequence()
	points := []float64{start, far, near, start}
	for i := 0; i+1 < len(points); i++ {
		from, to := points[i], points[i+1]
		if from == to {
			continue
		}
		frames := math.Abs(to-from) / speed
		tw.Add(gween.New(float32(from), float32(to), float32(frames), ease.Linear))
	}
	if !tw.HasTweens() {
		return nil
	}
	tw.SetLoop(-1)
	return tw
}
