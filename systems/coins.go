package systems

import (
	"github.com/automoto/sigmaplatformer/components"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// CollectCoins removes every coin the player touches, counts it and saves
// the new best.
func CollectCoins(w donburi.World) {
	level, ok := levelData(w)
	if !ok || level.Coins == nil {
		return
	}
	_, body, ok := playerState(w)
	if !ok {
		return
	}
	session, ok := sessionData(w)
	if !ok {
		return
	}

	collected := session.Coins
	for _, obj := range level.Coins.Overlapping(body.Object, 0, 0) {
		coin, ok := obj.Data.(*donburi.Entry)
		if !ok || !coin.Valid() {
			continue
		}
		if obj.Space != nil {
			obj.Space.Remove(obj)
		}
		if sceneEntry, ok := components.Scene.First(w); ok {
			components.Scene.Get(sceneEntry).Remove(coin.Entity())
		}
		w.Remove(coin.Entity())
		session.Coins++
		log.Debug("coin collected", "coins", session.Coins)
	}
	if session.Coins != collected {
		RecordProgress(w)
	}
}
