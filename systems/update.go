package systems

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// UpdateGame runs one frame of the level. An error means the next level
// could not be loaded and the game cannot continue.
func UpdateGame(w donburi.World) error {
	level, ok := levelData(w)
	if !ok {
		return fmt.Errorf("update: no level loaded")
	}

	UpdateMovingPlatforms(w)
	level.Engine.Advance()
	UpdateCamera(w)
	UpdateDeath(w)
	CollectCoins(w)
	UpdatePlayerAnimation(w)

	_, body, ok := playerState(w)
	if !ok {
		return nil
	}
	if x, _ := body.Center(); x >= level.EndOfMap {
		session, _ := sessionData(w)
		if err := LoadLevel(w, session.Level+1); err != nil {
			return err
		}
		RecordProgress(w)
		UpdateCamera(w)
	}
	return nil
}
