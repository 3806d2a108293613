package systems

import (
	"github.com/automoto/sigmaplatformer/components"
	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// PlayerDied reports whether the player fell below the death threshold or
// touches the hazard layer.
func PlayerDied(w donburi.World) bool {
	_, body, ok := playerState(w)
	if !ok {
		return false
	}
	if _, y := body.Center(); y < cfg.Physics.DeathThreshold {
		return true
	}

	level, ok := levelData(w)
	if !ok || level.Hazards == nil {
		return false
	}
	return len(level.Hazards.Overlapping(body.Object, 0, 0)) > 0
}

// RespawnPlayer puts the player back on its spawn point at rest.
func RespawnPlayer(w donburi.World) {
	playerEntry, body, ok := playerState(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	body.PlaceCenter(player.SpawnX, player.SpawnY)
	body.Stop()
	player.Jumping = false
	player.Climbing = false

	if session, ok := sessionData(w); ok {
		session.Deaths++
		log.Debug("player respawned", "level", session.Level, "deaths", session.Deaths)
	}
}

// UpdateDeath respawns the player when PlayerDied.
func UpdateDeath(w donburi.World) {
	if PlayerDied(w) {
		RespawnPlayer(w)
	}
}
