package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Wall           = donburi.NewTag().SetName("Wall")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Coin           = donburi.NewTag().SetName("Coin")
	Hazard         = donburi.NewTag().SetName("Hazard")
	Ladder         = donburi.NewTag().SetName("Ladder")
	Decoration     = donburi.NewTag().SetName("Decoration")
)

// Resolv tags for physics collision
const (
	ResolvWall     = "wall"
	ResolvPlatform = "platform"
	ResolvCoin     = "coin"
	ResolvHazard   = "hazard"
	ResolvLadder   = "ladder"
	ResolvPlayer   = "player"
)
