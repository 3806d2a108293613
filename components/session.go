package components

import (
	"image/color"
	"io/fs"

	"github.com/yohamta/donburi"
)

// SessionData survives level loads.
type SessionData struct {
	Level  int
	Coins  int
	Deaths int

	// Background is the clear colour. A map that declares one overrides it
	// for every later frame.
	Background color.RGBA

	// Maps holds the sigmamap<N>.tmx files.
	Maps fs.FS

	// LevelLoads counts successful loads; the HUD uses it to show the banner.
	LevelLoads int
}

var Session = donburi.NewComponentType[SessionData]()
