package config

// Direction is the way the player sprite faces.
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// TextureID selects which player texture set is shown.
type TextureID int

const (
	TextureIdle TextureID = iota
	TextureWalk
	TextureJump
	TextureFall
	TextureClimb
)

func (t TextureID) String() string {
	switch t {
	case TextureWalk:
		return "walk"
	case TextureJump:
		return "jump"
	case TextureFall:
		return "fall"
	case TextureClimb:
		return "climb"
	default:
		return "idle"
	}
}
