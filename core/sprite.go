package core

// Sprite is the opaque visual id stamped on an entity at spawn
// The renderer owns the mapping to actual glyphs
type Sprite uint8

const (
	SpriteNone Sprite = iota
	SpriteShip
	SpriteNavy
	SpriteSeaMonster
	SpriteKraken
	SpriteApple
	SpriteGold
	SpriteBarrel
	SpriteCannonball
	SpriteSpike
	SpriteSmoke
	SpriteBoom
	SpriteTentacle
	SpriteClear
	SpriteCount
)
