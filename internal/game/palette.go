package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

var Palette = struct {
	Background    RGB
	UI            RGB
	Player        RGB
	EnemyCommon   RGB
	EnemyTough    RGB
	EnemyShooter  RGB
	Boss          RGB
	BulletPlayer  RGB
	BulletEnemy   RGB
	Shield        RGB
	ShieldDamaged RGB
	Dim           RGB
	Highlight     RGB
	Heart         RGB
	White         RGB
}{
	Background:    RGB{R: 13, G: 16, B: 33},
	UI:            RGB{R: 230, G: 235, B: 255},
	Player:        RGB{R: 240, G: 240, B: 255},
	EnemyCommon:   RGB{R: 120, G: 200, B: 255},
	EnemyTough:    RGB{R: 255, G: 160, B: 120},
	EnemyShooter:  RGB{R: 180, G: 255, B: 160},
	Boss:          RGB{R: 255, G: 80, B: 140},
	BulletPlayer:  RGB{R: 255, G: 255, B: 180},
	BulletEnemy:   RGB{R: 255, G: 120, B: 120},
	Shield:        RGB{R: 90, G: 200, B: 160},
	ShieldDamaged: RGB{R: 180, G: 110, B: 110},
	Dim:           RGB{R: 80, G: 90, B: 120},
	Highlight:     RGB{R: 160, G: 200, B: 255},
	Heart:         RGB{R: 255, G: 100, B: 120},
	White:         RGB{R: 255, G: 255, B: 255},
}
