package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hollow/component"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloorDecor = tcell.NewRGBColor(70, 72, 90)    // Muted slate
	RgbWall       = tcell.NewRGBColor(150, 150, 160) // Stone gray
	RgbPillar     = tcell.NewRGBColor(180, 170, 150) // Sandstone
	RgbStone      = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbMagicBlock = tcell.NewRGBColor(190, 120, 255) // Violet
	RgbHole       = tcell.NewRGBColor(90, 90, 90)    // Dark gray
	RgbMagicHole  = tcell.NewRGBColor(110, 60, 150)  // Dark violet
	RgbHoleFilled = tcell.NewRGBColor(60, 60, 60)    // Near floor
	RgbTorchLit   = tcell.NewRGBColor(255, 200, 40)  // Flame
	RgbTorchOut   = tcell.NewRGBColor(100, 80, 60)   // Ash
	RgbDoorOpen   = tcell.NewRGBColor(80, 220, 120)  // Green
	RgbDoorLocked = tcell.NewRGBColor(220, 70, 70)   // Red
	RgbDoorFinal  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbForeground = tcell.NewRGBColor(60, 140, 90)   // Foliage
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbMonster    = tcell.NewRGBColor(255, 40, 40)   // Bright red
	RgbRiddle     = tcell.NewRGBColor(192, 202, 245) // Pale lavender

	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg    = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusWarn  = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbStatusWinBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
)

// kindColor returns the base foreground color of a kind
func kindColor(k component.Kind) tcell.Color {
	switch k {
	case component.KindWall:
		return RgbWall
	case component.KindPillar:
		return RgbPillar
	case component.KindStone:
		return RgbStone
	case component.KindMagicBlock:
		return RgbMagicBlock
	case component.KindHole:
		return RgbHole
	case component.KindMagicHole:
		return RgbMagicHole
	case component.KindTorch:
		return RgbTorchOut
	case component.KindDoor:
		return RgbDoorLocked
	case component.KindForeground:
		return RgbForeground
	case component.KindPlayer:
		return RgbPlayer
	case component.KindMonster:
		return RgbMonster
	}
	return RgbFloorDecor
}

// fade blends c toward the background by t in [0, 1]
func fade(c tcell.Color, t float64) tcell.Color {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(a, z int32) int32 { return a + int32(float64(z-a)*t) }
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
