// Package assets holds the read-only color palette and sprite bitmaps.
package assets

import "image/color"

// Palette is the named color table used by every renderer
var Palette = struct {
	// Ground and sky
	Night    color.RGBA
	Sand     color.RGBA
	SandDark color.RGBA
	Field    color.RGBA
	Water    color.RGBA
	WaterHi  color.RGBA
	Mountain color.RGBA

	// Architecture
	Mud      color.RGBA
	MudDark  color.RGBA
	Brick    color.RGBA
	BrickHi  color.RGBA
	Roof     color.RGBA
	Door     color.RGBA
	Stone    color.RGBA
	StoneHi  color.RGBA
	Floor    color.RGBA
	FloorAlt color.RGBA

	// Figures
	Skin    color.RGBA
	Robe    color.RGBA
	Tunic   color.RGBA
	Leaf    color.RGBA
	Trunk   color.RGBA
	Reed    color.RGBA
	Awnings []color.RGBA

	// Accents
	Gold  color.RGBA
	Teal  color.RGBA
	Red   color.RGBA
	White color.RGBA
	Black color.RGBA
}{
	Night:    color.RGBA{20, 18, 32, 255},
	Sand:     color.RGBA{214, 184, 128, 255},
	SandDark: color.RGBA{190, 160, 108, 255},
	Field:    color.RGBA{118, 140, 64, 255},
	Water:    color.RGBA{46, 98, 150, 255},
	WaterHi:  color.RGBA{94, 150, 196, 255},
	Mountain: color.RGBA{120, 96, 84, 255},

	Mud:      color.RGBA{176, 138, 92, 255},
	MudDark:  color.RGBA{140, 106, 70, 255},
	Brick:    color.RGBA{160, 92, 60, 255},
	BrickHi:  color.RGBA{196, 124, 80, 255},
	Roof:     color.RGBA{120, 84, 56, 255},
	Door:     color.RGBA{60, 40, 28, 255},
	Stone:    color.RGBA{150, 144, 132, 255},
	StoneHi:  color.RGBA{196, 190, 176, 255},
	Floor:    color.RGBA{88, 70, 58, 255},
	FloorAlt: color.RGBA{98, 78, 64, 255},

	Skin:  color.RGBA{196, 140, 100, 255},
	Robe:  color.RGBA{236, 228, 210, 255},
	Tunic: color.RGBA{72, 110, 160, 255},
	Leaf:  color.RGBA{60, 120, 56, 255},
	Trunk: color.RGBA{100, 70, 40, 255},
	Reed:  color.RGBA{200, 170, 90, 255},
	Awnings: []color.RGBA{
		{190, 60, 50, 255},
		{60, 120, 170, 255},
		{210, 170, 50, 255},
		{120, 70, 150, 255},
	},

	Gold:  color.RGBA{255, 208, 64, 255},
	Teal:  color.RGBA{64, 208, 200, 255},
	Red:   color.RGBA{200, 40, 40, 255},
	White: color.RGBA{255, 255, 255, 255},
	Black: color.RGBA{0, 0, 0, 255},
}

// Keys maps bitmap runes to palette colors. '.' is transparent and has no entry.
var Keys = map[rune]color.RGBA{
	's': Palette.Skin,
	'r': Palette.Robe,
	't': Palette.Tunic,
	'l': Palette.Leaf,
	'k': Palette.Trunk,
	'w': Palette.Reed,
	'g': Palette.Gold,
	'q': Palette.Teal,
	'x': Palette.Red,
	'b': Palette.Black,
	'h': Palette.White,
	'o': Palette.Stone,
	'O': Palette.StoneHi,
	'm': Palette.Mountain,
	'd': Palette.Door,
	'c': Palette.WaterHi,
}

// Accents are the two particle colors
var Accents = [2]color.RGBA{Palette.Gold, Palette.Teal}
