package assets

import "github.com/younwookim/ziggurat/internal/domain/entity"

// Sprite bitmaps. Every row of a sprite has the same width.
var (
	Tree = entity.Bitmap{
		"..lll..",
		".lllll.",
		"lllllll",
		".lllll.",
		"..lll..",
		"...k...",
		"...k...",
	}

	Boat = entity.Bitmap{
		"..w..",
		".www.",
		".wkw.",
		".wkw.",
		".www.",
		"..w..",
	}

	Priest = entity.Bitmap{
		"..s..",
		".sss.",
		"..r..",
		".rrr.",
		"rrrrr",
		".rrr.",
		".r.r.",
	}

	Villager = entity.Bitmap{
		"..s..",
		".sss.",
		"..t..",
		".ttt.",
		"s.t.s",
		".t.t.",
		".k.k.",
	}

	Explorer = entity.Bitmap{
		".xxx.",
		"..s..",
		".sss.",
		".ggg.",
		"sgggs",
		".k.k.",
		".k.k.",
	}

	Statue = entity.Bitmap{
		"..ggg..",
		".ggggg.",
		"..OOO..",
		"..OOO..",
		"...O...",
		".OOOOO.",
		"OOOOOOO",
		"O.OOO.O",
		"..OOO..",
		"..OOO..",
		"..O.O..",
		"..O.O..",
		"ooooooo",
		"ooooooo",
	}

	Sigil = entity.Bitmap{
		"..g..",
		".ggg.",
		"gg.gg",
		".ggg.",
		"..g..",
	}

	Crest = entity.Bitmap{
		"q.q.q",
		"qqqqq",
	}

	Peak = entity.Bitmap{
		"....m....",
		"...mmm...",
		"..mmhmm..",
		".mmmmmmm.",
		"mmmmmmmmm",
	}

	Marker = entity.Bitmap{
		".ggg.",
		"ggxgg",
		"gxxxg",
		".gxg.",
		"..g..",
	}
)
