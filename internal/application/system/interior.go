package system

import (
	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
)

// StatueID is the interior centrepiece's entity ID
const StatueID entity.ID = "statue"

// GenerateInterior places the temple's fixed furnishings.
func GenerateInterior() []entity.Entity {
	return []entity.Entity{
		{
			ID: "banner-l",
			X:  88, Y: 50, W: 24, H: 64,
			Body: &entity.Banner{Color: assets.Palette.Awnings[0], Sigil: assets.Sigil},
		},
		{
			ID: "banner-r",
			X:  208, Y: 50, W: 24, H: 64,
			Body: &entity.Banner{Color: assets.Palette.Awnings[1], Sigil: assets.Sigil},
		},
		{
			ID: StatueID,
			X:  146, Y: 70, W: 28, H: 56,
			Body: &entity.Statue{Sprite: assets.Statue},
		},
		{
			ID: "priest-l",
			X:  112, Y: 120, W: 10, H: 14,
			Body: &entity.NPC{Role: entity.RolePriest, Color: assets.Palette.Robe},
		},
		{
			ID: "priest-r",
			X:  198, Y: 120, W: 10, H: 14,
			Body: &entity.NPC{Role: entity.RolePriest, Color: assets.Palette.Robe},
		},
	}
}
