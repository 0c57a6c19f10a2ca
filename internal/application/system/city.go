package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/ziggurat/internal/domain/entity"
	"github.com/younwookim/ziggurat/internal/infrastructure/assets"
	"github.com/younwookim/ziggurat/internal/infrastructure/config"
)

// City layout in world units. North is negative y.
const (
	CityWest  = 32.0
	CityEast  = 288.0
	CityNorth = -1304.0
	CitySouth = 104.0

	WallSegment = 16.0
	WallThick   = 8.0

	AvenueWest = 120.0
	AvenueEast = 200.0

	RiverX = 4.0
	RiverW = 24.0

	rowSpacing = 80.0
	firstRowY  = 24.0
	lastRowY   = -1040.0

	figureW = 10.0
	figureH = 14.0

	// ExplorerLead is how far below the view centre the explorer walks
	ExplorerLead = 48.0
)

// Landmark footprint, centred on the avenue just inside the north wall
const (
	LandmarkX = 112.0
	LandmarkY = -1250.0
	LandmarkW = 96.0
	LandmarkH = 72.0
)

// Wall gaps as inclusive segment index ranges
var (
	southGate = [2]int{7, 8}   // x 144..176, the main gate on the avenue
	riverGate = [2]int{60, 61} // y -344..-312 on the west wall
)

const (
	boatCount     = 3
	villagerCount = 4
	treeChance    = 0.5
	leaderChance  = 0.15
)

// LandmarkID is the interactive temple's entity ID
const LandmarkID entity.ID = "ziggurat"

// ExplorerID is the player figure's entity ID
const ExplorerID entity.ID = "explorer"

// GenerateCity lays out the walled river city. Walls, gates, towers, the
// landmark, rows and priests are fixed; rng only decides trees, the leader
// house variant, boat placement and townsfolk.
func GenerateCity(cfg *config.WorldConfig, rng *rand.Rand) []entity.Entity {
	out := make([]entity.Entity, 0, 320)

	out = append(out, cityWalls()...)
	out = append(out, cityTowers()...)
	out = append(out, entity.Entity{
		ID: LandmarkID,
		X:  LandmarkX, Y: LandmarkY, W: LandmarkW, H: LandmarkH,
		Body: &entity.Ziggurat{},
	})
	out = append(out, cityRows(rng)...)
	out = append(out, cityBoats(cfg, rng)...)
	out = append(out, cityPriests()...)
	out = append(out, cityVillagers(cfg, rng)...)
	out = append(out, entity.Entity{
		ID: ExplorerID,
		X:  (AvenueWest+AvenueEast)/2 - figureW/2, Y: ExplorerLead,
		W: figureW, H: figureH,
		Body: &entity.Player{},
	})

	return out
}

func inGap(i int, gap [2]int) bool {
	return i >= gap[0] && i <= gap[1]
}

func cityWalls() []entity.Entity {
	var out []entity.Entity
	wall := func(id string, x, y, w, h float64) {
		out = append(out, entity.Entity{
			ID: entity.ID(id),
			X:  x, Y: y, W: w, H: h,
			Body: &entity.Decor{Style: entity.DecorWall},
		})
	}

	across := int((CityEast - CityWest) / WallSegment)
	for i := 0; i < across; i++ {
		x := CityWest + float64(i)*WallSegment
		wall(fmt.Sprintf("wall-n-%d", i), x, CityNorth, WallSegment, WallThick)
		if !inGap(i, southGate) {
			wall(fmt.Sprintf("wall-s-%d", i), x, CitySouth, WallSegment, WallThick)
		}
	}

	down := int((CitySouth - CityNorth) / WallSegment)
	for i := 0; i < down; i++ {
		y := CityNorth + float64(i)*WallSegment
		if !inGap(i, riverGate) {
			wall(fmt.Sprintf("wall-w-%d", i), CityWest, y, WallThick, WallSegment)
		}
		wall(fmt.Sprintf("wall-e-%d", i), CityEast-WallThick, y, WallThick, WallSegment)
	}
	return out
}

func cityTowers() []entity.Entity {
	const w, h = 20.0, 28.0
	corners := []struct {
		id   string
		x, y float64
	}{
		{"tower-nw", CityWest - 6, CityNorth - 14},
		{"tower-ne", CityEast - 14, CityNorth - 14},
		{"tower-sw", CityWest - 6, CitySouth - 14},
		{"tower-se", CityEast - 14, CitySouth - 14},
	}

	out := make([]entity.Entity, 0, len(corners))
	for _, c := range corners {
		out = append(out, entity.Entity{
			ID: entity.ID(c.id),
			X:  c.x, Y: c.y, W: w, H: h,
			Body: &entity.Building{Style: entity.StyleTower},
		})
	}
	return out
}

// cityRows alternates house rows and market rows on both sides of the avenue.
func cityRows(rng *rand.Rand) []entity.Entity {
	const (
		houseW, houseH = 36.0, 28.0
		stallW, stallH = 28.0, 20.0
		treeW, treeH   = 14.0, 14.0
	)
	var out []entity.Entity

	row := 0
	for y := firstRowY; y >= lastRowY; y -= rowSpacing {
		for side, name := range []string{"l", "r"} {
			if row%2 == 1 {
				x := AvenueWest - stallW - 8
				if side == 1 {
					x = AvenueEast + 12
				}
				out = append(out, entity.Entity{
					ID: entity.ID(fmt.Sprintf("stall-%d-%s", row, name)),
					X:  x, Y: y + 4, W: stallW, H: stallH,
					Body: &entity.Building{
						Style:  entity.StyleStall,
						Awning: assets.Palette.Awnings[(row+side)%len(assets.Palette.Awnings)],
					},
				})
				continue
			}

			x, treeX := AvenueWest-houseW-8, AvenueWest-houseW-8-treeW-4
			if side == 1 {
				x, treeX = AvenueEast+24, AvenueEast+24+houseW+2
			}
			style := entity.StyleHouse
			if rng.Float64() < leaderChance {
				style = entity.StyleLeader
			}
			out = append(out, entity.Entity{
				ID: entity.ID(fmt.Sprintf("house-%d-%s", row, name)),
				X:  x, Y: y, W: houseW, H: houseH,
				Body: &entity.Building{Style: style},
			})
			if rng.Float64() < treeChance {
				out = append(out, entity.Entity{
					ID: entity.ID(fmt.Sprintf("tree-%d-%s", row, name)),
					X:  treeX, Y: y + houseH - treeH, W: treeW, H: treeH,
					Body: &entity.Decor{Style: entity.DecorTree},
				})
			}
		}
		row++
	}
	return out
}

func cityBoats(cfg *config.WorldConfig, rng *rand.Rand) []entity.Entity {
	out := make([]entity.Entity, 0, boatCount)
	span := cfg.Boat.Cycle
	for i := 0; i < boatCount; i++ {
		out = append(out, entity.Entity{
			ID: entity.ID(fmt.Sprintf("boat-%d", i)),
			X:  RiverX + 7, Y: cfg.Boat.WrapDistance - rng.Float64()*span,
			W: 10, H: 12,
			Body: &entity.Boat{
				Speed: 0.2 + rng.Float64()*0.3,
				Color: assets.Palette.Reed,
			},
		})
	}
	return out
}

func cityPriests() []entity.Entity {
	placements := []struct{ x, speed float64 }{
		{124, 0.25},
		{158, -0.2},
		{190, 0.3},
	}
	out := make([]entity.Entity, 0, len(placements))
	for i, p := range placements {
		out = append(out, entity.Entity{
			ID: entity.ID(fmt.Sprintf("priest-%d", i)),
			X:  p.x, Y: LandmarkY + LandmarkH + 8, W: figureW, H: figureH,
			Body: &entity.NPC{Role: entity.RolePriest, Speed: p.speed, Color: assets.Palette.Robe},
		})
	}
	return out
}

func cityVillagers(cfg *config.WorldConfig, rng *rand.Rand) []entity.Entity {
	out := make([]entity.Entity, 0, villagerCount)
	for i := 0; i < villagerCount; i++ {
		speed := 0.2 + rng.Float64()*0.3
		if rng.Intn(2) == 0 {
			speed = -speed
		}
		x := cfg.NPC.MinX + rng.Float64()*(cfg.NPC.MaxX-cfg.NPC.MinX)
		out = append(out, entity.Entity{
			ID: entity.ID(fmt.Sprintf("villager-%d", i)),
			X:  x, Y: firstRowY - rowSpacing*float64(3*i+1) + 30, W: figureW, H: figureH,
			Body: &entity.NPC{Role: entity.RoleVillager, Speed: speed, Color: assets.Palette.Tunic},
		})
	}
	return out
}
