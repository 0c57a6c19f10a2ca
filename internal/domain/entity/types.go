package entity

import "image/color"

// ID identifies an entity within the active scene's population.
// IDs are only unique per population; a new scene entry may reuse them.
type ID string

// None is the zero ID, used when nothing is hovered.
const None ID = ""

// Kind represents the type of an entity
type Kind int

const (
	KindNPC Kind = iota
	KindBuilding
	KindDecor
	KindPlayer
	KindBoat
	KindZiggurat
	KindStatue
	KindBanner
)

// Kinds lists every defined kind in declaration order.
var Kinds = []Kind{
	KindNPC, KindBuilding, KindDecor, KindPlayer,
	KindBoat, KindZiggurat, KindStatue, KindBanner,
}

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNPC:
		return "NPC"
	case KindBuilding:
		return "BUILDING"
	case KindDecor:
		return "DECOR"
	case KindPlayer:
		return "PLAYER"
	case KindBoat:
		return "BOAT"
	case KindZiggurat:
		return "ZIGGURAT"
	case KindStatue:
		return "STATUE"
	case KindBanner:
		return "BANNER"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindNPC && k <= KindBanner
}

// Bitmap is a small fixed-grid sprite. Each rune is a palette key;
// '.' is transparent.
type Bitmap []string

// Size returns the bitmap's column and row counts.
func (b Bitmap) Size() (cols, rows int) {
	rows = len(b)
	for _, row := range b {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return cols, rows
}

// Rect is an axis-aligned rectangle in logical units.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside the rectangle (edges inclusive).
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Entity is a positioned, renderable game object.
type Entity struct {
	ID   ID
	X, Y float64
	W, H float64
	// Frame is a free-running animation counter.
	Frame int
	Body  Body
}

// Kind returns the entity's kind, derived from its body variant.
func (e *Entity) Kind() Kind {
	if e.Body == nil {
		return KindDecor
	}
	return e.Body.kind()
}

// Bounds returns the entity's world-space bounding rectangle.
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Body is the kind-specific part of an entity. The set of variants is closed.
type Body interface {
	kind() Kind
}

// NPCRole selects the NPC sub-rendering path
type NPCRole int

const (
	RoleVillager NPCRole = iota
	RolePriest
)

// String returns the display variant tag
func (r NPCRole) String() string {
	switch r {
	case RoleVillager:
		return "VILLAGER"
	case RolePriest:
		return "PRIEST"
	default:
		return "UNKNOWN"
	}
}

// NPC is a walking figure. Speed is in world units per tick; its sign is
// the walking direction.
type NPC struct {
	Role  NPCRole
	Speed float64
	Color color.RGBA
}

func (*NPC) kind() Kind { return KindNPC }

// BuildingStyle selects the building sub-rendering path
type BuildingStyle int

const (
	StyleHouse BuildingStyle = iota
	StyleLeader
	StyleStall
	StyleTower
)

// String returns the display variant tag
func (s BuildingStyle) String() string {
	switch s {
	case StyleHouse:
		return "HOUSE"
	case StyleLeader:
		return "LEADER"
	case StyleStall:
		return "STALL"
	case StyleTower:
		return "TOWER"
	default:
		return "UNKNOWN"
	}
}

// Building is a static structure.
type Building struct {
	Style BuildingStyle
	// Awning is the stall canopy color; unused by other styles.
	Awning color.RGBA
}

func (*Building) kind() Kind { return KindBuilding }

// DecorStyle selects the decor sub-rendering path
type DecorStyle int

const (
	DecorWall DecorStyle = iota
	DecorTree
)

// String returns the display variant tag
func (s DecorStyle) String() string {
	switch s {
	case DecorWall:
		return "WALL"
	case DecorTree:
		return "TREE"
	default:
		return "UNKNOWN"
	}
}

// Decor is scenery with no behaviour.
type Decor struct {
	Style DecorStyle
}

func (*Decor) kind() Kind { return KindDecor }

// Player is the explorer figure.
type Player struct{}

func (*Player) kind() Kind { return KindPlayer }

// Boat drifts along the river. A zero Speed means the configured default.
type Boat struct {
	Speed float64
	Color color.RGBA
}

func (*Boat) kind() Kind { return KindBoat }

// Ziggurat is the landmark temple.
type Ziggurat struct{}

func (*Ziggurat) kind() Kind { return KindZiggurat }

// Statue is the interior centrepiece.
type Statue struct {
	Sprite Bitmap
}

func (*Statue) kind() Kind { return KindStatue }

// Banner is a hanging cloth with a sigil.
type Banner struct {
	Color color.RGBA
	Sigil Bitmap
}

func (*Banner) kind() Kind { return KindBanner }
