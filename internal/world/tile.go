// Package world provides board generation, random placement and the scene
// that holds every instantiated tile.
package world

// Kind is the board role of a tile template.
type Kind int

const (
	KindFloor Kind = iota
	KindOuterWall
	KindWall
	KindFood
	KindSoda
	KindEnemy
	KindExit
	KindPlayer
)

// String returns the kind's identifier as used in data files.
func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindOuterWall:
		return "outer_wall"
	case KindWall:
		return "wall"
	case KindFood:
		return "food"
	case KindSoda:
		return "soda"
	case KindEnemy:
		return "enemy"
	case KindExit:
		return "exit"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// ParseKind converts a data-file identifier back into a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindFloor; k <= KindPlayer; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Blocking returns true if instances of this kind obstruct movement.
func (k Kind) Blocking() bool {
	switch k {
	case KindOuterWall, KindWall, KindEnemy, KindPlayer:
		return true
	default:
		return false
	}
}

// Layer returns the draw order of the kind; higher layers are drawn on top.
func (k Kind) Layer() int {
	switch k {
	case KindFloor:
		return 0
	case KindOuterWall, KindWall, KindExit:
		return 1
	case KindFood, KindSoda:
		return 2
	default:
		return 3
	}
}

// Template is an interchangeable prefab for one board role.
type Template struct {
	ID           string // Unique identifier (e.g., "floor_moss")
	Kind         Kind   // Board role
	Glyph        rune   // Display character
	DamagedGlyph rune   // Display character once damaged (0 = unchanged)
	Color        string // Hex color code (e.g., "#8B4513")
}

// Blocking returns true if instances of this template obstruct movement.
func (t Template) Blocking() bool {
	return t.Kind.Blocking()
}
