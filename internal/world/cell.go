package world

import "github.com/samdwyer/roguelike/internal/motion"

// Cell is a discrete grid coordinate on the board.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Vec returns the cell center in board space.
func (c Cell) Vec() motion.Vec2 {
	return motion.Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// CellAt returns the cell containing position p, rounding to the nearest center.
func CellAt(p motion.Vec2) Cell {
	return Cell{X: round(p.X), Y: round(p.Y)}
}

func round(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

// Rect is an axis-aligned block of cells.
type Rect struct {
	X, Y          int // Bottom-left cell
	Width, Height int // Dimensions in cells
}

// BoardRect returns the full board including the one-cell border:
// [-1, columns] × [-1, rows].
func BoardRect(columns, rows int) Rect {
	return Rect{X: -1, Y: -1, Width: columns + 2, Height: rows + 2}
}

// Contains returns true if the cell is inside the rect.
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.X && c.X < r.X+r.Width && c.Y >= r.Y && c.Y < r.Y+r.Height
}

// OnBorder returns true if the cell lies on the rect's outermost ring.
func (r Rect) OnBorder(c Cell) bool {
	if !r.Contains(c) {
		return false
	}
	return c.X == r.X || c.X == r.X+r.Width-1 || c.Y == r.Y || c.Y == r.Y+r.Height-1
}

// Area returns the number of cells in the rect.
func (r Rect) Area() int {
	return r.Width * r.Height
}
