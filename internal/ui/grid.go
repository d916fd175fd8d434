package ui

import (
	"sort"
	"strings"

	"github.com/samdwyer/roguelike/internal/world"
)

// Glyph is one drawn board cell.
type Glyph struct {
	Rune  rune
	Color string // Hex color of the template drawn on top
}

// Grid is a snapshot of the board, outer wall ring included.
// Row 0 is the top of the board (highest y).
type Grid struct {
	Columns int
	Rows    int
	cells   [][]Glyph
}

// NewGrid captures the active instances of scene on a columns x rows board.
// Higher layers are drawn over lower ones; instances off the board are skipped.
func NewGrid(scene *world.Scene, columns, rows int) *Grid {
	bounds := world.BoardRect(columns, rows)
	g := &Grid{Columns: columns, Rows: rows, cells: make([][]Glyph, bounds.Height)}
	for i := range g.cells {
		g.cells[i] = make([]Glyph, bounds.Width)
		for j := range g.cells[i] {
			g.cells[i][j] = Glyph{Rune: ' '}
		}
	}

	instances := append([]*world.Instance(nil), scene.Instances()...)
	sort.SliceStable(instances, func(a, b int) bool {
		return instances[a].Template.Kind.Layer() < instances[b].Template.Kind.Layer()
	})
	for _, inst := range instances {
		if !inst.Active() {
			continue
		}
		c := inst.Cell()
		if !bounds.Contains(c) {
			continue
		}
		col, row := g.screenPos(c)
		g.cells[row][col] = Glyph{Rune: inst.Glyph(), Color: inst.Template.Color}
	}
	return g
}

// screenPos maps a board cell to grid coordinates, flipping y.
func (g *Grid) screenPos(c world.Cell) (col, row int) {
	return c.X + 1, g.Rows - c.Y
}

// Width returns the grid width including the outer ring.
func (g *Grid) Width() int { return g.Columns + 2 }

// Height returns the grid height including the outer ring.
func (g *Grid) Height() int { return g.Rows + 2 }

// At returns the glyph at grid coordinates.
func (g *Grid) At(col, row int) Glyph {
	return g.cells[row][col]
}

// AtCell returns the glyph drawn for a board cell.
func (g *Grid) AtCell(c world.Cell) Glyph {
	col, row := g.screenPos(c)
	return g.At(col, row)
}

// String renders the grid as plain text, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	for _, line := range g.cells {
		for _, cell := range line {
			b.WriteRune(cell.Rune)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
