package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/world"
)

// Status is the text shown under the board.
type Status struct {
	Level int
	Food  int
	Phase string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	styles map[string]tcell.Style // by hex color
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen, styles: make(map[string]tcell.Style)}
}

// Render draws the board and the status line to the screen.
func (r *Renderer) Render(scene *world.Scene, columns, rows int, status Status) {
	r.screen.Clear()

	grid := NewGrid(scene, columns, rows)
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			g := grid.At(col, row)
			r.screen.SetContent(col, row, g.Rune, r.style(g.Color))
		}
	}

	line := fmt.Sprintf("Level %d  Food %d", status.Level, status.Food)
	r.RenderMessage(line, grid.Height()+1)
	if status.Phase != "" {
		r.RenderMessage(status.Phase, grid.Height()+2)
	}

	r.screen.Show()
}

// style returns the cached style for a hex color.
func (r *Renderer) style(hex string) tcell.Style {
	if s, ok := r.styles[hex]; ok {
		return s
	}
	s := tcell.StyleDefault
	if color, err := gamedata.ParseHexColor(hex); err == nil {
		s = s.Foreground(color)
	}
	r.styles[hex] = s
	return s
}

// RenderMessage displays a message on screen row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
