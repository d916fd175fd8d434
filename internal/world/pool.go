package world

import "errors"

// ErrPoolExhausted is returned when drawing from an empty position pool.
var ErrPoolExhausted = errors.New("world: position pool exhausted")

// PositionPool tracks the interior cells that are still free for placement.
// Cells are drawn without replacement.
type PositionPool struct {
	cells []Cell
	rng   Rand
}

// NewPositionPool creates an empty pool drawing with rng.
func NewPositionPool(rng Rand) *PositionPool {
	return &PositionPool{rng: rng}
}

// Reset clears the pool and refills it with every interior cell of a
// columns × rows board: 1 <= x <= columns-2, 1 <= y <= rows-2.
// The perimeter is left out so nothing is scattered against the outer wall.
func (p *PositionPool) Reset(columns, rows int) {
	p.cells = p.cells[:0]
	for x := 1; x < columns-1; x++ {
		for y := 1; y < rows-1; y++ {
			p.cells = append(p.cells, Cell{X: x, Y: y})
		}
	}
}

// Draw removes and returns a uniformly chosen remaining cell.
func (p *PositionPool) Draw() (Cell, error) {
	n := len(p.cells)
	if n == 0 {
		return Cell{}, ErrPoolExhausted
	}
	i := p.rng.Intn(n)
	c := p.cells[i]
	// Order is not part of the contract, so swap-remove.
	p.cells[i] = p.cells[n-1]
	p.cells = p.cells[:n-1]
	return c, nil
}

// Len returns the number of cells still available.
func (p *PositionPool) Len() int {
	return len(p.cells)
}

// Contains returns true if c has not been drawn yet.
func (p *PositionPool) Contains(c Cell) bool {
	for _, free := range p.cells {
		if free == c {
			return true
		}
	}
	return false
}
