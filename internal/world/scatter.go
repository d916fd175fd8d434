package world

import "fmt"

// Scatter places a random number of templates from palette onto free cells.
// The count is drawn uniformly from counts; each placement consumes one cell
// from the pool. Running out of cells aborts the scatter with ErrPoolExhausted.
// Returns the cells used, in placement order.
func Scatter(sp Spawner, rng Rand, pool *PositionPool, palette Palette, counts CountRange) ([]Cell, error) {
	n, err := counts.Roll(rng)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	placed := make([]Cell, 0, min(n, pool.Len()))
	for i := 0; i < n; i++ {
		c, err := pool.Draw()
		if err != nil {
			return placed, fmt.Errorf("placing %d of %d: %w", i+1, n, err)
		}
		t, err := palette.Pick(rng)
		if err != nil {
			return placed, err
		}
		sp.Spawn(t, c, "")
		placed = append(placed, c)
	}
	return placed, nil
}
