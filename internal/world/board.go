package world

import "fmt"

// BuildBoard stamps a bordered columns × rows board: one instance for every
// cell in [-1, columns] × [-1, rows]. Border cells get an outer-wall template,
// all others a floor template, each picked uniformly. Every tile is parented
// under ContainerBoard. Returns the number of tiles created.
func BuildBoard(sp Spawner, rng Rand, columns, rows int, floor, outerWall Palette) (int, error) {
	if len(floor) == 0 {
		return 0, fmt.Errorf("floor tiles: %w", ErrEmptyPalette)
	}
	if len(outerWall) == 0 {
		return 0, fmt.Errorf("outer wall tiles: %w", ErrEmptyPalette)
	}

	bounds := BoardRect(columns, rows)
	created := 0
	for x := -1; x < columns+1; x++ {
		for y := -1; y < rows+1; y++ {
			c := Cell{X: x, Y: y}
			palette := floor
			if bounds.OnBorder(c) {
				palette = outerWall
			}
			t, err := palette.Pick(rng)
			if err != nil {
				return created, err
			}
			sp.Spawn(t, c, ContainerBoard)
			created++
		}
	}
	return created, nil
}
