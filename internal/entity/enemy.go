package entity

import (
	"github.com/samdwyer/roguelike/internal/motion"
	"github.com/samdwyer/roguelike/internal/world"
)

// EnemyStats holds the tunable enemy values.
type EnemyStats struct {
	Damage   int     // Food taken from the player per hit
	MoveTime float64 // Seconds per cell step
}

// Enemy chases the player, moving every other turn. Walking into the player
// attacks it.
type Enemy struct {
	body     motion.Body
	mover    *motion.Mover[Hurtable]
	skipMove bool
}

// NewEnemy creates an enemy moving body through obstructor.
func NewEnemy(body motion.Body, obstructor motion.Obstructor, stats EnemyStats) (*Enemy, error) {
	e := &Enemy{body: body}
	mover, err := motion.NewMover[Hurtable](body, obstructor, e, stats.MoveTime, func(h Hurtable) {
		h.LoseFood(stats.Damage)
	})
	if err != nil {
		return nil, err
	}
	e.mover = mover
	return e, nil
}

// Direction returns the step toward target: vertical when already in the
// target's column, horizontal otherwise.
func (e *Enemy) Direction(target world.Cell) (dx, dy int) {
	here := e.Cell()
	if here.X == target.X {
		if target.Y > here.Y {
			return 0, 1
		}
		return 0, -1
	}
	if target.X > here.X {
		return 1, 0
	}
	return -1, 0
}

// MoveToward takes the enemy's turn. Every other turn is skipped, reported
// by acted=false.
func (e *Enemy) MoveToward(target world.Cell) (out motion.Outcome, acted bool, err error) {
	if e.skipMove {
		e.skipMove = false
		return motion.Outcome{}, false, nil
	}

	dx, dy := e.Direction(target)
	out, err = e.mover.AttemptMove(dx, dy)
	if err != nil {
		return out, false, err
	}
	e.skipMove = true
	return out, true, nil
}

// Tick advances the move animation; returns true when the step completed.
func (e *Enemy) Tick(dt float64) bool {
	return e.mover.Tick(dt)
}

// Moving returns true while a step is animating.
func (e *Enemy) Moving() bool {
	return e.mover.Moving()
}

// Cell returns the cell the enemy occupies.
func (e *Enemy) Cell() world.Cell {
	return world.CellAt(e.body.Position())
}
