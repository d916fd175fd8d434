package entity

import (
	"github.com/samdwyer/roguelike/internal/motion"
	"github.com/samdwyer/roguelike/internal/world"
)

// PlayerStats holds the tunable player values.
type PlayerStats struct {
	Food       int     // Starting food points
	WallDamage int     // Damage dealt to a wall when walking into it
	MoveTime   float64 // Seconds per cell step
}

// Player is the entity controlled by the user. Every move attempt costs one
// food point; walking into a wall chips at it.
type Player struct {
	body  motion.Body
	mover *motion.Mover[Breakable]
	food  int

	lastHit Breakable // Wall damaged by the last move attempt
}

// NewPlayer creates a player moving body through obstructor.
func NewPlayer(body motion.Body, obstructor motion.Obstructor, stats PlayerStats) (*Player, error) {
	p := &Player{body: body, food: stats.Food}
	mover, err := motion.NewMover[Breakable](body, obstructor, p, stats.MoveTime, func(b Breakable) {
		p.lastHit = b
		b.Damage(stats.WallDamage)
	})
	if err != nil {
		return nil, err
	}
	p.mover = mover
	return p, nil
}

// AttemptMove spends one food point and tries to step by (dx, dy).
func (p *Player) AttemptMove(dx, dy int) (motion.Outcome, error) {
	if p.mover.Moving() {
		return motion.Outcome{}, motion.ErrMoveInProgress
	}
	p.food--
	p.lastHit = nil
	return p.mover.AttemptMove(dx, dy)
}

// Tick advances the move animation; returns true when the step completed.
func (p *Player) Tick(dt float64) bool {
	return p.mover.Tick(dt)
}

// Moving returns true while a step is animating.
func (p *Player) Moving() bool {
	return p.mover.Moving()
}

// Cell returns the cell the player occupies.
func (p *Player) Cell() world.Cell {
	return world.CellAt(p.body.Position())
}

// LoseFood is called when an enemy attacks the player.
func (p *Player) LoseFood(loss int) {
	p.food -= loss
}

// Eat adds food points.
func (p *Player) Eat(points int) {
	p.food += points
}

// Food returns the current food points.
func (p *Player) Food() int { return p.food }

// Dead returns true once the player has run out of food.
func (p *Player) Dead() bool { return p.food <= 0 }

// LastHit returns the wall damaged by the last move attempt, or nil.
func (p *Player) LastHit() Breakable { return p.lastHit }

// Ensure Player implements Hurtable
var _ Hurtable = (*Player)(nil)
