// Package entity provides the walls, player and enemies that live on the board.
package entity

// Breakable is implemented by entities that take damage when walked into.
type Breakable interface {
	Damage(loss int)
}

// Hurtable is implemented by entities that lose food when attacked.
type Hurtable interface {
	LoseFood(loss int)
}

// View is the host-side representation of an entity.
// *world.Instance implements it.
type View interface {
	ShowDamaged()
	SetActive(active bool)
}
