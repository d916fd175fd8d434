package entity

// Wall is an inner wall that can be broken down.
type Wall struct {
	hp     int
	active bool
	view   View
}

// NewWall creates an active wall with the given hit points.
func NewWall(view View, hp int) *Wall {
	return &Wall{hp: hp, active: true, view: view}
}

// Damage switches the wall to its damaged visual and subtracts loss from its
// hit points. At zero or below the wall is removed from play. Hit points are
// not clamped.
func (w *Wall) Damage(loss int) {
	if !w.active {
		return
	}
	w.view.ShowDamaged()
	w.hp -= loss
	if w.hp <= 0 {
		w.active = false
		w.view.SetActive(false)
	}
}

// HP returns the remaining hit points.
func (w *Wall) HP() int { return w.hp }

// Active returns false once the wall has been destroyed.
func (w *Wall) Active() bool { return w.active }

// Ensure Wall implements Breakable
var _ Breakable = (*Wall)(nil)
