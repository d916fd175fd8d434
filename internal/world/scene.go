package world

import (
	"sort"

	"github.com/samdwyer/roguelike/internal/motion"
)

// ContainerBoard is the parent container for floor and outer-wall tiles.
const ContainerBoard = "Board"

// InstanceID uniquely identifies an instance within a scene. Zero is never assigned.
type InstanceID uint64

// Instance is one instantiated template in the scene.
type Instance struct {
	ID       InstanceID
	Template Template
	Parent   string // Container the instance is grouped under ("" = scene root)
	Behavior any    // Component attached by the game (e.g., *entity.Wall)

	pos     motion.Vec2
	active  bool
	damaged bool
}

// Cell returns the cell the instance currently occupies.
func (i *Instance) Cell() Cell {
	return CellAt(i.pos)
}

// Position returns the instance's board-space position.
func (i *Instance) Position() motion.Vec2 {
	return i.pos
}

// SetPosition moves the instance.
func (i *Instance) SetPosition(p motion.Vec2) {
	i.pos = p
}

// Active returns false once the instance has been removed from play.
func (i *Instance) Active() bool {
	return i.active
}

// SetActive toggles whether the instance takes part in play.
func (i *Instance) SetActive(active bool) {
	i.active = active
}

// ShowDamaged switches the instance to its damaged visual.
func (i *Instance) ShowDamaged() {
	i.damaged = true
}

// Damaged reports whether the damaged visual is showing.
func (i *Instance) Damaged() bool {
	return i.damaged
}

// Glyph returns the character to display for the instance's current visual.
func (i *Instance) Glyph() rune {
	if i.damaged && i.Template.DamagedGlyph != 0 {
		return i.Template.DamagedGlyph
	}
	return i.Template.Glyph
}

// handle is what obstruction queries report for this instance.
func (i *Instance) handle() any {
	if i.Behavior != nil {
		return i.Behavior
	}
	return i
}

// Spawner instantiates templates at cells.
type Spawner interface {
	Spawn(t Template, at Cell, parent string) *Instance
}

// Scene holds every instance of the current level.
type Scene struct {
	nextID    InstanceID
	instances []*Instance
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{nextID: 1}
}

// Spawn instantiates t at the given cell under parent.
func (s *Scene) Spawn(t Template, at Cell, parent string) *Instance {
	inst := &Instance{
		Template: t,
		Parent:   parent,
		pos:      at.Vec(),
		active:   true,
	}
	s.adopt(inst)
	return inst
}

func (s *Scene) adopt(inst *Instance) {
	inst.ID = s.nextID
	s.nextID++
	s.instances = append(s.instances, inst)
}

// Reset destroys every instance. IDs keep increasing across resets.
func (s *Scene) Reset() {
	s.instances = nil
}

// Count returns the number of instances, active or not.
func (s *Scene) Count() int {
	return len(s.instances)
}

// Instances returns all instances in spawn order.
func (s *Scene) Instances() []*Instance {
	return s.instances
}

// Get returns the instance with the given ID, or nil.
func (s *Scene) Get(id InstanceID) *Instance {
	for _, inst := range s.instances {
		if inst.ID == id {
			return inst
		}
	}
	return nil
}

// OfKind returns all active instances of the given kind in spawn order.
func (s *Scene) OfKind(k Kind) []*Instance {
	var out []*Instance
	for _, inst := range s.instances {
		if inst.active && inst.Template.Kind == k {
			out = append(out, inst)
		}
	}
	return out
}

// At returns the active instances occupying c, topmost layer first.
func (s *Scene) At(c Cell) []*Instance {
	var out []*Instance
	for _, inst := range s.instances {
		if inst.active && inst.Cell() == c {
			out = append(out, inst)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Template.Kind.Layer() > out[b].Template.Kind.Layer()
	})
	return out
}

// Linecast walks the cells on the segment from -> to (excluding the origin
// cell) and reports the first active blocking instance other than self.
// The reported handle is the instance's Behavior when one is attached.
func (s *Scene) Linecast(from, to motion.Vec2, self any) (any, bool) {
	start, end := CellAt(from), CellAt(to)
	dx, dy := end.X-start.X, end.Y-start.Y
	steps := max(abs(dx), abs(dy))

	for i := 1; i <= steps; i++ {
		c := Cell{
			X: start.X + roundDiv(dx*i, steps),
			Y: start.Y + roundDiv(dy*i, steps),
		}
		for _, inst := range s.At(c) {
			if !inst.Template.Blocking() {
				continue
			}
			if inst == self || (inst.Behavior != nil && inst.Behavior == self) {
				continue
			}
			return inst.handle(), true
		}
	}
	return nil, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// roundDiv returns a/b rounded to the nearest integer, b > 0.
func roundDiv(a, b int) int {
	if a < 0 {
		return -((-a*2 + b) / (2 * b))
	}
	return (a*2 + b) / (2 * b)
}

// Batch records spawns without touching a scene until committed.
type Batch struct {
	pending []*Instance
}

// Spawn records an instance to be created on Commit.
func (b *Batch) Spawn(t Template, at Cell, parent string) *Instance {
	inst := &Instance{
		Template: t,
		Parent:   parent,
		pos:      at.Vec(),
		active:   true,
	}
	b.pending = append(b.pending, inst)
	return inst
}

// Len returns the number of recorded spawns.
func (b *Batch) Len() int {
	return len(b.pending)
}

// Commit adds every recorded instance to the scene in order and empties the batch.
func (b *Batch) Commit(s *Scene) {
	for _, inst := range b.pending {
		s.adopt(inst)
	}
	b.pending = nil
}

// Discard drops every recorded spawn.
func (b *Batch) Discard() {
	b.pending = nil
}
