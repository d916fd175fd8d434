package motion

import (
	"errors"
	"fmt"
)

// epsilon is the squared distance below which a moving body snaps to its destination.
const epsilon = 1e-9

// ErrMoveInProgress is returned when a move is requested while one is still animating.
var ErrMoveInProgress = errors.New("motion: move already in progress")

// Body is anything with a position that a Mover can animate.
type Body interface {
	Position() Vec2
	SetPosition(p Vec2)
}

// Obstructor answers line obstruction queries on behalf of the host.
// Linecast reports the first blocking entity between from and to, ignoring self.
type Obstructor interface {
	Linecast(from, to Vec2, self any) (hit any, ok bool)
}

// State is a mover's position in the move state machine.
type State int

const (
	// StateIdle - ready to accept a move request
	StateIdle State = iota
	// StateProbing - checking the path to the destination
	StateProbing
	// StateMoving - animating toward the destination, advanced by Tick
	StateMoving
	// StateBlocked - the path was obstructed
	StateBlocked
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProbing:
		return "probing"
	case StateMoving:
		return "moving"
	case StateBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Outcome describes how a move attempt resolved.
type Outcome struct {
	Moved    bool // Destination was free and animation started
	Blocked  bool // Something was in the way
	Notified bool // The blocking entity exposed the expected capability and was notified
	Hit      any  // The blocking entity, if any
}

// Mover moves a Body one cell at a time. T is the capability the mover expects
// on whatever blocks it; OnCantMove is called with that view of the blocker.
// Mover never inspects concrete entity types.
type Mover[T any] struct {
	body            Body
	obstructor      Obstructor
	self            any
	inverseMoveTime float64
	onCantMove      func(T)

	state State
	end   Vec2
}

// NewMover creates a mover for body. moveTime is the duration of one cell step
// in seconds. self is the handle the obstructor should ignore (usually the owning entity).
func NewMover[T any](body Body, obstructor Obstructor, self any, moveTime float64, onCantMove func(T)) (*Mover[T], error) {
	if body == nil || obstructor == nil {
		return nil, errors.New("motion: body and obstructor are required")
	}
	if moveTime <= 0 {
		return nil, fmt.Errorf("motion: move time must be positive, got %v", moveTime)
	}
	return &Mover[T]{
		body:            body,
		obstructor:      obstructor,
		self:            self,
		inverseMoveTime: 1 / moveTime,
		onCantMove:      onCantMove,
		state:           StateIdle,
	}, nil
}

// State returns the current state.
func (m *Mover[T]) State() State {
	return m.state
}

// Moving returns true while an animation is in progress.
func (m *Mover[T]) Moving() bool {
	return m.state == StateMoving
}

// AttemptMove tries to move one step by (dx, dy).
//
// A free path starts the animation; call Tick until it reports completion.
// A blocked path leaves the position unchanged. If the blocker exposes T,
// OnCantMove fires exactly once; otherwise nothing happens at all.
func (m *Mover[T]) AttemptMove(dx, dy int) (Outcome, error) {
	if m.state == StateMoving {
		return Outcome{}, ErrMoveInProgress
	}

	m.state = StateProbing
	start := m.body.Position()
	end := start.Add(Vec2{X: float64(dx), Y: float64(dy)})

	hit, blocked := m.obstructor.Linecast(start, end, m.self)
	if !blocked {
		m.end = end
		m.state = StateMoving
		return Outcome{Moved: true}, nil
	}

	m.state = StateBlocked
	out := Outcome{Blocked: true, Hit: hit}
	// A blocker without the capability is ignored: no notification, no movement.
	if component, ok := hit.(T); ok && m.onCantMove != nil {
		m.onCantMove(component)
		out.Notified = true
	}
	m.state = StateIdle
	return out, nil
}

// Tick advances the animation by dt seconds and returns true when the
// destination was reached during this tick.
func (m *Mover[T]) Tick(dt float64) bool {
	if m.state != StateMoving {
		return false
	}

	pos := MoveTowards(m.body.Position(), m.end, m.inverseMoveTime*dt)
	if m.end.Sub(pos).SqrMagnitude() <= epsilon {
		m.body.SetPosition(m.end)
		m.state = StateIdle
		return true
	}
	m.body.SetPosition(pos)
	return false
}

// Finish runs the animation to completion using fixed steps of dt seconds and
// returns the number of ticks taken.
func (m *Mover[T]) Finish(dt float64) int {
	if dt <= 0 {
		dt = 1 / m.inverseMoveTime
	}
	ticks := 0
	for m.state == StateMoving {
		m.Tick(dt)
		ticks++
	}
	return ticks
}
