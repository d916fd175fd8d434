package entity

import (
	"testing"

	"github.com/samdwyer/roguelike/internal/motion"
	"github.com/samdwyer/roguelike/internal/world"
)

type fakeView struct {
	damaged bool
	active  bool
}

func (v *fakeView) ShowDamaged()          { v.damaged = true }
func (v *fakeView) SetActive(active bool) { v.active = active }

func TestWallDestroyedInOneHit(t *testing.T) {
	view := &fakeView{active: true}
	w := NewWall(view, 4)

	w.Damage(4)

	if w.Active() || view.active {
		t.Error("wall with 4 hp should be deactivated by 4 damage")
	}
	if !view.damaged {
		t.Error("wall should show its damaged visual")
	}
}

func TestWallWearsDown(t *testing.T) {
	view := &fakeView{active: true}
	w := NewWall(view, 4)

	for i := 0; i < 3; i++ {
		w.Damage(1)
	}
	if !w.Active() || !view.active {
		t.Fatal("wall should survive three hits of 1")
	}
	if w.HP() != 1 {
		t.Errorf("HP() = %d, want 1", w.HP())
	}
	if !view.damaged {
		t.Error("damaged visual should show after the first hit")
	}

	w.Damage(1)
	if w.Active() || view.active {
		t.Error("fourth hit should deactivate the wall")
	}
}

func TestWallOverkillNotClamped(t *testing.T) {
	w := NewWall(&fakeView{active: true}, 2)
	w.Damage(5)
	if w.HP() != -3 {
		t.Errorf("HP() = %d, want -3", w.HP())
	}
}

// board builds a scene with the player at (1,1) and returns its pieces.
func board(t *testing.T) (*world.Scene, *world.Instance, *Player) {
	t.Helper()
	scene := world.NewScene()
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			scene.Spawn(world.Template{Kind: world.KindFloor}, world.Cell{X: x, Y: y}, world.ContainerBoard)
		}
	}
	inst := scene.Spawn(world.Template{Kind: world.KindPlayer}, world.Cell{X: 1, Y: 1}, "")
	p, err := NewPlayer(inst, scene, PlayerStats{Food: 10, WallDamage: 1, MoveTime: 0.1})
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	inst.Behavior = p
	return scene, inst, p
}

func TestPlayerMovesAndSpendsFood(t *testing.T) {
	_, inst, p := board(t)

	out, err := p.AttemptMove(1, 0)
	if err != nil {
		t.Fatalf("AttemptMove() failed: %v", err)
	}
	if !out.Moved {
		t.Fatalf("AttemptMove() = %+v, want moved", out)
	}
	for !p.Tick(1.0 / 60) {
	}

	if inst.Cell() != (world.Cell{X: 2, Y: 1}) {
		t.Errorf("player at %+v, want (2,1)", inst.Cell())
	}
	if inst.Position() != (motion.Vec2{X: 2, Y: 1}) {
		t.Errorf("player position %+v not snapped to cell", inst.Position())
	}
	if p.Food() != 9 {
		t.Errorf("Food() = %d, want 9", p.Food())
	}
}

func TestPlayerDamagesWall(t *testing.T) {
	scene, inst, p := board(t)
	wallInst := scene.Spawn(world.Template{Kind: world.KindWall}, world.Cell{X: 1, Y: 2}, "")
	wall := NewWall(wallInst, 2)
	wallInst.Behavior = wall

	for i := 0; i < 2; i++ {
		out, err := p.AttemptMove(0, 1)
		if err != nil {
			t.Fatalf("AttemptMove() failed: %v", err)
		}
		if !out.Blocked || !out.Notified {
			t.Fatalf("hit %d: AttemptMove() = %+v, want blocked and notified", i, out)
		}
		if p.LastHit() != wall {
			t.Errorf("hit %d: LastHit() is not the wall", i)
		}
	}

	if wall.Active() || wallInst.Active() {
		t.Error("wall should be destroyed after two hits")
	}
	if inst.Cell() != (world.Cell{X: 1, Y: 1}) {
		t.Errorf("player moved to %+v while blocked", inst.Cell())
	}

	// The rubble no longer blocks
	out, err := p.AttemptMove(0, 1)
	if err != nil {
		t.Fatalf("AttemptMove() failed: %v", err)
	}
	if !out.Moved {
		t.Errorf("AttemptMove() through destroyed wall = %+v, want moved", out)
	}
}

func TestPlayerBlockedByEnemyIsSilent(t *testing.T) {
	scene, inst, p := board(t)
	enemyInst := scene.Spawn(world.Template{Kind: world.KindEnemy}, world.Cell{X: 0, Y: 1}, "")
	e, err := NewEnemy(enemyInst, scene, EnemyStats{Damage: 5, MoveTime: 0.1})
	if err != nil {
		t.Fatalf("NewEnemy() failed: %v", err)
	}
	enemyInst.Behavior = e

	out, err := p.AttemptMove(-1, 0)
	if err != nil {
		t.Fatalf("AttemptMove() failed: %v", err)
	}
	if !out.Blocked || out.Notified {
		t.Errorf("AttemptMove() into enemy = %+v, want blocked without notification", out)
	}
	if inst.Cell() != (world.Cell{X: 1, Y: 1}) {
		t.Errorf("player moved to %+v", inst.Cell())
	}
}

func TestPlayerFood(t *testing.T) {
	_, _, p := board(t)
	p.Eat(10)
	if p.Food() != 20 {
		t.Errorf("Food() = %d, want 20", p.Food())
	}
	p.LoseFood(20)
	if !p.Dead() {
		t.Error("player with 0 food should be dead")
	}
}

func TestEnemyDirection(t *testing.T) {
	scene := world.NewScene()
	inst := scene.Spawn(world.Template{Kind: world.KindEnemy}, world.Cell{X: 3, Y: 3}, "")
	e, err := NewEnemy(inst, scene, EnemyStats{Damage: 5, MoveTime: 0.1})
	if err != nil {
		t.Fatalf("NewEnemy() failed: %v", err)
	}

	tests := []struct {
		target world.Cell
		dx, dy int
	}{
		{world.Cell{X: 3, Y: 7}, 0, 1},
		{world.Cell{X: 3, Y: 0}, 0, -1},
		{world.Cell{X: 6, Y: 0}, 1, 0},
		{world.Cell{X: 0, Y: 5}, -1, 0},
	}
	for _, tt := range tests {
		dx, dy := e.Direction(tt.target)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("Direction(%+v) = (%d,%d), want (%d,%d)", tt.target, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestEnemyAttacksEveryOtherTurn(t *testing.T) {
	scene, playerInst, p := board(t)
	enemyInst := scene.Spawn(world.Template{Kind: world.KindEnemy}, world.Cell{X: 2, Y: 1}, "")
	e, err := NewEnemy(enemyInst, scene, EnemyStats{Damage: 3, MoveTime: 0.1})
	if err != nil {
		t.Fatalf("NewEnemy() failed: %v", err)
	}
	enemyInst.Behavior = e
	target := playerInst.Cell()

	out, acted, err := e.MoveToward(target)
	if err != nil {
		t.Fatalf("MoveToward() failed: %v", err)
	}
	if !acted || !out.Notified {
		t.Fatalf("first turn = %+v acted=%v, want an attack", out, acted)
	}
	if p.Food() != 7 {
		t.Errorf("Food() = %d, want 7", p.Food())
	}

	_, acted, err = e.MoveToward(target)
	if err != nil {
		t.Fatalf("MoveToward() failed: %v", err)
	}
	if acted {
		t.Error("second turn should be skipped")
	}

	_, acted, _ = e.MoveToward(target)
	if !acted || p.Food() != 4 {
		t.Errorf("third turn acted=%v food=%d, want attack leaving 4", acted, p.Food())
	}
	if enemyInst.Cell() != (world.Cell{X: 2, Y: 1}) {
		t.Errorf("enemy moved to %+v while attacking", enemyInst.Cell())
	}
}

func TestEnemyChases(t *testing.T) {
	scene := world.NewScene()
	inst := scene.Spawn(world.Template{Kind: world.KindEnemy}, world.Cell{X: 5, Y: 1}, "")
	e, err := NewEnemy(inst, scene, EnemyStats{Damage: 1, MoveTime: 0.1})
	if err != nil {
		t.Fatalf("NewEnemy() failed: %v", err)
	}
	inst.Behavior = e

	out, acted, err := e.MoveToward(world.Cell{X: 1, Y: 1})
	if err != nil || !acted || !out.Moved {
		t.Fatalf("MoveToward() = %+v acted=%v err=%v, want a move", out, acted, err)
	}
	if !e.Moving() {
		t.Fatal("enemy should be animating")
	}
	for !e.Tick(0.05) {
	}
	if e.Cell() != (world.Cell{X: 4, Y: 1}) {
		t.Errorf("enemy at %+v, want (4,1)", e.Cell())
	}
}
