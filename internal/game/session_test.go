package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/roguelike/internal/config"
	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/world"
)

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhasePlayerTurn, "player_turn"},
		{PhasePlayerMoving, "player_moving"},
		{PhaseEnemyTurn, "enemy_turn"},
		{PhaseLevelComplete, "level_complete"},
		{PhaseGameOver, "game_over"},
		{Phase(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.phase.String()
		if got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
		}
	}
}

func testRegistry(t *testing.T) *gamedata.TemplateRegistry {
	t.Helper()
	registry, err := gamedata.LoadTemplateRegistry("")
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}
	return registry
}

// emptyBoard returns settings for a 3x3 board with nothing scattered.
// The only free interior cell is (1,1); the exit is at (2,2).
func emptyBoard() config.Settings {
	s := config.Default()
	s.Board.Columns = 3
	s.Board.Rows = 3
	s.Board.WallCount = world.Exactly(0)
	s.Board.FoodCount = world.Exactly(0)
	s.Session.StartLevel = 1
	s.Session.LevelDelay = 0.5
	return s
}

func openSession(t *testing.T, settings config.Settings) *Session {
	t.Helper()
	l := NewLauncher(Config{Seed: 42, Settings: settings}, testRegistry(t), nil)
	s, created, err := l.Open(context.Background())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if !created {
		t.Fatal("first Open() should create the session")
	}
	return s
}

// settle ticks the session until it waits for the player or the run ends.
func settle(t *testing.T, s *Session) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < 10000; i++ {
		switch s.Phase() {
		case PhasePlayerTurn, PhaseGameOver, PhaseLevelComplete:
			return
		}
		if err := s.Tick(ctx, 1.0/60); err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
	}
	t.Fatalf("session never settled, stuck in %s", s.Phase())
}

func step(t *testing.T, s *Session, dx, dy int) {
	t.Helper()
	if _, err := s.MovePlayer(context.Background(), dx, dy); err != nil {
		t.Fatalf("MovePlayer(%d,%d) failed: %v", dx, dy, err)
	}
	settle(t, s)
}

func TestLauncherKeepsFirstSession(t *testing.T) {
	l := NewLauncher(Config{Seed: 7, Settings: config.Default()}, testRegistry(t), nil)
	ctx := context.Background()

	if l.Session() != nil {
		t.Fatal("Session() before Open should be nil")
	}

	first, created, err := l.Open(ctx)
	if err != nil || !created {
		t.Fatalf("first Open() = created %v, err %v", created, err)
	}

	second, created, err := l.Open(ctx)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	if created {
		t.Error("second Open() should not create a session")
	}
	if second != first || l.Session() != first {
		t.Error("second Open() should return the first session")
	}
}

func TestOpenSetsUpStartingLevel(t *testing.T) {
	settings := config.Default()
	s := openSession(t, settings)

	if s.Level() != 3 {
		t.Errorf("Level() = %d, want 3", s.Level())
	}
	if s.Phase() != PhasePlayerTurn {
		t.Errorf("Phase() = %s, want player_turn", s.Phase())
	}
	// floor(log2(3)) = 1
	if len(s.Enemies()) != 1 {
		t.Errorf("Enemies() = %d, want 1", len(s.Enemies()))
	}
	if len(s.Walls()) != len(s.Layout().Walls) {
		t.Errorf("Walls() = %d, layout has %d", len(s.Walls()), len(s.Layout().Walls))
	}
	if s.Player().Cell() != (world.Cell{X: 0, Y: 0}) {
		t.Errorf("player starts at %+v, want (0,0)", s.Player().Cell())
	}
	if s.Food() != settings.Player.StartingFood {
		t.Errorf("Food() = %d, want %d", s.Food(), settings.Player.StartingFood)
	}
	for _, inst := range s.Scene().OfKind(world.KindWall) {
		if inst.Behavior == nil {
			t.Errorf("wall at %+v has no behavior", inst.Cell())
		}
	}
}

func TestOpenRejectsInvalidSettings(t *testing.T) {
	settings := config.Default()
	settings.Session.StartLevel = 0

	l := NewLauncher(Config{Seed: 1, Settings: settings}, testRegistry(t), nil)
	if _, _, err := l.Open(context.Background()); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Open() error = %v, want ErrInvalidConfig", err)
	}
	if l.Session() != nil {
		t.Error("failed Open() should not keep a session")
	}
}

func TestMovePlayerOutsideTurn(t *testing.T) {
	s := openSession(t, emptyBoard())
	ctx := context.Background()

	if _, err := s.MovePlayer(ctx, 1, 0); err != nil {
		t.Fatalf("MovePlayer() failed: %v", err)
	}
	if s.Phase() != PhasePlayerMoving {
		t.Fatalf("Phase() = %s, want player_moving", s.Phase())
	}
	if _, err := s.MovePlayer(ctx, 1, 0); !errors.Is(err, ErrNotPlayerTurn) {
		t.Errorf("MovePlayer() while moving error = %v, want ErrNotPlayerTurn", err)
	}
}

func TestReachingExitAdvancesLevel(t *testing.T) {
	settings := emptyBoard()
	s := openSession(t, settings)

	step(t, s, 1, 0)
	step(t, s, 1, 0)
	step(t, s, 0, 1)
	if s.Phase() != PhasePlayerTurn {
		t.Fatalf("Phase() = %s before the exit", s.Phase())
	}
	step(t, s, 0, 1)

	if s.Phase() != PhaseLevelComplete {
		t.Fatalf("Phase() = %s, want level_complete at %+v", s.Phase(), s.Player().Cell())
	}
	foodAtExit := s.Food()
	if foodAtExit != settings.Player.StartingFood-4 {
		t.Errorf("Food() = %d, want %d", foodAtExit, settings.Player.StartingFood-4)
	}

	ctx := context.Background()
	for s.Phase() == PhaseLevelComplete {
		if err := s.Tick(ctx, 0.1); err != nil {
			t.Fatalf("Tick() failed: %v", err)
		}
	}

	if s.Level() != 2 {
		t.Errorf("Level() = %d, want 2", s.Level())
	}
	if s.Food() != foodAtExit {
		t.Errorf("food not carried over: %d, want %d", s.Food(), foodAtExit)
	}
	if s.Player().Cell() != (world.Cell{X: 0, Y: 0}) {
		t.Errorf("player at %+v after advancing, want (0,0)", s.Player().Cell())
	}
	// Level 2 has one enemy, which can only go in the single free cell
	if len(s.Enemies()) != 1 || s.Enemies()[0].Cell() != (world.Cell{X: 1, Y: 1}) {
		t.Errorf("expected one enemy at (1,1), got %d", len(s.Enemies()))
	}
}

func TestPlayerEatsFood(t *testing.T) {
	settings := emptyBoard()
	settings.Board.FoodCount = world.Exactly(1)
	s := openSession(t, settings)

	step(t, s, 1, 0)
	step(t, s, 0, 1)

	if s.Player().Cell() != (world.Cell{X: 1, Y: 1}) {
		t.Fatalf("player at %+v, want (1,1)", s.Player().Cell())
	}
	base := settings.Player.StartingFood - 2
	if s.Food() != base+settings.Player.FoodPoints && s.Food() != base+settings.Player.SodaPoints {
		t.Errorf("Food() = %d, want food or soda bonus on top of %d", s.Food(), base)
	}
	for _, inst := range s.Scene().At(world.Cell{X: 1, Y: 1}) {
		if inst.Template.Kind == world.KindFood || inst.Template.Kind == world.KindSoda {
			t.Error("eaten item should be removed from play")
		}
	}
}

func TestEnemyAttackEndsRun(t *testing.T) {
	settings := emptyBoard()
	settings.Session.StartLevel = 2 // one enemy at (1,1)
	settings.Player.StartingFood = 12
	settings.Enemy.Damage = 10
	s := openSession(t, settings)

	// Step next to the enemy; its first turn closes in or attacks
	step(t, s, 1, 0)
	for i := 0; i < 4 && s.Phase() == PhasePlayerTurn; i++ {
		// Walking into the enemy is blocked silently but still costs food
		step(t, s, 0, 1)
	}

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %s with food %d, want game_over", s.Phase(), s.Food())
	}
	if s.Food() > 0 {
		t.Errorf("Food() = %d at game over", s.Food())
	}
}

func TestAdvanceLeavesPreviousLevelSlices(t *testing.T) {
	settings := emptyBoard()
	settings.Session.StartLevel = 2 // one enemy, on every level up to 3
	s := openSession(t, settings)

	before := s.Enemies()
	if len(before) != 1 {
		t.Fatalf("Enemies() = %d, want 1", len(before))
	}
	first := before[0]

	if err := s.Advance(context.Background()); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if len(s.Enemies()) != 1 || s.Enemies()[0] == first {
		t.Fatal("Advance() should create a fresh enemy")
	}
	if before[0] != first {
		t.Error("Advance() overwrote a slice returned for the previous level")
	}
}

func TestRestart(t *testing.T) {
	settings := emptyBoard()
	s := openSession(t, settings)
	ctx := context.Background()

	step(t, s, 1, 0)
	if err := s.Advance(ctx); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if s.Level() != 2 {
		t.Fatalf("Level() = %d, want 2", s.Level())
	}

	if err := s.Restart(ctx); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if s.Level() != settings.Session.StartLevel {
		t.Errorf("Level() = %d, want %d", s.Level(), settings.Session.StartLevel)
	}
	if s.Food() != settings.Player.StartingFood {
		t.Errorf("Food() = %d, want %d", s.Food(), settings.Player.StartingFood)
	}
	if s.Phase() != PhasePlayerTurn {
		t.Errorf("Phase() = %s, want player_turn", s.Phase())
	}
}
