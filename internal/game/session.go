package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguelike/internal/config"
	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/motion"
	"github.com/samdwyer/roguelike/internal/telemetry"
	"github.com/samdwyer/roguelike/internal/world"
)

// ErrNotPlayerTurn is returned when the player tries to move outside their turn.
var ErrNotPlayerTurn = errors.New("game: not the player's turn")

// playerStart is where the player enters every level.
var playerStart = world.Cell{X: 0, Y: 0}

// Launcher constructs the game session. Only the first Open creates one;
// later calls discard the duplicate and hand back the first one.
type Launcher struct {
	cfg      Config
	registry *gamedata.TemplateRegistry
	logger   *log.Logger
	session  *Session
}

// NewLauncher creates a launcher. A nil logger discards output.
func NewLauncher(cfg Config, registry *gamedata.TemplateRegistry, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{cfg: cfg, registry: registry, logger: logger}
}

// Open returns the session, creating it and setting up the starting level on
// first use. created is false when an existing session was returned.
func (l *Launcher) Open(ctx context.Context) (s *Session, created bool, err error) {
	if l.session != nil {
		l.logger.Warn("duplicate session discarded", "session", l.session.ID())
		return l.session, false, nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.open")
	defer span.End()

	s, err = newSession(l.cfg, l.registry, l.logger)
	if err != nil {
		span.RecordError(err)
		return nil, false, err
	}
	span.SetAttributes(
		attribute.String("session.id", s.ID().String()),
		attribute.Int64("session.seed", s.seed),
		attribute.Int("session.start_level", s.level),
	)

	if err := s.setupLevel(ctx); err != nil {
		span.RecordError(err)
		return nil, false, err
	}

	l.session = s
	l.logger.Info("session started", "session", s.ID(), "seed", s.seed, "level", s.level)
	return s, true, nil
}

// Session returns the current session, or nil before the first Open.
func (l *Launcher) Session() *Session {
	return l.session
}

// Session owns the current level, the scene and everything on it.
type Session struct {
	id       uuid.UUID
	seed     int64
	settings config.Settings
	scene    *world.Scene
	director *world.Director
	playerT  world.Template
	logger   *log.Logger

	level  int
	food   int // Carried between levels
	phase  Phase
	layout *world.Layout

	player  *entity.Player
	enemies []*entity.Enemy
	walls   []*entity.Wall

	enemyTurn    int           // Next enemy to act
	movingEnemy  *entity.Enemy // Enemy whose step is animating
	levelElapsed float64       // Seconds since the exit was reached
}

func newSession(cfg Config, registry *gamedata.TemplateRegistry, logger *log.Logger) (*Session, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	palettes, err := registry.Palettes()
	if err != nil {
		return nil, err
	}
	playerT, err := registry.Player()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	scene := world.NewScene()
	director, err := world.NewDirector(cfg.Settings.LevelConfig(), palettes, rng, scene, logger)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:       uuid.New(),
		seed:     seed,
		settings: cfg.Settings,
		scene:    scene,
		director: director,
		playerT:  playerT,
		logger:   logger,
		level:    cfg.Settings.Session.StartLevel,
		food:     cfg.Settings.Player.StartingFood,
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Seed returns the seed used for level generation.
func (s *Session) Seed() int64 { return s.seed }

// Level returns the current level number.
func (s *Session) Level() int { return s.level }

// Phase returns the current turn phase.
func (s *Session) Phase() Phase { return s.phase }

// Scene returns the scene of the current level.
func (s *Session) Scene() *world.Scene { return s.scene }

// Layout returns what the current level's setup placed.
func (s *Session) Layout() *world.Layout { return s.layout }

// Player returns the player entity.
func (s *Session) Player() *entity.Player { return s.player }

// Enemies returns the enemies of the current level.
func (s *Session) Enemies() []*entity.Enemy { return s.enemies }

// Walls returns the inner walls of the current level.
func (s *Session) Walls() []*entity.Wall { return s.walls }

// Settings returns the session's settings.
func (s *Session) Settings() config.Settings { return s.settings }

// Food returns the player's food points.
func (s *Session) Food() int {
	if s.player != nil {
		return s.player.Food()
	}
	return s.food
}

// Advance moves on to the next level, carrying the player's food over.
func (s *Session) Advance(ctx context.Context) error {
	s.food = s.Food()
	s.level++
	return s.setupLevel(ctx)
}

// Restart begins a new run from the starting level with fresh food.
func (s *Session) Restart(ctx context.Context) error {
	s.level = s.settings.Session.StartLevel
	s.food = s.settings.Player.StartingFood
	return s.setupLevel(ctx)
}

// setupLevel rebuilds the scene for the current level and attaches behaviors.
func (s *Session) setupLevel(ctx context.Context) error {
	layout, err := s.director.SetupLevel(ctx, s.level)
	if err != nil {
		return err
	}
	s.layout = layout
	s.walls = nil
	s.enemies = nil
	s.movingEnemy = nil
	s.enemyTurn = 0
	s.levelElapsed = 0

	for _, inst := range s.scene.OfKind(world.KindWall) {
		w := entity.NewWall(inst, s.settings.Wall.HP)
		inst.Behavior = w
		s.walls = append(s.walls, w)
	}

	enemyStats := entity.EnemyStats{
		Damage:   s.settings.Enemy.Damage,
		MoveTime: s.settings.Enemy.MoveTime,
	}
	for _, inst := range s.scene.OfKind(world.KindEnemy) {
		e, err := entity.NewEnemy(inst, s.scene, enemyStats)
		if err != nil {
			return fmt.Errorf("enemy at %+v: %w", inst.Cell(), err)
		}
		inst.Behavior = e
		s.enemies = append(s.enemies, e)
	}

	inst := s.scene.Spawn(s.playerT, playerStart, "")
	player, err := entity.NewPlayer(inst, s.scene, entity.PlayerStats{
		Food:       s.food,
		WallDamage: s.settings.Player.WallDamage,
		MoveTime:   s.settings.Player.MoveTime,
	})
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	inst.Behavior = player
	s.player = player
	s.phase = PhasePlayerTurn

	s.logger.Debug("level populated", "level", s.level, "walls", len(s.walls), "enemies", len(s.enemies))
	return nil
}

// MovePlayer takes the player's turn in direction (dx, dy).
func (s *Session) MovePlayer(ctx context.Context, dx, dy int) (motion.Outcome, error) {
	if s.phase != PhasePlayerTurn {
		return motion.Outcome{}, ErrNotPlayerTurn
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.move")
	defer span.End()

	out, err := s.player.AttemptMove(dx, dy)
	if err != nil {
		span.RecordError(err)
		return out, err
	}
	span.SetAttributes(
		attribute.Int("dx", dx),
		attribute.Int("dy", dy),
		attribute.Bool("moved", out.Moved),
		attribute.Bool("blocked", out.Blocked),
		attribute.Bool("notified", out.Notified),
		attribute.Int("food", s.player.Food()),
	)

	switch {
	case s.player.Dead():
		s.gameOver()
	case out.Moved:
		s.phase = PhasePlayerMoving
	default:
		s.beginEnemyTurn()
	}
	return out, nil
}

// Tick advances animations and pending phase changes by dt seconds.
func (s *Session) Tick(ctx context.Context, dt float64) error {
	switch s.phase {
	case PhasePlayerMoving:
		if s.player.Tick(dt) {
			s.arrive()
		}
	case PhaseEnemyTurn:
		if s.movingEnemy != nil {
			if !s.movingEnemy.Tick(dt) {
				return nil
			}
			s.movingEnemy = nil
		}
		s.stepEnemies()
	case PhaseLevelComplete:
		s.levelElapsed += dt
		if s.levelElapsed >= s.settings.Session.LevelDelay {
			return s.Advance(ctx)
		}
	}
	return nil
}

// arrive resolves what the player stepped onto.
func (s *Session) arrive() {
	for _, inst := range s.scene.At(s.player.Cell()) {
		switch inst.Template.Kind {
		case world.KindFood:
			s.player.Eat(s.settings.Player.FoodPoints)
			inst.SetActive(false)
		case world.KindSoda:
			s.player.Eat(s.settings.Player.SodaPoints)
			inst.SetActive(false)
		case world.KindExit:
			s.phase = PhaseLevelComplete
			s.levelElapsed = 0
			s.logger.Info("level complete", "level", s.level, "food", s.player.Food())
			return
		}
	}
	s.beginEnemyTurn()
}

func (s *Session) beginEnemyTurn() {
	s.phase = PhaseEnemyTurn
	s.enemyTurn = 0
	s.movingEnemy = nil
	s.stepEnemies()
}

// stepEnemies lets enemies act in order until one starts moving or all have acted.
func (s *Session) stepEnemies() {
	for s.enemyTurn < len(s.enemies) {
		e := s.enemies[s.enemyTurn]
		s.enemyTurn++

		out, _, err := e.MoveToward(s.player.Cell())
		if err != nil {
			s.logger.Error("enemy move failed", "error", err)
			continue
		}
		if out.Moved {
			s.movingEnemy = e
			return
		}
	}

	if s.player.Dead() {
		s.gameOver()
		return
	}
	s.phase = PhasePlayerTurn
}

func (s *Session) gameOver() {
	s.phase = PhaseGameOver
	s.logger.Info("game over", "level", s.level)
}
