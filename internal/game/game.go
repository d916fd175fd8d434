package game

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguelike/internal/gamedata"
	"github.com/samdwyer/roguelike/internal/ui"
)

// Game runs the interactive terminal loop around a session.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	launcher *Launcher
	session  *Session
	logger   *log.Logger
	running  bool
}

// New creates a new game instance and takes over the terminal.
// Logs must not go to the terminal while the game owns it; a nil logger discards them.
func New(cfg Config, registry *gamedata.TemplateRegistry, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		launcher: NewLauncher(cfg, registry, logger),
		logger:   logger,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	session, _, err := g.launcher.Open(ctx)
	if err != nil {
		return err
	}
	g.session = session

	quit := make(chan struct{})
	defer close(quit)
	events := g.screen.Events(quit)

	frame := session.Settings().FrameTime()
	ticker := time.NewTicker(time.Duration(frame * float64(time.Second)))
	defer ticker.Stop()

	last := time.Now()
	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if err := g.session.Tick(ctx, dt); err != nil {
				return err
			}
			g.render()
		}
	}
	return nil
}

func (g *Game) render() {
	s := g.session
	board := s.Settings().Board
	status := ui.Status{Level: s.Level(), Food: s.Food()}
	switch s.Phase() {
	case PhaseLevelComplete:
		status.Phase = "Day complete"
	case PhaseGameOver:
		status.Phase = "You starved. Press r to restart, q to quit"
	}
	g.renderer.Render(s.Scene(), board.Columns, board.Rows, status)
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input. Up is +y on the board.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'r', 'R':
			if g.session.Phase() == PhaseGameOver {
				return g.session.Restart(ctx)
			}
		}
	}
	return nil
}

// tryMove takes the player's turn; input outside the player's turn is dropped.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	if g.session.Phase() != PhasePlayerTurn {
		return
	}
	if _, err := g.session.MovePlayer(ctx, dx, dy); err != nil {
		g.logger.Debug("move rejected", "error", err)
	}
}
