package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonwalk/internal/config"
	"github.com/samdwyer/dungeonwalk/internal/entity"
	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/ui"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

// Window is the display the game draws to and reads keys from.
// ui.Screen is the terminal implementation.
type Window interface {
	Blit(buf *ui.Buffer)
	Flush()
	WaitForKeypress() (ui.Key, bool)
	SetFullscreen(on bool) bool
	IsFullscreen() bool
	Closed() bool
	Close()
	Size() (width, height int)
}

// Game owns the window, the off-screen buffer and the current state.
type Game struct {
	window  Window
	buffer  *ui.Buffer
	state   GameState
	palette config.Palette
	viKeys  bool
	loop    LoopState
	logger  *log.Logger
	moves   int
}

// New builds the configured map and places the player on it.
func New(ctx context.Context, cfg config.Config, window Window, logger *log.Logger) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}

	layouts, err := gamedata.LoadLayoutRegistry()
	if err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}
	layout, err := layouts.Get(cfg.Map.Layout)
	if err != nil {
		return nil, err
	}

	m, err := world.Build(ctx, cfg.Map.Width, cfg.Map.Height, layout)
	if err != nil {
		return nil, fmt.Errorf("build map: %w", err)
	}

	startX, startY, err := world.SpawnPoint(m, layout)
	if err != nil {
		return nil, fmt.Errorf("place player: %w", err)
	}
	player := entity.New(startX, startY, cfg.Player.GlyphRune(), palette.Player)

	span.SetAttributes(
		attribute.String("map.layout", layout.ID),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)
	logger.Info("map built", "layout", layout.ID, "width", m.Width, "height", m.Height, "rooms", len(m.Rooms))

	width, height := window.Size()

	return &Game{
		window:  window,
		buffer:  ui.NewBuffer(width, height),
		state:   NewState(player, []entity.Object{}, m),
		palette: palette,
		viKeys:  cfg.Input.ViKeys,
		loop:    LoopRunning,
		logger:  logger,
	}, nil
}

// Run executes the main game loop until Escape is pressed or the window closes.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	x, y := g.state.Player.Position()
	g.logger.Info("game started", "x", x, "y", y)

	for g.loop == LoopRunning {
		if g.window.Closed() {
			g.loop = LoopExiting
			break
		}

		g.state.Render(g.buffer, g.palette)
		g.window.Blit(g.buffer)
		g.window.Flush()
		g.state.Clear(g.buffer)

		// Blocks until a key arrives
		key, ok := g.window.WaitForKeypress()
		if !ok {
			g.logger.Info("window closed")
			g.loop = LoopExiting
			break
		}
		g.dispatch(ctx, Translate(key, g.viKeys))
	}

	span.SetAttributes(attribute.Int("player.moves", g.moves))
	g.logger.Info("game over", "moves", g.moves)

	g.window.Close()
	return nil
}

// dispatch applies one translated command.
func (g *Game) dispatch(ctx context.Context, cmd Command) {
	switch {
	case cmd.IsMove():
		g.tryMove(ctx, cmd)
	case cmd == CommandFullScreen:
		on := g.window.SetFullscreen(!g.window.IsFullscreen())
		g.logger.Info("fullscreen toggled", "on", on)
	case cmd == CommandExit:
		g.loop = LoopExiting
	}
}

// tryMove replaces the state if the player can step in the command's direction.
func (g *Game) tryMove(ctx context.Context, cmd Command) {
	moved := HandleInput(cmd, g.state.Player, g.state.Map)
	if moved == g.state.Player {
		g.logger.Debug("move blocked", "command", cmd, "x", moved.X, "y", moved.Y)
		return
	}

	g.state = g.state.WithPlayer(moved)
	g.moves++

	trace.SpanFromContext(ctx).AddEvent("player.move", trace.WithAttributes(
		attribute.String("command", cmd.String()),
		attribute.Int("x", moved.X),
		attribute.Int("y", moved.Y),
	))
}

// State returns the current game state.
func (g *Game) State() GameState {
	return g.state
}

// Loop returns whether the main loop is running or exiting.
func (g *Game) Loop() LoopState {
	return g.loop
}

// Buffer returns the off-screen buffer the game renders into.
func (g *Game) Buffer() *ui.Buffer {
	return g.buffer
}
