// Package rabbit implements Rabbit Run, a side-scroller where a rabbit
// jumps over rocks, mushrooms and grass until a carrot shows up.
// One controller covers every variant; features are switched by flags.
package rabbit

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
)

// Features selects which parts of the game a variant runs.
type Features struct {
	Obstacles bool // spawn and collide with obstacles
	Goal      bool // carrot appears after enough clears
	Audio     bool // raise music and stinger events
	Reset     bool // Restart action leaves the end screen
	Birds     int  // decorative birds in the sky
}

// Variant is a named preset of the controller.
type Variant struct {
	ID       string
	Title    string
	Features Features
}

// Game is the top-level state machine: Playing, then Lost or Won.
type Game struct {
	variant Variant
	cfg     config.RabbitConfig
	pending *config.RabbitConfig // applied at the next (re)start
	loaded  bool

	runtime core.RuntimeConfig
	clock   core.Clock
	manual  *core.ManualClock // set when the game keeps its own frame clock

	player     *Player
	obstacles  *ObstacleSet
	background ScrollingBackground
	rabbitAnim Animator
	birdAnim   Animator
	birds      []Bird

	gameOver     bool
	gameWin      bool
	paused       bool
	musicStarted bool
	ticks        int // playing ticks in the current run
}

var (
	// configPath stores the custom config path set via CLI
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path used when a game starts.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets where tuning problems are reported.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// New creates a game for the given variant. Tuning is loaded on Reset
// unless ApplyConfig was called first.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Features returns the enabled feature set.
func (g *Game) Features() Features {
	return g.variant.Features
}

// ApplyConfig queues new tuning. It takes effect at the next reset so a
// run in progress never changes under the player.
func (g *Game) ApplyConfig(cfg config.RabbitConfig) {
	g.pending = &cfg
}

// Config returns the tuning of the current run.
func (g *Game) Config() config.RabbitConfig {
	return g.cfg
}

// Reset starts a fresh game instance.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.takeConfig()

	if runtime.Clock != nil {
		g.clock = runtime.Clock
		g.manual = nil
	} else {
		g.manual = &core.ManualClock{}
		g.clock = g.manual
	}
	now := g.clock.NowMillis()

	g.player = NewPlayer(g.cfg.Physics, g.cfg.Player)
	g.obstacles = NewObstacleSet(runtime.Seed, g.cfg, g.variant.Features.Goal, now)
	g.background = ScrollingBackground{Width: g.cfg.Background.Width}
	g.rabbitAnim = Animator{Frames: g.cfg.Animation.RabbitFrames, DelayMs: g.cfg.Animation.RabbitTickDelayMs}
	g.birdAnim = Animator{Frames: g.cfg.Animation.BirdFrames, DelayMs: g.cfg.Animation.BirdTickDelayMs}
	g.birds = newFlock(g.variant.Features.Birds, g.cfg.World.Width)

	g.gameOver = false
	g.gameWin = false
	g.paused = false
	g.musicStarted = false
	g.ticks = 0
}

// takeConfig picks the pending tuning, or loads it on first use.
func (g *Game) takeConfig() {
	switch {
	case g.pending != nil:
		g.cfg = *g.pending
		g.pending = nil
	case !g.loaded:
		g.cfg = loadConfig()
	}
	g.loaded = true
}

func loadConfig() config.RabbitConfig {
	cfg, path, err := config.Load(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logger.Warn("tuning unusable, using defaults", "path", path, "error", err)
		return config.DefaultRabbitConfig()
	}
	return cfg
}

// restart is the in-game reset action: rabbit, obstacles and flags go back
// to their initial values and the backdrop re-anchors at 0.
func (g *Game) restart(now uint64) {
	if g.pending != nil {
		g.takeConfig()
		g.player = NewPlayer(g.cfg.Physics, g.cfg.Player)
		g.obstacles.UpdateConfig(g.cfg)
		g.background.Width = g.cfg.Background.Width
		g.rabbitAnim = Animator{Frames: g.cfg.Animation.RabbitFrames, DelayMs: g.cfg.Animation.RabbitTickDelayMs}
		g.birdAnim = Animator{Frames: g.cfg.Animation.BirdFrames, DelayMs: g.cfg.Animation.BirdTickDelayMs}
	}

	g.player.Init()
	g.obstacles.Reset(now)
	g.gameOver = false
	g.gameWin = false
	g.background.SetX(0)
	g.rabbitAnim.Rewind()
	g.ticks = 0
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	if g.variant.Features.Audio && !g.musicStarted {
		g.musicStarted = true
		events = append(events, core.EventMusicStart)
	}

	ended := g.gameOver || g.gameWin
	if in.Has(core.ActionPause) && !ended {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	frame := g.runtime.FrameMillis()
	if g.manual != nil {
		g.manual.Advance(frame)
	}
	now := g.clock.NowMillis()

	if ended {
		if g.variant.Features.Reset && in.Has(core.ActionRestart) {
			g.restart(now)
			events = append(events, core.EventReset)
		}
		g.birdAnim.Tick(frame)
		return core.StepResult{State: g.State(), Events: events}
	}

	g.ticks++
	g.player.HandleInput(in.Has(core.ActionJump), false)
	g.player.Update(false)

	if g.variant.Features.Obstacles {
		switch g.obstacles.Update(now, g.player.Collider(), false) {
		case OutcomeLost:
			g.gameOver = true
			if g.variant.Features.Audio {
				events = append(events, core.EventLose)
			}
		case OutcomeWon:
			g.gameWin = true
			if g.variant.Features.Audio {
				events = append(events, core.EventWin)
			}
		}
	}

	g.background.Scroll(g.cfg.Background.Speed)
	if !g.player.Jumping {
		g.rabbitAnim.Tick(frame)
	}
	g.birdAnim.Tick(frame)
	fly(g.birds, g.cfg.World.Width)

	return core.StepResult{State: g.State(), Events: events}
}

// Draw paints the scene onto c in world coordinates.
func (g *Game) Draw(c core.Canvas) {
	w, h := g.cfg.World.Width, g.cfg.World.Height

	g.background.Draw(c, h)

	_, rabbitH := core.SpriteSize(core.SpriteRabbit)
	groundTop := int(g.cfg.Physics.GroundY) + rabbitH
	c.DrawRect(core.NewRect(0, groundTop, w, h-groundTop), core.SpriteGround)

	for _, b := range g.birds {
		frame := b.Phase + g.birdAnim.Frame
		if g.birdAnim.Frames > 0 {
			frame %= g.birdAnim.Frames
		}
		c.DrawSprite(b.X, b.Y, core.SpriteBird, frame)
	}

	for _, o := range g.obstacles.Obstacles() {
		c.DrawRect(o.Bounds(), o.Kind.Sprite())
	}
	if g.obstacles.Goal().Appeared {
		c.DrawRect(g.obstacles.GoalCollider(), core.SpriteCarrot)
	}

	x, y := g.player.SpritePos()
	c.DrawSprite(x, y, core.SpriteRabbit, g.rabbitAnim.Frame)

	if g.variant.Features.Obstacles {
		hud := fmt.Sprintf(" Cleared: %d ", g.obstacles.Cleared())
		if g.variant.Features.Goal && !g.obstacles.Goal().Appeared {
			hud = fmt.Sprintf(" Cleared: %d/%d ", g.obstacles.Cleared(), g.cfg.Goal.ClearCount)
		}
		c.DrawText(20, 0, hud)
	}

	switch {
	case g.gameOver:
		c.DrawOverlayText("YOU LOST!", g.endHint())
	case g.gameWin:
		c.DrawOverlayText("YOU WIN!", g.endHint())
	case g.paused:
		c.DrawOverlayText("PAUSED", "Press P to resume")
	}
}

func (g *Game) endHint() string {
	if g.variant.Features.Reset {
		return fmt.Sprintf("Cleared: %d  |  Press R to restart", g.obstacles.Cleared())
	}
	return fmt.Sprintf("Cleared: %d", g.obstacles.Cleared())
}

// Render draws the scene scaled into a terminal screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.Draw(core.NewScreenCanvas(dst, g.cfg.World.Width, g.cfg.World.Height))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.obstacles.Cleared(),
		GameOver: g.gameOver,
		Won:      g.gameWin,
		Paused:   g.paused,
	}
}

// Ticks returns how many frames the current run has been playing.
func (g *Game) Ticks() int {
	return g.ticks
}

// Player returns the rabbit.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the obstacle set.
func (g *Game) Obstacles() *ObstacleSet {
	return g.obstacles
}

// Background returns the scrolling backdrop.
func (g *Game) Background() ScrollingBackground {
	return g.background
}

// Birds returns the decorative flock.
func (g *Game) Birds() []Bird {
	return g.birds
}
