package desktop

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rabbit-run/internal/config"
	"github.com/vovakirdan/rabbit-run/internal/core"
	"github.com/vovakirdan/rabbit-run/internal/registry"
	"github.com/vovakirdan/rabbit-run/internal/storage"
)

// tunable games expose their tuning, and with it the world size.
type tunable interface {
	Config() config.RabbitConfig
	ApplyConfig(cfg config.RabbitConfig)
}

// Options are the collaborators of the desktop frontend. Every field is optional.
type Options struct {
	Store    *storage.Store
	Settings *SettingsStore
	Logger   *log.Logger
	Reloads  <-chan config.Reload

	// Audio replaces the synthesized sound, mainly for tests.
	Audio core.Audio
}

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game     registry.Game
	runtime  core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	recorder *storage.Recorder
	canvas   *ImageCanvas
	audio    core.Audio
	synth    *SynthAudio
	settings Settings
	worldW   int
	worldH   int
}

// NewApp resets game and prepares it for the window.
func NewApp(game registry.Game, cfg core.RuntimeConfig, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("game", game.ID(), "frontend", "desktop")

	settings, err := opts.Settings.Load()
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	// Reset first: games load their tuning, and with it the world size, there.
	game.Reset(cfg)
	logger.Info("run started", "seed", cfg.Seed)

	world := config.DefaultRabbitConfig().World
	if t, ok := game.(tunable); ok {
		world = t.Config().World
	}

	a := &App{
		game:     game,
		runtime:  cfg,
		opts:     opts,
		logger:   logger,
		recorder: storage.NewRecorder(opts.Store, game.ID(), logger),
		canvas:   &ImageCanvas{},
		audio:    core.NopAudio{},
		settings: settings,
		worldW:   world.Width,
		worldH:   world.Height,
	}
	if opts.Audio != nil {
		a.audio = opts.Audio
	}
	return a
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.drainReloads()
	if inpututil.IsKeyJustPressed(muteKey) {
		a.toggleMute()
	}
	return a.step(pollInput())
}

// step advances the game by one tick. It returns ebiten.Termination when
// the player leaves.
func (a *App) step(frame core.InputFrame) error {
	state := a.recorder.State()
	leaving := frame.Has(core.ActionQuit) ||
		(frame.Has(core.ActionBack) && (state.Ended() || state.Paused))
	if leaving {
		a.recorder.Quit()
		a.logger.Info("window closed by player")
		return ebiten.Termination
	}

	res := a.game.Step(frame)
	a.recorder.Observe(res)
	core.PlayEvents(a.audio, res.Events)
	return nil
}

// drainReloads queues every pending config change without blocking.
func (a *App) drainReloads() {
	for {
		select {
		case r, ok := <-a.opts.Reloads:
			if !ok {
				a.opts.Reloads = nil
				return
			}
			if r.Err != nil {
				a.logger.Warn("ignoring config change", "path", r.Path, "error", r.Err)
				continue
			}
			if t, ok := a.game.(tunable); ok {
				t.ApplyConfig(r.Config)
				a.logger.Info("config queued for next run", "path", r.Path)
			}
		default:
			return
		}
	}
}

func (a *App) toggleMute() {
	a.settings.Muted = !a.settings.Muted
	if a.synth != nil {
		a.synth.SetMuted(a.settings.Muted)
	}
	if err := a.opts.Settings.Save(a.settings); err != nil {
		a.logger.Warn("could not save settings", "error", err)
	}
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Target(screen)
	a.game.Draw(a.canvas)
	if a.settings.Muted {
		ebitenutil.DebugPrintAt(screen, "muted (M)", a.worldW-10*glyphW, 0)
	}
}

// Layout implements ebiten.Game. The logical screen is the world field.
func (a *App) Layout(_, _ int) (int, int) {
	return a.worldW, a.worldH
}

// State returns the last observed game state.
func (a *App) State() core.GameState {
	return a.recorder.State()
}

// Run opens a window and plays game until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	app := NewApp(game, cfg, opts)

	if opts.Audio == nil {
		ctx := audio.CurrentContext()
		if ctx == nil {
			ctx = audio.NewContext(SampleRate)
		}
		app.synth = NewSynthAudio(ctx, app.settings, app.logger)
		app.audio = app.synth
	}

	scale := app.settings.normalized().Scale
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(float64(app.worldW)*scale), int(float64(app.worldH)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	return ebiten.RunGame(app)
}
