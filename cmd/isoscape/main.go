package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/isoscape/audio"
	"github.com/lixenwraith/isoscape/config"
	"github.com/lixenwraith/isoscape/overlay"
	"github.com/lixenwraith/isoscape/render"
	"github.com/lixenwraith/isoscape/scene"
	"github.com/lixenwraith/isoscape/status"
	"github.com/lixenwraith/isoscape/world"
)

// defaultLogFile receives debug logs when the config names no file
const defaultLogFile = "isoscape.log"

var (
	configPath = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging and the frame counter bar")
)

func main() {
	flag.Parse()
	if err := run(*configPath, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "isoscape: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath string, debugMode bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Logging, debugMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	term, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer term.Fini()

	// Restore the terminal before printing a crash so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			term.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mISOSCAPE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	graph := scene.NewGraph(term, scene.NewCamera(cfg.Camera.Zoom), cfg.Camera.MaxNodes, log.Named("scene"))
	doc := overlay.NewDocument(cfg.Overlay.CellWidthPx, cfg.Overlay.CellHeightPx, log.Named("overlay"))
	graph.AddPainter(doc)
	screen := render.NewScreen(graph, doc, cfg.Screen.Width, cfg.Screen.Height, log.Named("screen"))

	var sounds world.Sounds
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume, log.Named("audio"))
		if err := sm.Initialize(); err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := world.New(cfg.World, screen, sounds, rand.New(rand.NewSource(seed)), log.Named("world"))

	var registry *status.Registry
	if debugMode {
		registry = status.NewRegistry()
		screen.Add(world.NewDebugDisplay(registry))
	}

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				term.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		pollEvents(term, events, done)
	}()

	ticker := time.NewTicker(cfg.FrameInterval())
	defer ticker.Stop()
	last := time.Now()

	log.Info("started", zap.Int64("seed", seed), zap.Duration("frame", cfg.FrameInterval()))
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				if k, ok := keyFor(ev); ok {
					game.HandleKey(k)
				}
			case *tcell.EventResize:
				term.Sync()
			}

		case now := <-ticker.C:
			game.Update(now.Sub(last))
			last = now

			// A failed frame halts the loop; nothing reschedules it
			if err := screen.Render(); err != nil {
				log.Error("frame loop halted", zap.Error(err))
				return err
			}
			if registry != nil {
				publish(registry, screen, graph.Len())
			}
		}
	}
}

// newLogger builds the zap logger; logs go to a file since the terminal is owned by the game
// Without -debug and a configured file the logger is a no-op
func newLogger(cfg config.LoggingConfig, debugMode bool) (*zap.Logger, error) {
	if !debugMode && cfg.File == "" {
		return zap.NewNop(), nil
	}
	path := cfg.File
	if path == "" {
		path = defaultLogFile
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	if debugMode {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	return zapCfg.Build()
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// pollEvents forwards terminal events until the source closes or done is closed
func pollEvents(src interface{ PollEvent() tcell.Event }, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// keyFor maps terminal keys to game input
func keyFor(ev *tcell.EventKey) (world.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return world.KeyMenu, true
	case tcell.KeyEscape:
		return world.KeyMenuClose, true
	case tcell.KeyUp:
		return world.KeyMenuUp, true
	case tcell.KeyDown:
		return world.KeyMenuDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			return world.KeyUp, true
		case 's':
			return world.KeyDown, true
		case 'a':
			return world.KeyLeft, true
		case 'd':
			return world.KeyRight, true
		case ' ':
			return world.KeyPickUp, true
		}
	}
	return 0, false
}

// publish copies the last frame counters into the debug registry
func publish(r *status.Registry, screen *render.Screen, nodes int) {
	st := screen.Stats()
	r.Ints.Get("frame").Store(int64(st.Frame))
	r.Ints.Get("drawn").Store(int64(st.Drawn))
	r.Ints.Get("meshes").Store(int64(screen.Meshes().Len()))
	r.Ints.Get("elements").Store(int64(screen.Elements().Len()))
	r.Ints.Get("evicted").Add(int64(st.Meshes.Evicted + st.Elements.Evicted))
	r.Ints.Get("nodes").Store(int64(nodes))
}
