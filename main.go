package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"tiltmaze/pkg/engine/terminal"
	"tiltmaze/pkg/game/devtools"
	"tiltmaze/pkg/game/difficulty"
	"tiltmaze/pkg/game/gameplay"
	"tiltmaze/pkg/game/progress"
	"tiltmaze/pkg/game/renderer"
	ebitenrenderer "tiltmaze/pkg/game/renderer/ebiten"
	"tiltmaze/pkg/game/renderer/tui"
	"tiltmaze/pkg/game/setup"
	"tiltmaze/pkg/game/state"
)

type options struct {
	level         int
	seed          int64
	renderer      string
	tuning        string
	dumpTuning    bool
	progress      string
	clearProgress bool
	locales       string
	lang          string
	logFile       string
	verbose       bool
	autoAdvance   time.Duration
	sweep         int
	format        string
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.level, "level", 0, "starting level (0 continues from the highest level reached)")
	flag.Int64Var(&o.seed, "seed", 0, "seed of the first level (0 picks one from the clock)")
	flag.StringVar(&o.renderer, "renderer", "ebiten", "front end: ebiten, tui or dump")
	flag.StringVar(&o.tuning, "tuning", "", "difficulty tuning YAML file")
	flag.BoolVar(&o.dumpTuning, "dump-tuning", false, "print the effective tuning as YAML and exit")
	flag.StringVar(&o.progress, "progress", defaultProgressPath(), "progress file (empty keeps progress in memory)")
	flag.BoolVar(&o.clearProgress, "clear-progress", false, "delete saved progress before starting")
	flag.StringVar(&o.locales, "locales", "locales", "directory holding <lang>/LC_MESSAGES/default.po")
	flag.StringVar(&o.lang, "lang", "en_GB", "message catalog language")
	flag.StringVar(&o.logFile, "log", "", "write logs to this file instead of stderr")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.DurationVar(&o.autoAdvance, "auto-advance", gameplay.DefaultAutoAdvance, "delay before the next level after a win (0 waits for a key)")
	flag.IntVar(&o.sweep, "sweep", 0, "dump mode: verify levels 1..N over a few seeds instead of dumping one")
	flag.StringVar(&o.format, "format", "text", "dump mode output: text or html")
	flag.Parse()
	return o
}

func defaultProgressPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tiltmaze", "progress.yaml")
}

func initLogging(o options) (io.Closer, error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if o.verbose {
		log.SetLevel(log.DebugLevel)
	}

	switch {
	case o.logFile != "":
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	case o.renderer == "tui":
		// stderr shares the screen with the board
		log.SetOutput(io.Discard)
	}
	return nil, nil
}

func initGettext(o options) {
	gotext.Configure(o.locales, o.lang, "default")
}

func loadTuning(path string) (difficulty.Tuning, error) {
	if path == "" {
		return difficulty.Default(), nil
	}
	return difficulty.LoadTuning(path)
}

func main() {
	o := parseFlags()

	closer, err := initLogging(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if closer != nil {
		defer closer.Close()
	}
	initGettext(o)

	if err := run(o); err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		if closer != nil {
			closer.Close()
		}
		os.Exit(1)
	}
}

func run(o options) error {
	tuning, err := loadTuning(o.tuning)
	if err != nil {
		return err
	}
	if o.dumpTuning {
		return difficulty.WriteTuning(os.Stdout, tuning)
	}

	store, err := progress.Open(o.progress)
	if err != nil {
		log.Warnf("Progress unavailable, starting fresh: %v", err)
	}
	if o.clearProgress {
		if err := store.Clear(); err != nil {
			log.Warnf("Could not clear progress: %v", err)
		}
	}

	startLevel := o.level
	if startLevel <= 0 {
		startLevel = continueLevel(store)
	}

	opts := gameplay.Options{
		StartLevel:  startLevel,
		Seed:        o.seed,
		Tuning:      tuning,
		AutoAdvance: o.autoAdvance,
		Listeners:   []state.Listener{gameplay.LogListener{}, store},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch o.renderer {
	case "ebiten":
		r := ebitenrenderer.New()
		r.Records = store
		opts.Viewport = ebitenrenderer.DefaultViewport()
		return play(ctx, r, opts)
	case "tui":
		if !terminal.IsTerminal() {
			return fmt.Errorf("tui renderer needs an interactive terminal")
		}
		r := tui.New()
		r.Records = store
		opts.Viewport = tui.Viewport
		return play(ctx, r, opts)
	case "dump":
		return dump(o, tuning, opts)
	}
	return fmt.Errorf("unknown renderer %q", o.renderer)
}

// continueLevel is the level after the highest one completed, or level 1
// for a fresh record
func continueLevel(store *progress.Store) int {
	highest := store.HighestLevel()
	if _, ok := store.Last(highest); ok {
		return highest + 1
	}
	return highest
}

func play(ctx context.Context, r renderer.Renderer, opts gameplay.Options) error {
	renderer.SetRenderer(r)
	renderer.Init()

	g := gameplay.NewGame(opts)
	if err := r.Run(ctx, g); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	log.WithFields(log.Fields{
		"level":   g.Level,
		"elapsed": g.Elapsed,
	}).Info("Game closed")
	return nil
}

// dump prints one level (or verifies a range) without opening a window
func dump(o options, tuning difficulty.Tuning, opts gameplay.Options) error {
	vp := tui.Viewport
	if o.sweep > 0 {
		failures, checked := devtools.Sweep(setup.NewBuilder(tuning), 1, o.sweep, []int64{1, 2, 3, 4, 5}, vp)
		fmt.Printf("verified %d level instances, %d failed\n", checked, len(failures))
		for _, f := range failures {
			fmt.Printf("  level %d seed %d: %v\n", f.Level, f.Seed, f.Err)
		}
		if len(failures) > 0 {
			return fmt.Errorf("%d level instances failed verification", len(failures))
		}
		return nil
	}

	opts.Viewport = vp
	g := gameplay.NewGame(opts)

	if o.format == "html" {
		name, err := devtools.SaveScreenshotHTML(g, ".")
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		fmt.Println(name)
		return nil
	}

	r := tui.New()
	renderer.SetRenderer(r)
	r.Init()
	for _, line := range r.Frame(g, terminal.GetWidth()) {
		fmt.Println(line)
	}
	fmt.Println()
	return devtools.DumpLevel(os.Stdout, g.Snapshot)
}
