// Package main provides the breathbox entry point.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/osa030/breathbox/internal/app/preset"
	"github.com/osa030/breathbox/internal/app/settings"
	"github.com/osa030/breathbox/internal/domain/breath"
	"github.com/osa030/breathbox/internal/infra/config"
	"github.com/osa030/breathbox/internal/infra/logger"
	"github.com/osa030/breathbox/internal/ui"
)

var (
	app        = kingpin.New("breathbox", "Guided breathing timer")
	configPath = app.Flag("config", "Path to config file (default: built-in defaults)").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file").String()
	presetName = app.Flag("preset", "Breathing preset to use").String()
	ask        = app.Flag("ask", "Edit the breathing values before starting").Bool()
	headless   = app.Flag("headless", "Run without the terminal UI, logging each phase").Bool()

	// plan command
	planCmd = app.Command("plan", "Print the phases and total duration and exit")

	// presets command
	presetsCmd = app.Command("presets", "List available presets and exit")
)

func init() {
	// run command (default) - no need to store the command
	app.Command("run", "Run a breathing session (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	// Startup logger until the config is known
	if _, err := logger.Init(logger.Config{Output: logger.OutputStderr, Level: levelFlag("info")}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load config: %v", err)
	}

	catalog, err := preset.NewCatalog(cfg.Presets)
	if err != nil {
		zlog.Fatal().Msgf("Failed to load presets: %v", err)
	}

	switch command {
	case presetsCmd.FullCommand():
		printPresets(os.Stdout, catalog)
		return
	case planCmd.FullCommand():
		store, err := newStore(cfg, catalog)
		if err != nil {
			zlog.Fatal().Msgf("Failed to resolve breathing values: %v", err)
		}
		printPlan(os.Stdout, store, cfg.CycleGap())
		return
	}

	// The full-screen UI owns stdout, so logs go to a file or nowhere.
	closer, err := logger.Init(logConfig(cfg, !*headless))
	if err != nil {
		zlog.Fatal().Msgf("Failed to initialize logger: %v", err)
	}
	defer closer.Close()

	if err := run(cfg, catalog); err != nil {
		zlog.Error().Msgf("Session error: %v", err)
		closer.Close()
		os.Exit(1)
	}
}

// levelFlag returns the log level, raised to debug by --verbose.
func levelFlag(level string) string {
	if *verbose {
		return "debug"
	}
	return level
}

// logConfig builds the logger config from the config file and flags.
func logConfig(cfg *config.Config, interactive bool) logger.Config {
	lc := logger.Config{
		Output: cfg.Log.Output,
		Level:  levelFlag(cfg.Log.Level),
	}
	if cfg.Log.File != "" {
		lc.Output = cfg.Log.File
	}
	if *logfile != "" {
		lc.Output = *logfile
	}
	if interactive && (lc.Output == "" || lc.Output == logger.OutputStdout || lc.Output == logger.OutputStderr) {
		lc.Output = logger.OutputDiscard
	}
	return lc
}

// newStore creates the settings store from the config and the selected preset.
// The --preset flag takes precedence over the config file.
func newStore(cfg *config.Config, catalog *preset.Catalog) (*settings.Store, error) {
	store, err := settings.NewStore(cfg.Values())
	if err != nil {
		return nil, err
	}

	name := cfg.Breathing.Preset
	if *presetName != "" {
		name = *presetName
	}
	if name == "" {
		return store, nil
	}

	p, err := catalog.Get(name)
	if err != nil {
		return nil, err
	}
	if err := store.Apply(p.Name, p.Values); err != nil {
		return nil, err
	}
	zlog.Info().Msgf("Using preset %s: %s", p.Name, p.Values)
	return store, nil
}

// run executes a session. Using a separate function ensures deferred
// cleanup runs even when returning with an error.
func run(cfg *config.Config, catalog *preset.Catalog) error {
	store, err := newStore(cfg, catalog)
	if err != nil {
		return errors.Wrap(err, "failed to resolve breathing values")
	}

	if *ask {
		v, err := ui.AskSettings(store.Values())
		if errors.Is(err, ui.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := store.Set(v); err != nil {
			return err
		}
	}

	zlog.Info().Msgf("Breathing pattern: %s", store.Values())

	s := newSession(cfg, store)
	defer s.close()

	if *headless {
		return s.runHeadless()
	}
	return s.runTerminal()
}

// printPresets prints available presets.
func printPresets(w io.Writer, catalog *preset.Catalog) {
	fmt.Fprintln(w, "Available Presets:")
	for _, p := range catalog.List() {
		fmt.Fprintf(w, "  %-12s %-10s - %s\n", p.Name, p.Values, p.Description)
	}
}

// printPlan prints the phases of one cycle and the total session duration.
func printPlan(w io.Writer, store *settings.Store, gap time.Duration) {
	v := store.Values()
	seq := breath.BuildSequence(v.Inhale, v.Hold, v.Exhale)

	title := v.String()
	if name := store.Preset(); name != "" {
		title = name + " (" + title + ")"
	}
	fmt.Fprintf(w, "Pattern: %s\n", title)
	for i, p := range seq {
		fmt.Fprintf(w, "  %d. %-7s %ds\n", i+1, p.Name.Label(), p.Seconds)
	}
	fmt.Fprintf(w, "Cycle: %v, rest between cycles: %v\n", seq.Duration(), gap)
	fmt.Fprintf(w, "Session: %d cycles, %v\n", breath.ClampCycles(v.Cycles), breath.SessionDuration(v, gap))
}
