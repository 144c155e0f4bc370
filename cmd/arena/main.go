// arena is a tile-grid combat game for the terminal.
//
// Usage:
//
//	arena list              - List arena modes
//	arena play [mode]       - Play a mode
//	arena menu              - Pick modes interactively
//	arena serve             - Start SSH server for remote play
//	arena scores [mode]     - Show best runs for a mode
//	arena board             - Interactive scoreboard
//	arena sim               - Headless deterministic run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arena/scores.db)
//	--config <path>       - Custom arena config YAML
//	--difficulty <preset> - easy, normal, hard, fixed or max
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-arena/internal/config"
	"github.com/vovakirdan/tile-arena/internal/core"
	"github.com/vovakirdan/tile-arena/internal/games/arena"
	"github.com/vovakirdan/tile-arena/internal/platform/tui"
	"github.com/vovakirdan/tile-arena/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Tile Arena - grid combat in your terminal",
	Long: `Tile Arena is a terminal game on an 11x11 board. Adversaries close in
one tile at a time; fire projectiles that detonate on contact and clear a
3x3 area. Survive as long as you can.

Available commands:
  list     - Show all arena modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - Print best runs
  board    - Interactive scoreboard
  sim      - Headless deterministic run

Examples:
  arena play
  arena play arena_hard
  arena play --difficulty max
  arena sim --seconds 120 --seed 7 --trace run.msgpack
  arena serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arena/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom arena config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed, max")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard while the TUI runs)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the logger from --log-level and --log-file. fallback is
// used when no file is given.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	return logger, closeFn, nil
}

// loadConfig reads the arena config from --config or the search path.
func loadConfig() (config.ArenaConfig, error) {
	cfg, err := config.LoadArena(flagConfig)
	if err != nil {
		return config.ArenaConfig{}, err
	}
	return cfg, nil
}

// modeFromArgs picks the mode from the first argument or --difficulty.
func modeFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return "", err
	}
	return arena.ModeID(preset), nil
}

// openEnv prepares config, logging and storage for an interactive command.
// The store is optional: a broken database only disables persistence.
func openEnv(logFallback io.Writer) (tui.Env, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return tui.Env{}, nil, err
	}
	logger, closeLog, err := newLogger(logFallback)
	if err != nil {
		return tui.Env{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		store = nil
	}

	env := tui.Env{Config: cfg, Store: store, Logger: logger}
	cleanup := func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return env, cleanup, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
