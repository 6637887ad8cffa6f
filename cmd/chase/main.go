// chase is a maze chase game for the terminal.
//
// Usage:
//
//	chase list               - List games and built-in stage packs
//	chase play [game]        - Play a game (default: chase)
//	chase menu               - Pick a game interactively
//	chase serve              - Start SSH server for remote play
//	chase scores <game>      - Show high scores for a game
//	chase check <dir>        - Validate a directory of stage files
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.chase/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--stages <dir>         - Load stages from a directory instead of a pack
//	--log <path>           - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStages     string
	flagLogPath    string
	flagLogLevel   string
)

var (
	// appLogger is shared by every command once flags are parsed.
	appLogger = log.New(io.Discard)
	// logFile is closed on exit when --log is set.
	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Chase - a maze chase game in your terminal",
	Long: `Chase is a tile-based maze game: eat every pellet, avoid the ghosts,
and turn the tables with a power pellet.

Available commands:
  list     - Show games and stage packs
  play     - Play a game directly
  menu     - Interactive game picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  check    - Validate custom stage files

Examples:
  chase play
  chase play chase_mini --difficulty easy
  chase play --stages ./my-stages
  chase serve --ssh :2222
  chase scores chase`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
		logger, err := newLogger(flagLogPath, flagLogLevel)
		if err != nil {
			return err
		}

		appLogger = logger
		chase.SetLogger(logger)
		chase.SetConfigPath(flagConfig)
		chase.SetDifficultyPreset(flagDifficulty)
		chase.SetStagesDir(flagStages)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagStages, "stages", "", "Directory of stage YAML files to play instead of a pack")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

// newLogger builds the game logger. The terminal belongs to the game, so
// logs go to a file or nowhere.
func newLogger(path, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	if path == "" {
		return log.New(io.Discard), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
		Level:           lvl,
	})
	return logger, nil
}

// playerName returns the local user name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
