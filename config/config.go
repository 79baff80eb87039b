package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultAddr          = ":8080"
	DefaultSearchTimeout = 10 * time.Second
	DefaultMaxTurns      = 300
	DefaultOutDir        = "experiments"
	DefaultGames         = 10
)

// Config is shared by every command. Flags override the BOARDGAMES_*
// environment variables, which override the defaults.
type Config struct {
	Addr          string
	LogLevel      zerolog.Level
	SearchTimeout time.Duration
	MaxTurns      int
	OutDir        string

	Game   Game
	First  Difficulty
	Second Difficulty
	Games  int
	Seed   uint64
}

// Load parses the flags of a command. name is used in usage messages.
func Load(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	addr := fs.String("addr", getEnvOrDefault("BOARDGAMES_ADDR", DefaultAddr), "worker listen address")
	level := fs.String("log-level", getEnvOrDefault("BOARDGAMES_LOG_LEVEL", zerolog.InfoLevel.String()), "trace, debug, info, warn or error")
	timeout := fs.Duration("search-timeout", getEnvDurationOrDefault("BOARDGAMES_SEARCH_TIMEOUT", DefaultSearchTimeout), "deadline of a single search")
	maxTurns := fs.Int("max-turns", getEnvIntOrDefault("BOARDGAMES_MAX_TURNS", DefaultMaxTurns), "turn cap of a local game")
	outDir := fs.String("out", getEnvOrDefault("BOARDGAMES_OUT_DIR", DefaultOutDir), "directory experiment records are written to")
	gameName := fs.String("game", string(Checkers), "tictactoe or checkers")
	first := fs.String("first", string(Easy), "difficulty of the side moving first")
	second := fs.String("second", string(Hard), "difficulty of the side moving second")
	games := fs.Int("games", DefaultGames, "games per match-up")
	seed := fs.Uint64("seed", 1, "seed of random agents")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := Config{
		Addr:          *addr,
		SearchTimeout: *timeout,
		MaxTurns:      *maxTurns,
		OutDir:        *outDir,
		Games:         *games,
		Seed:          *seed,
	}

	var err error
	if c.LogLevel, err = zerolog.ParseLevel(*level); err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	if c.Game, err = ParseGame(*gameName); err != nil {
		return Config{}, err
	}
	if c.First, err = ParseDifficulty(*first); err != nil {
		return Config{}, err
	}
	if c.Second, err = ParseDifficulty(*second); err != nil {
		return Config{}, err
	}
	if c.SearchTimeout <= 0 {
		return Config{}, fmt.Errorf("search timeout must be positive, got %v", c.SearchTimeout)
	}
	if c.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	return c, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
