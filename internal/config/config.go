// internal/config/config.go
//
// Runtime configuration for the solver.
// Values come from the environment (optionally seeded from a .env file by
// godotenv) and may be overridden by command-line flags afterwards.
//
// Environment variables:
//   LOG_LEVEL=info              zerolog level
//   WORDS_FILE=/path/words.txt  corpus (.json or one word per line); empty = embedded
//   OPENERS_FILE=/path/o.json   opening guesses; empty = embedded
//   TOP_N=10                    ranked rows shown without "show all"
//   OPENERS_POOL=50             top openers the startup sample is drawn from
//   OPENERS_SHOWN=10            openers printed at startup
//   DAILY_SALT=local_dev_salt   salt for the simulator's daily answer
//   NO_PROGRESS=false           disable ranking progress bars

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds every tunable of a run.
type Config struct {
	LogLevel     string
	WordsFile    string
	OpenersFile  string
	TopN         int
	OpenersPool  int
	OpenersShown int
	DailySalt    string
	NoProgress   bool
}

var ErrInvalid = errors.New("config: invalid value")

// Load reads .env (when present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	return Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		WordsFile:    os.Getenv("WORDS_FILE"),
		OpenersFile:  os.Getenv("OPENERS_FILE"),
		TopN:         envInt("TOP_N", 10),
		OpenersPool:  envInt("OPENERS_POOL", 50),
		OpenersShown: envInt("OPENERS_SHOWN", 10),
		DailySalt:    getEnv("DAILY_SALT", "local_dev_salt"),
		NoProgress:   envBool("NO_PROGRESS", false),
	}
}

// Validate rejects counts that would make the session meaningless.
func (c Config) Validate() error {
	if c.TopN <= 0 {
		return fmt.Errorf("%w: TOP_N must be positive, got %d", ErrInvalid, c.TopN)
	}
	if c.OpenersPool <= 0 {
		return fmt.Errorf("%w: OPENERS_POOL must be positive, got %d", ErrInvalid, c.OpenersPool)
	}
	if c.OpenersShown < 0 {
		return fmt.Errorf("%w: OPENERS_SHOWN must not be negative, got %d", ErrInvalid, c.OpenersShown)
	}
	return nil
}

// ApplyLogLevel sets the global zerolog level; unknown names keep the current one.
func (c Config) ApplyLogLevel() {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warn().Str("level", c.LogLevel).Msg("unknown LOG_LEVEL, keeping default")
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return b
}
