package game

import (
	"os"
	"strconv"
	"strings"
)

// Config holds viewer configuration options.
type Config struct {
	// MapName selects the map: an embedded map name, or a path to a .yaml
	// file on disk. Empty means generate a map instead.
	MapName string

	// Seed for map generation. A seed of 0 means a random seed.
	Seed int64

	// Generated map dimensions. Zero values fall back to the generator
	// defaults.
	Cols   int
	Rows   int
	Floors int
}

// ConfigFromEnv reads configuration from TILEWALKER_* environment
// variables. Missing variables leave zero values.
func ConfigFromEnv() Config {
	return Config{
		MapName: strings.TrimSpace(os.Getenv("TILEWALKER_MAP")),
		Seed:    envInt64("TILEWALKER_SEED"),
		Cols:    envInt("TILEWALKER_COLS"),
		Rows:    envInt("TILEWALKER_ROWS"),
		Floors:  envInt("TILEWALKER_FLOORS"),
	}
}

func envInt(name string) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}
	return v
}

func envInt64(name string) int64 {
	v, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
