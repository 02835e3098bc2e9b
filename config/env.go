package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv
const (
	EnvTiles = "TILERUSH_TILES"
	EnvSeed  = "TILERUSH_SEED"
	EnvDebug = "TILERUSH_DEBUG"
	EnvTPS   = "TILERUSH_TPS"
)

// LoadDotEnv loads variables from a .env file (default ".env") without
// overriding variables already present in the environment.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// ApplyEnv overrides the defaults with values from the environment. A value
// that fails to parse leaves its default untouched and is reported.
func ApplyEnv() []error {
	var errs []error

	if v, ok := lookupInt(EnvTiles, &errs); ok {
		TileCount.Default = v
	}
	if v, ok := lookupInt(EnvTPS, &errs); ok && v > 0 {
		C.TPS = v
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			Debug.Seed = seed
		}
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebug, err))
		} else {
			Debug.LogSessions = on
		}
	}
	return errs
}

func lookupInt(key string, errs *[]error) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return 0, false
	}
	return v, true
}

// Bind attaches the overridable settings to the provided FlagSet. Call it
// after ApplyEnv so flags take precedence over the environment.
func Bind(fs *flag.FlagSet) {
	fs.IntVar(&TileCount.Default, "tiles", TileCount.Default, "tile count for the first game")
	fs.Int64Var(&Debug.Seed, "seed", Debug.Seed, "seed for tile placement (0 = time-based)")
	fs.IntVar(&C.TPS, "tps", C.TPS, "ticks per second")
	fs.BoolVar(&Debug.LogSessions, "debug", Debug.LogSessions, "log session transitions and outline tile hitboxes")
}
