// Package config resolves runtime settings for the pathgrid command from
// the process environment and optional dotenv files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvLogLevel  = "PATHGRID_LOG_LEVEL"
	EnvLogFormat = "PATHGRID_LOG_FORMAT"
	EnvSeed      = "PATHGRID_SEED"
	EnvMaxCells  = "PATHGRID_MAX_CELLS"
)

// DefaultMaxCells bounds scenario grids when PATHGRID_MAX_CELLS is unset.
const DefaultMaxCells = 1 << 20

// ErrInvalid is returned for values that do not parse.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the resolved settings.
type Config struct {
	LogLevel  string // debug, info, warn or error
	LogFormat string // text or json
	Seed      int64  // default seed for scenarios; 0 ⇒ generator default
	MaxCells  int    // largest accepted rows×cols; 0 disables the bound
}

// Load reads the dotenv files (".env" when none are named; a missing
// default file is not an error) and overlays the process environment,
// which always wins.
func Load(files ...string) (Config, error) {
	return load(os.LookupEnv, files)
}

func load(lookup func(string) (string, bool), files []string) (Config, error) {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}
	fileEnv, err := godotenv.Read(files...)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", strings.Join(files, ", "), err)
		}
		fileEnv = map[string]string{}
	}
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		if v, ok := fileEnv[key]; ok {
			return v
		}
		return fallback
	}

	cfg := Config{
		LogLevel:  strings.ToLower(get(EnvLogLevel, "info")),
		LogFormat: strings.ToLower(get(EnvLogFormat, "text")),
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("%w: %s=%q, want text or json", ErrInvalid, EnvLogFormat, cfg.LogFormat)
	}
	if cfg.Seed, err = strconv.ParseInt(get(EnvSeed, "0"), 10, 64); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvSeed, err)
	}
	if cfg.MaxCells, err = strconv.Atoi(get(EnvMaxCells, strconv.Itoa(DefaultMaxCells))); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvMaxCells, err)
	}
	if cfg.MaxCells < 0 {
		return Config{}, fmt.Errorf("%w: %s must not be negative", ErrInvalid, EnvMaxCells)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
}

// NewLogger builds a logger writing to w in the configured format. It does
// not touch slog's default logger.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
