// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                string
	AllowedOrigins      []string
	ReadBufferSize      int
	WriteBufferSize     int
	MatchmakingInterval time.Duration
	MaxPerftDepth       int
	DefaultBoardColor   string
	BoardColors         BoardColors
}

// Load builds a Config from LIBRECHESS_* variables, falling back to defaults
// for anything unset.
func Load() (Config, error) {
	cfg := Config{
		Addr:              getenv("LIBRECHESS_ADDR", ":3000"),
		AllowedOrigins:    splitList(getenv("LIBRECHESS_ORIGINS", "http://localhost:5173")),
		DefaultBoardColor: getenv("LIBRECHESS_BOARD_COLOR", "brown"),
		BoardColors:       DefaultBoardColors(),
	}

	var err error
	if cfg.ReadBufferSize, err = getint("LIBRECHESS_WS_READ_BUFFER", 1024); err != nil {
		return Config{}, err
	}
	if cfg.WriteBufferSize, err = getint("LIBRECHESS_WS_WRITE_BUFFER", 1024); err != nil {
		return Config{}, err
	}
	if cfg.MaxPerftDepth, err = getint("LIBRECHESS_MAX_PERFT_DEPTH", 3); err != nil {
		return Config{}, err
	}
	interval := getenv("LIBRECHESS_MATCHMAKING_INTERVAL", "1s")
	if cfg.MatchmakingInterval, err = time.ParseDuration(interval); err != nil {
		return Config{}, fmt.Errorf("LIBRECHESS_MATCHMAKING_INTERVAL: %w", err)
	}
	if cfg.MatchmakingInterval <= 0 {
		return Config{}, fmt.Errorf("LIBRECHESS_MATCHMAKING_INTERVAL must be positive, got %s", interval)
	}
	if _, ok := cfg.BoardColors.Get(cfg.DefaultBoardColor); !ok {
		return Config{}, fmt.Errorf("LIBRECHESS_BOARD_COLOR: unknown preset %q", cfg.DefaultBoardColor)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", key, v)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
