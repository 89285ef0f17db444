package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/vellum-dev/vellum/pkg/render"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file.
// Call it after cobra has parsed flags (inside RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config-file")
	if configPath == "" {
		configPath = "vellum.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags win; only explicitly set flags are merged.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the config file and environment variables.
// Separated from loadConfig so tests need no cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// VELLUM_SERVE_ADDR -> serve.addr, VELLUM_VERBOSE -> verbose
	if err := k.Load(env.Provider("VELLUM_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "VELLUM_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func getString(flagKey, configKey, def string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return def
}

func getInt(flagKey, configKey string, def int) int {
	if v := k.Int(flagKey); v != 0 {
		return v
	}
	if v := k.Int(configKey); v != 0 {
		return v
	}
	return def
}

func getBool(flagKey, configKey string) bool {
	return k.Bool(flagKey) || k.Bool(configKey)
}

// renderConfigByName maps a preset name to its configuration.
func renderConfigByName(name string) (render.Config, error) {
	switch name {
	case "", "compact", "default":
		return render.Compact, nil
	case "pretty":
		return render.Pretty, nil
	case "email":
		return render.Email, nil
	case "optimized":
		return render.Optimized, nil
	default:
		return render.Config{}, fmt.Errorf("unknown render preset %q (want compact, pretty, email, or optimized)", name)
	}
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if getBool("verbose", "verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
