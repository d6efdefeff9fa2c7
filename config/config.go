// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: layered configuration for the citymap CLI.
// Precedence (lowest first): Default(), YAML file, .env file, CITYMAP_* environment.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citymap/core"
	"github.com/katalvlaran/citymap/storage"
)

// Environment variable names.
const (
	EnvDataFile   = "CITYMAP_DATA_FILE"
	EnvReportFile = "CITYMAP_REPORT_FILE"
	EnvCapacity   = "CITYMAP_CAPACITY"
	EnvLogLevel   = "CITYMAP_LOG_LEVEL"
)

// DefaultEnvFile is the dotenv file read when it exists.
const DefaultEnvFile = ".env"

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the CLI reads.
type Config struct {
	DataFile   string `yaml:"data_file"`
	ReportFile string `yaml:"report_file"`
	Capacity   int    `yaml:"capacity"`
	LogLevel   string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataFile:   storage.DefaultGraphFile,
		ReportFile: storage.DefaultReportFile,
		Capacity:   core.DefaultCapacity,
		LogLevel:   "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), DefaultEnvFile if present, and CITYMAP_* variables.
func Load(path string) (Config, error) {
	return LoadWithEnvFile(path, DefaultEnvFile)
}

// LoadWithEnvFile is Load with an explicit dotenv file. A missing dotenv
// file is ignored; an explicitly named YAML file must exist.
func LoadWithEnvFile(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := decodeYAML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}

	if envFile != "" {
		// godotenv never overrides variables that are already set
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: dotenv %q: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// decodeYAML rejects unknown keys so typos surface instead of being ignored.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv() error {
	c.DataFile = getEnv(EnvDataFile, c.DataFile)
	c.ReportFile = getEnv(EnvReportFile, c.ReportFile)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	if v := os.Getenv(EnvCapacity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvCapacity, v)
		}
		c.Capacity = n
	}

	return nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d", ErrInvalid, c.Capacity)
	}
	if c.DataFile == "" {
		return fmt.Errorf("%w: empty data file", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns LogLevel as a slog.Level, LevelInfo if it is unknown.
func (c Config) SlogLevel() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return lvl
}

// ParseLevel maps debug|info|warn|error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalid, s)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
