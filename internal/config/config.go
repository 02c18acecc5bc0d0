package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studiowebux/shellwget/internal/types"
	"github.com/tidwall/jsonc"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// LocalConfigFile overrides the global config when present in the working directory
	LocalConfigFile = ".shellwget.jsonc"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ConfigDir is the global configuration directory (~/.shellwget)
	ConfigDir string

	// ConfigFile is the global configuration file
	ConfigFile string
)

// defaultConfig is written on first run. JSONC allows the comments.
const defaultConfig = `{
  // "space" or "tab"
  "indentType": "space",
  // 0 picks 4 spaces or 1 tab
  "indentCount": 0,
  // milliseconds, 0 disables --timeout
  "requestTimeout": 0,
  // unset follows redirects; curl2wget then follows curl's -L
  // "followRedirect": true,
  "requestBodyTrim": false,
  // "auto", "always" or "never"
  "color": "auto",
  // any chroma style name
  "style": "monokai",
}
`

// Config holds user preferences: conversion defaults and output settings
type Config struct {
	IndentType      string `json:"indentType"`
	IndentCount     int    `json:"indentCount"`
	RequestTimeout  int    `json:"requestTimeout"`
	FollowRedirect  *bool  `json:"followRedirect"`
	RequestBodyTrim bool   `json:"requestBodyTrim"`
	Color           string `json:"color"`
	Style           string `json:"style"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		IndentType: types.IndentSpace,
		Color:      ColorAuto,
		Style:      "monokai",
	}
}

// Initialize sets up the configuration directory and file.
// It creates ~/.shellwget/ and a commented default config if they don't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".shellwget")
	ConfigFile = filepath.Join(ConfigDir, "config.jsonc")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		if err := os.WriteFile(ConfigFile, []byte(defaultConfig), FilePermissions); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	return nil
}

// GetConfigFilePath returns the config file path (local or global)
func GetConfigFilePath() string {
	if _, err := os.Stat(LocalConfigFile); err == nil {
		return LocalConfigFile
	}
	return ConfigFile
}

// Load reads a JSONC config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	switch c.IndentType {
	case "", types.IndentSpace, types.IndentTab:
	default:
		return fmt.Errorf("indentType must be %q or %q, got %q", types.IndentSpace, types.IndentTab, c.IndentType)
	}

	switch c.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, c.Color)
	}

	return nil
}

// ConvertOptions returns the conversion options described by the config
func (c *Config) ConvertOptions() types.ConvertOptions {
	opts := types.ConvertOptions{
		IndentType:      c.IndentType,
		IndentCount:     c.IndentCount,
		RequestTimeout:  c.RequestTimeout,
		RequestBodyTrim: c.RequestBodyTrim,
	}
	if c.FollowRedirect != nil {
		opts.FollowRedirect = types.Bool(*c.FollowRedirect)
	}
	return opts
}
