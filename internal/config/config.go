// Package config loads and validates mdpress configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hmarchal/mdpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all file-based configuration for document generation.
// Zero values mean "not set"; the CLI layers flag values on top.
type Config struct {
	Output OutputConfig           `yaml:"output"`
	Page   PageConfig             `yaml:"page"`
	Breaks BreaksConfig           `yaml:"breaks"`
	Styles map[string]StyleConfig `yaml:"styles"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Output directory (empty = next to each input)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 1.0)
}

// BreaksConfig defines which heading levels force a page break.
type BreaksConfig struct {
	Before []int `yaml:"before"` // heading levels 1-3
}

// StyleConfig overrides one style kind. Pointer fields distinguish
// "not set" from an explicit zero, so a config can set just one knob.
// Keys of Config.Styles name the kind ("heading1", "body", "code-block",
// and so on); unknown kinds are rejected when the overrides are applied.
type StyleConfig struct {
	Family      *string  `yaml:"family"`
	Size        *float64 `yaml:"size"`
	Bold        *bool    `yaml:"bold"`
	Italic      *bool    `yaml:"italic"`
	Underline   *bool    `yaml:"underline"`
	Color       *string  `yaml:"color"`
	Fill        *string  `yaml:"fill"`
	Leading     *float64 `yaml:"leading"`
	LeftIndent  *float64 `yaml:"leftIndent"`
	SpaceBefore *float64 `yaml:"spaceBefore"`
	SpaceAfter  *float64 `yaml:"spaceAfter"`
}

// Validate checks scalar fields for obviously bad values. Style kind
// names and descriptor semantics are validated downstream where the
// style registry lives.
func (c *Config) Validate() error {
	if c.Page.Size != "" {
		switch strings.ToLower(c.Page.Size) {
		case "letter", "a4", "legal":
			// valid
		default:
			return fmt.Errorf("page.size: invalid value %q (must be letter, a4, or legal)", c.Page.Size)
		}
	}
	if c.Page.Orientation != "" {
		switch strings.ToLower(c.Page.Orientation) {
		case "portrait", "landscape":
			// valid
		default:
			return fmt.Errorf("page.orientation: invalid value %q (must be portrait or landscape)", c.Page.Orientation)
		}
	}
	if c.Page.Margin < 0 {
		return fmt.Errorf("page.margin: must not be negative, got %.2f", c.Page.Margin)
	}

	for _, level := range c.Breaks.Before {
		if level < 1 || level > 3 {
			return fmt.Errorf("breaks.before: invalid heading level %d (must be 1-3)", level)
		}
	}

	for kind, style := range c.Styles {
		if style.Size != nil && *style.Size <= 0 {
			return fmt.Errorf("styles.%s.size: must be positive, got %.2f", kind, *style.Size)
		}
		if style.Leading != nil && *style.Leading < 0 {
			return fmt.Errorf("styles.%s.leading: must not be negative, got %.2f", kind, *style.Leading)
		}
	}

	return nil
}

// DefaultConfig returns a neutral configuration with nothing set.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/mdpress/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "mdpress", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
