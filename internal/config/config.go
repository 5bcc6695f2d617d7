// Package config loads formatting style from chisel.toml, discovered by
// walking up from the formatted path. Absent a manifest, defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"chisel/internal/format"
)

// FileName is the manifest chisel looks for next to (or above) the sources.
const FileName = "chisel.toml"

type fileConfig struct {
	Format formatConfig `toml:"format"`
}

type formatConfig struct {
	MaxWidth            int    `toml:"max_width"`
	IndentWidth         int    `toml:"indent_width"`
	ImportsLayout       string `toml:"imports_layout"`
	IndentStyle         string `toml:"indent_style"`
	TrailingSeparator   string `toml:"trailing_separator"`
	InlineBlockComments bool   `toml:"inline_block_comments"`
}

// Find walks from startDir toward the filesystem root looking for a
// chisel.toml manifest.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads a manifest and converts it into format options. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Load(path string) (format.Options, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return format.Options{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return format.Options{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg.Format.toOptions(path)
}

// Discover finds and loads the manifest governing startDir. Without one the
// defaults apply.
func Discover(startDir string) (format.Options, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return format.Options{}, err
	}
	if !ok {
		return format.Options{}.WithDefaults(), nil
	}
	return Load(path)
}

func (c formatConfig) toOptions(path string) (format.Options, error) {
	opts := format.Options{
		MaxWidth:            c.MaxWidth,
		IndentWidth:         c.IndentWidth,
		InlineBlockComments: c.InlineBlockComments,
	}
	if c.MaxWidth < 0 {
		return format.Options{}, fmt.Errorf("%s: max_width must be positive", path)
	}
	if c.ImportsLayout != "" {
		tactic, err := format.ParseTactic(c.ImportsLayout)
		if err != nil {
			return format.Options{}, fmt.Errorf("%s: %w", path, err)
		}
		opts.Tactic = tactic
	}
	if c.IndentStyle != "" {
		style, err := format.ParseIndentStyle(c.IndentStyle)
		if err != nil {
			return format.Options{}, fmt.Errorf("%s: %w", path, err)
		}
		opts.IndentStyle = style
	}
	if c.TrailingSeparator != "" {
		policy, err := format.ParseSeparatorPolicy(c.TrailingSeparator)
		if err != nil {
			return format.Options{}, fmt.Errorf("%s: %w", path, err)
		}
		opts.TrailingSeparator = policy
	}
	return opts.WithDefaults(), nil
}
