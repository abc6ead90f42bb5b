// Package kestrel ties together the ast binary encoding core and the date
// calendar module behind a single module-level configuration, the way the
// teacher's top-level package wires its codecs and section readers behind
// one entry point.
package kestrel

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/kestrel-engine/kestrel/compress"
	"github.com/kestrel-engine/kestrel/date"
	"github.com/kestrel-engine/kestrel/date/locale"
	"github.com/kestrel-engine/kestrel/errs"
)

// Config holds the defaults new containers and Date values are built
// against: the compression codec new containers use, the locale new Date
// values format under, and the timezone a default date.Provider reports
// (§4.12).
type Config struct {
	Compression           compress.ID
	Locale                locale.Handle
	TimezoneOffsetSeconds float64
}

// fixedOffsetProvider implements date.Provider with a constant standard
// offset and no DST, the "UTC-only" default §4.12 calls for when a config
// document supplies nothing more specific.
type fixedOffsetProvider struct {
	offsetSeconds float64
}

var _ date.Provider = fixedOffsetProvider{}

func (p fixedOffsetProvider) StandardOffsetSeconds() float64 { return p.offsetSeconds }
func (p fixedOffsetProvider) DSTActive(t float64) bool       { return false }

// TZProvider returns the date.Provider this config's timezone offset
// describes.
func (c Config) TZProvider() date.Provider {
	return fixedOffsetProvider{offsetSeconds: c.TimezoneOffsetSeconds}
}

// DefaultConfig is the zero-config default: no compression, English
// (locale.English, "en"), and a UTC-only provider.
func DefaultConfig() Config {
	return Config{
		Compression:           compress.IDNone,
		Locale:                locale.English,
		TimezoneOffsetSeconds: 0,
	}
}

// configDocument is the YAML shape LoadConfig decodes (§6.4).
type configDocument struct {
	Compression           string `yaml:"compression"`
	Locale                string `yaml:"locale"`
	TimezoneOffsetSeconds float64 `yaml:"timezone_offset_seconds"`
}

// LoadConfig reads a YAML configuration document from path (§6.4).
// Recognized compression names are "none", "zstd", "cgo-zstd" (an alias
// for "zstd": both select the same wire codec ID, differing only in which
// build-tag-selected backend implements it), and "lz4".
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("kestrel: failed to read config", "path", path, "err", err)
		return Config{}, fmt.Errorf("kestrel: read config %s: %w", path, err)
	}

	var doc configDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		slog.Warn("kestrel: failed to parse config", "path", path, "err", err)
		return Config{}, fmt.Errorf("kestrel: parse config %s: %w", path, err)
	}

	cfg := DefaultConfig()

	if doc.Compression != "" {
		id, err := parseCompressionName(doc.Compression)
		if err != nil {
			slog.Warn("kestrel: unrecognized compression in config", "path", path, "compression", doc.Compression)
			return Config{}, err
		}
		cfg.Compression = id
	}

	if doc.Locale != "" {
		h, err := locale.Parse(doc.Locale)
		if err != nil {
			slog.Warn("kestrel: unrecognized locale in config", "path", path, "locale", doc.Locale)
			return Config{}, fmt.Errorf("kestrel: locale %q: %w", doc.Locale, errs.ErrInvalidConfig)
		}
		cfg.Locale = h
	}

	cfg.TimezoneOffsetSeconds = doc.TimezoneOffsetSeconds

	slog.Debug("kestrel: loaded config", "path", path, "compression", cfg.Compression, "locale", cfg.Locale)

	return cfg, nil
}

func parseCompressionName(name string) (compress.ID, error) {
	switch name {
	case "none":
		return compress.IDNone, nil
	case "zstd", "cgo-zstd":
		return compress.IDZstd, nil
	case "lz4":
		return compress.IDLZ4, nil
	default:
		return 0, fmt.Errorf("kestrel: compression %q: %w", name, errs.ErrInvalidConfig)
	}
}
