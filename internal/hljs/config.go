package hljs

import (
	"io"
	"log"
	"strings"
)

const (
	// DefaultPrefix is the URL path under which
	// highlight.js files are served by default.
	DefaultPrefix = "/hljs"

	// DefaultTabSize is the number of spaces
	// that replace a tab character by default.
	DefaultTabSize = 4
)

// Settings holds highlighting configuration as provided by the user.
// Values are not validated; use [Settings.Config] for that.
type Settings struct {
	// Library is the default library variant: "core" or "common".
	Library string

	// Theme is the name of the default theme.
	Theme string

	// TabSize is the number of spaces that replace a tab character.
	TabSize int
}

// DefaultSettings returns the settings used when the user
// doesn't configure anything.
func DefaultSettings() Settings {
	return Settings{
		Library: Core.String(),
		Theme:   DefaultTheme.String(),
		TabSize: DefaultTabSize,
	}
}

// Config is validated configuration for a [Resolver].
//
// The zero value loads the core library with the default theme
// from [DefaultPrefix].
type Config struct {
	// Prefix is the URL path or URL under which
	// highlight.js files are served.
	// Defaults to DefaultPrefix.
	Prefix string

	// Variant is used for pages that don't force one.
	Variant Variant

	// Theme is used for pages that don't set one.
	Theme Theme

	// TabSize is the number of spaces that replace a tab character.
	// Defaults to DefaultTabSize.
	TabSize int
}

// Config validates these settings.
//
// Invalid values never fail:
// they're replaced with their defaults
// and a warning is written to the logger, if any.
func (s Settings) Config(logger *log.Logger) Config {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	cfg := Config{
		Prefix:  DefaultPrefix,
		Variant: Core,
		Theme:   DefaultTheme,
		TabSize: DefaultTabSize,
	}

	if lib := strings.TrimSpace(s.Library); lib != "" {
		if v, err := ParseVariant(lib); err == nil {
			cfg.Variant = v
		} else {
			logger.Printf("warning: unrecognized highlight.js library %q, %q is assumed", s.Library, cfg.Variant)
		}
	}

	if name := strings.TrimSpace(s.Theme); name != "" {
		if t, err := ParseTheme(name); err == nil {
			cfg.Theme = t
		} else {
			logger.Printf("warning: unrecognized highlight.js theme %q, %q is assumed", s.Theme, cfg.Theme)
		}
	}

	switch {
	case s.TabSize > 0:
		cfg.TabSize = s.TabSize
	case s.TabSize < 0:
		logger.Printf("warning: invalid tab size %d, %d is assumed", s.TabSize, cfg.TabSize)
	}

	return cfg
}
