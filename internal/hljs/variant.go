package hljs

import (
	"errors"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// ErrUnknownVariant indicates that a name
// is neither "core" nor "common".
var ErrUnknownVariant = errors.New("unknown library variant")

// Variant selects how highlight.js is delivered to the browser.
type Variant int

const (
	// Core loads the minimal highlight.js runtime
	// plus one script for each language used on the page.
	Core Variant = iota

	// Common loads a single larger build of highlight.js
	// that bundles about 40 popular languages.
	// Code in languages outside that set is left unhighlighted.
	Common
)

// ParseVariant parses "core" or "common", ignoring case.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "core":
		return Core, nil
	case "common":
		return Common, nil
	default:
		return 0, errtrace.Wrap(fmt.Errorf("%w %q", ErrUnknownVariant, name))
	}
}

func (v Variant) String() string {
	switch v {
	case Core:
		return "core"
	case Common:
		return "common"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// runtimePath is the path of the main script for this variant.
func (v Variant) runtimePath() string {
	if v == Common {
		return "js/highlight.min.js"
	}
	return "js/core.min.js"
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	if v != Core && v != Common {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %v", ErrUnknownVariant, v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(b []byte) error {
	variant, err := ParseVariant(string(b))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*v = variant
	return nil
}
