package hljs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"braces.dev/errtrace"
)

// ErrUnknownTheme indicates that a name
// does not match any theme in the catalog.
var ErrUnknownTheme = errors.New("unknown theme")

// DefaultTheme is the theme used when nothing else is configured.
const DefaultTheme = ThemeDefault

// Theme is a highlight.js style sheet.
//
// Themes are identified by kebab-case names.
//
//	hljs.ThemeAtelierPlateauLight.String() // "atelier-plateau-light"
type Theme int

var (
	_themesByName = indexNames(len(_themes), func(i int) string {
		return _themes[i]
	})

	_sortedThemes = func() []Theme {
		themes := make([]Theme, len(_themes))
		for i := range _themes {
			themes[i] = Theme(i)
		}
		sort.Slice(themes, func(i, j int) bool {
			return _themes[themes[i]] < _themes[themes[j]]
		})
		return themes
	}()
)

// Themes returns every theme in the catalog, ordered by name.
func Themes() []Theme {
	return append([]Theme(nil), _sortedThemes...)
}

// ParseTheme looks up a theme by name.
// Matching is case-insensitive.
func ParseTheme(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, ok := _themesByName[key]; ok {
		return Theme(i), nil
	}
	return 0, errtrace.Wrap(fmt.Errorf("%w %q", ErrUnknownTheme, name))
}

func (t Theme) valid() bool {
	return t >= 0 && int(t) < len(_themes)
}

// String returns the name of the theme.
func (t Theme) String() string {
	if t.valid() {
		return _themes[t]
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}

// AssetPath reports the path of the style sheet for this theme
// relative to the root of the highlight.js distribution.
//
// It returns false if the theme is not in the catalog.
func (t Theme) AssetPath() (string, bool) {
	if !t.valid() {
		return "", false
	}
	return "css/" + _themes[t] + ".min.css", true
}

// MarshalText implements [encoding.TextMarshaler].
func (t Theme) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %v", ErrUnknownTheme, t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Theme) UnmarshalText(b []byte) error {
	theme, err := ParseTheme(string(b))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*t = theme
	return nil
}
