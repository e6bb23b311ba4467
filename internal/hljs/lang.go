package hljs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"braces.dev/errtrace"
)

// ErrUnknownLanguage indicates that a name
// does not match any language in the catalog.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is a language that highlight.js can highlight.
//
// Languages are identified by canonical kebab-case names.
// These match the names highlight.js assigns to them,
// and the names of their files in the distribution.
//
//	hljs.PHPTemplate.String() // "php-template"
type Language int

type languageInfo struct {
	name string

	// Whether the language is bundled into
	// the common build of the library.
	common bool
}

var (
	_languagesByName = indexNames(len(_languages), func(i int) string {
		return _languages[i].name
	})

	_sortedLanguages = func() []Language {
		langs := make([]Language, len(_languages))
		for i := range _languages {
			langs[i] = Language(i)
		}
		sort.Slice(langs, func(i, j int) bool {
			return _languages[langs[i]].name < _languages[langs[j]].name
		})
		return langs
	}()
)

// Languages returns every language in the catalog,
// ordered by name.
func Languages() []Language {
	return append([]Language(nil), _sortedLanguages...)
}

// ParseLanguage looks up a language by its canonical name.
// Matching is case-insensitive.
func ParseLanguage(name string) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i, ok := _languagesByName[key]; ok {
		return Language(i), nil
	}
	return 0, errtrace.Wrap(fmt.Errorf("%w %q", ErrUnknownLanguage, name))
}

func (l Language) info() (languageInfo, bool) {
	if l < 0 || int(l) >= len(_languages) {
		return languageInfo{}, false
	}
	return _languages[l], true
}

// String returns the canonical name of the language.
func (l Language) String() string {
	if info, ok := l.info(); ok {
		return info.name
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// AssetPath reports the path of the script for this language
// relative to the root of the highlight.js distribution.
//
// It returns false if the language is not in the catalog.
func (l Language) AssetPath() (string, bool) {
	info, ok := l.info()
	if !ok {
		return "", false
	}
	return "js/lang/" + info.name + ".min.js", true
}

// InCommon reports whether the common build of highlight.js
// includes support for this language.
func (l Language) InCommon() bool {
	info, ok := l.info()
	return ok && info.common
}

// MarshalText implements [encoding.TextMarshaler].
func (l Language) MarshalText() ([]byte, error) {
	if _, ok := l.info(); !ok {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %v", ErrUnknownLanguage, l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Language) UnmarshalText(b []byte) error {
	lang, err := ParseLanguage(string(b))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*l = lang
	return nil
}
