package hljs

import "sort"

// Preferences accumulates highlighting preferences
// for a single page render.
//
// Any number of independent callers may record preferences
// while the page is being built.
// A [Resolver] reads them once the page body is complete.
//
// The zero value is ready to use.
// Preferences are not safe for concurrent use;
// they belong to exactly one render.
type Preferences struct {
	languages map[Language]struct{}

	theme    Theme
	hasTheme bool

	variant    Variant
	hasVariant bool

	disabled bool
}

// EnableLanguage records that the page contains code in the given language.
// Enabling a language more than once has no additional effect.
func (p *Preferences) EnableLanguage(lang Language) {
	if p.languages == nil {
		p.languages = make(map[Language]struct{})
	}
	p.languages[lang] = struct{}{}
}

// SetTheme selects the theme for all code on the page.
// If called multiple times, the last call wins.
func (p *Preferences) SetTheme(theme Theme) {
	p.theme = theme
	p.hasTheme = true
}

// ForceVariant selects the library variant for this page,
// overriding the configured default.
// If called multiple times, the last call wins.
func (p *Preferences) ForceVariant(v Variant) {
	p.variant = v
	p.hasVariant = true
}

// Disable turns highlighting off for this page.
// Nothing will be loaded regardless of other preferences.
// There is no way to re-enable highlighting afterwards.
func (p *Preferences) Disable() {
	p.disabled = true
}

// Disabled reports whether Disable was called.
func (p *Preferences) Disabled() bool {
	return p.disabled
}

// Languages returns the enabled languages ordered by canonical name.
func (p *Preferences) Languages() []Language {
	if len(p.languages) == 0 {
		return nil
	}

	langs := make([]Language, 0, len(p.languages))
	for l := range p.languages {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool {
		si, sj := langs[i].String(), langs[j].String()
		if si != sj {
			return si < sj
		}
		return langs[i] < langs[j]
	})
	return langs
}

// Theme returns the theme selected with SetTheme, if any.
func (p *Preferences) Theme() (Theme, bool) {
	return p.theme, p.hasTheme
}

// Variant returns the variant selected with ForceVariant, if any.
func (p *Preferences) Variant() (Variant, bool) {
	return p.variant, p.hasVariant
}
