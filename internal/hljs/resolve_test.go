package hljs

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptURLs(m Manifest) []string {
	urls := make([]string, len(m.Scripts))
	for i, s := range m.Scripts {
		urls[i] = s.URL()
	}
	return urls
}

func styleURLs(m Manifest) []string {
	urls := make([]string, len(m.StyleSheets))
	for i, s := range m.StyleSheets {
		urls[i] = s.URL()
	}
	return urls
}

func TestResolver_Resolve_core(t *testing.T) {
	t.Parallel()

	var p Preferences
	p.EnableLanguage(Python)
	p.EnableLanguage(JSON)
	p.SetTheme(ThemeZenburn)

	r := Resolver{Config: DefaultSettings().Config(nil)}
	m := r.Resolve(&p)

	assert.Equal(t, Core, m.Variant)
	assert.Equal(t, ThemeZenburn, m.Theme)
	assert.Equal(t, []string{
		"/hljs/js/core.min.js?v=11.7.0",
		"/hljs/js/lang/json.min.js?v=11.7.0",
		"/hljs/js/lang/python.min.js?v=11.7.0",
	}, scriptURLs(m))
	assert.Equal(t, []string{"/hljs/css/zenburn.min.css?v=11.7.0"}, styleURLs(m))

	assert.Equal(t, InlineScriptName, m.Inline.Name)
	assert.Contains(t, m.Inline.Code, "tabReplace: '    '")
	assert.Contains(t, m.Inline.Code, "languages: []")
	assert.Contains(t, m.Inline.Code, "hljs.highlightAll();")
}

func TestResolver_Resolve_common(t *testing.T) {
	t.Parallel()

	var p Preferences
	p.EnableLanguage(Go)
	p.EnableLanguage(Rust)
	p.ForceVariant(Common)

	r := Resolver{}
	m := r.Resolve(&p)

	assert.Equal(t, Common, m.Variant)
	assert.Equal(t, []string{"/hljs/js/highlight.min.js?v=11.7.0"}, scriptURLs(m))
	assert.NotEmpty(t, m.Inline.Code)
	assert.Equal(t, []string{"/hljs/css/default.min.css?v=11.7.0"}, styleURLs(m))
}

func TestResolver_Resolve_commonFromConfig(t *testing.T) {
	t.Parallel()

	var debug bytes.Buffer
	var p Preferences
	p.EnableLanguage(Haskell)

	r := Resolver{
		Config:   Config{Variant: Common},
		DebugLog: log.New(&debug, "", 0),
	}
	m := r.Resolve(&p)

	assert.Equal(t, []string{"/hljs/js/highlight.min.js?v=11.7.0"}, scriptURLs(m))
	assert.Contains(t, debug.String(), "haskell is not part of the common highlight.js library")
}

func TestResolver_Resolve_forcedCoreOverridesConfig(t *testing.T) {
	t.Parallel()

	var p Preferences
	p.EnableLanguage(Go)
	p.ForceVariant(Core)

	r := Resolver{Config: Config{Variant: Common}}
	m := r.Resolve(&p)
	assert.Equal(t, []string{
		"/hljs/js/core.min.js?v=11.7.0",
		"/hljs/js/lang/go.min.js?v=11.7.0",
	}, scriptURLs(m))
}

func TestResolver_Resolve_empty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc  string
		setup func(*Preferences)
	}{
		{
			desc:  "nothing",
			setup: func(*Preferences) {},
		},
		{
			desc: "theme without languages",
			setup: func(p *Preferences) {
				p.SetTheme(ThemeZenburn)
			},
		},
		{
			desc: "variant without languages",
			setup: func(p *Preferences) {
				p.ForceVariant(Common)
			},
		},
		{
			desc: "disabled after enabling",
			setup: func(p *Preferences) {
				p.EnableLanguage(Rust)
				p.SetTheme(ThemeDark)
				p.Disable()
			},
		},
		{
			desc: "disabled before enabling",
			setup: func(p *Preferences) {
				p.Disable()
				p.EnableLanguage(Rust)
				p.ForceVariant(Core)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var p Preferences
			tt.setup(&p)

			r := Resolver{}
			m := r.Resolve(&p)
			assert.True(t, m.Empty(), "got:\n%v", m.String())
			assert.Equal(t, Manifest{}, m)
		})
	}

	t.Run("nil preferences", func(t *testing.T) {
		t.Parallel()

		m := new(Resolver).Resolve(nil)
		assert.True(t, m.Empty())
	})
}

func TestResolver_Resolve_idempotentRegistration(t *testing.T) {
	t.Parallel()

	r := Resolver{}

	var once Preferences
	once.EnableLanguage(Rust)

	var many Preferences
	for i := 0; i < 5; i++ {
		many.EnableLanguage(Rust)
	}

	assert.Equal(t, r.Resolve(&once), r.Resolve(&many))
}

func TestResolver_Resolve_deterministic(t *testing.T) {
	t.Parallel()

	r := Resolver{Config: Config{TabSize: 2, Theme: ThemeNightOwl}}

	var a, b Preferences
	a.EnableLanguage(Go)
	a.EnableLanguage(Rust)
	b.EnableLanguage(Rust)
	b.EnableLanguage(Go)

	first := r.Resolve(&a)
	assert.Equal(t, first, r.Resolve(&a), "same store")
	assert.Equal(t, first, r.Resolve(&b), "insertion order")
	second := r.Resolve(&b)
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.Inline.Code, "tabReplace: '  '")
}

func TestResolver_Resolve_prefix(t *testing.T) {
	t.Parallel()

	var p Preferences
	p.EnableLanguage(YAML)

	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "/static/hljs/", want: "/static/hljs/js/lang/yaml.min.js?v=11.7.0"},
		{prefix: "https://cdn.example.com/hl", want: "https://cdn.example.com/hl/js/lang/yaml.min.js?v=11.7.0"},
	}

	for _, tt := range tests {
		r := Resolver{Config: Config{Prefix: tt.prefix}}
		m := r.Resolve(&p)
		require.Len(t, m.Scripts, 2)
		assert.Equal(t, tt.want, m.Scripts[1].URL())
	}
}

func TestResolver_Resolve_catalogMisses(t *testing.T) {
	t.Parallel()

	var warn bytes.Buffer
	var p Preferences
	p.EnableLanguage(Language(-5))
	p.EnableLanguage(Lua)
	p.SetTheme(Theme(9999))

	r := Resolver{Log: log.New(&warn, "", 0)}
	m := r.Resolve(&p)

	assert.Equal(t, []string{
		"/hljs/js/core.min.js?v=11.7.0",
		"/hljs/js/lang/lua.min.js?v=11.7.0",
	}, scriptURLs(m))
	assert.Equal(t, []string{"/hljs/css/default.min.css?v=11.7.0"}, styleURLs(m))
	assert.Equal(t, DefaultTheme, m.Theme)

	assert.Contains(t, warn.String(), "skipping unknown highlight.js language Language(-5)")
	assert.Contains(t, warn.String(), `unrecognized highlight.js theme Theme(9999), "default" is assumed`)
}

func TestResolver_Resolve_unknownVariant(t *testing.T) {
	t.Parallel()

	var warn bytes.Buffer
	var p Preferences
	p.EnableLanguage(CSS)
	p.ForceVariant(Variant(42))

	r := Resolver{Log: log.New(&warn, "", 0)}
	m := r.Resolve(&p)

	assert.Equal(t, Core, m.Variant)
	assert.Equal(t, "/hljs/js/core.min.js?v=11.7.0", m.Scripts[0].URL())
	assert.Contains(t, warn.String(), "unrecognized highlight.js library Variant(42)")
}

func TestAsset_URL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/a.js", Asset{Path: "/a.js"}.URL())
	assert.Equal(t, "/a.js?v=1.0+beta", Asset{Path: "/a.js", Version: "1.0 beta"}.URL())
}
