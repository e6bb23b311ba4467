package hljs

import (
	"io"
	"log"
	"net/url"
	"strconv"
	"strings"
)

// Version is the version of highlight.js
// that the asset catalogs describe.
// Every asset URL is stamped with it.
const Version = "11.7.0"

// InlineScriptName identifies the inline configuration script
// in a [Manifest].
const InlineScriptName = "highlight.js"

// Asset is a versioned reference to a highlight.js file.
type Asset struct {
	// Path is the URL path of the file, including the prefix.
	Path string

	// Version is the cache-busting version of the file.
	Version string
}

// URL returns the address at which the asset should be requested.
func (a Asset) URL() string {
	if a.Version == "" {
		return a.Path
	}
	return a.Path + "?v=" + url.QueryEscape(a.Version)
}

// InlineScript is a script embedded directly into the page.
type InlineScript struct {
	Name string
	Code string
}

// Manifest lists the assets a page needs for highlighting.
//
// A Manifest with no scripts and no style sheets
// means that nothing should be loaded.
type Manifest struct {
	// Variant and Theme record the effective choices
	// made while resolving.
	// They are meaningless for an empty manifest.
	Variant Variant
	Theme   Theme

	// Scripts to load, in order.
	// The runtime comes first, followed by languages.
	Scripts []Asset

	// Inline configures highlight.js.
	// It must run after all Scripts.
	Inline InlineScript

	// StyleSheets to load, in order.
	StyleSheets []Asset
}

// Empty reports whether the manifest requests nothing.
func (m *Manifest) Empty() bool {
	return len(m.Scripts) == 0 && len(m.StyleSheets) == 0 && m.Inline.Code == ""
}

// Resolver computes the highlight.js assets for a page.
type Resolver struct {
	Config Config

	// Log receives warnings about languages or themes
	// that could not be resolved.
	Log *log.Logger

	// DebugLog, if set, receives verbose diagnostics.
	DebugLog *log.Logger
}

// Resolve builds the asset manifest for the given preferences.
//
// Call it once, after every component of the page
// has had a chance to record its preferences.
// Resolve doesn't modify the preferences,
// and the result depends only on the preferences and r.Config,
// so repeated calls produce identical manifests.
//
// Nothing is loaded if highlighting was disabled,
// or if no language was enabled.
func (r *Resolver) Resolve(p *Preferences) Manifest {
	if p == nil || p.Disabled() {
		return Manifest{}
	}

	langs := p.Languages()
	if len(langs) == 0 {
		return Manifest{}
	}

	logger, debug := r.Log, r.DebugLog
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if debug == nil {
		debug = log.New(io.Discard, "", 0)
	}

	variant, ok := p.Variant()
	if !ok {
		variant = r.Config.Variant
	}
	if variant != Core && variant != Common {
		logger.Printf("warning: unrecognized highlight.js library %v, %q is assumed", variant, Core)
		variant = Core
	}

	m := Manifest{
		Variant: variant,
		Scripts: []Asset{r.asset(variant.runtimePath())},
	}

	switch variant {
	case Core:
		for _, lang := range langs {
			ap, ok := lang.AssetPath()
			if !ok {
				logger.Printf("warning: skipping unknown highlight.js language %v", lang)
				continue
			}
			m.Scripts = append(m.Scripts, r.asset(ap))
		}

	case Common:
		for _, lang := range langs {
			if !lang.InCommon() {
				debug.Printf("%v is not part of the common highlight.js library; it won't be highlighted", lang)
			}
		}
	}

	m.Inline = InlineScript{
		Name: InlineScriptName,
		Code: configScript(r.Config.TabSize),
	}

	theme, ok := p.Theme()
	if !ok {
		theme = r.Config.Theme
	}
	themePath, ok := theme.AssetPath()
	if !ok {
		logger.Printf("warning: unrecognized highlight.js theme %v, %q is assumed", theme, DefaultTheme)
		theme = DefaultTheme
		themePath, _ = theme.AssetPath()
	}
	m.Theme = theme
	m.StyleSheets = []Asset{r.asset(themePath)}

	return m
}

func (r *Resolver) asset(p string) Asset {
	prefix := r.Config.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return Asset{
		Path:    strings.TrimSuffix(prefix, "/") + "/" + p,
		Version: Version,
	}
}

// configScript builds the script that configures highlight.js.
// Language auto-detection is disabled:
// only blocks that name their language are highlighted.
func configScript(tabSize int) string {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}

	var sb strings.Builder
	sb.WriteString("\nhljs.configure({\n")
	sb.WriteString("    tabReplace: '")
	sb.WriteString(strings.Repeat(" ", tabSize))
	sb.WriteString("',\n")
	sb.WriteString("    languages: [],\n")
	sb.WriteString("});\n")
	sb.WriteString("hljs.highlightAll();\n")
	return sb.String()
}

// String renders the manifest as a list of references,
// one per line, in the order they should appear in the page.
// It's intended for debugging.
func (m *Manifest) String() string {
	var sb strings.Builder
	for _, s := range m.Scripts {
		sb.WriteString("script ")
		sb.WriteString(s.URL())
		sb.WriteByte('\n')
	}
	if m.Inline.Code != "" {
		sb.WriteString("inline ")
		sb.WriteString(m.Inline.Name)
		sb.WriteString(" (")
		sb.WriteString(strconv.Itoa(len(m.Inline.Code)))
		sb.WriteString(" bytes)\n")
	}
	for _, s := range m.StyleSheets {
		sb.WriteString("stylesheet ")
		sb.WriteString(s.URL())
		sb.WriteByte('\n')
	}
	return sb.String()
}
