package highlight

import (
	"io"
	"log"
	"path/filepath"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.abhg.dev/hljspage/internal/hljs"
)

// _aliases maps names that Chroma uses
// to highlight.js languages with a different name.
var _aliases = map[string]hljs.Language{
	"html":          hljs.XML,
	"xhtml":         hljs.XML,
	"svg":           hljs.XML,
	"toml":          hljs.INI,
	"console":       hljs.Shell,
	"shell-session": hljs.Shell,
	"postgresql":    hljs.PgSQL,
	"postgres":      hljs.PgSQL,
	"jsx":           hljs.JavaScript,
	"tsx":           hljs.TypeScript,
	"docker":        hljs.Dockerfile,
	"text":          hljs.Plaintext,
}

// Lookup finds the language for a name or alias,
// such as the info string of a fenced code block.
//
//	Lookup("rust")   // hljs.Rust
//	Lookup("golang") // hljs.Go
//	Lookup("sh")     // hljs.Bash
func Lookup(name string) (hljs.Language, bool) {
	if lang, err := hljs.ParseLanguage(name); err == nil {
		return lang, true
	}
	if lang, ok := fromName(name); ok {
		return lang, true
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	l := lexers.Get(name)
	if l == nil {
		return 0, false
	}
	return fromLexer(l)
}

// Detector finds the language of source files.
type Detector struct {
	// Extensions maps file extensions, including the leading ".",
	// to languages.
	// These take precedence over detection.
	Extensions map[string]hljs.Language

	// DebugLog, if set, receives information about detection.
	DebugLog *log.Logger
}

// Detect finds the language of a file from its name.
// If the name is not enough, the contents of the file are analyzed.
// src may be nil.
func (d *Detector) Detect(filename string, src []byte) (hljs.Language, bool) {
	debug := d.DebugLog
	if debug == nil {
		debug = log.New(io.Discard, "", 0)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := d.Extensions[ext]; ok {
		debug.Printf("%v: %v from extension %q", filename, lang, ext)
		return lang, true
	}

	l := lexers.Match(filepath.Base(filename))
	if l == nil && len(src) > 0 {
		l = lexers.Analyse(string(src))
	}
	if l == nil {
		debug.Printf("%v: no lexer found", filename)
		return 0, false
	}

	lang, ok := fromLexer(l)
	if ok {
		debug.Printf("%v: %v from lexer %q", filename, lang, l.Config().Name)
	} else {
		debug.Printf("%v: lexer %q has no highlight.js equivalent", filename, l.Config().Name)
	}
	return lang, ok
}

// fromLexer maps a Chroma lexer to a highlight.js language
// by trying its name first, and then each of its aliases.
func fromLexer(l chroma.Lexer) (hljs.Language, bool) {
	cfg := l.Config()
	if cfg == nil {
		return 0, false
	}

	names := append([]string{cfg.Name}, cfg.Aliases...)
	for _, name := range names {
		if lang, err := hljs.ParseLanguage(name); err == nil {
			return lang, true
		}
		if lang, ok := fromName(name); ok {
			return lang, true
		}
	}
	return 0, false
}

func fromName(name string) (hljs.Language, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if lang, ok := _aliases[key]; ok {
		return lang, true
	}

	// Chroma names may have spaces: "Objective-C", "Protocol Buffer".
	key = strings.ReplaceAll(key, " ", "-")
	if lang, err := hljs.ParseLanguage(key); err == nil {
		return lang, true
	}
	return 0, false
}
