package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/hljspage/internal/flagvalue"
	"go.abhg.dev/hljspage/internal/highlight"
	"go.abhg.dev/hljspage/internal/hljs"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// _envPrefix is the prefix for environment variables
// that set flags: HLJSPAGE_THEME sets -theme.
const _envPrefix = "HLJSPAGE"

// params holds all arguments for hljspage.
type params struct {
	version bool
	help    Help

	Config string
	Debug  flagvalue.FileSwitch

	// Highlighting:
	Library string
	Theme   string
	TabSize int
	Prefix  string
	Langs   []langMapping

	// Output:
	OutputDir   string
	Embed       bool
	Frontmatter string

	// Server:
	HTTP   string
	Assets string

	Inputs []string
}

// Settings returns the highlighting settings specified by the user.
func (p *params) Settings() hljs.Settings {
	return hljs.Settings{
		Library: p.Library,
		Theme:   p.Theme,
		TabSize: p.TabSize,
	}
}

// Extensions returns the extension overrides specified with -lang.
func (p *params) Extensions() map[string]hljs.Language {
	if len(p.Langs) == 0 {
		return nil
	}
	exts := make(map[string]hljs.Language, len(p.Langs))
	for _, lm := range p.Langs {
		exts[lm.Ext] = lm.Lang
	}
	return exts
}

// cliParser parses the command line arguments for hljspage.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("hljspage", flag.ContinueOnError)
	// Parse prints errors with the env and config file sources.
	flag.SetOutput(io.Discard)
	flag.Usage = func() {
		_ = UsageHelp.Write(cmd.Stderr)
	}

	defaults := hljs.DefaultSettings()
	p := params{
		Library: defaults.Library,
		Theme:   defaults.Theme,
		TabSize: defaults.TabSize,
	}

	// Highlighting:
	flag.StringVar(&p.Library, "library", p.Library, "")
	flag.StringVar(&p.Theme, "theme", p.Theme, "")
	flag.IntVar(&p.TabSize, "tab-size", p.TabSize, "")
	flag.StringVar(&p.Prefix, "prefix", hljs.DefaultPrefix, "")
	flag.Var(flagvalue.ListOf(&p.Langs), "lang", "")

	// Output:
	flag.StringVar(&p.OutputDir, "out", "_site", "")
	flag.BoolVar(&p.Embed, "embed", false, "")
	flag.StringVar(&p.Frontmatter, "frontmatter", "", "")

	// Server:
	flag.StringVar(&p.HTTP, "http", "", "")
	flag.StringVar(&p.Assets, "assets", "", "")

	// Program-level:
	flag.StringVar(&p.Config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(parseYAMLConfig),
	)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "hljspage", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Inputs = args
	if len(p.Inputs) == 0 {
		if p.HTTP == "" {
			fmt.Fprintln(cmd.Stderr, "Please provide at least one file or directory.")
			_ = UsageHelp.Write(cmd.Stderr)
			return nil, errInvalidArguments
		}
		p.Inputs = []string{"."}
	}

	return p, nil
}

// langMapping is the value of a -lang flag:
// a file extension and the language for files with that extension.
type langMapping struct {
	Ext  string
	Lang hljs.Language
}

var _ flag.Getter = (*langMapping)(nil)

func (lm *langMapping) Get() any { return *lm }

func (lm *langMapping) String() string {
	return lm.Ext + "=" + lm.Lang.String()
}

// Set parses a mapping in the form ".ext=language".
// The leading "." of the extension is optional,
// and the language may be any name or alias known to Chroma.
func (lm *langMapping) Set(s string) error {
	ext, name, ok := strings.Cut(s, "=")
	ext, name = strings.TrimSpace(ext), strings.TrimSpace(name)
	if !ok || ext == "" || name == "" {
		return errtrace.Errorf("expected form '.ext=language', got %q", s)
	}

	lang, ok := highlight.Lookup(name)
	if !ok {
		return errtrace.Errorf("%q: %w", name, hljs.ErrUnknownLanguage)
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	lm.Ext = strings.ToLower(ext)
	lm.Lang = lang
	return nil
}
