// hljspage renders Markdown documents and source files into HTML pages
// highlighted in the browser by highlight.js.
// Each page references only the highlight.js files it needs.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	ttemplate "text/template"

	"braces.dev/errtrace"
	"go.abhg.dev/hljspage/internal/errdefer"
	"go.abhg.dev/hljspage/internal/highlight"
	"go.abhg.dev/hljspage/internal/hljs"
	"go.abhg.dev/hljspage/internal/html"
	"go.abhg.dev/hljspage/internal/markdown"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	// serve, if set, replaces ListenAndServe in tests.
	serve func(context.Context, *Server, string) error

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("hljspage: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugLog, closeDebug, err := opts.Debug.Logger(cmd.Stderr, "debug: ")
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)

	cfg := opts.Settings().Config(cmd.log)
	cfg.Prefix = opts.Prefix
	resolver := hljs.Resolver{
		Config:   cfg,
		Log:      cmd.log,
		DebugLog: debugLog,
	}

	renderer := html.Renderer{
		Embedded: opts.Embed,
	}
	if opts.Frontmatter != "" {
		bs, err := os.ReadFile(opts.Frontmatter)
		if err != nil {
			return errtrace.Wrap(err)
		}

		tmpl, err := ttemplate.New(opts.Frontmatter).Parse(string(bs))
		if err != nil {
			return errtrace.Errorf("bad frontmatter template: %w", err)
		}
		renderer.FrontMatter = tmpl
	}

	detector := highlight.Detector{
		Extensions: opts.Extensions(),
		DebugLog:   debugLog,
	}
	converter := markdown.Converter{Log: cmd.log}

	if opts.HTTP == "" {
		gen := Generator{
			Log:      cmd.log,
			DebugLog: debugLog,
			Resolver: &resolver,
			Detector: &detector,
			Markdown: &converter,
			Renderer: &renderer,
			OutDir:   opts.OutputDir,
		}
		return errtrace.Wrap(gen.Generate(opts.Inputs))
	}

	undo, err := maxprocs.Set(maxprocs.Logger(debugLog.Printf))
	if err != nil {
		cmd.log.Printf("warning: unable to set GOMAXPROCS: %v", err)
	} else {
		defer undo()
	}

	srv := NewServer(ServerConfig{
		Log:       cmd.log,
		DebugLog:  debugLog,
		Root:      opts.Inputs[0],
		AssetsDir: opts.Assets,
		Resolver:  &resolver,
		Detector:  &detector,
		Markdown:  &converter,
		Renderer:  &renderer,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serve := cmd.serve
	if serve == nil {
		serve = listenAndServe
	}
	return errtrace.Wrap(serve(ctx, srv, opts.HTTP))
}
