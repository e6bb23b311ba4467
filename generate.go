package main

import (
	"bytes"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/hljspage/internal/errdefer"
	"go.abhg.dev/hljspage/internal/highlight"
	"go.abhg.dev/hljspage/internal/hljs"
	"go.abhg.dev/hljspage/internal/html"
	"go.abhg.dev/hljspage/internal/markdown"
	"go.abhg.dev/hljspage/internal/page"
	"go.abhg.dev/hljspage/internal/snippet"
)

// Renderer renders prepared pages to HTML.
type Renderer interface {
	WriteStatic(string) error
	RenderPage(io.Writer, *html.PageInfo) error
}

var _ Renderer = (*html.Renderer)(nil)

// Generator generates pages for user-specified files.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	DebugLog *log.Logger
	Resolver *hljs.Resolver
	Detector *highlight.Detector
	Markdown *markdown.Converter
	Renderer Renderer
	OutDir   string
}

// sourceFile is an input file and its place in the output.
type sourceFile struct {
	// Path to the file on disk.
	Path string

	// Path of the page relative to the output directory,
	// using forward slashes and without the .html extension.
	Page string

	// Explicit is set if the file was named on the command line.
	Explicit bool
}

// Generate renders a page for each input.
// Inputs that are directories are searched for Markdown and source files.
func (g *Generator) Generate(inputs []string) error {
	g.init()

	var files []sourceFile
	for _, input := range inputs {
		found, err := g.find(input)
		if err != nil {
			return errtrace.Wrap(err)
		}
		files = append(files, found...)
	}

	pages := make(map[string]string, len(files)) // page => path
	for _, f := range files {
		if prev, ok := pages[f.Page]; ok {
			return errtrace.Errorf("%v and %v both render to %v.html", prev, f.Path, f.Page)
		}
		pages[f.Page] = f.Path
	}

	if err := g.Renderer.WriteStatic(g.OutDir); err != nil {
		return errtrace.Wrap(err)
	}

	var rendered int
	for _, f := range files {
		ok, err := g.renderFile(f)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if ok {
			rendered++
		}
	}

	g.Log.Printf("Rendered %d pages to %v", rendered, g.OutDir)
	return nil
}

func (g *Generator) init() {
	if g.Log == nil {
		g.Log = log.New(io.Discard, "", 0)
	}
	if g.DebugLog == nil {
		g.DebugLog = log.New(io.Discard, "", 0)
	}
	if g.Resolver == nil {
		g.Resolver = new(hljs.Resolver)
	}
	if g.Detector == nil {
		g.Detector = new(highlight.Detector)
	}
	if g.Markdown == nil {
		g.Markdown = new(markdown.Converter)
	}
}

func (g *Generator) find(input string) ([]sourceFile, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if !info.IsDir() {
		return []sourceFile{{
			Path:     input,
			Page:     pageName(filepath.Base(input)),
			Explicit: true,
		}}, nil
	}

	outDir, err := filepath.Abs(g.OutDir)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var files []sourceFile
	err = filepath.WalkDir(input, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if p != input && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			if abs, err := filepath.Abs(p); err == nil && abs == outDir {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		rel, err := filepath.Rel(input, p)
		if err != nil {
			return err
		}
		files = append(files, sourceFile{
			Path: p,
			Page: pageName(filepath.ToSlash(rel)),
		})
		return nil
	})
	return files, errtrace.Wrap(err)
}

// pageName builds the name of the page for a file.
// Markdown files lose their extension: "guide/install.md" is "guide/install".
// Other files keep it so that "main.go" and "main.md" don't collide.
func pageName(rel string) string {
	if isMarkdown(rel) {
		return strings.TrimSuffix(rel, path.Ext(rel))
	}
	return rel
}

func isMarkdown(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".md", ".markdown":
		return true
	default:
		return false
	}
}

// renderFile renders the page for a single file.
// It reports false if the file was skipped.
func (g *Generator) renderFile(f sourceFile) (ok bool, err error) {
	src, err := os.ReadFile(f.Path)
	if err != nil {
		return false, errtrace.Wrap(err)
	}

	ctx := &page.Context{Log: g.Log}
	pg := page.New(ctx)
	if isMarkdown(f.Path) {
		doc, err := g.Markdown.Convert(f.Path, src)
		if err != nil {
			return false, errtrace.Wrap(err)
		}
		pg.Title = doc.Title
		pg.Add(doc.Components...)
	} else {
		lang, ok := g.Detector.Detect(f.Path, src)
		if !ok {
			if !f.Explicit {
				g.DebugLog.Printf("%v: skipped: unknown language", f.Path)
				return false, nil
			}
			g.Log.Printf("warning: %v: unknown language, %q is assumed", f.Path, hljs.Plaintext)
			lang = hljs.Plaintext
		}
		pg.Title = f.Page
		pg.Add(snippet.New(lang, string(src)))
	}
	pg.AfterPrepareBody(page.HighlightAction(g.Resolver))

	doc, err := pg.Render()
	if err != nil {
		return false, errtrace.Errorf("%v: %w", f.Path, err)
	}
	g.DebugLog.Printf("%v: highlight.js manifest:\n%v", f.Page, &ctx.Manifest)

	var buf bytes.Buffer
	if err := g.Renderer.RenderPage(&buf, &html.PageInfo{
		Document: doc,
		Path:     f.Page,
	}); err != nil {
		return false, errtrace.Errorf("%v: %w", f.Path, err)
	}

	return true, errtrace.Wrap(g.writePage(f.Page, buf.Bytes()))
}

func (g *Generator) writePage(name string, body []byte) (err error) {
	outPath := filepath.Join(g.OutDir, filepath.FromSlash(name)+".html")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o1755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	_, err = f.Write(body)
	return errtrace.Wrap(err)
}
