// Package html renders prepared pages into HTML documents.
package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	ttemplate "text/template"

	"braces.dev/errtrace"
	"go.abhg.dev/hljspage/internal/must"
	"go.abhg.dev/hljspage/internal/page"
)

// StaticDir is the directory, relative to the root of the site,
// that holds the site's own static files.
const StaticDir = "_"

var (
	//go:embed tmpl/*.html
	_tmplFS embed.FS

	//go:embed static/**
	_staticFS embed.FS

	// Trick borrowed from pkgsite:
	// Unusable function references at parse time,
	// and then Clone and replace at render time.
	// This way, template validity is still
	// verified at init.
	_pageTmpl = template.Must(
		template.New("layout.html").
			Funcs((*render)(nil).FuncMap()).
			ParseFS(_tmplFS, "tmpl/layout.html"),
	)
)

// StaticFS returns the site's own static files.
// Paths inside it are relative to StaticDir.
func StaticFS() fs.FS {
	static, err := fs.Sub(_staticFS, "static")
	must.NotErrorf(err, "static files must be embedded")
	return static
}

// Renderer renders prepared pages into HTML.
type Renderer struct {
	// Path to the home page of the site.
	// Links to static files are relative to this.
	Home string

	// Whether we're in embedded mode.
	// In this mode, output will only contain the page body
	// preceded by the assets it needs,
	// and will not be a complete HTML document.
	Embedded bool

	// FrontMatter to include at the top of each file, if any.
	FrontMatter *ttemplate.Template

	// NormalizeRelativePath is an optional function that
	// normalizes relative paths printed in the generated HTML.
	NormalizeRelativePath func(string) string
}

func (r *Renderer) templateName() string {
	if r.Embedded {
		return "Embedded"
	}
	return "Page"
}

// WriteStatic dumps the site's static files into the given directory.
//
// This is a no-op if the renderer is running in embedded mode.
func (r *Renderer) WriteStatic(dir string) error {
	if r.Embedded {
		return nil
	}

	dir = filepath.Join(dir, StaticDir)
	static := StaticFS()
	return errtrace.Wrap(fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == "." {
			return err
		}

		outPath := filepath.Join(dir, path)
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o1755)
		}

		bs, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return os.WriteFile(outPath, bs, 0o644)
	}))
}

type frontmatterData struct {
	Title    string
	Path     string
	Basename string
}

func (r *Renderer) renderFrontmatter(w io.Writer, d frontmatterData) error {
	if r.FrontMatter == nil {
		return nil
	}

	var buff bytes.Buffer
	if err := r.FrontMatter.Execute(&buff, d); err != nil {
		return errtrace.Wrap(err)
	}

	bs := bytes.TrimSpace(buff.Bytes())
	if len(bs) == 0 {
		return nil
	}
	bs = append(bs, '\n', '\n')

	_, err := w.Write(bs)
	return errtrace.Wrap(err)
}

// PageInfo specifies the page that should be rendered.
type PageInfo struct {
	// Prepared page.
	*page.Document

	// Path of the page relative to the root of the site,
	// without an extension.
	// For example, "guide/install".
	Path string
}

// Basename is the last component of this page's path.
func (p *PageInfo) Basename() string {
	return path.Base(p.Path)
}

// RenderPage renders a prepared page into HTML.
func (r *Renderer) RenderPage(w io.Writer, info *PageInfo) error {
	err := r.renderFrontmatter(w, frontmatterData{
		Title:    info.Title,
		Path:     info.Path,
		Basename: info.Basename(),
	})
	if err != nil {
		return errtrace.Wrap(err)
	}

	render := render{
		Home:                  r.Home,
		Path:                  info.Path,
		NormalizeRelativePath: r.NormalizeRelativePath,
	}
	return errtrace.Wrap(template.Must(_pageTmpl.Clone()).
		Funcs(render.FuncMap()).
		ExecuteTemplate(w, r.templateName(), info))
}

type render struct {
	Home string
	Path string

	NormalizeRelativePath func(string) string
}

func (r *render) FuncMap() template.FuncMap {
	return template.FuncMap{
		"static":       r.static,
		"relativePath": r.relativePath,
		"trustedJS": func(code string) template.JS {
			// Head scripts come from trusted page actions.
			return template.JS(code)
		},
	}
}

// relativePath returns a path to p relative to the directory
// that holds the page being rendered.
func (r *render) relativePath(p string) string {
	dir := path.Dir(r.Path)
	if dir == "." {
		dir = ""
	}
	if path.IsAbs(dir) != path.IsAbs(p) {
		// Mixed forms can't be made relative.
		// Use the target as-is.
		return p
	}

	p = relPath(dir, p)
	if r.NormalizeRelativePath != nil {
		p = r.NormalizeRelativePath(p)
	}
	return p
}

func (r *render) static(p string) string {
	return r.relativePath(path.Join(r.Home, StaticDir, p))
}
