// Package markdown turns Markdown documents into page components.
//
// Fenced code blocks become [snippet.Snippet] components
// so that they contribute to the page's highlighting preferences.
// Code blocks nested in lists or block quotes stay inline,
// but their languages are enabled all the same.
// Everything else is rendered to HTML with goldmark.
package markdown

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strings"

	"braces.dev/errtrace"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/hljspage/internal/highlight"
	"go.abhg.dev/hljspage/internal/hljs"
	"go.abhg.dev/hljspage/internal/page"
	"go.abhg.dev/hljspage/internal/snippet"
)

// Converter converts Markdown documents into page components.
//
// The zero value is ready to use.
type Converter struct {
	// Log receives warnings about the document,
	// for example code blocks in unknown languages.
	Log *log.Logger

	md goldmark.Markdown
}

// Source is a converted Markdown document.
type Source struct {
	// Title is the text of the first level 1 heading.
	// It's empty if the document doesn't have one.
	Title string

	// Components of the document in order.
	Components []page.Component
}

// Convert parses a Markdown document
// and splits it into page components.
//
// name identifies the document in warnings.
func (c *Converter) Convert(name string, src []byte) (*Source, error) {
	if c.md == nil {
		c.md = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(renderer.WithNodeRenderers(
				util.Prioritized(fenceRenderer{}, 200),
			)),
		)
	}
	logger := c.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	doc := c.md.Parser().Parse(text.NewReader(src))

	b := sourceBuilder{
		md:     c.md,
		src:    src,
		name:   name,
		logger: logger,
	}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if err := b.add(n); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	b.flush()

	return &b.out, nil
}

type sourceBuilder struct {
	md     goldmark.Markdown
	src    []byte
	name   string
	logger *log.Logger

	out          Source
	pending      bytes.Buffer    // rendered HTML not yet in a component
	pendingLangs []hljs.Language // languages of code blocks nested in pending
}

func (b *sourceBuilder) add(n ast.Node) error {
	if h, ok := n.(*ast.Heading); ok && h.Level == 1 && b.out.Title == "" {
		b.out.Title = nodeText(h, b.src)
	}

	fence, ok := n.(*ast.FencedCodeBlock)
	if !ok {
		b.collectNested(n)
		return errtrace.Wrap(b.md.Renderer().Render(&b.pending, b.src, n))
	}

	code := blockText(fence, b.src)
	info := string(fence.Language(b.src))
	if info == "" {
		b.plain(code)
		return nil
	}

	lang, ok := highlight.Lookup(info)
	if !ok {
		b.logger.Printf("warning: %v: unknown language %q in code block, not highlighted", b.name, info)
		b.plain(code)
		return nil
	}

	b.flush()
	s := snippet.New(lang, code)
	s.Order = len(b.out.Components)
	b.out.Components = append(b.out.Components, s)
	return nil
}

// collectNested records the languages of fenced code blocks
// inside lists, block quotes and other containers.
// fenceRenderer renders these blocks.
func (b *sourceBuilder) collectNested(n ast.Node) {
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		if info := string(fence.Language(b.src)); info != "" {
			if lang, ok := highlight.Lookup(info); ok {
				b.pendingLangs = append(b.pendingLangs, lang)
			} else {
				b.logger.Printf("warning: %v: unknown language %q in code block, not highlighted", b.name, info)
			}
		}
		return ast.WalkSkipChildren, nil
	})
}

// plain renders a code block that highlight.js must leave alone.
func (b *sourceBuilder) plain(code string) {
	b.pending.WriteString(`<pre><code class="nohighlight">`)
	template.HTMLEscape(&b.pending, []byte(strings.TrimRight(code, "\n")))
	b.pending.WriteString("</code></pre>\n")
}

func (b *sourceBuilder) flush() {
	markup := strings.TrimSpace(b.pending.String())
	langs := b.pendingLangs
	b.pending.Reset()
	b.pendingLangs = nil
	if markup == "" {
		return
	}

	html := page.HTML{
		Markup: template.HTML(markup),
		Order:  len(b.out.Components),
	}
	if len(langs) == 0 {
		b.out.Components = append(b.out.Components, &html)
		return
	}
	b.out.Components = append(b.out.Components, &codeHTML{
		HTML:      html,
		Languages: langs,
	})
}

// codeHTML is pre-rendered markup that holds highlighted code blocks.
// It enables their languages when it's rendered.
type codeHTML struct {
	page.HTML

	Languages []hljs.Language
}

var _ page.BeforePreparer = (*codeHTML)(nil)

func (c *codeHTML) BeforePrepare(ctx *page.Context) {
	for _, lang := range c.Languages {
		ctx.Highlight.EnableLanguage(lang)
	}
}

// fenceRenderer renders fenced code blocks that goldmark reaches
// inside other blocks.
// Blocks are marked up the same way as top-level blocks:
// with the canonical highlight.js language name if it's known,
// and as "nohighlight" otherwise.
type fenceRenderer struct{}

func (fenceRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, renderFence)
}

func renderFence(w util.BufWriter, src []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	fence := n.(*ast.FencedCodeBlock)

	class := "nohighlight"
	if lang, ok := highlight.Lookup(string(fence.Language(src))); ok {
		class = "language-" + lang.String()
	}

	_, _ = w.WriteString(`<pre><code class="`)
	_, _ = w.WriteString(class)
	_, _ = w.WriteString(`">`)
	template.HTMLEscape(w, []byte(strings.TrimRight(blockText(fence, src), "\n")))
	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkSkipChildren, nil
}

func blockText(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}

func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Segment.Value(src))
			if n.SoftLineBreak() || n.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
