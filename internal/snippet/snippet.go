// Package snippet provides a page component that displays
// a block of source code highlighted by highlight.js.
package snippet

import (
	"bytes"
	"html/template"
	"strings"

	"go.abhg.dev/hljspage/internal/hljs"
	"go.abhg.dev/hljspage/internal/page"
)

// Snippet is a block of code in a single language.
//
// When a Snippet is rendered,
// it enables its language on the page so that
// the matching highlight.js assets are loaded.
type Snippet struct {
	// Language of the code.
	Language hljs.Language

	// Code to display.
	// It's escaped but otherwise rendered as-is.
	Code string

	// Order is the weight of the snippet among its siblings.
	Order int

	// Visible decides whether the snippet is rendered.
	// If unset, it's always rendered.
	Visible page.Renderable
}

var (
	_ page.Component      = (*Snippet)(nil)
	_ page.BeforePreparer = (*Snippet)(nil)
)

// New builds a snippet for the given code.
// Leading and trailing whitespace is removed from the code.
func New(lang hljs.Language, code string) *Snippet {
	return &Snippet{
		Language: lang,
		Code:     strings.TrimSpace(code),
	}
}

// Weight returns s.Order.
func (s *Snippet) Weight() int { return s.Order }

// IsRenderable reports whether the snippet should be rendered.
func (s *Snippet) IsRenderable(ctx *page.Context) bool {
	if s.Visible == nil {
		return true
	}
	return s.Visible(ctx)
}

// BeforePrepare enables the snippet's language for the page.
func (s *Snippet) BeforePrepare(ctx *page.Context) {
	ctx.Highlight.EnableLanguage(s.Language)
}

// Prepare renders the snippet as a <pre><code> block
// with a class naming its language.
func (s *Snippet) Prepare(*page.Context) (template.HTML, error) {
	var buf bytes.Buffer
	buf.WriteString(`<pre><code class="language-`)
	template.HTMLEscape(&buf, []byte(s.Language.String()))
	buf.WriteString(`">`)
	template.HTMLEscape(&buf, []byte(s.Code))
	buf.WriteString("</code></pre>")
	return template.HTML(buf.String()), nil
}
