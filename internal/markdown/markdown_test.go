package markdown

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/hljspage/internal/hljs"
	"go.abhg.dev/hljspage/internal/page"
	"go.abhg.dev/hljspage/internal/snippet"
)

const _readme = "# Hello *world*\n" +
	"\n" +
	"Some text.\n" +
	"\n" +
	"```go\n" +
	"package main\n" +
	"```\n" +
	"\n" +
	"More text.\n" +
	"\n" +
	"```rs\n" +
	"fn main() {}\n" +
	"```\n" +
	"\n" +
	"```\n" +
	"no language\n" +
	"```\n" +
	"\n" +
	"```klingon\n" +
	"Qapla'\n" +
	"```\n"

func TestConverter(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	c := Converter{Log: log.New(&logs, "", 0)}
	src, err := c.Convert("README.md", []byte(_readme))
	require.NoError(t, err)

	assert.Equal(t, "Hello world", src.Title)
	require.Len(t, src.Components, 5)

	var langs []hljs.Language
	for i, comp := range src.Components {
		assert.Equal(t, i, comp.Weight(), "component %d", i)
		if s, ok := comp.(*snippet.Snippet); ok {
			langs = append(langs, s.Language)
		}
	}
	assert.Equal(t, []hljs.Language{hljs.Go, hljs.Rust}, langs)

	assert.Contains(t, logs.String(), `README.md: unknown language "klingon"`)

	ctx := new(page.Context)
	doc, err := page.New(ctx).
		Add(src.Components...).
		AfterPrepareBody(page.HighlightAction(&hljs.Resolver{})).
		Render()
	require.NoError(t, err)

	body := string(doc.Body)
	for _, want := range []string{
		`<h1 id="hello-world">Hello <em>world</em></h1>`,
		`<p>Some text.</p>`,
		`<pre><code class="language-go">package main</code></pre>`,
		`<pre><code class="language-rust">fn main() {}</code></pre>`,
		`<pre><code class="nohighlight">no language</code></pre>`,
		`<pre><code class="nohighlight">Qapla&#39;</code></pre>`,
	} {
		assert.Contains(t, body, want)
	}
	assert.Less(t,
		strings.Index(body, "Some text."),
		strings.Index(body, "package main"),
		"components must stay in document order")

	assert.Equal(t, []hljs.Language{hljs.Go, hljs.Rust}, ctx.Highlight.Languages())
	assert.Equal(t, hljs.Core, ctx.Manifest.Variant)
}

func TestConverter_noCode(t *testing.T) {
	t.Parallel()

	var c Converter
	src, err := c.Convert("notes.md", []byte("Just a paragraph.\n\n## Not a title\n"))
	require.NoError(t, err)

	assert.Empty(t, src.Title)
	require.Len(t, src.Components, 1)

	ctx := new(page.Context)
	doc, err := page.New(ctx).
		Add(src.Components...).
		AfterPrepareBody(page.HighlightAction(&hljs.Resolver{})).
		Render()
	require.NoError(t, err)

	assert.Contains(t, string(doc.Body), "<p>Just a paragraph.</p>")
	assert.True(t, ctx.Manifest.Empty())
	assert.Empty(t, doc.Scripts)
	assert.Empty(t, doc.StyleSheets)
}

func TestConverter_firstHeadingWins(t *testing.T) {
	t.Parallel()

	var c Converter
	src, err := c.Convert("x.md", []byte("# One\n\n# Two\n"))
	require.NoError(t, err)
	assert.Equal(t, "One", src.Title)
}

func TestConverter_nestedCodeBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc      string
		give      string
		wantBody  []string
		wantLangs []hljs.Language
		wantLog   string
	}{
		{
			desc: "list item",
			give: "# Steps\n\n" +
				"- build:\n\n" +
				"  ```go\n" +
				"  package main\n" +
				"  ```\n",
			wantBody:  []string{`<pre><code class="language-go">package main</code></pre>`},
			wantLangs: []hljs.Language{hljs.Go},
		},
		{
			desc: "block quote",
			give: "> ```rust\n" +
				"> fn main() {}\n" +
				"> ```\n",
			wantBody:  []string{`<pre><code class="language-rust">fn main() {}</code></pre>`},
			wantLangs: []hljs.Language{hljs.Rust},
		},
		{
			desc: "alias is canonicalized",
			give: "- ```golang\n" +
				"  x := 1\n" +
				"  ```\n",
			wantBody:  []string{`<pre><code class="language-go">x := 1</code></pre>`},
			wantLangs: []hljs.Language{hljs.Go},
		},
		{
			desc: "unknown language",
			give: "> ```klingon\n" +
				"> Qapla'\n" +
				"> ```\n",
			wantBody: []string{`<pre><code class="nohighlight">Qapla&#39;</code></pre>`},
			wantLog:  `nested.md: unknown language "klingon"`,
		},
		{
			desc: "mixed with top level",
			give: "```python\nprint(1)\n```\n\n" +
				"- ```go\n" +
				"  package main\n" +
				"  ```\n" +
				"- ```rust\n" +
				"  fn main() {}\n" +
				"  ```\n",
			wantBody: []string{
				`<pre><code class="language-python">print(1)</code></pre>`,
				`<pre><code class="language-go">package main</code></pre>`,
				`<pre><code class="language-rust">fn main() {}</code></pre>`,
			},
			wantLangs: []hljs.Language{hljs.Go, hljs.Python, hljs.Rust},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			c := Converter{Log: log.New(&logs, "", 0)}
			src, err := c.Convert("nested.md", []byte(tt.give))
			require.NoError(t, err)

			ctx := new(page.Context)
			doc, err := page.New(ctx).
				Add(src.Components...).
				AfterPrepareBody(page.HighlightAction(&hljs.Resolver{})).
				Render()
			require.NoError(t, err)

			for _, want := range tt.wantBody {
				assert.Contains(t, string(doc.Body), want)
			}
			assert.Equal(t, tt.wantLangs, ctx.Highlight.Languages())
			assert.Equal(t, len(tt.wantLangs) == 0, ctx.Manifest.Empty())
			if tt.wantLog != "" {
				assert.Contains(t, logs.String(), tt.wantLog)
			}
		})
	}
}

func TestConverter_nestedCodeBlocksLoadScripts(t *testing.T) {
	t.Parallel()

	var c Converter
	src, err := c.Convert("steps.md", []byte("1. Install:\n\n   ```sh\n   make install\n   ```\n"))
	require.NoError(t, err)

	doc, err := page.New(new(page.Context)).
		Add(src.Components...).
		AfterPrepareBody(page.HighlightAction(&hljs.Resolver{})).
		Render()
	require.NoError(t, err)

	assert.Equal(t, []page.Script{
		{Src: "/hljs/js/core.min.js?v=11.7.0"},
		{Src: "/hljs/js/lang/bash.min.js?v=11.7.0"},
	}, doc.Scripts)
}
