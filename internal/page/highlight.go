package page

import "go.abhg.dev/hljspage/internal/hljs"

// HighlightWeight is the weight of the action
// installed by HighlightAction.
//
// Actions that change highlighting preferences,
// for example to pick a theme,
// must have a lower weight to take effect.
// The default weight of 0 is fine.
const HighlightWeight = 99

// HighlightAction builds an after-body action
// that resolves the page's highlighting preferences
// and adds the resulting assets to the page.
//
// Warnings are written to the page context's logger, if any,
// and to the resolver's logger otherwise.
// A nil resolver behaves like the zero Resolver.
func HighlightAction(r *hljs.Resolver) Action {
	if r == nil {
		r = new(hljs.Resolver)
	}
	return Action{
		Weight: HighlightWeight,
		Run: func(p *Page) {
			ctx := p.Context()

			res := *r
			if ctx.Log != nil {
				res.Log = ctx.Log
			}

			m := res.Resolve(&ctx.Highlight)
			ctx.Manifest = m
			for _, s := range m.Scripts {
				ctx.Assets.AddScript(s.URL())
			}
			if m.Inline.Code != "" {
				ctx.Assets.AddHeadScript(m.Inline.Name, m.Inline.Code)
			}
			for _, s := range m.StyleSheets {
				ctx.Assets.AddStyleSheet(s.URL())
			}
		},
	}
}
