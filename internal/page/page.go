package page

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"braces.dev/errtrace"
)

// Action runs after a page's body has been prepared.
type Action struct {
	// Weight orders actions.
	// Actions with lower weights run first.
	// Actions with equal weights run in the order they were added.
	Weight int

	// Run performs the action.
	Run func(*Page)
}

// Page is a web page under construction.
type Page struct {
	// Title of the page.
	Title string

	ctx        *Context
	components []Component
	actions    []Action
}

// New starts a new page that will render within the given context.
func New(ctx *Context) *Page {
	if ctx == nil {
		ctx = new(Context)
	}
	return &Page{ctx: ctx}
}

// Context returns the context this page renders in.
func (p *Page) Context() *Context {
	return p.ctx
}

// Add appends components to the body of the page.
func (p *Page) Add(cs ...Component) *Page {
	p.components = append(p.components, cs...)
	return p
}

// AfterPrepareBody registers actions to run
// after the body of the page has been prepared.
func (p *Page) AfterPrepareBody(actions ...Action) *Page {
	p.actions = append(p.actions, actions...)
	return p
}

// Document is a fully prepared page.
type Document struct {
	Title string

	Scripts     []Script
	StyleSheets []StyleSheet
	HeadScripts []HeadScript

	Body template.HTML
}

// Render prepares the body of the page,
// runs the after-body actions,
// and returns the resulting document.
//
// Render should be called once per page.
func (p *Page) Render() (*Document, error) {
	body, err := p.prepareBody()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	actions := append([]Action(nil), p.actions...)
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Weight < actions[j].Weight
	})
	for _, a := range actions {
		if a.Run != nil {
			a.Run(p)
		}
	}

	return &Document{
		Title:       p.Title,
		Scripts:     p.ctx.Assets.Scripts(),
		StyleSheets: p.ctx.Assets.StyleSheets(),
		HeadScripts: p.ctx.Assets.HeadScripts(),
		Body:        body,
	}, nil
}

func (p *Page) prepareBody() (template.HTML, error) {
	components := append([]Component(nil), p.components...)
	sort.SliceStable(components, func(i, j int) bool {
		return components[i].Weight() < components[j].Weight()
	})

	var sb strings.Builder
	for i, c := range components {
		if !c.IsRenderable(p.ctx) {
			continue
		}

		if bp, ok := c.(BeforePreparer); ok {
			bp.BeforePrepare(p.ctx)
		}

		out, err := c.Prepare(p.ctx)
		if err != nil {
			return "", errtrace.Wrap(fmt.Errorf("prepare component %d (%T): %w", i, c, err))
		}
		if len(out) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(out))
	}
	return template.HTML(sb.String()), nil
}
