package page

import "html/template"

// Renderable decides whether a component should be rendered
// in the given context.
type Renderable func(*Context) bool

// Always is a Renderable that renders in every context.
func Always(*Context) bool { return true }

// Component is a unit of content on a page.
type Component interface {
	// Weight orders the component relative to its siblings.
	// Components with lower weights are rendered first.
	// Components with equal weights keep the order they were added in.
	Weight() int

	// IsRenderable reports whether the component
	// should be rendered at all.
	IsRenderable(*Context) bool

	// Prepare renders the component into HTML.
	Prepare(*Context) (template.HTML, error)
}

// BeforePreparer is implemented by components that need to
// record something on the context before they're prepared.
// This is where components register the assets they need.
//
// BeforePrepare is only called for components that will be rendered.
type BeforePreparer interface {
	BeforePrepare(*Context)
}

// HTML is a component holding markup that is already rendered.
type HTML struct {
	// Markup to include in the page as-is.
	Markup template.HTML

	// Order is the weight of this component.
	Order int

	// Visible decides whether the markup is rendered.
	// If unset, it's always rendered.
	Visible Renderable
}

var _ Component = (*HTML)(nil)

// Weight returns h.Order.
func (h *HTML) Weight() int { return h.Order }

// IsRenderable reports whether h should be rendered.
func (h *HTML) IsRenderable(ctx *Context) bool {
	if h.Visible == nil {
		return true
	}
	return h.Visible(ctx)
}

// Prepare returns the markup.
func (h *HTML) Prepare(*Context) (template.HTML, error) {
	return h.Markup, nil
}
