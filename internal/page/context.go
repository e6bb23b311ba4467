package page

import (
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"go.abhg.dev/hljspage/internal/hljs"
)

// Context holds the state of a single page render.
// It must not be shared between renders.
type Context struct {
	// ID identifies this render in logs.
	ID string

	// Request that triggered this render.
	// This is nil for pages rendered ahead of time.
	Request *http.Request

	// Log receives warnings for this render.
	// If unset, warnings are discarded.
	Log *log.Logger

	// Highlight accumulates syntax highlighting preferences
	// expressed by the page's components and actions.
	Highlight hljs.Preferences

	// Assets referenced from the page's head.
	Assets Assets

	// Manifest is the highlighting manifest resolved for this page.
	// It's set by the action returned by HighlightAction.
	Manifest hljs.Manifest
}

// NewContext builds a context for a page rendered in response to a request.
// Every context gets a new ID,
// and messages written to its logger are prefixed with it.
func NewContext(req *http.Request, logger *log.Logger) *Context {
	id := uuid.NewString()
	ctx := Context{
		ID:      id,
		Request: req,
	}
	if logger != nil {
		ctx.Log = log.New(logger.Writer(), logger.Prefix()+"["+id+"] ", logger.Flags())
	}
	return &ctx
}

// Logger returns the logger for this context.
// This is never nil.
func (c *Context) Logger() *log.Logger {
	if c.Log == nil {
		c.Log = log.New(io.Discard, "", 0)
	}
	return c.Log
}
