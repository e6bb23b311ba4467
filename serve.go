package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.abhg.dev/hljspage/internal/highlight"
	"go.abhg.dev/hljspage/internal/hljs"
	"go.abhg.dev/hljspage/internal/html"
	"go.abhg.dev/hljspage/internal/markdown"
	"go.abhg.dev/hljspage/internal/page"
	"go.abhg.dev/hljspage/internal/snippet"
)

// ServerConfig configures a [Server].
type ServerConfig struct {
	Log      *log.Logger
	DebugLog *log.Logger

	// Root is the directory holding the pages.
	Root string

	// AssetsDir, if set, is a directory of highlight.js files
	// served under the resolver's prefix.
	AssetsDir string

	Resolver *hljs.Resolver
	Detector *highlight.Detector
	Markdown *markdown.Converter
	Renderer *html.Renderer

	// Registry receives the server's metrics.
	// A new registry is used if unset.
	Registry *prometheus.Registry
}

// Server renders pages on every request.
//
// Pages may pick their highlighting with query parameters:
//
//	?theme=github       use the github theme
//	?library=common     load the common bundle
//	?highlight=off      load no highlight.js files at all
type Server struct {
	log      *log.Logger
	debugLog *log.Logger
	pages    fs.FS
	assets   string
	resolver *hljs.Resolver
	detector *highlight.Detector
	markdown *markdown.Converter
	renderer *html.Renderer
	registry *prometheus.Registry

	pagesRendered *prometheus.CounterVec
	renderErrors  prometheus.Counter
}

// NewServer builds a server for the given configuration.
func NewServer(cfg ServerConfig) *Server {
	s := Server{
		log:      cfg.Log,
		debugLog: cfg.DebugLog,
		pages:    os.DirFS(cfg.Root),
		assets:   cfg.AssetsDir,
		resolver: cfg.Resolver,
		detector: cfg.Detector,
		markdown: cfg.Markdown,
		renderer: cfg.Renderer,
		registry: cfg.Registry,
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}
	if s.debugLog == nil {
		s.debugLog = log.New(io.Discard, "", 0)
	}
	if s.resolver == nil {
		s.resolver = new(hljs.Resolver)
	}
	if s.detector == nil {
		s.detector = new(highlight.Detector)
	}
	if s.markdown == nil {
		s.markdown = new(markdown.Converter)
	}
	if s.renderer == nil {
		s.renderer = new(html.Renderer)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	s.pagesRendered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hljspage",
		Name:      "pages_rendered_total",
		Help:      "Pages rendered, by the highlight.js library they load.",
	}, []string{"library"})
	s.renderErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hljspage",
		Name:      "render_errors_total",
		Help:      "Pages that failed to render.",
	})
	s.registry.MustRegister(s.pagesRendered, s.renderErrors)

	return &s
}

// _noLibrary labels pages that load no highlight.js files.
const _noLibrary = "none"

// Handler returns the HTTP handler for this server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  s.log,
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Handle("/"+html.StaticDir+"/*", http.StripPrefix(
		"/"+html.StaticDir+"/",
		http.FileServer(http.FS(html.StaticFS())),
	))

	if s.assets != "" {
		prefix := s.resolver.Config.Prefix
		if prefix == "" {
			prefix = hljs.DefaultPrefix
		}
		prefix = strings.TrimSuffix(prefix, "/")
		if strings.HasPrefix(prefix, "/") {
			r.Handle(prefix+"/*", http.StripPrefix(
				prefix+"/",
				http.FileServer(http.Dir(s.assets)),
			))
		} else {
			s.log.Printf("warning: not serving %v: prefix %q is not a path", s.assets, prefix)
		}
	}

	r.Get("/*", s.servePage)
	return r
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if name == "" {
		name = "index"
	}

	ctx := page.NewContext(r, s.log)
	w.Header().Set("X-Request-Id", ctx.ID)

	body, err := s.renderPage(ctx, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		http.NotFound(w, r)
		return
	case err != nil:
		s.renderErrors.Inc()
		ctx.Logger().Printf("render %v: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	library := _noLibrary
	if !ctx.Manifest.Empty() {
		library = ctx.Manifest.Variant.String()
	}
	s.pagesRendered.WithLabelValues(library).Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

// renderPage renders the page with the given name.
// "guide/install" is served from guide/install.md if it exists,
// and from the source file guide/install otherwise.
func (s *Server) renderPage(ctx *page.Context, name string) ([]byte, error) {
	pg := page.New(ctx)
	if src, err := fs.ReadFile(s.pages, name+".md"); err == nil {
		doc, err := s.markdown.Convert(name+".md", src)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		pg.Title = doc.Title
		pg.Add(doc.Components...)
	} else {
		src, err := fs.ReadFile(s.pages, name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if isMarkdown(name) {
			doc, err := s.markdown.Convert(name, src)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			pg.Title = doc.Title
			pg.Add(doc.Components...)
		} else {
			lang, ok := s.detector.Detect(name, src)
			if !ok {
				return nil, errtrace.Errorf("%v: unknown language: %w", name, fs.ErrNotExist)
			}
			pg.Title = name
			pg.Add(snippet.New(lang, string(src)))
		}
	}

	pg.AfterPrepareBody(
		queryAction(),
		page.HighlightAction(s.resolver),
	)

	doc, err := pg.Render()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	s.debugLog.Printf("[%v] %v: highlight.js manifest:\n%v", ctx.ID, name, &ctx.Manifest)

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, &html.PageInfo{
		Document: doc,
		Path:     name,
	}); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return buf.Bytes(), nil
}

// queryAction builds an action that applies highlighting preferences
// from the request's query parameters.
func queryAction() page.Action {
	return page.Action{
		Run: func(p *page.Page) {
			ctx := p.Context()
			if ctx.Request == nil {
				return
			}
			q := ctx.Request.URL.Query()
			logger := ctx.Logger()

			if name := q.Get("theme"); name != "" {
				if theme, err := hljs.ParseTheme(name); err == nil {
					ctx.Highlight.SetTheme(theme)
				} else {
					logger.Printf("warning: ignoring theme: %v", err)
				}
			}

			if name := q.Get("library"); name != "" {
				if v, err := hljs.ParseVariant(name); err == nil {
					ctx.Highlight.ForceVariant(v)
				} else {
					logger.Printf("warning: ignoring library: %v", err)
				}
			}

			if q.Get("highlight") == "off" {
				ctx.Highlight.Disable()
			}
		},
	}
}

// listenAndServe serves srv on addr until ctx is canceled.
func listenAndServe(ctx context.Context, srv *Server, addr string) error {
	httpSrv := http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		srv.log.Printf("Serving on http://%v", addr)
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errtrace.Wrap(err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return errtrace.Wrap(httpSrv.Shutdown(shutdownCtx))
	}
}
