// server.go - HTTP surface of the site
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johnretsas/portfolio/internal/blog"
	"github.com/johnretsas/portfolio/internal/config"
	"github.com/johnretsas/portfolio/internal/devserver"
	"github.com/johnretsas/portfolio/internal/render"
	"github.com/johnretsas/portfolio/internal/site"
	"github.com/johnretsas/portfolio/internal/views"
	"github.com/johnretsas/portfolio/web"
)

const shutdownTimeout = 5 * time.Second

type engineOptions struct {
	builder   *views.Builder
	templates *render.Templates
	urls      site.URLs
	static    fs.FS
	visits    *visitLog
	// reload is mounted at devserver.Path when set.
	reload http.Handler
}

func newEngine(opts engineOptions) *gin.Engine {
	r := gin.New()
	// "/blog/" is the listing, not a redirect.
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(gin.Recovery(), requestID())
	if opts.visits != nil {
		r.Use(opts.visits.middleware())
	}
	r.HTMLRender = opts.templates

	// Routes live under the base path; the asset prefix only affects links.
	base := site.URLs{BasePath: opts.urls.BasePath}
	r.StaticFS(base.Asset("/static"), http.FS(opts.static))
	if opts.reload != nil {
		r.GET(devserver.Path, gin.WrapH(opts.reload))
	}

	h := &pageHandler{builder: opts.builder, urls: opts.urls}
	for _, p := range []string{site.HomePath, site.BlogPath, site.BlogPath + "/:id"} {
		path := base.Href(p)
		r.GET(path, h.serve)
		r.HEAD(path, h.serve)
	}
	r.NoRoute(h.serve)
	return r
}

// pageHandler answers every page request: the path is resolved by
// site.Resolve, so registered routes and NoRoute agree on the outcome.
type pageHandler struct {
	builder *views.Builder
	urls    site.URLs
}

func (h *pageHandler) serve(c *gin.Context) {
	if m := c.Request.Method; m != http.MethodGet && m != http.MethodHead {
		c.Header("Allow", "GET, HEAD")
		c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	route := site.Resolve(h.urls.Strip(c.Request.URL.Path))
	c.Set(pageKey, route.Page.String())

	page, err := h.builder.Build(route)
	if err != nil {
		log.Printf("Error building %s: %v", route.Path, err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(page.Status, page.Template, page.Data)
	// Templates render into a buffer, so a failed page has written nothing yet.
	if err := c.Errors.Last(); err != nil && !c.Writer.Written() {
		log.Printf("Error rendering %s: %v", route.Path, err.Err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

// serve runs the HTTP server until ctx is done. In dev mode templates and
// assets come from disk and pages reload when they change.
func serve(ctx context.Context, cfg *config.Config, dev bool) error {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	opts := views.OptionsFrom(cfg)
	templatesFS, staticFS := web.Templates(), web.Static()
	if dev {
		templatesFS, staticFS = os.DirFS(cfg.Dev.TemplatesDir), os.DirFS(cfg.Dev.StaticDir)
		opts.LiveReload = devserver.Path
	}

	templates, err := render.New(templatesFS, nil, web.TemplatePattern)
	if err != nil {
		return err
	}
	visits, err := newVisitLog(nil)
	if err != nil {
		return err
	}

	eo := engineOptions{
		builder:   views.NewBuilder(blog.Default(), opts),
		templates: templates,
		urls:      cfg.URLs(),
		static:    staticFS,
		visits:    visits,
	}
	if dev {
		reloader, err := devserver.New(templates.Reload, cfg.Dev.Debounce, cfg.Dev.TemplatesDir, cfg.Dev.StaticDir)
		if err != nil {
			return err
		}
		defer reloader.Close()
		go reloader.Run(ctx)
		eo.reload = reloader
		log.Printf("Watching %s and %s for changes", cfg.Dev.TemplatesDir, cfg.Dev.StaticDir)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newEngine(eo),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("Serving %s on http://%s", cfg.Site.Title, srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
