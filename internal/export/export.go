// Package export pre-renders every route of the site into a directory that a
// static host can serve.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnretsas/portfolio/internal/blog"
	"github.com/johnretsas/portfolio/internal/site"
	"github.com/johnretsas/portfolio/internal/views"
)

// NotFoundFile is the page static hosts serve for unknown paths.
const NotFoundFile = "404.html"

// PageBuilder resolves a route to a page.
type PageBuilder interface {
	Build(route site.Route) (views.Page, error)
}

// Renderer executes a named template.
type Renderer interface {
	Execute(w io.Writer, name string, data any) error
}

type Options struct {
	OutDir string
	// TrailingSlash writes blog/index.html instead of blog.html.
	TrailingSlash bool
	// Static is copied under OutDir/static when set.
	Static fs.FS
	// Clean removes OutDir before writing.
	Clean bool
}

// PageFile records one written page.
type PageFile struct {
	Path   string
	File   string
	Status int
	Bytes  int64
}

type Result struct {
	OutDir  string
	Pages   []PageFile
	Assets  []string
	Elapsed time.Duration
}

// Run writes every navigable path of catalog plus the not-found page.
func Run(ctx context.Context, catalog *blog.Catalog, b PageBuilder, r Renderer, opts Options) (*Result, error) {
	start := time.Now()
	if opts.OutDir == "" {
		return nil, fmt.Errorf("export: no output directory")
	}
	if opts.Clean {
		if err := os.RemoveAll(opts.OutDir); err != nil {
			return nil, fmt.Errorf("export: clean %s: %w", opts.OutDir, err)
		}
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create %s: %w", opts.OutDir, err)
	}

	res := &Result{OutDir: opts.OutDir}
	for _, p := range site.Paths(catalog) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := b.Build(site.Resolve(p))
		if err != nil {
			return nil, fmt.Errorf("export: build %s: %w", p, err)
		}
		if page.Status != http.StatusOK {
			return nil, fmt.Errorf("export: %s resolved to status %d", p, page.Status)
		}
		pf, err := writePage(opts.OutDir, FileFor(p, opts.TrailingSlash), p, page, r)
		if err != nil {
			return nil, err
		}
		res.Pages = append(res.Pages, pf)
	}

	notFound, err := b.Build(site.Route{Page: site.PageNotFound, Path: "/" + NotFoundFile})
	if err != nil {
		return nil, fmt.Errorf("export: build not-found page: %w", err)
	}
	pf, err := writePage(opts.OutDir, NotFoundFile, "/"+NotFoundFile, notFound, r)
	if err != nil {
		return nil, err
	}
	res.Pages = append(res.Pages, pf)

	if opts.Static != nil {
		assets, err := copyStatic(ctx, opts.Static, filepath.Join(opts.OutDir, "static"))
		if err != nil {
			return nil, err
		}
		res.Assets = assets
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// FileFor maps a site path to the file that serves it, relative to the
// output directory and slash separated.
func FileFor(sitePath string, trailingSlash bool) string {
	p := strings.TrimPrefix(site.Normalize(sitePath), "/")
	switch {
	case p == "":
		return "index.html"
	case trailingSlash:
		return path.Join(p, "index.html")
	default:
		return p + ".html"
	}
}

func writePage(outDir, file, sitePath string, page views.Page, r Renderer) (PageFile, error) {
	var buf bytes.Buffer
	if err := r.Execute(&buf, page.Template, page.Data); err != nil {
		return PageFile{}, fmt.Errorf("export: render %s: %w", sitePath, err)
	}
	dst := filepath.Join(outDir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return PageFile{}, fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return PageFile{}, fmt.Errorf("export: write %s: %w", file, err)
	}
	return PageFile{Path: sitePath, File: file, Status: page.Status, Bytes: int64(buf.Len())}, nil
}

func copyStatic(ctx context.Context, src fs.FS, dstDir string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(src, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		dst := filepath.Join(dstDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		data, err := fs.ReadFile(src, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return err
		}
		copied = append(copied, path.Join("static", p))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export: copy static assets: %w", err)
	}
	return copied, nil
}
