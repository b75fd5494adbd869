package export

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnretsas/portfolio/internal/blog"
	"github.com/johnretsas/portfolio/internal/render"
	"github.com/johnretsas/portfolio/internal/site"
	"github.com/johnretsas/portfolio/internal/views"
	"github.com/johnretsas/portfolio/web"
)

func setup(t *testing.T, urls site.URLs) (*views.Builder, *render.Templates) {
	t.Helper()
	tmpl, err := render.New(web.Templates(), nil, web.TemplatePattern)
	if err != nil {
		t.Fatal(err)
	}
	b := views.NewBuilder(blog.Default(), views.Options{SiteTitle: "Test", URLs: urls, ScrollThreshold: 200})
	return b, tmpl
}

func read(t *testing.T, dir, file string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(file)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestFileFor(t *testing.T) {
	tests := []struct {
		path     string
		trailing bool
		want     string
	}{
		{"/", true, "index.html"},
		{"/", false, "index.html"},
		{"/blog", true, "blog/index.html"},
		{"/blog", false, "blog.html"},
		{"/blog/going-to-mars", true, "blog/going-to-mars/index.html"},
		{"/blog/going-to-mars/", false, "blog/going-to-mars.html"},
	}
	for _, tt := range tests {
		if got := FileFor(tt.path, tt.trailing); got != tt.want {
			t.Errorf("FileFor(%q, %v) = %q, want %q", tt.path, tt.trailing, got, tt.want)
		}
	}
}

func TestRunWritesEveryRoute(t *testing.T) {
	out := t.TempDir()
	urls := site.URLs{BasePath: "/portfolio", TrailingSlash: true}
	b, tmpl := setup(t, urls)

	res, err := Run(context.Background(), blog.Default(), b, tmpl, Options{
		OutDir:        out,
		TrailingSlash: true,
		Static:        web.Static(),
	})
	if err != nil {
		t.Fatal(err)
	}

	var files []string
	for _, p := range res.Pages {
		files = append(files, p.File)
	}
	want := []string{
		"index.html",
		"blog/index.html",
		"blog/going-to-mars/index.html",
		"blog/another-blog-post/index.html",
		NotFoundFile,
	}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", files, want)
	}

	listing := read(t, out, "blog/index.html")
	if !strings.Contains(listing, `href="/portfolio/blog/going-to-mars/"`) {
		t.Error("listing links ignore base path or trailing slash")
	}
	if !strings.Contains(listing, `href="/portfolio/static/site.css"`) {
		t.Error("stylesheet ignores base path")
	}
	if !strings.Contains(read(t, out, "blog/going-to-mars/index.html"), "Going to Mars is probably a bad idea.") {
		t.Error("post body missing")
	}
	if !strings.Contains(read(t, out, NotFoundFile), "Not found") {
		t.Error("404 page missing")
	}
	if len(res.Assets) == 0 || read(t, out, "static/site.css") == "" {
		t.Error("static assets not copied")
	}

	report := Report(res)
	for _, want := range []string{"/blog/going-to-mars", "5 pages", out} {
		if !strings.Contains(report, want) {
			t.Errorf("report is missing %q:\n%s", want, report)
		}
	}
}

func TestReportMarksStatus(t *testing.T) {
	report := Report(&Result{
		OutDir: "out",
		Pages: []PageFile{
			{Path: "/", File: "index.html", Status: http.StatusOK, Bytes: 10},
			{Path: "/missing", File: "missing.html", Status: http.StatusNotFound, Bytes: 10},
		},
	})
	if !strings.Contains(report, "✓ /") {
		t.Errorf("ok page is not ticked:\n%s", report)
	}
	if !strings.Contains(report, "404 /missing") {
		t.Errorf("not-found page does not show its status:\n%s", report)
	}
}

func TestRunFlatLayout(t *testing.T) {
	out := t.TempDir()
	b, tmpl := setup(t, site.URLs{})
	if _, err := Run(context.Background(), blog.Default(), b, tmpl, Options{OutDir: out}); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"index.html", "blog.html", "blog/going-to-mars.html", "blog/another-blog-post.html"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(f))); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "static")); !os.IsNotExist(err) {
		t.Error("static dir written without assets")
	}
}

func TestRunCancelled(t *testing.T) {
	b, tmpl := setup(t, site.URLs{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, blog.Default(), b, tmpl, Options{OutDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunClean(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "stale.html")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, tmpl := setup(t, site.URLs{})
	if _, err := Run(context.Background(), blog.Default(), b, tmpl, Options{OutDir: out, Clean: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file survived a clean export")
	}
}
