package render

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/johnretsas/portfolio/web"
)

func TestEmbeddedTemplatesParse(t *testing.T) {
	tmpl, err := New(web.Templates(), nil, web.TemplatePattern)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"head", "foot", "home.html", "blog.html", "post.html", "notfound.html"} {
		if !tmpl.Has(name) {
			t.Errorf("template %q is missing", name)
		}
	}
}

func TestInstanceRendersThroughGin(t *testing.T) {
	fsys := fstest.MapFS{
		"hello.html": {Data: []byte(`{{define "hello.html"}}hi {{.}}{{end}}`)},
	}
	tmpl, err := New(fsys, nil, "*.html")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	if err := tmpl.Instance("hello.html", "<there>").Render(w); err != nil {
		t.Fatal(err)
	}
	if got := w.Body.String(); got != "hi &lt;there&gt;" {
		t.Errorf("body = %q", got)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
}

func TestInstanceWritesNothingOnError(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.html": {Data: []byte(`{{define "broken.html"}}before {{.Missing.Field}}{{end}}`)},
	}
	tmpl, err := New(fsys, nil, "*.html")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	if err := tmpl.Instance("broken.html", struct{ Missing *struct{ Field string } }{}).Render(w); err == nil {
		t.Fatal("expected an execute error")
	}
	if w.Body.Len() != 0 {
		t.Errorf("partial output written: %q", w.Body.String())
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	write := func(s string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	render := func(tmpl *Templates) string {
		t.Helper()
		var b strings.Builder
		if err := tmpl.Execute(&b, "page.html", nil); err != nil {
			t.Fatal(err)
		}
		return b.String()
	}

	write(`{{define "page.html"}}one{{end}}`)
	tmpl, err := New(os.DirFS(dir), nil, "*.html")
	if err != nil {
		t.Fatal(err)
	}
	if got := render(tmpl); got != "one" {
		t.Fatalf("got %q", got)
	}

	write(`{{define "page.html"}}two{{end}}`)
	if err := tmpl.Reload(); err != nil {
		t.Fatal(err)
	}
	if got := render(tmpl); got != "two" {
		t.Errorf("after reload got %q", got)
	}

	write(`{{define "page.html"}}{{.Broken{{end}}`)
	if err := tmpl.Reload(); err == nil {
		t.Fatal("expected a parse error")
	}
	if got := render(tmpl); got != "two" {
		t.Errorf("broken reload replaced the set: %q", got)
	}
}
