// Package render keeps a parsed html/template set that can be swapped at
// runtime and plugs it into gin.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"sync"

	ginrender "github.com/gin-gonic/gin/render"
)

// Templates is a reloadable template set. It implements gin's HTMLRender.
type Templates struct {
	fsys     fs.FS
	patterns []string
	funcs    template.FuncMap

	mu   sync.RWMutex
	tmpl *template.Template
}

var _ ginrender.HTMLRender = (*Templates)(nil)

// New parses the files of fsys matching patterns.
func New(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*Templates, error) {
	t := &Templates{fsys: fsys, patterns: patterns, funcs: funcs}
	tmpl, err := t.parse()
	if err != nil {
		return nil, err
	}
	t.tmpl = tmpl
	return t, nil
}

func (t *Templates) parse() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(t.funcs).ParseFS(t.fsys, t.patterns...)
	if err != nil {
		return nil, fmt.Errorf("render: parse templates: %w", err)
	}
	return tmpl, nil
}

// Reload parses the files again. On error the current set stays in use.
func (t *Templates) Reload() error {
	tmpl, err := t.parse()
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.tmpl = tmpl
	t.mu.Unlock()
	return nil
}

func (t *Templates) current() *template.Template {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tmpl
}

// Has reports whether a template called name is defined.
func (t *Templates) Has(name string) bool {
	return t.current().Lookup(name) != nil
}

// Execute renders the named template to w.
func (t *Templates) Execute(w io.Writer, name string, data any) error {
	if err := t.current().ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render: execute %s: %w", name, err)
	}
	return nil
}

// Instance returns the gin renderer for one response. The page is executed
// into a buffer first, so a failing template writes nothing.
func (t *Templates) Instance(name string, data any) ginrender.Render {
	return page{tmpl: t.current(), name: name, data: data}
}

var htmlContentType = []string{"text/html; charset=utf-8"}

type page struct {
	tmpl *template.Template
	name string
	data any
}

func (p page) Render(w http.ResponseWriter) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, p.name, p.data); err != nil {
		return fmt.Errorf("render: execute %s: %w", p.name, err)
	}
	p.WriteContentType(w)
	_, err := buf.WriteTo(w)
	return err
}

func (p page) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
