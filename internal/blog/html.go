package blog

import (
	"fmt"
	"html/template"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Node renders the document as an article element. Paragraphs are separated
// by horizontal rules.
func (d Document) Node() g.Node {
	children := []g.Node{h.Class("post")}
	if d.Title != "" {
		children = append(children,
			h.H1(h.Class("post-title"), g.Text(d.Title)),
			h.Hr(h.Class("rule rule-full")),
		)
	}
	for i, p := range d.Paragraphs {
		if i > 0 {
			children = append(children, h.Hr(h.Class("rule")))
		}
		children = append(children, h.P(h.Class("post-paragraph"), g.Text(p)))
	}
	return h.Article(children...)
}

// HTML renders the document for use inside an html/template.
func (d Document) HTML() (template.HTML, error) {
	var b strings.Builder
	if err := d.Node().Render(&b); err != nil {
		return "", fmt.Errorf("blog: render document %q: %w", d.Title, err)
	}
	return template.HTML(b.String()), nil
}
