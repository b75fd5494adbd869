// Package web embeds the HTML templates and static assets of the site.
package web

import (
	"embed"
	"io/fs"
)

// TemplatePattern matches every template file inside Templates().
const TemplatePattern = "*.html"

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates returns the template files rooted at their directory.
func Templates() fs.FS {
	return sub(templatesFS, "templates")
}

// Static returns the static assets rooted at their directory.
func Static() fs.FS {
	return sub(staticFS, "static")
}

func sub(fsys fs.FS, dir string) fs.FS {
	s, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return s
}
