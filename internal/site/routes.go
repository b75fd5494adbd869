// Package site maps URL paths to the pages of the site. Resolution is pure:
// it never performs I/O, so every front end routes the same way.
package site

import (
	"strings"

	"github.com/johnretsas/portfolio/internal/blog"
)

// Page is a top-level view.
type Page int

const (
	PageNotFound Page = iota
	PageHome
	PageBlogList
	PageBlogPost
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageBlogList:
		return "blog-list"
	case PageBlogPost:
		return "blog-post"
	default:
		return "not-found"
	}
}

const (
	HomePath = "/"
	BlogPath = "/blog"
)

// Route is the outcome of resolving a path.
type Route struct {
	Page Page
	Path string   // normalized path
	Post blog.Ref // present only for PageBlogPost
}

// Resolve maps a path to a route:
//
//	/                   home
//	/blog               blog list
//	/blog/{identifier}  blog post
//
// Trailing slashes are ignored. Everything else is PageNotFound.
func Resolve(path string) Route {
	path = Normalize(path)
	if path == HomePath {
		return Route{Page: PageHome, Path: path}
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if segments[0] != strings.TrimPrefix(BlogPath, "/") {
		return Route{Page: PageNotFound, Path: path}
	}
	switch len(segments) {
	case 1:
		return Route{Page: PageBlogList, Path: path, Post: blog.Absent()}
	case 2:
		return Route{Page: PageBlogPost, Path: path, Post: blog.RefFromSegment(segments[1])}
	default:
		return Route{Page: PageNotFound, Path: path}
	}
}

// Normalize adds a leading slash, collapses repeated slashes and drops the
// trailing one.
func Normalize(path string) string {
	parts := strings.Split(path, "/")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return "/" + strings.Join(kept, "/")
}

// PostPath returns the path of a post.
func PostPath(id blog.ID) string {
	return BlogPath + "/" + string(id)
}

// Paths lists every navigable path: home, the listing, then each post in
// declared order.
func Paths(c *blog.Catalog) []string {
	paths := []string{HomePath, BlogPath}
	for _, p := range c.Posts() {
		paths = append(paths, PostPath(p.ID))
	}
	return paths
}
