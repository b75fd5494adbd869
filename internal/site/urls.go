package site

import "strings"

// URLs turns site paths into hrefs for a deployment. The zero value serves
// from the root with no asset prefix.
type URLs struct {
	BasePath      string // e.g. "/portfolio"
	AssetPrefix   string // e.g. "https://cdn.example.com"
	TrailingSlash bool
}

// Href returns the link to a site path.
func (u URLs) Href(path string) string {
	path = Normalize(path)
	if u.TrailingSlash && path != HomePath {
		path += "/"
	}
	return u.base() + path
}

// Asset returns the link to a static asset such as "/static/site.css".
func (u URLs) Asset(path string) string {
	path = Normalize(path)
	if u.AssetPrefix != "" {
		return strings.TrimSuffix(u.AssetPrefix, "/") + u.base() + path
	}
	return u.base() + path
}

// Strip removes the base path from an incoming request path.
func (u URLs) Strip(path string) string {
	base := u.base()
	if base == "" {
		return path
	}
	if path == base {
		return HomePath
	}
	if strings.HasPrefix(path, base+"/") {
		return strings.TrimPrefix(path, base)
	}
	return path
}

func (u URLs) base() string {
	b := Normalize(u.BasePath)
	if b == "/" {
		return ""
	}
	return b
}
