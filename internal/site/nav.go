package site

// NavLink is an entry of the navigation bar.
type NavLink struct {
	Label string
	Path  string
}

var navLinks = []NavLink{
	{Label: "Home", Path: HomePath},
	{Label: "Blog", Path: BlogPath},
}

// Nav returns the navigation bar links in display order.
func Nav() []NavLink {
	out := make([]NavLink, len(navLinks))
	copy(out, navLinks)
	return out
}

// Active reports whether the link belongs to the section of route.
func (l NavLink) Active(r Route) bool {
	switch l.Path {
	case HomePath:
		return r.Page == PageHome
	case BlogPath:
		return r.Page == PageBlogList || r.Page == PageBlogPost
	}
	return false
}
