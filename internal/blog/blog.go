// Package blog holds the fixed set of posts and selects what the blog view
// shows for an optional post identifier.
package blog

import "errors"

// ErrNotFound is returned when an identifier has no post in the catalog.
var ErrNotFound = errors.New("blog: post not found")

// ID identifies a post. It is the last segment of the post URL.
type ID string

// Known post identifiers.
const (
	GoingToMars ID = "going-to-mars"
	AnotherPost ID = "another-blog-post"
)

// Ref is an optional post identifier. The zero value is absent.
type Ref struct {
	id      ID
	present bool
}

// Absent returns a Ref with no identifier.
func Absent() Ref {
	return Ref{}
}

// Present returns a Ref carrying id, even when id is empty.
func Present(id ID) Ref {
	return Ref{id: id, present: true}
}

// RefFromSegment builds a Ref from a URL path segment. An empty segment is absent.
func RefFromSegment(segment string) Ref {
	if segment == "" {
		return Absent()
	}
	return Present(ID(segment))
}

// Get returns the identifier and whether one is present.
func (r Ref) Get() (ID, bool) {
	return r.id, r.present
}

// IsAbsent reports whether r carries no identifier.
func (r Ref) IsAbsent() bool {
	return !r.present
}

func (r Ref) String() string {
	if !r.present {
		return "<absent>"
	}
	return string(r.id)
}
