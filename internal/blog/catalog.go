package blog

import (
	"fmt"
	"strings"
)

// Document is a fixed piece of writing. Paragraphs are kept in reading order.
type Document struct {
	Title      string
	Paragraphs []string
}

// Content produces a post body. It takes no arguments and always returns the
// same document.
type Content func() Document

// Post is one entry of the catalog.
type Post struct {
	ID      ID
	Title   string // label used in the listing
	Tags    []string
	Content Content
}

// Kind tells which variant a View holds.
type Kind int

const (
	KindListing Kind = iota
	KindPost
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindListing:
		return "listing"
	case KindPost:
		return "post"
	case KindNotFound:
		return "not-found"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// View is the result of selecting content for a Ref.
type View struct {
	Kind Kind

	// Posts is set for KindListing, in declared order.
	Posts []Post

	// Post is set for KindPost.
	Post Post

	// Requested is set for KindNotFound.
	Requested ID
}

// Catalog maps identifiers to posts. It is immutable once built.
type Catalog struct {
	posts []Post
	index map[ID]int
}

// NewCatalog validates posts and builds a catalog that keeps their order.
func NewCatalog(posts ...Post) (*Catalog, error) {
	c := &Catalog{
		posts: make([]Post, 0, len(posts)),
		index: make(map[ID]int, len(posts)),
	}
	for _, p := range posts {
		if strings.TrimSpace(string(p.ID)) == "" {
			return nil, fmt.Errorf("blog: post %q has an empty identifier", p.Title)
		}
		if strings.Contains(string(p.ID), "/") {
			return nil, fmt.Errorf("blog: identifier %q must be a single path segment", p.ID)
		}
		if p.Content == nil {
			return nil, fmt.Errorf("blog: post %q has no content", p.ID)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("blog: duplicate identifier %q", p.ID)
		}
		c.index[p.ID] = len(c.posts)
		c.posts = append(c.posts, p)
	}
	return c, nil
}

// Default returns the site's catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Posts returns every post in declared order.
func (c *Catalog) Posts() []Post {
	out := make([]Post, len(c.posts))
	copy(out, c.posts)
	return out
}

// Lookup returns the post for id.
func (c *Catalog) Lookup(id ID) (Post, bool) {
	i, ok := c.index[id]
	if !ok {
		return Post{}, false
	}
	return c.posts[i], true
}

// Find is Lookup with an error wrapping ErrNotFound.
func (c *Catalog) Find(id ID) (Post, error) {
	p, ok := c.Lookup(id)
	if !ok {
		return Post{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// Select picks the content for ref. An absent ref lists every post, a known
// identifier yields its post and anything else yields KindNotFound.
func (c *Catalog) Select(ref Ref) View {
	id, ok := ref.Get()
	if !ok {
		return View{Kind: KindListing, Posts: c.Posts()}
	}
	if p, found := c.Lookup(id); found {
		return View{Kind: KindPost, Post: p}
	}
	return View{Kind: KindNotFound, Requested: id}
}
