package site

import (
	"reflect"
	"testing"

	"github.com/johnretsas/portfolio/internal/blog"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		path string
		page Page
		post blog.Ref
	}{
		{"/", PageHome, blog.Absent()},
		{"", PageHome, blog.Absent()},
		{"/blog", PageBlogList, blog.Absent()},
		{"/blog/", PageBlogList, blog.Absent()},
		{"/blog/going-to-mars", PageBlogPost, blog.Present(blog.GoingToMars)},
		{"/blog/going-to-mars/", PageBlogPost, blog.Present(blog.GoingToMars)},
		{"/blog/unknown-post", PageBlogPost, blog.Present("unknown-post")},
		{"/blog/a/b", PageNotFound, blog.Absent()},
		{"/about", PageNotFound, blog.Absent()},
		{"/blogs", PageNotFound, blog.Absent()},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := Resolve(tt.path)
			if r.Page != tt.page {
				t.Errorf("page = %s, want %s", r.Page, tt.page)
			}
			if r.Post != tt.post {
				t.Errorf("post = %s, want %s", r.Post, tt.post)
			}
		})
	}
}

func TestResolveUnknownPostSelectsNotFound(t *testing.T) {
	r := Resolve("/blog/nope")
	if v := blog.Default().Select(r.Post); v.Kind != blog.KindNotFound {
		t.Errorf("kind = %s", v.Kind)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"":             "/",
		"/":            "/",
		"blog":         "/blog",
		"//blog///x//": "/blog/x",
		"/blog/":       "/blog",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPathsCoverEveryPost(t *testing.T) {
	got := Paths(blog.Default())
	want := []string{"/", "/blog", "/blog/going-to-mars", "/blog/another-blog-post"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
	for _, p := range got[2:] {
		if Resolve(p).Page != PageBlogPost {
			t.Errorf("%s does not resolve to a post", p)
		}
		if v := blog.Default().Select(Resolve(p).Post); v.Kind != blog.KindPost {
			t.Errorf("%s has no catalog entry", p)
		}
	}
}

func TestNavActive(t *testing.T) {
	nav := Nav()
	if len(nav) != 2 || nav[0].Path != "/" || nav[1].Path != "/blog" {
		t.Fatalf("unexpected nav %v", nav)
	}
	if !nav[0].Active(Resolve("/")) || nav[1].Active(Resolve("/")) {
		t.Error("home section wrong")
	}
	if !nav[1].Active(Resolve("/blog/going-to-mars")) || nav[0].Active(Resolve("/blog")) {
		t.Error("blog section wrong")
	}
}

func TestURLs(t *testing.T) {
	plain := URLs{}
	if got := plain.Href("/blog"); got != "/blog" {
		t.Errorf("plain href = %q", got)
	}

	u := URLs{BasePath: "/portfolio/", AssetPrefix: "https://cdn.example.com/", TrailingSlash: true}
	tests := []struct{ got, want string }{
		{u.Href("/"), "/portfolio/"},
		{u.Href("/blog"), "/portfolio/blog/"},
		{u.Href("/blog/going-to-mars"), "/portfolio/blog/going-to-mars/"},
		{u.Asset("/static/site.css"), "https://cdn.example.com/portfolio/static/site.css"},
		{u.Strip("/portfolio/blog"), "/blog"},
		{u.Strip("/portfolio"), "/"},
		{u.Strip("/elsewhere"), "/elsewhere"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
