// Package views turns a resolved route into the template name, status code
// and data of the page to render.
package views

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/johnretsas/portfolio/internal/blog"
	"github.com/johnretsas/portfolio/internal/config"
	"github.com/johnretsas/portfolio/internal/profile"
	"github.com/johnretsas/portfolio/internal/site"
)

// Template names.
const (
	HomeTemplate     = "home.html"
	BlogTemplate     = "blog.html"
	PostTemplate     = "post.html"
	NotFoundTemplate = "notfound.html"
)

// Page is everything needed to answer one request.
type Page struct {
	Status   int
	Template string
	Data     Data
}

// Data is passed to the templates.
type Data struct {
	Title      string
	Author     string
	Email      string
	Page       string
	Stylesheet string
	BlogHref   string
	Nav        []NavItem

	Profile *Home
	Posts   []PostLink
	Post    *PostBody
	Missing blog.ID

	ScrollThreshold int
	LiveReload      string
}

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

type Home struct {
	Name       string
	Role       string
	Experience string
	About      []string
	Stack      []StackRow
}

type StackRow struct {
	Label     string
	Adornment string
	Align     string
}

type PostLink struct {
	Title string
	Href  string
}

type PostBody struct {
	ID    blog.ID
	Title string
	Tags  []string
	Body  template.HTML
}

// Options configures a Builder.
type Options struct {
	SiteTitle       string
	Author          string
	Email           string
	URLs            site.URLs
	UnknownPost     config.UnknownPostPolicy
	ScrollThreshold int
	// LiveReload is the websocket path pages connect to in dev mode.
	LiveReload string
}

// OptionsFrom derives builder options from the site configuration.
func OptionsFrom(cfg *config.Config) Options {
	return Options{
		SiteTitle:       cfg.Site.Title,
		Author:          cfg.Site.Author,
		Email:           cfg.Site.Email,
		URLs:            cfg.URLs(),
		UnknownPost:     cfg.Blog.UnknownPost,
		ScrollThreshold: cfg.Blog.ScrollThreshold,
	}
}

// Builder assembles pages from the catalog.
type Builder struct {
	catalog *blog.Catalog
	opts    Options
}

func NewBuilder(catalog *blog.Catalog, opts Options) *Builder {
	if opts.UnknownPost == "" {
		opts.UnknownPost = config.UnknownPostNotFound
	}
	return &Builder{catalog: catalog, opts: opts}
}

// Build returns the page for route. The error is only set when a post body
// fails to render.
func (b *Builder) Build(route site.Route) (Page, error) {
	switch route.Page {
	case site.PageHome:
		return b.page(route, http.StatusOK, HomeTemplate, b.opts.SiteTitle, func(d *Data) {
			d.Profile = home()
		}), nil
	case site.PageBlogList, site.PageBlogPost:
		return b.blog(route)
	default:
		return b.notFound(route, ""), nil
	}
}

func (b *Builder) blog(route site.Route) (Page, error) {
	view := b.catalog.Select(route.Post)
	switch view.Kind {
	case blog.KindListing:
		return b.page(route, http.StatusOK, BlogTemplate, "Blog · "+b.opts.SiteTitle, func(d *Data) {
			d.Posts = make([]PostLink, 0, len(view.Posts))
			for _, p := range view.Posts {
				d.Posts = append(d.Posts, PostLink{Title: p.Title, Href: b.opts.URLs.Href(site.PostPath(p.ID))})
			}
		}), nil

	case blog.KindPost:
		doc := view.Post.Content()
		body, err := doc.HTML()
		if err != nil {
			return Page{}, fmt.Errorf("views: post %s: %w", view.Post.ID, err)
		}
		return b.page(route, http.StatusOK, PostTemplate, view.Post.Title+" · "+b.opts.SiteTitle, func(d *Data) {
			d.Post = &PostBody{ID: view.Post.ID, Title: view.Post.Title, Tags: view.Post.Tags, Body: body}
		}), nil

	default:
		if b.opts.UnknownPost == config.UnknownPostEmpty {
			return b.page(route, http.StatusOK, PostTemplate, "Blog · "+b.opts.SiteTitle, nil), nil
		}
		return b.notFound(route, view.Requested), nil
	}
}

func (b *Builder) notFound(route site.Route, missing blog.ID) Page {
	return b.page(route, http.StatusNotFound, NotFoundTemplate, "Not found · "+b.opts.SiteTitle, func(d *Data) {
		d.Missing = missing
	})
}

func (b *Builder) page(route site.Route, status int, tmpl, title string, fill func(*Data)) Page {
	d := Data{
		Title:           title,
		Author:          b.opts.Author,
		Email:           b.opts.Email,
		Page:            route.Page.String(),
		Stylesheet:      b.opts.URLs.Asset("/static/site.css"),
		BlogHref:        b.opts.URLs.Href(site.BlogPath),
		ScrollThreshold: b.opts.ScrollThreshold,
		LiveReload:      b.opts.LiveReload,
	}
	for _, l := range site.Nav() {
		d.Nav = append(d.Nav, NavItem{Label: l.Label, Href: b.opts.URLs.Href(l.Path), Active: l.Active(route)})
	}
	if fill != nil {
		fill(&d)
	}
	return Page{Status: status, Template: tmpl, Data: d}
}

func home() *Home {
	h := &Home{
		Name:       profile.Name,
		Role:       profile.Role,
		Experience: profile.Experience,
		About:      profile.AboutMe,
	}
	for _, t := range profile.Stack() {
		h.Stack = append(h.Stack, StackRow{Label: t.Label, Adornment: t.Adornment, Align: t.Align.String()})
	}
	return h
}
