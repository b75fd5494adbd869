// Package tui is a terminal client for the site. It routes paths the same way
// the HTTP server does and drives a scroll observer from the post viewport.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/johnretsas/portfolio/internal/blog"
	"github.com/johnretsas/portfolio/internal/config"
	"github.com/johnretsas/portfolio/internal/profile"
	"github.com/johnretsas/portfolio/internal/scroll"
	"github.com/johnretsas/portfolio/internal/site"
)

// rowHeight is the number of scroll offset units one terminal row is worth,
// so thresholds are shared with the browser.
const rowHeight = 16

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the terminal client.
type Options struct {
	Catalog         *blog.Catalog
	Start           string
	UnknownPost     config.UnknownPostPolicy
	ScrollThreshold int
}

// Model is the bubbletea model of the terminal client.
type Model struct {
	catalog *blog.Catalog
	policy  config.UnknownPostPolicy

	route   site.Route
	view    blog.View
	history []string
	cursor  int

	feed     *scroll.Feed
	observer *scroll.Observer
	viewport viewport.Model
	doc      func(width int) string

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// New returns a model showing opts.Start, or the home page when it is empty.
func New(opts Options) *Model {
	if opts.Catalog == nil {
		opts.Catalog = blog.Default()
	}
	if opts.ScrollThreshold <= 0 {
		opts.ScrollThreshold = scroll.DefaultThreshold
	}
	if opts.UnknownPost == "" {
		opts.UnknownPost = config.UnknownPostNotFound
	}
	if opts.Start == "" {
		opts.Start = site.HomePath
	}

	m := &Model{
		catalog:  opts.Catalog,
		policy:   opts.UnknownPost,
		feed:     scroll.NewFeed(),
		observer: scroll.NewObserver(scroll.WithThreshold(opts.ScrollThreshold)),
		keys:     defaultKeys(),
		help:     help.New(),
	}
	m.viewport = viewport.New(defaultWidth, 1)
	m.resize(defaultWidth, defaultHeight)
	m.open(opts.Start)
	return m
}

// Run starts the terminal client and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
			return m, nil
		case key.Matches(msg, m.keys.Home):
			m.Navigate(site.HomePath)
			return m, nil
		case key.Matches(msg, m.keys.Blog):
			m.Navigate(site.BlogPath)
			return m, nil
		case key.Matches(msg, m.keys.Back):
			m.Back()
			return m, nil
		case key.Matches(msg, m.keys.Top) && m.GoUpVisible():
			m.viewport.GotoTop()
			m.publish()
			return m, nil
		}
		if m.route.Page == site.PageBlogList {
			m.updateListing(msg)
			return m, nil
		}
	}

	if m.doc == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.publish()
	return m, cmd
}

func (m *Model) updateListing(msg tea.KeyMsg) {
	n := len(m.view.Posts)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		if n > 0 {
			m.Navigate(site.PostPath(m.view.Posts[m.cursor].ID))
		}
	}
}

// Navigate moves to path and records the current page in the history.
func (m *Model) Navigate(path string) {
	if site.Normalize(path) == m.route.Path {
		return
	}
	m.history = append(m.history, m.route.Path)
	m.open(path)
}

// Back returns to the previous page, if any.
func (m *Model) Back() {
	n := len(m.history)
	if n == 0 {
		return
	}
	prev := m.history[n-1]
	m.history = m.history[:n-1]
	m.open(prev)
}

// Close releases the scroll subscription of an open post.
func (m *Model) Close() {
	m.observer.Unmount()
}

// Route is the page currently shown.
func (m *Model) Route() site.Route {
	return m.route
}

// GoUpVisible reports whether the back-to-top bar is shown.
func (m *Model) GoUpVisible() bool {
	return m.observer.Mounted() && m.observer.Visible()
}

func (m *Model) open(path string) {
	m.observer.Unmount()
	m.route = site.Resolve(path)
	m.view = blog.View{}
	m.doc = nil

	switch m.route.Page {
	case site.PageHome:
		m.doc = renderHome
	case site.PageBlogList, site.PageBlogPost:
		m.view = m.catalog.Select(m.route.Post)
		m.cursor = 0
		if m.view.Kind == blog.KindPost {
			post := m.view.Post
			m.doc = func(width int) string { return renderPost(post, width) }
		}
	}
	if m.doc == nil {
		return
	}

	m.viewport.SetContent(m.doc(m.viewport.Width))
	m.viewport.GotoTop()
	if m.view.Kind == blog.KindPost {
		// The observer was unmounted above, so Mount cannot fail.
		_ = m.observer.Mount(m.feed)
	}
}

func (m *Model) publish() {
	m.feed.Publish(m.viewport.YOffset * rowHeight)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	// Navbar with its border, the back-to-top bar and the help line.
	chrome := lipgloss.Height(m.navbar()) + 1 + lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
	if m.doc != nil {
		m.viewport.SetContent(m.doc(width))
	}
}

func (m *Model) View() string {
	var body string
	switch {
	case m.doc != nil:
		body = m.viewport.View()
	case m.route.Page == site.PageBlogList:
		body = m.listing()
	case m.view.Kind == blog.KindNotFound && m.policy == config.UnknownPostEmpty:
		body = ""
	case m.view.Kind == blog.KindNotFound:
		body = notFound(fmt.Sprintf("There is no post called %q.", m.view.Requested))
	default:
		body = notFound(fmt.Sprintf("Nothing lives at %s.", m.route.Path))
	}
	body = lipgloss.NewStyle().Height(m.viewport.Height).MaxHeight(m.viewport.Height).Render(body)

	bar := ""
	if m.GoUpVisible() {
		bar = goUpStyle.Width(m.width).Render("↑ back to top (t)")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.navbar(), body, bar, m.help.View(m.keys))
}

func (m *Model) navbar() string {
	var items []string
	for _, l := range site.Nav() {
		style := navStyle
		if l.Active(m.route) {
			style = navActiveStyle
		}
		items = append(items, style.Render(l.Label))
	}
	return navBarStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m *Model) listing() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Posts:"))
	b.WriteString("\n\n")
	for i, p := range m.view.Posts {
		marker := "  "
		title := p.Title
		if i == m.cursor {
			marker = cursorStyle.Render("› ")
			title = accentStyle.Render(title)
		}
		b.WriteString(marker + title + "\n")
	}
	return b.String()
}

func notFound(msg string) string {
	return titleStyle.Render("Not found") + "\n\n" + msg + "\n" + mutedStyle.Render("Press b for the blog.")
}

func renderHome(width int) string {
	text := lipgloss.NewStyle().Width(width)
	parts := []string{
		"Hey, I'm " + accentStyle.Render(profile.Name) + " :)",
		text.Render(fmt.Sprintf("I am a %s with %s of experience.", profile.Role, profile.Experience)),
	}
	var rows []string
	for _, t := range profile.Stack() {
		row := lipgloss.NewStyle().Width(width)
		if t.Align == profile.AlignRight {
			row = row.Align(lipgloss.Right)
			rows = append(rows, row.Render(t.Label+badgeStyle.Render(t.Adornment)))
			continue
		}
		rows = append(rows, row.Render(badgeStyle.Render(t.Adornment)+t.Label))
	}
	parts = append(parts, strings.Join(rows, "\n"))
	for _, p := range profile.AboutMe {
		parts = append(parts, text.Render(p))
	}
	return strings.Join(parts, "\n\n")
}

func renderPost(p blog.Post, width int) string {
	var parts []string
	if len(p.Tags) > 0 {
		var tags []string
		for _, t := range p.Tags {
			tags = append(tags, tagStyle.Render(t))
		}
		parts = append(parts, strings.Join(tags, " "))
	}
	parts = append(parts, renderDocument(p.Content(), width))
	return strings.Join(parts, "\n\n")
}

func renderDocument(d blog.Document, width int) string {
	text := lipgloss.NewStyle().Width(width)
	var parts []string
	if d.Title != "" {
		parts = append(parts, titleStyle.Width(width).Render(d.Title), mutedStyle.Render(strings.Repeat("─", width)))
	}
	for i, p := range d.Paragraphs {
		if i > 0 {
			parts = append(parts, mutedStyle.Render(strings.Repeat("─", min(width, 12))))
		}
		parts = append(parts, text.Render(p))
	}
	return strings.Join(parts, "\n\n")
}
