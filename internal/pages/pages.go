// Package pages builds the view models for every page of the site and renders them through the
// shared layout. The HTTP server and the static exporter both go through a Site so their output is
// identical.
package pages

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/teozhengyang/programming-helper/internal/catalog"
	"github.com/teozhengyang/programming-helper/internal/nav"
	"github.com/teozhengyang/programming-helper/internal/render"
	"github.com/teozhengyang/programming-helper/internal/seo"
	"github.com/teozhengyang/programming-helper/templates"
)

// Template names understood by Render.
const (
	PageHome     = "home"
	PageTopic    = "topic"
	PageNotFound = "notfound"
	PageRedirect = "redirect"
)

const (
	titleSuffix     = " - Your Guide to Programming Mastery"
	siteDescription = "Your comprehensive guide to LeetCode patterns, system design, programming languages, frameworks, DevOps, and AI/ML."
	heroHeading     = "No Gatekeeping. Just Good Engineering"
	heroTagline     = "Guides covering LeetCode, system design, frameworks, AI/ML, DevOps, databases and plenty more."
)

// PageData is the view model shared by every page using the base layout.
type PageData struct {
	Page     string
	SiteName string
	Meta     seo.Meta
	JSONLD   []template.JS

	Path        string
	Nav         []nav.Link
	Breadcrumbs []nav.Crumb
	Sidebar     []nav.Entry

	// Redirect is set on redirect stubs and emitted as a meta refresh.
	Redirect string

	Home   *HomeData
	Topic  *render.TopicPage
	Status *StatusData
}

// HomeData is the view model for the landing page.
type HomeData struct {
	Heading string
	Tagline string
	Cards   []SectionCard
}

// SectionCard links a section from the landing page.
type SectionCard struct {
	ID     string
	Href   string
	Name   string
	Icon   string
	Topics int
}

// StatusData describes an error page.
type StatusData struct {
	Code    int
	Heading string
	Message string
}

// Config wires a Site.
type Config struct {
	Name      string
	BaseURL   string
	Registry  *catalog.Registry
	Renderer  *render.Renderer
	Templates *templates.Set
}

// Site builds and renders pages for one registry.
type Site struct {
	name      string
	baseURL   string
	registry  *catalog.Registry
	renderer  *render.Renderer
	templates *templates.Set
}

// New validates cfg and returns a Site.
func New(cfg Config) (*Site, error) {
	if cfg.Registry == nil {
		return nil, errors.New("pages: registry is required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("pages: renderer is required")
	}
	if cfg.Templates == nil {
		return nil, errors.New("pages: templates are required")
	}
	for _, p := range []string{PageHome, PageTopic, PageNotFound, PageRedirect} {
		if !cfg.Templates.Has(p) {
			return nil, fmt.Errorf("pages: template %q is missing", p)
		}
	}
	name := cfg.Name
	if name == "" {
		name = "CodeCompass"
	}
	return &Site{
		name:      name,
		baseURL:   cfg.BaseURL,
		registry:  cfg.Registry,
		renderer:  cfg.Renderer,
		templates: cfg.Templates,
	}, nil
}

// Name returns the display name of the site.
func (s *Site) Name() string { return s.name }

// Registry returns the registry the site was built from.
func (s *Site) Registry() *catalog.Registry { return s.registry }

// Home builds the landing page.
func (s *Site) Home() PageData {
	data := s.base(PageHome, "/")
	data.Meta = seo.NewMeta(s.name+titleSuffix, siteDescription, seo.Absolute(s.baseURL, "/"), "website")
	data.JSONLD = []template.JS{seo.JSON(seo.WebSite(s.name, s.absoluteOrEmpty("/"), siteDescription))}

	sections := s.registry.Sections()
	home := &HomeData{Heading: heroHeading, Tagline: heroTagline, Cards: make([]SectionCard, 0, len(sections))}
	for _, sec := range sections {
		home.Cards = append(home.Cards, SectionCard{
			ID:     sec.ID,
			Href:   "/" + sec.ID,
			Name:   sec.Name,
			Icon:   sec.Icon,
			Topics: len(sec.Subsections),
		})
	}
	data.Home = home
	return data
}

// Topic builds the page for one (section, subsection) pair. Unknown ids yield catalog.ErrNotFound.
func (s *Site) Topic(ctx context.Context, sectionID, topicID string) (PageData, error) {
	section, topic, err := s.registry.Resolve(sectionID, topicID)
	if err != nil {
		return PageData{}, err
	}
	page := s.renderer.Topic(ctx, section, topic)

	p := page.Path()
	data := s.base(PageTopic, p)
	data.Sidebar = nav.Sidebar(section, p)
	data.Topic = &page

	description := page.Description
	if description == "" {
		description = siteDescription
	}
	data.Meta = seo.NewMeta(page.Title+" | "+section.Name+" | "+s.name, description, seo.Absolute(s.baseURL, p), "article")
	data.JSONLD = []template.JS{
		seo.JSON(seo.TechArticle(page.Title, page.Description, s.absoluteOrEmpty(p), section.Name)),
		seo.JSON(seo.BreadcrumbList(s.breadcrumbItems(data.Breadcrumbs))),
	}
	return data, nil
}

// NotFound builds the 404 page for the requested path.
func (s *Site) NotFound(requestPath string) PageData {
	data := s.base(PageNotFound, requestPath)
	data.Breadcrumbs = nil
	data.Meta = seo.NewMeta("Page not found | "+s.name, "The page you are looking for does not exist.", "", "website")
	data.Status = &StatusData{
		Code:    404,
		Heading: "Page not found",
		Message: "The page you are looking for does not exist. Pick a section from the navigation above.",
	}
	return data
}

// RedirectTarget returns where /{section} sends the visitor: its first subsection, or the home
// page when the section has none. Unknown sections yield catalog.ErrNotFound.
func (s *Site) RedirectTarget(sectionID string) (string, error) {
	if _, ok := s.registry.FindSection(sectionID); !ok {
		return "", fmt.Errorf("section %q: %w", sectionID, catalog.ErrNotFound)
	}
	first, ok := s.registry.FirstSubsection(sectionID)
	if !ok {
		return "/", nil
	}
	return "/" + sectionID + "/" + first.ID, nil
}

// Redirect builds a static stub for from that forwards to target with a meta refresh.
func (s *Site) Redirect(from, target string) PageData {
	data := s.base(PageRedirect, from)
	data.Meta = seo.NewMeta(s.name, siteDescription, seo.Absolute(s.baseURL, target), "website")
	data.Redirect = target
	return data
}

// Render writes data through its page template.
func (s *Site) Render(w io.Writer, data PageData) error {
	return s.templates.Render(w, data.Page, data)
}

// RenderBytes renders data into a byte slice.
func (s *Site) RenderBytes(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Render(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Site) base(page, p string) PageData {
	return PageData{
		Page:        page,
		SiteName:    s.name,
		Path:        p,
		Nav:         nav.Navbar(s.registry, p),
		Breadcrumbs: nav.Breadcrumbs(s.registry, p),
	}
}

func (s *Site) breadcrumbItems(crumbs []nav.Crumb) []seo.BreadcrumbItem {
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: seo.Absolute(s.baseURL, c.Href)})
	}
	return items
}

func (s *Site) absoluteOrEmpty(p string) string {
	if s.baseURL == "" {
		return ""
	}
	return seo.Absolute(s.baseURL, p)
}

// Route is one addressable path of the site.
type Route struct {
	Path   string
	Kind   string
	Target string
}

// Route kinds.
const (
	RouteHome     = "home"
	RouteRedirect = "redirect"
	RouteTopic    = "topic"
)

// Routes lists the home page, every section redirect and every topic page in registry order.
func (s *Site) Routes() []Route {
	routes := []Route{{Path: "/", Kind: RouteHome}}
	for _, sec := range s.registry.Sections() {
		target, _ := s.RedirectTarget(sec.ID)
		routes = append(routes, Route{Path: "/" + sec.ID, Kind: RouteRedirect, Target: target})
		for _, sub := range sec.Subsections {
			routes = append(routes, Route{Path: "/" + sec.ID + "/" + sub.ID, Kind: RouteTopic})
		}
	}
	return routes
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// Sitemap renders sitemap.xml listing the home page and every topic page.
func (s *Site) Sitemap() ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, r := range s.Routes() {
		if r.Kind == RouteRedirect {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{Loc: seo.Absolute(s.baseURL, r.Path)})
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("pages: encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
