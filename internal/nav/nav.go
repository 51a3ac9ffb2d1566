package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/teozhengyang/programming-helper/internal/catalog"
)

// Link is a navbar item.
type Link struct {
	Href   string
	Label  string
	Icon   string
	Active bool
}

// Anchor points at a content block on the current topic page.
type Anchor struct {
	Href  string
	Label string
}

// Entry is a sidebar item for one topic.
type Entry struct {
	ID       string
	Href     string
	Label    string
	Active   bool
	Expanded bool
	Anchors  []Anchor
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Navbar renders one link per section with active state given the current path.
func Navbar(reg *catalog.Registry, currentPath string) []Link {
	currentPath = normalize(currentPath)
	sections := reg.Sections()
	links := make([]Link, 0, len(sections))
	for _, s := range sections {
		href := "/" + s.ID
		links = append(links, Link{
			Href:   href,
			Label:  s.Name,
			Icon:   s.Icon,
			Active: isActive(href, currentPath),
		})
	}
	return links
}

// Sidebar lists the topics of section. The entry matching the current path exactly is active and
// rendered expanded; every entry carries its block anchors for client-side expansion. Anchors of the
// active entry are fragment-only so they scroll within the page.
func Sidebar(section catalog.Section, currentPath string) []Entry {
	currentPath = normalize(currentPath)
	entries := make([]Entry, 0, len(section.Subsections))
	for _, sub := range section.Subsections {
		href := "/" + section.ID + "/" + sub.ID
		active := currentPath == href
		anchors := make([]Anchor, 0, len(sub.Sections))
		for _, n := range sub.Sections {
			target := "#" + n.ID
			if !active {
				target = href + target
			}
			anchors = append(anchors, Anchor{Href: target, Label: n.Name})
		}
		entries = append(entries, Entry{
			ID:       sub.ID,
			Href:     href,
			Label:    sub.Name,
			Active:   active,
			Expanded: active,
			Anchors:  anchors,
		})
	}
	return entries
}

// Breadcrumbs builds Home → Section → Topic from the current path. Registry names are used where
// the segment is known; unknown segments get a title-cased label.
func Breadcrumbs(reg *catalog.Registry, currentPath string) []Crumb {
	currentPath = normalize(currentPath)
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(currentPath, "/"), "/")
	section, known := reg.FindSection(parts[0])
	label := section.Name
	if !known {
		label = titleFromSegment(parts[0])
	}
	crumbs = append(crumbs, Crumb{Href: "/" + parts[0], Label: label, Active: len(parts) == 1})

	href := "/" + parts[0]
	for i := 1; i < len(parts); i++ {
		href += "/" + parts[i]
		label := titleFromSegment(parts[i])
		if i == 1 && known {
			if sub, ok := reg.FindSubsection(section.ID, parts[i]); ok {
				label = sub.Name
			}
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: i == len(parts)-1})
	}
	return crumbs
}

func normalize(p string) string {
	if p == "" {
		return "/"
	}
	clean := path.Clean("/" + p)
	return clean
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// exact or prefix boundary: "/devops" or "/devops/...", never "/devops-extra"
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

func titleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(language.English).String(s)
}
