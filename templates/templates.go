// Package templates holds the HTML layouts, partials and pages of the site.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed layouts/*.tmpl partials/*.tmpl pages/*.tmpl
var embedded embed.FS

// FS returns the embedded template files.
func FS() fs.FS {
	return embedded
}

// Set is a parsed collection of pages. Every page shares the layouts and partials and defines its
// own "content" block; executing a page runs "base".
type Set struct {
	pages map[string]*template.Template
}

// Parse builds one template per file under pages/. Page names are file names without extension.
func Parse(fsys fs.FS) (*Set, error) {
	shared, err := template.New("_root").Funcs(funcMap()).ParseFS(fsys, "layouts/*.tmpl", "partials/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("templates: parse layouts: %w", err)
	}
	files, err := fs.Glob(fsys, "pages/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("templates: list pages: %w", err)
	}
	set := &Set{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		clone, err := shared.Clone()
		if err != nil {
			return nil, fmt.Errorf("templates: clone for %s: %w", file, err)
		}
		page, err := clone.ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("templates: parse %s: %w", file, err)
		}
		set.pages[strings.TrimSuffix(path.Base(file), ".tmpl")] = page
	}
	return set, nil
}

// MustParse parses the embedded templates and panics on error.
func MustParse() *Set {
	set, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return set
}

// Has reports whether a page with the given name exists.
func (s *Set) Has(page string) bool {
	_, ok := s.pages[page]
	return ok
}

// Render executes page into w. Output is buffered so a failing template writes nothing.
func (s *Set) Render(w io.Writer, page string, data any) error {
	t, ok := s.pages[page]
	if !ok {
		return fmt.Errorf("templates: unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("templates: render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"plural": func(n int, one, many string) string {
			if n == 1 {
				return one
			}
			return many
		},
	}
}
