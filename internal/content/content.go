// Package content holds the hand-written articles that replace canned block text for selected
// topics. Articles are markdown files with YAML front matter embedded under
// articles/{section}/{topic}/{block}.md.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"
)

//go:embed articles
var embedded embed.FS

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

var segmentPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Heading is one entry in an article's table of contents.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// Article is a rendered, sanitized authored block.
type Article struct {
	Section  string
	Topic    string
	Block    string
	Title    string
	Summary  string
	HTML     template.HTML
	Headings []Heading
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

type key struct {
	section, topic, block string
}

// Library is an immutable set of articles keyed by section, topic and block id.
type Library struct {
	articles map[key]Article
}

// Default returns the library built from the embedded articles.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "articles")
		if err != nil {
			defaultErr = err
			return
		}
		defaultLib, defaultErr = Load(sub)
	})
	return defaultLib, defaultErr
}

// MustDefault panics when the embedded articles fail to load.
func MustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(err)
	}
	return lib
}

// Load reads every {section}/{topic}/{block}.md file in fsys. Files at any other depth are
// ignored.
func Load(fsys fs.FS) (*Library, error) {
	md := newMarkdown()
	policy := newArticlePolicy()
	lib := &Library{articles: map[key]Article{}}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}
		parts := strings.Split(strings.TrimSuffix(p, ".md"), "/")
		if len(parts) != 3 {
			return nil
		}
		k := key{section: parts[0], topic: parts[1], block: parts[2]}
		for _, seg := range parts {
			if !segmentPattern.MatchString(seg) {
				return fmt.Errorf("content: %s: %q is not a url segment", p, seg)
			}
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		article, err := parseArticle(md, policy, k, data)
		if err != nil {
			return fmt.Errorf("content: %s: %w", p, err)
		}
		lib.articles[k] = article
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// Lookup returns the authored article for a block, if any.
func (l *Library) Lookup(section, topic, block string) (Article, bool) {
	if l == nil {
		return Article{}, false
	}
	a, ok := l.articles[key{section: section, topic: topic, block: block}]
	if !ok {
		return Article{}, false
	}
	a.Headings = append([]Heading(nil), a.Headings...)
	return a, true
}

// Blocks lists the authored block ids of a topic in lexical order.
func (l *Library) Blocks(section, topic string) []string {
	if l == nil {
		return nil
	}
	var out []string
	for k := range l.articles {
		if k.section == section && k.topic == topic {
			out = append(out, k.block)
		}
	}
	sort.Strings(out)
	return out
}

// Len reports how many articles are loaded.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.articles)
}

func parseArticle(md goldmark.Markdown, policy *bluemonday.Policy, k key, data []byte) (Article, error) {
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Article{}, fmt.Errorf("parse front matter: %w", err)
		}
	}
	if strings.TrimSpace(body) == "" {
		return Article{}, fmt.Errorf("empty body")
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Article{}, fmt.Errorf("convert markdown: %w", err)
	}
	safe := policy.SanitizeBytes(buf.Bytes())
	out, headings, err := anchorHeadings(safe, k.block)
	if err != nil {
		return Article{}, err
	}

	return Article{
		Section:  k.section,
		Topic:    k.topic,
		Block:    k.block,
		Title:    firstNonEmpty(strings.TrimSpace(front.Title), prettifySlug(k.block)),
		Summary:  strings.TrimSpace(front.Summary),
		HTML:     template.HTML(out),
		Headings: headings,
	}, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

func newArticlePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id").Matching(regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[a-zA-Z0-9_+-]+$`)).OnElements("code")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// anchorHeadings prefixes heading ids with the block id so several articles can share one page
// without colliding, and collects the table of contents.
func anchorHeadings(fragment []byte, block string) (string, []Heading, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), ctx)
	if err != nil {
		return "", nil, fmt.Errorf("parse rendered html: %w", err)
	}

	var headings []Heading
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.DataAtom); level > 0 {
				raw := attr(n, "id")
				if raw == "" {
					raw = fmt.Sprint(len(headings) + 1)
				}
				id := block + "-" + raw
				setAttr(n, "id", id)
				headings = append(headings, Heading{ID: id, Text: strings.TrimSpace(textOf(n)), Level: level})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	var out bytes.Buffer
	for _, n := range nodes {
		walk(n)
		if err := html.Render(&out, n); err != nil {
			return "", nil, fmt.Errorf("render html: %w", err)
		}
	}
	return out.String(), headings, nil
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, name, val string) {
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: val})
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textOf(c))
	}
	return b.String()
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
