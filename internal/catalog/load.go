package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var defaultRegistry []byte

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type registryFile struct {
	Sections []sectionFile `yaml:"sections"`
}

type sectionFile struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Icon        string           `yaml:"icon"`
	Subsections []subsectionFile `yaml:"subsections"`
}

type subsectionFile struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Category    string       `yaml:"category"`
	Sections    []nestedFile `yaml:"sections"`
}

type nestedFile struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ValidationError lists every malformed registry entry found while loading.
type ValidationError struct {
	problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog: invalid registry [%s]", strings.Join(e.problems, "; "))
}

// Problems returns a copy of the problem list.
func (e *ValidationError) Problems() []string {
	out := make([]string, len(e.problems))
	copy(out, e.problems)
	return out
}

// Default returns the registry embedded in the binary. It is decoded once per process.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Parse(defaultRegistry)
	})
	return defaultReg, defaultErr
}

// MustDefault is Default for callers that treat a malformed embedded registry as a build error.
func MustDefault() *Registry {
	reg, err := Default()
	if err != nil {
		panic(err)
	}
	return reg
}

// Load decodes a YAML registry document from r.
func Load(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read registry: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML registry document.
func Parse(data []byte) (*Registry, error) {
	var doc registryFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse registry: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return newRegistry(convert(doc)), nil
}

func validate(doc registryFile) error {
	var problems []string
	check := func(path, id, name string, seen map[string]struct{}) {
		switch {
		case id == "":
			problems = append(problems, path+": missing id")
		case !idPattern.MatchString(id):
			problems = append(problems, fmt.Sprintf("%s: id %q is not a url segment", path, id))
		}
		if id != "" {
			if _, dup := seen[id]; dup {
				problems = append(problems, fmt.Sprintf("%s: duplicate id %q", path, id))
			}
			seen[id] = struct{}{}
		}
		if strings.TrimSpace(name) == "" {
			problems = append(problems, path+": missing name")
		}
	}

	if len(doc.Sections) == 0 {
		problems = append(problems, "sections: empty")
	}
	sectionIDs := map[string]struct{}{}
	for i, s := range doc.Sections {
		sp := fmt.Sprintf("sections[%d]", i)
		if s.ID != "" {
			sp = s.ID
		}
		check(sp, s.ID, s.Name, sectionIDs)
		topicIDs := map[string]struct{}{}
		for j, sub := range s.Subsections {
			tp := fmt.Sprintf("%s/subsections[%d]", sp, j)
			if sub.ID != "" {
				tp = sp + "/" + sub.ID
			}
			check(tp, sub.ID, sub.Name, topicIDs)
			switch Category(sub.Category) {
			case CategoryNone, CategoryLanguage, CategoryFramework:
			default:
				problems = append(problems, fmt.Sprintf("%s: unknown category %q", tp, sub.Category))
			}
			blockIDs := map[string]struct{}{}
			for k, n := range sub.Sections {
				bp := fmt.Sprintf("%s#[%d]", tp, k)
				if n.ID != "" {
					bp = tp + "#" + n.ID
				}
				check(bp, n.ID, n.Name, blockIDs)
			}
		}
	}
	if len(problems) > 0 {
		return &ValidationError{problems: problems}
	}
	return nil
}

func convert(doc registryFile) []Section {
	sections := make([]Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		section := Section{
			ID:          s.ID,
			Name:        strings.TrimSpace(s.Name),
			Icon:        strings.TrimSpace(s.Icon),
			Subsections: make([]Subsection, 0, len(s.Subsections)),
		}
		for _, sub := range s.Subsections {
			blocks := make([]NestedSection, 0, len(sub.Sections))
			for _, n := range sub.Sections {
				blocks = append(blocks, NestedSection{ID: n.ID, Name: strings.TrimSpace(n.Name)})
			}
			section.Subsections = append(section.Subsections, Subsection{
				ID:          sub.ID,
				Name:        strings.TrimSpace(sub.Name),
				Description: strings.TrimSpace(sub.Description),
				Category:    Category(sub.Category),
				Sections:    blocks,
			})
		}
		sections = append(sections, section)
	}
	return sections
}
