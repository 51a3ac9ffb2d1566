package catalog

import (
	"errors"
)

// ErrNotFound is returned when a section or topic id has no registry entry.
var ErrNotFound = errors.New("catalog: not found")

// Category tags a subsection so renderers can branch template selection.
type Category string

const (
	CategoryNone      Category = ""
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
)

// NestedSection is a content block within a topic page.
type NestedSection struct {
	ID   string
	Name string
}

// Subsection is a single topic page within a section.
type Subsection struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Sections    []NestedSection
}

// Section is a top-level topic category shown in the navbar.
type Section struct {
	ID          string
	Name        string
	Icon        string
	Subsections []Subsection
}

// Topic addresses one routed page.
type Topic struct {
	SectionID    string
	SubsectionID string
}

// Path returns the URL path of the topic page.
func (t Topic) Path() string {
	return "/" + t.SectionID + "/" + t.SubsectionID
}

// Registry is the read-only topic tree. Build it with Load or Default and pass it to consumers;
// there are no mutators.
type Registry struct {
	sections []Section
	index    map[string]int
	topics   map[string]map[string]int
}

func newRegistry(sections []Section) *Registry {
	r := &Registry{
		sections: sections,
		index:    make(map[string]int, len(sections)),
		topics:   make(map[string]map[string]int, len(sections)),
	}
	for i, s := range sections {
		r.index[s.ID] = i
		subs := make(map[string]int, len(s.Subsections))
		for j, sub := range s.Subsections {
			subs[sub.ID] = j
		}
		r.topics[s.ID] = subs
	}
	return r
}

// Sections returns every section in declared order.
func (r *Registry) Sections() []Section {
	if r == nil {
		return nil
	}
	out := make([]Section, len(r.sections))
	for i, s := range r.sections {
		out[i] = cloneSection(s)
	}
	return out
}

// FindSection looks up a section by exact id.
func (r *Registry) FindSection(id string) (Section, bool) {
	if r == nil {
		return Section{}, false
	}
	i, ok := r.index[id]
	if !ok {
		return Section{}, false
	}
	return cloneSection(r.sections[i]), true
}

// FindSubsection looks up a topic within a section by exact ids.
func (r *Registry) FindSubsection(sectionID, topicID string) (Subsection, bool) {
	if r == nil {
		return Subsection{}, false
	}
	i, ok := r.index[sectionID]
	if !ok {
		return Subsection{}, false
	}
	j, ok := r.topics[sectionID][topicID]
	if !ok {
		return Subsection{}, false
	}
	return cloneSubsection(r.sections[i].Subsections[j]), true
}

// FirstSubsection returns the landing topic of a section. It reports false when the section is
// unknown or declares no subsections.
func (r *Registry) FirstSubsection(sectionID string) (Subsection, bool) {
	s, ok := r.FindSection(sectionID)
	if !ok || len(s.Subsections) == 0 {
		return Subsection{}, false
	}
	return s.Subsections[0], true
}

// SubsectionIDs lists the topic ids of a section, or an empty slice when the section is unknown.
func (r *Registry) SubsectionIDs(sectionID string) []string {
	s, ok := r.FindSection(sectionID)
	if !ok {
		return []string{}
	}
	ids := make([]string, 0, len(s.Subsections))
	for _, sub := range s.Subsections {
		ids = append(ids, sub.ID)
	}
	return ids
}

// Topics lists every routable (section, subsection) pair in declared order.
func (r *Registry) Topics() []Topic {
	if r == nil {
		return nil
	}
	var out []Topic
	for _, s := range r.sections {
		for _, sub := range s.Subsections {
			out = append(out, Topic{SectionID: s.ID, SubsectionID: sub.ID})
		}
	}
	return out
}

// Resolve returns the section and subsection for a topic, or ErrNotFound.
func (r *Registry) Resolve(sectionID, topicID string) (Section, Subsection, error) {
	section, ok := r.FindSection(sectionID)
	if !ok {
		return Section{}, Subsection{}, ErrNotFound
	}
	sub, ok := r.FindSubsection(sectionID, topicID)
	if !ok {
		return Section{}, Subsection{}, ErrNotFound
	}
	return section, sub, nil
}

func cloneSection(s Section) Section {
	cp := s
	cp.Subsections = make([]Subsection, len(s.Subsections))
	for i, sub := range s.Subsections {
		cp.Subsections[i] = cloneSubsection(sub)
	}
	return cp
}

func cloneSubsection(s Subsection) Subsection {
	cp := s
	cp.Sections = append([]NestedSection(nil), s.Sections...)
	return cp
}
