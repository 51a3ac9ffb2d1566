package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryShape(t *testing.T) {
	t.Parallel()

	reg, err := Default()
	require.NoError(t, err)

	var ids []string
	for _, s := range reg.Sections() {
		ids = append(ids, s.ID)
	}
	require.Equal(t, []string{"leetcode", "system-design", "tech-stacks", "databases", "devops", "ai-ml"}, ids)

	first, ok := reg.FirstSubsection("leetcode")
	require.True(t, ok)
	assert.Equal(t, "prefix-sum", first.ID)
	assert.Equal(t, "Prefix Sum", first.Name)
	assert.Equal(t, "Cumulative sum techniques", first.Description)

	docker, ok := reg.FindSubsection("devops", "docker")
	require.True(t, ok)
	var blocks []string
	for _, n := range docker.Sections {
		blocks = append(blocks, n.ID)
	}
	assert.Equal(t, []string{"introduction", "dockerfile", "images", "compose", "networking", "best-practices"}, blocks)

	python, ok := reg.FindSubsection("tech-stacks", "python")
	require.True(t, ok)
	assert.Equal(t, CategoryLanguage, python.Category)
	angular, ok := reg.FindSubsection("tech-stacks", "angular")
	require.True(t, ok)
	assert.Equal(t, CategoryFramework, angular.Category)
}

func TestFindSectionAbsent(t *testing.T) {
	t.Parallel()

	reg := MustDefault()
	_, ok := reg.FindSection("cooking")
	assert.False(t, ok)
	_, ok = reg.FindSection("LeetCode")
	assert.False(t, ok, "lookups are exact match")
	_, ok = reg.FindSection("")
	assert.False(t, ok)
}

func TestFindSubsectionAbsent(t *testing.T) {
	t.Parallel()

	reg := MustDefault()
	_, ok := reg.FindSubsection("leetcode", "docker")
	assert.False(t, ok, "topic from another section must not resolve")
	_, ok = reg.FindSubsection("nope", "prefix-sum")
	assert.False(t, ok)

	_, _, err := reg.Resolve("leetcode", "does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
	_, _, err = reg.Resolve("missing", "prefix-sum")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubsectionIDs(t *testing.T) {
	t.Parallel()

	reg := MustDefault()
	assert.Equal(t, []string{"postgresql", "mongodb"}, reg.SubsectionIDs("databases"))
	assert.Empty(t, reg.SubsectionIDs("unknown"))
	assert.NotNil(t, reg.SubsectionIDs("unknown"))
}

func TestTopicsCoverEveryPair(t *testing.T) {
	t.Parallel()

	reg := MustDefault()
	topics := reg.Topics()

	total := 0
	for _, s := range reg.Sections() {
		total += len(s.Subsections)
	}
	require.Len(t, topics, total)
	assert.Equal(t, Topic{SectionID: "leetcode", SubsectionID: "prefix-sum"}, topics[0])
	assert.Equal(t, "/leetcode/prefix-sum", topics[0].Path())
	for _, tp := range topics {
		_, ok := reg.FindSubsection(tp.SectionID, tp.SubsectionID)
		assert.True(t, ok, tp.Path())
	}
}

func TestReturnedValuesDoNotAliasRegistry(t *testing.T) {
	t.Parallel()

	reg, err := Parse([]byte(`
sections:
  - id: a
    name: A
    subsections:
      - id: one
        name: One
        sections:
          - {id: intro, name: Intro}
`))
	require.NoError(t, err)

	s, ok := reg.FindSection("a")
	require.True(t, ok)
	s.Subsections[0].Name = "changed"
	s.Subsections[0].Sections[0].ID = "changed"

	again, ok := reg.FindSubsection("a", "one")
	require.True(t, ok)
	assert.Equal(t, "One", again.Name)
	assert.Equal(t, "intro", again.Sections[0].ID)
}

func TestParseRejectsMalformedRegistry(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
sections:
  - id: algo
    name: Algorithms
    subsections:
      - id: sorting
        name: Sorting
        sections:
          - {id: intro, name: Intro}
          - {id: intro, name: Again}
      - id: sorting
        name: Duplicate
      - id: Bad_ID
        name: Bad
        category: cooking
  - id: algo
    name: ""
`))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	joined := strings.Join(verr.Problems(), "\n")
	assert.Contains(t, joined, `algo/sorting#intro: duplicate id "intro"`)
	assert.Contains(t, joined, `algo/sorting: duplicate id "sorting"`)
	assert.Contains(t, joined, `algo/Bad_ID: id "Bad_ID" is not a url segment`)
	assert.Contains(t, joined, `algo/Bad_ID: unknown category "cooking"`)
	assert.Contains(t, joined, `algo: duplicate id "algo"`)
	assert.Contains(t, joined, "algo: missing name")
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(strings.NewReader("sections: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog: parse registry")

	_, err = Parse([]byte("sections: []"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"sections: empty"}, verr.Problems())
}

func TestEmptySubsectionHasNoLanding(t *testing.T) {
	t.Parallel()

	reg, err := Parse([]byte(`
sections:
  - id: soon
    name: Coming Soon
`))
	require.NoError(t, err)
	_, ok := reg.FirstSubsection("soon")
	assert.False(t, ok)
	_, ok = reg.FindSection("soon")
	assert.True(t, ok)
}
