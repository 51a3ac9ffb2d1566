package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsolute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/leetcode/prefix-sum", Absolute("https://example.com/", "/leetcode/prefix-sum"))
	assert.Equal(t, "https://example.com/", Absolute("https://example.com", ""))
	assert.Equal(t, "/devops", Absolute("", "devops"))
}

func TestBreadcrumbListJSON(t *testing.T) {
	t.Parallel()

	got := JSON(BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://example.com/"},
		{Name: "LeetCode", Item: "https://example.com/leetcode"},
	}))
	assert.JSONEq(t, `{
		"@context": "https://schema.org",
		"@type": "BreadcrumbList",
		"itemListElement": [
			{"@type": "ListItem", "position": 1, "name": "Home", "item": "https://example.com/"},
			{"@type": "ListItem", "position": 2, "name": "LeetCode", "item": "https://example.com/leetcode"}
		]
	}`, string(got))
}

func TestTechArticleOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	m := TechArticle("Prefix Sum", "", "https://example.com/leetcode/prefix-sum", "LeetCode")
	assert.NotContains(t, m, "description")
	assert.Equal(t, "LeetCode", m["articleSection"])

	meta := NewMeta("Docker", "Containers", "/devops/docker", "article")
	assert.Equal(t, "Docker", meta.OG.Title)
	assert.Equal(t, "/devops/docker", meta.OG.URL)
}
