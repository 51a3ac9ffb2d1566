package render

import (
	"github.com/teozhengyang/programming-helper/internal/catalog"
)

// BlockFunc builds the canned content of one block.
type BlockFunc func(p Params) Block

// Table maps block ids to their canned content.
type Table map[string]BlockFunc

// Family is the dispatch configuration for one section. Tables are consulted most specific
// first: ByTopic, then ByCategory, then Default.
type Family struct {
	Default    Table
	ByTopic    map[string]Table
	ByCategory map[catalog.Category]Table
	Fallback   BlockFunc
}

func (f Family) lookup(topic catalog.Subsection, blockID string) (BlockFunc, bool) {
	if t, ok := f.ByTopic[topic.ID]; ok {
		if fn, ok := t[blockID]; ok {
			return fn, true
		}
	}
	if t, ok := f.ByCategory[topic.Category]; ok {
		if fn, ok := t[blockID]; ok {
			return fn, true
		}
	}
	fn, ok := f.Default[blockID]
	return fn, ok
}

// Known reports whether blockID has canned content for topic.
func (f Family) Known(topic catalog.Subsection, blockID string) bool {
	_, ok := f.lookup(topic, blockID)
	return ok
}

// DefaultFamilies returns a fresh copy of the built-in families keyed by section id.
func DefaultFamilies() map[string]Family {
	return map[string]Family{
		"leetcode":      leetcodeFamily(),
		"system-design": systemDesignFamily(),
		"tech-stacks":   techStacksFamily(),
		"databases":     databasesFamily(),
		"devops":        devopsFamily(),
		"ai-ml":         aimlFamily(),
	}
}

// assign binds fn to every id in t.
func assign(t Table, fn BlockFunc, ids ...string) {
	for _, id := range ids {
		t[id] = fn
	}
}

func card(title, body string) Card {
	return Card{Title: title, Body: body}
}

func toned(tone, title, body string) Card {
	return Card{Title: title, Body: body, Tone: tone}
}

func genericFallback(p Params) Block {
	return Block{
		Intro: "Detailed content for " + p.BlockLower() + " is coming soon.",
		Note:  "We are still writing up this chapter for " + p.Name() + ". Check back later for examples, diagrams, and more.",
	}
}
