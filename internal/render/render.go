// Package render turns a registry topic into a page model. Each content block is resolved against
// the authored article library first, then a per-section family of canned block tables, then a
// generic fallback.
package render

import (
	"context"
	"html/template"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/teozhengyang/programming-helper/internal/catalog"
	"github.com/teozhengyang/programming-helper/internal/content"
	"github.com/teozhengyang/programming-helper/internal/solutions"
)

const instrumentationName = "github.com/teozhengyang/programming-helper/internal/render"

// EmptyTopicMessage is shown when a topic declares no content blocks.
const EmptyTopicMessage = "Content for this topic is being prepared. Check back soon!"

// Kind records which dispatch step produced a block.
type Kind string

const (
	KindAuthored Kind = "authored"
	KindCanned   Kind = "canned"
	KindFallback Kind = "fallback"
)

// Card is a titled callout inside a block.
type Card struct {
	Title string
	Body  string
	Tone  string
}

// Question is an interview-style prompt listed by example blocks.
type Question struct {
	Title          string
	Tag            string
	Prompt         string
	Considerations string
}

// Block is one rendered content block of a topic page. Exactly one of the canned fields or HTML
// is populated, depending on Kind.
type Block struct {
	ID        string
	Name      string
	Kind      Kind
	Heading   string
	Intro     string
	Note      string
	Cards     []Card
	Code      string
	Questions []Question
	HTML      template.HTML
	Headings  []content.Heading
	Samples   []solutions.Sample
}

// TopicPage is the page model for one (section, subsection) pair.
type TopicPage struct {
	SectionID   string
	SectionName string
	TopicID     string
	Title       string
	Description string
	Placeholder string
	Blocks      []Block
}

// Path returns the URL path of the page.
func (p TopicPage) Path() string {
	return "/" + p.SectionID + "/" + p.TopicID
}

type sampleKey struct {
	section, topic, block string
}

// Renderer composes topic pages. It is safe for concurrent use once built.
type Renderer struct {
	families map[string]Family
	library  *content.Library
	samples  map[sampleKey]func() []solutions.Sample
	logger   *zap.Logger
	tracer   trace.Tracer

	blocks        metric.Int64Counter
	blocksEnabled bool
}

type options struct {
	families map[string]Family
	library  *content.Library
	logger   *zap.Logger
	meter    metric.Meter
	tracer   trace.Tracer
}

// Option customises a Renderer.
type Option func(*options)

// WithLibrary sets the authored article library. Without it no block renders as authored.
func WithLibrary(lib *content.Library) Option {
	return func(o *options) {
		o.library = lib
	}
}

// WithFamily registers or replaces the block family for a section id.
func WithFamily(sectionID string, f Family) Option {
	return func(o *options) {
		o.families[sectionID] = f
	}
}

// WithLogger sets the logger used for instrumentation warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMeter overrides the meter used for block counters.
func WithMeter(m metric.Meter) Option {
	return func(o *options) {
		o.meter = m
	}
}

// WithTracer overrides the tracer used for render spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// New builds a Renderer with the built-in section families.
func New(opts ...Option) *Renderer {
	cfg := options{families: DefaultFamilies()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.meter == nil {
		cfg.meter = otel.GetMeterProvider().Meter(instrumentationName)
	}
	if cfg.tracer == nil {
		cfg.tracer = otel.Tracer(instrumentationName)
	}

	blocks, err := cfg.meter.Int64Counter(
		"render.blocks",
		metric.WithDescription("Count of content blocks rendered, by dispatch kind"),
	)
	if err != nil {
		cfg.logger.Warn("render: unable to register block metric", zap.Error(err))
	}

	return &Renderer{
		families: cfg.families,
		library:  cfg.library,
		samples: map[sampleKey]func() []solutions.Sample{
			{section: "leetcode", topic: "prefix-sum", block: "examples"}: solutions.Samples,
		},
		logger:        cfg.logger,
		tracer:        cfg.tracer,
		blocks:        blocks,
		blocksEnabled: err == nil,
	}
}

// Lookup resolves a routed pair against the registry and renders it. Unknown ids yield
// catalog.ErrNotFound.
func (r *Renderer) Lookup(ctx context.Context, reg *catalog.Registry, sectionID, topicID string) (TopicPage, error) {
	section, topic, err := reg.Resolve(sectionID, topicID)
	if err != nil {
		return TopicPage{}, err
	}
	return r.Topic(ctx, section, topic), nil
}

// Topic renders a subsection of section. The result depends only on its inputs.
func (r *Renderer) Topic(ctx context.Context, section catalog.Section, topic catalog.Subsection) TopicPage {
	ctx, span := r.tracer.Start(ctx, "render.Topic", trace.WithAttributes(
		attribute.String("render.section", section.ID),
		attribute.String("render.topic", topic.ID),
	))
	defer span.End()

	page := TopicPage{
		SectionID:   section.ID,
		SectionName: section.Name,
		TopicID:     topic.ID,
		Title:       topic.Name,
		Description: topic.Description,
	}
	if len(topic.Sections) == 0 {
		page.Placeholder = EmptyTopicMessage
		return page
	}

	family, ok := r.families[section.ID]
	if !ok {
		family = Family{Fallback: genericFallback}
	}

	page.Blocks = make([]Block, 0, len(topic.Sections))
	for _, nested := range topic.Sections {
		b := r.block(section, topic, nested, family)
		r.count(ctx, section.ID, b.Kind)
		page.Blocks = append(page.Blocks, b)
	}
	span.SetAttributes(attribute.Int("render.blocks", len(page.Blocks)))
	return page
}

func (r *Renderer) block(section catalog.Section, topic catalog.Subsection, nested catalog.NestedSection, family Family) Block {
	var b Block
	if article, ok := r.library.Lookup(section.ID, topic.ID, nested.ID); ok {
		b = Block{
			Kind:     KindAuthored,
			Heading:  article.Title,
			Intro:    article.Summary,
			HTML:     article.HTML,
			Headings: article.Headings,
		}
		if fn, ok := r.samples[sampleKey{section: section.ID, topic: topic.ID, block: nested.ID}]; ok {
			b.Samples = fn()
		}
	} else {
		p := Params{Section: section, Topic: topic, Block: nested}
		if fn, ok := family.lookup(topic, nested.ID); ok {
			b = fn(p)
			b.Kind = KindCanned
		} else {
			fallback := family.Fallback
			if fallback == nil {
				fallback = genericFallback
			}
			b = fallback(p)
			b.Kind = KindFallback
		}
	}
	b.ID = nested.ID
	b.Name = nested.Name
	if b.Heading == "" {
		b.Heading = nested.Name
	}
	return b
}

func (r *Renderer) count(ctx context.Context, sectionID string, kind Kind) {
	if !r.blocksEnabled {
		return
	}
	r.blocks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("section", sectionID),
		attribute.String("kind", string(kind)),
	))
}

// Params carries the names a block template is parameterised by.
type Params struct {
	Section catalog.Section
	Topic   catalog.Subsection
	Block   catalog.NestedSection
}

// Name is the subsection display name.
func (p Params) Name() string { return p.Topic.Name }

// NameLower is the subsection display name in lower case.
func (p Params) NameLower() string { return lower(p.Topic.Name) }

// BlockName is the block display name.
func (p Params) BlockName() string { return p.Block.Name }

// BlockLower is the block display name in lower case.
func (p Params) BlockLower() string { return lower(p.Block.Name) }

// cases.Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.English).String(s)
}
