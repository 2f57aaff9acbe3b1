package tocmarks

import (
	"context"
	"fmt"
)

// Service runs the extraction pipeline: extract, normalize and correct,
// emit.
type Service struct {
	cfg       serviceConfig
	extractor *Extractor
	corrector *Corrector
	emitter   *Emitter
}

// Option configures a Service.
type Option func(*serviceConfig)

// serviceConfig holds what New needs to build the pipeline stages.
type serviceConfig struct {
	patterns     Patterns
	rules        PageRules
	replacements []Replacement
	template     string // Empty = built-in template
	logger       Logger
}

// WithPatterns replaces the extraction patterns.
func WithPatterns(p Patterns) Option {
	return func(c *serviceConfig) {
		c.patterns = p
	}
}

// WithPageRules replaces the page correction rules.
func WithPageRules(r PageRules) Option {
	return func(c *serviceConfig) {
		c.rules = r
	}
}

// WithReplacements replaces the title replacements. Pass nil to disable
// them, including the default typo fix.
func WithReplacements(r []Replacement) Option {
	return func(c *serviceConfig) {
		c.replacements = r
	}
}

// WithTemplate sets the bookmark template source (<< >> delimiters).
func WithTemplate(source string) Option {
	return func(c *serviceConfig) {
		c.template = source
	}
}

// WithLogger sets the diagnostics sink. A nil logger discards.
func WithLogger(l Logger) Option {
	return func(c *serviceConfig) {
		if l == nil {
			l = nopLogger{}
		}
		c.logger = l
	}
}

// New creates a Service. Defaults match pdftohtml's single-file export.
// Returns an error if patterns, page rules or template are invalid.
func New(opts ...Option) (*Service, error) {
	cfg := serviceConfig{
		patterns:     DefaultPatterns(),
		rules:        DefaultPageRules(),
		replacements: DefaultReplacements,
		logger:       nopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	extractor, err := NewExtractor(cfg.patterns)
	if err != nil {
		return nil, err
	}

	corrector, err := NewCorrector(cfg.rules, NewNormalizer(cfg.replacements), cfg.logger)
	if err != nil {
		return nil, err
	}

	emitter, err := NewEmitter(cfg.template)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		extractor: extractor,
		corrector: corrector,
		emitter:   emitter,
	}, nil
}

// Convert extracts, corrects and emits the bookmarks for one export.
// Records that cannot be relocated are dropped, not reported as errors.
// Empty markup yields a document holding only the preamble.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	rawChapters, rawSections := s.extractor.Extract(input.Markup)
	s.cfg.logger.Info(fmt.Sprintf("Initially found %d chapters and %d sections", len(rawChapters), len(rawSections)))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	chapters := s.corrector.CorrectChapters(input.Markup, rawChapters)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sections := s.corrector.CorrectSections(input.Markup, rawSections)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tex, err := s.emitter.Emit(input.Document, chapters, sections)
	if err != nil {
		return nil, fmt.Errorf("emitting bookmarks: %w", err)
	}

	return &Result{
		TeX:      tex,
		Chapters: chapters,
		Sections: sections,
		Stats: Stats{
			ChaptersFound:     len(rawChapters),
			SectionsFound:     len(rawSections),
			ChaptersCorrected: len(chapters),
			SectionsCorrected: len(sections),
		},
	}, nil
}
