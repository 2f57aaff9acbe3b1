package tocmarks

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Search templates. {num}, {title} and {page} are substituted before
// compiling; by default the values go in raw, so regexp metacharacters in a
// title keep their meaning.
const (
	// chapterSearchTemplate finds the first running header after the chapter
	// opening: the bold page number followed by the chapter title.
	chapterSearchTemplate = `(?i:<b>{page}</b></p>\n<p [^>]+">{title}</p>\n<)`

	// sectionSearchTemplate finds the section heading in the body: the bold
	// number followed by a bold block containing the title.
	sectionSearchTemplate = `(?i:><b>{num}</b></p>\n<p [^>]+"><b>[^>]*{title}[^>]*</b>)`
)

// DefaultBoundaryMarker closes every page <div> in the export.
const DefaultBoundaryMarker = "</div>"

// PageRules controls how corrected pages are computed.
type PageRules struct {
	Marker        string // Counted before the match to get the page
	ChapterOffset int    // Added to the count for chapters
	SectionOffset int    // Added to the count for sections
	EscapeTitles  bool   // Quote number and title before interpolating
}

// DefaultPageRules returns the rules matching pdftohtml's single-file export.
// A section heading sits on the page after its last counted boundary, hence
// the extra one.
func DefaultPageRules() PageRules {
	return PageRules{
		Marker:        DefaultBoundaryMarker,
		ChapterOffset: 0,
		SectionOffset: 1,
	}
}

// Validate checks the marker is usable for counting.
func (r PageRules) Validate() error {
	if r.Marker == "" {
		return fmt.Errorf("%w: empty marker", ErrInvalidMarker)
	}
	return nil
}

// Corrector relocates records in the document body and recomputes their
// page by counting boundary markers. Records that cannot be located are
// dropped.
type Corrector struct {
	rules      PageRules
	normalizer *Normalizer
	logger     Logger
}

// NewCorrector creates a Corrector. A nil normalizer uses
// DefaultReplacements; a nil logger discards diagnostics.
func NewCorrector(rules PageRules, normalizer *Normalizer, logger Logger) (*Corrector, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if normalizer == nil {
		normalizer = defaultNormalizer
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Corrector{rules: rules, normalizer: normalizer, logger: logger}, nil
}

// CorrectChapters normalizes titles and relocates every chapter.
func (c *Corrector) CorrectChapters(markup string, raw []RawRecord) []Chapter {
	chapters := make([]Chapter, 0, len(raw))
	for _, r := range raw {
		title := c.normalizer.Normalize(r.Title)

		tocPage, err := strconv.Atoi(strings.TrimSpace(r.Page))
		if err != nil {
			c.logger.Warn("Invalid page", "num", r.Number, "title", title, "page", r.Page)
			continue
		}

		// The running header on the page after the opening carries the
		// next page number.
		pattern := c.searchPattern(chapterSearchTemplate, r.Number, title, strconv.Itoa(tocPage+1))
		page, ok := c.locate(markup, pattern, c.rules.ChapterOffset, r.Number, title, r.Page)
		if !ok {
			continue
		}
		chapters = append(chapters, Chapter{Number: r.Number, Title: title, Page: page})
	}
	return chapters
}

// CorrectSections normalizes titles and relocates every section.
func (c *Corrector) CorrectSections(markup string, raw []RawRecord) []Section {
	sections := make([]Section, 0, len(raw))
	for _, r := range raw {
		title := c.normalizer.Normalize(r.Title)

		pattern := c.searchPattern(sectionSearchTemplate, r.Number, title, r.Page)
		page, ok := c.locate(markup, pattern, c.rules.SectionOffset, r.Number, title, r.Page)
		if !ok {
			continue
		}
		sections = append(sections, Section{Number: r.Number, Title: title, Page: page})
	}
	return sections
}

// searchPattern fills a search template.
func (c *Corrector) searchPattern(tmpl, num, title, page string) string {
	if c.rules.EscapeTitles {
		num = regexp.QuoteMeta(num)
		title = regexp.QuoteMeta(title)
	}
	return strings.NewReplacer("{num}", num, "{title}", title, "{page}", page).Replace(tmpl)
}

// locate searches markup for the first match of pattern and returns the
// number of boundary markers before it plus offset. A result below 1 is
// not a page and counts as a miss.
func (c *Corrector) locate(markup, pattern string, offset int, num, title, tocPage string) (int, bool) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		c.logger.Warn("Could not update page", "num", num, "title", title, "err", err)
		return 0, false
	}

	loc := re.FindStringIndex(markup)
	if loc == nil {
		c.logger.Warn("Could not update page", "num", num, "title", title)
		return 0, false
	}

	page := PageAt(markup, loc[0], c.rules.Marker) + offset
	if page < 1 {
		c.logger.Warn("Could not update page", "num", num, "title", title, "page", page)
		return 0, false
	}

	c.logger.Info("Updated page", "num", num, "title", title, "from", tocPage, "to", page)
	return page, true
}

// PageAt counts occurrences of marker in markup[:offset].
func PageAt(markup string, offset int, marker string) int {
	offset = max(0, min(offset, len(markup)))
	return strings.Count(markup[:offset], marker)
}
