package tocmarks

import (
	"fmt"
	"regexp"
)

// Default patterns, tuned for `pdftohtml -i -s -stdout` exports where every
// table-of-contents cell is its own <p> block. Word characters are spelled
// as [\p{L}\p{N}_] because RE2's \w is ASCII-only.
const (
	// DefaultChapterPattern matches a bold number, a bold title and a page.
	DefaultChapterPattern = `</p>\n<p [^>]+"><b>(A?\d+)</b></p>\n<p [^>]+"><b>([\p{L}\p{N}_][^<]+)</b></p>\n<p [^>]+">(\d+)`

	// DefaultNumericSectionPattern matches "3.2", its title and its page,
	// each in its own block.
	DefaultNumericSectionPattern = `">(\d+\.\d+)</p>\n<p [^>]+">([\p{L}\p{N}_][^<]+[\p{L}\p{N}_])</p>\n<p [^>]+">(\d+)</p>`

	// DefaultAppendixSectionPattern matches "A1.2 Title" in one block
	// followed by its page.
	DefaultAppendixSectionPattern = `">(A\d+\.\d+) ([\p{L}\p{N}_][\p{L}\p{N}_ ]+)</p>\n<p [^>]+">(\d+)</p>`
)

// recordGroups is the number of capture groups every pattern must expose:
// number, title, page.
const recordGroups = 3

// SectionVariant identifies one of the built-in section patterns.
// Variants are tried in declaration order.
type SectionVariant int

const (
	SectionNumeric  SectionVariant = iota // "3.2"
	SectionAppendix                       // "A1.2"
)

// SectionVariants lists the built-in variants in the order they are applied.
var SectionVariants = []SectionVariant{SectionNumeric, SectionAppendix}

// Pattern returns the regular expression source of the variant.
func (v SectionVariant) Pattern() string {
	switch v {
	case SectionNumeric:
		return DefaultNumericSectionPattern
	case SectionAppendix:
		return DefaultAppendixSectionPattern
	default:
		return ""
	}
}

func (v SectionVariant) String() string {
	switch v {
	case SectionNumeric:
		return "numeric"
	case SectionAppendix:
		return "appendix"
	default:
		return fmt.Sprintf("SectionVariant(%d)", int(v))
	}
}

// Patterns holds the extraction patterns. Each one must have exactly three
// capture groups: number, title, page.
type Patterns struct {
	Chapter  string
	Sections []string // Applied in order, results concatenated
}

// DefaultPatterns returns the chapter pattern and the built-in section
// variants.
func DefaultPatterns() Patterns {
	sections := make([]string, 0, len(SectionVariants))
	for _, v := range SectionVariants {
		sections = append(sections, v.Pattern())
	}
	return Patterns{
		Chapter:  DefaultChapterPattern,
		Sections: sections,
	}
}

// Extractor finds chapter and section records in raw markup.
type Extractor struct {
	chapter  *regexp.Regexp
	sections []*regexp.Regexp
}

// NewExtractor compiles the patterns.
// Returns ErrInvalidPattern if a pattern does not compile or does not have
// exactly three capture groups.
func NewExtractor(p Patterns) (*Extractor, error) {
	chapter, err := compileRecordPattern("chapter", p.Chapter)
	if err != nil {
		return nil, err
	}

	sections := make([]*regexp.Regexp, 0, len(p.Sections))
	for i, src := range p.Sections {
		re, err := compileRecordPattern(fmt.Sprintf("sections[%d]", i), src)
		if err != nil {
			return nil, err
		}
		sections = append(sections, re)
	}

	return &Extractor{chapter: chapter, sections: sections}, nil
}

// Extract returns every chapter and section triple found in markup.
// Section results are grouped by pattern: document order holds within a
// pattern's results, not across patterns. No match yields an empty slice.
func (e *Extractor) Extract(markup string) (chapters, sections []RawRecord) {
	chapters = findRecords(e.chapter, markup)

	sections = []RawRecord{}
	for _, re := range e.sections {
		sections = append(sections, findRecords(re, markup)...)
	}

	return chapters, sections
}

// findRecords collects the non-overlapping matches of re.
func findRecords(re *regexp.Regexp, markup string) []RawRecord {
	matches := re.FindAllStringSubmatch(markup, -1)
	records := make([]RawRecord, 0, len(matches))
	for _, m := range matches {
		records = append(records, RawRecord{Number: m[1], Title: m[2], Page: m[3]})
	}
	return records
}

func compileRecordPattern(name, src string) (*regexp.Regexp, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: %s: empty pattern", ErrInvalidPattern, name)
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPattern, name, err)
	}
	if n := re.NumSubexp(); n != recordGroups {
		return nil, fmt.Errorf("%w: %s: %d capture groups, want %d", ErrInvalidPattern, name, n, recordGroups)
	}
	return re, nil
}
