package tocmarks

import (
	"fmt"
	"strings"
)

// RawRecord is one (number, title, page) triple as matched in the markup.
// Nothing is decoded or validated; the page may not even parse as a number
// when custom patterns are in use.
type RawRecord struct {
	Number string
	Title  string
	Page   string
}

// Chapter is a corrected top-level division.
type Chapter struct {
	Number string // "3", "A1"
	Title  string
	Page   int
}

// Section is a corrected second-level division.
type Section struct {
	Number string // "3.2", "A1.2"
	Title  string
	Page   int
}

// ChapterNumber returns the number of the chapter owning this section:
// everything before the first '.'. A number without a dot owns itself.
func (s Section) ChapterNumber() string {
	prefix, _, _ := strings.Cut(s.Number, ".")
	return prefix
}

// Bookmark is one rendered \bookmark directive.
type Bookmark struct {
	Page  int
	Level int
	Label string
}

// Bookmark levels.
const (
	LevelChapter = 0
	LevelSection = 1
)

// String renders the directive as it appears in the output file.
func (b Bookmark) String() string {
	return fmt.Sprintf(`\bookmark[page=%d,level=%d]{%s}`, b.Page, b.Level, b.Label)
}

// Document holds the metadata written into the LaTeX preamble.
type Document struct {
	Title  string // hyperref pdftitle
	Author string // hyperref pdfauthor
	Source string // PDF included with \includepdf
	Date   string // Optional, adds a "Generated:" line to the comment block
}

// Default document metadata, placeholders meant to be hand-edited.
const (
	DefaultDocumentTitle  = "Title of the PDF"
	DefaultDocumentAuthor = "Name of the Author(s)"
	DefaultSourcePDF      = "temp.pdf"
)

// DefaultDocument returns the placeholder metadata.
func DefaultDocument() Document {
	return Document{
		Title:  DefaultDocumentTitle,
		Author: DefaultDocumentAuthor,
		Source: DefaultSourcePDF,
	}
}

// withDefaults fills empty fields from DefaultDocument.
// Date stays empty when unset.
func (d Document) withDefaults() Document {
	def := DefaultDocument()
	if d.Title == "" {
		d.Title = def.Title
	}
	if d.Author == "" {
		d.Author = def.Author
	}
	if d.Source == "" {
		d.Source = def.Source
	}
	return d
}

// Input holds the per-conversion data.
type Input struct {
	Markup   string   // Full pdftohtml export, non-breaking spaces already replaced
	Document Document // Zero value means placeholder metadata
}

// Result is the outcome of a conversion.
type Result struct {
	TeX      string    // Emitted LaTeX source
	Chapters []Chapter // Corrected chapters, in extraction order
	Sections []Section // Corrected sections, in extraction order
	Stats    Stats
}

// Stats counts records through the pipeline stages.
type Stats struct {
	ChaptersFound     int // Extracted from the table of contents
	SectionsFound     int
	ChaptersCorrected int // Located in the body and kept
	SectionsCorrected int
}

// ChaptersDropped returns how many extracted chapters could not be located.
func (s Stats) ChaptersDropped() int {
	return s.ChaptersFound - s.ChaptersCorrected
}

// SectionsDropped returns how many extracted sections could not be located.
func (s Stats) SectionsDropped() int {
	return s.SectionsFound - s.SectionsCorrected
}
