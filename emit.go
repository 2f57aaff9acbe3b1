package tocmarks

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/alnah/go-tocmarks/internal/assets"
)

// Template action delimiters. LaTeX source is full of braces.
const (
	templateLeftDelim  = "<<"
	templateRightDelim = ">>"
)

// templateData is what bookmark templates are executed with.
type templateData struct {
	Document  Document
	Bookmarks []Bookmark
}

// Emitter renders corrected records into a LaTeX bookmark file.
type Emitter struct {
	tmpl *template.Template
}

// NewEmitter parses a bookmark template. An empty source uses the built-in
// template.
func NewEmitter(source string) (*Emitter, error) {
	if source == "" {
		source = assets.LoadBookmarksTemplate()
	}

	tmpl, err := template.New("bookmarks").
		Delims(templateLeftDelim, templateRightDelim).
		Option("missingkey=error").
		Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	return &Emitter{tmpl: tmpl}, nil
}

// Emit renders the bookmark file for the given records.
func (e *Emitter) Emit(doc Document, chapters []Chapter, sections []Section) (string, error) {
	data := templateData{
		Document:  doc.withDefaults(),
		Bookmarks: Nest(chapters, sections),
	}

	var buf strings.Builder
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}

// Nest orders bookmarks for output: each chapter at level 0, immediately
// followed by its sections at level 1 in the order given. A section belongs
// to a chapter when its number before the first '.' equals the chapter
// number exactly. Sections with no matching chapter are left out; sections
// matching a duplicated chapter number appear under each copy.
func Nest(chapters []Chapter, sections []Section) []Bookmark {
	bookmarks := make([]Bookmark, 0, len(chapters)+len(sections))
	for _, c := range chapters {
		bookmarks = append(bookmarks, Bookmark{Page: c.Page, Level: LevelChapter, Label: ChapterLabel(c)})
		for _, s := range sections {
			if s.ChapterNumber() != c.Number || !strings.Contains(s.Number, ".") {
				continue
			}
			bookmarks = append(bookmarks, Bookmark{Page: s.Page, Level: LevelSection, Label: SectionLabel(s)})
		}
	}
	return bookmarks
}

// ChapterLabel returns "Ch {number}: {title}".
func ChapterLabel(c Chapter) string {
	return "Ch " + c.Number + ": " + c.Title
}

// SectionLabel returns "Section {number}: {title}".
func SectionLabel(s Section) string {
	return "Section " + s.Number + ": " + s.Title
}
