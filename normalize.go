package tocmarks

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Replacement is a literal text fix applied to titles after normalization.
type Replacement struct {
	From string
	To   string
}

// DefaultReplacements patches known typos in the source corpus.
var DefaultReplacements = []Replacement{
	{From: "specifictions", To: "specifications"},
}

// Normalizer turns a title matched in the table of contents into plain text.
type Normalizer struct {
	replacer *strings.Replacer // nil when there is nothing to replace
}

// NewNormalizer creates a Normalizer applying the given replacements in a
// single pass. Entries with an empty From are skipped.
func NewNormalizer(replacements []Replacement) *Normalizer {
	pairs := make([]string, 0, len(replacements)*2)
	for _, r := range replacements {
		if r.From == "" {
			continue
		}
		pairs = append(pairs, r.From, r.To)
	}

	n := &Normalizer{}
	if len(pairs) > 0 {
		n.replacer = strings.NewReplacer(pairs...)
	}
	return n
}

// Normalize decodes character references (&eacute;, &#233;), applies NFKC so
// that whitespace and compatibility variants compare equal, then applies the
// replacements.
func (n *Normalizer) Normalize(title string) string {
	title = norm.NFKC.String(html.UnescapeString(title))
	if n.replacer != nil {
		title = n.replacer.Replace(title)
	}
	return title
}

var defaultNormalizer = NewNormalizer(DefaultReplacements)

// NormalizeTitle normalizes title with DefaultReplacements.
func NormalizeTitle(title string) string {
	return defaultNormalizer.Normalize(title)
}
