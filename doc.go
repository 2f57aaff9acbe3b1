// Package tocmarks builds a LaTeX bookmark file from the HTML export of a
// PDF, so navigable bookmarks can be put back into the PDF.
//
// # Quick Start
//
// Export the PDF with pdftohtml and replace non-breaking spaces:
//
//	pdftohtml -i -s -stdout book.pdf | sed 's/&#160;/ /g' > temp.html
//
// Then convert the export:
//
//	svc, err := tocmarks.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Convert(ctx, tocmarks.Input{Markup: html})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("bookmarks.tex", []byte(result.TeX), 0644)
//
// Compile bookmarks.tex next to the original PDF renamed temp.pdf.
//
// # Pipeline
//
//  1. Extraction: fixed patterns find (number, title, page) triples for
//     chapters and sections in the table of contents.
//  2. Normalization: character references are decoded, titles are NFKC
//     normalized and known typos patched.
//  3. Correction: each heading is searched again in the body; its page is
//     the number of page boundaries (</div>) before the match, plus one for
//     sections. Headings that cannot be found are dropped.
//  4. Emission: chapters become level 0 bookmarks, each followed by the
//     level 1 bookmarks of its sections.
//
// # Patterns
//
// The patterns only fit pdftohtml's -s layout. Other books usually need
// adjusted patterns:
//
//	svc, err := tocmarks.New(
//	    tocmarks.WithPatterns(tocmarks.Patterns{
//	        Chapter:  `<b>Chapter (\d+)</b> (\w[^<]+) (\d+)`,
//	        Sections: []string{tocmarks.DefaultNumericSectionPattern},
//	    }),
//	)
//
// Titles are interpolated into the correction search without escaping.
// A title with regexp metacharacters may match elsewhere or not at all;
// set PageRules.EscapeTitles to match it literally.
package tocmarks
