package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-tocmarks/internal/hints"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tocmarks [flags] <input_file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build LaTeX bookmarks from the HTML export of a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_file    HTML produced by:")
	fmt.Fprintln(w, "                "+hints.ExportCommand)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .tex file (default: bookmarks.tex)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/bookmarks.tex")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           PDF title metadata")
	fmt.Fprintln(w, "      --author <s>          PDF author metadata")
	fmt.Fprintln(w, "      --source <path>       PDF included by the bookmark file (default: temp.pdf)")
	fmt.Fprintln(w, "      --date <s>            Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Matching:")
	fmt.Fprintln(w, "      --escape-titles       Match titles literally in the body")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug diagnostics")
	fmt.Fprintln(w, "      --log-json            Write diagnostics as JSON")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Then compile the output next to the PDF, renamed temp.pdf:")
	fmt.Fprintln(w, "  pdflatex bookmarks.tex")
}
