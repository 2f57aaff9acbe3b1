// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ExportCommand is the pdftohtml invocation that produces supported input.
const ExportCommand = `pdftohtml -i -s -stdout book.pdf | sed 's/&#160;/ /g' > temp.html`

// ForInputNotFound returns hints for a missing or unreadable input file.
func ForInputNotFound() string {
	return format("create the input with: " + ExportCommand)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "tocmarks") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoChapters returns hints when the table of contents yielded nothing.
func ForNoChapters() string {
	return formatHints([]string{
		"check the input was exported with -s (single file)",
		"adjust patterns.chapter in a config file (see --print-config)",
	})
}

// ForDroppedRecords returns hints when records could not be relocated.
func ForDroppedRecords(dropped int) string {
	if dropped == 0 {
		return ""
	}
	return format("run with --verbose to list them; titles with ( ) + ? * may need --escape-titles")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
