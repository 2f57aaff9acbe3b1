package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	// Every registered flag is documented.
	for _, flag := range []string{
		"--output", "--config", "--asset-path", "--print-config",
		"--title", "--author", "--source", "--date",
		"--escape-titles", "--quiet", "--verbose", "--log-json", "--version", "--help",
	} {
		if !strings.Contains(out, flag) {
			t.Errorf("usage should document %s", flag)
		}
	}

	if !strings.HasPrefix(out, "Usage: tocmarks") {
		t.Errorf("usage should start with the synopsis, got %q", out[:min(len(out), 40)])
	}
}
