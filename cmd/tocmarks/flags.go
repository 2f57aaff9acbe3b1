package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds config and verbosity flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	logJSON bool
}

// documentFlags holds preamble metadata flags.
type documentFlags struct {
	title  string
	author string
	source string
	date   string
}

// cliFlags holds all flags of the command.
type cliFlags struct {
	common       commonFlags
	document     documentFlags
	output       string
	assetPath    string
	escapeTitles bool
	printConfig  bool
	version      bool
	help         bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug diagnostics")
	fs.BoolVar(&f.logJSON, "log-json", false, "write diagnostics as JSON")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "PDF title metadata")
	fs.StringVar(&f.author, "author", "", "PDF author metadata")
	fs.StringVar(&f.source, "source", "", "PDF included by the bookmark file")
	fs.StringVar(&f.date, "date", "", "generation date (\"auto\" = today, \"auto:FORMAT\")")
}

// parseFlags parses command flags and returns positional args.
// Usage is printed by the caller, never by pflag.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("tocmarks", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output .tex file (default: bookmarks.tex)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with templates/bookmarks.tex")
	fs.BoolVar(&f.escapeTitles, "escape-titles", false, "match titles literally in the body")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
