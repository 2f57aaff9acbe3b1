package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tocmarks "github.com/alnah/go-tocmarks"
	"github.com/alnah/go-tocmarks/internal/dateutil"
	"github.com/alnah/go-tocmarks/internal/fileutil"
	"github.com/alnah/go-tocmarks/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// DirName is the directory searched under the user config directory.
const DirName = "tocmarks"

// DefaultOutputPath is where the bookmark file goes when nothing says otherwise.
const DefaultOutputPath = "bookmarks.tex"

// Field length limits. Titles and authors end up in PDF metadata.
const (
	MaxTitleLength   = 500
	MaxAuthorLength  = 200
	MaxSourceLength  = 4096 // Path
	MaxDateLength    = 30   // "2025-12-31" or "December 31, 2025"
	MaxPatternLength = 2048
	MaxMarkerLength  = 100
)

// Config holds all configuration for bookmark generation.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Patterns PatternsConfig `yaml:"patterns"`
	Titles   TitlesConfig   `yaml:"titles"`
	Pages    PagesConfig    `yaml:"pages"`
	Assets   AssetsConfig   `yaml:"assets"`
	Output   OutputConfig   `yaml:"output"`
}

// DocumentConfig defines the metadata written into the preamble.
type DocumentConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Source string `yaml:"source"` // PDF included by \includepdf
	Date   string `yaml:"date"`   // "auto", "auto:FORMAT" or literal; empty = none
}

// PatternsConfig defines the table of contents patterns.
type PatternsConfig struct {
	Chapter  string   `yaml:"chapter"`
	Sections []string `yaml:"sections"`
}

// TitlesConfig defines title handling.
type TitlesConfig struct {
	Escape       bool          `yaml:"escape"` // Match titles literally in the body
	Replacements []Replacement `yaml:"replacements"`
}

// Replacement is a literal substring fix applied to every title.
type Replacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// PagesConfig defines how corrected pages are counted.
type PagesConfig struct {
	Marker        string `yaml:"marker"`
	ChapterOffset int    `yaml:"chapterOffset"`
	SectionOffset int    `yaml:"sectionOffset"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// OutputConfig defines the output destination.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns the configuration matching pdftohtml's single-file
// export and the stock template.
func DefaultConfig() *Config {
	patterns := tocmarks.DefaultPatterns()
	rules := tocmarks.DefaultPageRules()

	replacements := make([]Replacement, 0, len(tocmarks.DefaultReplacements))
	for _, r := range tocmarks.DefaultReplacements {
		replacements = append(replacements, Replacement{From: r.From, To: r.To})
	}

	return &Config{
		Document: DocumentConfig{
			Title:  tocmarks.DefaultDocumentTitle,
			Author: tocmarks.DefaultDocumentAuthor,
			Source: tocmarks.DefaultSourcePDF,
		},
		Patterns: PatternsConfig{
			Chapter:  patterns.Chapter,
			Sections: patterns.Sections,
		},
		Titles: TitlesConfig{Replacements: replacements},
		Pages: PagesConfig{
			Marker:        rules.Marker,
			ChapterOffset: rules.ChapterOffset,
			SectionOffset: rules.SectionOffset,
		},
		Output: OutputConfig{Path: DefaultOutputPath},
	}
}

// Validate checks field lengths and required values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	// Document
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.source", c.Document.Source, MaxSourceLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, MaxDateLength); err != nil {
		return err
	}
	if _, err := dateutil.Resolve(c.Document.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: document.date: %w", ErrInvalidField, err)
	}

	// Patterns
	if err := validateFieldLength("patterns.chapter", c.Patterns.Chapter, MaxPatternLength); err != nil {
		return err
	}
	for i, p := range c.Patterns.Sections {
		if err := validateFieldLength(fmt.Sprintf("patterns.sections[%d]", i), p, MaxPatternLength); err != nil {
			return err
		}
	}

	// Titles
	for i, r := range c.Titles.Replacements {
		if r.From == "" {
			return fmt.Errorf("%w: titles.replacements[%d].from is empty", ErrInvalidField, i)
		}
	}

	// Pages
	if c.Pages.Marker == "" {
		return fmt.Errorf("%w: pages.marker is empty", ErrInvalidField)
	}
	if err := validateFieldLength("pages.marker", c.Pages.Marker, MaxMarkerLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// current directory, then the user config directory (.yaml before .yml).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Options converts the config into service options.
func (c *Config) Options() []tocmarks.Option {
	replacements := make([]tocmarks.Replacement, 0, len(c.Titles.Replacements))
	for _, r := range c.Titles.Replacements {
		replacements = append(replacements, tocmarks.Replacement{From: r.From, To: r.To})
	}

	return []tocmarks.Option{
		tocmarks.WithPatterns(tocmarks.Patterns{
			Chapter:  c.Patterns.Chapter,
			Sections: c.Patterns.Sections,
		}),
		tocmarks.WithPageRules(tocmarks.PageRules{
			Marker:        c.Pages.Marker,
			ChapterOffset: c.Pages.ChapterOffset,
			SectionOffset: c.Pages.SectionOffset,
			EscapeTitles:  c.Titles.Escape,
		}),
		tocmarks.WithReplacements(replacements),
	}
}

// DocumentFor returns the document metadata with the date resolved
// against now.
func (c *Config) DocumentFor(now time.Time) (tocmarks.Document, error) {
	date, err := dateutil.Resolve(c.Document.Date, now)
	if err != nil {
		return tocmarks.Document{}, fmt.Errorf("%w: document.date: %w", ErrInvalidField, err)
	}
	return tocmarks.Document{
		Title:  c.Document.Title,
		Author: c.Document.Author,
		Source: c.Document.Source,
		Date:   date,
	}, nil
}
