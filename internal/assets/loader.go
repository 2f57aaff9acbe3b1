package assets

// BookmarksTemplate is the name of the built-in bookmark file template.
const BookmarksTemplate = "bookmarks"

// TemplateLoader defines the contract for loading LaTeX templates.
type TemplateLoader interface {
	// LoadTemplate loads a template by name (without .tex extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
