package assets

var defaultLoader = NewEmbeddedLoader()

// LoadBookmarksTemplate returns the built-in bookmark file template.
func LoadBookmarksTemplate() string {
	content, err := defaultLoader.LoadTemplate(BookmarksTemplate)
	if err != nil {
		// The template is embedded at compile time.
		panic("assets: built-in bookmarks template missing: " + err.Error())
	}
	return content
}
