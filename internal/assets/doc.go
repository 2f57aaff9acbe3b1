// Package assets provides the LaTeX templates used to emit bookmark files.
//
// # Loader Architecture
//
//	TemplateLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in template)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the template
// is not found, so a user can override the preamble without copying
// anything else.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.tex
//
// Templates use << and >> as action delimiters, since LaTeX source is full
// of braces.
//
// # Security
//
// Template names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
