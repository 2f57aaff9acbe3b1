package tocmarks

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidPattern = errors.New("invalid extraction pattern")
	ErrInvalidMarker  = errors.New("invalid page boundary marker")
	ErrTemplateParse  = errors.New("bookmark template parsing failed")
	ErrTemplateRender = errors.New("bookmark template rendering failed")
)
