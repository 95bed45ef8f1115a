package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist in
	// the embedded filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the render context lacks a field the
	// template references.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a Go template token survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in rendered output")
)
