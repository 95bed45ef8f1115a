// Package project composes a new project tree from a validated
// ProjectSpec: it dispatches the generator pipeline in a fixed order,
// runs the external git and dvc initialization steps, and reports what
// was created.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrProjectExists indicates the target project directory already exists.
	// No writes are performed past this check; there is no merge or
	// overwrite mode.
	ErrProjectExists = errors.New("project directory already exists")

	// ErrComposeFailed indicates a generation step failed.
	ErrComposeFailed = errors.New("project composition failed")
)
