// Package models provides the shared data model for create-project.
//
// The central type is [ProjectSpec]: the immutable record of a generation
// request (name, template, Python version, framework, feature flags).
// It is built once from command-line input, validated with
// [ProjectSpec.Validate], and then consumed read-only by every generator.
//
// Enum types ([Template], [PythonVersion], [Framework], [DVCRemote]) carry
// their own IsValid methods and ValidX helpers for flag validation:
//
//	ver := models.PythonVersion("3.10")
//	if !ver.IsValid() {
//	    // reject with usage message
//	}
package models
