// Package iface defines service interfaces for svcgen.
// These interfaces enable dependency injection and mocking for tests.
package iface

import (
	"context"
)

// ModelLocation is where a model was found under the models root
type ModelLocation struct {
	// Name is the model class name
	Name string

	// SubGroup is the one-level directory the model lives in, empty at the root
	SubGroup string
}

// GroupChooser picks one group when a model exists in several.
// groups is sorted; the returned value must be one of them.
type GroupChooser func(name string, groups []string) (string, error)

// ProviderPatch is the text inserted into the registration file
type ProviderPatch struct {
	// UseStatements go right after the namespace declaration, in order
	UseStatements []string

	// Binding becomes the first statement of the initialization method
	Binding string
}

// Result lists the files touched by one generation run
type Result struct {
	// Written holds project-relative artifact paths in write order
	Written []string

	// Patched is the project-relative registration file path, empty in plain mode
	Patched string
}

// ModelLocator defines the interface for resolving a model name to its location
type ModelLocator interface {
	// Locate returns the single location of name, or a not-found / ambiguity error
	Locate(name string) (*ModelLocation, error)

	// Candidates returns every location of name: the root first, then groups in sorted order
	Candidates(name string) ([]ModelLocation, error)
}

// TemplateRenderer defines the interface for rendering stubs
type TemplateRenderer interface {
	// Render loads the stub's template and applies its substitutions
	Render(stub Stub) (string, error)

	// RenderRaw loads templateID and applies subs in a single pass
	RenderRaw(templateID string, subs []Substitution) (string, error)
}

// FileWriter defines the interface for writing generated files
type FileWriter interface {
	// Write creates missing parent directories and overwrites path with content
	Write(path, content string) error
}

// ProviderPatcher defines the interface for patching the registration file
type ProviderPatcher interface {
	// Patch inserts the patch at its anchors; the file is untouched if an anchor is missing
	Patch(path string, patch ProviderPatch) error
}

// Generator defines the interface for the make:service pipeline
type Generator interface {
	// CheckPrerequisites verifies the base interface and base repository exist
	CheckPrerequisites() error

	// GeneratePlainService writes a single service class for name
	GeneratePlainService(ctx context.Context, name string) (*Result, error)

	// GenerateRepository writes the interface, repository and service for a model
	// and binds them in the registration file. chooser may be nil.
	GenerateRepository(ctx context.Context, name string, chooser GroupChooser) (*Result, error)
}
