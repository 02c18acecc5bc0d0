// Package codegen defines the contract shared by snippet generators.
package codegen

import "github.com/studiowebux/shellwget/internal/types"

// Callback receives the outcome of a conversion. It is invoked exactly once.
type Callback func(err error, snippet string)

// Generator turns a request description into a snippet for one target syntax
type Generator interface {
	// Language and Variant identify the target, e.g. "shell" / "wget"
	Language() string
	Variant() string

	// Options lists the configuration knobs the generator accepts
	Options() []types.OptionDescriptor

	// Convert generates a snippet with default options
	Convert(req *types.Request, cb Callback)

	// ConvertWithOptions generates a snippet with explicit options
	ConvertWithOptions(req *types.Request, opts types.ConvertOptions, cb Callback)
}
