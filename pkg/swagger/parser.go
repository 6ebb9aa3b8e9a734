package swagger

import "context"

// Parser decodes a raw Document into the Swagger 2.0 object model consumed by
// the extraction stage.
type Parser interface {
	Spec(ctx context.Context, doc Document) (*Spec, error)
}

// ParserOptions exposes decoding toggles.
type ParserOptions struct {
	// StrictPaths requires a non-empty paths map. Defaults to true; a document
	// without paths fails with ErrMalformedDocument.
	StrictPaths bool

	// AllowYAML enables decoding YAML payloads in addition to JSON. Defaults
	// to true.
	AllowYAML bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithStrictPaths toggles the structural paths requirement.
func WithStrictPaths(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.StrictPaths = enabled
	}
}

// WithYAML toggles YAML payload support.
func WithYAML(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowYAML = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		StrictPaths: true,
		AllowYAML:   true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level svcgen package to avoid import cycles.
