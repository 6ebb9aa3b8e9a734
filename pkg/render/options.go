package render

import "github.com/goliatone/go-svcgen/pkg/naming"

// RenderOptions carries per-call rendering configuration. Options travel with
// every Render call instead of living in process-wide registrations, so
// repeated generation passes in one process stay independent.
type RenderOptions struct {
	// ServiceName overrides the generated service/class name. Renderers fall
	// back to a sensible default when empty.
	ServiceName string

	// PropertyCase selects how declared property names are rewritten in the
	// output. Defaults to naming.ConventionCamel.
	PropertyCase naming.Convention

	// Header is emitted verbatim at the top of generated files, typically a
	// do-not-edit banner.
	Header string
}

// PropertyConvention resolves the effective convention.
func (o RenderOptions) PropertyConvention() naming.Convention {
	if o.PropertyCase.Valid() {
		return o.PropertyCase
	}
	return naming.ConventionCamel
}

// ApplyCase rewrites a declared name using the configured convention.
func (o RenderOptions) ApplyCase(name string) string {
	return o.PropertyConvention().Apply(name)
}
