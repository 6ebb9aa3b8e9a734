// Package extractor walks a parsed Swagger 2.0 document and produces the IR
// definition and operation sequences, delegating every schema fragment to the
// type mapper.
package extractor

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-svcgen/internal/mapper"
	"github.com/goliatone/go-svcgen/pkg/ir"
	"github.com/goliatone/go-svcgen/pkg/naming"
	"github.com/goliatone/go-svcgen/pkg/swagger"
)

const (
	locationPath  = "path"
	locationQuery = "query"
	locationBody  = "body"
)

// WarnFunc receives per-operation anomaly reports: skipped deprecated
// operations, extra body parameters, parameters with an unrecognized location.
// None of these abort extraction.
type WarnFunc func(message string)

// IdentifierFunc synthesizes an operation name from a method and path when the
// document declares no operationId. It must return a stable, identifier-safe
// name for a given pair.
type IdentifierFunc func(method, path string) string

// Option configures an Extractor.
type Option func(*Extractor)

// WithWarnHandler installs a handler for per-operation anomalies. Without one
// they are silently ignored.
func WithWarnHandler(warn WarnFunc) Option {
	return func(e *Extractor) {
		e.warn = warn
	}
}

// WithIdentifier overrides the operation-name synthesis used when operationId
// is absent.
func WithIdentifier(fn IdentifierFunc) Option {
	return func(e *Extractor) {
		if fn != nil {
			e.identifier = fn
		}
	}
}

// Extractor converts parsed documents into IR services. It carries no state
// across Extract calls; repeated extraction of one document yields
// structurally identical output.
type Extractor struct {
	warn       WarnFunc
	identifier IdentifierFunc
}

// New constructs an Extractor applying any provided options.
func New(options ...Option) *Extractor {
	e := &Extractor{
		identifier: naming.Identifier,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Extract runs the definitions pass followed by the operations pass. The
// version and paths gates run again here so callers handing in hand-built
// specs get the same failure semantics as the parser path.
func (e *Extractor) Extract(spec *swagger.Spec) (ir.Service, error) {
	if spec == nil {
		return ir.Service{}, fmt.Errorf("%w: spec is nil", swagger.ErrMalformedDocument)
	}
	if spec.Swagger != swagger.Version {
		return ir.Service{}, fmt.Errorf("%w: got %q, want %q", swagger.ErrUnsupportedVersion, spec.Swagger, swagger.Version)
	}
	if len(spec.Paths) == 0 {
		return ir.Service{}, fmt.Errorf("%w: document does not declare any paths", swagger.ErrMalformedDocument)
	}

	svc := ir.Service{
		Definitions: e.definitions(spec),
	}

	for _, path := range spec.PathNames() {
		item := spec.Paths[path]
		for _, slot := range item.Operations() {
			if slot.Operation.Deprecated {
				e.warnf("skipping deprecated operation %s %s", slot.Method, path)
				continue
			}
			svc.Operations = append(svc.Operations, e.operation(slot.Method, path, slot.Operation))
		}
	}

	return svc, nil
}

// definitions emits one entry per definitions key, names sorted.
func (e *Extractor) definitions(spec *swagger.Spec) []ir.Definition {
	names := spec.DefinitionNames()
	if len(names) == 0 {
		return nil
	}
	out := make([]ir.Definition, 0, len(names))
	for _, name := range names {
		out = append(out, ir.Definition{
			Name:   name,
			Schema: mapper.Map(spec.Definitions[name]),
		})
	}
	return out
}

// operation builds one IR operation: name resolution, parameter
// classification, body selection, response selection.
func (e *Extractor) operation(method, path string, op *swagger.Operation) ir.Operation {
	name := op.OperationID
	if name == "" {
		name = e.identifier(method, path)
	}

	var (
		pathFields  []ir.Field
		queryFields []ir.Field
		body        *ir.TypeNode
	)

	for _, param := range op.Parameters {
		if param == nil {
			continue
		}
		switch param.In {
		case locationPath:
			pathFields = append(pathFields, parameterField(param))
		case locationQuery:
			queryFields = append(queryFields, parameterField(param))
		case locationBody:
			if body != nil {
				e.warnf("operation %s declares multiple body parameters; keeping the first", name)
				continue
			}
			mapped := mapper.Map(param.Schema)
			body = &mapped
		default:
			e.warnf("operation %s drops parameter %q with unrecognized location %q", name, param.Name, param.In)
		}
	}

	return ir.Operation{
		Name:        name,
		Path:        path,
		Method:      method,
		Response:    responseNode(op.Responses),
		PathParams:  ir.Object(pathFields),
		QueryParams: ir.Object(queryFields),
		Body:        body,
	}
}

// parameterField maps a non-body parameter. Its schema lives in flat fields on
// the parameter itself, so a schema node is assembled for the mapper; the
// field's required flag comes from the parameter's own declaration, not from
// any schema-level required list.
func parameterField(param *swagger.Parameter) ir.Field {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Items:  param.Items,
			Format: param.Format,
		},
	}
	if param.Type != "" {
		ref.Value.Type = &openapi3.Types{param.Type}
	}
	if len(param.Enum) > 0 {
		ref.Value.Enum = append([]any(nil), param.Enum...)
	}

	return ir.Field{
		Name:     param.Name,
		Type:     mapper.Map(ref),
		Required: param.Required,
	}
}

// responseNode prefers the 200 schema, falls back to 201, and yields the empty
// node otherwise. Other 2xx codes are deliberately not consulted.
func responseNode(responses map[string]*swagger.Response) ir.TypeNode {
	for _, status := range []string{"200", "201"} {
		resp, ok := responses[status]
		if !ok || resp == nil || resp.Schema == nil {
			continue
		}
		return mapper.Map(resp.Schema)
	}
	return ir.Empty()
}

func (e *Extractor) warnf(format string, args ...any) {
	if e.warn == nil {
		return
	}
	e.warn(fmt.Sprintf(format, args...))
}
