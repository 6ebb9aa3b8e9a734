// Package angular renders an IR service as an Angular service class plus the
// DTO interfaces it needs: one injectable class with a typed method per
// operation, HttpParams handling for query parameters, and template-literal
// path interpolation for path parameters.
package angular

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-svcgen/pkg/ir"
	"github.com/goliatone/go-svcgen/pkg/naming"
	"github.com/goliatone/go-svcgen/pkg/render"
	"github.com/goliatone/go-svcgen/pkg/render/template"
	"github.com/goliatone/go-svcgen/pkg/render/template/pongo2tpl"
)

const (
	// RendererName is the registry key for this renderer.
	RendererName = "angular"

	defaultServiceName = "ApiService"
	serviceTemplate    = "service.ts"
)

// Renderer emits TypeScript from IR services.
type Renderer struct {
	engine template.TemplateRenderer
}

// Ensure the implementation satisfies the public interface.
var _ render.Renderer = (*Renderer)(nil)

// Option configures the renderer.
type Option func(*Renderer)

// WithEngine swaps the template engine, mainly for tests and template
// overrides.
func WithEngine(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// New constructs a Renderer backed by the embedded templates.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.engine == nil {
		engine, err := pongo2tpl.New(pongo2tpl.WithFS(templatesFS))
		if err != nil {
			return nil, fmt.Errorf("angular: construct template engine: %w", err)
		}
		r.engine = engine
	}
	return r, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return RendererName
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return "application/typescript"
}

// Render validates references, builds the view model, and executes the
// service template. A dangling reference fails the render; this is the first
// point in the pipeline that resolves names.
func (r *Renderer) Render(ctx context.Context, svc ir.Service, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ir.Validate(svc); err != nil {
		return nil, fmt.Errorf("angular: %w", err)
	}

	view := buildView(svc, options)
	out, err := r.engine.RenderTemplate(serviceTemplate, view)
	if err != nil {
		return nil, fmt.Errorf("angular: render service: %w", err)
	}
	return []byte(out), nil
}

// serviceView is the template context. JSON tags double as pongo2 context
// keys.
type serviceView struct {
	Header      string          `json:"header"`
	ServiceName string          `json:"serviceName"`
	Interfaces  []interfaceView `json:"interfaces"`
	Methods     []methodView    `json:"methods"`
	HasQuery    bool            `json:"hasQuery"`
}

type interfaceView struct {
	Name      string      `json:"name"`
	Alias     bool        `json:"alias"`
	AliasType string      `json:"aliasType"`
	Fields    []fieldView `json:"fields"`
}

type fieldView struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type methodView struct {
	Name         string `json:"name"`
	Args         string `json:"args"`
	ResponseType string `json:"responseType"`
	Call         string `json:"call"`
}

func buildView(svc ir.Service, opts render.RenderOptions) serviceView {
	view := serviceView{
		Header:      opts.Header,
		ServiceName: serviceName(opts),
	}

	for _, def := range svc.Definitions {
		view.Interfaces = append(view.Interfaces, definitionView(def, opts))
	}

	for _, op := range svc.Operations {
		method, queryIface := methodFromOperation(op, opts)
		if queryIface != nil {
			view.Interfaces = append(view.Interfaces, *queryIface)
			view.HasQuery = true
		}
		view.Methods = append(view.Methods, method)
	}

	return view
}

func serviceName(opts render.RenderOptions) string {
	name := naming.PascalCase(opts.ServiceName)
	if name == "" {
		return defaultServiceName
	}
	return name
}

// definitionView renders object definitions as interfaces and everything else
// as type aliases.
func definitionView(def ir.Definition, opts render.RenderOptions) interfaceView {
	name := naming.PascalCase(def.Name)
	if def.Schema.Kind != ir.KindObject {
		return interfaceView{
			Name:      name,
			Alias:     true,
			AliasType: valueType(def.Schema, opts),
		}
	}
	return interfaceView{
		Name:   name,
		Fields: fieldViews(def.Schema.Fields, opts),
	}
}

func fieldViews(fields []ir.Field, opts render.RenderOptions) []fieldView {
	out := make([]fieldView, 0, len(fields))
	for _, field := range fields {
		out = append(out, fieldView{
			Name:     opts.ApplyCase(field.Name),
			Type:     valueType(field.Type, opts),
			Required: field.Required,
		})
	}
	return out
}

// methodFromOperation assembles the signature and HTTP call for a single
// operation. When the operation declares query parameters a dedicated params
// interface is emitted alongside.
func methodFromOperation(op ir.Operation, opts render.RenderOptions) (methodView, *interfaceView) {
	name := naming.CamelCase(op.Name)

	var args []string
	for _, field := range op.PathParams.Fields {
		args = append(args, fmt.Sprintf("%s: %s", opts.ApplyCase(field.Name), valueType(field.Type, opts)))
	}

	var queryIface *interfaceView
	hasQuery := len(op.QueryParams.Fields) > 0
	if hasQuery {
		iface := interfaceView{
			Name:   naming.PascalCase(op.Name) + "Params",
			Fields: fieldViews(op.QueryParams.Fields, opts),
		}
		queryIface = &iface
		args = append(args, "query: "+iface.Name)
	}

	hasBody := op.Body != nil
	if hasBody {
		args = append(args, "payload: "+valueType(*op.Body, opts))
	}

	responseType := TypeExpr(op.Response, opts)

	return methodView{
		Name:         name,
		Args:         strings.Join(args, ", "),
		ResponseType: responseType,
		Call:         httpCall(op, responseType, hasQuery, hasBody, opts),
	}, queryIface
}

// httpCall builds the this.http.<verb>() expression. Angular's HttpClient
// requires a body argument for post/put/patch, so bodiless writes pass null.
func httpCall(op ir.Operation, responseType string, hasQuery, hasBody bool, opts render.RenderOptions) string {
	verb := strings.ToLower(op.Method)
	url := "`${this.baseUrl}" + interpolatePath(op.Path, op.PathParams, opts) + "`"

	args := []string{url}
	bodyInOptions := false
	switch verb {
	case "post", "put", "patch":
		if hasBody {
			args = append(args, "payload")
		} else {
			args = append(args, "null")
		}
	default:
		// HttpClient's get/delete/head/options variants accept a body only
		// through the options object.
		bodyInOptions = hasBody
	}

	var extras []string
	if bodyInOptions {
		extras = append(extras, "body: payload")
	}
	if hasQuery {
		extras = append(extras, "params: toHttpParams(query)")
	}
	if len(extras) > 0 {
		args = append(args, "{ "+strings.Join(extras, ", ")+" }")
	}

	return fmt.Sprintf("this.http.%s<%s>(%s)", verb, responseType, strings.Join(args, ", "))
}
