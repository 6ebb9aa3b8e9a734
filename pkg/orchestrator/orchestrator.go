// Package orchestrator coordinates the pipeline from raw document to rendered
// output: load, parse, extract, render. It applies sensible defaults (built-in
// loader and parser, the angular renderer) while remaining open to dependency
// injection.
package orchestrator

import (
	"context"
	"errors"
	"fmt"

	internalExtractor "github.com/goliatone/go-svcgen/internal/extractor"
	internalLoader "github.com/goliatone/go-svcgen/internal/swagger/loader"
	internalParser "github.com/goliatone/go-svcgen/internal/swagger/parser"
	"github.com/goliatone/go-svcgen/pkg/ir"
	"github.com/goliatone/go-svcgen/pkg/render"
	"github.com/goliatone/go-svcgen/pkg/renderers/angular"
	pkgswagger "github.com/goliatone/go-svcgen/pkg/swagger"
)

const defaultRendererName = angular.RendererName

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader pkgswagger.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom document parser.
func WithParser(parser pkgswagger.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithWarnHandler receives extraction anomaly reports (deprecated skips,
// duplicate body parameters, unclassified parameters).
func WithWarnHandler(warn func(string)) Option {
	return func(o *Orchestrator) {
		o.warn = warn
	}
}

// WithIdentifier overrides operation-name synthesis for operations without an
// operationId.
func WithIdentifier(fn func(method, path string) string) Option {
	return func(o *Orchestrator) {
		o.identifier = fn
	}
}

// Orchestrator drives the full pipeline from document to rendered source.
type Orchestrator struct {
	loader          pkgswagger.Loader
	parser          pkgswagger.Parser
	extractor       *internalExtractor.Extractor
	registry        *render.Registry
	defaultRenderer string
	warn            func(string)
	identifier      func(method, path string) string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgswagger.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgswagger.NewParserOptions())
	}
	if o.extractor == nil {
		var opts []internalExtractor.Option
		if o.warn != nil {
			opts = append(opts, internalExtractor.WithWarnHandler(o.warn))
		}
		if o.identifier != nil {
			opts = append(opts, internalExtractor.WithIdentifier(o.identifier))
		}
		o.extractor = internalExtractor.New(opts...)
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
	}
	if !o.registry.Has(defaultRendererName) {
		renderer, err := angular.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise angular renderer: %w", err)
			return
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: register angular renderer: %w", err)
		}
	}
}

// Request describes the inputs required to generate from a document.
type Request struct {
	// Source identifies where the document lives. Optional when Document is
	// supplied.
	Source pkgswagger.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *pkgswagger.Document

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request rendering configuration (service
	// name, property case, header banner).
	RenderOptions render.RenderOptions
}

// Extract runs the pipeline up to the IR: load, parse, extract. Useful for
// callers that render with their own tooling.
func (o *Orchestrator) Extract(ctx context.Context, req Request) (ir.Service, error) {
	if ctx == nil {
		return ir.Service{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return ir.Service{}, err
	}
	if err := o.initialiseErr; err != nil {
		return ir.Service{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return ir.Service{}, err
	}

	spec, err := o.parser.Spec(ctx, doc)
	if err != nil {
		return ir.Service{}, fmt.Errorf("orchestrator: parse document: %w", err)
	}

	svc, err := o.extractor.Extract(spec)
	if err != nil {
		return ir.Service{}, fmt.Errorf("orchestrator: extract service: %w", err)
	}
	return svc, nil
}

// Generate executes the full sequence and returns the rendered bytes
// (TypeScript for the default angular renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	svc, err := o.Extract(ctx, req)
	if err != nil {
		return nil, err
	}

	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = o.defaultRenderer
	}
	renderer, err := o.registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	out, err := renderer.Render(ctx, svc, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render: %w", err)
	}
	return out, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgswagger.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgswagger.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgswagger.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}
