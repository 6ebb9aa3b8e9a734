// Package svcgen turns Swagger 2.0 documents into typed service clients. The
// root package re-exports the pipeline pieces so most callers only need a
// single import.
package svcgen

import (
	"context"

	internalLoader "github.com/goliatone/go-svcgen/internal/swagger/loader"
	internalParser "github.com/goliatone/go-svcgen/internal/swagger/parser"
	"github.com/goliatone/go-svcgen/pkg/ir"
	"github.com/goliatone/go-svcgen/pkg/orchestrator"
	"github.com/goliatone/go-svcgen/pkg/render"
	pkgswagger "github.com/goliatone/go-svcgen/pkg/swagger"
)

// RenderOptions carries per-request rendering configuration, aliased here so
// callers can stay on the root import.
type RenderOptions = render.RenderOptions

// Request describes a generation request for the orchestrator.
type Request = orchestrator.Request

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgswagger.LoaderOption) pkgswagger.Loader {
	cfg := pkgswagger.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgswagger.ParserOption) pkgswagger.Parser {
	cfg := pkgswagger.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the Swagger source, extracts the service IR, and renders it
// with the named renderer (the angular renderer when rendererName is empty).
// It is the simplest entry point for callers that just want generated source.
func Generate(ctx context.Context, source pkgswagger.Source, rendererName string, renderOptions RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:        source,
		Renderer:      rendererName,
		RenderOptions: renderOptions,
	})
}

// GenerateFromDocument renders from a pre-loaded document, bypassing the
// loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc pkgswagger.Document, rendererName string, renderOptions RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document:      &doc,
		Renderer:      rendererName,
		RenderOptions: renderOptions,
	})
}

// Extract runs the pipeline up to the IR for callers that bring their own
// rendering.
func Extract(ctx context.Context, source pkgswagger.Source, options ...orchestrator.Option) (ir.Service, error) {
	gen := orchestrator.New(options...)
	return gen.Extract(ctx, orchestrator.Request{Source: source})
}
