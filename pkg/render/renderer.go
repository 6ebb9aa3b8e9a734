package render

import (
	"context"

	"github.com/goliatone/go-svcgen/pkg/ir"
)

// Renderer converts an IR service into a byte representation (TypeScript,
// documentation, etc.). Reference resolution is the renderer's job; a dangling
// reference surfaces here, never during extraction.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, svc ir.Service, options RenderOptions) ([]byte, error)
}
