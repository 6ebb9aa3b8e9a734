package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-svcgen/pkg/ir"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Render(ctx context.Context, svc ir.Service, options RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "angular"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("angular")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "angular" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if !registry.Has("angular") {
		t.Fatalf("Has must report registered renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&stubRenderer{name: "angular"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(&stubRenderer{name: "angular"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistryRejectsInvalidRenderers(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if err := registry.Register(&stubRenderer{}); err == nil {
		t.Fatalf("expected unnamed renderer to fail")
	}
}

func TestRegistryGetUnknownListsRegisteredNames(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("cobol")
	if err == nil || !strings.Contains(err.Error(), "none registered") {
		t.Fatalf("empty registry lookup: got %v", err)
	}

	registry.MustRegister(&stubRenderer{name: "angular"})
	registry.MustRegister(&stubRenderer{name: "react"})

	_, err = registry.Get("cobol")
	if err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
	for _, want := range []string{"cobol", "angular", "react"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("lookup error must mention %q, got %q", want, err.Error())
		}
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "react"})
	registry.MustRegister(&stubRenderer{name: "angular"})

	names := registry.List()
	if len(names) != 2 || names[0] != "angular" || names[1] != "react" {
		t.Fatalf("unexpected list order: %v", names)
	}
}

func TestRenderOptionsPropertyConvention(t *testing.T) {
	var opts RenderOptions
	if got := opts.ApplyCase("created_at"); got != "createdAt" {
		t.Fatalf("default convention must camel-case, got %q", got)
	}
}
