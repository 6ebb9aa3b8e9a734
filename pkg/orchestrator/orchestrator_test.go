package orchestrator

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-svcgen/pkg/render"
	pkgswagger "github.com/goliatone/go-svcgen/pkg/swagger"
)

const petstoreDocument = `{
  "swagger": "2.0",
  "info": { "title": "Petstore", "version": "1.0.0" },
  "paths": {
    "/pets": {
      "get": {
        "operationId": "listPets",
        "parameters": [
          { "name": "limit", "in": "query", "type": "integer" }
        ],
        "responses": {
          "200": {
            "description": "pets",
            "schema": { "type": "array", "items": { "$ref": "#/definitions/Pet" } }
          }
        }
      },
      "post": {
        "operationId": "createPet",
        "parameters": [
          { "name": "pet", "in": "body", "required": true, "schema": { "$ref": "#/definitions/Pet" } }
        ],
        "responses": {
          "201": { "description": "created", "schema": { "$ref": "#/definitions/Pet" } }
        }
      }
    }
  },
  "definitions": {
    "Pet": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "id": { "type": "integer" },
        "name": { "type": "string" }
      }
    }
  }
}`

func inlineDocument(t *testing.T) *pkgswagger.Document {
	t.Helper()
	doc := pkgswagger.MustNewDocument(
		pkgswagger.SourceFromFile("petstore.json"),
		[]byte(petstoreDocument),
	)
	return &doc
}

func TestExtractFromDocument(t *testing.T) {
	gen := New()
	svc, err := gen.Extract(context.Background(), Request{Document: inlineDocument(t)})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if _, ok := svc.Definition("Pet"); !ok {
		t.Fatalf("expected Pet definition, got %+v", svc.Definitions)
	}
	if _, ok := svc.Operation("listPets"); !ok {
		t.Fatalf("expected listPets operation")
	}
	if _, ok := svc.Operation("createPet"); !ok {
		t.Fatalf("expected createPet operation")
	}
}

func TestGenerateEndToEnd(t *testing.T) {
	gen := New()
	out, err := gen.Generate(context.Background(), Request{
		Document: inlineDocument(t),
		RenderOptions: render.RenderOptions{
			ServiceName: "PetService",
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	ts := string(out)
	for _, want := range []string{
		"export interface Pet {",
		"export class PetService {",
		"listPets(query: ListPetsParams): Observable<Pet[]>",
		"createPet(payload: Pet): Observable<Pet>",
	} {
		if !strings.Contains(ts, want) {
			t.Fatalf("output missing %q:\n%s", want, ts)
		}
	}
}

func TestGenerateUnknownRenderer(t *testing.T) {
	gen := New()
	_, err := gen.Generate(context.Background(), Request{
		Document: inlineDocument(t),
		Renderer: "cobol",
	})
	if err == nil || !strings.Contains(err.Error(), "cobol") {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerateRequiresSourceOrDocument(t *testing.T) {
	gen := New()
	if _, err := gen.Generate(context.Background(), Request{}); err == nil {
		t.Fatalf("expected error without source or document")
	}
}

func TestWarnHandlerReceivesAnomalies(t *testing.T) {
	deprecated := strings.Replace(petstoreDocument,
		`"operationId": "listPets",`,
		`"operationId": "listPets", "deprecated": true,`, 1)
	doc := pkgswagger.MustNewDocument(pkgswagger.SourceFromFile("petstore.json"), []byte(deprecated))

	var warnings []string
	gen := New(WithWarnHandler(func(msg string) {
		warnings = append(warnings, msg)
	}))

	svc, err := gen.Extract(context.Background(), Request{Document: &doc})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if _, ok := svc.Operation("listPets"); ok {
		t.Fatalf("deprecated operation must be skipped")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestRenderersListsDefault(t *testing.T) {
	gen := New()
	names := gen.Renderers()
	if len(names) != 1 || names[0] != "angular" {
		t.Fatalf("expected the angular renderer to be registered, got %v", names)
	}
}
