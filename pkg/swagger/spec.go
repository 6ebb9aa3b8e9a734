package swagger

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Version is the only document version the toolchain accepts.
const Version = "2.0"

// Spec models the subset of a parsed Swagger 2.0 document the extractor
// consumes. Schema fragments stay as openapi3.SchemaRef values so $ref
// fragments remain unresolved names rather than expanded structures.
type Spec struct {
	Swagger     string                         `json:"swagger"`
	Info        Info                           `json:"info,omitempty"`
	Host        string                         `json:"host,omitempty"`
	BasePath    string                         `json:"basePath,omitempty"`
	Paths       map[string]*PathItem           `json:"paths"`
	Definitions map[string]*openapi3.SchemaRef `json:"definitions,omitempty"`
}

// Info carries document metadata; renderers may surface the title in headers.
type Info struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// PathItem holds one operation slot per HTTP method plus the shared parameter
// list, which this toolchain discards (path-level parameter inheritance is
// unsupported).
type PathItem struct {
	Get        *Operation   `json:"get,omitempty"`
	Put        *Operation   `json:"put,omitempty"`
	Post       *Operation   `json:"post,omitempty"`
	Delete     *Operation   `json:"delete,omitempty"`
	Patch      *Operation   `json:"patch,omitempty"`
	Head       *Operation   `json:"head,omitempty"`
	Options    *Operation   `json:"options,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

// MethodOperation pairs an HTTP method with its operation.
type MethodOperation struct {
	Method    string
	Operation *Operation
}

// methodOrder fixes the iteration order over a path item so extraction output
// is stable for a given document.
var methodOrder = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// Operations returns the declared operations in a fixed method order.
func (p *PathItem) Operations() []MethodOperation {
	if p == nil {
		return nil
	}
	slots := map[string]*Operation{
		"GET":     p.Get,
		"PUT":     p.Put,
		"POST":    p.Post,
		"DELETE":  p.Delete,
		"PATCH":   p.Patch,
		"HEAD":    p.Head,
		"OPTIONS": p.Options,
	}
	var out []MethodOperation
	for _, method := range methodOrder {
		if op := slots[method]; op != nil {
			out = append(out, MethodOperation{Method: method, Operation: op})
		}
	}
	return out
}

// Operation models one HTTP method bound to one path.
type Operation struct {
	OperationID string               `json:"operationId,omitempty"`
	Summary     string               `json:"summary,omitempty"`
	Description string               `json:"description,omitempty"`
	Deprecated  bool                 `json:"deprecated,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty"`
	Responses   map[string]*Response `json:"responses,omitempty"`
}

// Parameter models a Swagger 2.0 operation parameter. Non-body parameters
// carry their schema as flat fields (Type, Format, Items, Enum); body
// parameters carry a full Schema.
type Parameter struct {
	Name             string              `json:"name,omitempty"`
	In               string              `json:"in,omitempty"`
	Description      string              `json:"description,omitempty"`
	Required         bool                `json:"required,omitempty"`
	Type             string              `json:"type,omitempty"`
	Format           string              `json:"format,omitempty"`
	CollectionFormat string              `json:"collectionFormat,omitempty"`
	Enum             []any               `json:"enum,omitempty"`
	Items            *openapi3.SchemaRef `json:"items,omitempty"`
	Schema           *openapi3.SchemaRef `json:"schema,omitempty"`
}

// Response models a single response entry; only the schema matters for IR
// extraction.
type Response struct {
	Description string              `json:"description,omitempty"`
	Schema      *openapi3.SchemaRef `json:"schema,omitempty"`
}

// DefinitionNames returns the definition names in sorted order. Go maps do not
// preserve document key order, so sorting is what keeps repeated extractions
// structurally identical.
func (s *Spec) DefinitionNames() []string {
	if s == nil || len(s.Definitions) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Definitions))
	for name := range s.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PathNames returns the path templates in sorted order.
func (s *Spec) PathNames() []string {
	if s == nil || len(s.Paths) == 0 {
		return nil
	}
	paths := make([]string, 0, len(s.Paths))
	for path := range s.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
