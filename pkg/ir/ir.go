package ir

// TypeKind discriminates the TypeNode union. Exactly one variant's fields are
// populated for a given kind.
type TypeKind string

const (
	KindEmpty     TypeKind = "empty"
	KindPrimitive TypeKind = "primitive"
	KindArray     TypeKind = "array"
	KindObject    TypeKind = "object"
	KindReference TypeKind = "reference"
)

// PrimitiveKind enumerates the scalar shapes the IR distinguishes. Swagger's
// integer and number both fold into PrimitiveNumber; target languages that
// separate them can refine during rendering.
type PrimitiveKind string

const (
	PrimitiveString  PrimitiveKind = "string"
	PrimitiveNumber  PrimitiveKind = "number"
	PrimitiveBoolean PrimitiveKind = "boolean"
	PrimitiveAny     PrimitiveKind = "any"
)

// TypeNode is the language-agnostic representation of a data shape. It is a
// struct-encoded tagged union: Kind selects the variant and the matching
// field(s) carry the payload.
//
// A reference node carries only the definition name. Resolution happens in the
// rendering layer, never while mapping, which is what keeps self-referential
// and mutually-referential definitions finite.
type TypeNode struct {
	Kind TypeKind `json:"kind"`

	// Primitive identifies the scalar shape when Kind is KindPrimitive.
	Primitive PrimitiveKind `json:"primitive,omitempty"`

	// Enum restricts a primitive to a closed literal set when non-empty.
	Enum []any `json:"enum,omitempty"`

	// Elem is the element type when Kind is KindArray.
	Elem *TypeNode `json:"elem,omitempty"`

	// Fields is the ordered property list when Kind is KindObject. An object
	// with zero fields is a valid, degenerate shape and is distinct from the
	// empty node.
	Fields []Field `json:"fields,omitempty"`

	// Ref names a Definition when Kind is KindReference.
	Ref string `json:"ref,omitempty"`
}

// Field is a single named property of an object node.
type Field struct {
	Name     string   `json:"name"`
	Type     TypeNode `json:"type"`
	Required bool     `json:"required"`
}

// Empty returns the canonical "no shape" node.
func Empty() TypeNode {
	return TypeNode{Kind: KindEmpty}
}

// Primitive returns a scalar node of the given kind.
func Primitive(kind PrimitiveKind) TypeNode {
	return TypeNode{Kind: KindPrimitive, Primitive: kind}
}

// Enum returns a scalar node restricted to the supplied literal set.
func Enum(kind PrimitiveKind, literals []any) TypeNode {
	node := TypeNode{Kind: KindPrimitive, Primitive: kind}
	if len(literals) > 0 {
		node.Enum = append([]any(nil), literals...)
	}
	return node
}

// Array returns an array node wrapping the element type.
func Array(elem TypeNode) TypeNode {
	return TypeNode{Kind: KindArray, Elem: &elem}
}

// Object returns an object node with the supplied fields. The slice is used
// as-is; callers own its ordering.
func Object(fields []Field) TypeNode {
	return TypeNode{Kind: KindObject, Fields: fields}
}

// Reference returns a node naming a Definition without inlining it.
func Reference(name string) TypeNode {
	return TypeNode{Kind: KindReference, Ref: name}
}

// IsEmpty reports whether the node is the canonical empty shape. A zero-field
// object is not empty.
func (n TypeNode) IsEmpty() bool {
	return n.Kind == KindEmpty || n.Kind == ""
}

// FieldNamed looks up a field by name on an object node.
func (n TypeNode) FieldNamed(name string) (Field, bool) {
	for _, field := range n.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// Definition pairs a name from the document's definitions map with its mapped
// schema.
type Definition struct {
	Name   string   `json:"name"`
	Schema TypeNode `json:"schema"`
}

// Operation describes one HTTP method bound to one path. PathParams and
// QueryParams are always object nodes, possibly with zero fields; Body is nil
// when the operation declares no body parameter.
type Operation struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Method      string    `json:"method"`
	Response    TypeNode  `json:"response"`
	PathParams  TypeNode  `json:"pathParams"`
	QueryParams TypeNode  `json:"queryParams"`
	Body        *TypeNode `json:"body,omitempty"`
}

// Service is the extraction output handed to renderers: the ordered definition
// and operation sequences.
type Service struct {
	Definitions []Definition `json:"definitions"`
	Operations  []Operation  `json:"operations"`
}

// Definition looks up a definition by name.
func (s Service) Definition(name string) (Definition, bool) {
	for _, def := range s.Definitions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Operation looks up an operation by name.
func (s Service) Operation(name string) (Operation, bool) {
	for _, op := range s.Operations {
		if op.Name == name {
			return op, true
		}
	}
	return Operation{}, false
}
