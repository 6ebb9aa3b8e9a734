// Package mapper translates Swagger schema fragments into IR type nodes. It
// is a leaf: pure functions over schema nodes, no document- or operation-level
// knowledge.
package mapper

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-svcgen/pkg/ir"
)

// shape tags the recognized schema forms. Classification runs once per node,
// before any mapping logic.
type shape int

const (
	shapeEmpty shape = iota
	shapeRef
	shapeArray
	shapeObject
	shapeAllOf
	shapeEnum
	shapePrimitive
)

// classify inspects which fields are present on the node and returns its
// shape tag. Precedence mirrors the mapping table: $ref wins over everything,
// then array, object, allOf, enum, plain scalar; anything unrecognized is the
// empty shape.
func classify(ref *openapi3.SchemaRef) shape {
	if ref == nil {
		return shapeEmpty
	}
	if ref.Ref != "" {
		return shapeRef
	}
	schema := ref.Value
	if schema == nil {
		return shapeEmpty
	}

	switch primaryType(schema.Type) {
	case "array":
		return shapeArray
	case "object":
		return shapeObject
	}
	if len(schema.Properties) > 0 {
		return shapeObject
	}
	if len(schema.AllOf) > 0 {
		return shapeAllOf
	}
	if len(schema.Enum) > 0 {
		return shapeEnum
	}
	switch primaryType(schema.Type) {
	case "string", "integer", "number", "boolean":
		return shapePrimitive
	}
	return shapeEmpty
}

// Map converts a schema fragment into its IR type node. It is total: any
// fragment the decoder accepts yields a node, falling back to the empty shape.
//
// Reference fragments map to name-carrying reference nodes and are never
// expanded, so recursive and mutually-recursive definitions map in bounded
// depth.
func Map(ref *openapi3.SchemaRef) ir.TypeNode {
	switch classify(ref) {
	case shapeRef:
		return ir.Reference(RefName(ref.Ref))
	case shapeArray:
		return ir.Array(Map(ref.Value.Items))
	case shapeObject:
		return ir.Object(objectFields(ref.Value))
	case shapeAllOf:
		return mergeAllOf(ref.Value.AllOf)
	case shapeEnum:
		return ir.Enum(enumKind(ref.Value), ref.Value.Enum)
	case shapePrimitive:
		return ir.Primitive(primitiveKind(primaryType(ref.Value.Type)))
	default:
		return ir.Empty()
	}
}

// objectFields maps every property, marking each required when its name is in
// the schema's own required list. Property names are sorted; Go maps carry no
// document order and downstream rendering needs a deterministic sequence.
func objectFields(schema *openapi3.Schema) []ir.Field {
	if len(schema.Properties) == 0 {
		return nil
	}

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]ir.Field, 0, len(names))
	for _, name := range names {
		_, required := requiredSet[name]
		fields = append(fields, ir.Field{
			Name:     name,
			Type:     Map(schema.Properties[name]),
			Required: required,
		})
	}
	return fields
}

// mergeAllOf folds the members into a single object node. Members that do not
// map to an object contribute nothing; unexpanded $ref members fall in that
// bucket, since their properties are unknowable without resolution. On a
// field-name collision the later member wins while the field keeps its first
// position.
func mergeAllOf(members openapi3.SchemaRefs) ir.TypeNode {
	var fields []ir.Field
	index := make(map[string]int)

	for _, member := range members {
		node := Map(member)
		if node.Kind != ir.KindObject {
			continue
		}
		for _, field := range node.Fields {
			if at, seen := index[field.Name]; seen {
				fields[at] = field
				continue
			}
			index[field.Name] = len(fields)
			fields = append(fields, field)
		}
	}

	return ir.Object(fields)
}

// enumKind picks the scalar kind for an enum node from the declared type,
// falling back to the first literal's dynamic type.
func enumKind(schema *openapi3.Schema) ir.PrimitiveKind {
	if declared := primaryType(schema.Type); declared != "" {
		return primitiveKind(declared)
	}
	if len(schema.Enum) == 0 {
		return ir.PrimitiveAny
	}
	switch schema.Enum[0].(type) {
	case string:
		return ir.PrimitiveString
	case bool:
		return ir.PrimitiveBoolean
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return ir.PrimitiveNumber
	default:
		return ir.PrimitiveAny
	}
}

func primitiveKind(schemaType string) ir.PrimitiveKind {
	switch schemaType {
	case "string":
		return ir.PrimitiveString
	case "integer", "number":
		return ir.PrimitiveNumber
	case "boolean":
		return ir.PrimitiveBoolean
	default:
		return ir.PrimitiveAny
	}
}

func primaryType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// RefName extracts the definition name from a JSON pointer such as
// "#/definitions/Pet".
func RefName(pointer string) string {
	if pointer == "" {
		return ""
	}
	if idx := strings.LastIndex(pointer, "/"); idx >= 0 {
		return pointer[idx+1:]
	}
	return pointer
}
