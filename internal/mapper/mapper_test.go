package mapper

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-svcgen/pkg/ir"
)

func schemaOfType(name string) *openapi3.Schema {
	return &openapi3.Schema{Type: &openapi3.Types{name}}
}

func TestMapKeepsReferencesUnexpanded(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Ref: "#/definitions/Pet",
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: map[string]*openapi3.SchemaRef{
				"name": {Value: schemaOfType("string")},
			},
		},
	}

	node := Map(ref)
	if node.Kind != ir.KindReference {
		t.Fatalf("expected reference node, got %q", node.Kind)
	}
	if node.Ref != "Pet" {
		t.Fatalf("expected reference name Pet, got %q", node.Ref)
	}
	if len(node.Fields) != 0 {
		t.Fatalf("reference node must not carry inlined fields")
	}
}

func TestMapRecursiveDefinitionTerminates(t *testing.T) {
	// Category refers back to itself through its children. Mapping must not
	// chase the pointer.
	category := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: map[string]*openapi3.SchemaRef{
				"name": {Value: schemaOfType("string")},
				"children": {
					Value: &openapi3.Schema{
						Type:  &openapi3.Types{"array"},
						Items: &openapi3.SchemaRef{Ref: "#/definitions/Category"},
					},
				},
			},
		},
	}
	category.Value.Properties["children"].Value.Items.Value = category.Value

	node := Map(category)
	if node.Kind != ir.KindObject {
		t.Fatalf("expected object node, got %q", node.Kind)
	}
	children, ok := node.FieldNamed("children")
	if !ok {
		t.Fatalf("expected children field")
	}
	if children.Type.Kind != ir.KindArray {
		t.Fatalf("expected array children, got %q", children.Type.Kind)
	}
	elem := children.Type.Elem
	if elem == nil || elem.Kind != ir.KindReference || elem.Ref != "Category" {
		t.Fatalf("expected Category reference element, got %+v", elem)
	}
}

func TestMapObjectSortsFieldsAndMarksRequired(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:     &openapi3.Types{"object"},
			Required: []string{"id"},
			Properties: map[string]*openapi3.SchemaRef{
				"name": {Value: schemaOfType("string")},
				"id":   {Value: schemaOfType("integer")},
				"age":  {Value: schemaOfType("number")},
			},
		},
	}

	node := Map(ref)
	want := ir.Object([]ir.Field{
		{Name: "age", Type: ir.Primitive(ir.PrimitiveNumber)},
		{Name: "id", Type: ir.Primitive(ir.PrimitiveNumber), Required: true},
		{Name: "name", Type: ir.Primitive(ir.PrimitiveString)},
	})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Fatalf("object node mismatch (-want +got):\n%s", diff)
	}
}

func TestMapDistinguishesEmptyFromZeroFieldObject(t *testing.T) {
	empty := Map(&openapi3.SchemaRef{Value: &openapi3.Schema{}})
	if !empty.IsEmpty() {
		t.Fatalf("schema with no recognizable fields must map to the empty node")
	}

	object := Map(&openapi3.SchemaRef{Value: schemaOfType("object")})
	if object.Kind != ir.KindObject {
		t.Fatalf("explicit type object must map to an object node, got %q", object.Kind)
	}
	if object.IsEmpty() {
		t.Fatalf("zero-field object must not be the empty node")
	}
}

func TestMapArrayWithoutItemsYieldsEmptyElement(t *testing.T) {
	node := Map(&openapi3.SchemaRef{Value: schemaOfType("array")})
	if node.Kind != ir.KindArray {
		t.Fatalf("expected array node, got %q", node.Kind)
	}
	if node.Elem == nil || !node.Elem.IsEmpty() {
		t.Fatalf("expected empty element node, got %+v", node.Elem)
	}
}

func TestMapEnumProducesClosedLiteralSet(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"string"},
			Enum: []any{"available", "pending", "sold"},
		},
	}

	node := Map(ref)
	if node.Kind != ir.KindPrimitive || node.Primitive != ir.PrimitiveString {
		t.Fatalf("expected string primitive, got %+v", node)
	}
	want := []any{"available", "pending", "sold"}
	if diff := cmp.Diff(want, node.Enum); diff != "" {
		t.Fatalf("enum literals mismatch (-want +got):\n%s", diff)
	}
}

func TestMapEnumWithoutDeclaredTypeInfersFromLiteral(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{Enum: []any{float64(1), float64(2)}},
	}
	node := Map(ref)
	if node.Primitive != ir.PrimitiveNumber {
		t.Fatalf("expected number primitive from literal type, got %q", node.Primitive)
	}
}

func TestMapIntegerFoldsIntoNumber(t *testing.T) {
	node := Map(&openapi3.SchemaRef{Value: schemaOfType("integer")})
	if node.Primitive != ir.PrimitiveNumber {
		t.Fatalf("expected integer to fold into number, got %q", node.Primitive)
	}
}

func TestMergeAllOfCombinesMembersInOrder(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			AllOf: openapi3.SchemaRefs{
				{
					Value: &openapi3.Schema{
						Type:     &openapi3.Types{"object"},
						Required: []string{"id"},
						Properties: map[string]*openapi3.SchemaRef{
							"id": {Value: schemaOfType("integer")},
						},
					},
				},
				{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"object"},
						Properties: map[string]*openapi3.SchemaRef{
							"label": {Value: schemaOfType("string")},
						},
					},
				},
			},
		},
	}

	node := Map(ref)
	want := ir.Object([]ir.Field{
		{Name: "id", Type: ir.Primitive(ir.PrimitiveNumber), Required: true},
		{Name: "label", Type: ir.Primitive(ir.PrimitiveString)},
	})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Fatalf("allOf merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeAllOfLaterMemberWinsCollisionKeepsPosition(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			AllOf: openapi3.SchemaRefs{
				{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"object"},
						Properties: map[string]*openapi3.SchemaRef{
							"status": {Value: schemaOfType("integer")},
							"id":     {Value: schemaOfType("integer")},
						},
					},
				},
				{
					Value: &openapi3.Schema{
						Type:     &openapi3.Types{"object"},
						Required: []string{"status"},
						Properties: map[string]*openapi3.SchemaRef{
							"status": {Value: schemaOfType("string")},
						},
					},
				},
			},
		},
	}

	node := Map(ref)
	if len(node.Fields) != 2 {
		t.Fatalf("expected 2 merged fields, got %d", len(node.Fields))
	}
	// First member's sorted order fixes positions: id, status.
	if node.Fields[1].Name != "status" {
		t.Fatalf("status must keep its first-seen position, got %q at index 1", node.Fields[1].Name)
	}
	status := node.Fields[1]
	if status.Type.Primitive != ir.PrimitiveString || !status.Required {
		t.Fatalf("later member must win the collision, got %+v", status)
	}
}

func TestMergeAllOfIgnoresNonObjectMembers(t *testing.T) {
	ref := &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			AllOf: openapi3.SchemaRefs{
				{Ref: "#/definitions/Base"},
				{Value: schemaOfType("string")},
				{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"object"},
						Properties: map[string]*openapi3.SchemaRef{
							"own": {Value: schemaOfType("boolean")},
						},
					},
				},
			},
		},
	}

	node := Map(ref)
	want := ir.Object([]ir.Field{
		{Name: "own", Type: ir.Primitive(ir.PrimitiveBoolean)},
	})
	if diff := cmp.Diff(want, node); diff != "" {
		t.Fatalf("allOf merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMapNilInputsYieldEmpty(t *testing.T) {
	if node := Map(nil); !node.IsEmpty() {
		t.Fatalf("nil ref must map to empty, got %+v", node)
	}
	if node := Map(&openapi3.SchemaRef{}); !node.IsEmpty() {
		t.Fatalf("ref with nil schema must map to empty, got %+v", node)
	}
}

func TestRefName(t *testing.T) {
	cases := []struct {
		pointer string
		want    string
	}{
		{"#/definitions/Pet", "Pet"},
		{"#/definitions/Order_Item", "Order_Item"},
		{"Pet", "Pet"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := RefName(tc.pointer); got != tc.want {
			t.Fatalf("RefName(%q) = %q, want %q", tc.pointer, got, tc.want)
		}
	}
}
