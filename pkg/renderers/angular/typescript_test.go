package angular

import (
	"testing"

	"github.com/goliatone/go-svcgen/pkg/ir"
	"github.com/goliatone/go-svcgen/pkg/render"
)

func TestTypeExpr(t *testing.T) {
	opts := render.RenderOptions{}
	cases := []struct {
		name string
		node ir.TypeNode
		want string
	}{
		{"empty", ir.Empty(), "void"},
		{"string", ir.Primitive(ir.PrimitiveString), "string"},
		{"number", ir.Primitive(ir.PrimitiveNumber), "number"},
		{"boolean", ir.Primitive(ir.PrimitiveBoolean), "boolean"},
		{"any", ir.Primitive(ir.PrimitiveAny), "any"},
		{"reference", ir.Reference("pet_profile"), "PetProfile"},
		{"array", ir.Array(ir.Primitive(ir.PrimitiveString)), "string[]"},
		{"nested array", ir.Array(ir.Array(ir.Primitive(ir.PrimitiveNumber))), "number[][]"},
		{"array of refs", ir.Array(ir.Reference("Pet")), "Pet[]"},
		{
			"array of unions",
			ir.Array(ir.Enum(ir.PrimitiveString, []any{"a", "b"})),
			"('a' | 'b')[]",
		},
		{
			"array of objects",
			ir.Array(ir.Object([]ir.Field{{Name: "id", Type: ir.Primitive(ir.PrimitiveNumber), Required: true}})),
			"({ id: number })[]",
		},
		{"zero-field object", ir.Object(nil), "{}"},
		{
			"inline object",
			ir.Object([]ir.Field{
				{Name: "id", Type: ir.Primitive(ir.PrimitiveNumber), Required: true},
				{Name: "note", Type: ir.Primitive(ir.PrimitiveString)},
			}),
			"{ id: number; note?: string }",
		},
		{
			"string enum",
			ir.Enum(ir.PrimitiveString, []any{"on", "off"}),
			"'on' | 'off'",
		},
		{
			"numeric enum",
			ir.Enum(ir.PrimitiveNumber, []any{float64(1), float64(2)}),
			"1 | 2",
		},
	}
	for _, tc := range cases {
		if got := TypeExpr(tc.node, opts); got != tc.want {
			t.Fatalf("%s: TypeExpr = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestValueTypeAvoidsVoid(t *testing.T) {
	if got := valueType(ir.Empty(), render.RenderOptions{}); got != "unknown" {
		t.Fatalf("empty node in value position must be unknown, got %q", got)
	}
}

func TestInterpolatePath(t *testing.T) {
	params := ir.Object([]ir.Field{
		{Name: "pet_id", Type: ir.Primitive(ir.PrimitiveNumber), Required: true},
	})
	got := interpolatePath("/pets/{pet_id}/photos", params, render.RenderOptions{})
	if got != "/pets/${petId}/photos" {
		t.Fatalf("unexpected interpolation %q", got)
	}
}
