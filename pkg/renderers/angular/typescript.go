package angular

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-svcgen/pkg/ir"
	"github.com/goliatone/go-svcgen/pkg/naming"
	"github.com/goliatone/go-svcgen/pkg/render"
)

// TypeExpr renders an IR type node as a TypeScript type expression. Reference
// nodes become bare definition names; they are never inlined, so recursive
// definitions render without special handling.
func TypeExpr(node ir.TypeNode, opts render.RenderOptions) string {
	switch node.Kind {
	case ir.KindReference:
		return naming.PascalCase(node.Ref)
	case ir.KindArray:
		elem := "any"
		if node.Elem != nil {
			elem = TypeExpr(*node.Elem, opts)
		}
		if strings.Contains(elem, " | ") || strings.HasPrefix(elem, "{") {
			return "(" + elem + ")[]"
		}
		return elem + "[]"
	case ir.KindObject:
		return objectExpr(node.Fields, opts)
	case ir.KindPrimitive:
		if len(node.Enum) > 0 {
			return unionExpr(node.Enum)
		}
		return primitiveExpr(node.Primitive)
	default:
		return "void"
	}
}

// valueType is TypeExpr adjusted for positions where "void" is not a legal
// annotation, such as arguments.
func valueType(node ir.TypeNode, opts render.RenderOptions) string {
	expr := TypeExpr(node, opts)
	if expr == "void" {
		return "unknown"
	}
	return expr
}

func objectExpr(fields []ir.Field, opts render.RenderOptions) string {
	if len(fields) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		optional := ""
		if !field.Required {
			optional = "?"
		}
		parts = append(parts, fmt.Sprintf("%s%s: %s", opts.ApplyCase(field.Name), optional, valueType(field.Type, opts)))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func primitiveExpr(kind ir.PrimitiveKind) string {
	switch kind {
	case ir.PrimitiveString:
		return "string"
	case ir.PrimitiveNumber:
		return "number"
	case ir.PrimitiveBoolean:
		return "boolean"
	default:
		return "any"
	}
}

// unionExpr renders a closed literal set as a TypeScript union type.
func unionExpr(literals []any) string {
	parts := make([]string, 0, len(literals))
	for _, literal := range literals {
		parts = append(parts, literalExpr(literal))
	}
	return strings.Join(parts, " | ")
}

func literalExpr(literal any) string {
	switch v := literal.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", "\\'") + "'"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// interpolatePath rewrites a path template into the body of a TypeScript
// template literal, substituting ${param} expressions that match the rendered
// argument names.
func interpolatePath(path string, params ir.TypeNode, opts render.RenderOptions) string {
	out := path
	for _, field := range params.Fields {
		out = strings.ReplaceAll(out, "{"+field.Name+"}", "${"+opts.ApplyCase(field.Name)+"}")
	}
	return out
}
