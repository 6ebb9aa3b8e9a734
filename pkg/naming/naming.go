// Package naming derives identifier-safe names for rendered code: synthesized
// operation names for operations without an operationId, and the case helpers
// renderers apply to properties and methods.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Convention selects how rendered property names relate to the names declared
// in the document.
type Convention string

const (
	// ConventionCamel rewrites property names to lowerCamelCase.
	ConventionCamel Convention = "camel"
	// ConventionPreserve keeps property names exactly as declared.
	ConventionPreserve Convention = "preserve"
)

// Valid reports whether the convention is one of the supported values.
func (c Convention) Valid() bool {
	return c == ConventionCamel || c == ConventionPreserve
}

// Apply rewrites a declared name according to the convention.
func (c Convention) Apply(name string) string {
	if c == ConventionCamel {
		return CamelCase(name)
	}
	return name
}

// Identifier synthesizes a stable, identifier-safe operation name from an
// HTTP method and a path template. "GET /pets/{id}" becomes "getPetsById";
// templated segments contribute a "By<Param>" suffix so sibling routes stay
// distinct. The same (method, path) pair always yields the same name, and
// different methods on one path yield different names.
func Identifier(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(method)))

	for _, segment := range strings.Split(path, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			param := strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
			b.WriteString("By")
			b.WriteString(PascalCase(param))
			continue
		}
		b.WriteString(PascalCase(segment))
	}

	name := sanitizeIdentifier(b.String())
	if name == "" {
		return "operation"
	}
	return name
}

// CamelCase converts snake_case, kebab-case, spaced, or PascalCase input into
// lowerCamelCase.
func CamelCase(input string) string {
	words := splitWords(input)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for i, word := range words {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(titleWord(word))
	}
	return sanitizeIdentifier(b.String())
}

// PascalCase converts the input into UpperCamelCase.
func PascalCase(input string) string {
	words := splitWords(input)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	for _, word := range words {
		b.WriteString(titleWord(word))
	}
	return sanitizeIdentifier(b.String())
}

// splitWords breaks input on separators and camel boundaries. "order_items",
// "order-items", and "orderItems" all yield ["order", "items"].
func splitWords(input string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(input)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.' || r == '/':
			flush()
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// titleWord upper-cases only the first rune, so acronym tails such as "ID" or
// "URL" survive untouched.
func titleWord(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return ""
	}
	return string(unicode.ToUpper(runes[0])) + string(runes[1:])
}

// sanitizeIdentifier strips characters that cannot appear in a program
// identifier and guards against a leading digit.
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return ""
	}
	if first, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(first) {
		out = "_" + out
	}
	return out
}
