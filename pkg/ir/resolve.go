package ir

import (
	"fmt"
	"sort"
	"strings"
)

// Walk visits node and every nested node in depth-first order. It never
// follows references, so it terminates on recursive definitions.
func Walk(node TypeNode, visit func(TypeNode)) {
	visit(node)
	switch node.Kind {
	case KindArray:
		if node.Elem != nil {
			Walk(*node.Elem, visit)
		}
	case KindObject:
		for _, field := range node.Fields {
			Walk(field.Type, visit)
		}
	}
}

// References collects the distinct definition names referenced anywhere inside
// the node, sorted for stable reporting.
func References(node TypeNode) []string {
	seen := make(map[string]struct{})
	Walk(node, func(n TypeNode) {
		if n.Kind == KindReference && n.Ref != "" {
			seen[n.Ref] = struct{}{}
		}
	})
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks referential integrity for rendering: every reference node in
// the service must name a known definition. Extraction never performs this
// check; renderers call it before resolving names into target syntax.
//
// Cyclic references are legal. References carry names, not structure, so a
// definition graph with cycles still renders.
func Validate(svc Service) error {
	known := make(map[string]struct{}, len(svc.Definitions))
	for _, def := range svc.Definitions {
		known[def.Name] = struct{}{}
	}

	missing := make(map[string]struct{})
	collect := func(node TypeNode) {
		for _, name := range References(node) {
			if _, ok := known[name]; !ok {
				missing[name] = struct{}{}
			}
		}
	}

	for _, def := range svc.Definitions {
		collect(def.Schema)
	}
	for _, op := range svc.Operations {
		collect(op.Response)
		collect(op.PathParams)
		collect(op.QueryParams)
		if op.Body != nil {
			collect(*op.Body)
		}
	}

	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Errorf("ir: unresolved reference(s): %s", strings.Join(names, ", "))
}
