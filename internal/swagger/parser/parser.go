package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	pkgswagger "github.com/goliatone/go-svcgen/pkg/swagger"
)

// Parser implements pkgswagger.Parser. It decodes JSON (and optionally YAML)
// payloads into the Swagger 2.0 object model without resolving any $ref
// fragment.
type Parser struct {
	options pkgswagger.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgswagger.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgswagger.ParserOptions) pkgswagger.Parser {
	return &Parser{options: options}
}

// Spec decodes a Document into the Swagger 2.0 object model. The declared
// version is checked before anything else so OpenAPI 3.x documents fail fast.
func (p *Parser) Spec(ctx context.Context, doc pkgswagger.Document) (*pkgswagger.Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("swagger parser: document payload is empty")
	}

	payload := raw
	if !looksLikeJSON(raw) {
		if !p.options.AllowYAML {
			return nil, errors.New("swagger parser: payload is not JSON and yaml support is disabled")
		}
		converted, err := yamlToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("swagger parser: decode yaml: %w", err)
		}
		payload = converted
	}

	if err := checkVersion(payload); err != nil {
		return nil, err
	}

	spec := &pkgswagger.Spec{}
	if err := json.Unmarshal(payload, spec); err != nil {
		return nil, fmt.Errorf("swagger parser: decode document: %w", err)
	}

	if p.options.StrictPaths && len(spec.Paths) == 0 {
		return nil, fmt.Errorf("%w: document does not declare any paths", pkgswagger.ErrMalformedDocument)
	}

	return spec, nil
}

// checkVersion gates on the declared version before the full decode runs.
func checkVersion(payload []byte) error {
	var header struct {
		Swagger string `json:"swagger"`
		OpenAPI string `json:"openapi"`
	}
	if err := json.Unmarshal(payload, &header); err != nil {
		return fmt.Errorf("swagger parser: decode document header: %w", err)
	}
	if header.Swagger == pkgswagger.Version {
		return nil
	}
	declared := header.Swagger
	if declared == "" {
		declared = header.OpenAPI
	}
	if declared == "" {
		return fmt.Errorf("%w: document declares no version", pkgswagger.ErrUnsupportedVersion)
	}
	return fmt.Errorf("%w: got %q, want %q", pkgswagger.ErrUnsupportedVersion, declared, pkgswagger.Version)
}

func looksLikeJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// yamlToJSON round-trips a YAML payload through JSON so the same struct tags
// drive both encodings.
func yamlToJSON(raw []byte) ([]byte, error) {
	var decoded any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeYAML(decoded))
}

// normalizeYAML rewrites yaml.v3 map keys into strings so json.Marshal accepts
// the value tree.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprintf("%v", key)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, normalizeYAML(item))
		}
		return out
	default:
		return v
	}
}
