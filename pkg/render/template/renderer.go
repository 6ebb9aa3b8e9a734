package template

// TemplateRenderer is the seam renderers rely on for producing source text,
// keeping the concrete template engine swappable.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
	RenderString(templateContent string, data any) (string, error)
}
