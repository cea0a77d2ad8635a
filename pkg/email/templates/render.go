package templates

import (
	"context"
	"html/template"
	"strings"

	"github.com/a-h/templ"
)

// Render takes a templ.Component and renders it to a string.
// It uses a strings.Builder to efficiently build the string from the component.
//
// Parameters:
//   - ctx: The context for rendering the component
//   - tpl: The templ component to render
//
// Returns:
//   - string: The rendered HTML as a string
//   - error: Any error encountered during rendering
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	err := tpl.Render(ctx, &sb)
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}

// renderHTML renders a child component for embedding into a parent view.
// A nil component renders as empty markup.
func renderHTML(ctx context.Context, c templ.Component) (template.HTML, error) {
	if c == nil {
		return "", nil
	}
	s, err := Render(ctx, c)
	if err != nil {
		return "", err
	}
	return template.HTML(s), nil
}

// slot pairs a child component with the field that receives its markup.
type slot struct {
	dst *template.HTML
	c   templ.Component
}

// fill renders every slot in order, stopping at the first error.
func fill(ctx context.Context, slots ...slot) error {
	for _, s := range slots {
		h, err := renderHTML(ctx, s.c)
		if err != nil {
			return err
		}
		*s.dst = h
	}
	return nil
}
