package templates

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/harbourspace/emails/pkg/assets"
)

//go:embed views/*.html
var viewsFS embed.FS

var views = template.Must(template.New("views").Funcs(tokenFuncs()).ParseFS(viewsFS, "views/*.html"))

// Kit builds email components whose image URLs come from an asset resolver.
// A Kit is safe for concurrent use.
type Kit struct {
	assets assets.Resolver
	md     goldmark.Markdown
	now    func() time.Time
}

// Option configures a Kit.
type Option func(*Kit)

// WithClock overrides the time source (used for the copyright year).
func WithClock(now func() time.Time) Option {
	return func(k *Kit) {
		if now != nil {
			k.now = now
		}
	}
}

// WithMarkdown replaces the Markdown renderer used for event descriptions.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(k *Kit) {
		if md != nil {
			k.md = md
		}
	}
}

// NewKit creates a component kit. Raw HTML inside Markdown is not rendered.
func NewKit(resolver assets.Resolver, opts ...Option) *Kit {
	k := &Kit{
		assets: resolver,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM, // Tables, strikethrough, autolinks, task lists
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
				gmhtml.WithXHTML(),
			),
		),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Assets returns the resolver the kit was built with.
func (k *Kit) Assets() assets.Resolver { return k.assets }

// Markdown renders Markdown source into HTML.
func (k *Kit) Markdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := k.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// view returns a component executing the named view with the data produced
// by build at render time.
func view(name string, build func(ctx context.Context) (any, error)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		data, err := build(ctx)
		if err != nil {
			return err
		}
		return views.ExecuteTemplate(w, name, data)
	})
}

// static returns a build function for data known up front.
func static(data any) func(context.Context) (any, error) {
	return func(context.Context) (any, error) { return data, nil }
}
