// Package preview serves rendered emails over HTTP for local development.
package preview

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/harbourspace/emails/pkg/email/templates"
	"github.com/harbourspace/emails/pkg/environment"
	"github.com/harbourspace/emails/pkg/httpserver"
	"github.com/harbourspace/emails/pkg/logger"
)

// Config holds preview server settings.
type Config struct {
	StaticDir    string `env:"ASSET_STATIC_DIR" envDefault:"emails/static"`
	StaticPrefix string `env:"ASSET_STATIC_PREFIX" envDefault:"/static"`
}

// Server renders catalog emails with a template kit.
type Server struct {
	kit          *templates.Kit
	staticDir    string
	staticPrefix string
	env          environment.Environment
	log          *slog.Logger
}

// Option configures Server.
type Option func(*Server)

// WithStaticPrefix sets the URL path the static directory is mounted at.
// It must match the prefix the development asset resolver links to.
func WithStaticPrefix(prefix string) Option {
	return func(s *Server) {
		if p := strings.Trim(prefix, "/"); p != "" {
			s.staticPrefix = "/" + p
		}
	}
}

// WithStaticDir sets the directory served under the static prefix.
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		if dir != "" {
			s.staticDir = dir
		}
	}
}

// WithEnvironment sets the environment attached to request contexts.
func WithEnvironment(env environment.Environment) Option {
	return func(s *Server) { s.env = env }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a preview server rendering with kit.
func New(kit *templates.Kit, opts ...Option) *Server {
	s := &Server{
		kit:          kit,
		staticDir:    "emails/static",
		staticPrefix: "/static",
		env:          environment.Development,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("preview"))
	return s
}

// Handler returns the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(environment.Middleware(s.env))
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", httpserver.HealthCheckHandler(s.log))
	r.Get("/preview/{name}", s.handlePreview)
	r.Handle(s.staticPrefix+"/*", http.StripPrefix(s.staticPrefix+"/", http.FileServer(http.Dir(s.staticDir))))

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.DebugContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			logger.Duration(time.Since(start)),
		)
	})
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Email previews</title></head>
<body style="font-family:sans-serif;max-width:640px;margin:40px auto;">
<h1>Email previews</h1>
<ul>
{{- range .}}
<li><a href="/preview/{{.Name}}">{{.Title}}</a> &middot; <a href="/preview/{{.Name}}?format=text">text</a></li>
{{- end}}
</ul>
<p>Query parameters: <code>name</code>, <code>event</code> (workshop, webinar, conference), <code>hours</code> (reminder).</p>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, catalog); err != nil {
		s.log.ErrorContext(r.Context(), "failed to render index", logger.Error(err))
	}
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, ok := Find(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	params := Params{
		RecipientName: q.Get("name"),
		Event:         q.Get("event"),
	}
	if h := q.Get("hours"); h != "" {
		hours, err := strconv.Atoi(h)
		if err != nil || hours < 0 {
			http.Error(w, "hours must be a non-negative integer", http.StatusBadRequest)
			return
		}
		params.HoursUntil = hours
	}

	component := entry.Build(s.kit, params)
	w.Header().Set("X-Email-Subject", entry.Subject(params))

	if q.Get("format") != "text" {
		templ.Handler(component, templ.WithErrorHandler(s.renderError(entry.Name))).ServeHTTP(w, r)
		return
	}

	html, err := templates.Render(r.Context(), component)
	if err != nil {
		s.renderError(entry.Name)(r, err).ServeHTTP(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(templates.PlainText(html)))
}

func (s *Server) renderError(name string) func(*http.Request, error) http.Handler {
	return func(r *http.Request, err error) http.Handler {
		s.log.ErrorContext(r.Context(), "failed to render preview", logger.Template(name), logger.Error(err))
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "failed to render "+name, http.StatusInternalServerError)
		})
	}
}
