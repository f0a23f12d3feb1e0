// Package web is the server-rendered intern portal: login and signup
// forms, the dashboard and the navigation rules between them.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"internportal/internal/metrics"
	"internportal/internal/middleware"
	"internportal/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Portal holds the dependencies of the portal handlers.
type Portal struct {
	Gateway Gateway
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
	Cookies session.CookieOptions
	Now     func() time.Time

	templates *template.Template
}

func NewPortal(gw Gateway, logger zerolog.Logger, m *metrics.Metrics, cookies session.CookieOptions) *Portal {
	return &Portal{
		Gateway:   gw,
		Logger:    logger,
		Metrics:   m,
		Cookies:   cookies,
		Now:       time.Now,
		templates: template.Must(template.New("").ParseFS(templateFS, "templates/*.html")),
	}
}

// Options tune the portal router.
type Options struct {
	DefaultLocale language.Tag
	RegionLookup  middleware.RegionLookup
}

// NewRouter wires the portal routes.
func NewRouter(p *Portal, opts Options) http.Handler {
	if opts.DefaultLocale == language.Und {
		opts.DefaultLocale = language.AmericanEnglish
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(p.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Locale(opts.DefaultLocale, opts.RegionLookup))
	if p.Metrics != nil {
		r.Use(p.Metrics.Instrument)
		r.Method(http.MethodGet, "/metrics", p.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(p.withSession)

		r.Get("/", p.Index)
		r.Get("/login", p.LoginPage)
		r.Post("/login", p.Login)
		r.Post("/signup", p.Signup)
		r.Post("/logout", p.Logout)
		r.Get("/dashboard", p.Dashboard)
		r.Get("/dashboard/body", p.DashboardBody)
		r.NotFound(p.NotFound)
		r.MethodNotAllowed(p.NotFound)
	})
	return r
}

// withSession opens the cookie-backed session and puts it in the context.
func (p *Portal) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := session.Open(session.NewCookieStorage(w, r, p.Cookies))
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), store)))
	})
}

func (p *Portal) store(r *http.Request) *session.Store {
	if s, ok := session.FromContext(r.Context()); ok {
		return s
	}
	return session.Open(&session.MemoryStorage{})
}

func (p *Portal) logger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &p.Logger
}

func (p *Portal) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, name, data); err != nil {
		p.logger(r).Error().Err(err).Str("template", name).Msg("render template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// redirect sends the browser to target. htmx requests get HX-Redirect so
// the whole page navigates instead of swapping a fragment.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	status := http.StatusFound
	if r.Method == http.MethodPost {
		status = http.StatusSeeOther
	}
	http.Redirect(w, r, target, status)
}
