package web

import (
	"errors"
	"net/http"

	"internportal/internal/client"
	"internportal/internal/domain"
	"internportal/internal/middleware"
	"internportal/internal/session"
)

const connectionErrorMessage = "Unable to connect to server. Please make sure the backend is running."

type authForm struct {
	Name  string
	Email string
}

type pageData struct {
	Title  string
	User   *domain.User
	Error  string
	Signup bool
	Form   authForm
}

func userOf(s *session.Store) *domain.User {
	if u, ok := s.User(); ok {
		return &u
	}
	return nil
}

func (p *Portal) Index(w http.ResponseWriter, r *http.Request) {
	if p.store(r).State() == session.Authenticated {
		redirect(w, r, "/dashboard")
		return
	}
	redirect(w, r, "/login")
}

func (p *Portal) LoginPage(w http.ResponseWriter, r *http.Request) {
	if p.store(r).State() == session.Authenticated {
		redirect(w, r, "/dashboard")
		return
	}
	signup := r.URL.Query().Get("mode") == "signup"
	p.render(w, r, http.StatusOK, "login.html", pageData{Title: titleFor(signup), Signup: signup})
}

func (p *Portal) Login(w http.ResponseWriter, r *http.Request) {
	form := authForm{Email: r.PostFormValue("email")}
	resp, err := p.Gateway.Login(r.Context(), form.Email, r.PostFormValue("password"))
	p.completeAuth(w, r, false, form, resp, err)
}

func (p *Portal) Signup(w http.ResponseWriter, r *http.Request) {
	form := authForm{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}
	resp, err := p.Gateway.Signup(r.Context(), form.Name, form.Email, r.PostFormValue("password"))
	p.completeAuth(w, r, true, form, resp, err)
}

// completeAuth stores the session after a successful login or signup, or
// re-renders the form with the reason it failed.
func (p *Portal) completeAuth(w http.ResponseWriter, r *http.Request, signup bool, form authForm, resp client.AuthResponse, err error) {
	flow, fallback := "login", "Login failed"
	if signup {
		flow, fallback = "signup", "Signup failed"
	}
	page := pageData{Title: titleFor(signup), Signup: signup, Form: form}

	if err != nil {
		var te *client.TransportError
		if errors.As(err, &te) {
			p.logger(r).Warn().Err(err).Str("flow", flow).Msg("auth request failed")
		} else {
			p.logger(r).Error().Err(err).Str("flow", flow).Msg("auth request failed")
		}
		p.Metrics.AuthAttempt(flow, "error")
		page.Error = connectionErrorMessage
		p.render(w, r, http.StatusOK, "login.html", page)
		return
	}

	if !resp.Success || resp.User == nil {
		p.Metrics.AuthAttempt(flow, "invalid")
		page.Error = resp.Message
		if page.Error == "" {
			page.Error = fallback
		}
		p.render(w, r, http.StatusOK, "login.html", page)
		return
	}

	if err := p.store(r).Login(resp.Token, *resp.User); err != nil {
		p.logger(r).Error().Err(err).Str("flow", flow).Msg("persist session")
		p.Metrics.AuthAttempt(flow, "error")
		page.Error = fallback
		p.render(w, r, http.StatusOK, "login.html", page)
		return
	}
	p.Metrics.AuthAttempt(flow, "ok")
	redirect(w, r, "/dashboard")
}

func (p *Portal) Logout(w http.ResponseWriter, r *http.Request) {
	p.store(r).Logout()
	redirect(w, r, "/login")
}

func (p *Portal) Dashboard(w http.ResponseWriter, r *http.Request) {
	store := p.store(r)
	if store.State() != session.Authenticated {
		redirect(w, r, "/login")
		return
	}
	p.render(w, r, http.StatusOK, "dashboard.html", pageData{Title: "Dashboard", User: userOf(store)})
}

// DashboardBody loads the profile and leaderboard and renders the dashboard
// content, or a static failure notice when the profile is unavailable.
func (p *Portal) DashboardBody(w http.ResponseWriter, r *http.Request) {
	if p.store(r).State() != session.Authenticated {
		redirect(w, r, "/login")
		return
	}

	data := loadDashboard(r.Context(), p.Gateway, p.logger(r))
	if data.Profile == nil {
		p.render(w, r, http.StatusOK, "dashboard_error.html", nil)
		return
	}
	f := NewFormatter(middleware.LocaleFromContext(r.Context()))
	p.render(w, r, http.StatusOK, "dashboard_body.html", buildDashboardView(data, f, p.Now()))
}

func (p *Portal) NotFound(w http.ResponseWriter, r *http.Request) {
	store := p.store(r)
	if store.State() != session.Authenticated {
		redirect(w, r, "/login")
		return
	}
	p.render(w, r, http.StatusNotFound, "not_found.html", pageData{Title: "Not found", User: userOf(store)})
}

func titleFor(signup bool) string {
	if signup {
		return "Sign up"
	}
	return "Login"
}
