package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"internportal/internal/auth"
	"internportal/internal/domain"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgSignupFieldsMissing = "Name, email and password are required"
)

type authResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    domain.User `json:"user"`
	Token   string      `json:"token"`
}

// Login accepts any non-empty email and password.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginInput
	// A malformed body is handled like an empty one: the presence check fails.
	_ = json.NewDecoder(r.Body).Decode(&req)

	res, err := a.Auth.Login(r.Context(), req)
	a.respondAuth(w, r, "login", res, err)
}

// Signup accepts any non-empty name, email and password.
func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupInput
	_ = json.NewDecoder(r.Body).Decode(&req)

	res, err := a.Auth.Signup(r.Context(), req)
	a.respondAuth(w, r, "signup", res, err)
}

func (a *App) respondAuth(w http.ResponseWriter, r *http.Request, flow string, res auth.Result, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		a.Metrics.AuthAttempt(flow, "invalid")
		a.error(w, http.StatusBadRequest, msgCredentialsRequired)
	case errors.Is(err, auth.ErrMissingSignupFields):
		a.Metrics.AuthAttempt(flow, "invalid")
		a.error(w, http.StatusBadRequest, msgSignupFieldsMissing)
	case err != nil:
		a.Metrics.AuthAttempt(flow, "error")
		a.logger(r).Error().Err(err).Str("flow", flow).Msg("auth failed")
		a.error(w, http.StatusInternalServerError, "Authentication failed")
	default:
		a.Metrics.AuthAttempt(flow, "ok")
		a.json(w, http.StatusOK, authResponse{
			Success: true,
			Message: res.Message,
			User:    res.User,
			Token:   res.Token,
		})
	}
}
