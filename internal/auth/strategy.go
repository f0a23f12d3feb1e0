// Package auth holds the login and signup strategies used by the API.
package auth

import (
	"context"
	"errors"

	"internportal/internal/domain"
)

var (
	ErrMissingCredentials  = errors.New("auth: email and password are required")
	ErrMissingSignupFields = errors.New("auth: name, email and password are required")
)

const signupUserID = 2

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Result is what a successful login or signup hands back to the caller.
type Result struct {
	Message string
	User    domain.User
	Token   string
}

// Strategy decides whether a login or signup succeeds. Swapping the
// implementation must not change the request or response shapes.
type Strategy interface {
	Login(ctx context.Context, in LoginInput) (Result, error)
	Signup(ctx context.Context, in SignupInput) (Result, error)
}

// AcceptAny accepts every request whose required fields are present. No
// credential is checked and nothing is stored.
type AcceptAny struct {
	profiles domain.ProfileRepository
	tokens   TokenIssuer
}

func NewAcceptAny(profiles domain.ProfileRepository, tokens TokenIssuer) *AcceptAny {
	return &AcceptAny{profiles: profiles, tokens: tokens}
}

// Login answers with the profile's identity whatever the credentials are.
func (s *AcceptAny) Login(ctx context.Context, in LoginInput) (Result, error) {
	if in.Email == "" || in.Password == "" {
		return Result{}, ErrMissingCredentials
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return Result{}, err
	}
	user := profile.Identity()
	token, err := s.tokens.Issue(ctx, user, PurposeLogin)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: "Login successful", User: user, Token: token}, nil
}

// Signup echoes the submitted name and email under a fixed user id.
func (s *AcceptAny) Signup(ctx context.Context, in SignupInput) (Result, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return Result{}, ErrMissingSignupFields
	}
	user := domain.User{ID: signupUserID, Name: in.Name, Email: in.Email}
	token, err := s.tokens.Issue(ctx, user, PurposeSignup)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: "Account created successfully", User: user, Token: token}, nil
}
