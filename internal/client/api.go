package client

import (
	"context"
	"net/http"

	"internportal/internal/domain"
)

// Response is the envelope of the data endpoints.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is the body of login and signup.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	return Request[AuthResponse](ctx, c, "/login", Options{
		Method: http.MethodPost,
		Body:   map[string]string{"email": email, "password": password},
	})
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (AuthResponse, error) {
	return Request[AuthResponse](ctx, c, "/signup", Options{
		Method: http.MethodPost,
		Body:   map[string]string{"name": name, "email": email, "password": password},
	})
}

func (c *Client) GetInternData(ctx context.Context) (Response[domain.Profile], error) {
	return Request[Response[domain.Profile]](ctx, c, "/intern", Options{})
}

func (c *Client) GetLeaderboard(ctx context.Context) (Response[[]domain.LeaderboardEntry], error) {
	return Request[Response[[]domain.LeaderboardEntry]](ctx, c, "/leaderboard", Options{})
}
