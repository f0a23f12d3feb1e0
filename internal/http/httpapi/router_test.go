package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internportal/internal/adapter/repo"
	"internportal/internal/auth"
	"internportal/internal/http/handlers"
	"internportal/internal/metrics"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	profiles := repo.NewProfileRepo(repo.SeedProfile())
	app := handlers.NewApp(profiles, repo.NewLeaderboardRepo(repo.SeedLeaderboard()), auth.NewAcceptAny(profiles, auth.StaticTokens{}), zerolog.Nop(), metrics.New("api"))
	srv := httptest.NewServer(NewRouter(app, Options{AllowedOrigins: []string{"*"}, RateLimitPerMin: 1000}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/intern", "", http.StatusOK},
		{http.MethodGet, "/api/leaderboard", "", http.StatusOK},
		{http.MethodPost, "/api/login", `{"email":"a@b.com","password":"x"}`, http.StatusOK},
		{http.MethodPost, "/api/login", `{"email":"a@b.com"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/signup", `{"name":"A","email":"a@b.com","password":"x"}`, http.StatusOK},
		{http.MethodPost, "/api/signup", `{"name":"","email":"a@b.com","password":"x"}`, http.StatusBadRequest},
		{http.MethodGet, "/api/openapi.json", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
		{http.MethodPost, "/api/intern", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, strings.NewReader(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			resp, err := srv.Client().Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestCORSOpenToAllOrigins(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestLeaderboardOrderOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/leaderboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload struct {
		Data []struct {
			Name string `json:"name"`
			Rank int    `json:"rank"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	names := make([]string, 0, len(payload.Data))
	for i, e := range payload.Data {
		assert.Equal(t, i+1, e.Rank)
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Alex Johnson", "Sarah Wilson", "Mike Chen", "Emma Davis", "James Miller"}, names)
}

func newTestRouter(opts Options) http.Handler {
	profiles := repo.NewProfileRepo(repo.SeedProfile())
	app := handlers.NewApp(profiles, repo.NewLeaderboardRepo(repo.SeedLeaderboard()), auth.NewAcceptAny(profiles, auth.StaticTokens{}), zerolog.Nop(), nil)
	return NewRouter(app, opts)
}

func TestZeroRateLimitNeverRejects(t *testing.T) {
	h := newTestRouter(Options{AllowedOrigins: []string{"*"}})

	codes := map[int]int{}
	for i := 0; i < 130; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes[rr.Code]++
	}
	for i := 0; i < 130; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/intern", nil))
		codes[rr.Code]++
	}
	assert.Equal(t, map[int]int{http.StatusOK: 260}, codes)
}

func TestRateLimitedResponseIsJSON(t *testing.T) {
	h := newTestRouter(Options{AllowedOrigins: []string{"*"}, RateLimitPerMin: 2})

	var rr *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		rr = httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil))
	}

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, map[string]any{"success": false, "message": "Too many requests, please try again later"}, payload)
}
