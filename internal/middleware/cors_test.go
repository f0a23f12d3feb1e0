package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "wildcard any origin", allowed: []string{"*"}, origin: "http://localhost:5173", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "wildcard without origin", allowed: []string{"*"}, method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "listed origin echoed", allowed: []string{"https://a.example.com"}, origin: "https://a.example.com", method: http.MethodGet, wantOrigin: "https://a.example.com", wantStatus: http.StatusOK},
		{name: "unlisted origin ignored", allowed: []string{"https://a.example.com"}, origin: "https://evil.example.com", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "preflight short circuits", allowed: []string{"*"}, origin: "http://localhost:5173", method: http.MethodOptions, wantOrigin: "*", wantStatus: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := CORS(tc.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(tc.method, "/api/intern", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin = %q, want %q", got, tc.wantOrigin)
			}
		})
	}
}
