package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type originKey struct{}

// origin identifies the browser request that caused any upstream call.
type origin struct {
	requestID string
	clientIP  string
}

// RequestID tags the request with an id, reusing an incoming X-Request-ID,
// and remembers the client IP so the portal can pass both on to the API.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		o := origin{requestID: r.Header.Get(RequestIDHeader), clientIP: clientIP(r)}
		if o.requestID == "" {
			o.requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, o.requestID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), originKey{}, o)))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	o, _ := ctx.Value(originKey{}).(origin)
	return o.requestID
}

// ClientIPFromContext returns the client IP seen by RequestID.
func ClientIPFromContext(ctx context.Context) string {
	o, _ := ctx.Value(originKey{}).(origin)
	return o.clientIP
}
