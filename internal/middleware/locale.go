package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// RegionLookup resolves the country of a client IP.
type RegionLookup func(ip string) (language.Region, error)

// Locale stores the viewer's language tag in the request context. The
// X-Locale header wins, then Accept-Language, then the fallback language
// combined with the region of the client IP when lookup is set.
func Locale(fallback language.Tag, lookup RegionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := detectLocale(r, fallback, lookup)
			ctx := context.WithValue(r.Context(), localeContextKey{}, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func detectLocale(r *http.Request, fallback language.Tag, lookup RegionLookup) language.Tag {
	if v := strings.TrimSpace(r.Header.Get("X-Locale")); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil {
		for _, tag := range tags {
			if tag != language.Und {
				return tag
			}
		}
	}
	if lookup != nil {
		if region, err := lookup(ClientIP(r)); err == nil {
			base, _ := fallback.Base()
			if tag, err := language.Compose(base, region); err == nil {
				return tag
			}
		}
	}
	return fallback
}

// LocaleFromContext returns the language tag stored by Locale, or US
// English when none is present.
func LocaleFromContext(ctx context.Context) language.Tag {
	if v, ok := ctx.Value(localeContextKey{}).(language.Tag); ok {
		return v
	}
	return language.AmericanEnglish
}
