package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestDetectLocale(t *testing.T) {
	germany := language.MustParseRegion("DE")
	lookupDE := func(string) (language.Region, error) { return germany, nil }
	lookupFail := func(string) (language.Region, error) { return language.Region{}, errors.New("no db") }

	tests := []struct {
		name   string
		setup  func(r *http.Request)
		lookup RegionLookup
		want   string
	}{
		{
			name: "x-locale overrides",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "fr-FR")
				r.Header.Set("Accept-Language", "de-DE")
			},
			want: "fr-FR",
		},
		{
			name: "accept-language highest quality wins",
			setup: func(r *http.Request) {
				r.Header.Set("Accept-Language", "en;q=0.5,id-ID;q=0.9")
			},
			want: "id-ID",
		},
		{
			name: "invalid x-locale falls through",
			setup: func(r *http.Request) {
				r.Header.Set("X-Locale", "!!")
				r.Header.Set("Accept-Language", "en-GB")
			},
			want: "en-GB",
		},
		{
			name:   "region lookup composes with fallback language",
			lookup: lookupDE,
			want:   "en-DE",
		},
		{
			name:   "failed lookup uses fallback",
			lookup: lookupFail,
			want:   "en-US",
		},
		{
			name: "default to fallback",
			want: "en-US",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.setup != nil {
				tc.setup(req)
			}
			got := detectLocale(req, language.AmericanEnglish, tc.lookup)
			if got.String() != tc.want {
				t.Fatalf("detectLocale() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleMiddlewareStoresTag(t *testing.T) {
	var got language.Tag
	h := Locale(language.AmericanEnglish, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-CH")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got.String() != "de-CH" {
		t.Fatalf("LocaleFromContext() = %q, want %q", got, "de-CH")
	}
}
