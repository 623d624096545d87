package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name           string
		xLocale        string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{
			name:    "explicit header wins",
			xLocale: "es-MX",
			want:    "es",
		},
		{
			name:           "explicit header beats accept-language",
			xLocale:        "es",
			acceptLanguage: "en-US,en;q=0.9",
			want:           "es",
		},
		{
			name:           "accept-language negotiation",
			acceptLanguage: "es-419,es;q=0.9,en;q=0.5",
			want:           "es",
		},
		{
			name:           "unsupported language falls back to default tag",
			acceptLanguage: "fr-FR",
			want:           "en",
		},
		{
			name:     "no headers uses configured fallback",
			fallback: "es",
			want:     "es",
		},
		{
			name: "no headers no fallback",
			want: "en",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.xLocale != "" {
				req.Header.Set("X-Locale", tc.xLocale)
			}
			if tc.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tc.acceptLanguage)
			}
			if got := detectLocale(req, tc.fallback); got != tc.want {
				t.Fatalf("detectLocale = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocaleMiddlewareSetsContextAndHeader(t *testing.T) {
	var seen string
	handler := Locale("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = LocaleFromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "es")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "es" {
		t.Fatalf("context locale = %q, want es", seen)
	}
	if got := rr.Header().Get("Content-Language"); got != "es" {
		t.Fatalf("Content-Language = %q, want es", got)
	}
}
