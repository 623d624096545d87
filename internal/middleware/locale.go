package middleware

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey carries the negotiated UI locale through the request context.
var LocaleKey = localeContextKey{}

// UI locales the registration client ships translations for. The first
// entry is the matcher's fallback.
var supportedLocales = []language.Tag{
	language.English,
	language.Spanish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Locale negotiates the request locale from an explicit X-Locale header or
// the Accept-Language header, stores it in the context, and echoes it in
// Content-Language.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			w.Header().Set("Content-Language", locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok {
		return v
	}
	return ""
}

func detectLocale(r *http.Request, fallback string) string {
	if v := r.Header.Get("X-Locale"); v != "" {
		if tag, err := language.Parse(v); err == nil {
			_, idx, conf := localeMatcher.Match(tag)
			if conf > language.No {
				return localeString(idx)
			}
		}
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			_, idx, conf := localeMatcher.Match(tags...)
			if conf > language.No {
				return localeString(idx)
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return localeString(0)
}

func localeString(idx int) string {
	base, _ := supportedLocales[idx].Base()
	return base.String()
}
