package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"logokit/internal/i18n"
)

func resolveLang(t *testing.T, target string, acceptLanguage string) string {
	t.Helper()

	var got string
	handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LanguageFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLanguage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "no preference defaults to english", target: "/api/v1/logos", want: i18n.English},
		{name: "lang query parameter", target: "/api/v1/logos?lang=ar", want: i18n.Arabic},
		{name: "regioned query parameter", target: "/api/v1/logos?lang=ar-SA", want: i18n.Arabic},
		{name: "accept-language header", target: "/api/v1/logos", header: "ar", want: i18n.Arabic},
		{name: "accept-language with weights", target: "/api/v1/logos", header: "ar-EG;q=0.9, en;q=0.8", want: i18n.Arabic},
		{name: "query wins over header", target: "/api/v1/logos?lang=en", header: "ar", want: i18n.English},
		{name: "unknown language falls back to english", target: "/api/v1/logos?lang=fr", want: i18n.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveLang(t, tt.target, tt.header); got != tt.want {
				t.Errorf("language = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLanguageFromCtx_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := LanguageFromCtx(req.Context()); got != i18n.English {
		t.Errorf("language without middleware = %q, want english", got)
	}
}
