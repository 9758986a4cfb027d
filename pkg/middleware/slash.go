package middleware

import (
	"net/http"
	"strings"
)

// TrimSlash routes "/api/clientes/" the same as "/api/clientes" by
// stripping trailing slashes before dispatch. The request is rewritten in
// place rather than redirected, so POST and PATCH bodies survive. The root
// path "/" is left alone.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if path, ok := trimmed(r.URL.Path); ok {
				r2 := r.Clone(r.Context())
				r2.URL.Path = path
				r2.URL.RawPath = ""
				r2.RequestURI = r2.URL.RequestURI()
				r = r2
			}
			next.ServeHTTP(w, r)
		})
	}
}

func trimmed(path string) (string, bool) {
	if len(path) < 2 || !strings.HasSuffix(path, "/") {
		return path, false
	}
	out := strings.TrimRight(path, "/")
	if out == "" {
		out = "/"
	}
	return out, true
}
