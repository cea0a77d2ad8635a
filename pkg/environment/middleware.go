package environment

import "net/http"

// HeaderName is set on every response served through Middleware.
const HeaderName = "X-Environment"

// Middleware stores env in the request context and echoes it in the
// X-Environment response header so previews show which asset resolver
// rendered them.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderName, env.String())
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}
