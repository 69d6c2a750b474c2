package flash

import (
	"net/http"

	"github.com/google/uuid"
)

// Middleware injects a fresh per-request Notifier into the request context.
// Handlers retrieve it with FromContext or MustFromContext.
//
// The notifier's store keys are scoped to the visitor through a cookie named
// by cfg.CookieName; a uuid-backed cookie is issued on the first visit. This
// keeps concurrent sessions sharing one store from consuming each other's
// flashed messages. The flash slot itself remains last-write-wins within a
// session, as the store defines.
func Middleware(cfg Config, opts ...NotifierOption) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := scopeFromRequest(w, r, cfg.CookieName)

			n := NewNotifier(cfg, append(opts, WithNotifierScope(scope))...)

			next.ServeHTTP(w, r.WithContext(WithNotifier(r.Context(), n)))
		})
	}
}

// scopeFromRequest returns the visitor's flash scope, issuing a new cookie
// when the request does not carry one.
func scopeFromRequest(w http.ResponseWriter, r *http.Request, cookieName string) string {
	if cookieName == "" {
		cookieName = DefaultConfig().CookieName
	}

	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	scope := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    scope,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return scope
}
