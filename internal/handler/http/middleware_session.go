// Package http implements the browser-facing transport of the application:
// page handlers, the session and admin middleware, and HTML rendering.
// Requests are authenticated by a signed session cookie; the middleware
// resolves it into an identity and stores it in the request context before
// delegating to the page handlers.
package http

import (
	"context"
	"net/http"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/utils"
	"github.com/prasetyadi/ecosort/models"
)

const sessionCookieName = "ecosort_session"

// setSessionCookie stores the signed token as a browser-session cookie.
// Lifetime is enforced by the token's expiry claim, not the cookie.
func setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// session requires a valid session cookie. On success the resolved identity
// is stored in the request context under [utils.IdentityCtxKey]; otherwise
// the browser is flashed and redirected to the login page. A cookie that
// fails validation (expired, tampered) is cleared on the way out.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			setFlash(w, "⚠️ Silakan login dulu.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := r.Context()
		identity, err := h.services.Auth.ParseSessionToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session cookie rejected")
			clearSessionCookie(w)
			setFlash(w, "⚠️ Silakan login dulu.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly requires the admin identity variant. Regular accounts are
// flashed and sent back to their home page.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin() {
			log.Debug().Str("username", identity.Username).Msg("admin page denied")
			setFlash(w, "❌ Anda bukan admin!")
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
