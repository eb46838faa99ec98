package http

import (
	"encoding/base64"
	"net/http"
)

// flashCookieName is the one-shot cookie carrying the message shown on the
// next rendered page. The value is base64url-encoded so messages may carry
// spaces and non-ASCII characters.
const flashCookieName = "ecosort_flash"

func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash reads the pending flash message and clears the cookie, so the
// message is rendered at most once.
func popFlash(w http.ResponseWriter, r *http.Request) (string, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return "", false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return "", false
	}

	return string(decoded), true
}
