package http

import (
	"errors"
	"net/http"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/service"
	"github.com/prasetyadi/ecosort/internal/store"
)

// index sends an existing session to its home page and everyone else to the
// login page.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err == nil {
		if _, parseErr := h.services.Auth.ParseSessionToken(r.Context(), cookie.Value); parseErr == nil {
			http.Redirect(w, r, "/home", http.StatusFound)
			return
		}
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login.html", pageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form")
		setFlash(w, "❌ Username atau password salah!")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	identity, err := h.services.Auth.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrNoUserWasFound):
			log.Debug().Str("username", username).Err(err).Msg("login rejected")
			setFlash(w, "❌ Username atau password salah!")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.Auth.CreateSessionToken(ctx, identity)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)

	if identity.IsAdmin() {
		setFlash(w, "✅ Login sebagai Admin berhasil!")
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	setFlash(w, "✅ Login berhasil!")
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", pageData{})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid signup form")
		setFlash(w, "❌ Username sudah digunakan!")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.Auth.Register(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists), errors.Is(err, service.ErrInvalidDataProvided):
			log.Debug().Str("username", username).Err(err).Msg("signup rejected")
			setFlash(w, "❌ Username sudah digunakan!")
			http.Redirect(w, r, "/signup", http.StatusFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	setFlash(w, "✅ Akun berhasil dibuat! Silakan login.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	setFlash(w, "👋 Anda sudah logout.")
	http.Redirect(w, r, "/login", http.StatusFound)
}
