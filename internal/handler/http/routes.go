package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
	})

	// routes behind a session
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Get("/home", h.home)
		r.Get("/classify", h.classifyPage)
		r.Post("/classify", h.classify)
		r.Get("/records", h.records)

		r.Group(func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/admin", h.adminHome)
			r.Get("/admin/users", h.adminUsers)
			r.Get("/admin/records", h.adminRecords)
		})
	})

	// uploaded photos referenced by the classify result page
	uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
	router.Get("/uploads/*", uploads.ServeHTTP)

	return router
}
