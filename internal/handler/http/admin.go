package http

import (
	"net/http"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/utils"
)

func (h *Handler) adminHome(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	h.render(w, r, "admin.html", pageData{Username: identity.Username, IsAdmin: true})
}

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.Admin.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, _ := utils.GetIdentityFromContext(ctx)
	h.render(w, r, "admin_users.html", pageData{
		Username: identity.Username,
		IsAdmin:  true,
		Users:    users,
	})
}

func (h *Handler) adminRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	overview, err := h.services.Admin.RecordsOverview(ctx)
	if err != nil {
		log.Err(err).Msg("loading records overview failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, _ := utils.GetIdentityFromContext(ctx)
	h.render(w, r, "admin_records.html", pageData{
		Username: identity.Username,
		IsAdmin:  true,
		Overview: &overview,
	})
}
