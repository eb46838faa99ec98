package http

import (
	"net/http"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/utils"
)

func (h *Handler) records(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on session route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	history, total, err := h.services.Records.UserHistory(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Msg("loading user history failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "records.html", pageData{
		Username:    identity.Username,
		IsAdmin:     identity.IsAdmin(),
		Records:     history,
		TotalPoints: total,
	})
}
