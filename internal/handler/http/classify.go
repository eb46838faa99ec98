package http

import (
	"errors"
	"net/http"

	"github.com/prasetyadi/ecosort/internal/logger"
	"github.com/prasetyadi/ecosort/internal/store"
	"github.com/prasetyadi/ecosort/internal/utils"
)

// maxUploadMemory bounds the in-memory part of multipart parsing; larger
// uploads spill to temp files.
const maxUploadMemory = 32 << 20

func (h *Handler) classifyPage(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.GetIdentityFromContext(r.Context())
	h.render(w, r, "classify.html", pageData{Username: identity.Username, IsAdmin: identity.IsAdmin()})
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on session route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Debug().Err(err).Msg("classify request carries no multipart form")
		setFlash(w, "❌ Tidak ada file yang diupload!")
		http.Redirect(w, r, "/classify", http.StatusFound)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		setFlash(w, "❌ Tidak ada file yang diupload!")
		http.Redirect(w, r, "/classify", http.StatusFound)
		return
	}
	defer file.Close()

	result, err := h.services.Classify.Classify(ctx, identity.UserID, header.Filename, file)
	if err != nil {
		if errors.Is(err, store.ErrNoFileProvided) {
			setFlash(w, "❌ Tidak ada file yang diupload!")
			http.Redirect(w, r, "/classify", http.StatusFound)
			return
		}

		log.Err(err).Msg("classification failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "classify.html", pageData{
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin(),
		Result:   &result,
	})
}
