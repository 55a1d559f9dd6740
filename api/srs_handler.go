package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type srsHandler struct {
	responder      Responder
	logger         zerolog.Logger
	srsRepo        *database.SRSDocumentRepo
	uploads        *services.Uploads
	maxUploadBytes int64
}

func newSRSHandler(srsRepo *database.SRSDocumentRepo, uploads *services.Uploads, maxUploadBytes int64) srsHandler {
	logger := log.With().Str("handlerName", "srsHandler").Logger()

	return srsHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		srsRepo:        srsRepo,
		uploads:        uploads,
		maxUploadBytes: maxUploadBytes,
	}
}

// uploadSRS accepts multipart fields: file, project_id, title, version, description
// @Router /api/srs [post]
func (h srsHandler) uploadSRS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upload, closeUpload, err := readUpload(w, r, h.maxUploadBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUpload()

		doc, err := h.uploads.UploadSRS(r.Context(), ctxGetUser(r.Context()), services.SRSUploadInput{
			Upload:  upload,
			Title:   r.FormValue("title"),
			Version: r.FormValue("version"),
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, doc)
	}
}

// @Router /api/srs/{projectID} [get]
func (h srsHandler) getProjectSRS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs, err := h.srsRepo.FindByProject(r.Context(), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, docs)
	}
}

// @Router /api/srs/{srsID}/status [put]
func (h srsHandler) updateSRSStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := strings.TrimSpace(r.URL.Query().Get("status"))
		if status == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("status"))
			return
		}
		if err := h.srsRepo.UpdateStatus(r.Context(), chi.URLParam(r, "srsID"), status); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteMessage(w, "Status updated successfully")
	}
}

// @Router /api/srs/{srsID} [delete]
func (h srsHandler) deleteSRS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.srsRepo.Delete(r.Context(), chi.URLParam(r, "srsID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteMessage(w, "SRS document deleted successfully")
	}
}
