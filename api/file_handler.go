package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/models"
	"github.com/projectveo/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type fileHandler struct {
	responder      Responder
	logger         zerolog.Logger
	fileRepo       *database.FileRepo
	uploads        *services.Uploads
	maxUploadBytes int64
}

func newFileHandler(fileRepo *database.FileRepo, uploads *services.Uploads, maxUploadBytes int64) fileHandler {
	logger := log.With().Str("handlerName", "fileHandler").Logger()

	return fileHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		fileRepo:       fileRepo,
		uploads:        uploads,
		maxUploadBytes: maxUploadBytes,
	}
}

// uploadFile accepts multipart fields: file, project_id, category, description
// @Router /api/upload [post]
func (h fileHandler) uploadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		upload, closeUpload, err := readUpload(w, r, h.maxUploadBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer closeUpload()

		category := r.FormValue("category")
		if category == "" {
			category = models.DefaultFileCategory
		}

		file, err := h.uploads.UploadFile(r.Context(), ctxGetUser(r.Context()), services.FileUploadInput{
			Upload:   upload,
			Category: category,
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, file)
	}
}

// @Router /api/files/{projectID} [get]
func (h fileHandler) getProjectFiles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := h.fileRepo.FindByProject(r.Context(), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, files)
	}
}

// deleteFile removes the file record. The stored blob is kept.
// @Router /api/files/{fileID} [delete]
func (h fileHandler) deleteFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.fileRepo.Delete(r.Context(), chi.URLParam(r, "fileID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteMessage(w, "File deleted successfully")
	}
}
