package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/models"
	"github.com/projectveo/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	projectRepo *database.ProjectRepo
	sharing     *services.ShareResolver
}

func newProjectHandler(projectRepo *database.ProjectRepo, sharing *services.ShareResolver, validate *validator.Validate) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		validate:    validate,
		projectRepo: projectRepo,
		sharing:     sharing,
	}
}

// createProject stores a new project with a freshly issued share link
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ProjectInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := services.ValidateStruct(h.validate, input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := input.Project()
		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("projectID", project.ID).Msg("project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.projectRepo.FindByID(r.Context(), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies a partial update. The share link cannot be changed.
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ProjectPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := services.ValidateStruct(h.validate, patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.Update(r.Context(), chi.URLParam(r, "projectID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project together with its messages, files and SRS documents
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.logger.Info().Str("projectID", projectID).Msg("project deleted")
		h.responder.WriteMessage(w, "Project deleted successfully")
	}
}

// @Router /api/projects/portfolio [get]
func (h projectHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.sharing.Portfolio(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// getSharedProject is the public view behind a share link
// @Router /api/projects/share/{shareLink} [get]
func (h projectHandler) getSharedProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared, err := h.sharing.ResolveByShareLink(r.Context(), chi.URLParam(r, "shareLink"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, shared)
	}
}
