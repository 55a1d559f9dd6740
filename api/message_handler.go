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

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	messageRepo *database.MessageRepo
	projectRepo *database.ProjectRepo
}

func newMessageHandler(messageRepo *database.MessageRepo, projectRepo *database.ProjectRepo, validate *validator.Validate) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		validate:    validate,
		messageRepo: messageRepo,
		projectRepo: projectRepo,
	}
}

// sendMessage appends a message to a project, snapshotting the sender's name and role
// @Router /api/messages [post]
func (h messageHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.MessageInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := services.ValidateStruct(h.validate, input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.projectRepo.FindByID(r.Context(), input.ProjectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		sender := ctxGetUser(r.Context())
		message := models.Message{
			ProjectID:  input.ProjectID,
			SenderName: sender.Name,
			SenderRole: sender.Role,
			Message:    input.Message,
		}
		if err := h.messageRepo.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSONStatus(w, http.StatusCreated, message)
	}
}

// @Router /api/messages/{projectID} [get]
func (h messageHandler) getProjectMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindByProject(r.Context(), chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, messages)
	}
}
