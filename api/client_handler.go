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

type clientHandler struct {
	responder  Responder
	logger     zerolog.Logger
	validate   *validator.Validate
	clientRepo *database.ClientRepo
}

func newClientHandler(clientRepo *database.ClientRepo, validate *validator.Validate) clientHandler {
	logger := log.With().Str("handlerName", "clientHandler").Logger()

	return clientHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		validate:   validate,
		clientRepo: clientRepo,
	}
}

// @Router /api/clients [post]
func (h clientHandler) createClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ClientInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := services.ValidateStruct(h.validate, input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		client := input.Client()
		if err := h.clientRepo.Add(r.Context(), &client); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("clientID", client.ID).Msg("client created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, client)
	}
}

// @Router /api/clients [get]
func (h clientHandler) getAllClients() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := h.clientRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, clients)
	}
}

// @Router /api/clients/{clientID} [get]
func (h clientHandler) getClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, err := h.clientRepo.FindByID(r.Context(), chi.URLParam(r, "clientID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, client)
	}
}

// @Router /api/clients/{clientID} [put]
func (h clientHandler) updateClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ClientPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := services.ValidateStruct(h.validate, patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		client, err := h.clientRepo.Update(r.Context(), chi.URLParam(r, "clientID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, client)
	}
}

// @Router /api/clients/{clientID} [delete]
func (h clientHandler) deleteClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID := chi.URLParam(r, "clientID")
		if err := h.clientRepo.Delete(r.Context(), clientID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.logger.Info().Str("clientID", clientID).Msg("client deleted")
		h.responder.WriteMessage(w, "Client deleted successfully")
	}
}
