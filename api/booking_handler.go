package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/errs"
	"github.com/projectveo/backend/models"
	"github.com/projectveo/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type bookingHandler struct {
	responder   Responder
	logger      zerolog.Logger
	validate    *validator.Validate
	bookingRepo *database.BookingRepo
	bookings    *services.Bookings
}

func newBookingHandler(bookingRepo *database.BookingRepo, bookings *services.Bookings, validate *validator.Validate) bookingHandler {
	logger := log.With().Str("handlerName", "bookingHandler").Logger()

	return bookingHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		validate:    validate,
		bookingRepo: bookingRepo,
		bookings:    bookings,
	}
}

// createBooking is the public intake form. New bookings are always pending.
// @Router /api/bookings [post]
func (h bookingHandler) createBooking() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.BookingInput
		if err := decodeJSON(w, r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := services.ValidateStruct(h.validate, input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		booking, err := h.bookings.Submit(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bookingsReceived.Inc()
		h.logger.Info().Str("bookingID", booking.ID).Msg("booking received")
		h.responder.WriteJSONStatus(w, http.StatusCreated, booking)
	}
}

// @Router /api/bookings [get]
func (h bookingHandler) getAllBookings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := h.bookingRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, bookings)
	}
}

// @Router /api/bookings/{bookingID}/status [put]
func (h bookingHandler) updateBookingStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := strings.TrimSpace(r.URL.Query().Get("status"))
		if status == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("status"))
			return
		}
		if err := h.bookingRepo.UpdateStatus(r.Context(), chi.URLParam(r, "bookingID"), status); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteMessage(w, "Status updated successfully")
	}
}
