package delivery_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/offer"
)

type deliveryRejectRequest struct {
	CourierID int64 `json:"partner_id"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var deliveryRejectDTO deliveryRejectRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryRejectDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Reject(r.Context(), orderID, deliveryRejectDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, offer.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, offer.ErrOfferExpired),
			errors.Is(err, offer.ErrOfferAlreadyResolved):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
