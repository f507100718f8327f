package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/offer"
	"dispatch/pkg/logger"
)

type deliveryAssignRequest struct {
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"partner_id"`
}

type deliveryAssignResponse struct {
	Outcome          string     `json:"outcome"`
	DeliveryID       *int64     `json:"delivery_id,omitempty"`
	OrderID          string     `json:"order_id"`
	CourierID        *int64     `json:"partner_id,omitempty"`
	VerificationCode string     `json:"verification_code,omitempty"`
	DistanceKm       *float64   `json:"distance_km,omitempty"`
	EtaMinutes       *int       `json:"eta_minutes,omitempty"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
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
	var deliveryAssignDTO deliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	acceptance, err := h.service.Accept(r.Context(), deliveryAssignDTO.OrderID, deliveryAssignDTO.CourierID)
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

	response := deliveryAssignResponse{
		Outcome: acceptance.Outcome.String(),
		OrderID: deliveryAssignDTO.OrderID,
	}
	if a := acceptance.Assignment; a != nil {
		response.DeliveryID = &a.DeliveryID
		response.CourierID = &a.CourierID
		response.VerificationCode = a.VerificationCode
		response.DistanceKm = &a.DistanceKm
		response.EtaMinutes = &a.EtaMinutes
		response.AssignedAt = &a.AssignedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
