package tracking_start_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/service/tracking"
	"dispatch/pkg/logger"
)

type trackingResponse struct {
	DeliveryID     int64  `json:"delivery_id"`
	OrderID        string `json:"order_id"`
	TrackingActive bool   `json:"tracking_active"`
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

	delivery, err := h.service.StartTracking(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := trackingResponse{
		DeliveryID:     delivery.ID,
		OrderID:        delivery.OrderID,
		TrackingActive: delivery.TrackingActive,
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
