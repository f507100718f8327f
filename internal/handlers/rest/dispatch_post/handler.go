package dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
)

type dispatchRequest struct {
	OrderID string `json:"order_id"`
}

type dispatchResponse struct {
	RequestID     int64     `json:"request_id"`
	OrderID       string    `json:"order_id"`
	CourierID     int64     `json:"partner_id"`
	AttemptNumber int       `json:"attempt_number"`
	IsExclusive   bool      `json:"is_exclusive"`
	ExpiresAt     time.Time `json:"expires_at"`
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
	var dispatchDTO dispatchRequest
	err := json.NewDecoder(r.Body).Decode(&dispatchDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request, err := h.service.Dispatch(r.Context(), dispatchDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID),
			errors.Is(err, dispatch.ErrOrderNotReady):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrOrderAlreadyAssigned),
			errors.Is(err, dispatch.ErrNoCourierAvailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dispatchResponse{
		RequestID:     request.ID,
		OrderID:       request.OrderID,
		CourierID:     request.CourierID,
		AttemptNumber: request.AttemptNumber,
		IsExclusive:   request.IsExclusive,
		ExpiresAt:     request.ExpiresAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
