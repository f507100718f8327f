package delivery_confirm_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type confirmRequest struct {
	VerificationCode string `json:"verification_code"`
	CourierID        int64  `json:"partner_id"`
}

type confirmResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	DeliveredAt time.Time `json:"delivered_at"`
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

	var confirmDTO confirmRequest
	err := json.NewDecoder(r.Body).Decode(&confirmDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.Actor{
		Role:      entities.RoleCourier,
		CourierID: confirmDTO.CourierID,
	}

	orderEntity, err := h.service.Confirm(r.Context(), orderID, confirmDTO.VerificationCode, actor)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidTransition),
			errors.Is(err, orderservice.ErrVerificationCodeRequired),
			errors.Is(err, orderservice.ErrInvalidVerificationCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrStatusConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := confirmResponse{
		ID:          orderEntity.ID,
		Status:      orderEntity.Status.String(),
		DeliveredAt: orderEntity.UpdatedAt,
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
