package delivery_status_post

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

type statusChangeRequest struct {
	Status           string `json:"status"`
	ActorRole        string `json:"actor_role"`
	CourierID        int64  `json:"partner_id,omitempty"`
	VerificationCode string `json:"verification_code,omitempty"`
}

type orderResponse struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	CommissionAmount float64   `json:"commission_amount"`
	CourierEarnings  float64   `json:"courier_earnings"`
	UpdatedAt        time.Time `json:"updated_at"`
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

	var statusChangeDTO statusChangeRequest
	err := json.NewDecoder(r.Body).Decode(&statusChangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.Actor{
		Role:      entities.ActorRole(statusChangeDTO.ActorRole),
		CourierID: statusChangeDTO.CourierID,
	}
	params := orderservice.TransitionParams{
		VerificationCode: statusChangeDTO.VerificationCode,
	}

	orderEntity, err := h.service.Transition(
		r.Context(),
		orderID,
		entities.OrderStatusType(statusChangeDTO.Status),
		actor,
		params,
	)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidTransition),
			errors.Is(err, orderservice.ErrUndefinedStatus),
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

	response := orderResponse{
		ID:               orderEntity.ID,
		Status:           orderEntity.Status.String(),
		CommissionAmount: orderEntity.CommissionAmount,
		CourierEarnings:  orderEntity.CourierEarnings,
		UpdatedAt:        orderEntity.UpdatedAt,
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
