package courier_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type courierResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	City           string   `json:"city"`
	Online         bool     `json:"online"`
	Verified       bool     `json:"verified"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
	TotalEarnings  float64  `json:"total_earnings"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierEntity, err := h.service.GetCourier(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	courierDTO := courierResponse{
		ID:             courierEntity.ID,
		Name:           courierEntity.Name,
		Phone:          courierEntity.Phone,
		City:           courierEntity.City,
		Online:         courierEntity.Online,
		Verified:       courierEntity.Verified,
		Latitude:       courierEntity.Latitude,
		Longitude:      courierEntity.Longitude,
		CommissionRate: courierEntity.CommissionRate,
		TotalEarnings:  courierEntity.TotalEarnings,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(courierDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
