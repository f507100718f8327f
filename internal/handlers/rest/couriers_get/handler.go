package couriers_get

import (
	"encoding/json"
	"net/http"

	"dispatch/pkg/logger"
)

type courierResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	Online   bool   `json:"online"`
	Verified bool   `json:"verified"`
}

type couriersResponse struct {
	Couriers []courierResponse `json:"couriers"`
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
	couriers, err := h.service.GetCouriers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := couriersResponse{
		Couriers: make([]courierResponse, 0, len(couriers)),
	}
	for _, courierEntity := range couriers {
		response.Couriers = append(response.Couriers, courierResponse{
			ID:       courierEntity.ID,
			Name:     courierEntity.Name,
			Phone:    courierEntity.Phone,
			City:     courierEntity.City,
			Online:   courierEntity.Online,
			Verified: courierEntity.Verified,
		})
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
