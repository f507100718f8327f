package tracking_route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/service/tracking"
)

type routeRequest struct {
	RoutePolyline string  `json:"route_polyline"`
	DistanceKm    float64 `json:"distance_km"`
	EtaMinutes    int     `json:"eta_minutes"`
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

	var routeDTO routeRequest
	err := json.NewDecoder(r.Body).Decode(&routeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.UpdateRoute(r.Context(), orderID, routeDTO.RoutePolyline, routeDTO.DistanceKm, routeDTO.EtaMinutes)
	if err != nil {
		switch {
		case errors.Is(err, tracking.ErrInvalidOrderID),
			errors.Is(err, tracking.ErrInvalidRoute):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tracking.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
