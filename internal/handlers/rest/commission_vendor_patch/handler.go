package commission_vendor_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"dispatch/internal/service/settlement"
	"dispatch/pkg/logger"
)

type rateChangeRequest struct {
	Rate      float64 `json:"rate"`
	ChangedBy string  `json:"changed_by"`
	Reason    string  `json:"reason"`
}

type rateChangeResponse struct {
	RecordID  int64     `json:"record_id"`
	VendorID  int64     `json:"shop_id"`
	OldRate   *float64  `json:"old_rate,omitempty"`
	NewRate   float64   `json:"new_rate"`
	ChangedAt time.Time `json:"changed_at"`
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
	idStr := mux.Vars(r)["id"]
	vendorID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var rateChangeDTO rateChangeRequest
	err = json.NewDecoder(r.Body).Decode(&rateChangeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record, err := h.service.SetVendorRate(
		r.Context(),
		vendorID,
		rateChangeDTO.Rate,
		rateChangeDTO.ChangedBy,
		rateChangeDTO.Reason,
	)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidVendorID),
			errors.Is(err, settlement.ErrInvalidRate):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := rateChangeResponse{
		RecordID:  record.ID,
		VendorID:  record.EntityID,
		OldRate:   record.OldRate,
		NewRate:   record.NewRate,
		ChangedAt: record.CreatedAt,
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
