package deliveryrequest

import "dispatch/internal/entities"

func ToDomain(r *DeliveryRequestDB) *entities.DeliveryRequest {
	if r == nil {
		return nil
	}
	return &entities.DeliveryRequest{
		ID:            r.ID,
		OrderID:       r.OrderID,
		CourierID:     r.CourierID,
		Status:        entities.DeliveryRequestStatus(r.Status),
		AttemptNumber: r.AttemptNumber,
		IsExclusive:   r.IsExclusive,
		ExpiresAt:     r.ExpiresAt,
		RespondedAt:   r.RespondedAt,
		CreatedAt:     r.CreatedAt,
	}
}
