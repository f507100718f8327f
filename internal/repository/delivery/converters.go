package delivery

import "dispatch/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:               d.ID,
		OrderID:          d.OrderID,
		CourierID:        d.CourierID,
		DeliveryFee:      d.DeliveryFee,
		CommissionAmount: d.CommissionAmount,
		PartnerEarnings:  d.PartnerEarnings,
		VerificationCode: d.VerificationCode,
		PickupTime:       d.PickupTime,
		DeliveryTime:     d.DeliveryTime,
		TrackingActive:   d.TrackingActive,
		LastLatitude:     d.LastLatitude,
		LastLongitude:    d.LastLongitude,
		RoutePolyline:    d.RoutePolyline,
		DistanceKm:       d.DistanceKm,
		EtaMinutes:       d.EtaMinutes,
		SettledAt:        d.SettledAt,
		CreatedAt:        d.CreatedAt,
	}
}
