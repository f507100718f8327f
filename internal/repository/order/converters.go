package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:               o.ID,
		Status:           entities.OrderStatusType(o.Status),
		CustomerID:       o.CustomerID,
		ShopID:           o.ShopID,
		ShopCity:         o.ShopCity,
		ShopLatitude:     o.ShopLatitude,
		ShopLongitude:    o.ShopLongitude,
		DeliveryFee:      o.DeliveryFee,
		Tip:              o.Tip,
		CommissionAmount: o.CommissionAmount,
		CourierEarnings:  o.CourierEarnings,
		PaymentStatus:    entities.PaymentStatusType(o.PaymentStatus),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
