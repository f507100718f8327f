package delivery

import "time"

type DeliveryDB struct {
	ID               int64
	OrderID          string
	CourierID        int64
	DeliveryFee      float64
	CommissionAmount float64
	PartnerEarnings  float64
	VerificationCode string
	PickupTime       *time.Time
	DeliveryTime     *time.Time
	TrackingActive   bool
	LastLatitude     *float64
	LastLongitude    *float64
	RoutePolyline    *string
	DistanceKm       *float64
	EtaMinutes       *int
	SettledAt        *time.Time
	CreatedAt        time.Time
}
