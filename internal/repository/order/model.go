package order

import "time"

type OrderDB struct {
	ID               string
	Status           string
	CustomerID       int64
	ShopID           int64
	ShopCity         string
	ShopLatitude     float64
	ShopLongitude    float64
	DeliveryFee      float64
	Tip              float64
	CommissionAmount float64
	CourierEarnings  float64
	PaymentStatus    string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
