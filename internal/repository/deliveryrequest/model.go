package deliveryrequest

import "time"

type DeliveryRequestDB struct {
	ID            int64
	OrderID       string
	CourierID     int64
	Status        string
	AttemptNumber int
	IsExclusive   bool
	ExpiresAt     time.Time
	RespondedAt   *time.Time
	CreatedAt     time.Time
}
