package entities

import "time"

// DeliveryRequest — оффер курьеру на конкретный заказ. Append-only журнал
// процесса подбора: по одному ряду на попытку.
type DeliveryRequest struct {
	ID            int64
	OrderID       string
	CourierID     int64
	Status        DeliveryRequestStatus
	AttemptNumber int
	IsExclusive   bool
	ExpiresAt     time.Time
	RespondedAt   *time.Time
	CreatedAt     time.Time
}

func (r *DeliveryRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

type DeliveryRequestStatus string

const (
	RequestPending  DeliveryRequestStatus = "pending"
	RequestAccepted DeliveryRequestStatus = "accepted"
	RequestRejected DeliveryRequestStatus = "rejected"
	RequestExpired  DeliveryRequestStatus = "expired"
)

func (s DeliveryRequestStatus) String() string {
	return string(s)
}

type DeliveryRequestModify struct {
	ID          *int64
	OrderID     *string
	CourierID   *int64
	Status      *DeliveryRequestStatus
	IsExclusive *bool
	ExpiresAt   *time.Time
}
