package entities

import "time"

type Delivery struct {
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

type DeliveryModify struct {
	ID               *int64
	OrderID          *string
	CourierID        *int64
	DeliveryFee      *float64
	VerificationCode *string
	DistanceKm       *float64
	EtaMinutes       *int
}

type DeliveryAssignment struct {
	DeliveryID       int64
	OrderID          string
	CourierID        int64
	VerificationCode string
	DistanceKm       float64
	EtaMinutes       int
	AssignedAt       time.Time
}

// AcceptanceOutcome различает выигранную гонку принятия оффера и no-op,
// когда доставка уже существует.
type AcceptanceOutcome string

const (
	AcceptanceAssigned        AcceptanceOutcome = "assigned"
	AcceptanceAlreadyAssigned AcceptanceOutcome = "already_assigned"
)

func (o AcceptanceOutcome) String() string {
	return string(o)
}

type Acceptance struct {
	Outcome    AcceptanceOutcome
	Assignment *DeliveryAssignment
}
