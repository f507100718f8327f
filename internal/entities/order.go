package entities

import "time"

type Order struct {
	ID               string
	Status           OrderStatusType
	CustomerID       int64
	ShopID           int64
	ShopCity         string
	ShopLatitude     float64
	ShopLongitude    float64
	DeliveryFee      float64
	Tip              float64
	CommissionAmount float64
	CourierEarnings  float64
	PaymentStatus    PaymentStatusType
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderStatusType string

const (
	OrderPlaced          OrderStatusType = "placed"
	OrderAccepted        OrderStatusType = "accepted"
	OrderReady           OrderStatusType = "ready"
	OrderAssigned        OrderStatusType = "assigned"
	OrderEnRouteToPickup OrderStatusType = "en_route_to_pickup"
	OrderPickedUp        OrderStatusType = "picked_up"
	OrderOutForDelivery  OrderStatusType = "out_for_delivery"
	OrderDelivered       OrderStatusType = "delivered"
	OrderCancelled       OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "pending"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID               *string
	Status           *OrderStatusType
	CommissionAmount *float64
	CourierEarnings  *float64
}

// Actor — инициатор перехода статуса заказа.
type Actor struct {
	Role ActorRole
	// CourierID заполняется только для RoleCourier.
	CourierID int64
}

type ActorRole string

const (
	RoleVendor   ActorRole = "vendor"
	RoleCourier  ActorRole = "courier"
	RoleCustomer ActorRole = "customer"
	RoleSystem   ActorRole = "system"
)

func (r ActorRole) String() string {
	return string(r)
}

var SystemActor = Actor{Role: RoleSystem}
