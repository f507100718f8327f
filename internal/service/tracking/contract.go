package tracking

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test

import (
	"context"

	"dispatch/internal/entities"
)

type DeliveryRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	SetTrackingActive(ctx context.Context, deliveryID int64, active bool) error
	UpdateLastLocation(ctx context.Context, deliveryID int64, latitude, longitude float64) error
	UpdateRoute(ctx context.Context, deliveryID int64, routePolyline string, distanceKm float64, etaMinutes int) error
}

type LocationLogRepository interface {
	Append(ctx context.Context, location entities.CourierLocation) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
