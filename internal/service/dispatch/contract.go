package dispatch

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	MarkAssigned(ctx context.Context, orderID string) (*entities.Order, error)
}

type OrderRepository interface {
	GetReadyCreatedBefore(ctx context.Context, cursor time.Time, limit int) ([]entities.Order, error)
}

type OfferService interface {
	CreateOffer(ctx context.Context, orderID string, courierID int64, isExclusive bool, ttl time.Duration) (*entities.DeliveryRequest, error)
	Respond(ctx context.Context, requestID int64, status entities.DeliveryRequestStatus) (*entities.DeliveryRequest, error)
	GetPendingOffer(ctx context.Context, orderID string, courierID int64) (*entities.DeliveryRequest, error)
	Supersede(ctx context.Context, orderID string, winnerRequestID int64) (int64, error)
	ExpireStale(ctx context.Context) ([]string, error)
	GetOfferedCourierIDs(ctx context.Context, orderID string) ([]int64, error)
	GetMaxAttempt(ctx context.Context, orderID string) (int, error)
	HasPending(ctx context.Context, orderID string) (bool, error)
}

type CourierRepository interface {
	GetByID(ctx context.Context, courierID int64) (*entities.Courier, error)
	GetEligible(ctx context.Context, city string, locationMaxAge time.Duration) ([]entities.Courier, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Exists(ctx context.Context, orderID string) (bool, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
}

type CodeFactory interface {
	Generate() (string, error)
}

type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
