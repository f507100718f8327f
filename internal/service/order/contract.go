//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

// ExecuteFn — побочный эффект статуса, выполняемый после применения
// внешнего события (см. фабрику обработчиков статусов).
type ExecuteFn func(ctx context.Context, orderID string) error

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) (*entities.Order, error)
}

type DeliveryRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	SetPickupTime(ctx context.Context, orderID string, at time.Time) error
	SetDeliveryTime(ctx context.Context, orderID string, at time.Time) error
}

type Settlement interface {
	Settle(ctx context.Context, orderID string) (*entities.Settlement, error)
}

type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
