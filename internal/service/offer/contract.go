//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_test
package offer

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderID string, courierID int64, isExclusive bool, expiresAt time.Time) (*entities.DeliveryRequest, error)
	GetByID(ctx context.Context, requestID int64) (*entities.DeliveryRequest, error)
	GetPendingByOrderAndCourier(ctx context.Context, orderID string, courierID int64) (*entities.DeliveryRequest, error)
	MarkResponded(ctx context.Context, requestID int64, status entities.DeliveryRequestStatus, at time.Time) error
	RejectOtherPending(ctx context.Context, orderID string, winnerRequestID int64, at time.Time) (int64, error)
	ExpireStale(ctx context.Context, now time.Time) ([]string, error)
	GetOfferedCourierIDs(ctx context.Context, orderID string) ([]int64, error)
	GetMaxAttempt(ctx context.Context, orderID string) (int, error)
	HasPending(ctx context.Context, orderID string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
