package settlement

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateSettlementAmounts(ctx context.Context, orderID string, commissionAmount, courierEarnings float64) error
}

type DeliveryRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	SettleOnce(ctx context.Context, orderID string, commissionAmount, partnerEarnings float64, at time.Time) (bool, error)
}

type CourierRepository interface {
	GetByID(ctx context.Context, courierID int64) (*entities.Courier, error)
	Update(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
	IncrementEarnings(ctx context.Context, courierID int64, amount float64) error
}

type CommissionRepository interface {
	GetCurrentRate(ctx context.Context, entityType entities.CommissionEntityType, entityID int64) (*float64, error)
	UpsertRate(ctx context.Context, entityType entities.CommissionEntityType, entityID int64, rate float64) (*float64, error)
	AppendRecord(ctx context.Context, record entities.CommissionRateRecord) (int64, error)
}

type SettingsRepository interface {
	GetFloat(ctx context.Context, key string) (float64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
