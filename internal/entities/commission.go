package entities

import "time"

type CommissionEntityType string

const (
	CommissionEntityVendor  CommissionEntityType = "vendor"
	CommissionEntityCourier CommissionEntityType = "courier"
)

func (t CommissionEntityType) String() string {
	return string(t)
}

// CommissionRateRecord — запись аудита смены комиссионной ставки. Только добавление.
type CommissionRateRecord struct {
	ID         int64
	EntityType CommissionEntityType
	EntityID   int64
	OldRate    *float64
	NewRate    float64
	ChangedBy  string
	Reason     string
	CreatedAt  time.Time
}

// Settlement — результат одноразового расчёта по завершённой доставке.
type Settlement struct {
	OrderID          string
	CourierID        int64
	DeliveryFee      float64
	Tip              float64
	RatePercent      float64
	CommissionAmount float64
	PartnerEarnings  float64
	SettledAt        time.Time
}
