package entities

import (
	"time"
)

type Courier struct {
	ID                int64
	Name              string
	Phone             string
	Online            bool
	Verified          bool
	City              string
	Latitude          *float64
	Longitude         *float64
	LocationUpdatedAt *time.Time
	// CommissionRate nil означает, что применяется ставка по умолчанию из настроек.
	CommissionRate *float64
	TotalEarnings  float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (c *Courier) HasFreshLocation(now time.Time, stalenessWindow time.Duration) bool {
	if c.Latitude == nil || c.Longitude == nil || c.LocationUpdatedAt == nil {
		return false
	}
	return now.Sub(*c.LocationUpdatedAt) <= stalenessWindow
}

type CourierModify struct {
	ID             *int64
	Name           *string
	Phone          *string
	Online         *bool
	Verified       *bool
	City           *string
	CommissionRate *float64
}

// LocationPing — телеметрия одного GPS-пинга без привязки к курьеру.
// Курьера определяет контекст вызова (доставка заказа).
type LocationPing struct {
	Latitude  float64
	Longitude float64
	Speed     *float64
	Heading   *float64
	Accuracy  *float64
}

// CourierLocation — один GPS-пинг курьера. Пишется в append-only журнал.
type CourierLocation struct {
	CourierID  int64
	Latitude   float64
	Longitude  float64
	Speed      *float64
	Heading    *float64
	Accuracy   *float64
	RecordedAt time.Time
}
