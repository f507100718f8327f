package courier

import "time"

type CourierDB struct {
	ID                int64
	Name              string
	Phone             string
	Online            bool
	Verified          bool
	City              string
	Latitude          *float64
	Longitude         *float64
	LocationUpdatedAt *time.Time
	CommissionRate    *float64
	TotalEarnings     float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type CourierModifyDB struct {
	ID             *int64
	Name           *string
	Phone          *string
	Online         *bool
	Verified       *bool
	City           *string
	CommissionRate *float64
}
