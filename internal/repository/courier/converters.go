package courier

import "dispatch/internal/entities"

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		Online:            c.Online,
		Verified:          c.Verified,
		City:              c.City,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		LocationUpdatedAt: c.LocationUpdatedAt,
		CommissionRate:    c.CommissionRate,
		TotalEarnings:     c.TotalEarnings,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromDomainModify(c *entities.CourierModify) *CourierModifyDB {
	if c == nil {
		return nil
	}
	return &CourierModifyDB{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Online:         c.Online,
		Verified:       c.Verified,
		City:           c.City,
		CommissionRate: c.CommissionRate,
	}
}
