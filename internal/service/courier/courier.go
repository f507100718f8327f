package courier

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

type Courier struct {
	repository  Repository
	locationLog LocationLogRepository
	txManager   TxManager
}

func New(repository Repository, locationLog LocationLogRepository, txManager TxManager) *Courier {
	return &Courier{
		repository:  repository,
		locationLog: locationLog,
		txManager:   txManager,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil ||
		courierModify.Phone == nil ||
		courierModify.City == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidCity(*courierModify.City) {
		return 0, ErrInvalidCity
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Name == nil &&
		courierModify.Phone == nil &&
		courierModify.City == nil &&
		courierModify.Online == nil &&
		courierModify.Verified == nil &&
		courierModify.CommissionRate == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.City != nil && !isValidCity(*courierModify.City) {
		return nil, ErrInvalidCity
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// RecordLocation принимает GPS-пинг: текущая позиция курьера обновляется по
// принципу last-write-wins, сам пинг дописывается в журнал.
func (s *Courier) RecordLocation(ctx context.Context, location entities.CourierLocation) error {
	if location.CourierID <= 0 {
		return ErrInvalidCourierID
	}
	if _, err := geo.NewPoint(location.Latitude, location.Longitude); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinates, err)
	}

	if location.RecordedAt.IsZero() {
		location.RecordedAt = time.Now().UTC()
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		err := s.repository.UpdateLocation(ctx, location.CourierID, location.Latitude, location.Longitude, location.RecordedAt)
		if err != nil {
			return fmt.Errorf("update courier location: %w", err)
		}

		if err = s.locationLog.Append(ctx, location); err != nil {
			return fmt.Errorf("append location log: %w", err)
		}
		return nil
	})
}
