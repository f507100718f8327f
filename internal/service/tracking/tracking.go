package tracking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
	dispatchservice "dispatch/internal/service/dispatch"
	"dispatch/pkg/geo"
)

type Tracking struct {
	deliveryRepo DeliveryRepository
	locationLog  LocationLogRepository
	txManager    TxManager
}

func New(deliveryRepo DeliveryRepository, locationLog LocationLogRepository, txManager TxManager) *Tracking {
	return &Tracking{
		deliveryRepo: deliveryRepo,
		locationLog:  locationLog,
		txManager:    txManager,
	}
}

// StartTracking включает трансляцию позиции по доставке заказа.
func (s *Tracking) StartTracking(ctx context.Context, orderID string) (*entities.Delivery, error) {
	return s.setTracking(ctx, orderID, true)
}

// StopTracking выключает трансляцию позиции.
func (s *Tracking) StopTracking(ctx context.Context, orderID string) (*entities.Delivery, error) {
	return s.setTracking(ctx, orderID, false)
}

// RecordLocation сохраняет последнюю переданную позицию курьера на доставке
// и дописывает пинг в журнал локаций. Принимается только при активной
// трансляции.
func (s *Tracking) RecordLocation(ctx context.Context, orderID string, ping entities.LocationPing) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if _, err := geo.NewPoint(ping.Latitude, ping.Longitude); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCoordinates, err)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := s.getDelivery(ctx, orderID)
		if err != nil {
			return err
		}
		if !delivery.TrackingActive {
			return ErrTrackingInactive
		}

		if err = s.deliveryRepo.UpdateLastLocation(ctx, delivery.ID, ping.Latitude, ping.Longitude); err != nil {
			return fmt.Errorf("update last location: %w", err)
		}

		err = s.locationLog.Append(ctx, entities.CourierLocation{
			CourierID:  delivery.CourierID,
			Latitude:   ping.Latitude,
			Longitude:  ping.Longitude,
			Speed:      ping.Speed,
			Heading:    ping.Heading,
			Accuracy:   ping.Accuracy,
			RecordedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append location log: %w", err)
		}
		return nil
	})
}

// UpdateRoute сохраняет маршрут с оценкой расстояния и времени в пути.
func (s *Tracking) UpdateRoute(ctx context.Context, orderID, routePolyline string, distanceKm float64, etaMinutes int) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if strings.TrimSpace(routePolyline) == "" || distanceKm < 0 || etaMinutes < 0 {
		return ErrInvalidRoute
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := s.getDelivery(ctx, orderID)
		if err != nil {
			return err
		}

		if err = s.deliveryRepo.UpdateRoute(ctx, delivery.ID, routePolyline, distanceKm, etaMinutes); err != nil {
			return fmt.Errorf("update route: %w", err)
		}
		return nil
	})
}

// GetDelivery отдаёт доставку по заказу вместе с последней позицией.
func (s *Tracking) GetDelivery(ctx context.Context, orderID string) (*entities.Delivery, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	return s.getDelivery(ctx, orderID)
}

func (s *Tracking) setTracking(ctx context.Context, orderID string, active bool) (*entities.Delivery, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var delivery *entities.Delivery

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		found, err := s.getDelivery(ctx, orderID)
		if err != nil {
			return err
		}

		if err = s.deliveryRepo.SetTrackingActive(ctx, found.ID, active); err != nil {
			return fmt.Errorf("set tracking: %w", err)
		}

		found.TrackingActive = active
		delivery = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// getDelivery переводит "не найдено" из общего репозитория доставок в
// сентинел этого сервиса.
func (s *Tracking) getDelivery(ctx context.Context, orderID string) (*entities.Delivery, error) {
	delivery, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, dispatchservice.ErrDeliveryNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return delivery, nil
}

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}
