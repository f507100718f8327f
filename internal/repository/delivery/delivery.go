package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	dispatchservice "dispatch/internal/service/dispatch"
	trackingservice "dispatch/internal/service/tracking"
)

const deliveryColumns = `id, order_id, courier_id, delivery_fee, commission_amount, partner_earnings,
			verification_code, pickup_time, delivery_time, tracking_active, last_latitude, last_longitude,
			route_polyline, distance_km, eta_minutes, settled_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет доставку. Уникальный индекс на order_id гарантирует не
// больше одной доставки на заказ: нарушение транслируется в
// ErrOrderAlreadyAssigned и трактуется вызывающим как проигранная гонка.
func (r *Repository) Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, courier_id, delivery_fee, verification_code, distance_km, eta_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + deliveryColumns + `
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryModify.OrderID,
		deliveryModify.CourierID,
		deliveryModify.DeliveryFee,
		deliveryModify.VerificationCode,
		deliveryModify.DistanceKm,
		deliveryModify.EtaMinutes,
	).Scan(r.scanTargets(&deliveryDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dispatchservice.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1
	`

	return r.getOne(ctx, query, orderID)
}

func (r *Repository) GetByID(ctx context.Context, deliveryID int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1
	`

	return r.getOne(ctx, query, deliveryID)
}

func (r *Repository) Exists(ctx context.Context, orderID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM deliveries WHERE order_id = $1)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) SetPickupTime(ctx context.Context, orderID string, at time.Time) error {
	query := `
		UPDATE deliveries SET pickup_time = $2 WHERE order_id = $1
	`

	return r.execOnOrder(ctx, query, orderID, at)
}

func (r *Repository) SetDeliveryTime(ctx context.Context, orderID string, at time.Time) error {
	query := `
		UPDATE deliveries SET delivery_time = $2 WHERE order_id = $1
	`

	return r.execOnOrder(ctx, query, orderID, at)
}

// SettleOnce записывает результат расчёта только в ещё не рассчитанную
// доставку. Возвращает false, если доставка уже была рассчитана ранее —
// повторный вызов не изменяет ничего.
func (r *Repository) SettleOnce(ctx context.Context, orderID string, commissionAmount, partnerEarnings float64, at time.Time) (bool, error) {
	query := `
		UPDATE deliveries
		SET commission_amount = $2, partner_earnings = $3, settled_at = $4
		WHERE order_id = $1 AND settled_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, orderID, commissionAmount, partnerEarnings, at)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository settle error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) SetTrackingActive(ctx context.Context, deliveryID int64, active bool) error {
	query := `
		UPDATE deliveries SET tracking_active = $2 WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, deliveryID, active)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository set tracking error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return trackingservice.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) UpdateLastLocation(ctx context.Context, deliveryID int64, latitude, longitude float64) error {
	query := `
		UPDATE deliveries SET last_latitude = $2, last_longitude = $3 WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, deliveryID, latitude, longitude)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update location error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return trackingservice.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) UpdateRoute(ctx context.Context, deliveryID int64, routePolyline string, distanceKm float64, etaMinutes int) error {
	query := `
		UPDATE deliveries SET route_polyline = $2, distance_km = $3, eta_minutes = $4 WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, deliveryID, routePolyline, distanceKm, etaMinutes)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update route error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return trackingservice.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Delivery, error) {
	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(r.scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatchservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) execOnOrder(ctx context.Context, query, orderID string, at time.Time) error {
	result, err := r.querier.Exec(ctx, query, orderID, at)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return dispatchservice.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) scanTargets(d *DeliveryDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.OrderID,
		&d.CourierID,
		&d.DeliveryFee,
		&d.CommissionAmount,
		&d.PartnerEarnings,
		&d.VerificationCode,
		&d.PickupTime,
		&d.DeliveryTime,
		&d.TrackingActive,
		&d.LastLatitude,
		&d.LastLongitude,
		&d.RoutePolyline,
		&d.DistanceKm,
		&d.EtaMinutes,
		&d.SettledAt,
		&d.CreatedAt,
	}
}
