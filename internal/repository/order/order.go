package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
)

const orderColumns = `id, status, customer_id, shop_id, shop_city, shop_latitude, shop_longitude,
			delivery_fee, tip, commission_amount, courier_earnings, payment_status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.CustomerID,
		&orderDB.ShopID,
		&orderDB.ShopCity,
		&orderDB.ShopLatitude,
		&orderDB.ShopLongitude,
		&orderDB.DeliveryFee,
		&orderDB.Tip,
		&orderDB.CommissionAmount,
		&orderDB.CourierEarnings,
		&orderDB.PaymentStatus,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// UpdateStatus переводит заказ из from в to. Условие WHERE status = from делает
// запись атомарной: конкурентный переход оставит ноль затронутых строк.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + orderColumns + `
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID, from.String(), to.String()).Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.CustomerID,
		&orderDB.ShopID,
		&orderDB.ShopCity,
		&orderDB.ShopLatitude,
		&orderDB.ShopLongitude,
		&orderDB.DeliveryFee,
		&orderDB.Tip,
		&orderDB.CommissionAmount,
		&orderDB.CourierEarnings,
		&orderDB.PaymentStatus,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrStatusConflict
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) UpdateSettlementAmounts(ctx context.Context, orderID string, commissionAmount, courierEarnings float64) error {
	query := `
		UPDATE orders
		SET commission_amount = $2, courier_earnings = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, commissionAmount, courierEarnings)
	if err != nil {
		return fmt.Errorf("unexpected order repository settlement update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return orderservice.ErrOrderNotFound
	}

	return nil
}

// GetReadyCreatedBefore возвращает заказы в статусе ready без доставки и без
// ожидающих офферов. Используется фоновым повторным диспатчем.
func (r *Repository) GetReadyCreatedBefore(ctx context.Context, cursor time.Time, limit int) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.status = 'ready'
		  AND o.updated_at < $1
		  AND NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.order_id = o.id)
		  AND NOT EXISTS (SELECT 1 FROM delivery_requests dr WHERE dr.order_id = o.id AND dr.status = 'pending')
		ORDER BY o.updated_at ASC
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, cursor, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get ready error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.Status,
			&orderDB.CustomerID,
			&orderDB.ShopID,
			&orderDB.ShopCity,
			&orderDB.ShopLatitude,
			&orderDB.ShopLongitude,
			&orderDB.DeliveryFee,
			&orderDB.Tip,
			&orderDB.CommissionAmount,
			&orderDB.CourierEarnings,
			&orderDB.PaymentStatus,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(&orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}
