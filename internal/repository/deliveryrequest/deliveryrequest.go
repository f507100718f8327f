package deliveryrequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	dispatchservice "dispatch/internal/service/dispatch"
	offerservice "dispatch/internal/service/offer"
)

const requestColumns = `id, order_id, courier_id, status, attempt_number, is_exclusive, expires_at, responded_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create добавляет оффер с номером попытки MAX+1 по заказу. Подзапрос и
// вставка выполняются одним стейтментом, монотонность закрыта сериализуемой
// транзакцией вызывающего.
func (r *Repository) Create(ctx context.Context, orderID string, courierID int64, isExclusive bool, expiresAt time.Time) (*entities.DeliveryRequest, error) {
	query := `
		INSERT INTO delivery_requests (order_id, courier_id, status, attempt_number, is_exclusive, expires_at)
		SELECT $1, $2, 'pending',
			COALESCE((SELECT MAX(attempt_number) FROM delivery_requests WHERE order_id = $1), 0) + 1,
			$3, $4
		RETURNING ` + requestColumns + `
	`

	var requestDB DeliveryRequestDB
	err := r.querier.QueryRow(ctx, query, orderID, courierID, isExclusive, expiresAt).Scan(r.scanTargets(&requestDB)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository create error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) GetByID(ctx context.Context, requestID int64) (*entities.DeliveryRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE id = $1
	`

	var requestDB DeliveryRequestDB
	err := r.querier.QueryRow(ctx, query, requestID).Scan(r.scanTargets(&requestDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offerservice.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected delivery request repository get error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) GetPendingByOrderAndCourier(ctx context.Context, orderID string, courierID int64) (*entities.DeliveryRequest, error) {
	query := `
		SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE order_id = $1 AND courier_id = $2 AND status = 'pending'
		ORDER BY attempt_number DESC
		LIMIT 1
	`

	var requestDB DeliveryRequestDB
	err := r.querier.QueryRow(ctx, query, orderID, courierID).Scan(r.scanTargets(&requestDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, offerservice.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected delivery request repository get pending error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

// MarkResponded переводит оффер из pending в терминальный статус. Ноль
// затронутых строк означает, что оффер уже разрешён другим путём. Частичный
// уникальный индекс по accepted ловит проигравшего в гонке одновременных
// принятий ещё до вставки доставки.
func (r *Repository) MarkResponded(ctx context.Context, requestID int64, status entities.DeliveryRequestStatus, at time.Time) error {
	query := `
		UPDATE delivery_requests
		SET status = $2, responded_at = $3
		WHERE id = $1 AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, requestID, status.String(), at)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return dispatchservice.ErrOrderAlreadyAssigned
		}
		return fmt.Errorf("unexpected delivery request repository mark responded error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return offerservice.ErrOfferAlreadyResolved
	}

	return nil
}

// RejectOtherPending закрывает все прочие ожидающие офферы заказа после
// финализации победителя.
func (r *Repository) RejectOtherPending(ctx context.Context, orderID string, winnerRequestID int64, at time.Time) (int64, error) {
	query := `
		UPDATE delivery_requests
		SET status = 'rejected', responded_at = $3
		WHERE order_id = $1 AND id != $2 AND status = 'pending'
	`

	result, err := r.querier.Exec(ctx, query, orderID, winnerRequestID, at)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery request repository reject others error: %w", err)
	}

	return result.RowsAffected(), nil
}

// ExpireStale переводит просроченные pending-офферы в expired и возвращает
// затронутые заказы для эскалации.
func (r *Repository) ExpireStale(ctx context.Context, now time.Time) ([]string, error) {
	query := `
		UPDATE delivery_requests
		SET status = 'expired', responded_at = $1
		WHERE status = 'pending' AND expires_at < $1
		RETURNING order_id
	`

	rows, err := r.querier.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository expire error: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]struct{})
	var orderIDs []string
	for rows.Next() {
		var orderID string
		if err := rows.Scan(&orderID); err != nil {
			return nil, fmt.Errorf("unexpected delivery request repository scan error: %w", err)
		}
		if _, ok := seen[orderID]; ok {
			continue
		}
		seen[orderID] = struct{}{}
		orderIDs = append(orderIDs, orderID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository rows error: %w", err)
	}

	return orderIDs, nil
}

func (r *Repository) GetOfferedCourierIDs(ctx context.Context, orderID string) ([]int64, error) {
	query := `
		SELECT DISTINCT courier_id
		FROM delivery_requests
		WHERE order_id = $1
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository offered couriers error: %w", err)
	}
	defer rows.Close()

	var courierIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected delivery request repository scan error: %w", err)
		}
		courierIDs = append(courierIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery request repository rows error: %w", err)
	}

	return courierIDs, nil
}

func (r *Repository) GetMaxAttempt(ctx context.Context, orderID string) (int, error) {
	query := `
		SELECT COALESCE(MAX(attempt_number), 0)
		FROM delivery_requests
		WHERE order_id = $1
	`

	var maxAttempt int
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&maxAttempt)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery request repository max attempt error: %w", err)
	}

	return maxAttempt, nil
}

func (r *Repository) HasPending(ctx context.Context, orderID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM delivery_requests WHERE order_id = $1 AND status = 'pending')
	`

	var hasPending bool
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&hasPending)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery request repository has pending error: %w", err)
	}

	return hasPending, nil
}

func (r *Repository) scanTargets(d *DeliveryRequestDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.OrderID,
		&d.CourierID,
		&d.Status,
		&d.AttemptNumber,
		&d.IsExclusive,
		&d.ExpiresAt,
		&d.RespondedAt,
		&d.CreatedAt,
	}
}
