package commission

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dispatch/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetCurrentRate возвращает явную ставку сущности или nil, если переопределения нет.
func (r *Repository) GetCurrentRate(ctx context.Context, entityType entities.CommissionEntityType, entityID int64) (*float64, error) {
	query := `
		SELECT rate
		FROM commission_rates
		WHERE entity_type = $1 AND entity_id = $2
	`

	var rate float64
	err := r.querier.QueryRow(ctx, query, entityType.String(), entityID).Scan(&rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected commission repository get rate error: %w", err)
	}

	return &rate, nil
}

// UpsertRate записывает текущую ставку и возвращает предыдущее значение.
func (r *Repository) UpsertRate(ctx context.Context, entityType entities.CommissionEntityType, entityID int64, rate float64) (*float64, error) {
	oldRate, err := r.GetCurrentRate(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO commission_rates (entity_type, entity_id, rate, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (entity_type, entity_id)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = NOW()
	`

	_, err = r.querier.Exec(ctx, query, entityType.String(), entityID, rate)
	if err != nil {
		return nil, fmt.Errorf("unexpected commission repository upsert rate error: %w", err)
	}

	return oldRate, nil
}

// AppendRecord пишет строку аудита. Журнал только пополняется.
func (r *Repository) AppendRecord(ctx context.Context, record entities.CommissionRateRecord) (int64, error) {
	query := `
		INSERT INTO commission_rate_records (entity_type, entity_id, old_rate, new_rate, changed_by, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		record.EntityType.String(),
		record.EntityID,
		record.OldRate,
		record.NewRate,
		record.ChangedBy,
		record.Reason,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected commission repository append record error: %w", err)
	}

	return id, nil
}
