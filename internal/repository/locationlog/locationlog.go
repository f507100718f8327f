package locationlog

import (
	"context"
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

// Repository пишет GPS-пинги курьеров в append-only журнал. Журнал никогда
// не обновляется, используется для аудита и реплея.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, location entities.CourierLocation) error {
	query := `
		INSERT INTO courier_location_log (courier_id, latitude, longitude, speed, heading, accuracy, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		location.CourierID,
		location.Latitude,
		location.Longitude,
		location.Speed,
		location.Heading,
		location.Accuracy,
		location.RecordedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected location log repository append error: %w", err)
	}

	return nil
}
