package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	courierservice "dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, phone, online, verified, city, latitude, longitude,
			location_updated_at, commission_rate, total_earnings, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, phone, online, verified, city)
		VALUES ($1, $2, COALESCE($3, false), COALESCE($4, false), $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.Online,
		courierModifyModel.Verified,
		courierModifyModel.City,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, courierservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	// опциональные поля
	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Online != nil {
		builder = builder.Set("online", courierModifyModel.Online)
	}
	if courierModifyModel.Verified != nil {
		builder = builder.Set("verified", courierModifyModel.Verified)
	}
	if courierModifyModel.City != nil {
		builder = builder.Set("city", courierModifyModel.City)
	}
	if courierModifyModel.CommissionRate != nil {
		builder = builder.Set("commission_rate", courierModifyModel.CommissionRate)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.Online,
		&courierModel.Verified,
		&courierModel.City,
		&courierModel.Latitude,
		&courierModel.Longitude,
		&courierModel.LocationUpdatedAt,
		&courierModel.CommissionRate,
		&courierModel.TotalEarnings,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierservice.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courierservice.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Phone,
		&courierModel.Online,
		&courierModel.Verified,
		&courierModel.City,
		&courierModel.Latitude,
		&courierModel.Longitude,
		&courierModel.LocationUpdatedAt,
		&courierModel.CommissionRate,
		&courierModel.TotalEarnings,
		&courierModel.CreatedAt,
		&courierModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierservice.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id`

	return r.queryCouriers(ctx, query)
}

// GetEligible возвращает кандидатов на назначение: онлайн, верифицирован,
// город совпадает, локация свежее окна устаревания, нет активной доставки.
func (r *Repository) GetEligible(ctx context.Context, city string, locationMaxAge time.Duration) ([]entities.Courier, error) {
	query := `
		SELECT ` + courierColumns + `
		FROM couriers c
		WHERE c.online = true
		  AND c.verified = true
		  AND c.city = $1
		  AND c.latitude IS NOT NULL
		  AND c.longitude IS NOT NULL
		  AND c.location_updated_at >= NOW() - make_interval(secs => $2)
		  AND NOT EXISTS (
			SELECT 1
			FROM deliveries d
			JOIN orders o ON o.id = d.order_id
			WHERE d.courier_id = c.id
			  AND o.status NOT IN ('delivered', 'cancelled')
		  )
	`

	return r.queryCouriers(ctx, query, city, locationMaxAge.Seconds())
}

// UpdateLocation — last-write-wins запись текущей позиции курьера.
func (r *Repository) UpdateLocation(ctx context.Context, courierID int64, latitude, longitude float64, at time.Time) error {
	query := `
		UPDATE couriers
		SET latitude = $2, longitude = $3, location_updated_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, courierID, latitude, longitude, at)
	if err != nil {
		return fmt.Errorf("unexpected courier repository update location error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return courierservice.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) IncrementEarnings(ctx context.Context, courierID int64, amount float64) error {
	query := `
		UPDATE couriers
		SET total_earnings = total_earnings + $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, courierID, amount)
	if err != nil {
		return fmt.Errorf("unexpected courier repository increment earnings error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return courierservice.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) queryCouriers(ctx context.Context, query string, args ...interface{}) ([]entities.Courier, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository query error: %w", err)
	}
	defer rows.Close()

	var couriers []entities.Courier
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Online,
			&courierModel.Verified,
			&courierModel.City,
			&courierModel.Latitude,
			&courierModel.Longitude,
			&courierModel.LocationUpdatedAt,
			&courierModel.CommissionRate,
			&courierModel.TotalEarnings,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository scan error: %w", err)
		}
		couriers = append(couriers, *ToDomain(&courierModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository rows error: %w", err)
	}

	return couriers, nil
}
