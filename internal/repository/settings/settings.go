package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DefaultCommissionRateKey — настройка со ставкой комиссии по умолчанию,
// применяемой когда у сущности нет явного переопределения.
const DefaultCommissionRateKey = "default_commission_rate"

var ErrSettingNotFound = errors.New("setting not found")

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

func (r *Repository) GetFloat(ctx context.Context, key string) (float64, error) {
	query := `
		SELECT value
		FROM settings
		WHERE key = $1
	`

	var raw string
	err := r.querier.QueryRow(ctx, query, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrSettingNotFound
		}
		return 0, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float setting %s=%q: %w", key, raw, err)
	}

	return value, nil
}
