package dispatch_retry

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	RetryUnassigned(ctx context.Context, olderThan time.Time) (int, error)
}

// DispatchRetry добирает готовые заказы, оставшиеся без курьера: после
// отказов, истечений и периодов без подходящих кандидатов.
type DispatchRetry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	grace    time.Duration
}

func NewDispatchRetry(log logger.Logger, service Service, interval, grace time.Duration) *DispatchRetry {
	return &DispatchRetry{
		log:      log,
		service:  service,
		interval: interval,
		grace:    grace,
	}
}

func (d *DispatchRetry) TTL() time.Duration {
	return d.interval
}

func (d *DispatchRetry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	olderThan := time.Now().UTC().Add(-d.grace)
	processed, err := d.service.RetryUnassigned(ctxWithTimeout, olderThan)

	if processed > 0 {
		d.log.With(
			logger.NewField("orders", processed),
		).Info("dispatch retry")
	}

	return err
}

func (d *DispatchRetry) Info() string {
	return "dispatch retry"
}
