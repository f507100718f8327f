package offer_sweep

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	Sweep(ctx context.Context) (int, error)
}

// OfferSweep закрывает просроченные офферы и эскалирует затронутые заказы.
type OfferSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferSweep(log logger.Logger, service Service, interval time.Duration) *OfferSweep {
	return &OfferSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferSweep) TTL() time.Duration {
	return o.interval
}

func (o *OfferSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	expired, err := o.service.Sweep(ctxWithTimeout)

	if expired > 0 {
		o.log.With(
			logger.NewField("expired_offers", expired),
		).Info("offer sweep")
	}

	return err
}

func (o *OfferSweep) Info() string {
	return "offer sweep"
}
