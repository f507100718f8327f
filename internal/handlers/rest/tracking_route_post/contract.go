//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_route_post_test
package tracking_route_post

import (
	"context"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateRoute(ctx context.Context, orderID, routePolyline string, distanceKm float64, etaMinutes int) error
}
