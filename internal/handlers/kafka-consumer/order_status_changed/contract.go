package order_status_changed

import (
	"context"

	"dispatch/internal/entities"
	orderservice "dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderService interface {
	ApplyExternalStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
}

type StatusHandlerFactory interface {
	GetHandler(status entities.OrderStatusType) (orderservice.ExecuteFn, error)
}

// statusEvent — сообщение топика order.status.changed.
type statusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}
