package order_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	dispatchservice "dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
)

type DispatchService interface {
	Dispatch(ctx context.Context, orderID string) (*entities.DeliveryRequest, error)
}

type OfferService interface {
	Supersede(ctx context.Context, orderID string, winnerRequestID int64) (int64, error)
}

// StatusHandlerFactory выдаёт побочный эффект статуса, выполняемый после
// применения внешнего события к заказу.
type StatusHandlerFactory struct {
	dispatchService DispatchService
	offerService    OfferService
}

func NewStatusHandlerFactory(dispatchService DispatchService, offerService OfferService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		dispatchService: dispatchService,
		offerService:    offerService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderReady:
		return f.readyHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderPlaced, entities.OrderAccepted, entities.OrderAssigned,
		entities.OrderEnRouteToPickup, entities.OrderPickedUp,
		entities.OrderOutForDelivery, entities.OrderDelivered:
		return f.nopHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// readyHandler запускает матчинг курьера для готового заказа. Отсутствие
// кандидатов не ошибка: заказ подберёт фоновая задача повторного диспатча.
func (f *StatusHandlerFactory) readyHandler(ctx context.Context, orderID string) error {
	_, err := f.dispatchService.Dispatch(ctx, orderID)
	if err != nil {
		if errors.Is(err, dispatchservice.ErrNoCourierAvailable) ||
			errors.Is(err, dispatchservice.ErrOrderAlreadyAssigned) {
			return nil
		}
		return fmt.Errorf("dispatch ready order %s: %w", orderID, err)
	}
	return nil
}

// cancelledHandler отзывает все незакрытые офферы отменённого заказа.
func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	if _, err := f.offerService.Supersede(ctx, orderID, 0); err != nil {
		return fmt.Errorf("release offers for cancelled order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) nopHandler(context.Context, string) error {
	return nil
}
