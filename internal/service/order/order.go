package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Order struct {
	repository   Repository
	deliveryRepo DeliveryRepository
	settlement   Settlement
	notifier     Notifier
	txManager    TxManager
}

func New(
	repository Repository,
	deliveryRepo DeliveryRepository,
	settlement Settlement,
	notifier Notifier,
	txManager TxManager,
) *Order {
	return &Order{
		repository:   repository,
		deliveryRepo: deliveryRepo,
		settlement:   settlement,
		notifier:     notifier,
		txManager:    txManager,
	}
}

type TransitionParams struct {
	VerificationCode string
}

// Transition валидирует ребро и роль, атомарно переводит заказ в target и
// выполняет побочные эффекты ребра (времена забора/вручения, расчёт на
// delivered). Частично применённый переход невозможен: всё в одной транзакции.
func (s *Order) Transition(ctx context.Context, orderID string, target entities.OrderStatusType, actor entities.Actor, params TransitionParams) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !CanTransition(current.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		if !roleAllowed(target, actor.Role) {
			return fmt.Errorf("%w: role %s, edge %s -> %s", ErrForbidden, actor.Role, current.Status, target)
		}

		var delivery *entities.Delivery
		if actor.Role == entities.RoleCourier || target == entities.OrderDelivered {
			delivery, err = s.deliveryRepo.GetByOrderID(ctx, orderID)
			if err != nil {
				return fmt.Errorf("get delivery: %w", err)
			}
		}

		// ребра жизненного цикла доставки ведёт только назначенный курьер
		if actor.Role == entities.RoleCourier && delivery.CourierID != actor.CourierID {
			return fmt.Errorf("%w: courier %d is not assigned to order %s", ErrForbidden, actor.CourierID, orderID)
		}

		if target == entities.OrderDelivered {
			if params.VerificationCode == "" {
				return ErrVerificationCodeRequired
			}
			if params.VerificationCode != delivery.VerificationCode {
				return ErrInvalidVerificationCode
			}
		}

		updated, err = s.repository.UpdateStatus(ctx, orderID, current.Status, target)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		now := time.Now().UTC()
		switch target {
		case entities.OrderPickedUp:
			if err := s.deliveryRepo.SetPickupTime(ctx, orderID, now); err != nil {
				return fmt.Errorf("set pickup time: %w", err)
			}
		case entities.OrderDelivered:
			if err := s.deliveryRepo.SetDeliveryTime(ctx, orderID, now); err != nil {
				return fmt.Errorf("set delivery time: %w", err)
			}
			if _, err := s.settlement.Settle(ctx, orderID); err != nil {
				return fmt.Errorf("settle delivery: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyOrderUpdate(ctx, updated)
	return updated, nil
}

// MarkAssigned — системный переход ready -> assigned при успешном матчинге.
func (s *Order) MarkAssigned(ctx context.Context, orderID string) (*entities.Order, error) {
	return s.Transition(ctx, orderID, entities.OrderAssigned, entities.SystemActor, TransitionParams{})
}

// Confirm — альтернативный путь подтверждения вручения кодом.
func (s *Order) Confirm(ctx context.Context, orderID, verificationCode string, actor entities.Actor) (*entities.Order, error) {
	return s.Transition(ctx, orderID, entities.OrderDelivered, actor, TransitionParams{
		VerificationCode: verificationCode,
	})
}

func (s *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

// ApplyExternalStatus применяет статус из внешнего события заказа от имени
// системы. Повтор события с уже текущим статусом — no-op.
func (s *Order) ApplyExternalStatus(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if !isKnownStatus(target) {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, target)
	}

	if target == entities.OrderCancelled {
		return s.Cancel(ctx, orderID, entities.SystemActor)
	}

	order, err := s.Transition(ctx, orderID, target, entities.SystemActor, TransitionParams{})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrStatusConflict) {
			current, getErr := s.repository.GetByID(ctx, orderID)
			if getErr == nil && current.Status == target {
				return current, nil
			}
		}
		return nil, err
	}
	return order, nil
}

// Cancel переводит заказ в cancelled от имени актора.
func (s *Order) Cancel(ctx context.Context, orderID string, actor entities.Actor) (*entities.Order, error) {
	order, err := s.Transition(ctx, orderID, entities.OrderCancelled, actor, TransitionParams{})
	if err != nil {
		// отмена уже отменённого — no-op для идемпотентности consumer'а событий
		if errors.Is(err, ErrInvalidTransition) {
			current, getErr := s.repository.GetByID(ctx, orderID)
			if getErr == nil && current.Status == entities.OrderCancelled {
				return current, nil
			}
		}
		return nil, err
	}
	return order, nil
}

func (s *Order) notifyOrderUpdate(ctx context.Context, order *entities.Order) {
	if order == nil {
		return
	}

	message := fmt.Sprintf("order %s is now %s", order.ID, order.Status)
	for _, userID := range []int64{order.CustomerID, order.ShopID} {
		// доставка уведомлений и ретраи — ответственность внешнего
		// коллаборатора; ошибки публикации логирует шлюз
		_ = s.notifier.Publish(ctx, entities.Notification{
			UserID:  userID,
			Event:   entities.NotificationOrderUpdate,
			OrderID: order.ID,
			Status:  order.Status.String(),
			Message: message,
			Payload: map[string]interface{}{
				"payment_status": order.PaymentStatus.String(),
			},
		})
	}
}
