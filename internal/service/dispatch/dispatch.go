package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

const (
	offerModeExclusive = "exclusive"
	offerModeBroadcast = "broadcast"
)

type Config struct {
	// OfferTTL — время жизни эксклюзивного оффера.
	OfferTTL time.Duration
	// BroadcastTTL — время жизни офферов широковещательной волны.
	BroadcastTTL time.Duration
	// MaxExclusiveAttempts — сколько эксклюзивных попыток делаем до broadcast.
	MaxExclusiveAttempts int
	// LocationStalenessWindow — максимальный возраст геопозиции кандидата.
	LocationStalenessWindow time.Duration
	// AllowAcceptedOrders разрешает диспетчеризацию заказов в статусе accepted,
	// не дожидаясь ready.
	AllowAcceptedOrders bool
	// AvgCourierSpeedKmh используется для оценки ETA при назначении.
	AvgCourierSpeedKmh float64
}

type Dispatch struct {
	orders       OrderService
	orderRepo    OrderRepository
	offers       OfferService
	courierRepo  CourierRepository
	deliveryRepo DeliveryRepository
	codeFactory  CodeFactory
	notifier     Notifier
	txManager    TxManager
	cfg          Config
}

func New(
	orders OrderService,
	orderRepo OrderRepository,
	offers OfferService,
	courierRepo CourierRepository,
	deliveryRepo DeliveryRepository,
	codeFactory CodeFactory,
	notifier Notifier,
	txManager TxManager,
	cfg Config,
) *Dispatch {
	return &Dispatch{
		orders:       orders,
		orderRepo:    orderRepo,
		offers:       offers,
		courierRepo:  courierRepo,
		deliveryRepo: deliveryRepo,
		codeFactory:  codeFactory,
		notifier:     notifier,
		txManager:    txManager,
		cfg:          cfg,
	}
}

// Dispatch запускает первую волну матчинга: ближайший подходящий курьер
// получает эксклюзивный оффер с дедлайном.
func (d *Dispatch) Dispatch(ctx context.Context, orderID string) (*entities.DeliveryRequest, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		request   *entities.DeliveryRequest
		offeredTo int64
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.orders.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !d.dispatchable(order.Status) {
			return ErrOrderNotReady
		}

		exists, err := d.deliveryRepo.Exists(ctx, orderID)
		if err != nil {
			return fmt.Errorf("check delivery: %w", err)
		}
		if exists {
			return ErrOrderAlreadyAssigned
		}

		candidates, err := d.eligibleCandidates(ctx, order)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			NoCourierTotal.Inc()
			return ErrNoCourierAvailable
		}

		best := candidates[0]
		request, err = d.offers.CreateOffer(ctx, orderID, best.courier.ID, true, d.cfg.OfferTTL)
		if err != nil {
			return fmt.Errorf("create offer: %w", err)
		}
		offeredTo = best.courier.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	OffersIssuedTotal.WithLabelValues(offerModeExclusive).Inc()
	d.notifyNewDelivery(ctx, offeredTo, orderID, request.ExpiresAt)
	return request, nil
}

// Accept принимает оффер от имени курьера. Гонку одновременных принятий
// разрешает уникальный индекс доставок по заказу: проигравший получает
// исход already_assigned, а не ошибку.
func (d *Dispatch) Accept(ctx context.Context, orderID string, courierID int64) (*entities.Acceptance, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var (
		assignment *entities.DeliveryAssignment
		requestID  int64
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := d.offers.GetPendingOffer(ctx, orderID, courierID)
		if err != nil {
			return fmt.Errorf("get pending offer: %w", err)
		}
		requestID = request.ID

		exists, err := d.deliveryRepo.Exists(ctx, orderID)
		if err != nil {
			return fmt.Errorf("check delivery: %w", err)
		}
		if exists {
			return ErrOrderAlreadyAssigned
		}

		if _, err = d.offers.Respond(ctx, request.ID, entities.RequestAccepted); err != nil {
			return fmt.Errorf("respond offer: %w", err)
		}

		order, err := d.orders.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		code, err := d.codeFactory.Generate()
		if err != nil {
			return fmt.Errorf("generate verification code: %w", err)
		}

		deliveryModify := entities.DeliveryModify{
			OrderID:          &orderID,
			CourierID:        &courierID,
			DeliveryFee:      &order.DeliveryFee,
			VerificationCode: &code,
		}
		d.estimateRoute(ctx, order, courierID, &deliveryModify)

		delivery, err := d.deliveryRepo.Create(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if _, err = d.offers.Supersede(ctx, orderID, request.ID); err != nil {
			return fmt.Errorf("supersede offers: %w", err)
		}

		if _, err = d.orders.MarkAssigned(ctx, orderID); err != nil {
			return fmt.Errorf("mark order assigned: %w", err)
		}

		assignment = &entities.DeliveryAssignment{
			DeliveryID:       delivery.ID,
			OrderID:          delivery.OrderID,
			CourierID:        delivery.CourierID,
			VerificationCode: delivery.VerificationCode,
			AssignedAt:       delivery.CreatedAt,
		}
		if delivery.DistanceKm != nil {
			assignment.DistanceKm = *delivery.DistanceKm
		}
		if delivery.EtaMinutes != nil {
			assignment.EtaMinutes = *delivery.EtaMinutes
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOrderAlreadyAssigned) {
			return d.loseAcceptRace(ctx, requestID)
		}
		return nil, err
	}

	OfferResponsesTotal.WithLabelValues(entities.AcceptanceAssigned.String()).Inc()
	return &entities.Acceptance{
		Outcome:    entities.AcceptanceAssigned,
		Assignment: assignment,
	}, nil
}

// Reject отклоняет оффер курьером и сразу эскалирует заказ следующему
// кандидату.
func (d *Dispatch) Reject(ctx context.Context, orderID string, courierID int64) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidCourierID(courierID) {
		return ErrInvalidCourierID
	}

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := d.offers.GetPendingOffer(ctx, orderID, courierID)
		if err != nil {
			return fmt.Errorf("get pending offer: %w", err)
		}

		if _, err = d.offers.Respond(ctx, request.ID, entities.RequestRejected); err != nil {
			return fmt.Errorf("respond offer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	OfferResponsesTotal.WithLabelValues(entities.RequestRejected.String()).Inc()

	if err := d.Escalate(ctx, orderID); err != nil && !errors.Is(err, ErrNoCourierAvailable) {
		return fmt.Errorf("escalate after reject: %w", err)
	}
	return nil
}

// Sweep закрывает просроченные офферы и эскалирует затронутые заказы.
// Возвращает число истёкших офферов.
func (d *Dispatch) Sweep(ctx context.Context) (int, error) {
	orderIDs, err := d.offers.ExpireStale(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire stale offers: %w", err)
	}

	OffersExpiredTotal.Add(float64(len(orderIDs)))

	var escalateErr error
	for _, orderID := range orderIDs {
		if err := d.Escalate(ctx, orderID); err != nil && !errors.Is(err, ErrNoCourierAvailable) {
			escalateErr = errors.Join(escalateErr, fmt.Errorf("escalate order %s: %w", orderID, err))
		}
	}
	return len(orderIDs), escalateErr
}

// Escalate продолжает цепочку офферов: следующий эксклюзивный кандидат,
// пока не исчерпан лимит попыток, затем широковещательная волна.
func (d *Dispatch) Escalate(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	type issuedOffer struct {
		courierID int64
		expiresAt time.Time
	}

	var (
		issued []issuedOffer
		mode   string
	)

	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := d.deliveryRepo.Exists(ctx, orderID)
		if err != nil {
			return fmt.Errorf("check delivery: %w", err)
		}
		if exists {
			return nil
		}

		order, err := d.orders.GetOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !d.dispatchable(order.Status) {
			return nil
		}

		pending, err := d.offers.HasPending(ctx, orderID)
		if err != nil {
			return fmt.Errorf("check pending offers: %w", err)
		}
		if pending {
			return nil
		}

		candidates, err := d.eligibleCandidates(ctx, order)
		if err != nil {
			return err
		}

		offeredIDs, err := d.offers.GetOfferedCourierIDs(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get offered couriers: %w", err)
		}
		fresh := excludeOffered(candidates, offeredIDs)

		maxAttempt, err := d.offers.GetMaxAttempt(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get max attempt: %w", err)
		}

		switch {
		case maxAttempt < d.cfg.MaxExclusiveAttempts && len(fresh) > 0:
			mode = offerModeExclusive
			request, err := d.offers.CreateOffer(ctx, orderID, fresh[0].courier.ID, true, d.cfg.OfferTTL)
			if err != nil {
				return fmt.Errorf("create offer: %w", err)
			}
			issued = append(issued, issuedOffer{fresh[0].courier.ID, request.ExpiresAt})
		case len(candidates) > 0:
			// broadcast-волна предлагается всем подходящим, включая тех,
			// кто уже отказался на эксклюзивной фазе
			mode = offerModeBroadcast
			for _, c := range candidates {
				request, err := d.offers.CreateOffer(ctx, orderID, c.courier.ID, false, d.cfg.BroadcastTTL)
				if err != nil {
					return fmt.Errorf("create broadcast offer: %w", err)
				}
				issued = append(issued, issuedOffer{c.courier.ID, request.ExpiresAt})
			}
		default:
			NoCourierTotal.Inc()
			return ErrNoCourierAvailable
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, offer := range issued {
		OffersIssuedTotal.WithLabelValues(mode).Inc()
		d.notifyNewDelivery(ctx, offer.courierID, orderID, offer.expiresAt)
	}
	return nil
}

const retryBatchSize = 50

// RetryUnassigned перезапускает матчинг готовых заказов, оставшихся без
// доставки и без ожидающих офферов. olderThan отсекает заказы, по которым
// офферы могли только что закрыться.
func (d *Dispatch) RetryUnassigned(ctx context.Context, olderThan time.Time) (int, error) {
	orders, err := d.orderRepo.GetReadyCreatedBefore(ctx, olderThan, retryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("get unassigned orders: %w", err)
	}

	processed := 0
	var retryErr error
	for _, order := range orders {
		if err := d.Escalate(ctx, order.ID); err != nil {
			if errors.Is(err, ErrNoCourierAvailable) {
				continue
			}
			retryErr = errors.Join(retryErr, fmt.Errorf("escalate order %s: %w", order.ID, err))
			continue
		}
		processed++
	}
	return processed, retryErr
}

func (d *Dispatch) dispatchable(status entities.OrderStatusType) bool {
	if status == entities.OrderReady {
		return true
	}
	return d.cfg.AllowAcceptedOrders && status == entities.OrderAccepted
}

func (d *Dispatch) eligibleCandidates(ctx context.Context, order *entities.Order) ([]candidate, error) {
	shopPoint, err := geo.NewPoint(order.ShopLatitude, order.ShopLongitude)
	if err != nil {
		return nil, fmt.Errorf("shop coordinates: %w", err)
	}

	couriers, err := d.courierRepo.GetEligible(ctx, order.ShopCity, d.cfg.LocationStalenessWindow)
	if err != nil {
		return nil, fmt.Errorf("get eligible couriers: %w", err)
	}

	return rankCandidates(couriers, shopPoint), nil
}

func (d *Dispatch) estimateRoute(ctx context.Context, order *entities.Order, courierID int64, deliveryModify *entities.DeliveryModify) {
	courier, err := d.courierRepo.GetByID(ctx, courierID)
	if err != nil || courier.Latitude == nil || courier.Longitude == nil {
		return
	}

	courierPoint, err := geo.NewPoint(*courier.Latitude, *courier.Longitude)
	if err != nil {
		return
	}
	shopPoint, err := geo.NewPoint(order.ShopLatitude, order.ShopLongitude)
	if err != nil {
		return
	}

	distanceKm, err := geo.Distance(courierPoint, shopPoint)
	if err != nil {
		return
	}
	etaMinutes, err := geo.ETAMinutes(distanceKm, d.cfg.AvgCourierSpeedKmh)
	if err != nil {
		return
	}
	deliveryModify.DistanceKm = &distanceKm
	deliveryModify.EtaMinutes = &etaMinutes
}

// loseAcceptRace фиксирует проигрыш гонки: оффер помечается rejected в
// отдельной транзакции, т.к. исходная уже откатилась.
func (d *Dispatch) loseAcceptRace(ctx context.Context, requestID int64) (*entities.Acceptance, error) {
	if requestID != 0 {
		// оффер мог быть уже закрыт конкурентом, поэтому ошибку не поднимаем
		_ = d.txManager.Do(ctx, func(ctx context.Context) error {
			_, err := d.offers.Respond(ctx, requestID, entities.RequestRejected)
			return err
		})
	}

	OfferResponsesTotal.WithLabelValues(entities.AcceptanceAlreadyAssigned.String()).Inc()
	return &entities.Acceptance{Outcome: entities.AcceptanceAlreadyAssigned}, nil
}

func (d *Dispatch) notifyNewDelivery(ctx context.Context, courierID int64, orderID string, expiresAt time.Time) {
	// ошибки публикации логирует шлюз уведомлений
	_ = d.notifier.Publish(ctx, entities.Notification{
		UserID:  courierID,
		Event:   entities.NotificationNewDelivery,
		OrderID: orderID,
		Message: fmt.Sprintf("new delivery offer for order %s", orderID),
		Payload: map[string]interface{}{
			"expires_at": expiresAt.UTC().Format(time.RFC3339),
		},
	})
}
