package offer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/entities"
)

// Offer — журнал офферов (DeliveryRequest): по строке на каждую попытку
// предложить заказ курьеру. Номера попыток строго возрастают с единицы,
// принятым может стать не больше одного оффера на заказ.
type Offer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Offer {
	return &Offer{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Offer) CreateOffer(ctx context.Context, orderID string, courierID int64, isExclusive bool, ttl time.Duration) (*entities.DeliveryRequest, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	expiresAt := time.Now().UTC().Add(ttl)
	request, err := s.repository.Create(ctx, orderID, courierID, isExclusive, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	return request, nil
}

// Respond разрешает оффер. Срок проверяется по часам в момент ответа, а не
// только фоновой зачисткой: принять просроченный оффер нельзя, даже если
// sweep ещё не прошёл.
func (s *Offer) Respond(ctx context.Context, requestID int64, status entities.DeliveryRequestStatus) (*entities.DeliveryRequest, error) {
	var request *entities.DeliveryRequest

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		request, err = s.repository.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}

		if request.Status != entities.RequestPending {
			return ErrOfferAlreadyResolved
		}

		now := time.Now().UTC()
		if status == entities.RequestAccepted && request.IsExpired(now) {
			if err := s.repository.MarkResponded(ctx, requestID, entities.RequestExpired, now); err != nil {
				return fmt.Errorf("expire offer: %w", err)
			}
			return ErrOfferExpired
		}

		if err := s.repository.MarkResponded(ctx, requestID, status, now); err != nil {
			return fmt.Errorf("mark offer responded: %w", err)
		}

		request.Status = status
		request.RespondedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (s *Offer) GetPendingOffer(ctx context.Context, orderID string, courierID int64) (*entities.DeliveryRequest, error) {
	request, err := s.repository.GetPendingByOrderAndCourier(ctx, orderID, courierID)
	if err != nil {
		return nil, fmt.Errorf("get pending offer: %w", err)
	}
	return request, nil
}

// Supersede отклоняет все прочие ожидающие офферы заказа после победителя.
func (s *Offer) Supersede(ctx context.Context, orderID string, winnerRequestID int64) (int64, error) {
	rejected, err := s.repository.RejectOtherPending(ctx, orderID, winnerRequestID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("supersede offers: %w", err)
	}
	return rejected, nil
}

// ExpireStale переводит просроченные pending-офферы в expired и возвращает
// заказы, которым нужна эскалация.
func (s *Offer) ExpireStale(ctx context.Context) ([]string, error) {
	orderIDs, err := s.repository.ExpireStale(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("expire stale offers: %w", err)
	}
	return orderIDs, nil
}

func (s *Offer) GetOfferedCourierIDs(ctx context.Context, orderID string) ([]int64, error) {
	return s.repository.GetOfferedCourierIDs(ctx, orderID)
}

func (s *Offer) GetMaxAttempt(ctx context.Context, orderID string) (int, error) {
	return s.repository.GetMaxAttempt(ctx, orderID)
}

func (s *Offer) HasPending(ctx context.Context, orderID string) (bool, error) {
	return s.repository.HasPending(ctx, orderID)
}
