package settlement

import (
	"context"
	"fmt"
	"math"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/repository/settings"
)

type Settlement struct {
	orderRepo      OrderRepository
	deliveryRepo   DeliveryRepository
	courierRepo    CourierRepository
	commissionRepo CommissionRepository
	settingsRepo   SettingsRepository
	txManager      TxManager
}

func New(
	orderRepo OrderRepository,
	deliveryRepo DeliveryRepository,
	courierRepo CourierRepository,
	commissionRepo CommissionRepository,
	settingsRepo SettingsRepository,
	txManager TxManager,
) *Settlement {
	return &Settlement{
		orderRepo:      orderRepo,
		deliveryRepo:   deliveryRepo,
		courierRepo:    courierRepo,
		commissionRepo: commissionRepo,
		settingsRepo:   settingsRepo,
		txManager:      txManager,
	}
}

// Calculate считает комиссию и заработок партнёра по завершённой доставке.
// Чаевые в комиссионную базу не входят и целиком достаются курьеру.
func Calculate(deliveryFee, tip, ratePercent float64) (commission, earnings float64) {
	commission = round2(deliveryFee * ratePercent / 100)
	earnings = round2(deliveryFee - commission + tip)
	return commission, earnings
}

// Settle выполняет одноразовый расчёт по доставке заказа. Повторный вызов
// возвращает уже зафиксированные суммы без изменений в БД.
func (s *Settlement) Settle(ctx context.Context, orderID string) (*entities.Settlement, error) {
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}

	var result *entities.Settlement

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		order, err := s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		courier, err := s.courierRepo.GetByID(ctx, delivery.CourierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		rate, err := s.resolveCourierRate(ctx, courier)
		if err != nil {
			return fmt.Errorf("resolve commission rate: %w", err)
		}

		commission, earnings := Calculate(delivery.DeliveryFee, order.Tip, rate)
		settledAt := time.Now().UTC()

		settled, err := s.deliveryRepo.SettleOnce(ctx, orderID, commission, earnings, settledAt)
		if err != nil {
			return fmt.Errorf("settle delivery: %w", err)
		}
		if !settled {
			// расчёт уже выполнен раньше, отдаём сохранённые суммы
			result = &entities.Settlement{
				OrderID:          delivery.OrderID,
				CourierID:        delivery.CourierID,
				DeliveryFee:      delivery.DeliveryFee,
				Tip:              order.Tip,
				RatePercent:      rate,
				CommissionAmount: delivery.CommissionAmount,
				PartnerEarnings:  delivery.PartnerEarnings,
			}
			if delivery.SettledAt != nil {
				result.SettledAt = *delivery.SettledAt
			}
			return nil
		}

		if err = s.courierRepo.IncrementEarnings(ctx, delivery.CourierID, earnings); err != nil {
			return fmt.Errorf("increment courier earnings: %w", err)
		}

		if err = s.orderRepo.UpdateSettlementAmounts(ctx, orderID, commission, earnings); err != nil {
			return fmt.Errorf("update order settlement amounts: %w", err)
		}

		result = &entities.Settlement{
			OrderID:          delivery.OrderID,
			CourierID:        delivery.CourierID,
			DeliveryFee:      delivery.DeliveryFee,
			Tip:              order.Tip,
			RatePercent:      rate,
			CommissionAmount: commission,
			PartnerEarnings:  earnings,
			SettledAt:        settledAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetCourierRate задаёт персональную ставку курьера и пишет запись аудита.
func (s *Settlement) SetCourierRate(ctx context.Context, courierID int64, rate float64, changedBy, reason string) (*entities.CommissionRateRecord, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if !isValidRate(rate) {
		return nil, ErrInvalidRate
	}

	var record entities.CommissionRateRecord

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.courierRepo.GetByID(ctx, courierID); err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		oldRate, err := s.commissionRepo.UpsertRate(ctx, entities.CommissionEntityCourier, courierID, rate)
		if err != nil {
			return fmt.Errorf("upsert rate: %w", err)
		}

		courierModify := entities.CourierModify{
			ID:             &courierID,
			CommissionRate: &rate,
		}
		if _, err = s.courierRepo.Update(ctx, courierModify); err != nil {
			return fmt.Errorf("update courier rate: %w", err)
		}

		record = entities.CommissionRateRecord{
			EntityType: entities.CommissionEntityCourier,
			EntityID:   courierID,
			OldRate:    oldRate,
			NewRate:    rate,
			ChangedBy:  changedBy,
			Reason:     reason,
			CreatedAt:  time.Now().UTC(),
		}
		record.ID, err = s.commissionRepo.AppendRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("append rate record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SetVendorRate задаёт ставку магазина и пишет запись аудита.
func (s *Settlement) SetVendorRate(ctx context.Context, vendorID int64, rate float64, changedBy, reason string) (*entities.CommissionRateRecord, error) {
	if vendorID <= 0 {
		return nil, ErrInvalidVendorID
	}
	if !isValidRate(rate) {
		return nil, ErrInvalidRate
	}

	var record entities.CommissionRateRecord

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		oldRate, err := s.commissionRepo.UpsertRate(ctx, entities.CommissionEntityVendor, vendorID, rate)
		if err != nil {
			return fmt.Errorf("upsert rate: %w", err)
		}

		record = entities.CommissionRateRecord{
			EntityType: entities.CommissionEntityVendor,
			EntityID:   vendorID,
			OldRate:    oldRate,
			NewRate:    rate,
			ChangedBy:  changedBy,
			Reason:     reason,
			CreatedAt:  time.Now().UTC(),
		}
		record.ID, err = s.commissionRepo.AppendRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("append rate record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// resolveCourierRate выбирает ставку: персональная из реестра, затем поле
// курьера, затем значение по умолчанию из настроек.
func (s *Settlement) resolveCourierRate(ctx context.Context, courier *entities.Courier) (float64, error) {
	override, err := s.commissionRepo.GetCurrentRate(ctx, entities.CommissionEntityCourier, courier.ID)
	if err != nil {
		return 0, err
	}
	if override != nil {
		return *override, nil
	}

	if courier.CommissionRate != nil {
		return *courier.CommissionRate, nil
	}

	return s.settingsRepo.GetFloat(ctx, settings.DefaultCommissionRateKey)
}

func isValidRate(rate float64) bool {
	return rate >= 0 && rate <= 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
