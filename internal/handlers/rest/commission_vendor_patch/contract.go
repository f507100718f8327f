//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=commission_vendor_patch_test
package commission_vendor_patch

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetVendorRate(ctx context.Context, vendorID int64, rate float64, changedBy, reason string) (*entities.CommissionRateRecord, error)
}
