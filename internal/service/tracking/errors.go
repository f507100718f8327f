package tracking

import "errors"

var (
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidRoute       = errors.New("invalid route")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrTrackingInactive   = errors.New("tracking is not active for delivery")
)
