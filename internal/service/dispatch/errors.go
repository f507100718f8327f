package dispatch

import "errors"

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidCourierID    = errors.New("invalid courier id")
	ErrOrderNotReady       = errors.New("order is not ready for dispatch")
	ErrOrderAlreadyAssigned = errors.New("order already has an assigned courier")
	ErrNoCourierAvailable  = errors.New("no eligible courier available")
	ErrDeliveryNotFound    = errors.New("delivery not found")
)
