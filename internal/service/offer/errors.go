package offer

import "errors"

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidCourierID     = errors.New("invalid courier id")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrOfferExpired         = errors.New("offer expired")
	ErrOfferAlreadyResolved = errors.New("offer already resolved")
)
