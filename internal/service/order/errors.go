package order

import "errors"

var (
	ErrInvalidOrderID           = errors.New("invalid order id")
	ErrOrderNotFound            = errors.New("order not found")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrForbidden                = errors.New("actor is not allowed to perform this transition")
	ErrStatusConflict           = errors.New("order status changed concurrently")
	ErrVerificationCodeRequired = errors.New("verification code required")
	ErrInvalidVerificationCode  = errors.New("invalid verification code")
	ErrDeliveryNotFound         = errors.New("delivery not found")
	ErrUndefinedStatus          = errors.New("undefined order status")
)
