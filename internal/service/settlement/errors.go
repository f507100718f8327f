package settlement

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidVendorID  = errors.New("invalid vendor id")
	ErrInvalidRate      = errors.New("commission rate must be between 0 and 100")
)
