package dispatch

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidCourierID(courierID int64) bool {
	return courierID > 0
}
