package entities

import "time"

const (
	NotificationNewDelivery = "new_delivery"
	NotificationOrderUpdate = "order_update"
)

// Notification — исходящее событие для внешнего диспетчера уведомлений.
// Доставка до клиента и ретраи остаются на стороне коллаборатора.
type Notification struct {
	ID        string
	UserID    int64
	Event     string
	OrderID   string
	Status    string
	Message   string
	Payload   map[string]interface{}
	CreatedAt time.Time
}
