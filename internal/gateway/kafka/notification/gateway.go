package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// NotificationGateway публикует события для внешнего диспетчера уведомлений.
// Доставка до пользователя (push, sms) — ответственность потребителя топика.
type NotificationGateway struct {
	producer producer
	log      logger.Logger
	topic    string
}

func New(log logger.Logger, producer producer, topic string) *NotificationGateway {
	return &NotificationGateway{
		producer: producer,
		log:      log.With(logger.NewField("topic", topic)),
		topic:    topic,
	}
}

type notificationMessage struct {
	ID        string                 `json:"id"`
	UserID    int64                  `json:"user_id"`
	Event     string                 `json:"event"`
	OrderID   string                 `json:"order_id,omitempty"`
	Status    string                 `json:"status,omitempty"`
	Message   string                 `json:"message,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

func (g *NotificationGateway) Publish(_ context.Context, n entities.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(notificationMessage{
		ID:        n.ID,
		UserID:    n.UserID,
		Event:     n.Event,
		OrderID:   n.OrderID,
		Status:    n.Status,
		Message:   n.Message,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		NotificationsPublishedTotal.WithLabelValues(n.Event, resultError).Inc()
		return fmt.Errorf("marshal notification: %w", err)
	}

	// ключ по заказу сохраняет порядок событий одного заказа в партиции
	_, _, err = g.producer.Send(g.topic, n.OrderID, value)
	if err != nil {
		NotificationsPublishedTotal.WithLabelValues(n.Event, resultError).Inc()
		g.log.With(
			logger.NewField("event", n.Event),
			logger.NewField("order", n.OrderID),
			logger.NewField("user", n.UserID),
			logger.NewField("error", err),
		).Error("failed to publish notification")
		return fmt.Errorf("publish notification: %w", err)
	}

	NotificationsPublishedTotal.WithLabelValues(n.Event, resultOK).Inc()
	return nil
}
