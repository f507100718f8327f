package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifications_published_total",
		Help: "Total number of notification events published to Kafka",
	},
	[]string{"event", "result"},
)
