package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OffersIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_offers_issued_total",
			Help: "Total number of delivery offers issued to couriers",
		},
		[]string{"mode"},
	)

	OfferResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_offer_responses_total",
			Help: "Total number of courier responses to delivery offers",
		},
		[]string{"outcome"},
	)

	OffersExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_offers_expired_total",
			Help: "Total number of delivery offers expired by the sweeper",
		},
	)

	NoCourierTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_no_courier_total",
			Help: "Total number of dispatch attempts that found no eligible courier",
		},
	)
)
