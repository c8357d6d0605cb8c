package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ItemsReportedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_items_reported_total",
		Help: "Total number of lost/found items successfully reported.",
	})

	ClaimsFiledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_claims_filed_total",
		Help: "Total number of claims successfully filed.",
	})

	ClaimsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_claims_accepted_total",
		Help: "Total number of claims resolved as accepted.",
	})

	ClaimsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_claims_rejected_total",
		Help: "Total number of claims resolved as rejected.",
	})

	ClaimsExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lostfound_claims_expired_total",
		Help: "Total number of claims reverted by the expiry sweep.",
	})

	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_notifications_sent_total",
		Help: "Total number of notification emails dispatched, by template.",
	},
		[]string{"template"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lostfound_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ItemCacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lostfound_item_cache_entries",
		Help: "Current number of items held in the open-item cache.",
	})
)
