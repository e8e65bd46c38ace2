package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the bid admission pipeline.
var (
	BidsSubmittedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bids_submitted_total",
			Help: "Total number of bid submissions accepted into the pending queue",
		},
	)

	BidsDuplicateTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bids_duplicate_total",
			Help: "Total number of submissions resolved by idempotency key to an existing bid",
		},
	)

	BidsDecidedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bids_decided_total",
			Help: "Total number of decided bids by outcome and decider",
		},
		[]string{"outcome", "decided_by"},
	)

	DecisionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bid_decision_duration_seconds",
			Help:    "Duration of one serialized moderation step including cascade",
			Buckets: prometheus.DefBuckets,
		},
	)

	ConnectedClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "room_connected_clients",
			Help: "Number of currently connected websocket clients",
		},
	)

	PendingBids = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "auction_pending_bids",
			Help: "Number of undecided bids per auction",
		},
		[]string{"auction_id"},
	)

	DepositChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deposit_eligibility_checks_total",
			Help: "Total deposit gate checks by result",
		},
		[]string{"result"},
	)
)

// Register registers all Prometheus metrics.
func Register() {
	prometheus.MustRegister(BidsSubmittedTotal)
	prometheus.MustRegister(BidsDuplicateTotal)
	prometheus.MustRegister(BidsDecidedTotal)
	prometheus.MustRegister(DecisionDuration)
	prometheus.MustRegister(ConnectedClients)
	prometheus.MustRegister(PendingBids)
	prometheus.MustRegister(DepositChecksTotal)
}
