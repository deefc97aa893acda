package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bank_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Operator Metrics
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_operator_actions_total",
			Help: "Total number of actions performed by the operator",
		},
		[]string{"action", "status"},
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bank_operator_action_duration_seconds",
			Help:    "Time an action held the registry write lock",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"action"},
	)

	// Transaction Metrics
	TransactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_transactions_recorded_total",
			Help: "Total number of transactions recorded in the ledger",
		},
		[]string{"type"},
	)

	TransactionAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bank_transaction_amount",
			Help:    "Recorded transaction amounts",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
		},
		[]string{"type"},
	)

	// Account Metrics
	AccountsOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_accounts_opened_total",
			Help: "Total number of accounts opened",
		},
		[]string{"type"},
	)

	EndOfMonthCharged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bank_end_of_month_amount_total",
			Help: "Interest credited and fees charged by end-of-month processing",
		},
		[]string{"kind"},
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, status int, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordAction records one operator action and how long it ran.
func RecordAction(action string, err error, duration float64) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailed
	}
	ActionsTotal.WithLabelValues(action, status).Inc()
	ActionDuration.WithLabelValues(action).Observe(duration)
}

// RecordTransaction records a ledger entry
func RecordTransaction(txnType string, amount decimal.Decimal) {
	TransactionsRecorded.WithLabelValues(txnType).Inc()
	TransactionAmount.WithLabelValues(txnType).Observe(amount.InexactFloat64())
}

func RecordAccountOpened(accountType string) {
	AccountsOpened.WithLabelValues(accountType).Inc()
}

// RecordEndOfMonth adds the interest and fees of one end-of-month run.
// Counters only move forward, so non-positive totals are not recorded.
func RecordEndOfMonth(interest, fees decimal.Decimal) {
	if interest.IsPositive() {
		EndOfMonthCharged.WithLabelValues("interest").Add(interest.InexactFloat64())
	}
	if fees.IsPositive() {
		EndOfMonthCharged.WithLabelValues("fees").Add(fees.InexactFloat64())
	}
}
