package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "flash_coupon"

// Metrics holds every collector the service exports. A nil *Metrics records nothing.
type Metrics struct {
	allocations        *prometheus.CounterVec
	allocationDuration prometheus.Histogram
	ledgerAppends      *prometheus.CounterVec
	queueDepth         prometheus.Gauge
	reconcileRuns      *prometheus.CounterVec
	reconcileSynced    prometheus.Counter
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocation attempts by outcome.",
		}, []string{"outcome"}),
		allocationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "allocation_duration_seconds",
			Help:      "Latency of one allocation attempt including the Redis script.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		ledgerAppends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_appends_total",
			Help:      "Ledger append attempts by result.",
		}, []string{"result"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_queue_depth",
			Help:      "Issuance requests waiting for a ledger worker.",
		}),
		reconcileRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_runs_total",
			Help:      "Reconcile passes by result.",
		}, []string{"result"}),
		reconcileSynced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_synced_offers_total",
			Help:      "Offers whose Redis counter was rewritten by reconcile.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	collectors := []prometheus.Collector{
		m.allocations, m.allocationDuration, m.ledgerAppends, m.queueDepth,
		m.reconcileRuns, m.reconcileSynced, m.httpRequests, m.httpDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) ObserveAllocation(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.allocations.WithLabelValues(outcome).Inc()
	m.allocationDuration.Observe(d.Seconds())
}

// Ledger append results.
const (
	AppendOK        = "ok"
	AppendDuplicate = "duplicate"
	AppendRetry     = "retry"
	AppendDropped   = "dropped"
	AppendRejected  = "rejected"
)

func (m *Metrics) LedgerAppend(result string) {
	if m == nil {
		return
	}
	m.ledgerAppends.WithLabelValues(result).Inc()
}

func (m *Metrics) SetQueueDepth(n int) {
	if m == nil {
		return
	}
	m.queueDepth.Set(float64(n))
}

func (m *Metrics) ReconcileRun(synced int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.reconcileRuns.WithLabelValues("error").Inc()
		return
	}
	m.reconcileRuns.WithLabelValues("ok").Inc()
	m.reconcileSynced.Add(float64(synced))
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
