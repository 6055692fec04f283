package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exported by the server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry    *prometheus.Registry
	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	splits      *prometheus.CounterVec
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vasooly",
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "vasooly",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vasooly",
			Name:      "splits_total",
			Help:      "Computed splits, labelled by whether the total divided evenly.",
		}, []string{"exact"}),
	}
	reg.MustRegister(m.rpcRequests, m.rpcDuration, m.splits)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSplit counts one computed split.
func (m *Metrics) ObserveSplit(exact bool) {
	if m == nil {
		return
	}
	m.splits.WithLabelValues(strconv.FormatBool(exact)).Inc()
}

// Interceptor returns a Connect interceptor recording call counts and latency.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			if m != nil {
				procedure := req.Spec().Procedure
				code := "ok"
				if err != nil {
					code = connect.CodeOf(err).String()
				}
				m.rpcRequests.WithLabelValues(procedure, code).Inc()
				m.rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			}

			return resp, err
		}
	}
}
