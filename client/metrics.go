package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 请求结果分类标签
const (
	outcomeSuccess   = "success"
	outcomeBusiness  = "business_error"
	outcomeTransport = "transport_error"
)

// Metrics 请求客户端指标
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics 创建并注册请求客户端指标
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "travel",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Total number of client requests by method, path and outcome.",
		}, []string{"method", "path", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "travel",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Client request duration in seconds, retries included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// observe 记录一次请求的结果和耗时
func (m *Metrics) observe(method, path, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, path, outcome).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
