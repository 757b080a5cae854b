package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector 指标收集器
type MetricsCollector struct {
	// HTTP 指标
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpResponseSize    *prometheus.HistogramVec

	// 存储指标
	storeErrorsTotal *prometheus.CounterVec

	// 业务指标
	identityLookupFailures prometheus.Counter
	bestEffortFailures     *prometheus.CounterVec
	imagesUploadedTotal    *prometheus.CounterVec
}

// NewMetricsCollector 创建指标收集器
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func NewMetricsCollector(reg prometheus.Registerer) *MetricsCollector {
	factory := promauto.With(reg)
	return &MetricsCollector{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		httpResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "endpoint"},
		),

		storeErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_errors_total",
				Help: "Total number of failed store operations",
			},
			[]string{"operation"},
		),

		identityLookupFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "identity_lookup_failures_total",
				Help: "Batched identity lookups that failed and resolved to no identities",
			},
		),

		bestEffortFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "best_effort_failures_total",
				Help: "Secondary writes that failed without failing the request",
			},
			[]string{"operation"},
		),

		imagesUploadedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "images_uploaded_total",
				Help: "Images sent to the media service",
			},
			[]string{"result"},
		),
	}
}

// RecordHTTPRequest 记录 HTTP 请求指标
func (m *MetricsCollector) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration, responseSize int) {
	m.httpRequestsTotal.WithLabelValues(method, endpoint, getStatusCategory(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	if responseSize > 0 {
		m.httpResponseSize.WithLabelValues(method, endpoint).Observe(float64(responseSize))
	}
}

// RecordStoreError 记录存储错误
func (m *MetricsCollector) RecordStoreError(operation string) {
	m.storeErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordIdentityLookupFailure 记录身份批量查询失败
func (m *MetricsCollector) RecordIdentityLookupFailure() {
	m.identityLookupFailures.Inc()
}

// RecordBestEffortFailure 记录被忽略的次要写入失败
func (m *MetricsCollector) RecordBestEffortFailure(operation string) {
	m.bestEffortFailures.WithLabelValues(operation).Inc()
}

// RecordImageUpload 记录图片上传结果
func (m *MetricsCollector) RecordImageUpload(success bool) {
	result := "success"
	if !success {
		result = "error"
	}
	m.imagesUploadedTotal.WithLabelValues(result).Inc()
}

// getStatusCategory 获取状态分类
func getStatusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 300 && status < 400:
		return "3xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
