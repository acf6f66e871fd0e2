package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "greenbench"

// Metrics is the set of collectors the dashboard exports.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BackendCalls    *prometheus.CounterVec
	Fallbacks       *prometheus.CounterVec
	FootprintPolls  *prometheus.CounterVec
	DataSource      *prometheus.GaugeVec
	FootprintPower  prometheus.Gauge
	FootprintCarbon prometheus.Gauge
	FootprintCPU    prometheus.Gauge
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	m.BackendCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Calls to the benchmarking backend by operation and error kind",
		},
		[]string{"operation", "result"},
	)

	m.Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Payloads served from synthetic data",
		},
		[]string{"operation"},
	)

	m.FootprintPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "footprint_polls_total",
			Help:      "Footprint polls by outcome (live, demo, stale)",
		},
		[]string{"outcome"},
	)

	m.DataSource = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_data",
			Help:      "1 when the view currently shows live data, 0 in demo mode",
		},
		[]string{"view"},
	)

	m.FootprintPower = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "footprint_power_watts",
		Help:      "Power draw of the last applied footprint",
	})
	m.FootprintCarbon = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "footprint_carbon_kg_per_hour",
		Help:      "Carbon rate of the last applied footprint",
	})
	m.FootprintCPU = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "footprint_cpu_percent",
		Help:      "CPU usage of the last applied footprint",
	})

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendCalls,
		m.Fallbacks,
		m.FootprintPolls,
		m.DataSource,
		m.FootprintPower,
		m.FootprintCarbon,
		m.FootprintCPU,
	)

	return m
}

// ObserveCall records the result of one backend call. Nil receivers are
// allowed so callers can run without metrics.
func (m *Metrics) ObserveCall(operation string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = string(apperr.Classify(err))
	}
	m.BackendCalls.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveSource(view string, source domain.Source) {
	if m == nil {
		return
	}
	if source.IsDemo() {
		m.Fallbacks.WithLabelValues(view).Inc()
		m.DataSource.WithLabelValues(view).Set(0)
		return
	}
	m.DataSource.WithLabelValues(view).Set(1)
}

func (m *Metrics) ObservePoll(outcome string) {
	if m == nil {
		return
	}
	m.FootprintPolls.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveFootprint(fp domain.SystemFootprint) {
	if m == nil {
		return
	}
	m.FootprintPower.Set(fp.PowerWatts)
	m.FootprintCarbon.Set(fp.CarbonKgPerHour)
	m.FootprintCPU.Set(fp.CPUPercent)
}

// Middleware tracks request counts and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
