package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "patitas"

// Metrics agrupa los collectors de la app en un registry propio
// (no el global, para poder crear varios routers en tests).
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	applicationsSubmitted prometheus.Counter
	applicationStatus     *prometheus.CounterVec
	petsAdopted           prometheus.Counter
	donationsCaptured     prometheus.Counter
	donationAmount        prometheus.Counter
	imagesUploaded        prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms .. ~2.5s
		}, []string{"method", "route"}),

		applicationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "adoption",
			Name:      "applications_submitted_total",
			Help:      "Adoption applications accepted.",
		}),
		applicationStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "adoption",
			Name:      "application_status_changes_total",
			Help:      "Adoption application status changes by resulting status.",
		}, []string{"status"}),
		petsAdopted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "adoption",
			Name:      "pets_adopted_total",
			Help:      "Pets marked as adopted by an approved application.",
		}),
		donationsCaptured: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "captured_total",
			Help:      "Donations confirmed by the payment gateway and stored.",
		}),
		donationAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "amount_total",
			Help:      "Sum of captured donation amounts (MXN).",
		}),
		imagesUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "images",
			Name:      "uploaded_total",
			Help:      "Images stored in the asset store.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.applicationsSubmitted,
		m.applicationStatus,
		m.petsAdopted,
		m.donationsCaptured,
		m.donationAmount,
		m.imagesUploaded,
	)
	return m
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Middleware instrumenta requests. La etiqueta route es el patrón de chi
// (/pets/{id}), no el path real, para no explotar cardinalidad.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}

		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) ApplicationSubmitted() {
	if m == nil {
		return
	}
	m.applicationsSubmitted.Inc()
}

func (m *Metrics) ApplicationStatusChanged(status string) {
	if m == nil {
		return
	}
	m.applicationStatus.WithLabelValues(status).Inc()
}

func (m *Metrics) PetAdopted() {
	if m == nil {
		return
	}
	m.petsAdopted.Inc()
}

func (m *Metrics) DonationCaptured(amount float64) {
	if m == nil {
		return
	}
	m.donationsCaptured.Inc()
	if amount > 0 {
		m.donationAmount.Add(amount)
	}
}

func (m *Metrics) ImageUploaded() {
	if m == nil {
		return
	}
	m.imagesUploaded.Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
