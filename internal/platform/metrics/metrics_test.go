package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/pets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/metrics", m.Handler().ServeHTTP)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/pets/{id}", "404")))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `patitas_http_requests_total{method="GET",route="/pets/{id}",status="404"} 2`)
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.ApplicationSubmitted()
	m.ApplicationStatusChanged("approved")
	m.PetAdopted()
	m.DonationCaptured(250)
	m.ImageUploaded()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.applicationsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.applicationStatus.WithLabelValues("approved")))
	assert.Equal(t, 250.0, testutil.ToFloat64(m.donationAmount))

	var nilMetrics *Metrics
	nilMetrics.PetAdopted()
}
