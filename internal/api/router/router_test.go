package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/internal/http/handlers"
	"github.com/openhms/hospital-portal/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.Default()
	gw := gateway.NewClient("http://localhost:0", logger)
	reg := prometheus.NewRegistry()
	return New(&Config{
		Logger:         logger,
		AdminHandler:   handlers.NewAdminHandler(gw, logger, 10, 100),
		DoctorHandler:  handlers.NewDoctorHandler(gw, logger, 10, 100),
		PatientHandler: handlers.NewPatientHandler(gw, logger, 10, 100),
		LookupHandler:  handlers.NewLookupHandler(),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLookupsArePublic(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/lookups/statuses/appointment", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardsRequireIdentity(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/admin/appointments", "/doctor/appointments", "/patient/appointments"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}
