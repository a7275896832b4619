package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	r.Get("/videos/{videoId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/videos/{videoId}", "404"))

	for _, id := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/videos/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}

	after := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "/videos/{videoId}", "404"))
	assert.Equal(t, 2.0, after-before)
	assert.Equal(t, 0.0, testutil.ToFloat64(requestsInFlight))
}
