package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/files/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, name := range []string{"a", "b"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/files/"+name, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	require.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/files/{name}", "404")))
}

func TestLoginsAndUploads(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveLogin(true)
	m.ObserveLogin(false)
	m.ObserveLogin(false)
	m.AddUploadedBytes(100)
	m.AddUploadedBytes(23)

	require.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	require.Equal(t, 123.0, testutil.ToFloat64(m.uploadedBytes))
}

func TestTrackSessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	live := 3
	m.TrackSessions(func() int { return live })

	count, err := testutil.GatherAndCount(reg, "session_cache_entries")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "session_cache_entries" {
			require.Equal(t, 3.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveLogin(true)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `auth_logins_total{result="success"} 1`)
}

func TestMiddleware_UnmatchedPathsShareOneSeries(t *testing.T) {
	m := New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {})

	for i := 0; i < 25; i++ {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/junk-%d", i), nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	require.Equal(t, 1, testutil.CollectAndCount(m.requests))
	require.Equal(t, 1, testutil.CollectAndCount(m.duration))
	require.Equal(t, 25.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}
