package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestInit_FallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init("not-a-level", &buf)
	require.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Init("debug", &buf)
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	Init("info", &buf)

	var ctxLogger *zerolog.Logger
	handler := middleware.RequestID(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = zerolog.Ctx(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	require.NotNil(t, ctxLogger)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "request completed", line["message"])
	require.Equal(t, "/ping", line["path"])
	require.EqualValues(t, http.StatusTeapot, line["status"])
	require.NotEmpty(t, line["request_id"])
}
