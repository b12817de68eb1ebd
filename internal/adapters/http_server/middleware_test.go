package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRemoteIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.7:5555"
	assert.Equal(t, "10.0.0.7", remoteIP(r))

	r.Header.Set("X-Real-IP", "192.0.2.1")
	assert.Equal(t, "192.0.2.1", remoteIP(r))

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", remoteIP(r))
}

func TestRouteOf_UsesPattern(t *testing.T) {
	var got string
	m := chi.NewRouter()
	m.Get("/v1/weather/{city}", func(w http.ResponseWriter, r *http.Request) { got = routeOf(r) })

	m.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/weather/Munnar", nil))
	assert.Equal(t, "/v1/weather/{city}", got)

	assert.Equal(t, "/plain", routeOf(httptest.NewRequest(http.MethodGet, "/plain", nil)))
}

func TestSRW_DefaultsTo200(t *testing.T) {
	sw := &srw{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, sw.Status())
	sw.WriteHeader(http.StatusTeapot)
	sw.WriteHeader(http.StatusOK)
	assert.Equal(t, http.StatusTeapot, sw.Status())
}
