package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lucky888_backend/pkg/token"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("secret")

func TestAuth(t *testing.T) {
	var gotID string
	h := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tok, _, err := token.GenerateAccessToken("abc", secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "no header", header: "", status: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic " + tok, status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "ok", header: "Bearer " + tok, status: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotID = ""
			r := httptest.NewRequest(http.MethodGet, "/game/state", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
		})
	}
	assert.Equal(t, "abc", gotID)
}

func TestSessionIDFromContext(t *testing.T) {
	_, ok := SessionIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

type observation struct {
	method, path, status string
}

type recorder struct {
	got []observation
}

func (r *recorder) ObserveHTTP(method, path, status string, _ float64) {
	r.got = append(r.got, observation{method, path, status})
}

func TestMetrics(t *testing.T) {
	rec := &recorder{}
	router := chi.NewRouter()
	router.Use(Metrics(rec))
	router.Get("/game/history", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/game/history?limit=3", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, rec.got, 2)
	assert.Equal(t, observation{"GET", "/game/history", "418"}, rec.got[0])
	assert.Equal(t, "404", rec.got[1].status)
}
