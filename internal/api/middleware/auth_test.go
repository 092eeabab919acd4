package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubAuth(t *testing.T) {
	var gotHubID int64
	var called bool

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotHubID, _ = GetHubID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set(HubIDHeader, "42")
		rec := httptest.NewRecorder()

		HubAuth(next).ServeHTTP(rec, req)

		require.True(t, called)
		assert.Equal(t, int64(42), gotHubID)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		rec := httptest.NewRecorder()

		HubAuth(next).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"missing hub identification"}`, rec.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, value := range []string{"abc", "-1", "0", "1.5"} {
			called = false
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			req.Header.Set(HubIDHeader, value)
			rec := httptest.NewRecorder()

			HubAuth(next).ServeHTTP(rec, req)

			assert.False(t, called, value)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, value)
		}
	})
}
