package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	resp *models.UpdateStatusResponse
	err  error

	gotHubID int64
	gotReq   *models.UpdateStatusRequest
}

func (f *fakeService) UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, req *models.UpdateStatusRequest) (*models.UpdateStatusResponse, error) {
	f.gotHubID = hubID
	f.gotReq = req
	return f.resp, f.err
}

func newRouter(svc *fakeService) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.HubAuth)
	handler := NewHandler(svc, nopLogger{})
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", handler.Handle).Methods(http.MethodPatch)
	return router
}

func doRequest(router *mux.Router, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/status", strings.NewReader(body))
	req.Header.Set(middleware.HubIDHeader, "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()

	t.Run("confirm succeeds", func(t *testing.T) {
		svc := &fakeService{resp: &models.UpdateStatusResponse{
			ID:               id,
			BookingReference: "BK-00001",
			Status:           "confirmed",
		}}
		rec := doRequest(newRouter(svc), id.String(), `{"action":"confirm"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"confirmed"`)
		assert.Equal(t, int64(42), svc.gotHubID)
		assert.Equal(t, "confirm", svc.gotReq.Action)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrBookingNotFound}
		rec := doRequest(newRouter(svc), id.String(), `{"action":"confirm"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrInvalidTransition}
		rec := doRequest(newRouter(svc), id.String(), `{"action":"complete"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc := &fakeService{err: bookings.ErrUnknownAction}
		rec := doRequest(newRouter(svc), id.String(), `{"action":"approve"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed booking id", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(newRouter(svc), "not-a-uuid", `{"action":"confirm"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := &fakeService{}
		rec := doRequest(newRouter(svc), id.String(), `{"action":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing hub header", func(t *testing.T) {
		svc := &fakeService{}
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id.String()+"/status", strings.NewReader(`{"action":"confirm"}`))
		rec := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
