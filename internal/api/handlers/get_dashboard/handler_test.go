package get_dashboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erplora/OnlineBooking-Service/internal/api/middleware"
	bookingmodels "github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingService struct {
	resp *bookingmodels.DashboardResponse
	err  error

	gotHubID int64
}

func (f *fakeBookingService) Dashboard(ctx context.Context, hubID int64) (*bookingmodels.DashboardResponse, error) {
	f.gotHubID = hubID
	return f.resp, f.err
}

type fakeSettingsService struct {
	resp *settingsmodels.SettingsResponse
	err  error
}

func (f *fakeSettingsService) GetOrCreate(ctx context.Context, hubID int64) (*settingsmodels.SettingsResponse, error) {
	return f.resp, f.err
}

func newRouter(bookingSvc *fakeBookingService, settingsSvc *fakeSettingsService) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.HubAuth)
	handler := NewHandler(bookingSvc, settingsSvc, nopLogger{})
	router.HandleFunc("/api/v1/dashboard", handler.Handle).Methods(http.MethodGet)
	return router
}

func doRequest(router *mux.Router) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set(middleware.HubIDHeader, "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("stats and settings combined", func(t *testing.T) {
		bookingSvc := &fakeBookingService{resp: &bookingmodels.DashboardResponse{
			Total:          12,
			Pending:        3,
			ConfirmedToday: 2,
			WeekCount:      7,
			NoShowRate:     12.5,
		}}
		settingsSvc := &fakeSettingsService{resp: &settingsmodels.SettingsResponse{
			IsEnabled: true,
			PageTitle: "Book an Appointment",
		}}
		rec := doRequest(newRouter(bookingSvc, settingsSvc))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":12`)
		assert.Contains(t, rec.Body.String(), `"confirmedToday":2`)
		assert.Contains(t, rec.Body.String(), `"settings"`)
		assert.Contains(t, rec.Body.String(), `"Book an Appointment"`)
		assert.Equal(t, int64(42), bookingSvc.gotHubID)
	})

	t.Run("stats failure", func(t *testing.T) {
		bookingSvc := &fakeBookingService{err: errors.New("boom")}
		settingsSvc := &fakeSettingsService{}
		rec := doRequest(newRouter(bookingSvc, settingsSvc))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("settings failure", func(t *testing.T) {
		bookingSvc := &fakeBookingService{resp: &bookingmodels.DashboardResponse{}}
		settingsSvc := &fakeSettingsService{err: errors.New("boom")}
		rec := doRequest(newRouter(bookingSvc, settingsSvc))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("missing hub header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
		rec := httptest.NewRecorder()
		newRouter(&fakeBookingService{}, &fakeSettingsService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
