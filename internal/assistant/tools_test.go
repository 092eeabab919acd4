package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingmodels "github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
	"github.com/erplora/OnlineBooking-Service/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBookingService struct {
	listReq   *bookingmodels.ListBookingsRequest
	listResp  *bookingmodels.BookingListResponse
	getResp   *bookingmodels.BookingResponse
	statusReq *bookingmodels.UpdateStatusRequest
}

func (f *fakeBookingService) GetByID(ctx context.Context, hubID int64, id uuid.UUID) (*bookingmodels.BookingResponse, error) {
	return f.getResp, nil
}

func (f *fakeBookingService) List(ctx context.Context, req *bookingmodels.ListBookingsRequest) (*bookingmodels.BookingListResponse, error) {
	f.listReq = req
	return f.listResp, nil
}

func (f *fakeBookingService) UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, req *bookingmodels.UpdateStatusRequest) (*bookingmodels.UpdateStatusResponse, error) {
	f.statusReq = req
	return &bookingmodels.UpdateStatusResponse{ID: id, Status: "confirmed"}, nil
}

type fakeSettingsService struct {
	resp *settingsmodels.SettingsResponse
	err  error
}

func (f *fakeSettingsService) GetOrCreate(ctx context.Context, hubID int64) (*settingsmodels.SettingsResponse, error) {
	return f.resp, f.err
}

type fakeCreator struct {
	req  *create_booking.Request
	resp *create_booking.Response
}

func (f *fakeCreator) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	f.req = req
	return f.resp, nil
}

func newTestRegistry(bookings *fakeBookingService, settings *fakeSettingsService, creator *fakeCreator) *Registry {
	return NewDefaultRegistry(bookings, settings, creator, nopLogger{})
}

func TestRegistry(t *testing.T) {
	reg := newTestRegistry(&fakeBookingService{}, &fakeSettingsService{}, &fakeCreator{})

	t.Run("lists tools sorted by name", func(t *testing.T) {
		infos := reg.List()
		require.Len(t, infos, 5)
		names := make([]string, 0, len(infos))
		for _, info := range infos {
			names = append(names, info.Name)
		}
		assert.Equal(t, []string{
			"create_online_booking",
			"get_booking_page_settings",
			"get_online_booking",
			"list_online_bookings",
			"update_booking_status",
		}, names)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := reg.Execute(context.Background(), 1, "send_invoice", nil)
		assert.ErrorIs(t, err, ErrToolNotFound)
	})
}

func TestListBookingsTool(t *testing.T) {
	t.Run("filters pass through", func(t *testing.T) {
		bookings := &fakeBookingService{listResp: &bookingmodels.BookingListResponse{}}
		reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})

		args := json.RawMessage(`{"status":"pending","search":"jane","date_from":"2026-03-01"}`)
		_, err := reg.Execute(context.Background(), 7, "list_online_bookings", args)
		require.NoError(t, err)

		require.NotNil(t, bookings.listReq)
		assert.Equal(t, int64(7), bookings.listReq.HubID)
		assert.Equal(t, "jane", bookings.listReq.Query)
		require.NotNil(t, bookings.listReq.Status)
		assert.Equal(t, "pending", *bookings.listReq.Status)
		require.NotNil(t, bookings.listReq.DateFrom)
		assert.Equal(t, "2026-03-01", *bookings.listReq.DateFrom)
	})

	t.Run("limit defaults to 20", func(t *testing.T) {
		bookings := &fakeBookingService{listResp: &bookingmodels.BookingListResponse{}}
		reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})

		_, err := reg.Execute(context.Background(), 7, "list_online_bookings", nil)
		require.NoError(t, err)
		assert.Equal(t, 20, bookings.listReq.Limit)
	})

	t.Run("explicit limit is kept verbatim", func(t *testing.T) {
		bookings := &fakeBookingService{listResp: &bookingmodels.BookingListResponse{}}
		reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})

		_, err := reg.Execute(context.Background(), 7, "list_online_bookings", json.RawMessage(`{"limit":3}`))
		require.NoError(t, err)
		assert.Equal(t, 3, bookings.listReq.Limit)
	})

	t.Run("date is shorthand for a one-day range", func(t *testing.T) {
		bookings := &fakeBookingService{listResp: &bookingmodels.BookingListResponse{}}
		reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})

		_, err := reg.Execute(context.Background(), 7, "list_online_bookings", json.RawMessage(`{"date":"2026-03-14"}`))
		require.NoError(t, err)
		require.NotNil(t, bookings.listReq.DateFrom)
		require.NotNil(t, bookings.listReq.DateTo)
		assert.Equal(t, "2026-03-14", *bookings.listReq.DateFrom)
		assert.Equal(t, "2026-03-14", *bookings.listReq.DateTo)
	})
}

func TestGetBookingTool(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		id := uuid.New()
		bookings := &fakeBookingService{getResp: &bookingmodels.BookingResponse{ID: id}}
		reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})

		args := json.RawMessage(`{"booking_id":"` + id.String() + `"}`)
		result, err := reg.Execute(context.Background(), 1, "get_online_booking", args)
		require.NoError(t, err)
		assert.Equal(t, id, result.(*bookingmodels.BookingResponse).ID)
	})

	t.Run("by reference", func(t *testing.T) {
		bookings := &fakeBookingService{listResp: &bookingmodels.BookingListResponse{
			Bookings: []bookingmodels.BookingResponse{
				{BookingReference: "BK-00410"},
				{BookingReference: "BK-00041"},
			},
		}}
		reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})

		args := json.RawMessage(`{"reference":"BK-00041"}`)
		result, err := reg.Execute(context.Background(), 1, "get_online_booking", args)
		require.NoError(t, err)
		assert.Equal(t, "BK-00041", result.(*bookingmodels.BookingResponse).BookingReference)
	})

	t.Run("missing identifier", func(t *testing.T) {
		reg := newTestRegistry(&fakeBookingService{}, &fakeSettingsService{}, &fakeCreator{})

		_, err := reg.Execute(context.Background(), 1, "get_online_booking", json.RawMessage(`{}`))
		assert.ErrorIs(t, err, ErrInvalidArgs)
	})
}

func TestUpdateBookingStatusTool(t *testing.T) {
	bookings := &fakeBookingService{}
	reg := newTestRegistry(bookings, &fakeSettingsService{}, &fakeCreator{})
	id := uuid.New()

	args := json.RawMessage(`{"booking_id":"` + id.String() + `","action":"cancel","reason":"double booked"}`)
	_, err := reg.Execute(context.Background(), 1, "update_booking_status", args)
	require.NoError(t, err)

	require.NotNil(t, bookings.statusReq)
	assert.Equal(t, "cancel", bookings.statusReq.Action)
	assert.Equal(t, "double booked", bookings.statusReq.Reason)

	t.Run("malformed id", func(t *testing.T) {
		args := json.RawMessage(`{"booking_id":"not-a-uuid","action":"confirm"}`)
		_, err := reg.Execute(context.Background(), 1, "update_booking_status", args)
		assert.ErrorIs(t, err, ErrInvalidArgs)
	})
}

func TestCreateBookingTool(t *testing.T) {
	creator := &fakeCreator{resp: &create_booking.Response{BookingReference: "BK-00001"}}
	reg := newTestRegistry(&fakeBookingService{}, &fakeSettingsService{}, creator)

	t.Run("defaults duration to an hour", func(t *testing.T) {
		args := json.RawMessage(`{"customer_name":"Jane Smith","service_name":"Haircut","date":"2026-03-14","time":"14:30"}`)
		_, err := reg.Execute(context.Background(), 7, "create_online_booking", args)
		require.NoError(t, err)

		require.NotNil(t, creator.req)
		assert.Equal(t, int64(7), creator.req.HubID)
		assert.Equal(t, 60, creator.req.DurationMinutes)
		assert.Equal(t, "14:30", creator.req.StartTime.String())
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		args := json.RawMessage(`{"customer_name":"Jane","service_name":"Haircut","date":"14/03/2026","time":"14:30"}`)
		_, err := reg.Execute(context.Background(), 7, "create_online_booking", args)
		assert.ErrorIs(t, err, ErrInvalidArgs)
	})
}

func TestGetSettingsTool(t *testing.T) {
	t.Run("returns settings", func(t *testing.T) {
		settings := &fakeSettingsService{resp: &settingsmodels.SettingsResponse{IsEnabled: true, PageTitle: "Book"}}
		reg := newTestRegistry(&fakeBookingService{}, settings, &fakeCreator{})

		result, err := reg.Execute(context.Background(), 1, "get_booking_page_settings", nil)
		require.NoError(t, err)
		assert.True(t, result.(*settingsmodels.SettingsResponse).IsEnabled)
	})

	t.Run("falls back when settings cannot load", func(t *testing.T) {
		settings := &fakeSettingsService{err: errors.New("db down")}
		reg := newTestRegistry(&fakeBookingService{}, settings, &fakeCreator{})

		result, err := reg.Execute(context.Background(), 1, "get_booking_page_settings", nil)
		require.NoError(t, err)
		fallback := result.(map[string]interface{})
		assert.Equal(t, false, fallback["is_enabled"])
		assert.Equal(t, "Booking page not configured", fallback["message"])
	})
}
