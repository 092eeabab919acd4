package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	bookingRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/booking"
	"github.com/erplora/OnlineBooking-Service/internal/integrations/customerservice"
	settingsmodels "github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
	"github.com/erplora/OnlineBooking-Service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTxManager struct{ calls int }

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeBookingRepo struct {
	lastReference string
	failInserts   int // fail this many inserts with ErrDuplicateReference
	created       []*domain.OnlineBooking
}

func (f *fakeBookingRepo) LastReference(ctx context.Context, hubID int64) (string, error) {
	return f.lastReference, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.OnlineBooking) (*domain.OnlineBooking, error) {
	if f.failInserts > 0 {
		f.failInserts--
		// Simulate another request taking the reference first
		f.lastReference = b.BookingReference
		return nil, bookingRepo.ErrDuplicateReference
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = append(f.created, b)
	return b, nil
}

type fakeSettingsProvider struct {
	slotDuration int
	err          error
	calls        int
}

func (f *fakeSettingsProvider) GetOrCreate(ctx context.Context, hubID int64) (*settingsmodels.SettingsResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &settingsmodels.SettingsResponse{SlotDurationMinutes: f.slotDuration}, nil
}

type fakeCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (f *fakeCustomerClient) FindByEmailWithGracefulDegradation(ctx context.Context, hubID int64, email string) (*customerservice.Customer, error) {
	return f.customer, f.err
}

func validRequest() *Request {
	return &Request{
		HubID:           1,
		CustomerName:    "Jane Smith",
		CustomerEmail:   "jane@example.com",
		ServiceName:     "Haircut",
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("14:30"),
		DurationMinutes: 45,
	}
}

func newTestUseCase(repo *fakeBookingRepo, settings *fakeSettingsProvider, customers CustomerServiceClient) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, settings, customers, tx, nopLogger{})
	return uc, tx
}

func TestExecute(t *testing.T) {
	t.Run("first booking starts the sequence", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc, tx := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, nil)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "BK-00001", resp.BookingReference)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, 45, resp.DurationMinutes)
		assert.Equal(t, 1, tx.calls)
	})

	t.Run("reference continues past existing bookings", func(t *testing.T) {
		repo := &fakeBookingRepo{lastReference: "BK-00041"}
		uc, _ := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, nil)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "BK-00042", resp.BookingReference)
	})

	t.Run("collision retries with fresh reference", func(t *testing.T) {
		repo := &fakeBookingRepo{lastReference: "BK-00009", failInserts: 1}
		uc, tx := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, nil)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "BK-00011", resp.BookingReference)
		assert.Equal(t, 2, tx.calls)
	})

	t.Run("second collision gives up", func(t *testing.T) {
		repo := &fakeBookingRepo{failInserts: 2}
		uc, _ := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("zero duration falls back to hub slot duration", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		settings := &fakeSettingsProvider{slotDuration: 25}
		uc, _ := newTestUseCase(repo, settings, nil)

		req := validRequest()
		req.DurationMinutes = 0

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 25, resp.DurationMinutes)
		assert.Equal(t, 1, settings.calls)
	})

	t.Run("settings failure falls back to the default duration", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		settings := &fakeSettingsProvider{err: errors.New("connection refused")}
		uc, _ := newTestUseCase(repo, settings, nil)

		req := validRequest()
		req.DurationMinutes = 0

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	})

	t.Run("explicit duration skips settings lookup", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		settings := &fakeSettingsProvider{slotDuration: 25}
		uc, _ := newTestUseCase(repo, settings, nil)

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 0, settings.calls)
	})
}

func TestExecuteCustomerLinking(t *testing.T) {
	t.Run("links matching customer", func(t *testing.T) {
		customerID := uuid.New()
		repo := &fakeBookingRepo{}
		uc, _ := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, &fakeCustomerClient{
			customer: &customerservice.Customer{ID: customerID},
		})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		require.NotNil(t, resp.CustomerID)
		assert.Equal(t, customerID, *resp.CustomerID)
	})

	t.Run("degraded lookup still creates the booking", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc, _ := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, &fakeCustomerClient{
			err: customerservice.ErrServiceDegraded,
		})

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Nil(t, resp.CustomerID)
	})

	t.Run("no email skips the lookup", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc, _ := newTestUseCase(repo, &fakeSettingsProvider{slotDuration: 30}, &fakeCustomerClient{
			customer: &customerservice.Customer{ID: uuid.New()},
		})

		req := validRequest()
		req.CustomerEmail = ""

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, resp.CustomerID)
	})
}

func TestExecuteValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.CustomerName = "" }, ErrInvalidInput},
		{"missing service", func(r *Request) { r.ServiceName = "" }, ErrInvalidInput},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidDate},
		{"missing time", func(r *Request) { r.StartTime = "" }, ErrInvalidTime},
		{"malformed time", func(r *Request) { r.StartTime = "25:99" }, ErrInvalidTime},
		{"negative duration", func(r *Request) { r.DurationMinutes = -5 }, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newTestUseCase(&fakeBookingRepo{}, &fakeSettingsProvider{slotDuration: 30}, nil)

			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
