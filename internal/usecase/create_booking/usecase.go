package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	bookingRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/booking"
	customerClient "github.com/erplora/OnlineBooking-Service/internal/integrations/customerservice"
)

// referenceRetries is how many times the insert is retried after a
// reference collision. One retry is enough: the serializable
// transaction regenerates from the fresh maximum.
const referenceRetries = 1

// UseCase creates a booking with a hub-sequential reference.
type UseCase struct {
	bookingRepo      BookingRepository
	settingsProvider SettingsProvider
	customerClient   CustomerServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase creates the use case. customerClient may be nil when the
// customer service integration is disabled; bookings are then created
// without a customer link.
func NewUseCase(
	bookingRepo BookingRepository,
	settingsProvider SettingsProvider,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		settingsProvider: settingsProvider,
		customerClient:   customerClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute creates the booking. The reference is generated from the
// hub's current maximum inside a serializable transaction, so two
// concurrent creates for one hub cannot mint the same number; a lost
// race against the unique index is retried once with a fresh read.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: hub=%d, customer=%q, service=%q, date=%s, time=%s",
		req.HubID, req.CustomerName, req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		settings, err := uc.settingsProvider.GetOrCreate(ctx, req.HubID)
		if err != nil {
			// A settings failure must not block the booking itself
			uc.logger.Warn("CreateBooking: failed to load settings for hub=%d, using default duration: %v", req.HubID, err)
			duration = domain.DefaultDurationMinutes
		} else {
			duration = settings.SlotDurationMinutes
			uc.logger.Info("CreateBooking: using hub slot duration %d minutes", duration)
		}
	}

	customerID := uc.linkCustomer(ctx, req)

	booking := &domain.OnlineBooking{
		ID:              uuid.New(),
		HubID:           req.HubID,
		CustomerID:      customerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ServiceID:       req.ServiceID,
		ServiceName:     req.ServiceName,
		StaffID:         req.StaffID,
		StaffName:       req.StaffName,
		BookingDate:     req.Date,
		BookingTime:     req.StartTime,
		DurationMinutes: duration,
		Status:          domain.StatusPending,
		Notes:           req.Notes,
	}

	var created *domain.OnlineBooking
	var err error
	for attempt := 0; ; attempt++ {
		created, err = uc.insertWithReference(ctx, booking)
		if err == nil {
			break
		}
		if errors.Is(err, bookingRepo.ErrDuplicateReference) && attempt < referenceRetries {
			uc.logger.Warn("CreateBooking: reference collision for hub=%d, retrying", req.HubID)
			continue
		}
		uc.logger.Error("CreateBooking: insert failed for hub=%d: %v", req.HubID, err)
		return nil, fmt.Errorf("%w: insert failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking %s with reference %s for hub=%d",
		created.ID, created.BookingReference, req.HubID)

	return &Response{
		ID:               created.ID,
		BookingReference: created.BookingReference,
		Status:           string(created.Status),
		CustomerID:       created.CustomerID,
		CustomerName:     created.CustomerName,
		CustomerEmail:    created.CustomerEmail,
		ServiceName:      created.ServiceName,
		BookingDate:      created.BookingDate,
		StartTime:        created.BookingTime,
		DurationMinutes:  created.DurationMinutes,
		Notes:            created.Notes,
		CreatedAt:        created.CreatedAt,
		UpdatedAt:        created.UpdatedAt,
	}, nil
}

// insertWithReference generates the next reference and inserts the
// booking in one serializable transaction.
func (uc *UseCase) insertWithReference(ctx context.Context, booking *domain.OnlineBooking) (*domain.OnlineBooking, error) {
	var created *domain.OnlineBooking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		last, err := uc.bookingRepo.LastReference(txCtx, booking.HubID)
		if err != nil {
			return err
		}
		booking.BookingReference = domain.NextReference(last)

		created, err = uc.bookingRepo.Create(txCtx, booking)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// linkCustomer resolves the hub's customer record by email. The link is
// best effort: the snapshot fields on the booking stay authoritative
// and any lookup failure leaves the booking unlinked.
func (uc *UseCase) linkCustomer(ctx context.Context, req *Request) *uuid.UUID {
	if uc.customerClient == nil || req.CustomerEmail == "" {
		return nil
	}

	customer, err := uc.customerClient.FindByEmailWithGracefulDegradation(ctx, req.HubID, req.CustomerEmail)
	if err != nil {
		if !errors.Is(err, customerClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer lookup degraded for hub=%d: %v", req.HubID, err)
		}
		return nil
	}

	return &customer.ID
}
