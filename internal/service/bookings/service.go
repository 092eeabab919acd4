package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	bookingRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/booking"
	"github.com/erplora/OnlineBooking-Service/internal/service/bookings/models"
)

const (
	upcomingWindowDays = 7
	upcomingLimit      = 10
)

// BulkActionDelete is the extra bulk verb on top of the status actions.
const BulkActionDelete = "delete"

// Service implements the admin operations on a hub's online bookings.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a bookings service.
func NewService(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID fetches one booking scoped to the hub.
func (s *Service) GetByID(ctx context.Context, hubID int64, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for hub=%d", id, hubID)

	booking, err := s.bookingRepo.GetByID(ctx, hubID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found for hub=%d", id, hubID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List returns one page of the hub's bookings with search, filtering
// and sorting applied.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for hub=%d: %v", req.HubID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching bookings for hub=%d page=%d perPage=%d", req.HubID, filter.Page, filter.PerPage)

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for hub=%d: %v", req.HubID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings, total, filter.Page, filter.PerPage), nil
}

// UpdateStatus applies one lifecycle action to a booking. The current
// status is checked against the action's guard before writing, so a
// completed or cancelled booking can never move again.
func (s *Service) UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, req *models.UpdateStatusRequest) (*models.UpdateStatusResponse, error) {
	s.logger.Info("UpdateStatus: action=%s booking id=%s hub=%d", req.Action, id, hubID)

	action := domain.StatusAction(req.Action)
	if action.AllowedFrom() == nil {
		s.logger.Warn("UpdateStatus: unknown action=%s for booking id=%s", req.Action, id)
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	booking, err := s.bookingRepo.GetByID(ctx, hubID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	switch action {
	case domain.ActionConfirm:
		if !booking.CanBeConfirmed() {
			return nil, transitionError(booking.Status, action)
		}
		err = s.bookingRepo.Confirm(ctx, hubID, id, now)
	case domain.ActionCancel:
		if !booking.CanBeCancelled() {
			return nil, transitionError(booking.Status, action)
		}
		err = s.bookingRepo.Cancel(ctx, hubID, id, now, req.Reason)
	case domain.ActionComplete:
		if !booking.CanBeCompleted() {
			return nil, transitionError(booking.Status, action)
		}
		err = s.bookingRepo.UpdateStatus(ctx, hubID, id, domain.StatusCompleted, now)
	case domain.ActionNoShow:
		if !booking.CanBeMarkedNoShow() {
			return nil, transitionError(booking.Status, action)
		}
		err = s.bookingRepo.UpdateStatus(ctx, hubID, id, domain.StatusNoShow, now)
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: write failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - write failed: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s moved to %s", id, action.Target())
	return &models.UpdateStatusResponse{
		ID:               booking.ID,
		BookingReference: booking.BookingReference,
		Status:           string(action.Target()),
	}, nil
}

// Delete soft-deletes a booking. The record stays in storage so the
// hub's reference sequence never reuses its number.
func (s *Service) Delete(ctx context.Context, hubID int64, id uuid.UUID) error {
	s.logger.Info("Delete: soft-deleting booking id=%s hub=%d", id, hubID)

	err := s.bookingRepo.SoftDelete(ctx, hubID, id, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found for hub=%d", id, hubID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// BulkAction applies one action to a set of bookings. Bookings whose
// current status is not eligible are skipped, not failed; the response
// reports how many rows actually changed.
func (s *Service) BulkAction(ctx context.Context, hubID int64, req *models.BulkActionRequest) (*models.BulkActionResponse, error) {
	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("%w: no booking ids given", ErrInvalidInput)
	}

	s.logger.Info("BulkAction: action=%s on %d bookings hub=%d", req.Action, len(req.IDs), hubID)

	now := s.timeProvider.Now()

	var updated int64
	var err error

	if req.Action == BulkActionDelete {
		updated, err = s.bookingRepo.BulkSoftDelete(ctx, hubID, req.IDs, now)
	} else {
		action := domain.StatusAction(req.Action)
		from := action.AllowedFrom()
		if from == nil {
			s.logger.Warn("BulkAction: unknown action=%s for hub=%d", req.Action, hubID)
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
		}
		updated, err = s.bookingRepo.BulkUpdateStatus(ctx, hubID, req.IDs, from, action.Target(), now)
	}

	if err != nil {
		s.logger.Error("BulkAction: repository error for hub=%d: %v", hubID, err)
		return nil, fmt.Errorf("%w: BulkAction - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkAction: action=%s changed %d of %d bookings hub=%d", req.Action, updated, len(req.IDs), hubID)
	return &models.BulkActionResponse{
		Action:    req.Action,
		Requested: len(req.IDs),
		Updated:   updated,
	}, nil
}

// Dashboard builds the hub's booking summary: status counts, today's
// volume, the no-show rate and the next upcoming bookings.
func (s *Service) Dashboard(ctx context.Context, hubID int64) (*models.DashboardResponse, error) {
	s.logger.Info("Dashboard: building summary for hub=%d", hubID)

	resp := &models.DashboardResponse{}

	total, err := s.bookingRepo.Count(ctx, domain.BookingsFilter{HubID: hubID})
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - count total: %v", ErrInternal, err)
	}
	resp.Total = total

	counts := map[domain.BookingStatus]*int64{
		domain.StatusPending:   &resp.Pending,
		domain.StatusConfirmed: &resp.Confirmed,
		domain.StatusCompleted: &resp.Completed,
		domain.StatusCancelled: &resp.Cancelled,
		domain.StatusNoShow:    &resp.NoShow,
	}
	for _, status := range domain.AllStatuses {
		status := status
		count, err := s.bookingRepo.Count(ctx, domain.BookingsFilter{HubID: hubID, Status: &status})
		if err != nil {
			return nil, fmt.Errorf("%w: Dashboard - count status %s: %v", ErrInternal, status, err)
		}
		*counts[status] = count
	}

	today := truncateToDay(s.timeProvider.Now())
	todayCount, err := s.bookingRepo.Count(ctx, domain.BookingsFilter{HubID: hubID, DateFrom: &today, DateTo: &today})
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - count today: %v", ErrInternal, err)
	}
	resp.TodayCount = todayCount

	confirmed := domain.StatusConfirmed
	confirmedToday, err := s.bookingRepo.Count(ctx, domain.BookingsFilter{
		HubID:    hubID,
		Status:   &confirmed,
		DateFrom: &today,
		DateTo:   &today,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - count confirmed today: %v", ErrInternal, err)
	}
	resp.ConfirmedToday = confirmedToday

	weekStart := startOfISOWeek(today)
	weekEnd := weekStart.AddDate(0, 0, 6)
	weekCount, err := s.bookingRepo.Count(ctx, domain.BookingsFilter{HubID: hubID, DateFrom: &weekStart, DateTo: &weekEnd})
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - count week: %v", ErrInternal, err)
	}
	resp.WeekCount = weekCount

	if finished := resp.Completed + resp.NoShow; finished > 0 {
		rate := float64(resp.NoShow) / float64(finished) * 100
		resp.NoShowRate = math.Round(rate*10) / 10
	}

	upcoming, err := s.bookingRepo.ListUpcoming(ctx, hubID, today, today.AddDate(0, 0, upcomingWindowDays), upcomingLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: Dashboard - list upcoming: %v", ErrInternal, err)
	}
	resp.Upcoming = make([]models.BookingResponse, 0, len(upcoming))
	for _, b := range upcoming {
		resp.Upcoming = append(resp.Upcoming, *models.FromDomainBooking(b))
	}

	return resp, nil
}

func transitionError(current domain.BookingStatus, action domain.StatusAction) error {
	return fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidTransition, action, current)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfISOWeek returns the Monday of the week containing t.
func startOfISOWeek(t time.Time) time.Time {
	t = truncateToDay(t)
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday)
}
