package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	settingsRepo "github.com/erplora/OnlineBooking-Service/internal/infra/storage/settings"
	"github.com/erplora/OnlineBooking-Service/internal/service/settings/models"
)

// Service manages a hub's booking page settings.
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService creates a settings service.
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetOrCreate returns the hub's settings, creating the record with
// defaults on first access. A concurrent first access loses the insert
// race and re-fetches the winner's record.
func (s *Service) GetOrCreate(ctx context.Context, hubID int64) (*models.SettingsResponse, error) {
	settings, err := s.getOrCreateDomain(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// Update applies the changed fields on top of the current settings and
// persists the result.
func (s *Service) Update(ctx context.Context, hubID int64, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for hub=%d", hubID)

	settings, err := s.getOrCreateDomain(ctx, hubID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(settings)

	if err := validateSettings(settings); err != nil {
		s.logger.Warn("Update: invalid settings for hub=%d: %v", hubID, err)
		return nil, err
	}

	updated, err := s.settingsRepo.Update(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for hub=%d: %v", hubID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved for hub=%d", hubID)
	return models.FromDomainSettings(updated), nil
}

func (s *Service) getOrCreateDomain(ctx context.Context, hubID int64) (*domain.BookingPageSettings, error) {
	settings, err := s.settingsRepo.GetByHubID(ctx, hubID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("GetOrCreate: repository error for hub=%d: %v", hubID, err)
		return nil, fmt.Errorf("%w: GetOrCreate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOrCreate: creating default settings for hub=%d", hubID)

	created, err := s.settingsRepo.Create(ctx, domain.DefaultSettings(hubID))
	if err == nil {
		return created, nil
	}
	if errors.Is(err, settingsRepo.ErrDuplicateSettings) {
		// Lost the race to a concurrent first access, the winner's
		// record is authoritative
		return s.settingsRepo.GetByHubID(ctx, hubID)
	}

	s.logger.Error("GetOrCreate: create failed for hub=%d: %v", hubID, err)
	return nil, fmt.Errorf("%w: GetOrCreate - create failed: %v", ErrInternal, err)
}

func validateSettings(s *domain.BookingPageSettings) error {
	if s.PageTitle == "" {
		return fmt.Errorf("%w: page title must not be empty", ErrInvalidInput)
	}
	if s.MinAdvanceHours < 0 || s.MinAdvanceHours > domain.MinAdvanceHoursLimit {
		return fmt.Errorf("%w: min advance hours must be between 0 and %d", ErrInvalidInput, domain.MinAdvanceHoursLimit)
	}
	if s.MaxAdvanceDays < 1 || s.MaxAdvanceDays > domain.MaxAdvanceDaysLimit {
		return fmt.Errorf("%w: max advance days must be between 1 and %d", ErrInvalidInput, domain.MaxAdvanceDaysLimit)
	}
	if s.SlotDurationMinutes < domain.MinSlotDurationMinutes || s.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if s.BufferMinutes < 0 || s.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffer must be between 0 and %d minutes", ErrInvalidInput, domain.MaxBufferMinutes)
	}
	return nil
}
