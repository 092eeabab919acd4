package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	"github.com/erplora/OnlineBooking-Service/pkg/dbmetrics"
	"github.com/erplora/OnlineBooking-Service/pkg/psqlbuilder"
)

const table = "online_booking_settings"

var settingsColumns = []string{
	"id",
	"hub_id",
	"is_enabled",
	"page_title",
	"welcome_message",
	"primary_color",
	"logo_url",
	"require_phone",
	"require_email",
	"allow_staff_selection",
	"allow_notes",
	"min_advance_hours",
	"max_advance_days",
	"slot_duration_minutes",
	"buffer_minutes",
	"confirmation_message",
	"cancellation_policy",
	"created_at",
	"updated_at",
}

// Repository stores the per-hub booking page settings. The table holds
// at most one row per hub, enforced by a unique index on hub_id.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a settings repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByHubID fetches the hub's settings record.
func (r *Repository) GetByHubID(ctx context.Context, hubID int64) (*domain.BookingPageSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From(table).
		Where(squirrel.Eq{"hub_id": hubID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHubID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHubID - scan settings: %v", ErrScanRow, err)
	}

	return s, nil
}

// Create inserts the hub's settings record. A concurrent insert for the
// same hub is reported as ErrDuplicateSettings so the caller can
// re-fetch the winner.
func (r *Repository) Create(ctx context.Context, s *domain.BookingPageSettings) (*domain.BookingPageSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"hub_id",
			"is_enabled",
			"page_title",
			"welcome_message",
			"primary_color",
			"logo_url",
			"require_phone",
			"require_email",
			"allow_staff_selection",
			"allow_notes",
			"min_advance_hours",
			"max_advance_days",
			"slot_duration_minutes",
			"buffer_minutes",
			"confirmation_message",
			"cancellation_policy",
		).
		Values(
			s.HubID,
			s.IsEnabled,
			s.PageTitle,
			s.WelcomeMessage,
			s.PrimaryColor,
			s.LogoURL,
			s.RequirePhone,
			s.RequireEmail,
			s.AllowStaffSelection,
			s.AllowNotes,
			s.MinAdvanceHours,
			s.MaxAdvanceDays,
			s.SlotDurationMinutes,
			s.BufferMinutes,
			s.ConfirmationMessage,
			s.CancellationPolicy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: Create - hub %d: %v", ErrDuplicateSettings, s.HubID, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Update overwrites the hub's settings with the full record.
func (r *Repository) Update(ctx context.Context, s *domain.BookingPageSettings) (*domain.BookingPageSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_enabled", s.IsEnabled).
		Set("page_title", s.PageTitle).
		Set("welcome_message", s.WelcomeMessage).
		Set("primary_color", s.PrimaryColor).
		Set("logo_url", s.LogoURL).
		Set("require_phone", s.RequirePhone).
		Set("require_email", s.RequireEmail).
		Set("allow_staff_selection", s.AllowStaffSelection).
		Set("allow_notes", s.AllowNotes).
		Set("min_advance_hours", s.MinAdvanceHours).
		Set("max_advance_days", s.MaxAdvanceDays).
		Set("slot_duration_minutes", s.SlotDurationMinutes).
		Set("buffer_minutes", s.BufferMinutes).
		Set("confirmation_message", s.ConfirmationMessage).
		Set("cancellation_policy", s.CancellationPolicy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"hub_id": s.HubID}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.BookingPageSettings, error) {
	var s domain.BookingPageSettings

	err := row.Scan(
		&s.ID,
		&s.HubID,
		&s.IsEnabled,
		&s.PageTitle,
		&s.WelcomeMessage,
		&s.PrimaryColor,
		&s.LogoURL,
		&s.RequirePhone,
		&s.RequireEmail,
		&s.AllowStaffSelection,
		&s.AllowNotes,
		&s.MinAdvanceHours,
		&s.MaxAdvanceDays,
		&s.SlotDurationMinutes,
		&s.BufferMinutes,
		&s.ConfirmationMessage,
		&s.CancellationPolicy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
