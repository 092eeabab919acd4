package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
	"github.com/erplora/OnlineBooking-Service/pkg/dbmetrics"
	"github.com/erplora/OnlineBooking-Service/pkg/psqlbuilder"
)

const table = "online_bookings"

// bookingColumns is the full column list in scan order.
var bookingColumns = []string{
	"id",
	"hub_id",
	"booking_reference",
	"customer_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"service_id",
	"service_name",
	"staff_id",
	"staff_name",
	"booking_date",
	"booking_time",
	"duration_minutes",
	"status",
	"notes",
	"confirmed_at",
	"cancelled_at",
	"cancellation_reason",
	"is_deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository is the tenant-scoped storage for online bookings.
// Every query filters on hub_id; a booking belonging to another hub is
// indistinguishable from a missing one.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. The caller assigns the ID and the
// booking reference beforehand; a reference collision for the hub is
// reported as ErrDuplicateReference so the caller can regenerate.
// Runs on the transaction from the context when one is present.
func (r *Repository) Create(ctx context.Context, b *domain.OnlineBooking) (*domain.OnlineBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"hub_id",
			"booking_reference",
			"customer_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"service_id",
			"service_name",
			"staff_id",
			"staff_name",
			"booking_date",
			"booking_time",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			b.ID,
			b.HubID,
			b.BookingReference,
			nullUUID(b.CustomerID),
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			nullUUID(b.ServiceID),
			b.ServiceName,
			nullUUID(b.StaffID),
			b.StaffName,
			b.BookingDate,
			b.BookingTime,
			b.DurationMinutes,
			b.Status,
			b.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: Create - reference %s: %v", ErrDuplicateReference, b.BookingReference, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches one booking scoped to the hub. Soft-deleted bookings
// are treated as absent.
func (r *Repository) GetByID(ctx context.Context, hubID int64, id uuid.UUID) (*domain.OnlineBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(table).
		Where(squirrel.Eq{"hub_id": hubID, "id": id, "is_deleted": false}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBookingRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List returns one page of bookings matching the filter plus the total
// match count. Soft-deleted rows never appear.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.OnlineBooking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conditions := filterConditions(filter)

	// Total count over the same conditions, before pagination
	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count bookings: %v", ErrScanRow, err)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(table).
		Where(conditions).
		OrderBy(orderClauses(filter)...).
		Limit(uint64(filter.PerPage)).
		Offset(uint64(filter.Offset()))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// Count returns the number of non-deleted bookings matching the filter.
// Pagination and sorting on the filter are ignored.
func (r *Repository) Count(ctx context.Context, filter domain.BookingsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(filterConditions(filter)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// ListUpcoming returns pending and confirmed bookings inside the date
// range, soonest first. Used by the dashboard.
func (r *Repository) ListUpcoming(ctx context.Context, hubID int64, from, to time.Time, limit int) ([]*domain.OnlineBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(table).
		Where(squirrel.Eq{"hub_id": hubID, "is_deleted": false}).
		Where(squirrel.Eq{"status": []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		OrderBy("booking_date ASC", "booking_time ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// LastReference returns the lexicographically greatest booking
// reference stored for the hub, soft-deleted rows included so numbers
// are never reused. Returns "" when the hub has no bookings yet.
// Inside a transaction the row is locked FOR UPDATE to serialize
// concurrent reference generation.
func (r *Repository) LastReference(ctx context.Context, hubID int64) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("booking_reference").
		From(table).
		Where(squirrel.Eq{"hub_id": hubID}).
		OrderBy("booking_reference DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: LastReference - build select query: %v", ErrBuildQuery, err)
	}

	var reference string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reference)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: LastReference - scan reference: %v", ErrScanRow, err)
	}

	return reference, nil
}

// Confirm moves a booking to confirmed and stamps confirmed_at.
// The service layer checks the transition guard first; the hub filter
// here keeps the write tenant-scoped.
func (r *Repository) Confirm(ctx context.Context, hubID int64, id uuid.UUID, at time.Time) error {
	return r.execUpdate(ctx, "Confirm", psqlbuilder.Update(table).
		Set("status", domain.StatusConfirmed).
		Set("confirmed_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"hub_id": hubID, "id": id, "is_deleted": false}))
}

// Cancel moves a booking to cancelled, stamping cancelled_at and the
// cancellation reason.
func (r *Repository) Cancel(ctx context.Context, hubID int64, id uuid.UUID, at time.Time, reason string) error {
	return r.execUpdate(ctx, "Cancel", psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", at).
		Set("cancellation_reason", reason).
		Set("updated_at", at).
		Where(squirrel.Eq{"hub_id": hubID, "id": id, "is_deleted": false}))
}

// UpdateStatus sets the status without touching lifecycle timestamps.
// Used for the completed and no_show transitions.
func (r *Repository) UpdateStatus(ctx context.Context, hubID int64, id uuid.UUID, status domain.BookingStatus, at time.Time) error {
	return r.execUpdate(ctx, "UpdateStatus", psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", at).
		Where(squirrel.Eq{"hub_id": hubID, "id": id, "is_deleted": false}))
}

// SoftDelete flags a booking deleted. The row stays in storage so the
// reference sequence keeps counting past it.
func (r *Repository) SoftDelete(ctx context.Context, hubID int64, id uuid.UUID, at time.Time) error {
	return r.execUpdate(ctx, "SoftDelete", psqlbuilder.Update(table).
		Set("is_deleted", true).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"hub_id": hubID, "id": id, "is_deleted": false}))
}

// BulkUpdateStatus applies one status transition to every booking in
// ids whose current status is in from. Ineligible rows are skipped by
// the WHERE clause rather than failing the batch. Returns the number of
// rows actually changed. confirmed_at and cancelled_at are stamped when
// the target status calls for it.
func (r *Repository) BulkUpdateStatus(ctx context.Context, hubID int64, ids []uuid.UUID, from []domain.BookingStatus, to domain.BookingStatus, at time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", to).
		Set("updated_at", at).
		Where(squirrel.Eq{"hub_id": hubID, "is_deleted": false}).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": from})

	switch to {
	case domain.StatusConfirmed:
		updateBuilder = updateBuilder.Set("confirmed_at", at)
	case domain.StatusCancelled:
		updateBuilder = updateBuilder.Set("cancelled_at", at)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkUpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkUpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkUpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

// BulkSoftDelete flags every booking in ids deleted. Returns the number
// of rows changed.
func (r *Repository) BulkSoftDelete(ctx context.Context, hubID int64, ids []uuid.UUID, at time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("is_deleted", true).
		Set("deleted_at", at).
		Set("updated_at", at).
		Where(squirrel.Eq{"hub_id": hubID, "is_deleted": false}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: BulkSoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: BulkSoftDelete - execute update: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: BulkSoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// Helper methods

// execUpdate runs a single-row update and maps a zero row count to
// ErrBookingNotFound.
func (r *Repository) execUpdate(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// filterConditions translates a BookingsFilter into WHERE conditions.
func filterConditions(filter domain.BookingsFilter) squirrel.And {
	conditions := squirrel.And{
		squirrel.Eq{"hub_id": filter.HubID},
		squirrel.Eq{"is_deleted": false},
	}

	if filter.Status != nil {
		conditions = append(conditions, squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, squirrel.GtOrEq{"booking_date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		conditions = append(conditions, squirrel.LtOrEq{"booking_date": *filter.DateTo})
	}

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		conditions = append(conditions, squirrel.Or{
			squirrel.ILike{"booking_reference": pattern},
			squirrel.ILike{"customer_name": pattern},
			squirrel.ILike{"service_name": pattern},
			squirrel.ILike{"customer_email": pattern},
			squirrel.ILike{"customer_phone": pattern},
			squirrel.ILike{"staff_name": pattern},
		})
	}

	return conditions
}

// orderClauses builds the ORDER BY list for a filter. Date sorting gets
// the start time as a secondary key so same-day bookings stay ordered.
func orderClauses(filter domain.BookingsFilter) []string {
	dir := "DESC"
	if filter.SortDir == domain.SortAsc {
		dir = "ASC"
	}

	primary := filter.SortField.Column() + " " + dir
	if filter.SortField == domain.SortByDate || filter.SortField == "" {
		return []string{primary, "booking_time " + dir}
	}
	return []string{primary}
}

// nullUUID converts an optional UUID for insertion.
func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingRow scans a single result row into a booking.
func scanBookingRow(row rowScanner) (*domain.OnlineBooking, error) {
	var b domain.OnlineBooking
	var customerID, serviceID, staffID uuid.NullUUID
	var confirmedAt, cancelledAt, deletedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.HubID,
		&b.BookingReference,
		&customerID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&serviceID,
		&b.ServiceName,
		&staffID,
		&b.StaffName,
		&b.BookingDate,
		&b.BookingTime,
		&b.DurationMinutes,
		&b.Status,
		&b.Notes,
		&confirmedAt,
		&cancelledAt,
		&b.CancellationReason,
		&b.IsDeleted,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		b.CustomerID = &customerID.UUID
	}
	if serviceID.Valid {
		b.ServiceID = &serviceID.UUID
	}
	if staffID.Valid {
		b.StaffID = &staffID.UUID
	}
	if confirmedAt.Valid {
		b.ConfirmedAt = &confirmedAt.Time
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	if deletedAt.Valid {
		b.DeletedAt = &deletedAt.Time
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings scans all result rows into a slice of bookings.
func scanBookings(rows *sql.Rows) ([]*domain.OnlineBooking, error) {
	bookings := make([]*domain.OnlineBooking, 0)

	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
