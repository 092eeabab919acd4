package domain

import "time"

// SortField selects the column a bookings list is ordered by.
type SortField string

const (
	SortByReference SortField = "reference"
	SortByCustomer  SortField = "customer"
	SortByService   SortField = "service"
	SortByDate      SortField = "date"
	SortByStatus    SortField = "status"
	SortByCreated   SortField = "created"
)

// SortDir is the sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// PerPageChoices are the only page sizes the list view accepts.
var PerPageChoices = []int{10, 25, 50, 100}

// DefaultPerPage is used when the requested page size is absent or not
// one of PerPageChoices.
const DefaultPerPage = 10

// Column returns the database column behind a sort field. Unknown
// fields fall back to the booking date.
func (f SortField) Column() string {
	switch f {
	case SortByReference:
		return "booking_reference"
	case SortByCustomer:
		return "customer_name"
	case SortByService:
		return "service_name"
	case SortByStatus:
		return "status"
	case SortByCreated:
		return "created_at"
	default:
		return "booking_date"
	}
}

// ParseSortField maps a request value to a sort field, defaulting to date.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByReference, SortByCustomer, SortByService, SortByDate, SortByStatus, SortByCreated:
		return SortField(s)
	default:
		return SortByDate
	}
}

// ParseSortDir maps a request value to a direction, defaulting to descending.
func ParseSortDir(s string) SortDir {
	if SortDir(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// NormalizePerPage clamps a requested page size to an allowed choice.
func NormalizePerPage(perPage int) int {
	for _, allowed := range PerPageChoices {
		if perPage == allowed {
			return perPage
		}
	}
	return DefaultPerPage
}

// MaxListLimit caps free-form row limits from non-paginated callers.
const MaxListLimit = 100

// ClampLimit bounds a free-form row limit to 1..MaxListLimit. Unlike
// NormalizePerPage it keeps any value in range as-is.
func ClampLimit(limit int) int {
	if limit < 1 {
		return DefaultPerPage
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// BookingsFilter describes one bookings list query. Soft-deleted rows
// are always excluded by the repository.
type BookingsFilter struct {
	HubID int64 // required; every query is tenant-scoped

	// Query is a free-text search matched case-insensitively as a
	// substring of reference, customer name, service name, email,
	// phone and staff name.
	Query string

	Status   *BookingStatus // optional equality filter
	DateFrom *time.Time     // optional, inclusive
	DateTo   *time.Time     // optional, inclusive

	SortField SortField
	SortDir   SortDir

	Page    int // 1-based; values < 1 mean the first page
	PerPage int // one of PerPageChoices, or a clamped free-form limit
}

// Offset returns the row offset for the requested page.
func (f BookingsFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PerPage
}
