package domain

// Default settings values (mirrored by the database defaults)
const (
	DefaultPageTitle           = "Book an Appointment"
	DefaultPrimaryColor        = "#6366f1"
	DefaultMinAdvanceHours     = 2
	DefaultMaxAdvanceDays      = 30
	DefaultSlotDurationMinutes = 30
	DefaultBufferMinutes       = 0
	DefaultConfirmationMessage = "Your appointment has been booked successfully. We will confirm it shortly."

	// DefaultDurationMinutes is the appointment length used when a
	// booking arrives without one and no settings override exists.
	DefaultDurationMinutes = 30
)

// Settings validation bounds
const (
	MinAdvanceHoursLimit       = 168 // one week
	MaxAdvanceDaysLimit        = 365
	MinSlotDurationMinutes     = 5
	MaxSlotDurationMinutes     = 480 // 8 hours
	MaxBufferMinutes           = 120
	MaxNotesLength             = 2000
	MaxCancellationReasonLength = 500
	MaxNameLength              = 255
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
