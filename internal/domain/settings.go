package domain

import "time"

// BookingPageSettings is the per-hub configuration of the public
// booking page. Exactly one record exists per hub; it is created
// lazily with defaults on first access.
type BookingPageSettings struct {
	ID    int64
	HubID int64

	// Page status
	IsEnabled bool

	// Page customization
	PageTitle      string
	WelcomeMessage string
	PrimaryColor   string
	LogoURL        string

	// Required customer fields
	RequirePhone bool
	RequireEmail bool

	// Booking options
	AllowStaffSelection bool
	AllowNotes          bool

	// Booking rules
	MinAdvanceHours     int
	MaxAdvanceDays      int
	SlotDurationMinutes int
	BufferMinutes       int

	// Messages
	ConfirmationMessage string
	CancellationPolicy  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings returns the settings a hub gets on first access.
func DefaultSettings(hubID int64) *BookingPageSettings {
	return &BookingPageSettings{
		HubID:               hubID,
		IsEnabled:           false,
		PageTitle:           DefaultPageTitle,
		PrimaryColor:        DefaultPrimaryColor,
		RequirePhone:        true,
		RequireEmail:        true,
		AllowStaffSelection: true,
		AllowNotes:          true,
		MinAdvanceHours:     DefaultMinAdvanceHours,
		MaxAdvanceDays:      DefaultMaxAdvanceDays,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		BufferMinutes:       DefaultBufferMinutes,
		ConfirmationMessage: DefaultConfirmationMessage,
	}
}
