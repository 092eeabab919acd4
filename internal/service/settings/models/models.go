package models

import (
	"time"

	"github.com/erplora/OnlineBooking-Service/internal/domain"
)

// UpdateSettingsRequest carries a settings update. Omitted fields keep
// their current values, so a client can flip one switch without
// resending the whole page configuration.
type UpdateSettingsRequest struct {
	IsEnabled *bool `json:"isEnabled,omitempty"`

	PageTitle      *string `json:"pageTitle,omitempty"`
	WelcomeMessage *string `json:"welcomeMessage,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`

	RequirePhone *bool `json:"requirePhone,omitempty"`
	RequireEmail *bool `json:"requireEmail,omitempty"`

	AllowStaffSelection *bool `json:"allowStaffSelection,omitempty"`
	AllowNotes          *bool `json:"allowNotes,omitempty"`

	MinAdvanceHours     *int `json:"minAdvanceHours,omitempty"`
	MaxAdvanceDays      *int `json:"maxAdvanceDays,omitempty"`
	SlotDurationMinutes *int `json:"slotDurationMinutes,omitempty"`
	BufferMinutes       *int `json:"bufferMinutes,omitempty"`

	ConfirmationMessage *string `json:"confirmationMessage,omitempty"`
	CancellationPolicy  *string `json:"cancellationPolicy,omitempty"`
}

// ApplyTo copies the set fields onto the current settings record.
func (r *UpdateSettingsRequest) ApplyTo(s *domain.BookingPageSettings) {
	if r.IsEnabled != nil {
		s.IsEnabled = *r.IsEnabled
	}
	if r.PageTitle != nil {
		s.PageTitle = *r.PageTitle
	}
	if r.WelcomeMessage != nil {
		s.WelcomeMessage = *r.WelcomeMessage
	}
	if r.PrimaryColor != nil {
		s.PrimaryColor = *r.PrimaryColor
	}
	if r.LogoURL != nil {
		s.LogoURL = *r.LogoURL
	}
	if r.RequirePhone != nil {
		s.RequirePhone = *r.RequirePhone
	}
	if r.RequireEmail != nil {
		s.RequireEmail = *r.RequireEmail
	}
	if r.AllowStaffSelection != nil {
		s.AllowStaffSelection = *r.AllowStaffSelection
	}
	if r.AllowNotes != nil {
		s.AllowNotes = *r.AllowNotes
	}
	if r.MinAdvanceHours != nil {
		s.MinAdvanceHours = *r.MinAdvanceHours
	}
	if r.MaxAdvanceDays != nil {
		s.MaxAdvanceDays = *r.MaxAdvanceDays
	}
	if r.SlotDurationMinutes != nil {
		s.SlotDurationMinutes = *r.SlotDurationMinutes
	}
	if r.BufferMinutes != nil {
		s.BufferMinutes = *r.BufferMinutes
	}
	if r.ConfirmationMessage != nil {
		s.ConfirmationMessage = *r.ConfirmationMessage
	}
	if r.CancellationPolicy != nil {
		s.CancellationPolicy = *r.CancellationPolicy
	}
}

// SettingsResponse is the settings DTO returned by the service.
type SettingsResponse struct {
	IsEnabled bool `json:"isEnabled"`

	PageTitle      string `json:"pageTitle"`
	WelcomeMessage string `json:"welcomeMessage"`
	PrimaryColor   string `json:"primaryColor"`
	LogoURL        string `json:"logoUrl"`

	RequirePhone bool `json:"requirePhone"`
	RequireEmail bool `json:"requireEmail"`

	AllowStaffSelection bool `json:"allowStaffSelection"`
	AllowNotes          bool `json:"allowNotes"`

	MinAdvanceHours     int `json:"minAdvanceHours"`
	MaxAdvanceDays      int `json:"maxAdvanceDays"`
	SlotDurationMinutes int `json:"slotDurationMinutes"`
	BufferMinutes       int `json:"bufferMinutes"`

	ConfirmationMessage string `json:"confirmationMessage"`
	CancellationPolicy  string `json:"cancellationPolicy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainSettings converts a domain settings record into a DTO.
func FromDomainSettings(s *domain.BookingPageSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		IsEnabled:           s.IsEnabled,
		PageTitle:           s.PageTitle,
		WelcomeMessage:      s.WelcomeMessage,
		PrimaryColor:        s.PrimaryColor,
		LogoURL:             s.LogoURL,
		RequirePhone:        s.RequirePhone,
		RequireEmail:        s.RequireEmail,
		AllowStaffSelection: s.AllowStaffSelection,
		AllowNotes:          s.AllowNotes,
		MinAdvanceHours:     s.MinAdvanceHours,
		MaxAdvanceDays:      s.MaxAdvanceDays,
		SlotDurationMinutes: s.SlotDurationMinutes,
		BufferMinutes:       s.BufferMinutes,
		ConfirmationMessage: s.ConfirmationMessage,
		CancellationPolicy:  s.CancellationPolicy,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
