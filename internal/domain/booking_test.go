package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		status       BookingStatus
		canConfirm   bool
		canCancel    bool
		canComplete  bool
		canMarkNoShow bool
	}{
		{StatusPending, true, true, false, false},
		{StatusConfirmed, false, true, true, true},
		{StatusCancelled, false, false, false, false},
		{StatusCompleted, false, false, false, false},
		{StatusNoShow, false, false, false, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			b := &OnlineBooking{Status: tc.status}
			assert.Equal(t, tc.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tc.canCancel, b.CanBeCancelled())
			assert.Equal(t, tc.canComplete, b.CanBeCompleted())
			assert.Equal(t, tc.canMarkNoShow, b.CanBeMarkedNoShow())
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, (&OnlineBooking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&OnlineBooking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&OnlineBooking{Status: StatusCancelled}).IsTerminal())
	assert.True(t, (&OnlineBooking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&OnlineBooking{Status: StatusNoShow}).IsTerminal())
}

func TestStatusActionAllowedFrom(t *testing.T) {
	assert.Equal(t, []BookingStatus{StatusPending}, ActionConfirm.AllowedFrom())
	assert.Equal(t, []BookingStatus{StatusPending, StatusConfirmed}, ActionCancel.AllowedFrom())
	assert.Equal(t, []BookingStatus{StatusConfirmed}, ActionComplete.AllowedFrom())
	assert.Equal(t, []BookingStatus{StatusConfirmed}, ActionNoShow.AllowedFrom())
	assert.Nil(t, StatusAction("approve").AllowedFrom())
}

func TestStatusActionTarget(t *testing.T) {
	assert.Equal(t, StatusConfirmed, ActionConfirm.Target())
	assert.Equal(t, StatusCancelled, ActionCancel.Target())
	assert.Equal(t, StatusCompleted, ActionComplete.Target())
	assert.Equal(t, StatusNoShow, ActionNoShow.Target())
}

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid())
	}
	assert.False(t, BookingStatus("in_progress").Valid())
	assert.False(t, BookingStatus("").Valid())
}
