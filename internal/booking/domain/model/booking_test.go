package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusAccepted.IsValid())
	assert.True(t, StatusRescheduled.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, Status("pending").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusAccepted.Terminal())
	assert.False(t, StatusRescheduled.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusAccepted, StatusAccepted, true},
		{StatusAccepted, StatusRescheduled, true},
		{StatusAccepted, StatusRejected, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusRescheduled, StatusAccepted, true},
		{StatusRescheduled, StatusCancelled, true},
		{StatusRescheduled, StatusRejected, false},
		{StatusRescheduled, StatusRescheduled, false},
		{StatusRejected, StatusAccepted, false},
		{StatusRejected, StatusCancelled, false},
		{StatusCancelled, StatusAccepted, false},
		{StatusCancelled, StatusRescheduled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBooking_ValidateFields(t *testing.T) {
	valid := Booking{
		MentorID:  "m1",
		MenteeID:  "e1",
		Date:      "2024-05-01",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    StatusAccepted,
	}
	assert.NoError(t, valid.ValidateFields())

	sameParty := valid
	sameParty.MenteeID = "m1"
	assert.ErrorIs(t, sameParty.ValidateFields(), ErrSameParticipant)

	noMentor := valid
	noMentor.MentorID = ""
	assert.ErrorIs(t, noMentor.ValidateFields(), ErrEmptyParticipant)

	noDate := valid
	noDate.Date = ""
	assert.ErrorIs(t, noDate.ValidateFields(), ErrEmptySchedule)

	badStatus := valid
	badStatus.Status = "pending"
	assert.ErrorIs(t, badStatus.ValidateFields(), ErrInvalidStatus)
}

func TestBooking_Transition_StampsUpdatedAt(t *testing.T) {
	b := Booking{Status: StatusAccepted}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, b.Transition(StatusRescheduled, now))
	assert.Equal(t, StatusRescheduled, b.Status)
	require.True(t, b.UpdatedAt.Valid)
	assert.Equal(t, now, b.UpdatedAt.Value)
}

func TestBooking_Transition_TerminalRejectsAll(t *testing.T) {
	now := time.Now()

	b := Booking{Status: StatusCancelled}
	err := b.Transition(StatusAccepted, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTerminalStatus)
	assert.False(t, b.UpdatedAt.Valid)

	b = Booking{Status: StatusRejected}
	assert.ErrorIs(t, b.Transition(StatusRescheduled, now), ErrTerminalStatus)
}

func TestBooking_Transition_Invalid(t *testing.T) {
	b := Booking{Status: StatusRescheduled}
	err := b.Transition(StatusRejected, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusRescheduled, b.Status)
}

func TestBooking_Transition_UnknownStatus(t *testing.T) {
	b := Booking{Status: StatusAccepted}
	assert.ErrorIs(t, b.Transition("pending", time.Now()), ErrInvalidStatus)
}
