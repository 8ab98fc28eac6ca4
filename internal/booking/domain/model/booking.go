package model

import (
	"errors"
	"time"

	"mentorhub/internal/shared/types"
)

// Domain errors for booking operations
var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrSameParticipant    = errors.New("mentor and mentee must be distinct users")
	ErrEmptyParticipant   = errors.New("mentor and mentee ids are required")
	ErrEmptySchedule      = errors.New("date, start time and end time are required")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrTerminalStatus     = errors.New("booking is in a terminal status")
	ErrParticipantMissing = errors.New("referenced user does not exist")
)

// Status represents the lifecycle state of a booking
type Status string

const (
	StatusAccepted    Status = "accepted"
	StatusRescheduled Status = "rescheduled"
	StatusRejected    Status = "rejected"
	StatusCancelled   Status = "cancelled"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusAccepted, StatusRescheduled, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// transitions is the closed set of permitted status changes. Accepting an
// already accepted booking is a no-op transition so that confirmation is
// idempotent.
var transitions = map[Status][]Status{
	StatusAccepted:    {StatusAccepted, StatusRescheduled, StatusRejected, StatusCancelled},
	StatusRescheduled: {StatusAccepted, StatusCancelled},
	StatusRejected:    {},
	StatusCancelled:   {},
}

// CanTransitionTo reports whether a booking in status s may move to next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking is a scheduled slot between a mentor and a mentee. Participants are
// referenced by user id; the booking does not own the user records.
type Booking struct {
	ID        string                    `json:"id"`
	MentorID  string                    `json:"mentorId"`
	MenteeID  string                    `json:"menteeId"`
	Date      string                    `json:"date"`
	StartTime string                    `json:"startTime"`
	EndTime   string                    `json:"endTime"`
	Status    Status                    `json:"status"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt types.Optional[time.Time] `json:"updatedAt"`
}

// ValidateFields checks structural validity of the booking record
func (b *Booking) ValidateFields() error {
	if b.MentorID == "" || b.MenteeID == "" {
		return ErrEmptyParticipant
	}
	if b.MentorID == b.MenteeID {
		return ErrSameParticipant
	}
	if b.Date == "" || b.StartTime == "" || b.EndTime == "" {
		return ErrEmptySchedule
	}
	if !b.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Transition moves the booking to next if the state machine permits it,
// stamping UpdatedAt. Terminal states reject every transition.
func (b *Booking) Transition(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.Status.CanTransitionTo(next) {
		if b.Status.Terminal() {
			return ErrTerminalStatus
		}
		return ErrInvalidTransition
	}
	b.Status = next
	b.UpdatedAt = types.Some(now)
	return nil
}
