package appointment

import "github.com/BruksfildServices01/salon-erp/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusCheckedIn      Status = "checked-in"
	StatusArrived        Status = "arrived"
	StatusServiceStarted Status = "service-started"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
	StatusNoShow         Status = "no-show"
	StatusBlocked        Status = "blocked"
)

const (
	TypeAppointment = "appointment"
	TypeBlocked     = "blocked"
)

// transitions lists the allowed next states for each state.
// States without an entry are terminal.
var transitions = map[Status][]Status{
	StatusPending: {
		StatusConfirmed, StatusCheckedIn, StatusArrived,
		StatusCancelled, StatusNoShow,
	},
	StatusConfirmed: {
		StatusCheckedIn, StatusArrived, StatusServiceStarted,
		StatusCompleted, StatusCancelled, StatusNoShow,
	},
	StatusCheckedIn:      {StatusServiceStarted, StatusCompleted, StatusCancelled},
	StatusArrived:        {StatusServiceStarted, StatusCompleted, StatusCancelled},
	StatusServiceStarted: {StatusCompleted},
	StatusBlocked:        {StatusCancelled},
}

var known = map[Status]bool{
	StatusPending: true, StatusConfirmed: true, StatusCheckedIn: true,
	StatusArrived: true, StatusServiceStarted: true, StatusCompleted: true,
	StatusCancelled: true, StatusNoShow: true, StatusBlocked: true,
}

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !known[st] {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return st, nil
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether from → to is an allowed move.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func AllowedNext(from Status) []Status {
	out := make([]Status, len(transitions[from]))
	copy(out, transitions[from])
	return out
}

// InitialStatus is the status a new booking starts in.
func InitialStatus(kind string) Status {
	if kind == TypeBlocked {
		return StatusBlocked
	}
	return StatusPending
}
