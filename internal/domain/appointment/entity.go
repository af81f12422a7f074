package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Open sets the initial status of a new appointment and writes its first
// history entry.
func Open(ap *models.Appointment, now time.Time, by string) {
	st := InitialStatus(ap.Type)
	ap.Status = string(st)
	ap.StatusHistory = []models.AppointmentStatusEntry{{
		Seq:       1,
		Status:    string(st),
		Timestamp: now,
		UpdatedBy: by,
	}}
}

// Transition moves ap to next, appending one history entry. The returned
// entry is the one appended; prev is the status before the move.
// Entry timestamps never go backwards even if the clock does.
func Transition(
	ap *models.Appointment,
	next Status,
	now time.Time,
	by string,
	note string,
) (entry models.AppointmentStatusEntry, prev Status, err error) {

	prev, err = ParseStatus(ap.Status)
	if err != nil {
		return entry, "", err
	}
	if !CanTransition(prev, next) {
		return entry, prev, httperr.ErrBusiness("invalid_transition")
	}

	seq := 1
	if n := len(ap.StatusHistory); n > 0 {
		last := ap.StatusHistory[n-1]
		seq = last.Seq + 1
		if now.Before(last.Timestamp) {
			now = last.Timestamp
		}
	}

	entry = models.AppointmentStatusEntry{
		AppointmentID: ap.ID,
		Seq:           seq,
		Status:        string(next),
		Timestamp:     now,
		UpdatedBy:     by,
		Note:          note,
	}

	ap.Status = string(next)
	ap.StatusHistory = append(ap.StatusHistory, entry)

	switch next {
	case StatusCheckedIn, StatusArrived:
		ap.CheckedInAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}

	return entry, prev, nil
}
