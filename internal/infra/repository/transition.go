package repository

import (
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
)

// saveTransition writes a status change as a compare-and-swap on the status
// column plus one history insert. A concurrent change makes the swap miss.
func saveTransition(
	tx *gorm.DB,
	ap *models.Appointment,
	prev domain.Status,
	entry models.AppointmentStatusEntry,
) error {

	res := tx.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(prev)).
		Updates(map[string]any{
			"status":        ap.Status,
			"checked_in_at": ap.CheckedInAt,
			"completed_at":  ap.CompletedAt,
			"cancelled_at":  ap.CancelledAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("invalid_transition")
	}

	if err := tx.Create(&entry).Error; err != nil {
		return err
	}

	if n := len(ap.StatusHistory); n > 0 && ap.StatusHistory[n-1].Seq == entry.Seq {
		ap.StatusHistory[n-1] = entry
	}
	return nil
}
