package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-erp/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	"github.com/BruksfildServices01/salon-erp/internal/models"
	"github.com/BruksfildServices01/salon-erp/internal/testsupport"
)

var day = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

func seedAppointment(t *testing.T, repo *AppointmentGormRepository, id, loc string, at time.Time) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		Base:       models.Base{ID: id},
		LocationID: loc,
		StaffID:    "s1",
		StaffName:  "Bia",
		Date:       at,
		Duration:   60,
		Type:       domain.TypeAppointment,
		Price:      decimal.RequireFromString("80"),
	}
	domain.Open(ap, at.Add(-24*time.Hour), "test")
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestCreateAndGetAppointmentKeepsHistory(t *testing.T) {
	repo := NewAppointmentGormRepository(testsupport.NewDB(t))
	seedAppointment(t, repo, "a1", "loc1", day)

	got, err := repo.GetAppointment(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
	require.Len(t, got.StatusHistory, 1)
	assert.Equal(t, "pending", got.StatusHistory[0].Status)

	_, err = repo.GetAppointment(context.Background(), "missing")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestSaveTransitionPersistsInOrder(t *testing.T) {
	repo := NewAppointmentGormRepository(testsupport.NewDB(t))
	ctx := context.Background()
	seedAppointment(t, repo, "a1", "loc1", day)

	for _, next := range []domain.Status{domain.StatusConfirmed, domain.StatusCompleted} {
		ap, err := repo.GetAppointment(ctx, "a1")
		require.NoError(t, err)

		entry, prev, err := domain.Transition(ap, next, time.Now().UTC(), "Bia", "")
		require.NoError(t, err)
		require.NoError(t, repo.SaveTransition(ctx, ap, prev, entry))
	}

	got, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.CompletedAt)
	require.Len(t, got.StatusHistory, 3)
	for i, want := range []string{"pending", "confirmed", "completed"} {
		assert.Equal(t, want, got.StatusHistory[i].Status)
		assert.Equal(t, i+1, got.StatusHistory[i].Seq)
	}
}

func TestSaveTransitionDetectsConcurrentChange(t *testing.T) {
	repo := NewAppointmentGormRepository(testsupport.NewDB(t))
	ctx := context.Background()
	seedAppointment(t, repo, "a1", "loc1", day)

	first, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	second, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)

	entry, prev, err := domain.Transition(first, domain.StatusConfirmed, time.Now().UTC(), "Ana", "")
	require.NoError(t, err)
	require.NoError(t, repo.SaveTransition(ctx, first, prev, entry))

	entry, prev, err = domain.Transition(second, domain.StatusCancelled, time.Now().UTC(), "Bia", "")
	require.NoError(t, err)
	err = repo.SaveTransition(ctx, second, prev, entry)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	got, err := repo.GetAppointment(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	assert.Len(t, got.StatusHistory, 2)
}

func TestListAppointmentsFilters(t *testing.T) {
	repo := NewAppointmentGormRepository(testsupport.NewDB(t))
	ctx := context.Background()
	seedAppointment(t, repo, "a1", "loc1", day)
	seedAppointment(t, repo, "a2", "loc1", day.Add(48*time.Hour))
	seedAppointment(t, repo, "a3", "loc2", day)

	apps, err := repo.ListAppointments(ctx, domain.ListFilter{Restricted: true, LocationIDs: []string{"loc1"}})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "a1", apps[0].ID)
	assert.Len(t, apps[0].StatusHistory, 1)

	to := day.Add(24 * time.Hour)
	apps, err = repo.ListAppointments(ctx, domain.ListFilter{From: &day, To: &to})
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	apps, err = repo.ListAppointments(ctx, domain.ListFilter{Restricted: true})
	require.NoError(t, err)
	assert.Empty(t, apps)
}
