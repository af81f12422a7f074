package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-erp/internal/access"
	"github.com/BruksfildServices01/salon-erp/internal/httperr"
	infraRepo "github.com/BruksfildServices01/salon-erp/internal/infra/repository"
	"github.com/BruksfildServices01/salon-erp/internal/testsupport"
)

type fixture struct {
	db     *gorm.DB
	sink   *testsupport.RecordingSink
	create *CreateAppointment
	update *UpdateAppointmentStatus
	list   *ListAppointments
	get    *GetAppointment
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testsupport.NewDB(t)
	testsupport.SeedLocation(t, db, "loc1", "Downtown")
	testsupport.SeedLocation(t, db, "loc2", "Uptown")
	testsupport.SeedStaff(t, db, "s1", "Bia", "loc1")
	testsupport.SeedClient(t, db, "c1", "Carla")
	testsupport.SeedService(t, db, "sv1", "Haircut", "80.00", 60)

	repo := infraRepo.NewAppointmentGormRepository(db)
	sink := &testsupport.RecordingSink{}

	return fixture{
		db:     db,
		sink:   sink,
		create: NewCreateAppointment(repo, sink),
		update: NewUpdateAppointmentStatus(repo, sink),
		list:   NewListAppointments(repo),
		get:    NewGetAppointment(repo),
	}
}

func bookingInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:  "c1",
		StaffID:   "s1",
		ServiceID: "sv1",
		Date:      "2025-01-10T10:00:00Z",
		Duration:  60,
	}
}

var admin = access.Actor{UserID: "u-admin", Name: "Admin", Role: access.RoleAdmin}

func TestCreateAppointmentStartsPending(t *testing.T) {
	f := newFixture(t)

	ap, err := f.create.Execute(context.Background(), admin, bookingInput())
	require.NoError(t, err)

	assert.Equal(t, "pending", ap.Status)
	require.Len(t, ap.StatusHistory, 1)
	assert.Equal(t, "Admin", ap.StatusHistory[0].UpdatedBy)
	assert.Equal(t, "loc1", ap.LocationID, "location falls back to the staff member's location")
	assert.Equal(t, "Carla", ap.ClientName)
	assert.Equal(t, "Haircut", ap.ServiceName)
	assert.True(t, ap.Price.Equal(decimal.RequireFromString("80")))
	assert.Equal(t, time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC), ap.Date)
	assert.Equal(t, []string{"appointment_created"}, f.sink.Actions())

	stored, err := f.get.Execute(context.Background(), admin, ap.ID)
	require.NoError(t, err)
	assert.Len(t, stored.StatusHistory, 1)
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]struct {
		mutate func(*CreateAppointmentInput)
		code   string
	}{
		"missing client":   {func(in *CreateAppointmentInput) { in.ClientID = "" }, "missing_client"},
		"missing service":  {func(in *CreateAppointmentInput) { in.ServiceID = "" }, "missing_service"},
		"zero duration":    {func(in *CreateAppointmentInput) { in.Duration = 0 }, "invalid_duration"},
		"bad date":         {func(in *CreateAppointmentInput) { in.Date = "10/01/2025" }, "invalid_date"},
		"unknown staff":    {func(in *CreateAppointmentInput) { in.StaffID = "nobody" }, "staff_not_found"},
		"unknown client":   {func(in *CreateAppointmentInput) { in.ClientID = "nobody" }, "client_not_found"},
		"unknown service":  {func(in *CreateAppointmentInput) { in.ServiceID = "nobody" }, "service_not_found"},
		"unknown location": {func(in *CreateAppointmentInput) { in.LocationID = "nowhere" }, "location_not_found"},
		"bad type":         {func(in *CreateAppointmentInput) { in.Type = "walk-in" }, "invalid_request"},
	}

	for name, tc := range cases {
		in := bookingInput()
		tc.mutate(&in)

		_, err := f.create.Execute(ctx, admin, in)
		assert.True(t, httperr.IsBusiness(err, tc.code), "%s: got %v", name, err)
	}
}

func TestCreateAppointmentChecksLocationAccess(t *testing.T) {
	f := newFixture(t)
	staff := access.Actor{UserID: "u2", Role: access.RoleStaff, LocationIDs: []string{"loc2"}}

	_, err := f.create.Execute(context.Background(), staff, bookingInput())
	assert.True(t, httperr.IsBusiness(err, "location_forbidden"))
}

func TestCreateBlockedSlot(t *testing.T) {
	f := newFixture(t)

	in := CreateAppointmentInput{
		StaffID:  "s1",
		Date:     "2025-01-10T13:00:00Z",
		Duration: 30,
		Type:     "blocked",
	}
	ap, err := f.create.Execute(context.Background(), admin, in)
	require.NoError(t, err)
	assert.Equal(t, "blocked", ap.Status)
	assert.Nil(t, ap.ClientID)
}

func TestUpdateStatusWalksLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, admin, bookingInput())
	require.NoError(t, err)

	_, err = f.update.Execute(ctx, admin, ap.ID, "confirmed", "")
	require.NoError(t, err)
	done, err := f.update.Execute(ctx, admin, ap.ID, "completed", "paid")
	require.NoError(t, err)

	assert.Equal(t, "completed", done.Status)
	require.Len(t, done.StatusHistory, 3)

	stored, err := f.get.Execute(ctx, admin, ap.ID)
	require.NoError(t, err)
	require.Len(t, stored.StatusHistory, 3)
	var last time.Time
	for i, want := range []string{"pending", "confirmed", "completed"} {
		e := stored.StatusHistory[i]
		assert.Equal(t, want, e.Status)
		assert.False(t, e.Timestamp.Before(last), "timestamps must not decrease")
		last = e.Timestamp
	}
	assert.Equal(t, "paid", stored.StatusHistory[2].Note)

	assert.Equal(t, []string{
		"appointment_created",
		"appointment_status_changed",
		"appointment_status_changed",
	}, f.sink.Actions())
}

func TestUpdateStatusRejectsIllegalAndUnknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create.Execute(ctx, admin, bookingInput())
	require.NoError(t, err)

	_, err = f.update.Execute(ctx, admin, ap.ID, "finished", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = f.update.Execute(ctx, admin, ap.ID, "completed", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	_, err = f.update.Execute(ctx, admin, "missing", "confirmed", "")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	stored, err := f.get.Execute(ctx, admin, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)
	assert.Len(t, stored.StatusHistory, 1)
}

func TestListAppointmentsRespectsActorScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, admin, bookingInput())
	require.NoError(t, err)

	other := access.Actor{UserID: "u3", Role: access.RoleStaff, LocationIDs: []string{"loc2"}}
	apps, err := f.list.Execute(ctx, other, ListAppointmentsInput{})
	require.NoError(t, err)
	assert.Empty(t, apps)

	_, err = f.list.Execute(ctx, other, ListAppointmentsInput{LocationID: "loc1"})
	assert.True(t, httperr.IsBusiness(err, "location_forbidden"))

	apps, err = f.list.Execute(ctx, admin, ListAppointmentsInput{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
