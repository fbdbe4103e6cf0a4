package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipline/barber-booking/internal/cache"
	domain "github.com/clipline/barber-booking/internal/domain/appointment"
	"github.com/clipline/barber-booking/internal/domain/schedule"
	"github.com/clipline/barber-booking/internal/httperr"
	"github.com/clipline/barber-booking/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	domain.Repository

	shop     *models.Barbershop
	service  *models.Service
	customer *models.Customer

	conflictErr error
	createErr   error

	created *models.Appointment
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, _ uint) (*models.Barbershop, error) {
	return f.shop, nil
}

func (f *fakeRepo) GetService(_ context.Context, _ uint, serviceID uint) (*models.Service, error) {
	if f.service == nil || f.service.ID != serviceID {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return f.service, nil
}

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, _ uint, _, _, _ string) (*models.Customer, error) {
	return f.customer, nil
}

func (f *fakeRepo) AssertNoTimeConflict(_ context.Context, _ uint, _, _ time.Time) error {
	return f.conflictErr
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = ap
	return nil
}

type fakeWindows struct {
	windows []models.WorkHours
}

func (f *fakeWindows) ActiveWindows(_ context.Context, _ uint, _ int) ([]models.WorkHours, error) {
	return f.windows, nil
}

type fakeBusy struct{}

func (fakeBusy) AppointmentsForDay(_ context.Context, _ uint, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

// ======================================================
// SETUP
// ======================================================

func newCreateUC(repo *fakeRepo, windows []models.WorkHours) *CreateAppointment {
	engine := schedule.NewEngine(&fakeWindows{windows: windows}, fakeBusy{})
	return NewCreateAppointment(repo, engine, cache.NewSlotsCache(""), nil)
}

func baseRepo() *fakeRepo {
	return &fakeRepo{
		shop:     &models.Barbershop{ID: 1, MinAdvanceMinutes: 120},
		service:  &models.Service{ID: 7, BarbershopID: 1, DurationMin: 30},
		customer: &models.Customer{ID: 3, BarbershopID: 1},
	}
}

func baseInput(date, hour string) CreateAppointmentInput {
	return CreateAppointmentInput{
		BarbershopID:  1,
		BarberID:      2,
		CustomerName:  "João",
		CustomerPhone: "11999990000",
		ServiceID:     7,
		Date:          date,
		Time:          hour,
	}
}

// allDay cobre qualquer horário de teste sem depender do dia da semana.
func allDay() []models.WorkHours {
	return []models.WorkHours{
		{BarberID: 2, Active: true, StartTime: "00:00", EndTime: "23:59"},
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateAppointment_Success(t *testing.T) {
	repo := baseRepo()
	uc := newCreateUC(repo, allDay())

	ap, err := uc.Execute(context.Background(), baseInput("2031-06-02", "10:00"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEmpty(t, ap.Ref)
	assert.Equal(t, ap.StartTime.Add(30*time.Minute), ap.EndTime)
	assert.Equal(t, repo.created, ap)
}

func TestCreateAppointment_InvalidDate(t *testing.T) {
	uc := newCreateUC(baseRepo(), allDay())

	_, err := uc.Execute(context.Background(), baseInput("02/06/2031", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateAppointment_TooSoon(t *testing.T) {
	uc := newCreateUC(baseRepo(), allDay())

	_, err := uc.Execute(context.Background(), baseInput("2020-01-06", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "too_soon"))
}

func TestCreateAppointment_UnknownService(t *testing.T) {
	uc := newCreateUC(baseRepo(), allDay())

	in := baseInput("2031-06-02", "10:00")
	in.ServiceID = 99

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	uc := newCreateUC(baseRepo(), nil) // sem expediente

	_, err := uc.Execute(context.Background(), baseInput("2031-06-02", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
}

func TestCreateAppointment_ConflictOnPrecheck(t *testing.T) {
	repo := baseRepo()
	repo.conflictErr = httperr.ErrBusiness("time_conflict")
	uc := newCreateUC(repo, allDay())

	_, err := uc.Execute(context.Background(), baseInput("2031-06-02", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	assert.Nil(t, repo.created)
}

// Duas reservas simultâneas passam no pré-check; a perdedora morre no
// índice parcial do banco e tem que sair como o mesmo time_conflict.
func TestCreateAppointment_ConflictOnUniqueIndex(t *testing.T) {
	repo := baseRepo()
	repo.createErr = &pgconn.PgError{Code: "23505"}
	uc := newCreateUC(repo, allDay())

	_, err := uc.Execute(context.Background(), baseInput("2031-06-02", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}

func TestCreateAppointment_DefaultDurationWhenServiceHasNone(t *testing.T) {
	repo := baseRepo()
	repo.service.DurationMin = 0
	uc := newCreateUC(repo, allDay())

	ap, err := uc.Execute(context.Background(), baseInput("2031-06-02", "10:00"))
	require.NoError(t, err)

	assert.Equal(t, ap.StartTime.Add(30*time.Minute), ap.EndTime)
}
