package service

import (
	"testing"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func newAppointmentFixture() (*AppointmentService, *fakeAppointmentStore, *stubNotifier) {
	store := newFakeAppointmentStore()
	store.users[1] = true
	store.admins[5] = &models.Admin{ID: 5, Username: "frontdesk", Role: models.AdminRoleStaff}
	store.doctors[7] = true

	notifier := &stubNotifier{}
	svc := NewAppointmentService(store, notifier, &stubLogger{})
	return svc, store, notifier
}

func validAppointmentInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		UserID:          1,
		DoctorID:        7,
		ServiceType:     models.ServiceOutpatient,
		AppointmentDate: "2030-01-10",
		AppointmentTime: "09:30",
		Complaint:       "Recurring headaches",
		PaymentMethod:   models.PayBPJS,
		TotalCost:       75,
	}
}

func TestCreateAppointment(t *testing.T) {
	svc, _, notifier := newAppointmentFixture()

	appointment, err := svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentPending, appointment.Status)
	assert.Contains(t, appointment.TicketNumber, "APP")
	assert.Len(t, notifier.sent, 1)
}

func TestCreateAppointmentPastDateRejected(t *testing.T) {
	svc, store, _ := newAppointmentFixture()

	input := validAppointmentInput()
	input.AppointmentDate = "2020-06-01"

	_, err := svc.CreateAppointment(input)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
	assert.Empty(t, store.appointments)
}

func TestCreateAppointmentUnknownDoctorRejected(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	input := validAppointmentInput()
	input.DoctorID = 99

	_, err := svc.CreateAppointment(input)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestConfirmAppointment(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	appointment, err := svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)

	confirmed, err := svc.ConfirmAppointment(appointment.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentConfirmed, confirmed.Status)
	assert.Equal(t, uint(5), *confirmed.Confirmed.AdminID)
	assert.Equal(t, models.AdminRoleStaff, confirmed.Confirmed.Role)

	_, err = svc.ConfirmAppointment(appointment.ID, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestCompleteAppointmentRequiresConfirmation(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	appointment, err := svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)

	_, err = svc.UpdateAppointment(appointment.ID, UpdateAppointmentInput{Status: models.AppointmentCompleted}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))

	_, err = svc.ConfirmAppointment(appointment.ID, 5)
	assert.NoError(t, err)

	completed, err := svc.UpdateAppointment(appointment.ID, UpdateAppointmentInput{Status: models.AppointmentCompleted}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, completed.Status)
}

func TestCancelledAppointmentCannotBeConfirmed(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	appointment, err := svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)

	_, err = svc.UpdateAppointment(appointment.ID, UpdateAppointmentInput{Status: models.AppointmentCancelled}, 5)
	assert.NoError(t, err)

	_, err = svc.ConfirmAppointment(appointment.ID, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestRescheduleToPastDateRejected(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	appointment, err := svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)

	_, err = svc.UpdateAppointment(appointment.ID, UpdateAppointmentInput{AppointmentDate: "2020-06-01"}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestListAppointmentsByStatus(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	first, err := svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)

	_, err = svc.CreateAppointment(validAppointmentInput())
	assert.NoError(t, err)

	_, err = svc.ConfirmAppointment(first.ID, 5)
	assert.NoError(t, err)

	pending, err := svc.ListAppointments(AppointmentListQuery{Status: models.AppointmentPending})
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
}
