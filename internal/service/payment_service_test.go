package service

import (
	"strings"
	"testing"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func newPaymentFixture() (*PaymentService, *fakePaymentStore, *stubNotifier) {
	store := newFakePaymentStore()
	store.users[1] = true
	store.admins[5] = &models.Admin{ID: 5, Username: "cashier", Role: models.AdminRoleStaff}
	store.bookings[20] = true
	store.appointments[30] = true

	notifier := &stubNotifier{}
	svc := NewPaymentService(store, notifier, &stubLogger{})
	return svc, store, notifier
}

func TestCreatePayment(t *testing.T) {
	svc, _, notifier := newPaymentFixture()

	payment, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefRoomBooking,
		ReferenceID:   20,
		Amount:        400,
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.True(t, strings.HasPrefix(payment.TransactionID, "TRX"))
	assert.Equal(t, uint(20), *payment.RoomBookingID)
	assert.Nil(t, payment.AppointmentID)
	assert.Nil(t, payment.PaidAt)
	assert.Len(t, notifier.sent, 1)
}

func TestCreatePaymentUnknownReferenceRejected(t *testing.T) {
	svc, store, _ := newPaymentFixture()

	_, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefAmbulance,
		ReferenceID:   99,
		Amount:        150,
		PaymentMethod: models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, store.payments)
}

func TestConfirmPayment(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	payment, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefAppointment,
		ReferenceID:   30,
		Amount:        75,
		PaymentMethod: models.PayBPJS,
	})
	assert.NoError(t, err)

	confirmed, err := svc.ConfirmPayment(payment.ID, ConfirmPaymentInput{ProcessorRef: "BPJS-2026-0042"}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, confirmed.Status)
	assert.NotNil(t, confirmed.PaidAt)
	assert.Equal(t, uint(5), *confirmed.Processed.AdminID)
	assert.Equal(t, "BPJS-2026-0042", confirmed.ProcessorRef)
}

func TestConfirmPaymentTwiceRejected(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	payment, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefRoomBooking,
		ReferenceID:   20,
		Amount:        400,
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	first, err := svc.ConfirmPayment(payment.ID, ConfirmPaymentInput{}, 5)
	assert.NoError(t, err)
	paidAt := *first.PaidAt

	_, err = svc.ConfirmPayment(payment.ID, ConfirmPaymentInput{}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindAlreadyConfirmed, apperr.KindOf(err))

	// The settlement timestamp from the first confirmation is untouched
	after, err := svc.GetPayment(payment.ID)
	assert.NoError(t, err)
	assert.Equal(t, paidAt, *after.PaidAt)
}

func TestRefundRequiresSettledPayment(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	payment, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefRoomBooking,
		ReferenceID:   20,
		Amount:        400,
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.UpdatePayment(payment.ID, UpdatePaymentInput{Status: models.PaymentRefunded}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))

	_, err = svc.ConfirmPayment(payment.ID, ConfirmPaymentInput{}, 5)
	assert.NoError(t, err)

	refunded, err := svc.UpdatePayment(payment.ID, UpdatePaymentInput{Status: models.PaymentRefunded}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentRefunded, refunded.Status)
}

func TestAmountLockedAfterSettlement(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	payment, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefRoomBooking,
		ReferenceID:   20,
		Amount:        400,
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	// Pending payments can still be corrected
	updated, err := svc.UpdatePayment(payment.ID, UpdatePaymentInput{Amount: 350}, 5)
	assert.NoError(t, err)
	assert.Equal(t, 350.0, updated.Amount)

	_, err = svc.ConfirmPayment(payment.ID, ConfirmPaymentInput{}, 5)
	assert.NoError(t, err)

	_, err = svc.UpdatePayment(payment.ID, UpdatePaymentInput{Amount: 500}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestMarkPaymentFailed(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	payment, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefRoomBooking,
		ReferenceID:   20,
		Amount:        400,
		PaymentMethod: models.PayInsurance,
	})
	assert.NoError(t, err)

	failed, err := svc.UpdatePayment(payment.ID, UpdatePaymentInput{Status: models.PaymentFailed}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentFailed, failed.Status)
	assert.Nil(t, failed.PaidAt)

	// Failed is terminal
	_, err = svc.ConfirmPayment(payment.ID, ConfirmPaymentInput{}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestListPaymentsFilters(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	first, err := svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefRoomBooking,
		ReferenceID:   20,
		Amount:        400,
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.CreatePayment(CreatePaymentInput{
		UserID:        1,
		ServiceType:   models.ServiceRefAppointment,
		ReferenceID:   30,
		Amount:        75,
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.ConfirmPayment(first.ID, ConfirmPaymentInput{}, 5)
	assert.NoError(t, err)

	paid, err := svc.ListPayments(PaymentListQuery{Status: models.PaymentPaid})
	assert.NoError(t, err)
	assert.Len(t, paid, 1)
	assert.Equal(t, first.ID, paid[0].ID)

	appointments, err := svc.ListPayments(PaymentListQuery{ServiceType: models.ServiceRefAppointment})
	assert.NoError(t, err)
	assert.Len(t, appointments, 1)
}
