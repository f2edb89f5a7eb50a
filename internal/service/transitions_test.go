package service

import (
	"testing"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCheckin, false},
		{models.BookingConfirmed, models.BookingCheckin, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingCheckout, false},
		{models.BookingCheckin, models.BookingCheckout, true},
		{models.BookingCheckin, models.BookingCancelled, false},
		{models.BookingCheckout, models.BookingPending, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
	}

	for _, tt := range tests {
		err := checkTransition(bookingTransitions, "booking", tt.from, tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s should be allowed", tt.from, tt.to)
		} else {
			assert.Error(t, err, "%s -> %s should be rejected", tt.from, tt.to)
			assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
		}
	}
}

func TestRequestTransitions(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.RequestPending, models.RequestDispatched, true},
		{models.RequestPending, models.RequestCancelled, true},
		{models.RequestPending, models.RequestArrived, false},
		{models.RequestDispatched, models.RequestOnWay, true},
		{models.RequestDispatched, models.RequestCancelled, true},
		{models.RequestOnWay, models.RequestArrived, true},
		{models.RequestArrived, models.RequestCompleted, true},
		// Cancellation stays open until the ride reaches a terminal state
		{models.RequestArrived, models.RequestCancelled, true},
		{models.RequestCompleted, models.RequestPending, false},
		{models.RequestCancelled, models.RequestDispatched, false},
	}

	for _, tt := range tests {
		err := checkTransition(requestTransitions, "ambulance request", tt.from, tt.to)
		if tt.allowed {
			assert.NoError(t, err, "%s -> %s should be allowed", tt.from, tt.to)
		} else {
			assert.Error(t, err, "%s -> %s should be rejected", tt.from, tt.to)
		}
	}
}

func TestPaymentTransitions(t *testing.T) {
	assert.NoError(t, checkTransition(paymentTransitions, "payment", models.PaymentPending, models.PaymentPaid))
	assert.NoError(t, checkTransition(paymentTransitions, "payment", models.PaymentPending, models.PaymentFailed))
	assert.NoError(t, checkTransition(paymentTransitions, "payment", models.PaymentPaid, models.PaymentRefunded))
	assert.Error(t, checkTransition(paymentTransitions, "payment", models.PaymentPending, models.PaymentRefunded))
	assert.Error(t, checkTransition(paymentTransitions, "payment", models.PaymentFailed, models.PaymentPaid))
	assert.Error(t, checkTransition(paymentTransitions, "payment", models.PaymentRefunded, models.PaymentPaid))
}

func TestSameStatusIsNoOp(t *testing.T) {
	assert.NoError(t, checkTransition(bookingTransitions, "booking", models.BookingCheckout, models.BookingCheckout))
	assert.NoError(t, checkTransition(paymentTransitions, "payment", models.PaymentRefunded, models.PaymentRefunded))
}

func TestRoomStatusDerivation(t *testing.T) {
	assert.Equal(t, models.RoomOccupied, roomStatusFor(models.BookingConfirmed))
	assert.Equal(t, models.RoomOccupied, roomStatusFor(models.BookingCheckin))
	assert.Equal(t, models.RoomAvailable, roomStatusFor(models.BookingCheckout))
	assert.Equal(t, models.RoomAvailable, roomStatusFor(models.BookingCancelled))
	assert.Equal(t, "", roomStatusFor(models.BookingPending))
}

func TestAmbulanceStatusDerivation(t *testing.T) {
	assert.Equal(t, models.AmbulanceOperating, ambulanceStatusFor(models.RequestDispatched))
	assert.Equal(t, models.AmbulanceOperating, ambulanceStatusFor(models.RequestOnWay))
	assert.Equal(t, models.AmbulanceOperating, ambulanceStatusFor(models.RequestArrived))
	assert.Equal(t, models.AmbulanceAvailable, ambulanceStatusFor(models.RequestCompleted))
	assert.Equal(t, models.AmbulanceAvailable, ambulanceStatusFor(models.RequestCancelled))
	assert.Equal(t, "", ambulanceStatusFor(models.RequestPending))
}
