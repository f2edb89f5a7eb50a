package service

import (
	"fmt"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"
)

// Status transition tables. A missing key is a terminal status.
var (
	bookingTransitions = map[string][]string{
		models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
		models.BookingConfirmed: {models.BookingCheckin, models.BookingCancelled},
		models.BookingCheckin:   {models.BookingCheckout},
	}

	requestTransitions = map[string][]string{
		models.RequestPending:    {models.RequestDispatched, models.RequestCancelled},
		models.RequestDispatched: {models.RequestOnWay, models.RequestCancelled},
		models.RequestOnWay:      {models.RequestArrived, models.RequestCancelled},
		models.RequestArrived:    {models.RequestCompleted, models.RequestCancelled},
	}

	paymentTransitions = map[string][]string{
		models.PaymentPending: {models.PaymentPaid, models.PaymentFailed},
		models.PaymentPaid:    {models.PaymentRefunded},
	}

	appointmentTransitions = map[string][]string{
		models.AppointmentPending:   {models.AppointmentConfirmed, models.AppointmentCancelled},
		models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled},
	}
)

// checkTransition validates a status change against a transition table.
func checkTransition(table map[string][]string, entity, from, to string) error {
	if from == to {
		return nil
	}
	for _, allowed := range table[from] {
		if allowed == to {
			return nil
		}
	}
	return apperr.BusinessRule(fmt.Sprintf("Cannot change %s status from %s to %s", entity, from, to))
}

// roomStatusFor derives the room availability implied by a booking status.
// Empty means the booking status does not touch the room.
func roomStatusFor(bookingStatus string) string {
	switch bookingStatus {
	case models.BookingConfirmed, models.BookingCheckin:
		return models.RoomOccupied
	case models.BookingCheckout, models.BookingCancelled:
		return models.RoomAvailable
	}
	return ""
}

// ambulanceStatusFor derives the ambulance availability implied by a request
// status. Empty means no change.
func ambulanceStatusFor(requestStatus string) string {
	switch requestStatus {
	case models.RequestDispatched, models.RequestOnWay, models.RequestArrived:
		return models.AmbulanceOperating
	case models.RequestCompleted, models.RequestCancelled:
		return models.AmbulanceAvailable
	}
	return ""
}
