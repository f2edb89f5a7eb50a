package service

import (
	"testing"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func newBookingFixture() (*BookingService, *fakeBookingStore, *stubNotifier) {
	store := newFakeBookingStore()
	store.users[1] = true
	adminID := uint(5)
	store.admins[adminID] = &models.Admin{ID: adminID, Username: "ops", Role: models.AdminRoleAdmin}
	store.rooms[10] = &models.Room{
		ID:         10,
		RoomNumber: "A-101",
		RoomType:   models.RoomTypeClass1,
		DailyRate:  200,
		Status:     models.RoomAvailable,
	}

	notifier := &stubNotifier{}
	svc := NewBookingService(store, notifier, &stubLogger{})
	return svc, store, notifier
}

func TestBookingLifecycle(t *testing.T) {
	svc, store, notifier := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-12",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 400.0, booking.TotalCost)
	assert.Contains(t, booking.BookingNumber, "ROOM")
	// Pending bookings do not occupy the room
	assert.Equal(t, models.RoomAvailable, store.rooms[10].Status)
	assert.Len(t, notifier.sent, 1)

	confirmed, err := svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.Equal(t, uint(5), *confirmed.Confirmed.AdminID)
	assert.Equal(t, models.AdminRoleAdmin, confirmed.Confirmed.Role)
	assert.Equal(t, models.RoomOccupied, store.rooms[10].Status)

	checkedIn, err := svc.CheckinBooking(booking.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCheckin, checkedIn.Status)
	assert.Equal(t, models.RoomOccupied, store.rooms[10].Status)

	checkedOut, err := svc.CheckoutBooking(booking.ID, CheckoutInput{}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCheckout, checkedOut.Status)
	assert.NotNil(t, checkedOut.CheckoutDate)
	assert.Equal(t, 400.0, checkedOut.TotalCost)
	assert.Equal(t, models.RoomAvailable, store.rooms[10].Status)
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	svc, store, _ := newBookingFixture()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-15",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-14",
		CheckoutDate:  "2030-01-16",
		PaymentMethod: models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	assert.Len(t, store.bookings, 1)
}

func TestCreateBookingAfterCancellationAllowed(t *testing.T) {
	svc, _, _ := newBookingFixture()

	first, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-15",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.UpdateBooking(first.ID, UpdateBookingInput{Status: models.BookingCancelled}, 5)
	assert.NoError(t, err)

	// Cancelled bookings no longer block the dates
	_, err = svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-12",
		CheckoutDate:  "2030-01-14",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
}

func TestCreateBookingWithoutCheckoutStoresOneDayStay(t *testing.T) {
	svc, store, _ := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
	// The one-day default is materialized, never stored as NULL, so
	// interval comparisons in the conflict scan always see a real date.
	assert.NotNil(t, store.bookings[booking.ID].CheckoutDate)
	assert.Equal(t, "2030-01-11", booking.CheckoutDate.Format("2006-01-02"))
	assert.Equal(t, 200.0, booking.TotalCost)

	// The exactly-overlapping one-day interval is detected as a conflict
	_, err = svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-11",
		PaymentMethod: models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	assert.Len(t, store.bookings, 1)
}

func TestCreateBookingMaintenanceRoomRejected(t *testing.T) {
	svc, store, _ := newBookingFixture()
	store.rooms[10].Status = models.RoomMaintenance

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
}

func TestCreateBookingCheckoutBeforeCheckinRejected(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-12",
		CheckoutDate:  "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, apperr.FieldsOf(err), "checkout_date")
}

func TestConfirmBookingTwiceRejected(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)

	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestCheckinWithoutConfirmationRejected(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.CheckinBooking(booking.ID, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestCancelConfirmedBookingReleasesRoom(t *testing.T) {
	svc, store, _ := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.RoomOccupied, store.rooms[10].Status)

	cancelled, err := svc.UpdateBooking(booking.ID, UpdateBookingInput{Status: models.BookingCancelled}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.Equal(t, models.RoomAvailable, store.rooms[10].Status)
}

func TestDeleteConfirmedBookingReleasesRoom(t *testing.T) {
	svc, store, _ := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)

	err = svc.DeleteBooking(booking.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, store.rooms[10].Status)
	assert.Empty(t, store.bookings)
}

func TestAvailableRoomsEstimates(t *testing.T) {
	svc, store, _ := newBookingFixture()
	store.rooms[11] = &models.Room{
		ID:         11,
		RoomNumber: "A-102",
		RoomType:   models.RoomTypeClass1,
		DailyRate:  250,
		Status:     models.RoomAvailable,
	}

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-15",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)

	rooms, err := svc.AvailableRooms(AvailabilityQuery{
		CheckinDate:  "2030-01-11",
		CheckoutDate: "2030-01-13",
	})
	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, uint(11), rooms[0].ID)
	assert.Equal(t, 2, rooms[0].EstimatedDays)
	assert.Equal(t, 500.0, rooms[0].EstimatedTotalCost)
}

func TestCheckoutWithExtendedStayAndCharges(t *testing.T) {
	svc, _, _ := newBookingFixture()

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-12",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)
	_, err = svc.CheckinBooking(booking.ID, 5)
	assert.NoError(t, err)

	// Patient stayed a day longer and incurred 75 in extra charges
	checkedOut, err := svc.CheckoutBooking(booking.ID, CheckoutInput{
		CheckoutDate:      "2030-01-13",
		AdditionalCharges: 75,
	}, 5)
	assert.NoError(t, err)
	assert.Equal(t, "2030-01-13", checkedOut.CheckoutDate.Format("2006-01-02"))
	assert.Equal(t, 675.0, checkedOut.TotalCost)
}

func TestMoveConfirmedBookingReleasesOldRoom(t *testing.T) {
	svc, store, _ := newBookingFixture()
	store.rooms[11] = &models.Room{
		ID:         11,
		RoomNumber: "A-102",
		RoomType:   models.RoomTypeClass1,
		DailyRate:  250,
		Status:     models.RoomAvailable,
	}

	booking, err := svc.CreateBooking(CreateBookingInput{
		UserID:        1,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		CheckoutDate:  "2030-01-12",
		PaymentMethod: models.PayCash,
	})
	assert.NoError(t, err)
	_, err = svc.ConfirmBooking(booking.ID, 5)
	assert.NoError(t, err)

	moved, err := svc.UpdateBooking(booking.ID, UpdateBookingInput{RoomID: 11}, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), moved.RoomID)
	// Cost is repriced at the new room's rate
	assert.Equal(t, 500.0, moved.TotalCost)
	assert.Equal(t, models.RoomAvailable, store.rooms[10].Status)
	assert.Equal(t, models.RoomOccupied, store.rooms[11].Status)
}

func TestCreateBookingUnknownUserRejected(t *testing.T) {
	svc, _, _ := newBookingFixture()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:        99,
		RoomID:        10,
		CheckinDate:   "2030-01-10",
		PaymentMethod: models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
