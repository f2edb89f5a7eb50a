package service

import (
	"fmt"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
	"healthcare-hub-backend/pkg/utils"
)

type BookingService struct {
	store    repository.BookingStore
	notifier Notifier
	logs     ActivityLogger
}

func NewBookingService(store repository.BookingStore, notifier Notifier, logs ActivityLogger) *BookingService {
	return &BookingService{
		store:    store,
		notifier: notifier,
		logs:     logs,
	}
}

// CreateBookingInput is the request body for creating a room booking.
type CreateBookingInput struct {
	UserID          uint   `json:"user_id" binding:"required"`
	RoomID          uint   `json:"room_id" binding:"required"`
	AppointmentID   *uint  `json:"appointment_id"`
	CheckinDate     string `json:"checkin_date" binding:"required,datetime=2006-01-02"`
	CheckoutDate    string `json:"checkout_date" binding:"omitempty,datetime=2006-01-02"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=cash insurance bpjs"`
}

// UpdateBookingInput is the request body for updating a room booking. Zero
// values leave the stored field untouched; status changes go through the
// transition table.
type UpdateBookingInput struct {
	RoomID          uint   `json:"room_id"`
	CheckinDate     string `json:"checkin_date" binding:"omitempty,datetime=2006-01-02"`
	CheckoutDate    string `json:"checkout_date" binding:"omitempty,datetime=2006-01-02"`
	SpecialRequests string `json:"special_requests"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,oneof=cash insurance bpjs"`
	Status          string `json:"status" binding:"omitempty,oneof=pending confirmed checkin checkout cancelled"`
	AdminNotes      string `json:"admin_notes"`
}

// BookingListQuery carries the supported list filters.
type BookingListQuery struct {
	Status      string `form:"status" binding:"omitempty,oneof=pending confirmed checkin checkout cancelled"`
	UserID      uint   `form:"user_id"`
	RoomType    string `form:"room_type" binding:"omitempty,oneof=vip class_1 class_2 class_3"`
	CheckinDate string `form:"checkin_date" binding:"omitempty,datetime=2006-01-02"`
	StartDate   string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// CheckoutInput optionally overrides the actual checkout date and adds
// extra charges (meals, damages) on top of the recomputed room cost.
type CheckoutInput struct {
	CheckoutDate      string  `json:"checkout_date" binding:"omitempty,datetime=2006-01-02"`
	AdditionalCharges float64 `json:"additional_charges" binding:"omitempty,gte=0"`
	AdminNotes        string  `json:"admin_notes"`
}

// AvailabilityQuery carries the room availability search parameters.
type AvailabilityQuery struct {
	CheckinDate  string `form:"checkin_date" binding:"required,datetime=2006-01-02"`
	CheckoutDate string `form:"checkout_date" binding:"omitempty,datetime=2006-01-02"`
	RoomType     string `form:"room_type" binding:"omitempty,oneof=vip class_1 class_2 class_3"`
}

// CreateBooking reserves a room for a stay. The availability check and the
// booking insert run in one transaction against a locked room row.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.RoomBooking, error) {
	checkin, checkout, err := parseStayDates(input.CheckinDate, input.CheckoutDate)
	if err != nil {
		return nil, err
	}
	// A missing checkout means a one-day stay. Store it materialized so the
	// conflict scan never compares an interval against a NULL column.
	if checkout == nil {
		oneDay := checkin.AddDate(0, 0, 1)
		checkout = &oneDay
	}

	booking := &models.RoomBooking{
		UserID:          input.UserID,
		RoomID:          input.RoomID,
		AppointmentID:   input.AppointmentID,
		CheckinDate:     checkin,
		CheckoutDate:    checkout,
		SpecialRequests: input.SpecialRequests,
		PaymentMethod:   input.PaymentMethod,
		Status:          models.BookingPending,
	}

	err = s.store.Atomic(func(tx repository.BookingStore) error {
		ok, err := tx.UserExists(input.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User")
		}

		if input.AppointmentID != nil {
			ok, err := tx.AppointmentExists(*input.AppointmentID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("Appointment")
			}
		}

		room, err := tx.RoomForUpdate(input.RoomID)
		if err != nil {
			return err
		}
		if room.Status == models.RoomMaintenance {
			return apperr.Unavailable("Room is under maintenance")
		}

		conflict, err := tx.HasConflict(room.ID, checkin, booking.EffectiveCheckout(), 0)
		if err != nil {
			return err
		}
		if conflict {
			return apperr.Unavailable("Room is not available for the selected dates")
		}

		booking.TotalCost = utils.RoomCost(room.DailyRate, checkin, booking.EffectiveCheckout())

		count, err := tx.CountCreatedOn(time.Now())
		if err != nil {
			return err
		}
		booking.BookingNumber = utils.ReferenceNumber("ROOM", time.Now(), count+1)

		return tx.Create(booking)
	})
	if err != nil {
		return nil, err
	}

	s.notify(booking.UserID, "Room Booking Received",
		fmt.Sprintf("Your room booking %s has been received and is awaiting confirmation.", booking.BookingNumber))

	return s.store.ByID(booking.ID)
}

// GetBooking retrieves a booking by ID
func (s *BookingService) GetBooking(id uint) (*models.RoomBooking, error) {
	return s.store.ByID(id)
}

// ListBookings lists bookings matching the query
func (s *BookingService) ListBookings(q BookingListQuery) ([]models.RoomBooking, error) {
	filter := repository.BookingFilter{
		Status:   q.Status,
		UserID:   q.UserID,
		RoomType: q.RoomType,
	}
	var err error
	if filter.CheckinDate, err = parseOptionalDate(q.CheckinDate); err != nil {
		return nil, err
	}
	if filter.StartDate, err = parseOptionalDate(q.StartDate); err != nil {
		return nil, err
	}
	if filter.EndDate, err = parseOptionalDate(q.EndDate); err != nil {
		return nil, err
	}
	return s.store.List(filter)
}

// UpdateBooking applies field and status changes to a booking. Room and date
// changes re-run the conflict check; status changes follow the transition
// table and keep room availability in sync.
func (s *BookingService) UpdateBooking(id uint, input UpdateBookingInput, actorID uint) (*models.RoomBooking, error) {
	var updated *models.RoomBooking

	err := s.store.Atomic(func(tx repository.BookingStore) error {
		booking, err := tx.ByID(id)
		if err != nil {
			return err
		}

		oldStatus := booking.Status
		oldRoomID := booking.RoomID

		if input.CheckinDate != "" {
			checkin, err := time.Parse(dateLayout, input.CheckinDate)
			if err != nil {
				return apperr.Validation("Validation Error", map[string]string{"checkin_date": "must be a valid date"})
			}
			booking.CheckinDate = checkin
		}
		if input.CheckoutDate != "" {
			checkout, err := time.Parse(dateLayout, input.CheckoutDate)
			if err != nil {
				return apperr.Validation("Validation Error", map[string]string{"checkout_date": "must be a valid date"})
			}
			booking.CheckoutDate = &checkout
		}
		if booking.CheckoutDate != nil && !booking.CheckoutDate.After(booking.CheckinDate) {
			return apperr.Validation("Validation Error", map[string]string{
				"checkout_date": "must be after checkin_date",
			})
		}
		if input.RoomID != 0 {
			booking.RoomID = input.RoomID
		}
		if input.SpecialRequests != "" {
			booking.SpecialRequests = input.SpecialRequests
		}
		if input.PaymentMethod != "" {
			booking.PaymentMethod = input.PaymentMethod
		}
		if input.AdminNotes != "" {
			booking.AdminNotes = input.AdminNotes
		}

		newStatus := oldStatus
		if input.Status != "" {
			if err := checkTransition(bookingTransitions, "booking", oldStatus, input.Status); err != nil {
				return err
			}
			newStatus = input.Status
		}
		booking.Status = newStatus

		roomChanged := booking.RoomID != oldRoomID
		datesChanged := input.CheckinDate != "" || input.CheckoutDate != ""

		if roomChanged || datesChanged {
			room, err := tx.RoomForUpdate(booking.RoomID)
			if err != nil {
				return err
			}
			if room.Status == models.RoomMaintenance {
				return apperr.Unavailable("Room is under maintenance")
			}
			conflict, err := tx.HasConflict(room.ID, booking.CheckinDate, booking.EffectiveCheckout(), booking.ID)
			if err != nil {
				return err
			}
			if conflict {
				return apperr.Unavailable("Room is not available for the selected dates")
			}
			booking.TotalCost = utils.RoomCost(room.DailyRate, booking.CheckinDate, booking.EffectiveCheckout())
		}

		if err := tx.Save(booking); err != nil {
			return err
		}

		// Moving an active booking off a room frees the old one.
		if roomChanged && roomStatusFor(oldStatus) == models.RoomOccupied {
			if err := tx.SetRoomStatus(oldRoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		if derived := roomStatusFor(newStatus); derived != "" && (newStatus != oldStatus || roomChanged) {
			if err := tx.SetRoomStatus(booking.RoomID, derived); err != nil {
				return err
			}
		}

		updated = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(actorID, "room_booking_update", updated.ID,
		fmt.Sprintf("Updated booking %s (status: %s)", updated.BookingNumber, updated.Status))

	return s.store.ByID(updated.ID)
}

// ConfirmBooking moves a pending booking to confirmed and occupies the room.
func (s *BookingService) ConfirmBooking(id uint, actorID uint) (*models.RoomBooking, error) {
	booking, err := s.transition(id, models.BookingConfirmed, actorID, func(b *models.RoomBooking, actor models.ActorRef) {
		b.Confirmed = actor
	})
	if err != nil {
		return nil, err
	}

	s.notify(booking.UserID, "Room Booking Confirmed",
		fmt.Sprintf("Your room booking %s has been confirmed.", booking.BookingNumber))
	s.log(actorID, "room_booking_confirm", booking.ID,
		fmt.Sprintf("Confirmed booking %s", booking.BookingNumber))

	return booking, nil
}

// CheckinBooking marks the patient as checked in.
func (s *BookingService) CheckinBooking(id uint, actorID uint) (*models.RoomBooking, error) {
	booking, err := s.transition(id, models.BookingCheckin, actorID, func(b *models.RoomBooking, actor models.ActorRef) {
		b.CheckedIn = actor
	})
	if err != nil {
		return nil, err
	}

	s.log(actorID, "room_booking_checkin", booking.ID,
		fmt.Sprintf("Checked in booking %s", booking.BookingNumber))

	return booking, nil
}

// CheckoutBooking ends the stay, settles the final cost from the actual
// checkout date plus any additional charges, and frees the room.
func (s *BookingService) CheckoutBooking(id uint, input CheckoutInput, actorID uint) (*models.RoomBooking, error) {
	var result *models.RoomBooking

	err := s.store.Atomic(func(tx repository.BookingStore) error {
		booking, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if booking.Status == models.BookingCheckout {
			return apperr.BusinessRule("Booking is already checked out")
		}
		if err := checkTransition(bookingTransitions, "booking", booking.Status, models.BookingCheckout); err != nil {
			return err
		}

		actor, err := s.actorRef(tx, actorID)
		if err != nil {
			return err
		}

		today := time.Now().Truncate(24 * time.Hour)
		checkout := today
		if booking.CheckoutDate != nil && booking.CheckoutDate.After(today) {
			checkout = *booking.CheckoutDate
		}
		if input.CheckoutDate != "" {
			actual, err := time.Parse(dateLayout, input.CheckoutDate)
			if err != nil {
				return apperr.Validation("Validation Error", map[string]string{"checkout_date": "must be a valid date"})
			}
			if !actual.After(booking.CheckinDate) {
				return apperr.Validation("Validation Error", map[string]string{
					"checkout_date": "must be after checkin_date",
				})
			}
			checkout = actual
		}
		booking.CheckoutDate = &checkout

		room, err := tx.RoomForUpdate(booking.RoomID)
		if err != nil {
			return err
		}
		booking.TotalCost = utils.RoomCost(room.DailyRate, booking.CheckinDate, checkout) + input.AdditionalCharges
		booking.Status = models.BookingCheckout
		booking.CheckedOut = actor
		if input.AdminNotes != "" {
			booking.AdminNotes = input.AdminNotes
		}

		if err := tx.Save(booking); err != nil {
			return err
		}
		if err := tx.SetRoomStatus(booking.RoomID, models.RoomAvailable); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(result.UserID, "Room Checkout Complete",
		fmt.Sprintf("Checkout for booking %s is complete. Total cost: %.2f", result.BookingNumber, result.TotalCost))
	s.log(actorID, "room_booking_checkout", result.ID,
		fmt.Sprintf("Checked out booking %s (total: %.2f)", result.BookingNumber, result.TotalCost))

	return s.store.ByID(result.ID)
}

// DeleteBooking removes a booking, freeing the room when the booking held it.
func (s *BookingService) DeleteBooking(id uint, actorID uint) error {
	err := s.store.Atomic(func(tx repository.BookingStore) error {
		booking, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if roomStatusFor(booking.Status) == models.RoomOccupied {
			if err := tx.SetRoomStatus(booking.RoomID, models.RoomAvailable); err != nil {
				return err
			}
		}
		return tx.Delete(id)
	})
	if err != nil {
		return err
	}

	s.log(actorID, "room_booking_delete", id, fmt.Sprintf("Deleted booking ID %d", id))
	return nil
}

// AvailableRooms searches rooms free for a stay and attaches cost estimates.
func (s *BookingService) AvailableRooms(q AvailabilityQuery) ([]models.AvailableRoom, error) {
	checkin, checkoutPtr, err := parseStayDates(q.CheckinDate, q.CheckoutDate)
	if err != nil {
		return nil, err
	}
	checkout := checkin.AddDate(0, 0, 1)
	if checkoutPtr != nil {
		checkout = *checkoutPtr
	}

	rooms, err := s.store.AvailableRooms(checkin, checkout, q.RoomType)
	if err != nil {
		return nil, err
	}

	results := make([]models.AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, models.AvailableRoom{
			Room:               room,
			EstimatedDays:      utils.StayDays(checkin, checkout),
			EstimatedTotalCost: utils.RoomCost(room.DailyRate, checkin, checkout),
		})
	}
	return results, nil
}

// transition is the shared single-step status change used by the confirm and
// checkin actions. Room availability follows the new status.
func (s *BookingService) transition(id uint, to string, actorID uint, stamp func(*models.RoomBooking, models.ActorRef)) (*models.RoomBooking, error) {
	var result *models.RoomBooking

	err := s.store.Atomic(func(tx repository.BookingStore) error {
		booking, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if booking.Status == to {
			return apperr.BusinessRule("Booking is already " + to)
		}
		if err := checkTransition(bookingTransitions, "booking", booking.Status, to); err != nil {
			return err
		}

		actor, err := s.actorRef(tx, actorID)
		if err != nil {
			return err
		}

		booking.Status = to
		stamp(booking, actor)

		if err := tx.Save(booking); err != nil {
			return err
		}
		if derived := roomStatusFor(to); derived != "" {
			if err := tx.SetRoomStatus(booking.RoomID, derived); err != nil {
				return err
			}
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *BookingService) actorRef(tx repository.BookingStore, actorID uint) (models.ActorRef, error) {
	admin, err := tx.AdminByID(actorID)
	if err != nil {
		return models.ActorRef{}, err
	}
	return models.ActorRef{AdminID: &admin.ID, Role: admin.Role}, nil
}

func (s *BookingService) notify(userID uint, title, message string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    models.NotifyRoomBooking,
	})
}

func (s *BookingService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.RoomBooking{}.TableName(), &recordID, details)
}

// parseStayDates parses and validates a checkin/checkout pair. Checkout is
// optional; when present it must fall after checkin.
func parseStayDates(checkinStr, checkoutStr string) (time.Time, *time.Time, error) {
	checkin, err := time.Parse(dateLayout, checkinStr)
	if err != nil {
		return time.Time{}, nil, apperr.Validation("Validation Error", map[string]string{
			"checkin_date": "must be a valid date in YYYY-MM-DD format",
		})
	}
	if checkoutStr == "" {
		return checkin, nil, nil
	}
	checkout, err := time.Parse(dateLayout, checkoutStr)
	if err != nil {
		return time.Time{}, nil, apperr.Validation("Validation Error", map[string]string{
			"checkout_date": "must be a valid date in YYYY-MM-DD format",
		})
	}
	if !checkout.After(checkin) {
		return time.Time{}, nil, apperr.Validation("Validation Error", map[string]string{
			"checkout_date": "must be after checkin_date",
		})
	}
	return checkin, &checkout, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"date": "must be a valid date in YYYY-MM-DD format",
		})
	}
	return &t, nil
}
