package repository

import (
	"errors"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingRepository implements BookingStore on GORM.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepo(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Atomic runs fn inside a database transaction with a transaction-bound repo.
func (r *BookingRepository) Atomic(fn func(BookingStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewBookingRepo(tx))
	})
}

func (r *BookingRepository) UserExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) AdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Admin")
		}
		return nil, err
	}
	return &admin, nil
}

func (r *BookingRepository) AppointmentExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) RoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Room")
		}
		return nil, err
	}
	return &room, nil
}

// RoomForUpdate locks the room row for the remainder of the transaction.
func (r *BookingRepository) RoomForUpdate(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Room")
		}
		return nil, err
	}
	return &room, nil
}

func (r *BookingRepository) SetRoomStatus(id uint, status string) error {
	return r.db.Model(&models.Room{}).Where("id = ?", id).Update("status", status).Error
}

// HasConflict reports whether any non-terminal booking for the room overlaps
// the candidate interval. Any shared day counts as a conflict. A NULL
// checkout (legacy rows predating the materialized default) counts as a
// one-day stay rather than dropping out of the comparison.
func (r *BookingRepository) HasConflict(roomID uint, checkin, checkout time.Time, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.RoomBooking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", []string{models.BookingCancelled, models.BookingCheckout}).
		Where("checkin_date <= ? AND COALESCE(checkout_date, DATE_ADD(checkin_date, INTERVAL 1 DAY)) >= ?", checkout, checkin)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) CountCreatedOn(day time.Time) (int64, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var count int64
	err := r.db.Model(&models.RoomBooking{}).
		Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1)).
		Count(&count).Error
	return count, err
}

func (r *BookingRepository) Create(b *models.RoomBooking) error {
	return r.db.Create(b).Error
}

func (r *BookingRepository) ByID(id uint) (*models.RoomBooking, error) {
	var booking models.RoomBooking
	err := r.db.Preload("User").Preload("Room").Preload("Appointment").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Room booking")
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) Save(b *models.RoomBooking) error {
	return r.db.Save(b).Error
}

func (r *BookingRepository) Delete(id uint) error {
	return r.db.Delete(&models.RoomBooking{}, id).Error
}

func (r *BookingRepository) List(f BookingFilter) ([]models.RoomBooking, error) {
	q := r.db.Preload("User").Preload("Room").Preload("Appointment")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.RoomType != "" {
		q = q.Joins("JOIN rooms ON rooms.id = room_bookings.room_id").
			Where("rooms.room_type = ?", f.RoomType)
	}
	if f.StartDate != nil && f.EndDate != nil {
		q = q.Where("checkin_date BETWEEN ? AND ?", f.StartDate, f.EndDate)
	}
	if f.CheckinDate != nil {
		q = q.Where("checkin_date = ?", f.CheckinDate)
	}

	var bookings []models.RoomBooking
	err := q.Order("room_bookings.created_at DESC").Find(&bookings).Error
	return bookings, err
}

// AvailableRooms lists rooms marked available that have no conflicting
// booking in the requested interval.
func (r *BookingRepository) AvailableRooms(checkin, checkout time.Time, roomType string) ([]models.Room, error) {
	conflicting := r.db.Model(&models.RoomBooking{}).
		Select("room_id").
		Where("status NOT IN ?", []string{models.BookingCancelled, models.BookingCheckout}).
		Where("checkin_date <= ? AND COALESCE(checkout_date, DATE_ADD(checkin_date, INTERVAL 1 DAY)) >= ?", checkout, checkin)

	q := r.db.Where("status = ?", models.RoomAvailable).
		Where("id NOT IN (?)", conflicting)
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}

	var rooms []models.Room
	err := q.Order("room_type ASC, room_number ASC").Find(&rooms).Error
	return rooms, err
}
