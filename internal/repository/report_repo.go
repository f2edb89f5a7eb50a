package repository

import (
	"time"

	"healthcare-hub-backend/internal/models"

	"gorm.io/gorm"
)

// DashboardStats is the aggregate payload for the dashboard endpoint.
type DashboardStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalAppointments   int64 `json:"total_appointments"`
	TotalRooms          int64 `json:"total_rooms"`
	AvailableRooms      int64 `json:"available_rooms"`
	TotalAmbulances     int64 `json:"total_ambulances"`
	AvailableAmbulances int64 `json:"available_ambulances"`
	TodayAppointments   int64 `json:"today_appointments"`
	PendingPayments     int64 `json:"pending_payments"`
}

// DailyAppointmentStats breaks down a day's appointments by status.
type DailyAppointmentStats struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// DailyPaymentStats summarizes a day's payments.
type DailyPaymentStats struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalTransactions int64   `json:"total_transactions"`
	Paid              int64   `json:"paid"`
	Pending           int64   `json:"pending"`
}

// RoomStatusStats counts rooms per availability status.
type RoomStatusStats struct {
	Occupied    int64 `json:"occupied"`
	Available   int64 `json:"available"`
	Maintenance int64 `json:"maintenance"`
}

// OccupancyRow is one room type's slice of the occupancy report.
type OccupancyRow struct {
	RoomType        string  `json:"room_type"`
	TotalBookings   int64   `json:"total_bookings"`
	AvgLengthOfStay float64 `json:"avg_length_of_stay"`
	TotalRevenue    float64 `json:"total_revenue"`
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Dashboard gathers the headline counters.
func (r *ReportRepository) Dashboard(today time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, r.db.Model(&models.User{})},
		{&stats.TotalAppointments, r.db.Model(&models.Appointment{})},
		{&stats.TotalRooms, r.db.Model(&models.Room{})},
		{&stats.AvailableRooms, r.db.Model(&models.Room{}).Where("status = ?", models.RoomAvailable)},
		{&stats.TotalAmbulances, r.db.Model(&models.Ambulance{})},
		{&stats.AvailableAmbulances, r.db.Model(&models.Ambulance{}).Where("status = ?", models.AmbulanceAvailable)},
		{&stats.TodayAppointments, r.db.Model(&models.Appointment{}).Where("appointment_date = ?", day)},
		{&stats.PendingPayments, r.db.Model(&models.Payment{}).Where("status = ?", models.PaymentPending)},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// DailyAppointments breaks down one day's appointments by status.
func (r *ReportRepository) DailyAppointments(day time.Time) (*DailyAppointmentStats, error) {
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	stats := &DailyAppointmentStats{}

	base := func() *gorm.DB {
		return r.db.Model(&models.Appointment{}).Where("appointment_date = ?", date)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.AppointmentConfirmed).Count(&stats.Confirmed).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.AppointmentCompleted).Count(&stats.Completed).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.AppointmentCancelled).Count(&stats.Cancelled).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// DailyPayments summarizes one day's payments.
func (r *ReportRepository) DailyPayments(day time.Time) (*DailyPaymentStats, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	stats := &DailyPaymentStats{}

	base := func() *gorm.DB {
		return r.db.Model(&models.Payment{}).Where("created_at >= ? AND created_at < ?", start, end)
	}

	var total struct{ Amount float64 }
	if err := base().Where("status = ?", models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0) AS amount").Scan(&total).Error; err != nil {
		return nil, err
	}
	stats.TotalAmount = total.Amount

	if err := base().Count(&stats.TotalTransactions).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.PaymentPaid).Count(&stats.Paid).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.PaymentPending).Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// RoomStatuses counts rooms per status.
func (r *ReportRepository) RoomStatuses() (*RoomStatusStats, error) {
	stats := &RoomStatusStats{}
	pairs := map[string]*int64{
		models.RoomOccupied:    &stats.Occupied,
		models.RoomAvailable:   &stats.Available,
		models.RoomMaintenance: &stats.Maintenance,
	}
	for status, dest := range pairs {
		if err := r.db.Model(&models.Room{}).Where("status = ?", status).Count(dest).Error; err != nil {
			return nil, err
		}
	}
	return stats, nil
}

// Occupancy aggregates booking volume, stay length and revenue per room
// type over a date range. Cancelled bookings are excluded.
func (r *ReportRepository) Occupancy(start, end time.Time) ([]OccupancyRow, error) {
	var rows []OccupancyRow
	err := r.db.Model(&models.RoomBooking{}).
		Select("rooms.room_type AS room_type, "+
			"COUNT(*) AS total_bookings, "+
			"AVG(DATEDIFF(COALESCE(checkout_date, CURDATE()), checkin_date)) AS avg_length_of_stay, "+
			"SUM(total_cost) AS total_revenue").
		Joins("JOIN rooms ON rooms.id = room_bookings.room_id").
		Where("room_bookings.status <> ?", models.BookingCancelled).
		Where("checkin_date BETWEEN ? AND ?", start, end).
		Group("rooms.room_type").
		Scan(&rows).Error
	return rows, err
}
