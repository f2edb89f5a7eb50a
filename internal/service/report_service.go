package service

import (
	"time"

	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
)

type ReportService struct {
	reportRepo *repository.ReportRepository
}

func NewReportService(reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// DailyReport bundles one day's operational summary.
type DailyReport struct {
	Date         string                            `json:"date"`
	Appointments *repository.DailyAppointmentStats `json:"appointments"`
	Payments     *repository.DailyPaymentStats     `json:"payments"`
	Rooms        *repository.RoomStatusStats       `json:"rooms"`
}

// OccupancyReport is the per-room-type utilization summary over a range.
type OccupancyReport struct {
	StartDate string                    `json:"start_date"`
	EndDate   string                    `json:"end_date"`
	RoomTypes []repository.OccupancyRow `json:"room_types"`
}

// Dashboard returns the headline counters.
func (s *ReportService) Dashboard() (*repository.DashboardStats, error) {
	return s.reportRepo.Dashboard(time.Now())
}

// Daily builds the operational summary for one day. An empty date defaults
// to today.
func (s *ReportService) Daily(dateStr string) (*DailyReport, error) {
	day := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, apperr.Validation("Validation Error", map[string]string{
				"date": "must be a valid date in YYYY-MM-DD format",
			})
		}
		day = parsed
	}

	appointments, err := s.reportRepo.DailyAppointments(day)
	if err != nil {
		return nil, err
	}
	payments, err := s.reportRepo.DailyPayments(day)
	if err != nil {
		return nil, err
	}
	rooms, err := s.reportRepo.RoomStatuses()
	if err != nil {
		return nil, err
	}

	return &DailyReport{
		Date:         day.Format(dateLayout),
		Appointments: appointments,
		Payments:     payments,
		Rooms:        rooms,
	}, nil
}

// Occupancy builds the per-room-type utilization report over a date range.
// An empty range defaults to the last 30 days.
func (s *ReportService) Occupancy(startStr, endStr string) (*OccupancyReport, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if startStr != "" {
		parsed, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return nil, apperr.Validation("Validation Error", map[string]string{
				"start_date": "must be a valid date in YYYY-MM-DD format",
			})
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return nil, apperr.Validation("Validation Error", map[string]string{
				"end_date": "must be a valid date in YYYY-MM-DD format",
			})
		}
		end = parsed
	}
	if end.Before(start) {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"end_date": "must not be before start_date",
		})
	}

	rows, err := s.reportRepo.Occupancy(start, end)
	if err != nil {
		return nil, err
	}

	return &OccupancyReport{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		RoomTypes: rows,
	}, nil
}
