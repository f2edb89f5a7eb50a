package service

import (
	"fmt"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
	"healthcare-hub-backend/pkg/utils"
)

type AppointmentService struct {
	store    repository.AppointmentStore
	notifier Notifier
	logs     ActivityLogger
}

func NewAppointmentService(store repository.AppointmentStore, notifier Notifier, logs ActivityLogger) *AppointmentService {
	return &AppointmentService{
		store:    store,
		notifier: notifier,
		logs:     logs,
	}
}

// CreateAppointmentInput is the request body for creating an appointment.
type CreateAppointmentInput struct {
	UserID          uint    `json:"user_id" binding:"required"`
	DoctorID        uint    `json:"doctor_id" binding:"required"`
	ServiceType     string  `json:"service_type" binding:"required,oneof=outpatient emergency"`
	AppointmentDate string  `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string  `json:"appointment_time" binding:"required,datetime=15:04"`
	Complaint       string  `json:"complaint"`
	PaymentMethod   string  `json:"payment_method" binding:"required,oneof=cash insurance bpjs"`
	TotalCost       float64 `json:"total_cost" binding:"required,gt=0"`
}

// UpdateAppointmentInput is the request body for updating an appointment.
type UpdateAppointmentInput struct {
	DoctorID        uint   `json:"doctor_id"`
	AppointmentDate string `json:"appointment_date" binding:"omitempty,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" binding:"omitempty,datetime=15:04"`
	Complaint       string `json:"complaint"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,oneof=cash insurance bpjs"`
	Status          string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	AdminNotes      string `json:"admin_notes"`
}

// AppointmentListQuery carries the supported list filters.
type AppointmentListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	DoctorID uint   `form:"doctor_id"`
}

// CreateAppointment books a consultation slot. The date must not lie in the
// past; the ticket number is sequenced per creation day.
func (s *AppointmentService) CreateAppointment(input CreateAppointmentInput) (*models.Appointment, error) {
	date, err := time.Parse(dateLayout, input.AppointmentDate)
	if err != nil {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"appointment_date": "must be a valid date in YYYY-MM-DD format",
		})
	}
	today := time.Now().Truncate(24 * time.Hour)
	if date.Before(today) {
		return nil, apperr.BusinessRule("Appointment date cannot be in the past")
	}

	appointment := &models.Appointment{
		UserID:          input.UserID,
		DoctorID:        input.DoctorID,
		ServiceType:     input.ServiceType,
		AppointmentDate: date,
		AppointmentTime: input.AppointmentTime,
		Complaint:       input.Complaint,
		PaymentMethod:   input.PaymentMethod,
		TotalCost:       input.TotalCost,
		Status:          models.AppointmentPending,
	}

	err = s.store.Atomic(func(tx repository.AppointmentStore) error {
		ok, err := tx.UserExists(input.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User")
		}

		ok, err = tx.DoctorExists(input.DoctorID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("Doctor")
		}

		count, err := tx.CountCreatedOn(time.Now())
		if err != nil {
			return err
		}
		appointment.TicketNumber = utils.ReferenceNumber("APP", time.Now(), count+1)

		return tx.Create(appointment)
	})
	if err != nil {
		return nil, err
	}

	s.notify(appointment.UserID, "Appointment Received",
		fmt.Sprintf("Your appointment %s has been received and is awaiting confirmation.", appointment.TicketNumber))

	return s.store.ByID(appointment.ID)
}

// GetAppointment retrieves an appointment by ID
func (s *AppointmentService) GetAppointment(id uint) (*models.Appointment, error) {
	return s.store.ByID(id)
}

// ListAppointments lists appointments matching the query
func (s *AppointmentService) ListAppointments(q AppointmentListQuery) ([]models.Appointment, error) {
	filter := repository.AppointmentFilter{
		Status:   q.Status,
		DoctorID: q.DoctorID,
	}
	var err error
	if filter.Date, err = parseOptionalDate(q.Date); err != nil {
		return nil, err
	}
	return s.store.List(filter)
}

// ConfirmAppointment moves a pending appointment to confirmed.
func (s *AppointmentService) ConfirmAppointment(id uint, actorID uint) (*models.Appointment, error) {
	var result *models.Appointment

	err := s.store.Atomic(func(tx repository.AppointmentStore) error {
		appointment, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if appointment.Status == models.AppointmentConfirmed {
			return apperr.BusinessRule("Appointment is already confirmed")
		}
		if err := checkTransition(appointmentTransitions, "appointment", appointment.Status, models.AppointmentConfirmed); err != nil {
			return err
		}

		admin, err := tx.AdminByID(actorID)
		if err != nil {
			return err
		}

		appointment.Status = models.AppointmentConfirmed
		appointment.Confirmed = models.ActorRef{AdminID: &admin.ID, Role: admin.Role}

		if err := tx.Save(appointment); err != nil {
			return err
		}
		result = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(result.UserID, "Appointment Confirmed",
		fmt.Sprintf("Your appointment %s has been confirmed.", result.TicketNumber))
	s.log(actorID, "appointment_confirm", result.ID,
		fmt.Sprintf("Confirmed appointment %s", result.TicketNumber))

	return s.store.ByID(result.ID)
}

// UpdateAppointment applies field and status changes to an appointment.
func (s *AppointmentService) UpdateAppointment(id uint, input UpdateAppointmentInput, actorID uint) (*models.Appointment, error) {
	var result *models.Appointment

	err := s.store.Atomic(func(tx repository.AppointmentStore) error {
		appointment, err := tx.ByID(id)
		if err != nil {
			return err
		}

		if input.Status != "" && input.Status != appointment.Status {
			if err := checkTransition(appointmentTransitions, "appointment", appointment.Status, input.Status); err != nil {
				return err
			}
			appointment.Status = input.Status
		}

		if input.DoctorID != 0 && input.DoctorID != appointment.DoctorID {
			ok, err := tx.DoctorExists(input.DoctorID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("Doctor")
			}
			appointment.DoctorID = input.DoctorID
		}

		if input.AppointmentDate != "" {
			date, err := time.Parse(dateLayout, input.AppointmentDate)
			if err != nil {
				return apperr.Validation("Validation Error", map[string]string{"appointment_date": "must be a valid date"})
			}
			today := time.Now().Truncate(24 * time.Hour)
			if date.Before(today) {
				return apperr.BusinessRule("Appointment date cannot be in the past")
			}
			appointment.AppointmentDate = date
		}
		if input.AppointmentTime != "" {
			appointment.AppointmentTime = input.AppointmentTime
		}
		if input.Complaint != "" {
			appointment.Complaint = input.Complaint
		}
		if input.PaymentMethod != "" {
			appointment.PaymentMethod = input.PaymentMethod
		}
		if input.AdminNotes != "" {
			appointment.AdminNotes = input.AdminNotes
		}

		if err := tx.Save(appointment); err != nil {
			return err
		}
		result = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(actorID, "appointment_update", result.ID,
		fmt.Sprintf("Updated appointment %s (status: %s)", result.TicketNumber, result.Status))

	return s.store.ByID(result.ID)
}

// DeleteAppointment removes an appointment.
func (s *AppointmentService) DeleteAppointment(id uint, actorID uint) error {
	if _, err := s.store.ByID(id); err != nil {
		return err
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.log(actorID, "appointment_delete", id, fmt.Sprintf("Deleted appointment ID %d", id))
	return nil
}

func (s *AppointmentService) notify(userID uint, title, message string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    models.NotifyAppointment,
	})
}

func (s *AppointmentService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.Appointment{}.TableName(), &recordID, details)
}
