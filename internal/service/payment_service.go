package service

import (
	"fmt"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
	"healthcare-hub-backend/pkg/utils"
)

type PaymentService struct {
	store    repository.PaymentStore
	notifier Notifier
	logs     ActivityLogger
}

func NewPaymentService(store repository.PaymentStore, notifier Notifier, logs ActivityLogger) *PaymentService {
	return &PaymentService{
		store:    store,
		notifier: notifier,
		logs:     logs,
	}
}

// CreatePaymentInput is the request body for creating a payment.
type CreatePaymentInput struct {
	UserID        uint    `json:"user_id" binding:"required"`
	ServiceType   string  `json:"service_type" binding:"required,oneof=appointment room_booking ambulance"`
	ReferenceID   uint    `json:"reference_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash insurance bpjs"`
	AdminNotes    string  `json:"admin_notes"`
}

// UpdatePaymentInput is the request body for updating a payment.
type UpdatePaymentInput struct {
	Amount        float64 `json:"amount" binding:"omitempty,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"omitempty,oneof=cash insurance bpjs"`
	Status        string  `json:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	ProcessorRef  string  `json:"processor_ref"`
	ReceiptURL    string  `json:"receipt_url"`
	AdminNotes    string  `json:"admin_notes"`
}

// ConfirmPaymentInput is the request body for confirming a payment.
type ConfirmPaymentInput struct {
	ProcessorRef string `json:"processor_ref"`
	ReceiptURL   string `json:"receipt_url"`
	AdminNotes   string `json:"admin_notes"`
}

// PaymentListQuery carries the supported list filters.
type PaymentListQuery struct {
	Status        string `form:"status" binding:"omitempty,oneof=pending paid failed refunded"`
	PaymentMethod string `form:"payment_method" binding:"omitempty,oneof=cash insurance bpjs"`
	ServiceType   string `form:"service_type" binding:"omitempty,oneof=appointment room_booking ambulance"`
	UserID        uint   `form:"user_id"`
}

// CreatePayment opens a pending payment against exactly one billable service
// record.
func (s *PaymentService) CreatePayment(input CreatePaymentInput) (*models.Payment, error) {
	ref, err := models.NewServiceRef(input.ServiceType, input.ReferenceID)
	if err != nil {
		return nil, err
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID:        input.UserID,
		ServiceRef:    ref,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Status:        models.PaymentPending,
		TransactionID: utils.TransactionID(time.Now()),
		AdminNotes:    input.AdminNotes,
	}

	err = s.store.Atomic(func(tx repository.PaymentStore) error {
		ok, err := tx.UserExists(input.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User")
		}

		switch input.ServiceType {
		case models.ServiceRefAppointment:
			ok, err = tx.AppointmentExists(input.ReferenceID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("Appointment")
			}
		case models.ServiceRefRoomBooking:
			ok, err = tx.BookingExists(input.ReferenceID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("Room booking")
			}
		case models.ServiceRefAmbulance:
			ok, err = tx.RequestExists(input.ReferenceID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.NotFound("Ambulance request")
			}
		}

		return tx.Create(payment)
	})
	if err != nil {
		return nil, err
	}

	s.notify(payment.UserID, "Payment Created",
		fmt.Sprintf("Payment %s for %.2f is awaiting confirmation.", payment.TransactionID, payment.Amount))

	return s.store.ByID(payment.ID)
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(id uint) (*models.Payment, error) {
	return s.store.ByID(id)
}

// ListPayments lists payments matching the query
func (s *PaymentService) ListPayments(q PaymentListQuery) ([]models.Payment, error) {
	return s.store.List(repository.PaymentFilter{
		Status:        q.Status,
		PaymentMethod: q.PaymentMethod,
		ServiceType:   q.ServiceType,
		UserID:        q.UserID,
	})
}

// ConfirmPayment settles a pending payment. The row is locked so concurrent
// confirmations cannot both succeed; paid_at is stamped exactly once.
func (s *PaymentService) ConfirmPayment(id uint, input ConfirmPaymentInput, actorID uint) (*models.Payment, error) {
	var result *models.Payment

	err := s.store.Atomic(func(tx repository.PaymentStore) error {
		payment, err := tx.ForUpdate(id)
		if err != nil {
			return err
		}
		if payment.Status == models.PaymentPaid {
			return apperr.AlreadyConfirmed("Payment has already been confirmed")
		}
		if err := checkTransition(paymentTransitions, "payment", payment.Status, models.PaymentPaid); err != nil {
			return err
		}

		admin, err := tx.AdminByID(actorID)
		if err != nil {
			return err
		}

		now := time.Now()
		payment.Status = models.PaymentPaid
		payment.PaidAt = &now
		payment.Processed = models.ActorRef{AdminID: &admin.ID, Role: admin.Role}
		if input.ProcessorRef != "" {
			payment.ProcessorRef = input.ProcessorRef
		}
		if input.ReceiptURL != "" {
			payment.ReceiptURL = input.ReceiptURL
		}
		if input.AdminNotes != "" {
			payment.AdminNotes = input.AdminNotes
		}

		if err := tx.Save(payment); err != nil {
			return err
		}
		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(result.UserID, "Payment Confirmed",
		fmt.Sprintf("Payment %s for %.2f has been confirmed.", result.TransactionID, result.Amount))
	s.log(actorID, "payment_confirm", result.ID,
		fmt.Sprintf("Confirmed payment %s", result.TransactionID))

	return s.store.ByID(result.ID)
}

// UpdatePayment applies field and status changes to a payment. Status changes
// follow the transition table; moving to paid stamps paid_at.
func (s *PaymentService) UpdatePayment(id uint, input UpdatePaymentInput, actorID uint) (*models.Payment, error) {
	var result *models.Payment

	err := s.store.Atomic(func(tx repository.PaymentStore) error {
		payment, err := tx.ForUpdate(id)
		if err != nil {
			return err
		}

		if input.Status != "" && input.Status != payment.Status {
			if err := checkTransition(paymentTransitions, "payment", payment.Status, input.Status); err != nil {
				return err
			}
			payment.Status = input.Status
			if input.Status == models.PaymentPaid && payment.PaidAt == nil {
				now := time.Now()
				payment.PaidAt = &now
			}
		}

		if input.Amount != 0 {
			if payment.Status == models.PaymentPaid || payment.Status == models.PaymentRefunded {
				return apperr.BusinessRule("Cannot change the amount of a settled payment")
			}
			payment.Amount = input.Amount
		}
		if input.PaymentMethod != "" {
			payment.PaymentMethod = input.PaymentMethod
		}
		if input.ProcessorRef != "" {
			payment.ProcessorRef = input.ProcessorRef
		}
		if input.ReceiptURL != "" {
			payment.ReceiptURL = input.ReceiptURL
		}
		if input.AdminNotes != "" {
			payment.AdminNotes = input.AdminNotes
		}

		if err := tx.Save(payment); err != nil {
			return err
		}
		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(actorID, "payment_update", result.ID,
		fmt.Sprintf("Updated payment %s (status: %s)", result.TransactionID, result.Status))

	return s.store.ByID(result.ID)
}

// DeletePayment removes a payment record.
func (s *PaymentService) DeletePayment(id uint, actorID uint) error {
	if _, err := s.store.ByID(id); err != nil {
		return err
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.log(actorID, "payment_delete", id, fmt.Sprintf("Deleted payment ID %d", id))
	return nil
}

func (s *PaymentService) notify(userID uint, title, message string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    models.NotifyPayment,
	})
}

func (s *PaymentService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.Payment{}.TableName(), &recordID, details)
}
