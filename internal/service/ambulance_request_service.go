package service

import (
	"fmt"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
	"healthcare-hub-backend/pkg/utils"
)

type AmbulanceRequestService struct {
	store    repository.DispatchStore
	notifier Notifier
	logs     ActivityLogger
}

func NewAmbulanceRequestService(store repository.DispatchStore, notifier Notifier, logs ActivityLogger) *AmbulanceRequestService {
	return &AmbulanceRequestService{
		store:    store,
		notifier: notifier,
		logs:     logs,
	}
}

// CreateRequestInput is the request body for creating an ambulance request.
type CreateRequestInput struct {
	UserID           uint     `json:"user_id" binding:"required"`
	RequestType      string   `json:"request_type" binding:"required,oneof=emergency scheduled"`
	PickupLocation   string   `json:"pickup_location" binding:"required"`
	Destination      string   `json:"destination" binding:"required"`
	PatientCondition string   `json:"patient_condition"`
	RequestDate      string   `json:"request_date" binding:"required,datetime=2006-01-02"`
	RequestTime      string   `json:"request_time" binding:"omitempty,datetime=15:04"`
	PaymentMethod    string   `json:"payment_method" binding:"required,oneof=cash insurance bpjs"`
	DistanceKm       *float64 `json:"distance_km" binding:"omitempty,gt=0"`
}

// UpdateRequestInput is the request body for updating a request's details.
// A new ambulance_id reassigns the ride: the previous ambulance is released
// and the ride is repriced from the new ambulance's fares.
type UpdateRequestInput struct {
	AmbulanceID      *uint    `json:"ambulance_id"`
	PickupLocation   string   `json:"pickup_location"`
	Destination      string   `json:"destination"`
	PatientCondition string   `json:"patient_condition"`
	RequestDate      string   `json:"request_date" binding:"omitempty,datetime=2006-01-02"`
	RequestTime      string   `json:"request_time" binding:"omitempty,datetime=15:04"`
	PaymentMethod    string   `json:"payment_method" binding:"omitempty,oneof=cash insurance bpjs"`
	DistanceKm       *float64 `json:"distance_km" binding:"omitempty,gt=0"`
	AdminNotes       string   `json:"admin_notes"`
}

// DispatchInput assigns a specific ambulance to a pending request.
type DispatchInput struct {
	AmbulanceID uint `json:"ambulance_id" binding:"required"`
}

// RequestStatusInput advances a request through its lifecycle.
type RequestStatusInput struct {
	Status     string   `json:"status" binding:"required,oneof=dispatched on_way arrived completed cancelled"`
	DistanceKm *float64 `json:"distance_km" binding:"omitempty,gt=0"`
	AdminNotes string   `json:"admin_notes"`
}

// RequestListQuery carries the supported list filters.
type RequestListQuery struct {
	Status      string `form:"status" binding:"omitempty,oneof=pending dispatched on_way arrived completed cancelled"`
	RequestType string `form:"request_type" binding:"omitempty,oneof=emergency scheduled"`
	UserID      uint   `form:"user_id"`
	StartDate   string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// CreateRequest registers an ambulance request. Emergency requests are
// auto-dispatched to the first available emergency ambulance inside the same
// transaction; when none is free the whole request is rejected and nothing
// is persisted. Scheduled requests must name a future date and stay pending
// until an admin dispatches them.
func (s *AmbulanceRequestService) CreateRequest(input CreateRequestInput) (*models.AmbulanceRequest, error) {
	requestDate, err := time.Parse(dateLayout, input.RequestDate)
	if err != nil {
		return nil, apperr.Validation("Validation Error", map[string]string{
			"request_date": "must be a valid date in YYYY-MM-DD format",
		})
	}

	if input.RequestType == models.RequestTypeScheduled {
		today := time.Now().Truncate(24 * time.Hour)
		if !requestDate.After(today) {
			return nil, apperr.BusinessRule("Scheduled request date must be in the future")
		}
	}

	request := &models.AmbulanceRequest{
		UserID:           input.UserID,
		RequestType:      input.RequestType,
		PickupLocation:   input.PickupLocation,
		Destination:      input.Destination,
		PatientCondition: input.PatientCondition,
		RequestDate:      requestDate,
		RequestTime:      input.RequestTime,
		PaymentMethod:    input.PaymentMethod,
		DistanceKm:       input.DistanceKm,
		Status:           models.RequestPending,
	}

	err = s.store.Atomic(func(tx repository.DispatchStore) error {
		ok, err := tx.UserExists(input.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User")
		}

		if input.RequestType == models.RequestTypeEmergency {
			ambulance, err := tx.FirstAvailableForUpdate(models.AmbulanceTypeEmergency)
			if err != nil {
				return err
			}
			if ambulance == nil {
				return apperr.Unavailable("No emergency ambulance available at the moment")
			}

			distance := float64(utils.DefaultEmergencyDistanceKM)
			if input.DistanceKm != nil {
				distance = *input.DistanceKm
			}
			cost := utils.AmbulanceCost(ambulance.BaseFare, ambulance.PerKmFare, distance)

			request.AmbulanceID = &ambulance.ID
			request.DistanceKm = &distance
			request.TotalCost = &cost
			request.Status = models.RequestDispatched

			if err := tx.SetAmbulanceStatus(ambulance.ID, models.AmbulanceOperating); err != nil {
				return err
			}
		}

		count, err := tx.CountCreatedOn(time.Now())
		if err != nil {
			return err
		}
		request.RequestNumber = utils.ReferenceNumber("AMB", time.Now(), count+1)

		return tx.Create(request)
	})
	if err != nil {
		return nil, err
	}

	if request.Status == models.RequestDispatched {
		s.notify(request.UserID, "Ambulance Dispatched",
			fmt.Sprintf("An ambulance has been dispatched for request %s.", request.RequestNumber))
	} else {
		s.notify(request.UserID, "Ambulance Request Received",
			fmt.Sprintf("Your ambulance request %s has been received.", request.RequestNumber))
	}

	return s.store.ByID(request.ID)
}

// GetRequest retrieves a request by ID
func (s *AmbulanceRequestService) GetRequest(id uint) (*models.AmbulanceRequest, error) {
	return s.store.ByID(id)
}

// ListRequests lists requests matching the query
func (s *AmbulanceRequestService) ListRequests(q RequestListQuery) ([]models.AmbulanceRequest, error) {
	filter := repository.RequestFilter{
		Status:      q.Status,
		RequestType: q.RequestType,
		UserID:      q.UserID,
	}
	var err error
	if filter.StartDate, err = parseOptionalDate(q.StartDate); err != nil {
		return nil, err
	}
	if filter.EndDate, err = parseOptionalDate(q.EndDate); err != nil {
		return nil, err
	}
	return s.store.List(filter)
}

// ActiveEmergencies lists emergency requests still in flight.
func (s *AmbulanceRequestService) ActiveEmergencies() ([]models.AmbulanceRequest, error) {
	return s.store.ActiveEmergencies()
}

// DispatchRequest assigns an ambulance to a pending request and prices the
// ride from that ambulance's fares.
func (s *AmbulanceRequestService) DispatchRequest(id uint, input DispatchInput, actorID uint) (*models.AmbulanceRequest, error) {
	var result *models.AmbulanceRequest

	err := s.store.Atomic(func(tx repository.DispatchStore) error {
		request, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if request.Status == models.RequestDispatched {
			return apperr.BusinessRule("Ambulance request is already dispatched")
		}
		if err := checkTransition(requestTransitions, "ambulance request", request.Status, models.RequestDispatched); err != nil {
			return err
		}

		ambulance, err := tx.AmbulanceForUpdate(input.AmbulanceID)
		if err != nil {
			return err
		}
		if ambulance.Status != models.AmbulanceAvailable {
			return apperr.Unavailable("Ambulance is not available")
		}

		actor, err := s.actorRef(tx, actorID)
		if err != nil {
			return err
		}

		distance := float64(utils.DefaultEmergencyDistanceKM)
		if request.DistanceKm != nil {
			distance = *request.DistanceKm
		}
		cost := utils.AmbulanceCost(ambulance.BaseFare, ambulance.PerKmFare, distance)

		request.AmbulanceID = &ambulance.ID
		request.DistanceKm = &distance
		request.TotalCost = &cost
		request.Status = models.RequestDispatched
		request.Dispatched = actor

		if err := tx.Save(request); err != nil {
			return err
		}
		if err := tx.SetAmbulanceStatus(ambulance.ID, models.AmbulanceOperating); err != nil {
			return err
		}

		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(result.UserID, "Ambulance Dispatched",
		fmt.Sprintf("An ambulance has been dispatched for request %s.", result.RequestNumber))
	s.log(actorID, "ambulance_request_dispatch", result.ID,
		fmt.Sprintf("Dispatched ambulance %d for request %s", input.AmbulanceID, result.RequestNumber))

	return s.store.ByID(result.ID)
}

// UpdateRequestStatus advances a request along its lifecycle. Completion
// settles the final cost from the actual distance and frees the ambulance,
// dropping it at the destination. Cancellation frees an assigned ambulance.
func (s *AmbulanceRequestService) UpdateRequestStatus(id uint, input RequestStatusInput, actorID uint) (*models.AmbulanceRequest, error) {
	var result *models.AmbulanceRequest

	err := s.store.Atomic(func(tx repository.DispatchStore) error {
		request, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if request.Status == input.Status {
			return apperr.BusinessRule("Ambulance request is already " + input.Status)
		}
		if err := checkTransition(requestTransitions, "ambulance request", request.Status, input.Status); err != nil {
			return err
		}

		request.Status = input.Status
		if input.AdminNotes != "" {
			request.AdminNotes = input.AdminNotes
		}

		if input.Status == models.RequestCompleted && request.AmbulanceID != nil {
			ambulance, err := tx.AmbulanceForUpdate(*request.AmbulanceID)
			if err != nil {
				return err
			}
			if input.DistanceKm != nil {
				request.DistanceKm = input.DistanceKm
			}
			if request.DistanceKm != nil {
				cost := utils.AmbulanceCost(ambulance.BaseFare, ambulance.PerKmFare, *request.DistanceKm)
				request.TotalCost = &cost
			}
		}

		if err := tx.Save(request); err != nil {
			return err
		}

		if request.AmbulanceID != nil {
			if derived := ambulanceStatusFor(input.Status); derived != "" {
				if err := tx.SetAmbulanceStatus(*request.AmbulanceID, derived); err != nil {
					return err
				}
			}
			if input.Status == models.RequestCompleted {
				err := tx.UpdateAmbulance(*request.AmbulanceID, map[string]interface{}{
					"current_location": request.Destination,
				})
				if err != nil {
					return err
				}
			}
		}

		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(result.UserID, "Ambulance Request Update",
		fmt.Sprintf("Request %s is now %s.", result.RequestNumber, result.Status))
	s.log(actorID, "ambulance_request_status", result.ID,
		fmt.Sprintf("Request %s moved to %s", result.RequestNumber, result.Status))

	return s.store.ByID(result.ID)
}

// UpdateRequest edits a request's details. Terminal requests are immutable.
func (s *AmbulanceRequestService) UpdateRequest(id uint, input UpdateRequestInput, actorID uint) (*models.AmbulanceRequest, error) {
	var result *models.AmbulanceRequest

	err := s.store.Atomic(func(tx repository.DispatchStore) error {
		request, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if request.Terminal() {
			return apperr.BusinessRule(fmt.Sprintf("Cannot modify a %s ambulance request", request.Status))
		}

		if input.AmbulanceID != nil && (request.AmbulanceID == nil || *request.AmbulanceID != *input.AmbulanceID) {
			ambulance, err := tx.AmbulanceForUpdate(*input.AmbulanceID)
			if err != nil {
				return err
			}
			if ambulance.Status != models.AmbulanceAvailable {
				return apperr.Unavailable("Ambulance is not available")
			}

			// Release the previous ambulance before the new one takes the
			// status derived from the request.
			if request.AmbulanceID != nil {
				if err := tx.SetAmbulanceStatus(*request.AmbulanceID, models.AmbulanceAvailable); err != nil {
					return err
				}
			}

			request.AmbulanceID = &ambulance.ID
			if derived := ambulanceStatusFor(request.Status); derived != "" {
				if err := tx.SetAmbulanceStatus(ambulance.ID, derived); err != nil {
					return err
				}
			}

			distance := float64(utils.DefaultEmergencyDistanceKM)
			if request.DistanceKm != nil {
				distance = *request.DistanceKm
			}
			cost := utils.AmbulanceCost(ambulance.BaseFare, ambulance.PerKmFare, distance)
			request.DistanceKm = &distance
			request.TotalCost = &cost
		}

		if input.PickupLocation != "" {
			request.PickupLocation = input.PickupLocation
		}
		if input.Destination != "" {
			request.Destination = input.Destination
		}
		if input.PatientCondition != "" {
			request.PatientCondition = input.PatientCondition
		}
		if input.RequestDate != "" {
			date, err := time.Parse(dateLayout, input.RequestDate)
			if err != nil {
				return apperr.Validation("Validation Error", map[string]string{"request_date": "must be a valid date"})
			}
			request.RequestDate = date
		}
		if input.RequestTime != "" {
			request.RequestTime = input.RequestTime
		}
		if input.PaymentMethod != "" {
			request.PaymentMethod = input.PaymentMethod
		}
		if input.AdminNotes != "" {
			request.AdminNotes = input.AdminNotes
		}

		if input.DistanceKm != nil {
			request.DistanceKm = input.DistanceKm
			if request.AmbulanceID != nil {
				ambulance, err := tx.AmbulanceByID(*request.AmbulanceID)
				if err != nil {
					return err
				}
				cost := utils.AmbulanceCost(ambulance.BaseFare, ambulance.PerKmFare, *input.DistanceKm)
				request.TotalCost = &cost
			}
		}

		if err := tx.Save(request); err != nil {
			return err
		}
		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(actorID, "ambulance_request_update", result.ID,
		fmt.Sprintf("Updated request %s", result.RequestNumber))

	return s.store.ByID(result.ID)
}

// DeleteRequest removes a request, freeing the ambulance when one was held.
func (s *AmbulanceRequestService) DeleteRequest(id uint, actorID uint) error {
	err := s.store.Atomic(func(tx repository.DispatchStore) error {
		request, err := tx.ByID(id)
		if err != nil {
			return err
		}
		if request.AmbulanceID != nil && !request.Terminal() {
			if err := tx.SetAmbulanceStatus(*request.AmbulanceID, models.AmbulanceAvailable); err != nil {
				return err
			}
		}
		return tx.Delete(id)
	})
	if err != nil {
		return err
	}

	s.log(actorID, "ambulance_request_delete", id, fmt.Sprintf("Deleted ambulance request ID %d", id))
	return nil
}

func (s *AmbulanceRequestService) actorRef(tx repository.DispatchStore, actorID uint) (models.ActorRef, error) {
	admin, err := tx.AdminByID(actorID)
	if err != nil {
		return models.ActorRef{}, err
	}
	return models.ActorRef{AdminID: &admin.ID, Role: admin.Role}, nil
}

func (s *AmbulanceRequestService) notify(userID uint, title, message string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Create(&models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    models.NotifyAmbulance,
	})
}

func (s *AmbulanceRequestService) log(actorID uint, action string, recordID uint, details string) {
	if s.logs == nil {
		return
	}
	_ = s.logs.CreateLog(&actorID, action, models.AmbulanceRequest{}.TableName(), &recordID, details)
}
