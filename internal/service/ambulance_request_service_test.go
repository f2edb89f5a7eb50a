package service

import (
	"testing"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func newDispatchFixture() (*AmbulanceRequestService, *fakeDispatchStore, *stubNotifier) {
	store := newFakeDispatchStore()
	store.users[1] = true
	store.admins[5] = &models.Admin{ID: 5, Username: "dispatcher", Role: models.AdminRoleStaff}

	notifier := &stubNotifier{}
	svc := NewAmbulanceRequestService(store, notifier, &stubLogger{})
	return svc, store, notifier
}

func addAmbulance(store *fakeDispatchStore, id uint, ambulanceType string, baseFare, perKmFare float64) {
	store.ambulances[id] = &models.Ambulance{
		ID:            id,
		PlateNumber:   "B 100" + string(rune('0'+id)),
		AmbulanceType: ambulanceType,
		BaseFare:      baseFare,
		PerKmFare:     perKmFare,
		Status:        models.AmbulanceAvailable,
	}
}

func TestEmergencyRequestAutoDispatch(t *testing.T) {
	svc, store, notifier := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayBPJS,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RequestDispatched, request.Status)
	assert.Equal(t, uint(1), *request.AmbulanceID)
	// Default 10 km estimate: 50 + 5*10
	assert.Equal(t, 10.0, *request.DistanceKm)
	assert.Equal(t, 100.0, *request.TotalCost)
	assert.Contains(t, request.RequestNumber, "AMB")
	assert.Equal(t, models.AmbulanceOperating, store.ambulances[1].Status)
	assert.Len(t, notifier.sent, 1)
}

func TestEmergencyRequestNoAmbulanceRejected(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	// Only a transport ambulance is on duty
	addAmbulance(store, 1, models.AmbulanceTypeTransport, 30, 3)

	_, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	// Nothing was persisted and the transport ambulance was not touched
	assert.Empty(t, store.requests)
	assert.Equal(t, models.AmbulanceAvailable, store.ambulances[1].Status)
}

func TestEmergencyDispatchPicksFirstAvailable(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)
	addAmbulance(store, 2, models.AmbulanceTypeEmergency, 40, 4)
	store.ambulances[1].Status = models.AmbulanceOperating

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), *request.AmbulanceID)
}

func TestScheduledRequestStaysPending(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeScheduled,
		PickupLocation: "Jl. Melati 3",
		Destination:    "Dialysis Clinic",
		RequestDate:    "2030-01-10",
		RequestTime:    "08:30",
		PaymentMethod:  models.PayInsurance,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Nil(t, request.AmbulanceID)
	assert.Equal(t, models.AmbulanceAvailable, store.ambulances[1].Status)
}

func TestScheduledRequestPastDateRejected(t *testing.T) {
	svc, _, _ := newDispatchFixture()

	_, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeScheduled,
		PickupLocation: "Jl. Melati 3",
		Destination:    "Dialysis Clinic",
		RequestDate:    "2020-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestManualDispatch(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 3, models.AmbulanceTypeICU, 120, 8)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeScheduled,
		PickupLocation: "Jl. Melati 3",
		Destination:    "Dialysis Clinic",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	dispatched, err := svc.DispatchRequest(request.ID, DispatchInput{AmbulanceID: 3}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestDispatched, dispatched.Status)
	assert.Equal(t, uint(3), *dispatched.AmbulanceID)
	assert.Equal(t, uint(5), *dispatched.Dispatched.AdminID)
	assert.Equal(t, 200.0, *dispatched.TotalCost)
	assert.Equal(t, models.AmbulanceOperating, store.ambulances[3].Status)

	// Re-dispatching is a workflow violation
	_, err = svc.DispatchRequest(request.ID, DispatchInput{AmbulanceID: 3}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestDispatchOperatingAmbulanceRejected(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 3, models.AmbulanceTypeICU, 120, 8)
	store.ambulances[3].Status = models.AmbulanceOperating

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeScheduled,
		PickupLocation: "Jl. Melati 3",
		Destination:    "Dialysis Clinic",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.DispatchRequest(request.ID, DispatchInput{AmbulanceID: 3}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
}

func TestCompletionSettlesCostAndFreesAmbulance(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	for _, status := range []string{models.RequestOnWay, models.RequestArrived} {
		_, err = svc.UpdateRequestStatus(request.ID, RequestStatusInput{Status: status}, 5)
		assert.NoError(t, err)
		assert.Equal(t, models.AmbulanceOperating, store.ambulances[1].Status)
	}

	actual := 18.0
	completed, err := svc.UpdateRequestStatus(request.ID, RequestStatusInput{
		Status:     models.RequestCompleted,
		DistanceKm: &actual,
	}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestCompleted, completed.Status)
	// Final cost uses the actual distance: 50 + 5*18
	assert.Equal(t, 140.0, *completed.TotalCost)
	assert.Equal(t, models.AmbulanceAvailable, store.ambulances[1].Status)
	assert.Equal(t, "Central Hospital", store.ambulances[1].CurrentLocation)
}

func TestCancellationFreesAmbulance(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	cancelled, err := svc.UpdateRequestStatus(request.ID, RequestStatusInput{Status: models.RequestCancelled}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestCancelled, cancelled.Status)
	assert.Equal(t, models.AmbulanceAvailable, store.ambulances[1].Status)
}

func TestCancelArrivedRequestFreesAmbulance(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	for _, status := range []string{models.RequestOnWay, models.RequestArrived} {
		_, err = svc.UpdateRequestStatus(request.ID, RequestStatusInput{Status: status}, 5)
		assert.NoError(t, err)
	}

	// The ride can still be called off at the pickup point
	cancelled, err := svc.UpdateRequestStatus(request.ID, RequestStatusInput{Status: models.RequestCancelled}, 5)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestCancelled, cancelled.Status)
	assert.Equal(t, models.AmbulanceAvailable, store.ambulances[1].Status)
}

func TestReassignAmbulanceReleasesPrevious(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)
	addAmbulance(store, 2, models.AmbulanceTypeEmergency, 80, 6)
	store.ambulances[2].Status = models.AmbulanceOperating

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(1), *request.AmbulanceID)

	// A busy replacement is rejected and the assignment stands
	busyID := uint(2)
	_, err = svc.UpdateRequest(request.ID, UpdateRequestInput{AmbulanceID: &busyID}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindUnavailable, apperr.KindOf(err))
	assert.Equal(t, models.AmbulanceOperating, store.ambulances[1].Status)

	store.ambulances[2].Status = models.AmbulanceAvailable
	reassigned, err := svc.UpdateRequest(request.ID, UpdateRequestInput{AmbulanceID: &busyID}, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), *reassigned.AmbulanceID)
	// Old unit freed, new unit operating, ride repriced: 80 + 6*10
	assert.Equal(t, models.AmbulanceAvailable, store.ambulances[1].Status)
	assert.Equal(t, models.AmbulanceOperating, store.ambulances[2].Status)
	assert.Equal(t, 140.0, *reassigned.TotalCost)
}

func TestScheduledRequestTodayRejected(t *testing.T) {
	svc, _, _ := newDispatchFixture()

	_, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeScheduled,
		PickupLocation: "Jl. Melati 3",
		Destination:    "Dialysis Clinic",
		RequestDate:    time.Now().Format("2006-01-02"),
		PaymentMethod:  models.PayCash,
	})
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestCompletedRequestIsImmutable(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)

	request, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "Jl. Sudirman 12",
		Destination:    "Central Hospital",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	for _, status := range []string{models.RequestOnWay, models.RequestArrived, models.RequestCompleted} {
		_, err = svc.UpdateRequestStatus(request.ID, RequestStatusInput{Status: status}, 5)
		assert.NoError(t, err)
	}

	_, err = svc.UpdateRequest(request.ID, UpdateRequestInput{Destination: "Elsewhere"}, 5)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindBusinessRule, apperr.KindOf(err))
}

func TestActiveEmergencies(t *testing.T) {
	svc, store, _ := newDispatchFixture()
	addAmbulance(store, 1, models.AmbulanceTypeEmergency, 50, 5)
	addAmbulance(store, 2, models.AmbulanceTypeEmergency, 50, 5)

	first, err := svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "A",
		Destination:    "B",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.CreateRequest(CreateRequestInput{
		UserID:         1,
		RequestType:    models.RequestTypeEmergency,
		PickupLocation: "C",
		Destination:    "D",
		RequestDate:    "2030-01-10",
		PaymentMethod:  models.PayCash,
	})
	assert.NoError(t, err)

	_, err = svc.UpdateRequestStatus(first.ID, RequestStatusInput{Status: models.RequestCancelled}, 5)
	assert.NoError(t, err)

	active, err := svc.ActiveEmergencies()
	assert.NoError(t, err)
	assert.Len(t, active, 1)
}
