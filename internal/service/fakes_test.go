package service

import (
	"sort"
	"time"

	"healthcare-hub-backend/internal/models"
	"healthcare-hub-backend/internal/repository"
	"healthcare-hub-backend/pkg/apperr"
)

// In-memory store fakes. Atomic simply runs fn against the same fake; the
// rejection paths under test fail before any write, so rollback fidelity is
// not needed.

type stubNotifier struct {
	sent []models.Notification
}

func (n *stubNotifier) Create(notification *models.Notification) error {
	n.sent = append(n.sent, *notification)
	return nil
}

type stubLogger struct {
	actions []string
}

func (l *stubLogger) CreateLog(adminID *uint, action, table string, recordID *uint, details string) error {
	l.actions = append(l.actions, action)
	return nil
}

type fakeBookingStore struct {
	users        map[uint]bool
	admins       map[uint]*models.Admin
	appointments map[uint]bool
	rooms        map[uint]*models.Room
	bookings     map[uint]*models.RoomBooking
	nextID       uint
}

func newFakeBookingStore() *fakeBookingStore {
	return &fakeBookingStore{
		users:        map[uint]bool{},
		admins:       map[uint]*models.Admin{},
		appointments: map[uint]bool{},
		rooms:        map[uint]*models.Room{},
		bookings:     map[uint]*models.RoomBooking{},
	}
}

func (f *fakeBookingStore) Atomic(fn func(repository.BookingStore) error) error {
	return fn(f)
}

func (f *fakeBookingStore) UserExists(id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakeBookingStore) AdminByID(id uint) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return admin, nil
}

func (f *fakeBookingStore) AppointmentExists(id uint) (bool, error) {
	return f.appointments[id], nil
}

func (f *fakeBookingStore) RoomByID(id uint) (*models.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, apperr.NotFound("Room")
	}
	return room, nil
}

func (f *fakeBookingStore) RoomForUpdate(id uint) (*models.Room, error) {
	return f.RoomByID(id)
}

func (f *fakeBookingStore) SetRoomStatus(id uint, status string) error {
	room, ok := f.rooms[id]
	if !ok {
		return apperr.NotFound("Room")
	}
	room.Status = status
	return nil
}

func (f *fakeBookingStore) HasConflict(roomID uint, checkin, checkout time.Time, excludeID uint) (bool, error) {
	for _, b := range f.bookings {
		if b.RoomID != roomID || b.ID == excludeID {
			continue
		}
		if b.Status == models.BookingCancelled || b.Status == models.BookingCheckout {
			continue
		}
		if !b.CheckinDate.After(checkout) && !b.EffectiveCheckout().Before(checkin) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingStore) CountCreatedOn(day time.Time) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingStore) Create(b *models.RoomBooking) error {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingStore) ByID(id uint) (*models.RoomBooking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, apperr.NotFound("Room booking")
	}
	return b, nil
}

func (f *fakeBookingStore) Save(b *models.RoomBooking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingStore) Delete(id uint) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingStore) List(filter repository.BookingFilter) ([]models.RoomBooking, error) {
	var out []models.RoomBooking
	for _, b := range f.bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.UserID != 0 && b.UserID != filter.UserID {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBookingStore) AvailableRooms(checkin, checkout time.Time, roomType string) ([]models.Room, error) {
	var out []models.Room
	for _, room := range f.rooms {
		if room.Status == models.RoomMaintenance {
			continue
		}
		if roomType != "" && room.RoomType != roomType {
			continue
		}
		conflict, _ := f.HasConflict(room.ID, checkin, checkout, 0)
		if !conflict {
			out = append(out, *room)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeDispatchStore struct {
	users      map[uint]bool
	admins     map[uint]*models.Admin
	ambulances map[uint]*models.Ambulance
	requests   map[uint]*models.AmbulanceRequest
	nextID     uint
}

func newFakeDispatchStore() *fakeDispatchStore {
	return &fakeDispatchStore{
		users:      map[uint]bool{},
		admins:     map[uint]*models.Admin{},
		ambulances: map[uint]*models.Ambulance{},
		requests:   map[uint]*models.AmbulanceRequest{},
	}
}

func (f *fakeDispatchStore) Atomic(fn func(repository.DispatchStore) error) error {
	return fn(f)
}

func (f *fakeDispatchStore) UserExists(id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakeDispatchStore) AdminByID(id uint) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return admin, nil
}

func (f *fakeDispatchStore) AmbulanceByID(id uint) (*models.Ambulance, error) {
	ambulance, ok := f.ambulances[id]
	if !ok {
		return nil, apperr.NotFound("Ambulance")
	}
	return ambulance, nil
}

func (f *fakeDispatchStore) AmbulanceForUpdate(id uint) (*models.Ambulance, error) {
	return f.AmbulanceByID(id)
}

func (f *fakeDispatchStore) FirstAvailableForUpdate(ambulanceType string) (*models.Ambulance, error) {
	var ids []uint
	for id := range f.ambulances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		a := f.ambulances[id]
		if a.Status == models.AmbulanceAvailable && a.AmbulanceType == ambulanceType {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeDispatchStore) SetAmbulanceStatus(id uint, status string) error {
	ambulance, ok := f.ambulances[id]
	if !ok {
		return apperr.NotFound("Ambulance")
	}
	ambulance.Status = status
	return nil
}

func (f *fakeDispatchStore) UpdateAmbulance(id uint, updates map[string]interface{}) error {
	ambulance, ok := f.ambulances[id]
	if !ok {
		return apperr.NotFound("Ambulance")
	}
	if loc, ok := updates["current_location"].(string); ok {
		ambulance.CurrentLocation = loc
	}
	return nil
}

func (f *fakeDispatchStore) CountCreatedOn(day time.Time) (int64, error) {
	return int64(len(f.requests)), nil
}

func (f *fakeDispatchStore) Create(req *models.AmbulanceRequest) error {
	f.nextID++
	req.ID = f.nextID
	f.requests[req.ID] = req
	return nil
}

func (f *fakeDispatchStore) ByID(id uint) (*models.AmbulanceRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, apperr.NotFound("Ambulance request")
	}
	return req, nil
}

func (f *fakeDispatchStore) Save(req *models.AmbulanceRequest) error {
	f.requests[req.ID] = req
	return nil
}

func (f *fakeDispatchStore) Delete(id uint) error {
	delete(f.requests, id)
	return nil
}

func (f *fakeDispatchStore) List(filter repository.RequestFilter) ([]models.AmbulanceRequest, error) {
	var out []models.AmbulanceRequest
	for _, req := range f.requests {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.RequestType != "" && req.RequestType != filter.RequestType {
			continue
		}
		out = append(out, *req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeDispatchStore) ActiveEmergencies() ([]models.AmbulanceRequest, error) {
	var out []models.AmbulanceRequest
	for _, req := range f.requests {
		if req.RequestType == models.RequestTypeEmergency && !req.Terminal() {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeAppointmentStore struct {
	users        map[uint]bool
	admins       map[uint]*models.Admin
	doctors      map[uint]bool
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{
		users:        map[uint]bool{},
		admins:       map[uint]*models.Admin{},
		doctors:      map[uint]bool{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeAppointmentStore) Atomic(fn func(repository.AppointmentStore) error) error {
	return fn(f)
}

func (f *fakeAppointmentStore) UserExists(id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakeAppointmentStore) AdminByID(id uint) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return admin, nil
}

func (f *fakeAppointmentStore) DoctorExists(id uint) (bool, error) {
	return f.doctors[id], nil
}

func (f *fakeAppointmentStore) CountCreatedOn(day time.Time) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeAppointmentStore) Create(a *models.Appointment) error {
	f.nextID++
	a.ID = f.nextID
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentStore) ByID(id uint) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, apperr.NotFound("Appointment")
	}
	return a, nil
}

func (f *fakeAppointmentStore) Save(a *models.Appointment) error {
	f.appointments[a.ID] = a
	return nil
}

func (f *fakeAppointmentStore) Delete(id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentStore) List(filter repository.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.DoctorID != 0 && a.DoctorID != filter.DoctorID {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakePaymentStore struct {
	users        map[uint]bool
	admins       map[uint]*models.Admin
	appointments map[uint]bool
	bookings     map[uint]bool
	requests     map[uint]bool
	payments     map[uint]*models.Payment
	nextID       uint
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{
		users:        map[uint]bool{},
		admins:       map[uint]*models.Admin{},
		appointments: map[uint]bool{},
		bookings:     map[uint]bool{},
		requests:     map[uint]bool{},
		payments:     map[uint]*models.Payment{},
	}
}

func (f *fakePaymentStore) Atomic(fn func(repository.PaymentStore) error) error {
	return fn(f)
}

func (f *fakePaymentStore) UserExists(id uint) (bool, error) {
	return f.users[id], nil
}

func (f *fakePaymentStore) AdminByID(id uint) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperr.NotFound("Admin")
	}
	return admin, nil
}

func (f *fakePaymentStore) AppointmentExists(id uint) (bool, error) {
	return f.appointments[id], nil
}

func (f *fakePaymentStore) BookingExists(id uint) (bool, error) {
	return f.bookings[id], nil
}

func (f *fakePaymentStore) RequestExists(id uint) (bool, error) {
	return f.requests[id], nil
}

func (f *fakePaymentStore) Create(p *models.Payment) error {
	f.nextID++
	p.ID = f.nextID
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentStore) ByID(id uint) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, apperr.NotFound("Payment")
	}
	return p, nil
}

func (f *fakePaymentStore) ForUpdate(id uint) (*models.Payment, error) {
	return f.ByID(id)
}

func (f *fakePaymentStore) Save(p *models.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentStore) Delete(id uint) error {
	delete(f.payments, id)
	return nil
}

func (f *fakePaymentStore) List(filter repository.PaymentFilter) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.ServiceType != "" && p.ServiceType != filter.ServiceType {
			continue
		}
		if filter.UserID != 0 && p.UserID != filter.UserID {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
