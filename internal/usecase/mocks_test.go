package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"
	"github.com/Swastik2002/TrustMed/internal/domain/repository"
	"github.com/Swastik2002/TrustMed/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errStore = errors.New("store failure")

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeTransactor runs the callback directly. A callback error aborts the
// unit of work, which the tests observe through the rolledBack flag.
type fakeTransactor struct {
	began      int
	rolledBack bool
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.began++
	if err := fn(ctx); err != nil {
		t.rolledBack = true
		return err
	}
	return nil
}

type fakeScheduleRepo struct {
	schedules []entity.Schedule
	findErr   error
	createErr error
}

func (r *fakeScheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	if r.createErr != nil {
		return r.createErr
	}
	schedule.ID = len(r.schedules) + 1
	r.schedules = append(r.schedules, *schedule)
	return nil
}

func (r *fakeScheduleRepo) FindByID(ctx context.Context, id int) (*entity.Schedule, error) {
	for i := range r.schedules {
		if r.schedules[i].ID == id {
			s := r.schedules[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) FindByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date time.Time) (*entity.Schedule, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.schedules {
		if r.schedules[i].DoctorID == doctorID && r.schedules[i].Date.Equal(date) {
			s := r.schedules[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Schedule, error) {
	var out []entity.Schedule
	for _, s := range r.schedules {
		if s.DoctorID == doctorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, id int) (int64, error) {
	for i := range r.schedules {
		if r.schedules[i].ID == id {
			r.schedules = append(r.schedules[:i], r.schedules[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAppointmentRepo struct {
	appointments []entity.Appointment
	createErr    error
	updateErr    error
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			a := r.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID, date *time.Time) ([]entity.Appointment, error) {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.DoctorID != doctorID {
			continue
		}
		if date != nil && !a.Date.Equal(*date) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) FindBookedTimes(ctx context.Context, doctorID uuid.UUID, date time.Time) ([]string, error) {
	var out []string
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.Date.Equal(date) && !a.IsCancelled() {
			out = append(out, a.Time)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ExistsAt(ctx context.Context, doctorID uuid.UUID, date time.Time, timeLabel string) (bool, error) {
	for _, a := range r.appointments {
		if a.DoctorID == doctorID && a.Date.Equal(date) && a.Time == timeLabel && !a.IsCancelled() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	if r.updateErr != nil {
		return 0, r.updateErr
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

type fakePrescriptionRepo struct {
	prescriptions []entity.Prescription
	lines         []entity.PrescriptionMedicine
	createErr     error
	linesErr      error
}

func (r *fakePrescriptionRepo) Create(ctx context.Context, prescription *entity.Prescription) error {
	if r.createErr != nil {
		return r.createErr
	}
	if prescription.ID == uuid.Nil {
		prescription.ID = uuid.New()
	}
	r.prescriptions = append(r.prescriptions, *prescription)
	return nil
}

func (r *fakePrescriptionRepo) CreateMedicineLines(ctx context.Context, lines []entity.PrescriptionMedicine) error {
	if r.linesErr != nil {
		return r.linesErr
	}
	r.lines = append(r.lines, lines...)
	return nil
}

func (r *fakePrescriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	for i := range r.prescriptions {
		if r.prescriptions[i].ID == id {
			p := r.prescriptions[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePrescriptionRepo) FindByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*entity.Prescription, error) {
	for i := range r.prescriptions {
		if r.prescriptions[i].AppointmentID == appointmentID {
			p := r.prescriptions[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePrescriptionRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	for _, p := range r.prescriptions {
		if p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePrescriptionRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Prescription, error) {
	var out []entity.Prescription
	for _, p := range r.prescriptions {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders    []entity.Order
	items     []entity.OrderItem
	createErr error
	itemsErr  error
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	if r.itemsErr != nil {
		return r.itemsErr
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.PatientID == patientID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (int64, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

// fakeCache is an in-memory AvailabilityCache that records invalidations.
type fakeCache struct {
	entries      map[string]*service.Availability
	gets         int
	hits         int
	invalidated  []string
	disableReads bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*service.Availability)}
}

func cacheKey(doctorID uuid.UUID, date string) string {
	return doctorID.String() + ":" + date
}

func (c *fakeCache) Get(ctx context.Context, doctorID uuid.UUID, date string) (*service.Availability, bool) {
	c.gets++
	if c.disableReads {
		return nil, false
	}
	entry, ok := c.entries[cacheKey(doctorID, date)]
	if ok {
		c.hits++
	}
	return entry, ok
}

func (c *fakeCache) Set(ctx context.Context, doctorID uuid.UUID, date string, availability *service.Availability) {
	c.entries[cacheKey(doctorID, date)] = availability
}

func (c *fakeCache) Invalidate(ctx context.Context, doctorID uuid.UUID, date string) {
	delete(c.entries, cacheKey(doctorID, date))
	c.invalidated = append(c.invalidated, cacheKey(doctorID, date))
}

// fakeAudit records actions in order; recordErr simulates an audit insert
// failing inside a transaction.
type fakeAudit struct {
	actions   []string
	recordErr error
}

func (a *fakeAudit) Record(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) error {
	if a.recordErr != nil {
		return a.recordErr
	}
	a.actions = append(a.actions, action)
	return nil
}

var (
	_ repository.Transactor             = (*fakeTransactor)(nil)
	_ repository.ScheduleRepository     = (*fakeScheduleRepo)(nil)
	_ repository.AppointmentRepository  = (*fakeAppointmentRepo)(nil)
	_ repository.PrescriptionRepository = (*fakePrescriptionRepo)(nil)
	_ repository.OrderRepository        = (*fakeOrderRepo)(nil)
	_ service.AvailabilityCache         = (*fakeCache)(nil)
	_ service.AuditService              = (*fakeAudit)(nil)
)
