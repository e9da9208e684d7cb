package usecase

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/Swastik2002/TrustMed/internal/domain/entity"

	"github.com/google/uuid"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestGetAvailability(t *testing.T) {
	doctorID := uuid.New()
	date := "2026-09-14"

	newUsecase := func(scheduleRepo *fakeScheduleRepo, appointmentRepo *fakeAppointmentRepo, cache *fakeCache) AvailabilityUsecase {
		return NewAvailabilityUsecase(testLogger(), scheduleRepo, appointmentRepo, cache)
	}

	t.Run("full window", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{schedules: []entity.Schedule{{
			ID: 1, DoctorID: doctorID, Date: mustDate(t, date),
			StartTime: "9:00 AM", EndTime: "11:00 AM", SlotDuration: 30,
		}}}
		u := newUsecase(scheduleRepo, &fakeAppointmentRepo{}, newFakeCache())

		got, err := u.GetAvailability(context.Background(), doctorID, date)
		if err != nil {
			t.Fatalf("GetAvailability: %v", err)
		}
		if !got.Available {
			t.Fatal("expected available")
		}
		want := []string{"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM"}
		if !reflect.DeepEqual(got.Slots, want) {
			t.Fatalf("slots = %v, want %v", got.Slots, want)
		}
	})

	t.Run("booked slot excluded", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{schedules: []entity.Schedule{{
			ID: 1, DoctorID: doctorID, Date: mustDate(t, date),
			StartTime: "9:00 AM", EndTime: "11:00 AM", SlotDuration: 30,
		}}}
		appointmentRepo := &fakeAppointmentRepo{appointments: []entity.Appointment{{
			ID: uuid.New(), DoctorID: doctorID, Date: mustDate(t, date),
			Time: "9:30 AM", Status: entity.AppointmentStatusScheduled,
		}}}
		u := newUsecase(scheduleRepo, appointmentRepo, newFakeCache())

		got, err := u.GetAvailability(context.Background(), doctorID, date)
		if err != nil {
			t.Fatalf("GetAvailability: %v", err)
		}
		want := []string{"9:00 AM", "10:00 AM", "10:30 AM"}
		if !reflect.DeepEqual(got.Slots, want) {
			t.Fatalf("slots = %v, want %v", got.Slots, want)
		}
	})

	t.Run("cancelled appointment frees slot", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{schedules: []entity.Schedule{{
			ID: 1, DoctorID: doctorID, Date: mustDate(t, date),
			StartTime: "9:00 AM", EndTime: "10:00 AM", SlotDuration: 30,
		}}}
		appointmentRepo := &fakeAppointmentRepo{appointments: []entity.Appointment{{
			ID: uuid.New(), DoctorID: doctorID, Date: mustDate(t, date),
			Time: "9:30 AM", Status: entity.AppointmentStatusCancelled,
		}}}
		u := newUsecase(scheduleRepo, appointmentRepo, newFakeCache())

		got, err := u.GetAvailability(context.Background(), doctorID, date)
		if err != nil {
			t.Fatalf("GetAvailability: %v", err)
		}
		want := []string{"9:00 AM", "9:30 AM"}
		if !reflect.DeepEqual(got.Slots, want) {
			t.Fatalf("slots = %v, want %v", got.Slots, want)
		}
	})

	t.Run("no schedule is not an error", func(t *testing.T) {
		u := newUsecase(&fakeScheduleRepo{}, &fakeAppointmentRepo{}, newFakeCache())

		got, err := u.GetAvailability(context.Background(), doctorID, date)
		if err != nil {
			t.Fatalf("GetAvailability: %v", err)
		}
		if got.Available {
			t.Fatal("expected unavailable")
		}
		if got.Message == "" {
			t.Fatal("expected explanatory message")
		}
		if got.Slots == nil || len(got.Slots) != 0 {
			t.Fatalf("slots = %v, want empty non-nil", got.Slots)
		}
	})

	t.Run("idempotent reads", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{schedules: []entity.Schedule{{
			ID: 1, DoctorID: doctorID, Date: mustDate(t, date),
			StartTime: "9:00 AM", EndTime: "11:00 AM", SlotDuration: 30,
		}}}
		cache := newFakeCache()
		u := newUsecase(scheduleRepo, &fakeAppointmentRepo{}, cache)

		first, err := u.GetAvailability(context.Background(), doctorID, date)
		if err != nil {
			t.Fatalf("first read: %v", err)
		}
		second, err := u.GetAvailability(context.Background(), doctorID, date)
		if err != nil {
			t.Fatalf("second read: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("reads differ: %v vs %v", first, second)
		}
		if cache.hits == 0 {
			t.Fatal("expected second read to hit the cache")
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		u := newUsecase(&fakeScheduleRepo{}, &fakeAppointmentRepo{}, newFakeCache())
		if _, err := u.GetAvailability(context.Background(), doctorID, "14-09-2026"); err != ErrInvalidDateFormat {
			t.Fatalf("err = %v, want ErrInvalidDateFormat", err)
		}
	})

	t.Run("corrupt schedule times", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{schedules: []entity.Schedule{{
			ID: 1, DoctorID: doctorID, Date: mustDate(t, date),
			StartTime: "nine", EndTime: "11:00 AM", SlotDuration: 30,
		}}}
		u := newUsecase(scheduleRepo, &fakeAppointmentRepo{}, newFakeCache())

		if _, err := u.GetAvailability(context.Background(), doctorID, date); err != ErrScheduleCorrupt {
			t.Fatalf("err = %v, want ErrScheduleCorrupt", err)
		}
	})

	t.Run("corrupt slot duration", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{schedules: []entity.Schedule{{
			ID: 1, DoctorID: doctorID, Date: mustDate(t, date),
			StartTime: "9:00 AM", EndTime: "11:00 AM", SlotDuration: 0,
		}}}
		u := newUsecase(scheduleRepo, &fakeAppointmentRepo{}, newFakeCache())

		if _, err := u.GetAvailability(context.Background(), doctorID, date); err != ErrScheduleCorrupt {
			t.Fatalf("err = %v, want ErrScheduleCorrupt", err)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{findErr: errStore}
		u := newUsecase(scheduleRepo, &fakeAppointmentRepo{}, newFakeCache())

		if _, err := u.GetAvailability(context.Background(), doctorID, date); err != errStore {
			t.Fatalf("err = %v, want store failure", err)
		}
	})
}
